package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

// statements are executed in order; every table is created idempotently so
// Apply can run at every startup.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		role ENUM('admin','user') NOT NULL DEFAULT 'user',
		name VARCHAR(32) NOT NULL,
		last_name VARCHAR(32),
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		phone VARCHAR(13),
		status ENUM('active','inactive','not_verified','banned') NOT NULL DEFAULT 'active',
		created_at DATETIME NOT NULL,
		updated_at DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		user_id INT NOT NULL,
		role VARCHAR(16) NOT NULL,
		refresh_token VARCHAR(64) NOT NULL,
		expires_at DATETIME NOT NULL,
		PRIMARY KEY (user_id),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS establishments (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nit VARCHAR(16) NOT NULL,
		name VARCHAR(32) NOT NULL,
		description TEXT,
		sustainability_points INT NOT NULL DEFAULT 0,
		address TEXT,
		mean_waiting_time DOUBLE,
		opening_hour TIME,
		closing_hour TIME,
		phone_number VARCHAR(12),
		website VARCHAR(255),
		logo VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS menus (
		id INT AUTO_INCREMENT PRIMARY KEY,
		establishment_id INT NOT NULL,
		title VARCHAR(32) NOT NULL,
		FOREIGN KEY (establishment_id) REFERENCES establishments(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS dishes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		menu_id INT NOT NULL,
		name VARCHAR(32) NOT NULL,
		description TEXT,
		price DOUBLE NOT NULL,
		img VARCHAR(255),
		FOREIGN KEY (menu_id) REFERENCES menus(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(32) NOT NULL UNIQUE,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS allergens (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(32) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS accessibility_features (
		id INT AUTO_INCREMENT PRIMARY KEY,
		establishment_id INT NOT NULL,
		name VARCHAR(32) NOT NULL,
		description TEXT,
		UNIQUE KEY uniq_feature_per_establishment (establishment_id, name),
		FOREIGN KEY (establishment_id) REFERENCES establishments(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS dish_category (
		dish_id INT NOT NULL,
		category_id INT NOT NULL,
		PRIMARY KEY (dish_id, category_id),
		FOREIGN KEY (dish_id) REFERENCES dishes(id) ON DELETE CASCADE,
		FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS dish_allergen (
		dish_id INT NOT NULL,
		allergen_id INT NOT NULL,
		PRIMARY KEY (dish_id, allergen_id),
		FOREIGN KEY (dish_id) REFERENCES dishes(id) ON DELETE CASCADE,
		FOREIGN KEY (allergen_id) REFERENCES allergens(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS establishment_category (
		establishment_id INT NOT NULL,
		category_id INT NOT NULL,
		PRIMARY KEY (establishment_id, category_id),
		FOREIGN KEY (establishment_id) REFERENCES establishments(id) ON DELETE CASCADE,
		FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS user_allergen (
		user_id INT NOT NULL,
		allergen_id INT NOT NULL,
		PRIMARY KEY (user_id, allergen_id),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (allergen_id) REFERENCES allergens(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		establishment_id INT NOT NULL,
		date DATETIME NOT NULL,
		people_count INT NOT NULL,
		status ENUM('pending','confirmed','cancelled') NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL,
		updated_at DATETIME,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (establishment_id) REFERENCES establishments(id) ON DELETE CASCADE
	)`,
	// The composite primary key closes the duplicate-review race between the
	// existence check and the insert.
	`CREATE TABLE IF NOT EXISTS reviews (
		user_id INT NOT NULL,
		establishment_id INT NOT NULL,
		rating ENUM('1','2','3','4','5') NOT NULL,
		comment TEXT,
		img VARCHAR(255),
		created_at DATETIME NOT NULL,
		PRIMARY KEY (user_id, establishment_id),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (establishment_id) REFERENCES establishments(id) ON DELETE CASCADE
	)`,
}

// Apply runs the schema statements against the given database.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
