package repositories

import (
	"context"
	"database/sql"
	"time"

	"gastroBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        INSERT INTO users (role, name, last_name, email, password, phone, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	user.CreatedAt = time.Now()
	user.UpdatedAt = &user.CreatedAt
	result, err := r.DB.ExecContext(ctx, query,
		user.Role, user.Name, user.LastName, user.Email, user.Password, user.Phone, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User
	query := `
        SELECT id, role, name, last_name, email, password, phone, status, created_at, updated_at
        FROM users
        WHERE id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Role, &user.Name, &user.LastName, &user.Email, &user.Password,
		&user.Phone, &user.Status, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	query := `
        SELECT id, role, name, last_name, email, password, phone, status, created_at, updated_at
        FROM users
        WHERE email = ?
    `
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Role, &user.Name, &user.LastName, &user.Email, &user.Password,
		&user.Phone, &user.Status, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	query := `
        SELECT id, role, name, last_name, email, phone, status, created_at, updated_at
        FROM users
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		err := rows.Scan(&user.ID, &user.Role, &user.Name, &user.LastName, &user.Email,
			&user.Phone, &user.Status, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (models.User, error) {
	user, err := r.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.LastName != nil {
		user.LastName = upd.LastName
	}
	if upd.Phone != nil {
		user.Phone = upd.Phone
	}
	updatedAt := time.Now()
	user.UpdatedAt = &updatedAt

	query := `
        UPDATE users
        SET name = ?, last_name = ?, phone = ?, updated_at = ?
        WHERE id = ?
    `
	_, err = r.DB.ExecContext(ctx, query, user.Name, user.LastName, user.Phone, user.UpdatedAt, user.ID)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int, hashedPassword string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE users SET password = ?, updated_at = ? WHERE id = ?`,
		hashedPassword, time.Now(), id,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id int, role string) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = ?`, id).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return models.ErrUserNotFound
	}
	_, err := r.DB.ExecContext(ctx,
		`UPDATE users SET role = ?, updated_at = ? WHERE id = ?`, role, time.Now(), id)
	return err
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = ?`, id).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return models.ErrUserNotFound
	}
	_, err := r.DB.ExecContext(ctx,
		`UPDATE users SET status = ?, updated_at = ? WHERE id = ?`, status, time.Now(), id)
	return err
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// SetUserAllergens replaces the user's allergen set in one transaction.
func (r *UserRepository) SetUserAllergens(ctx context.Context, userID int, allergenIDs []int) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = ?`, userID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return models.ErrUserNotFound
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM user_allergen WHERE user_id = ?`, userID); err != nil {
		tx.Rollback()
		return err
	}
	for _, allergenID := range allergenIDs {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO user_allergen (user_id, allergen_id) VALUES (?, ?)`, userID, allergenID); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `
        INSERT INTO sessions (user_id, role, refresh_token, expires_at)
        VALUES (?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE role = VALUES(role), refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at)
    `
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	query := `
        SELECT user_id, role, refresh_token, expires_at
        FROM sessions
        WHERE refresh_token = ?
    `
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}
