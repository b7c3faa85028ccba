package repositories

import (
	"context"
	"database/sql"

	"gastroBack/internal/models"
)

type AllergenRepository struct {
	DB *sql.DB
}

func (r *AllergenRepository) CreateAllergen(ctx context.Context, allergen models.Allergen) (models.Allergen, error) {
	result, err := r.DB.ExecContext(ctx, `INSERT INTO allergens (name) VALUES (?)`, allergen.Name)
	if err != nil {
		return models.Allergen{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Allergen{}, err
	}
	allergen.ID = int(id)
	return allergen, nil
}

func (r *AllergenRepository) GetAllergenByID(ctx context.Context, id int) (models.Allergen, error) {
	var allergen models.Allergen
	err := r.DB.QueryRowContext(ctx, `SELECT id, name FROM allergens WHERE id = ?`, id).
		Scan(&allergen.ID, &allergen.Name)
	if err == sql.ErrNoRows {
		return models.Allergen{}, models.ErrAllergenNotFound
	}
	if err != nil {
		return models.Allergen{}, err
	}
	return allergen, nil
}

func (r *AllergenRepository) GetAllergens(ctx context.Context) ([]models.Allergen, error) {
	return r.queryAllergens(ctx, `SELECT id, name FROM allergens`)
}

func (r *AllergenRepository) GetAllergensByDishID(ctx context.Context, dishID int) ([]models.Allergen, error) {
	query := `
        SELECT a.id, a.name
        FROM allergens a
        JOIN dish_allergen da ON da.allergen_id = a.id
        WHERE da.dish_id = ?
    `
	return r.queryAllergens(ctx, query, dishID)
}

func (r *AllergenRepository) GetAllergensByUserID(ctx context.Context, userID int) ([]models.Allergen, error) {
	query := `
        SELECT a.id, a.name
        FROM allergens a
        JOIN user_allergen ua ON ua.allergen_id = a.id
        WHERE ua.user_id = ?
    `
	return r.queryAllergens(ctx, query, userID)
}

func (r *AllergenRepository) queryAllergens(ctx context.Context, query string, args ...any) ([]models.Allergen, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	allergens := []models.Allergen{}
	for rows.Next() {
		var allergen models.Allergen
		if err := rows.Scan(&allergen.ID, &allergen.Name); err != nil {
			return nil, err
		}
		allergens = append(allergens, allergen)
	}
	return allergens, rows.Err()
}

func (r *AllergenRepository) AddAllergenToUser(ctx context.Context, userID, allergenID int) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = ?`, userID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return models.ErrUserNotFound
	}
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM allergens WHERE id = ?`, allergenID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return models.ErrAllergenNotFound
	}
	_, err := r.DB.ExecContext(ctx,
		`INSERT IGNORE INTO user_allergen (user_id, allergen_id) VALUES (?, ?)`, userID, allergenID)
	return err
}

func (r *AllergenRepository) RemoveAllergenFromUser(ctx context.Context, userID, allergenID int) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM user_allergen WHERE user_id = ? AND allergen_id = ?`, userID, allergenID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrAssociationNotFound
	}
	return nil
}

func (r *AllergenRepository) UpdateAllergen(ctx context.Context, id int, name string) (models.Allergen, error) {
	allergen, err := r.GetAllergenByID(ctx, id)
	if err != nil {
		return models.Allergen{}, err
	}

	allergen.Name = name
	_, err = r.DB.ExecContext(ctx, `UPDATE allergens SET name = ? WHERE id = ?`, allergen.Name, allergen.ID)
	if err != nil {
		return models.Allergen{}, err
	}
	return allergen, nil
}

func (r *AllergenRepository) DeleteAllergen(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM allergens WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrAllergenNotFound
	}
	return nil
}
