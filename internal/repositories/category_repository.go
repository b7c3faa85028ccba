package repositories

import (
	"context"
	"database/sql"

	"gastroBack/internal/models"
)

type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE name = ?`, category.Name).Scan(&count); err != nil {
		return models.Category{}, err
	}
	if count > 0 {
		return models.Category{}, models.ErrDuplicateCategoryName
	}

	result, err := r.DB.ExecContext(ctx,
		`INSERT INTO categories (name, description) VALUES (?, ?)`,
		category.Name, category.Description)
	if err != nil {
		return models.Category{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Category{}, err
	}
	category.ID = int(id)
	return category, nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id int) (models.Category, error) {
	var category models.Category
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, name, description FROM categories WHERE id = ?`, id).
		Scan(&category.ID, &category.Name, &category.Description)
	if err == sql.ErrNoRows {
		return models.Category{}, models.ErrCategoryNotFound
	}
	if err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (r *CategoryRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, description FROM categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, id int, upd models.CategoryUpdate) (models.Category, error) {
	category, err := r.GetCategoryByID(ctx, id)
	if err != nil {
		return models.Category{}, err
	}

	if upd.Name != nil && *upd.Name != category.Name {
		var count int
		if err := r.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM categories WHERE name = ? AND id != ?`, *upd.Name, id).Scan(&count); err != nil {
			return models.Category{}, err
		}
		if count > 0 {
			return models.Category{}, models.ErrDuplicateCategoryName
		}
		category.Name = *upd.Name
	}
	if upd.Description != nil {
		category.Description = upd.Description
	}

	_, err = r.DB.ExecContext(ctx,
		`UPDATE categories SET name = ?, description = ? WHERE id = ?`,
		category.Name, category.Description, category.ID)
	if err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrCategoryNotFound
	}
	return nil
}
