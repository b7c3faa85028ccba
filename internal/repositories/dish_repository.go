package repositories

import (
	"context"
	"database/sql"

	"gastroBack/internal/models"
)

type DishRepository struct {
	DB *sql.DB
}

func (r *DishRepository) CreateDish(ctx context.Context, dish models.Dish) (models.Dish, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM menus WHERE id = ?`, dish.MenuID).Scan(&count); err != nil {
		return models.Dish{}, err
	}
	if count == 0 {
		return models.Dish{}, models.ErrMenuNotFound
	}

	result, err := r.DB.ExecContext(ctx,
		`INSERT INTO dishes (menu_id, name, description, price, img) VALUES (?, ?, ?, ?, ?)`,
		dish.MenuID, dish.Name, dish.Description, dish.Price, dish.Img)
	if err != nil {
		return models.Dish{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Dish{}, err
	}
	dish.ID = int(id)
	return dish, nil
}

func (r *DishRepository) GetDishByID(ctx context.Context, id int) (models.Dish, error) {
	var dish models.Dish
	query := `
        SELECT id, menu_id, name, description, price, img
        FROM dishes
        WHERE id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&dish.ID, &dish.MenuID, &dish.Name, &dish.Description, &dish.Price, &dish.Img,
	)
	if err == sql.ErrNoRows {
		return models.Dish{}, models.ErrDishNotFound
	}
	if err != nil {
		return models.Dish{}, err
	}
	return dish, nil
}

func (r *DishRepository) GetDishes(ctx context.Context) ([]models.Dish, error) {
	query := `
        SELECT id, menu_id, name, description, price, img
        FROM dishes
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []models.Dish{}
	for rows.Next() {
		var dish models.Dish
		if err := rows.Scan(&dish.ID, &dish.MenuID, &dish.Name, &dish.Description, &dish.Price, &dish.Img); err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *DishRepository) UpdateDish(ctx context.Context, id int, upd models.DishUpdate) (models.Dish, error) {
	dish, err := r.GetDishByID(ctx, id)
	if err != nil {
		return models.Dish{}, err
	}

	if upd.MenuID != nil {
		dish.MenuID = *upd.MenuID
	}
	if upd.Name != nil {
		dish.Name = *upd.Name
	}
	if upd.Description != nil {
		dish.Description = upd.Description
	}
	if upd.Price != nil {
		dish.Price = *upd.Price
	}
	if upd.Img != nil {
		dish.Img = upd.Img
	}

	query := `
        UPDATE dishes
        SET menu_id = ?, name = ?, description = ?, price = ?, img = ?
        WHERE id = ?
    `
	_, err = r.DB.ExecContext(ctx, query, dish.MenuID, dish.Name, dish.Description, dish.Price, dish.Img, dish.ID)
	if err != nil {
		return models.Dish{}, err
	}
	return dish, nil
}

func (r *DishRepository) UpdateImg(ctx context.Context, id int, imgURL string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE dishes SET img = ? WHERE id = ?`, imgURL, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrDishNotFound
	}
	return nil
}

func (r *DishRepository) DeleteDish(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM dishes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrDishNotFound
	}
	return nil
}

func (r *DishRepository) AddCategory(ctx context.Context, dishID, categoryID int) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM dishes WHERE id = ?`, dishID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return models.ErrDishNotFound
	}
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE id = ?`, categoryID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return models.ErrCategoryNotFound
	}
	_, err := r.DB.ExecContext(ctx,
		`INSERT IGNORE INTO dish_category (dish_id, category_id) VALUES (?, ?)`, dishID, categoryID)
	return err
}

func (r *DishRepository) RemoveCategory(ctx context.Context, dishID, categoryID int) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM dish_category WHERE dish_id = ? AND category_id = ?`, dishID, categoryID)
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

func (r *DishRepository) AddAllergen(ctx context.Context, dishID, allergenID int) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM dishes WHERE id = ?`, dishID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return models.ErrDishNotFound
	}
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM allergens WHERE id = ?`, allergenID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return models.ErrAllergenNotFound
	}
	_, err := r.DB.ExecContext(ctx,
		`INSERT IGNORE INTO dish_allergen (dish_id, allergen_id) VALUES (?, ?)`, dishID, allergenID)
	return err
}

func (r *DishRepository) RemoveAllergen(ctx context.Context, dishID, allergenID int) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM dish_allergen WHERE dish_id = ? AND allergen_id = ?`, dishID, allergenID)
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
