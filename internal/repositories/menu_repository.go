package repositories

import (
	"context"
	"database/sql"

	"gastroBack/internal/models"
)

type MenuRepository struct {
	DB *sql.DB
}

func (r *MenuRepository) CreateMenu(ctx context.Context, menu models.Menu) (models.Menu, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM establishments WHERE id = ?`, menu.EstablishmentID).Scan(&count); err != nil {
		return models.Menu{}, err
	}
	if count == 0 {
		return models.Menu{}, models.ErrEstablishmentNotFound
	}

	result, err := r.DB.ExecContext(ctx,
		`INSERT INTO menus (establishment_id, title) VALUES (?, ?)`,
		menu.EstablishmentID, menu.Title)
	if err != nil {
		return models.Menu{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Menu{}, err
	}
	menu.ID = int(id)
	return menu, nil
}

func (r *MenuRepository) GetMenuByID(ctx context.Context, id int) (models.Menu, error) {
	var menu models.Menu
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, establishment_id, title FROM menus WHERE id = ?`, id).
		Scan(&menu.ID, &menu.EstablishmentID, &menu.Title)
	if err == sql.ErrNoRows {
		return models.Menu{}, models.ErrMenuNotFound
	}
	if err != nil {
		return models.Menu{}, err
	}
	return menu, nil
}

func (r *MenuRepository) GetMenusByEstablishmentID(ctx context.Context, establishmentID int) ([]models.Menu, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, establishment_id, title FROM menus WHERE establishment_id = ?`, establishmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := []models.Menu{}
	for rows.Next() {
		var menu models.Menu
		if err := rows.Scan(&menu.ID, &menu.EstablishmentID, &menu.Title); err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}
	return menus, rows.Err()
}

func (r *MenuRepository) GetMenuDishes(ctx context.Context, menuID int) ([]models.Dish, error) {
	if _, err := r.GetMenuByID(ctx, menuID); err != nil {
		return nil, err
	}

	query := `
        SELECT id, menu_id, name, description, price, img
        FROM dishes
        WHERE menu_id = ?
    `
	return r.queryDishes(ctx, query, menuID)
}

func (r *MenuRepository) GetMenuDishesByCategory(ctx context.Context, menuID, categoryID int) ([]models.Dish, error) {
	if _, err := r.GetMenuByID(ctx, menuID); err != nil {
		return nil, err
	}

	query := `
        SELECT d.id, d.menu_id, d.name, d.description, d.price, d.img
        FROM dishes d
        JOIN dish_category dc ON dc.dish_id = d.id
        WHERE d.menu_id = ? AND dc.category_id = ?
    `
	return r.queryDishes(ctx, query, menuID, categoryID)
}

func (r *MenuRepository) GetMenuDish(ctx context.Context, menuID, dishID int) (models.Dish, error) {
	var dish models.Dish
	query := `
        SELECT id, menu_id, name, description, price, img
        FROM dishes
        WHERE menu_id = ? AND id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, menuID, dishID).Scan(
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

func (r *MenuRepository) queryDishes(ctx context.Context, query string, args ...any) ([]models.Dish, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
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

func (r *MenuRepository) UpdateMenu(ctx context.Context, id int, title string) (models.Menu, error) {
	menu, err := r.GetMenuByID(ctx, id)
	if err != nil {
		return models.Menu{}, err
	}

	menu.Title = title
	_, err = r.DB.ExecContext(ctx, `UPDATE menus SET title = ? WHERE id = ?`, menu.Title, menu.ID)
	if err != nil {
		return models.Menu{}, err
	}
	return menu, nil
}

func (r *MenuRepository) DeleteMenu(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM menus WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrMenuNotFound
	}
	return nil
}
