package repositories

import (
	"context"
	"database/sql"

	"gastroBack/internal/models"
)

type EstablishmentRepository struct {
	DB *sql.DB
}

func (r *EstablishmentRepository) CreateEstablishment(ctx context.Context, est models.Establishment) (models.Establishment, error) {
	query := `
        INSERT INTO establishments (nit, name, description, sustainability_points, address, mean_waiting_time,
            opening_hour, closing_hour, phone_number, website, logo)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	result, err := r.DB.ExecContext(ctx, query,
		est.NIT, est.Name, est.Description, est.SustainabilityPoints, est.Address, est.MeanWaitingTime,
		est.OpeningHour, est.ClosingHour, est.PhoneNumber, est.Website, est.Logo,
	)
	if err != nil {
		return models.Establishment{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Establishment{}, err
	}
	est.ID = int(id)
	return est, nil
}

func (r *EstablishmentRepository) GetEstablishmentByID(ctx context.Context, id int) (models.Establishment, error) {
	var est models.Establishment
	query := `
        SELECT id, nit, name, description, sustainability_points, address, mean_waiting_time,
               opening_hour, closing_hour, phone_number, website, logo
        FROM establishments
        WHERE id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&est.ID, &est.NIT, &est.Name, &est.Description, &est.SustainabilityPoints, &est.Address,
		&est.MeanWaitingTime, &est.OpeningHour, &est.ClosingHour, &est.PhoneNumber, &est.Website, &est.Logo,
	)
	if err == sql.ErrNoRows {
		return models.Establishment{}, models.ErrEstablishmentNotFound
	}
	if err != nil {
		return models.Establishment{}, err
	}
	return est, nil
}

func (r *EstablishmentRepository) GetEstablishments(ctx context.Context) ([]models.Establishment, error) {
	query := `
        SELECT id, nit, name, description, sustainability_points, address, mean_waiting_time,
               opening_hour, closing_hour, phone_number, website, logo
        FROM establishments
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	establishments := []models.Establishment{}
	for rows.Next() {
		var est models.Establishment
		err := rows.Scan(&est.ID, &est.NIT, &est.Name, &est.Description, &est.SustainabilityPoints,
			&est.Address, &est.MeanWaitingTime, &est.OpeningHour, &est.ClosingHour,
			&est.PhoneNumber, &est.Website, &est.Logo)
		if err != nil {
			return nil, err
		}
		establishments = append(establishments, est)
	}
	return establishments, rows.Err()
}

func (r *EstablishmentRepository) UpdateEstablishment(ctx context.Context, id int, upd models.EstablishmentUpdate) (models.Establishment, error) {
	est, err := r.GetEstablishmentByID(ctx, id)
	if err != nil {
		return models.Establishment{}, err
	}

	if upd.NIT != nil {
		est.NIT = *upd.NIT
	}
	if upd.Name != nil {
		est.Name = *upd.Name
	}
	if upd.Description != nil {
		est.Description = upd.Description
	}
	if upd.SustainabilityPoints != nil {
		est.SustainabilityPoints = *upd.SustainabilityPoints
	}
	if upd.Address != nil {
		est.Address = upd.Address
	}
	if upd.MeanWaitingTime != nil {
		est.MeanWaitingTime = upd.MeanWaitingTime
	}
	if upd.OpeningHour != nil {
		est.OpeningHour = upd.OpeningHour
	}
	if upd.ClosingHour != nil {
		est.ClosingHour = upd.ClosingHour
	}
	if upd.PhoneNumber != nil {
		est.PhoneNumber = upd.PhoneNumber
	}
	if upd.Website != nil {
		est.Website = upd.Website
	}
	if upd.Logo != nil {
		est.Logo = upd.Logo
	}

	query := `
        UPDATE establishments
        SET nit = ?, name = ?, description = ?, sustainability_points = ?, address = ?, mean_waiting_time = ?,
            opening_hour = ?, closing_hour = ?, phone_number = ?, website = ?, logo = ?
        WHERE id = ?
    `
	_, err = r.DB.ExecContext(ctx, query,
		est.NIT, est.Name, est.Description, est.SustainabilityPoints, est.Address, est.MeanWaitingTime,
		est.OpeningHour, est.ClosingHour, est.PhoneNumber, est.Website, est.Logo, est.ID,
	)
	if err != nil {
		return models.Establishment{}, err
	}
	return est, nil
}

func (r *EstablishmentRepository) UpdateLogo(ctx context.Context, id int, logoURL string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE establishments SET logo = ? WHERE id = ?`, logoURL, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrEstablishmentNotFound
	}
	return nil
}

func (r *EstablishmentRepository) DeleteEstablishment(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM establishments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrEstablishmentNotFound
	}
	return nil
}

func (r *EstablishmentRepository) AddCategory(ctx context.Context, establishmentID, categoryID int) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM establishments WHERE id = ?`, establishmentID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return models.ErrEstablishmentNotFound
	}
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE id = ?`, categoryID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return models.ErrCategoryNotFound
	}
	_, err := r.DB.ExecContext(ctx,
		`INSERT IGNORE INTO establishment_category (establishment_id, category_id) VALUES (?, ?)`,
		establishmentID, categoryID)
	return err
}

func (r *EstablishmentRepository) RemoveCategory(ctx context.Context, establishmentID, categoryID int) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM establishment_category WHERE establishment_id = ? AND category_id = ?`,
		establishmentID, categoryID)
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

func (r *EstablishmentRepository) GetCategories(ctx context.Context, establishmentID int) ([]models.Category, error) {
	query := `
        SELECT c.id, c.name, c.description
        FROM categories c
        JOIN establishment_category ec ON ec.category_id = c.id
        WHERE ec.establishment_id = ?
    `
	rows, err := r.DB.QueryContext(ctx, query, establishmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}
