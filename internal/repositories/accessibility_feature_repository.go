package repositories

import (
	"context"
	"database/sql"

	"gastroBack/internal/models"
)

type AccessibilityFeatureRepository struct {
	DB *sql.DB
}

func (r *AccessibilityFeatureRepository) CreateFeature(ctx context.Context, feature models.AccessibilityFeature) (models.AccessibilityFeature, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM establishments WHERE id = ?`, feature.EstablishmentID).Scan(&count); err != nil {
		return models.AccessibilityFeature{}, err
	}
	if count == 0 {
		return models.AccessibilityFeature{}, models.ErrEstablishmentNotFound
	}

	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accessibility_features WHERE establishment_id = ? AND name = ?`,
		feature.EstablishmentID, feature.Name).Scan(&count); err != nil {
		return models.AccessibilityFeature{}, err
	}
	if count > 0 {
		return models.AccessibilityFeature{}, models.ErrDuplicateFeatureName
	}

	result, err := r.DB.ExecContext(ctx,
		`INSERT INTO accessibility_features (establishment_id, name, description) VALUES (?, ?, ?)`,
		feature.EstablishmentID, feature.Name, feature.Description)
	if err != nil {
		return models.AccessibilityFeature{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.AccessibilityFeature{}, err
	}
	feature.ID = int(id)
	return feature, nil
}

func (r *AccessibilityFeatureRepository) GetFeatureByID(ctx context.Context, id int) (models.AccessibilityFeature, error) {
	var feature models.AccessibilityFeature
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, establishment_id, name, description FROM accessibility_features WHERE id = ?`, id).
		Scan(&feature.ID, &feature.EstablishmentID, &feature.Name, &feature.Description)
	if err == sql.ErrNoRows {
		return models.AccessibilityFeature{}, models.ErrFeatureNotFound
	}
	if err != nil {
		return models.AccessibilityFeature{}, err
	}
	return feature, nil
}

func (r *AccessibilityFeatureRepository) GetFeatures(ctx context.Context) ([]models.AccessibilityFeature, error) {
	return r.queryFeatures(ctx, `SELECT id, establishment_id, name, description FROM accessibility_features`)
}

func (r *AccessibilityFeatureRepository) GetFeaturesByEstablishmentID(ctx context.Context, establishmentID int) ([]models.AccessibilityFeature, error) {
	return r.queryFeatures(ctx,
		`SELECT id, establishment_id, name, description FROM accessibility_features WHERE establishment_id = ?`,
		establishmentID)
}

func (r *AccessibilityFeatureRepository) queryFeatures(ctx context.Context, query string, args ...any) ([]models.AccessibilityFeature, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	features := []models.AccessibilityFeature{}
	for rows.Next() {
		var feature models.AccessibilityFeature
		if err := rows.Scan(&feature.ID, &feature.EstablishmentID, &feature.Name, &feature.Description); err != nil {
			return nil, err
		}
		features = append(features, feature)
	}
	return features, rows.Err()
}

func (r *AccessibilityFeatureRepository) UpdateFeature(ctx context.Context, id int, upd models.AccessibilityFeatureUpdate) (models.AccessibilityFeature, error) {
	feature, err := r.GetFeatureByID(ctx, id)
	if err != nil {
		return models.AccessibilityFeature{}, err
	}

	if upd.Name != nil && *upd.Name != feature.Name {
		var count int
		if err := r.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM accessibility_features WHERE establishment_id = ? AND name = ? AND id != ?`,
			feature.EstablishmentID, *upd.Name, id).Scan(&count); err != nil {
			return models.AccessibilityFeature{}, err
		}
		if count > 0 {
			return models.AccessibilityFeature{}, models.ErrDuplicateFeatureName
		}
		feature.Name = *upd.Name
	}
	if upd.Description != nil {
		feature.Description = upd.Description
	}

	_, err = r.DB.ExecContext(ctx,
		`UPDATE accessibility_features SET name = ?, description = ? WHERE id = ?`,
		feature.Name, feature.Description, feature.ID)
	if err != nil {
		return models.AccessibilityFeature{}, err
	}
	return feature, nil
}

func (r *AccessibilityFeatureRepository) DeleteFeature(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM accessibility_features WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrFeatureNotFound
	}
	return nil
}
