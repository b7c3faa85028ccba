package services

import (
	"context"

	"gastroBack/internal/models"
	"gastroBack/internal/repositories"
)

type AccessibilityFeatureService struct {
	FeatureRepo *repositories.AccessibilityFeatureRepository
}

func (s *AccessibilityFeatureService) CreateFeature(ctx context.Context, feature models.AccessibilityFeature) (models.AccessibilityFeature, error) {
	return s.FeatureRepo.CreateFeature(ctx, feature)
}

func (s *AccessibilityFeatureService) GetFeatureByID(ctx context.Context, id int) (models.AccessibilityFeature, error) {
	return s.FeatureRepo.GetFeatureByID(ctx, id)
}

func (s *AccessibilityFeatureService) GetFeatures(ctx context.Context) ([]models.AccessibilityFeature, error) {
	return s.FeatureRepo.GetFeatures(ctx)
}

func (s *AccessibilityFeatureService) GetFeaturesByEstablishmentID(ctx context.Context, establishmentID int) ([]models.AccessibilityFeature, error) {
	return s.FeatureRepo.GetFeaturesByEstablishmentID(ctx, establishmentID)
}

func (s *AccessibilityFeatureService) UpdateFeature(ctx context.Context, id int, upd models.AccessibilityFeatureUpdate) (models.AccessibilityFeature, error) {
	return s.FeatureRepo.UpdateFeature(ctx, id, upd)
}

func (s *AccessibilityFeatureService) DeleteFeature(ctx context.Context, id int) error {
	return s.FeatureRepo.DeleteFeature(ctx, id)
}
