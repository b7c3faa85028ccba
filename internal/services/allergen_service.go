package services

import (
	"context"

	"gastroBack/internal/models"
	"gastroBack/internal/repositories"
)

type AllergenService struct {
	AllergenRepo *repositories.AllergenRepository
}

func (s *AllergenService) CreateAllergen(ctx context.Context, allergen models.Allergen) (models.Allergen, error) {
	return s.AllergenRepo.CreateAllergen(ctx, allergen)
}

func (s *AllergenService) GetAllergenByID(ctx context.Context, id int) (models.Allergen, error) {
	return s.AllergenRepo.GetAllergenByID(ctx, id)
}

func (s *AllergenService) GetAllergens(ctx context.Context) ([]models.Allergen, error) {
	return s.AllergenRepo.GetAllergens(ctx)
}

func (s *AllergenService) GetAllergensByDishID(ctx context.Context, dishID int) ([]models.Allergen, error) {
	return s.AllergenRepo.GetAllergensByDishID(ctx, dishID)
}

func (s *AllergenService) GetAllergensByUserID(ctx context.Context, userID int) ([]models.Allergen, error) {
	return s.AllergenRepo.GetAllergensByUserID(ctx, userID)
}

func (s *AllergenService) AddAllergenToUser(ctx context.Context, userID, allergenID int) error {
	return s.AllergenRepo.AddAllergenToUser(ctx, userID, allergenID)
}

func (s *AllergenService) RemoveAllergenFromUser(ctx context.Context, userID, allergenID int) error {
	return s.AllergenRepo.RemoveAllergenFromUser(ctx, userID, allergenID)
}

func (s *AllergenService) UpdateAllergen(ctx context.Context, id int, name string) (models.Allergen, error) {
	return s.AllergenRepo.UpdateAllergen(ctx, id, name)
}

func (s *AllergenService) DeleteAllergen(ctx context.Context, id int) error {
	return s.AllergenRepo.DeleteAllergen(ctx, id)
}
