package services

import (
	"context"

	"gastroBack/internal/models"
	"gastroBack/internal/repositories"
)

type EstablishmentService struct {
	EstablishmentRepo *repositories.EstablishmentRepository
}

func (s *EstablishmentService) CreateEstablishment(ctx context.Context, est models.Establishment) (models.Establishment, error) {
	return s.EstablishmentRepo.CreateEstablishment(ctx, est)
}

func (s *EstablishmentService) GetEstablishmentByID(ctx context.Context, id int) (models.Establishment, error) {
	return s.EstablishmentRepo.GetEstablishmentByID(ctx, id)
}

func (s *EstablishmentService) GetEstablishments(ctx context.Context) ([]models.Establishment, error) {
	return s.EstablishmentRepo.GetEstablishments(ctx)
}

func (s *EstablishmentService) UpdateEstablishment(ctx context.Context, id int, upd models.EstablishmentUpdate) (models.Establishment, error) {
	return s.EstablishmentRepo.UpdateEstablishment(ctx, id, upd)
}

func (s *EstablishmentService) UpdateLogo(ctx context.Context, id int, logoURL string) error {
	return s.EstablishmentRepo.UpdateLogo(ctx, id, logoURL)
}

func (s *EstablishmentService) DeleteEstablishment(ctx context.Context, id int) error {
	return s.EstablishmentRepo.DeleteEstablishment(ctx, id)
}

func (s *EstablishmentService) AddCategory(ctx context.Context, establishmentID, categoryID int) error {
	return s.EstablishmentRepo.AddCategory(ctx, establishmentID, categoryID)
}

func (s *EstablishmentService) RemoveCategory(ctx context.Context, establishmentID, categoryID int) error {
	return s.EstablishmentRepo.RemoveCategory(ctx, establishmentID, categoryID)
}

func (s *EstablishmentService) GetCategories(ctx context.Context, establishmentID int) ([]models.Category, error) {
	return s.EstablishmentRepo.GetCategories(ctx, establishmentID)
}
