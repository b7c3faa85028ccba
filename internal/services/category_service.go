package services

import (
	"context"

	"gastroBack/internal/models"
	"gastroBack/internal/repositories"
)

type CategoryService struct {
	CategoryRepo *repositories.CategoryRepository
}

func (s *CategoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	return s.CategoryRepo.CreateCategory(ctx, category)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id int) (models.Category, error) {
	return s.CategoryRepo.GetCategoryByID(ctx, id)
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.CategoryRepo.GetCategories(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int, upd models.CategoryUpdate) (models.Category, error) {
	return s.CategoryRepo.UpdateCategory(ctx, id, upd)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int) error {
	return s.CategoryRepo.DeleteCategory(ctx, id)
}
