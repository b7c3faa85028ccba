package services

import (
	"context"

	"gastroBack/internal/models"
	"gastroBack/internal/repositories"
)

type MenuService struct {
	MenuRepo *repositories.MenuRepository
}

func (s *MenuService) CreateMenu(ctx context.Context, menu models.Menu) (models.Menu, error) {
	return s.MenuRepo.CreateMenu(ctx, menu)
}

func (s *MenuService) GetMenuByID(ctx context.Context, id int) (models.Menu, error) {
	return s.MenuRepo.GetMenuByID(ctx, id)
}

func (s *MenuService) GetMenusByEstablishmentID(ctx context.Context, establishmentID int) ([]models.Menu, error) {
	return s.MenuRepo.GetMenusByEstablishmentID(ctx, establishmentID)
}

func (s *MenuService) GetMenuDishes(ctx context.Context, menuID int) ([]models.Dish, error) {
	return s.MenuRepo.GetMenuDishes(ctx, menuID)
}

func (s *MenuService) GetMenuDishesByCategory(ctx context.Context, menuID, categoryID int) ([]models.Dish, error) {
	return s.MenuRepo.GetMenuDishesByCategory(ctx, menuID, categoryID)
}

func (s *MenuService) GetMenuDish(ctx context.Context, menuID, dishID int) (models.Dish, error) {
	return s.MenuRepo.GetMenuDish(ctx, menuID, dishID)
}

func (s *MenuService) UpdateMenu(ctx context.Context, id int, title string) (models.Menu, error) {
	return s.MenuRepo.UpdateMenu(ctx, id, title)
}

func (s *MenuService) DeleteMenu(ctx context.Context, id int) error {
	return s.MenuRepo.DeleteMenu(ctx, id)
}
