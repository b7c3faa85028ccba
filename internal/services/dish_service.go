package services

import (
	"context"

	"gastroBack/internal/models"
	"gastroBack/internal/repositories"
)

type DishService struct {
	DishRepo *repositories.DishRepository
}

func (s *DishService) CreateDish(ctx context.Context, dish models.Dish) (models.Dish, error) {
	if dish.Price <= 0 {
		return models.Dish{}, models.ErrInvalidPrice
	}
	return s.DishRepo.CreateDish(ctx, dish)
}

func (s *DishService) GetDishByID(ctx context.Context, id int) (models.Dish, error) {
	return s.DishRepo.GetDishByID(ctx, id)
}

func (s *DishService) GetDishes(ctx context.Context) ([]models.Dish, error) {
	return s.DishRepo.GetDishes(ctx)
}

func (s *DishService) UpdateDish(ctx context.Context, id int, upd models.DishUpdate) (models.Dish, error) {
	if upd.Price != nil && *upd.Price <= 0 {
		return models.Dish{}, models.ErrInvalidPrice
	}
	return s.DishRepo.UpdateDish(ctx, id, upd)
}

func (s *DishService) UpdateImg(ctx context.Context, id int, imgURL string) error {
	return s.DishRepo.UpdateImg(ctx, id, imgURL)
}

func (s *DishService) DeleteDish(ctx context.Context, id int) error {
	return s.DishRepo.DeleteDish(ctx, id)
}

func (s *DishService) AddCategory(ctx context.Context, dishID, categoryID int) error {
	return s.DishRepo.AddCategory(ctx, dishID, categoryID)
}

func (s *DishService) RemoveCategory(ctx context.Context, dishID, categoryID int) error {
	return s.DishRepo.RemoveCategory(ctx, dishID, categoryID)
}

func (s *DishService) AddAllergen(ctx context.Context, dishID, allergenID int) error {
	return s.DishRepo.AddAllergen(ctx, dishID, allergenID)
}

func (s *DishService) RemoveAllergen(ctx context.Context, dishID, allergenID int) error {
	return s.DishRepo.RemoveAllergen(ctx, dishID, allergenID)
}
