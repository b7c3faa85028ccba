package services

import (
	"context"

	"gastroBack/internal/models"
	"gastroBack/internal/repositories"
)

type ReviewService struct {
	ReviewsRepo *repositories.ReviewRepository
}

func (s *ReviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	rating, err := models.ParseRating(review.Rating)
	if err != nil {
		return models.Review{}, err
	}
	review.Rating = rating
	return s.ReviewsRepo.CreateReview(ctx, review)
}

func (s *ReviewService) GetReview(ctx context.Context, userID, establishmentID int) (models.Review, error) {
	return s.ReviewsRepo.GetReview(ctx, userID, establishmentID)
}

func (s *ReviewService) GetReviews(ctx context.Context) ([]models.Review, error) {
	return s.ReviewsRepo.GetReviews(ctx)
}

func (s *ReviewService) GetReviewsByEstablishmentID(ctx context.Context, establishmentID int) ([]models.Review, error) {
	return s.ReviewsRepo.GetReviewsByEstablishmentID(ctx, establishmentID)
}

func (s *ReviewService) GetReviewsByUserID(ctx context.Context, userID int) ([]models.Review, error) {
	return s.ReviewsRepo.GetReviewsByUserID(ctx, userID)
}

// UpdateReview validates the rating string, if present, before anything is
// written; an invalid rating leaves the stored review untouched.
func (s *ReviewService) UpdateReview(ctx context.Context, userID, establishmentID int, upd models.ReviewUpdate) (models.Review, error) {
	if upd.Rating != nil {
		rating, err := models.ParseRating(*upd.Rating)
		if err != nil {
			return models.Review{}, err
		}
		upd.Rating = &rating
	}
	return s.ReviewsRepo.UpdateReview(ctx, userID, establishmentID, upd)
}

func (s *ReviewService) DeleteReview(ctx context.Context, userID, establishmentID int) error {
	return s.ReviewsRepo.DeleteReview(ctx, userID, establishmentID)
}
