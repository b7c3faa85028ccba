package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"gastroBack/internal/models"
	"gastroBack/internal/repositories"
)

func newReviewService(t *testing.T) (*ReviewService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &ReviewService{ReviewsRepo: &repositories.ReviewRepository{DB: db}}, mock
}

func TestCreateReviewRejectsInvalidRating(t *testing.T) {
	svc, mock := newReviewService(t)

	// No DB expectations: an out-of-range rating must fail before any query.
	_, err := svc.CreateReview(context.Background(), models.Review{
		UserID:          1,
		EstablishmentID: 7,
		Rating:          "6",
	})
	if !errors.Is(err, models.ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateReviewRejectsInvalidRating(t *testing.T) {
	svc, mock := newReviewService(t)

	bad := "0"
	_, err := svc.UpdateReview(context.Background(), 1, 7, models.ReviewUpdate{Rating: &bad})
	if !errors.Is(err, models.ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateReviewWithoutRatingSkipsValidation(t *testing.T) {
	svc, mock := newReviewService(t)

	comment := "great food"
	mock.ExpectQuery("SELECT user_id, establishment_id").
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "establishment_id", "rating", "comment", "img", "created_at"}).
			AddRow(1, 7, "4", nil, nil, time.Now()))
	mock.ExpectExec("UPDATE reviews").
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := svc.UpdateReview(context.Background(), 1, 7, models.ReviewUpdate{Comment: &comment})
	if err != nil {
		t.Fatalf("update review: %v", err)
	}
	if updated.Rating != "4" {
		t.Errorf("rating = %q, want unchanged 4", updated.Rating)
	}
	if updated.Comment == nil || *updated.Comment != comment {
		t.Errorf("comment not applied: %v", updated.Comment)
	}
}
