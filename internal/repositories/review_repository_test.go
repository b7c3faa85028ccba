package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"gastroBack/internal/models"
)

func newReviewRepo(t *testing.T) (*ReviewRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &ReviewRepository{DB: db}, mock
}

func expectReviewRefChecks(mock sqlmock.Sqlmock, userID, establishmentID int) {
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM establishments").
		WithArgs(establishmentID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
}

func TestCreateReview(t *testing.T) {
	repo, mock := newReviewRepo(t)

	expectReviewRefChecks(mock, 1, 7)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reviews").
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO reviews").
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateReview(context.Background(), models.Review{
		UserID:          1,
		EstablishmentID: 7,
		Rating:          models.RatingFive,
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if created.Rating != models.RatingFive {
		t.Errorf("rating = %q, want %q", created.Rating, models.RatingFive)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateReviewDuplicate(t *testing.T) {
	repo, mock := newReviewRepo(t)

	expectReviewRefChecks(mock, 1, 7)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reviews").
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := repo.CreateReview(context.Background(), models.Review{
		UserID:          1,
		EstablishmentID: 7,
		Rating:          models.RatingThree,
	})
	if !errors.Is(err, models.ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
}

func TestCreateReviewDuplicateRace(t *testing.T) {
	repo, mock := newReviewRepo(t)

	// The count check passes but the insert loses the race; the duplicate
	// key error still surfaces as ErrAlreadyReviewed.
	expectReviewRefChecks(mock, 1, 7)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reviews").
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO reviews").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := repo.CreateReview(context.Background(), models.Review{
		UserID:          1,
		EstablishmentID: 7,
		Rating:          models.RatingThree,
	})
	if !errors.Is(err, models.ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
}

func TestCreateReviewMissingUser(t *testing.T) {
	repo, mock := newReviewRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := repo.CreateReview(context.Background(), models.Review{
		UserID:          42,
		EstablishmentID: 7,
		Rating:          models.RatingOne,
	})
	if !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetReviewNotFound(t *testing.T) {
	repo, mock := newReviewRepo(t)

	mock.ExpectQuery("SELECT user_id, establishment_id").
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "establishment_id", "rating", "comment", "img", "created_at"}))

	_, err := repo.GetReview(context.Background(), 1, 7)
	if !errors.Is(err, models.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestDeleteReviewNotFound(t *testing.T) {
	repo, mock := newReviewRepo(t)

	mock.ExpectExec("DELETE FROM reviews").
		WithArgs(1, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteReview(context.Background(), 1, 7); !errors.Is(err, models.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
