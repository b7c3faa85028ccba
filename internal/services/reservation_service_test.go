package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"gastroBack/internal/models"
	"gastroBack/internal/repositories"
)

func newReservationService(t *testing.T) (*ReservationService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &ReservationService{ReservationRepo: &repositories.ReservationRepository{DB: db}}, mock
}

func TestUpdateReservationRejectsInvalidStatus(t *testing.T) {
	svc, mock := newReservationService(t)

	// No DB expectations: an unknown status must fail before any query.
	bad := "done"
	_, err := svc.UpdateReservation(context.Background(), 5, models.ReservationUpdate{Status: &bad})
	if !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
