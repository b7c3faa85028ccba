package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"gastroBack/internal/models"
)

func newReservationRepo(t *testing.T) (*ReservationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &ReservationRepository{DB: db}, mock
}

func TestCreateReservationMissingUser(t *testing.T) {
	repo, mock := newReservationRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := repo.CreateReservation(context.Background(), models.Reservation{
		UserID:          42,
		EstablishmentID: 7,
		Date:            time.Now(),
		PeopleCount:     2,
	})
	if !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateReservationMissingUserWinsOverMissingEstablishment(t *testing.T) {
	repo, mock := newReservationRepo(t)

	// The user check runs first, so a request where both references are
	// dangling reports the missing user.
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := repo.CreateReservation(context.Background(), models.Reservation{
		UserID:          42,
		EstablishmentID: 9999,
	})
	if !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateReservationMissingEstablishment(t *testing.T) {
	repo, mock := newReservationRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM establishments").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := repo.CreateReservation(context.Background(), models.Reservation{
		UserID:          1,
		EstablishmentID: 7,
	})
	if !errors.Is(err, models.ErrEstablishmentNotFound) {
		t.Fatalf("expected ErrEstablishmentNotFound, got %v", err)
	}
}

func TestCreateReservationForcesPendingStatus(t *testing.T) {
	repo, mock := newReservationRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM establishments").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec("INSERT INTO reservations").
		WillReturnResult(sqlmock.NewResult(10, 1))

	created, err := repo.CreateReservation(context.Background(), models.Reservation{
		UserID:          1,
		EstablishmentID: 7,
		Date:            time.Now().Add(24 * time.Hour),
		PeopleCount:     4,
		Status:          models.ReservationStatusConfirmed,
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	if created.Status != models.ReservationStatusPending {
		t.Errorf("status = %q, want %q", created.Status, models.ReservationStatusPending)
	}
	if created.ID != 10 {
		t.Errorf("id = %d, want 10", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func reservationRows(res models.Reservation) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "establishment_id", "date", "people_count", "status", "created_at", "updated_at"}).
		AddRow(res.ID, res.UserID, res.EstablishmentID, res.Date, res.PeopleCount, res.Status, res.CreatedAt, res.UpdatedAt)
}

func TestCancelReservationIsIdempotent(t *testing.T) {
	repo, mock := newReservationRepo(t)

	existing := models.Reservation{
		ID:              5,
		UserID:          1,
		EstablishmentID: 7,
		Date:            time.Now(),
		PeopleCount:     2,
		Status:          models.ReservationStatusCancelled,
		CreatedAt:       time.Now(),
	}

	// Cancelling a reservation that is already cancelled still succeeds.
	mock.ExpectQuery("SELECT id, user_id, establishment_id").
		WithArgs(5).
		WillReturnRows(reservationRows(existing))
	mock.ExpectExec("UPDATE reservations SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	cancelled, err := repo.CancelReservation(context.Background(), 5)
	if err != nil {
		t.Fatalf("cancel reservation: %v", err)
	}
	if cancelled.Status != models.ReservationStatusCancelled {
		t.Errorf("status = %q, want cancelled", cancelled.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCancelReservationNotFound(t *testing.T) {
	repo, mock := newReservationRepo(t)

	mock.ExpectQuery("SELECT id, user_id, establishment_id").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "establishment_id", "date", "people_count", "status", "created_at", "updated_at"}))

	_, err := repo.CancelReservation(context.Background(), 99)
	if !errors.Is(err, models.ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}
}

func TestUpdateReservationKeepsUnsetFields(t *testing.T) {
	repo, mock := newReservationRepo(t)

	existing := models.Reservation{
		ID:              5,
		UserID:          1,
		EstablishmentID: 7,
		Date:            time.Date(2026, 9, 10, 20, 0, 0, 0, time.UTC),
		PeopleCount:     2,
		Status:          models.ReservationStatusPending,
		CreatedAt:       time.Now(),
	}

	mock.ExpectQuery("SELECT id, user_id, establishment_id").
		WithArgs(5).
		WillReturnRows(reservationRows(existing))
	mock.ExpectExec("UPDATE reservations").
		WillReturnResult(sqlmock.NewResult(0, 1))

	people := 6
	updated, err := repo.UpdateReservation(context.Background(), 5, models.ReservationUpdate{PeopleCount: &people})
	if err != nil {
		t.Fatalf("update reservation: %v", err)
	}
	if updated.PeopleCount != 6 {
		t.Errorf("people_count = %d, want 6", updated.PeopleCount)
	}
	if updated.Status != models.ReservationStatusPending {
		t.Errorf("status = %q, want pending", updated.Status)
	}
	if !updated.Date.Equal(existing.Date) {
		t.Errorf("date changed: %v", updated.Date)
	}
}

func TestDeleteReservationTwice(t *testing.T) {
	repo, mock := newReservationRepo(t)

	mock.ExpectExec("DELETE FROM reservations").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM reservations").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteReservation(context.Background(), 5); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.DeleteReservation(context.Background(), 5); !errors.Is(err, models.ErrReservationNotFound) {
		t.Fatalf("second delete: expected ErrReservationNotFound, got %v", err)
	}
}
