package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"gastroBack/internal/models"
	"gastroBack/internal/repositories"
	"gastroBack/internal/services"
)

func newReservationHandler(t *testing.T) (*ReservationHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	repo := repositories.ReservationRepository{DB: db}
	return &ReservationHandler{Service: &services.ReservationService{ReservationRepo: &repo}}, mock
}

func TestReservationLifecycle(t *testing.T) {
	h, mock := newReservationHandler(t)

	// Create: references exist, row is inserted as pending.
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM establishments").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec("INSERT INTO reservations").
		WillReturnResult(sqlmock.NewResult(5, 1))

	body := `{"user_id":1,"establishment_id":7,"date":"2026-09-10T20:00:00Z","people_count":4}`
	req := httptest.NewRequest(http.MethodPost, "/reservas", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.CreateReservation(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", rr.Code, rr.Body.String())
	}
	var created models.Reservation
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Status != models.ReservationStatusPending {
		t.Errorf("created status = %q, want pending", created.Status)
	}
	if created.ID != 5 {
		t.Errorf("created id = %d, want 5", created.ID)
	}

	// Cancel: fetch then unconditional update.
	now := time.Now()
	mock.ExpectQuery("SELECT id, user_id, establishment_id").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "establishment_id", "date", "people_count", "status", "created_at", "updated_at"}).
			AddRow(5, 1, 7, now, 4, models.ReservationStatusPending, now, now))
	mock.ExpectExec("UPDATE reservations SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req = httptest.NewRequest(http.MethodPatch, "/reservas/5/cancelar?:id=5", nil)
	rr = httptest.NewRecorder()
	h.CancelReservation(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("cancel status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	var cancelled models.Reservation
	if err := json.NewDecoder(rr.Body).Decode(&cancelled); err != nil {
		t.Fatalf("decode cancel response: %v", err)
	}
	if cancelled.Status != models.ReservationStatusCancelled {
		t.Errorf("cancelled status = %q, want cancelled", cancelled.Status)
	}

	// Fetch: the cancelled status is what the store now reports.
	mock.ExpectQuery("SELECT id, user_id, establishment_id").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "establishment_id", "date", "people_count", "status", "created_at", "updated_at"}).
			AddRow(5, 1, 7, now, 4, models.ReservationStatusCancelled, now, now))

	req = httptest.NewRequest(http.MethodGet, "/reservas/5?:id=5", nil)
	rr = httptest.NewRecorder()
	h.GetReservationByID(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rr.Code)
	}
	var fetched models.Reservation
	if err := json.NewDecoder(rr.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.Status != models.ReservationStatusCancelled {
		t.Errorf("fetched status = %q, want cancelled", fetched.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateReservationMissingUserReturns404(t *testing.T) {
	h, mock := newReservationHandler(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	body := `{"user_id":42,"establishment_id":7,"date":"2026-09-10T20:00:00Z","people_count":2}`
	req := httptest.NewRequest(http.MethodPost, "/reservas", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.CreateReservation(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rr.Code, rr.Body.String())
	}
}

func TestUpdateReservationInvalidStatusReturns400(t *testing.T) {
	h, mock := newReservationHandler(t)

	body := `{"status":"done"}`
	req := httptest.NewRequest(http.MethodPut, "/reservas/5?:id=5", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.UpdateReservation(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rr.Code, rr.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetReservationInvalidID(t *testing.T) {
	h, _ := newReservationHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/reservas/abc?:id=abc", nil)
	rr := httptest.NewRecorder()
	h.GetReservationByID(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}
