package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"gastroBack/internal/models"
	"gastroBack/internal/repositories"
	"gastroBack/internal/services"
)

func newReviewHandler(t *testing.T) (*ReviewHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	repo := repositories.ReviewRepository{DB: db}
	return &ReviewHandler{Service: &services.ReviewService{ReviewsRepo: &repo}}, mock
}

func expectReviewRefRows(mock sqlmock.Sqlmock, userID, establishmentID int) {
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM establishments").
		WithArgs(establishmentID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
}

func TestCreateReviewThenDuplicate(t *testing.T) {
	h, mock := newReviewHandler(t)

	// First create succeeds.
	expectReviewRefRows(mock, 1, 7)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reviews").
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO reviews").
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := `{"user_id":1,"establishment_id":7,"rating":"5","comment":"excelente"}`
	req := httptest.NewRequest(http.MethodPost, "/resenas", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.CreateReview(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("first create = %d, want 201: %s", rr.Code, rr.Body.String())
	}
	var created models.Review
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Rating != "5" {
		t.Errorf("rating = %q, want 5", created.Rating)
	}

	// Second create for the same pair is rejected.
	expectReviewRefRows(mock, 1, 7)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reviews").
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	req = httptest.NewRequest(http.MethodPost, "/resenas", strings.NewReader(body))
	rr = httptest.NewRecorder()
	h.CreateReview(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create = %d, want 400: %s", rr.Code, rr.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateReviewInvalidRatingReturns400(t *testing.T) {
	h, mock := newReviewHandler(t)

	body := `{"user_id":1,"establishment_id":7,"rating":"6"}`
	req := httptest.NewRequest(http.MethodPost, "/resenas", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.CreateReview(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rr.Code, rr.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateReviewInvalidRatingReturns400(t *testing.T) {
	h, mock := newReviewHandler(t)

	body := `{"rating":"6"}`
	req := httptest.NewRequest(http.MethodPut, "/resenas/usuario/1/establecimiento/7?:usuario_id=1&:establecimiento_id=7", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.UpdateReview(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rr.Code, rr.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetReviewNotFoundReturns404(t *testing.T) {
	h, mock := newReviewHandler(t)

	mock.ExpectQuery("SELECT user_id, establishment_id").
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "establishment_id", "rating", "comment", "img", "created_at"}))

	req := httptest.NewRequest(http.MethodGet, "/resenas/usuario/1/establecimiento/7?:usuario_id=1&:establecimiento_id=7", nil)
	rr := httptest.NewRecorder()
	h.GetReview(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rr.Code, rr.Body.String())
	}
}
