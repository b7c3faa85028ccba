package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gastroBack/internal/models"
	"gastroBack/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

// reviewKey pulls the (user, establishment) pair out of the path. Reviews
// have no surrogate ID; the pair is the key.
func reviewKey(r *http.Request) (int, int, error) {
	userID, err := strconv.Atoi(r.URL.Query().Get(":usuario_id"))
	if err != nil {
		return 0, 0, err
	}
	establishmentID, err := strconv.Atoi(r.URL.Query().Get(":establecimiento_id"))
	if err != nil {
		return 0, 0, err
	}
	return userID, establishmentID, nil
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateReview(r.Context(), review)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) || errors.Is(err, models.ErrEstablishmentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if errors.Is(err, models.ErrAlreadyReviewed) || errors.Is(err, models.ErrInvalidRating) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if isForeignKeyConstraintError(err) {
			http.Error(w, "Referenced user or establishment does not exist", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	userID, establishmentID, err := reviewKey(r)
	if err != nil {
		http.Error(w, "Invalid review key", http.StatusBadRequest)
		return
	}

	review, err := h.Service.GetReview(r.Context(), userID, establishmentID)
	if err != nil {
		if errors.Is(err, models.ErrReviewNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(review)
}

func (h *ReviewHandler) GetAllReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Service.GetReviews(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reviews); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *ReviewHandler) GetReviewsByEstablishmentID(w http.ResponseWriter, r *http.Request) {
	establishmentID, err := strconv.Atoi(r.URL.Query().Get(":establecimiento_id"))
	if err != nil {
		http.Error(w, "Invalid establishment ID", http.StatusBadRequest)
		return
	}

	reviews, err := h.Service.GetReviewsByEstablishmentID(r.Context(), establishmentID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}

func (h *ReviewHandler) GetReviewsByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(r.URL.Query().Get(":usuario_id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	reviews, err := h.Service.GetReviewsByUserID(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	userID, establishmentID, err := reviewKey(r)
	if err != nil {
		http.Error(w, "Invalid review key", http.StatusBadRequest)
		return
	}

	var upd models.ReviewUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateReview(r.Context(), userID, establishmentID, upd)
	if err != nil {
		if errors.Is(err, models.ErrReviewNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if errors.Is(err, models.ErrInvalidRating) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, establishmentID, err := reviewKey(r)
	if err != nil {
		http.Error(w, "Invalid review key", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteReview(r.Context(), userID, establishmentID); err != nil {
		if errors.Is(err, models.ErrReviewNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Review deleted successfully"})
}
