package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gastroBack/internal/models"
	"gastroBack/internal/services"
)

type AllergenHandler struct {
	Service *services.AllergenService
}

func (h *AllergenHandler) CreateAllergen(w http.ResponseWriter, r *http.Request) {
	var allergen models.Allergen
	if err := json.NewDecoder(r.Body).Decode(&allergen); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateAllergen(r.Context(), allergen)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *AllergenHandler) GetAllergenByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid allergen ID", http.StatusBadRequest)
		return
	}

	allergen, err := h.Service.GetAllergenByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrAllergenNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(allergen)
}

func (h *AllergenHandler) GetAllAllergens(w http.ResponseWriter, r *http.Request) {
	allergens, err := h.Service.GetAllergens(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(allergens); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *AllergenHandler) GetAllergensByDishID(w http.ResponseWriter, r *http.Request) {
	dishID, err := strconv.Atoi(getParam(r, "dish_id"))
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}

	allergens, err := h.Service.GetAllergensByDishID(r.Context(), dishID)
	if err != nil {
		if errors.Is(err, models.ErrDishNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(allergens)
}

func (h *AllergenHandler) GetAllergensByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(getParam(r, "user_id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	allergens, err := h.Service.GetAllergensByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(allergens)
}

func (h *AllergenHandler) AddAllergenToUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(getParam(r, "user_id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	allergenID, err := strconv.Atoi(getParam(r, "allergen_id"))
	if err != nil {
		http.Error(w, "Invalid allergen ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.AddAllergenToUser(r.Context(), userID, allergenID); err != nil {
		if errors.Is(err, models.ErrUserNotFound) || errors.Is(err, models.ErrAllergenNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Allergen added to user"})
}

func (h *AllergenHandler) RemoveAllergenFromUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(getParam(r, "user_id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	allergenID, err := strconv.Atoi(getParam(r, "allergen_id"))
	if err != nil {
		http.Error(w, "Invalid allergen ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.RemoveAllergenFromUser(r.Context(), userID, allergenID); err != nil {
		if errors.Is(err, models.ErrAssociationNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Allergen removed from user"})
}

func (h *AllergenHandler) UpdateAllergen(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid allergen ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateAllergen(r.Context(), id, body.Name)
	if err != nil {
		if errors.Is(err, models.ErrAllergenNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *AllergenHandler) DeleteAllergen(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid allergen ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteAllergen(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrAllergenNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Allergen deleted successfully"})
}
