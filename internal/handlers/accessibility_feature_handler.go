package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gastroBack/internal/models"
	"gastroBack/internal/services"
)

type AccessibilityFeatureHandler struct {
	Service *services.AccessibilityFeatureService
}

func (h *AccessibilityFeatureHandler) CreateFeature(w http.ResponseWriter, r *http.Request) {
	var feature models.AccessibilityFeature
	if err := json.NewDecoder(r.Body).Decode(&feature); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateFeature(r.Context(), feature)
	if err != nil {
		if errors.Is(err, models.ErrEstablishmentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if errors.Is(err, models.ErrDuplicateFeatureName) || isDuplicateEntryError(err) {
			http.Error(w, models.ErrDuplicateFeatureName.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *AccessibilityFeatureHandler) GetFeatureByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid feature ID", http.StatusBadRequest)
		return
	}

	feature, err := h.Service.GetFeatureByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrFeatureNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(feature)
}

func (h *AccessibilityFeatureHandler) GetAllFeatures(w http.ResponseWriter, r *http.Request) {
	features, err := h.Service.GetFeatures(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(features); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *AccessibilityFeatureHandler) GetFeaturesByEstablishmentID(w http.ResponseWriter, r *http.Request) {
	establishmentID, err := strconv.Atoi(r.URL.Query().Get(":establecimiento_id"))
	if err != nil {
		http.Error(w, "Invalid establishment ID", http.StatusBadRequest)
		return
	}

	features, err := h.Service.GetFeaturesByEstablishmentID(r.Context(), establishmentID)
	if err != nil {
		if errors.Is(err, models.ErrEstablishmentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(features)
}

func (h *AccessibilityFeatureHandler) UpdateFeature(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid feature ID", http.StatusBadRequest)
		return
	}

	var upd models.AccessibilityFeatureUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateFeature(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, models.ErrFeatureNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if errors.Is(err, models.ErrDuplicateFeatureName) || isDuplicateEntryError(err) {
			http.Error(w, models.ErrDuplicateFeatureName.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *AccessibilityFeatureHandler) DeleteFeature(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid feature ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteFeature(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrFeatureNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Accessibility feature deleted successfully"})
}
