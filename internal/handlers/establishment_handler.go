package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"gastroBack/internal/models"
	"gastroBack/internal/services"
	"gastroBack/utils"
)

type EstablishmentHandler struct {
	Service *services.EstablishmentService
}

func (h *EstablishmentHandler) CreateEstablishment(w http.ResponseWriter, r *http.Request) {
	var est models.Establishment
	if err := json.NewDecoder(r.Body).Decode(&est); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateEstablishment(r.Context(), est)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *EstablishmentHandler) GetEstablishmentByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing establishment ID", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid establishment ID", http.StatusBadRequest)
		return
	}

	est, err := h.Service.GetEstablishmentByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrEstablishmentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(est)
}

func (h *EstablishmentHandler) GetAllEstablishments(w http.ResponseWriter, r *http.Request) {
	ests, err := h.Service.GetEstablishments(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ests); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *EstablishmentHandler) UpdateEstablishment(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing establishment ID", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid establishment ID", http.StatusBadRequest)
		return
	}

	var upd models.EstablishmentUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateEstablishment(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, models.ErrEstablishmentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *EstablishmentHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid establishment ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		http.Error(w, "Missing logo file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read logo file", http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(header.Filename))
	logoURL, err := utils.UploadFileToS3(data, fileName, "establishments")
	if err != nil {
		http.Error(w, "Failed to store logo", http.StatusInternalServerError)
		return
	}

	if err := h.Service.UpdateLogo(r.Context(), id, logoURL); err != nil {
		if errors.Is(err, models.ErrEstablishmentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"logo": logoURL})
}

func (h *EstablishmentHandler) DeleteEstablishment(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid establishment ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteEstablishment(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrEstablishmentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Establishment deleted successfully"})
}

func (h *EstablishmentHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	establishmentID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid establishment ID", http.StatusBadRequest)
		return
	}
	categoryID, err := strconv.Atoi(r.URL.Query().Get(":categoria_id"))
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.AddCategory(r.Context(), establishmentID, categoryID); err != nil {
		if errors.Is(err, models.ErrEstablishmentNotFound) || errors.Is(err, models.ErrCategoryNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Category added to establishment"})
}

func (h *EstablishmentHandler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	establishmentID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid establishment ID", http.StatusBadRequest)
		return
	}
	categoryID, err := strconv.Atoi(r.URL.Query().Get(":categoria_id"))
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.RemoveCategory(r.Context(), establishmentID, categoryID); err != nil {
		if errors.Is(err, models.ErrAssociationNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Category removed from establishment"})
}

func (h *EstablishmentHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	establishmentID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid establishment ID", http.StatusBadRequest)
		return
	}

	categories, err := h.Service.GetCategories(r.Context(), establishmentID)
	if err != nil {
		if errors.Is(err, models.ErrEstablishmentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(categories)
}
