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

type DishHandler struct {
	Service *services.DishService
}

func (h *DishHandler) CreateDish(w http.ResponseWriter, r *http.Request) {
	var dish models.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateDish(r.Context(), dish)
	if err != nil {
		if errors.Is(err, models.ErrMenuNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if errors.Is(err, models.ErrInvalidPrice) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *DishHandler) GetDishByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}

	dish, err := h.Service.GetDishByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrDishNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dish)
}

func (h *DishHandler) GetAllDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Service.GetDishes(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dishes); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *DishHandler) UpdateDish(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}

	var upd models.DishUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateDish(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, models.ErrDishNotFound) || errors.Is(err, models.ErrMenuNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if errors.Is(err, models.ErrInvalidPrice) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *DishHandler) UploadImg(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("img")
	if err != nil {
		http.Error(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read image file", http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(header.Filename))
	imgURL, err := utils.UploadFileToS3(data, fileName, "dishes")
	if err != nil {
		http.Error(w, "Failed to store image", http.StatusInternalServerError)
		return
	}

	if err := h.Service.UpdateImg(r.Context(), id, imgURL); err != nil {
		if errors.Is(err, models.ErrDishNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"img": imgURL})
}

func (h *DishHandler) DeleteDish(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteDish(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrDishNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Dish deleted successfully"})
}

func (h *DishHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	dishID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}
	categoryID, err := strconv.Atoi(r.URL.Query().Get(":categoria_id"))
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.AddCategory(r.Context(), dishID, categoryID); err != nil {
		if errors.Is(err, models.ErrDishNotFound) || errors.Is(err, models.ErrCategoryNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Category added to dish"})
}

func (h *DishHandler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	dishID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}
	categoryID, err := strconv.Atoi(r.URL.Query().Get(":categoria_id"))
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.RemoveCategory(r.Context(), dishID, categoryID); err != nil {
		if errors.Is(err, models.ErrAssociationNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Category removed from dish"})
}

func (h *DishHandler) AddAllergen(w http.ResponseWriter, r *http.Request) {
	dishID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}
	allergenID, err := strconv.Atoi(r.URL.Query().Get(":allergen_id"))
	if err != nil {
		http.Error(w, "Invalid allergen ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.AddAllergen(r.Context(), dishID, allergenID); err != nil {
		if errors.Is(err, models.ErrDishNotFound) || errors.Is(err, models.ErrAllergenNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Allergen added to dish"})
}

func (h *DishHandler) RemoveAllergen(w http.ResponseWriter, r *http.Request) {
	dishID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}
	allergenID, err := strconv.Atoi(r.URL.Query().Get(":allergen_id"))
	if err != nil {
		http.Error(w, "Invalid allergen ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.RemoveAllergen(r.Context(), dishID, allergenID); err != nil {
		if errors.Is(err, models.ErrAssociationNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Allergen removed from dish"})
}
