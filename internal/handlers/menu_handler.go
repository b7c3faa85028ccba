package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gastroBack/internal/models"
	"gastroBack/internal/services"
)

type MenuHandler struct {
	Service *services.MenuService
}

func (h *MenuHandler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	establishmentID, err := strconv.Atoi(r.URL.Query().Get(":establecimiento_id"))
	if err != nil {
		http.Error(w, "Invalid establishment ID", http.StatusBadRequest)
		return
	}

	var menu models.Menu
	if err := json.NewDecoder(r.Body).Decode(&menu); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	menu.EstablishmentID = establishmentID

	created, err := h.Service.CreateMenu(r.Context(), menu)
	if err != nil {
		if errors.Is(err, models.ErrEstablishmentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *MenuHandler) GetMenuDishes(w http.ResponseWriter, r *http.Request) {
	menuID, err := strconv.Atoi(r.URL.Query().Get(":menu_id"))
	if err != nil {
		http.Error(w, "Invalid menu ID", http.StatusBadRequest)
		return
	}

	dishes, err := h.Service.GetMenuDishes(r.Context(), menuID)
	if err != nil {
		if errors.Is(err, models.ErrMenuNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dishes)
}

func (h *MenuHandler) GetMenusByEstablishmentID(w http.ResponseWriter, r *http.Request) {
	establishmentID, err := strconv.Atoi(r.URL.Query().Get(":establecimiento_id"))
	if err != nil {
		http.Error(w, "Invalid establishment ID", http.StatusBadRequest)
		return
	}

	menus, err := h.Service.GetMenusByEstablishmentID(r.Context(), establishmentID)
	if err != nil {
		if errors.Is(err, models.ErrEstablishmentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(menus)
}

func (h *MenuHandler) GetMenuDishesByCategory(w http.ResponseWriter, r *http.Request) {
	menuID, err := strconv.Atoi(r.URL.Query().Get(":menu_id"))
	if err != nil {
		http.Error(w, "Invalid menu ID", http.StatusBadRequest)
		return
	}
	categoryID, err := strconv.Atoi(r.URL.Query().Get(":categoria_id"))
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	dishes, err := h.Service.GetMenuDishesByCategory(r.Context(), menuID, categoryID)
	if err != nil {
		if errors.Is(err, models.ErrMenuNotFound) || errors.Is(err, models.ErrCategoryNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dishes)
}

func (h *MenuHandler) GetMenuDish(w http.ResponseWriter, r *http.Request) {
	menuID, err := strconv.Atoi(r.URL.Query().Get(":menu_id"))
	if err != nil {
		http.Error(w, "Invalid menu ID", http.StatusBadRequest)
		return
	}
	dishID, err := strconv.Atoi(r.URL.Query().Get(":item_id"))
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}

	dish, err := h.Service.GetMenuDish(r.Context(), menuID, dishID)
	if err != nil {
		if errors.Is(err, models.ErrMenuNotFound) || errors.Is(err, models.ErrDishNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dish)
}

func (h *MenuHandler) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	menuID, err := strconv.Atoi(r.URL.Query().Get(":menu_id"))
	if err != nil {
		http.Error(w, "Invalid menu ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateMenu(r.Context(), menuID, body.Title)
	if err != nil {
		if errors.Is(err, models.ErrMenuNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *MenuHandler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	menuID, err := strconv.Atoi(r.URL.Query().Get(":menu_id"))
	if err != nil {
		http.Error(w, "Invalid menu ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteMenu(r.Context(), menuID); err != nil {
		if errors.Is(err, models.ErrMenuNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Menu deleted successfully"})
}
