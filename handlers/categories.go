package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diogosalvadorb/Recallify/models"
	"github.com/diogosalvadorb/Recallify/store"
)

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	category, err := h.Store.GetCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if category == nil {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	type CreateCategoryRequest struct {
		Name  string  `json:"name"`
		Color *string `json:"color"`
	}

	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	category := models.Category{
		Name:  req.Name,
		Color: req.Color,
	}
	if err := h.Store.CreateCategory(r.Context(), &category); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) UpdateCategoryByID(w http.ResponseWriter, r *http.Request) {
	type UpdateCategoryRequest struct {
		Name  *string `json:"name,omitempty"`
		Color *string `json:"color,omitempty"`
	}

	var req UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	category, err := h.Store.UpdateCategory(r.Context(), r.PathValue("id"), store.CategoryUpdate{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) DeleteCategoryByID(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Store.DeleteCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
