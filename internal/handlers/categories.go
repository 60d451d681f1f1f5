package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/models"
	"github.com/artfest/gallery-api/internal/services"
)

// CategoryLister defines the read side of the categories endpoints.
type CategoryLister interface {
	ListCategories(ctx context.Context) ([]models.CategoryWithCount, error)
}

// CategoryCreator defines the write side of the categories endpoints.
type CategoryCreator interface {
	CreateCategory(ctx context.Context, name, description string) (*models.CategoryDB, error)
}

// CategoriesResponse wraps the category listing.
// swagger:model CategoriesResponse
type CategoriesResponse struct {
	Categories []models.CategoryItem `json:"categories"`
}

// CreateCategoryRequest represents the JSON body for category creation
// swagger:model CreateCategoryRequest
type CreateCategoryRequest struct {
	// Category name
	// required: true
	Name string `json:"name"`

	// Optional description
	Description string `json:"description"`
}

// CreateCategoryResponse represents a successful category creation
// swagger:model CreateCategoryResponse
type CreateCategoryResponse struct {
	Message  string                  `json:"message"`
	Category models.CategoryResponse `json:"category"`
}

// NewListCategoriesHandler returns an HTTP handler for the public category listing.
// @Summary List categories
// @Description Returns all categories with their artwork counts.
// @Tags categories
// @Produce json
// @Success 200 {object} handlers.CategoriesResponse "Categories"
// @Router /api/categories [get]
func NewListCategoriesHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		items := make([]models.CategoryItem, 0, len(categories))
		for _, c := range categories {
			items = append(items, models.CategoryItem{
				ID:           c.ID,
				Name:         c.Name,
				Description:  c.Description,
				ArtworkCount: c.ArtworkCount,
			})
		}

		writeJSON(w, http.StatusOK, CategoriesResponse{Categories: items})
	}
}

// NewCreateCategoryHandler returns an HTTP handler for category creation.
// Routed behind the admin middleware.
// @Summary Create a category
// @Description Adds a category with a unique name.
// @Tags categories
// @Accept json
// @Produce json
// @Param createCategoryRequest body handlers.CreateCategoryRequest true "Category"
// @Success 201 {object} handlers.CreateCategoryResponse "Category created"
// @Failure 400 {object} handlers.ErrorResponse "Missing name"
// @Failure 409 {object} handlers.ErrorResponse "Name already taken"
// @Router /api/categories [post]
func NewCreateCategoryHandler(svc CategoryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Category name is required")
			return
		}
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "Category name is required")
			return
		}

		category, err := svc.CreateCategory(r.Context(), req.Name, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryExists):
				writeError(w, http.StatusConflict, "Category already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateCategoryResponse{
			Message: "Category created successfully",
			Category: models.CategoryResponse{
				ID:          category.ID,
				Name:        category.Name,
				Description: category.Description,
			},
		})
	}
}
