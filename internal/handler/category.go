package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tadelakiran/Book-Library-Management/internal/model"
	"github.com/tadelakiran/Book-Library-Management/internal/repository"
)

// CategoryHandler exposes catalog operations on categories.  Listing is
// public; create, update and delete are admin-only via the router.
type CategoryHandler struct {
	Categories *repository.CategoryRepo
}

func NewCategoryHandler(categories *repository.CategoryRepo) *CategoryHandler {
	if categories == nil {
		panic("nil repository passed to NewCategoryHandler")
	}
	return &CategoryHandler{Categories: categories}
}

type categoryReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List handles GET /v1/categories.
func (h *CategoryHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	categories, err := h.Categories.All(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load categories failed"})
	}
	return c.JSON(http.StatusOK, categories)
}

// Create handles POST /v1/categories (admin).
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	cat, err := h.Categories.Create(ctx, model.Category{Name: req.Name, Description: req.Description})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create category failed"})
	}
	return c.JSON(http.StatusCreated, cat)
}

// Update handles PUT /v1/categories/:id (admin).
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	cat, err := h.Categories.Update(ctx, c.Param("id"), model.Category{Name: req.Name, Description: req.Description})
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update category failed"})
	}
	return c.JSON(http.StatusOK, cat)
}

// Delete handles DELETE /v1/categories/:id (admin).  A category still
// referenced by books is refused with 409.
func (h *CategoryHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Categories.Delete(ctx, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryInUse):
			return c.JSON(http.StatusConflict, echo.Map{"error": "category still referenced by books"})
		case errors.Is(err, repository.ErrCategoryNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete category failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
