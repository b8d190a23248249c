package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tadelakiran/Book-Library-Management/internal/model"
	"github.com/tadelakiran/Book-Library-Management/internal/repository"
)

// BookHandler exposes catalog operations on books.  Listing and reading
// are public; create, update and delete are registered behind the admin
// role by the router.
type BookHandler struct {
	Books *repository.BookRepo
}

func NewBookHandler(books *repository.BookRepo) *BookHandler {
	if books == nil {
		panic("nil repository passed to NewBookHandler")
	}
	return &BookHandler{Books: books}
}

type bookReq struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	CategoryID  string `json:"categoryId"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
	TotalCopies int    `json:"totalCopies"`
}

// List handles GET /v1/books.
func (h *BookHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	books, err := h.Books.All(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load books failed"})
	}
	return c.JSON(http.StatusOK, books)
}

// Get handles GET /v1/books/:id.
func (h *BookHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	b, err := h.Books.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load book failed"})
	}
	return c.JSON(http.StatusOK, b)
}

// Create handles POST /v1/books (admin).
func (h *BookHandler) Create(c echo.Context) error {
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title == "" || req.Author == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title/author required"})
	}
	if req.TotalCopies < 1 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "totalCopies must be at least 1"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	b, err := h.Books.Create(ctx, model.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create book failed"})
	}
	return c.JSON(http.StatusCreated, b)
}

// Update handles PUT /v1/books/:id (admin).  AvailableCopies cannot be
// set here; it belongs to the lending engine.
func (h *BookHandler) Update(c echo.Context) error {
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.TotalCopies < 1 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "totalCopies must be at least 1"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	b, err := h.Books.Update(ctx, c.Param("id"), model.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update book failed"})
	}
	return c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /v1/books/:id (admin).  Unconditional: open loans
// against the book are tolerated.
func (h *BookHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Books.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete book failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// reqCtx bounds handler store calls the way the rest of the handlers do.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
