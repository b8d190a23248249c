package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tadelakiran/Book-Library-Management/internal/lending"
	"github.com/tadelakiran/Book-Library-Management/internal/model"
	"github.com/tadelakiran/Book-Library-Management/internal/queue"
	"github.com/tadelakiran/Book-Library-Management/internal/repository"
	queue_publisher "github.com/tadelakiran/Book-Library-Management/internal/service"
)

// LendingHandler drives the loan lifecycle on behalf of authenticated
// users.  All methods assume JWT authentication and role validation have
// already been performed by middleware.  Every state change is published
// to the loan.activity queue best-effort: a broker outage never fails the
// request.
type LendingHandler struct {
	Engine *lending.Engine
	Books  *repository.BookRepo
}

func NewLendingHandler(engine *lending.Engine, books *repository.BookRepo) *LendingHandler {
	if engine == nil || books == nil {
		panic("nil dependency passed to NewLendingHandler")
	}
	return &LendingHandler{Engine: engine, Books: books}
}

// Borrow handles POST /v1/books/:id/borrow.  Returns 201 with the new
// record, 404 when the book does not exist and 409 when no copies are
// available.
func (h *LendingHandler) Borrow(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	rec, err := h.Engine.Borrow(ctx, c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		case errors.Is(err, lending.ErrNoCopiesAvailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": "no copies available"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "borrow failed"})
		}
	}

	h.publish(ctx, queue.ActionBorrowed, rec)
	return c.JSON(http.StatusCreated, rec)
}

// Return handles POST /v1/records/:id/return.  Returning an unknown
// record is a silent success, matching the engine's no-op.
func (h *LendingHandler) Return(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	recordID := c.Param("id")
	if err := h.Engine.Return(ctx, recordID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "return failed"})
	}

	h.publish(ctx, queue.ActionReturned, model.BorrowRecord{ID: recordID})
	return c.NoContent(http.StatusNoContent)
}

// Renew handles POST /v1/records/:id/renew.  Returns the renewed record,
// 404 for unknown records and 409 once the renewal cap is reached.
func (h *LendingHandler) Renew(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	rec, err := h.Engine.Renew(ctx, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "record not found"})
		case errors.Is(err, lending.ErrRenewalLimit):
			return c.JSON(http.StatusConflict, echo.Map{"error": "renewal limit reached"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "renew failed"})
		}
	}

	h.publish(ctx, queue.ActionRenewed, rec)
	return c.JSON(http.StatusOK, rec)
}

// MyRecords handles GET /v1/my/records: all loans of the calling user,
// borrowed and returned, in insertion order.
func (h *LendingHandler) MyRecords(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	records, err := h.Engine.UserRecords(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load records failed"})
	}
	return c.JSON(http.StatusOK, records)
}

// Overdue handles GET /v1/records/overdue (admin): every loan that is
// still borrowed and past its due date at call time.
func (h *LendingHandler) Overdue(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	records, err := h.Engine.OverdueRecords(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load overdue records failed"})
	}
	return c.JSON(http.StatusOK, records)
}

// publish emits a loan event in the background.  Failures are already
// logged by the publisher and deliberately not surfaced.
func (h *LendingHandler) publish(ctx context.Context, action string, rec model.BorrowRecord) {
	ev := queue.LoanEvent{
		Action:       action,
		RecordID:     rec.ID,
		UserID:       rec.UserID,
		BookID:       rec.BookID,
		RenewalCount: rec.RenewalCount,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if !rec.DueDate.IsZero() {
		ev.DueDate = rec.DueDate.UTC().Format(time.RFC3339)
	}
	if rec.BookID != "" {
		if b, err := h.Books.GetByID(ctx, rec.BookID); err == nil {
			ev.BookTitle = b.Title
		}
	}
	go func() { _ = queue_publisher.PublishLoanEvent(context.Background(), ev) }()
}
