package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tadelakiran/Book-Library-Management/internal/lending"
)

// ReportHandler serves the derived dashboard numbers, admin-only via the
// router.
type ReportHandler struct {
	Engine *lending.Engine
}

func NewReportHandler(engine *lending.Engine) *ReportHandler {
	if engine == nil {
		panic("nil engine passed to NewReportHandler")
	}
	return &ReportHandler{Engine: engine}
}

// Stats handles GET /v1/reports/stats.  The summary is recomputed from
// current state on every call; nothing is cached server-side.
func (h *ReportHandler) Stats(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	stats, err := h.Engine.Stats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "compute stats failed"})
	}
	return c.JSON(http.StatusOK, stats)
}
