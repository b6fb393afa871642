package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"loanbook/internal/usecase/system"
)

type Handler struct{ sys *system.Usecase }

func NewHandler(sys *system.Usecase) *Handler { return &Handler{sys: sys} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Status reports database connectivity through record counts.
func (h *Handler) Status(c echo.Context) error {
	dto, err := h.sys.Status(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "database connection failed",
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "connected",
		"message": "database is connected and operational",
		"data":    dto,
	})
}
