package handler

import (
	"log/slog"
	"net/http"

	"vivaha/internal/delivery/http/response"
	"vivaha/internal/domain/entity"
	"vivaha/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SeatingHandler serves seating chart operations in the active scope.
type SeatingHandler struct {
	seatingUc usecase.SeatingUsecase
	sessionUc usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSeatingHandler is the constructor for SeatingHandler, injected by Fx.
func NewSeatingHandler(seatingUc usecase.SeatingUsecase, sessionUc usecase.SessionUsecase, logger *slog.Logger) *SeatingHandler {
	return &SeatingHandler{
		seatingUc: seatingUc,
		sessionUc: sessionUc,
		logger:    logger,
	}
}

// Get returns the scope's seating chart, empty if none has been saved yet.
func (h *SeatingHandler) Get(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	chart, err := h.seatingUc.Get(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chart, "Seating chart retrieved")
}

type saveSeatingRequest struct {
	Tables []entity.SeatingTable `json:"tables"`
}

// Save replaces the chart's table layout wholesale.
func (h *SeatingHandler) Save(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	var req saveSeatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seating input")
	}

	chart, err := h.seatingUc.Save(c.Request().Context(), scope, req.Tables)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chart, "Seating chart saved")
}
