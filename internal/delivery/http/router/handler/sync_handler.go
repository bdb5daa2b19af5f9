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

// SyncHandler serves snapshot pulls and offline change pushes.
type SyncHandler struct {
	syncUc    usecase.SyncUsecase
	sessionUc usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler, injected by Fx.
func NewSyncHandler(syncUc usecase.SyncUsecase, sessionUc usecase.SessionUsecase, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{
		syncUc:    syncUc,
		sessionUc: sessionUc,
		logger:    logger,
	}
}

// Sync returns the complete planning snapshot for the active scope.
func (h *SyncHandler) Sync(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	snapshot, err := h.syncUc.Sync(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Sync completed")
}

type pushRequest struct {
	DataType string `json:"data_type" validate:"required"`
	Records  []struct {
		ID   string         `json:"id"`
		Data map[string]any `json:"data"`
	} `json:"records"`
}

// Push applies offline changes for one collection.
func (h *SyncHandler) Push(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	var req pushRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "data_type is required")
	}

	input := usecase.PushInput{
		DataType: entity.DataType(req.DataType),
		Records:  make([]usecase.PushRecord, 0, len(req.Records)),
	}
	for _, r := range req.Records {
		input.Records = append(input.Records, usecase.PushRecord{ID: r.ID, Data: r.Data})
	}

	result, err := h.syncUc.Push(c.Request().Context(), scope, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Push applied")
}
