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

// GuestHandler serves guest list operations in the active scope.
type GuestHandler struct {
	guestUc   usecase.GuestUsecase
	sessionUc usecase.SessionUsecase
	logger    *slog.Logger
}

// NewGuestHandler is the constructor for GuestHandler, injected by Fx.
func NewGuestHandler(guestUc usecase.GuestUsecase, sessionUc usecase.SessionUsecase, logger *slog.Logger) *GuestHandler {
	return &GuestHandler{
		guestUc:   guestUc,
		sessionUc: sessionUc,
		logger:    logger,
	}
}

// List returns every guest in the active scope.
func (h *GuestHandler) List(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	guests, err := h.guestUc.List(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guests, "Guests retrieved")
}

type createGuestRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Side         string `json:"side"`
	RSVP         string `json:"rsvp"`
	PlusOnes     int    `json:"plus_ones"`
	DietaryNotes string `json:"dietary_notes"`
}

// Create adds a guest.
func (h *GuestHandler) Create(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createGuestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guest input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Guest name is required")
	}

	guest, err := h.guestUc.Create(c.Request().Context(), scope, usecase.CreateGuestInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Side:         req.Side,
		RSVP:         entity.RSVPStatus(req.RSVP),
		PlusOnes:     req.PlusOnes,
		DietaryNotes: req.DietaryNotes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, guest, "Guest added")
}

type updateGuestRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Side         *string `json:"side"`
	RSVP         *string `json:"rsvp"`
	PlusOnes     *int    `json:"plus_ones"`
	DietaryNotes *string `json:"dietary_notes"`
}

// Update applies a partial guest update.
func (h *GuestHandler) Update(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateGuestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guest input")
	}

	input := usecase.UpdateGuestInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Side:         req.Side,
		PlusOnes:     req.PlusOnes,
		DietaryNotes: req.DietaryNotes,
	}
	if req.RSVP != nil {
		rsvp := entity.RSVPStatus(*req.RSVP)
		input.RSVP = &rsvp
	}

	guest, err := h.guestUc.Update(c.Request().Context(), scope, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guest, "Guest updated")
}

// Delete removes a guest.
func (h *GuestHandler) Delete(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.guestUc.Delete(c.Request().Context(), scope, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Guest removed"}, "Guest removed")
}

// Stats returns RSVP and headcount aggregates for the guest list.
func (h *GuestHandler) Stats(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	stats, err := h.guestUc.Stats(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Guest stats retrieved")
}
