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

// VendorHandler serves vendor tracking operations in the active scope.
type VendorHandler struct {
	vendorUc  usecase.VendorUsecase
	sessionUc usecase.SessionUsecase
	logger    *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(vendorUc usecase.VendorUsecase, sessionUc usecase.SessionUsecase, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{
		vendorUc:  vendorUc,
		sessionUc: sessionUc,
		logger:    logger,
	}
}

// List returns every tracked vendor in the active scope.
func (h *VendorHandler) List(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	vendors, err := h.vendorUc.List(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendors, "Vendors retrieved")
}

type createVendorRequest struct {
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category"`
	Status   string  `json:"status"`
	Price    float64 `json:"price"`
	Location string  `json:"location"`
	Notes    string  `json:"notes"`
}

// Create tracks a vendor.
func (h *VendorHandler) Create(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createVendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Vendor name is required")
	}

	vendor, err := h.vendorUc.Create(c.Request().Context(), scope, usecase.CreateVendorInput{
		Name:     req.Name,
		Category: req.Category,
		Status:   entity.VendorStatus(req.Status),
		Price:    req.Price,
		Location: req.Location,
		Notes:    req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, vendor, "Vendor added")
}

type updateVendorRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Status   *string  `json:"status"`
	Price    *float64 `json:"price"`
	Location *string  `json:"location"`
	Notes    *string  `json:"notes"`
}

// Update applies a partial vendor update.
func (h *VendorHandler) Update(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateVendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}

	input := usecase.UpdateVendorInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Location: req.Location,
		Notes:    req.Notes,
	}
	if req.Status != nil {
		status := entity.VendorStatus(*req.Status)
		input.Status = &status
	}

	vendor, err := h.vendorUc.Update(c.Request().Context(), scope, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor updated")
}

// Delete stops tracking a vendor.
func (h *VendorHandler) Delete(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.vendorUc.Delete(c.Request().Context(), scope, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Vendor removed"}, "Vendor removed")
}

// Locate resolves the vendor's location to map coordinates.
func (h *VendorHandler) Locate(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	point, err := h.vendorUc.Locate(c.Request().Context(), scope, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, point, "Vendor located")
}
