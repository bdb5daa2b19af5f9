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

// RegistryHandler serves gift registry link operations in the active scope.
type RegistryHandler struct {
	registryUc usecase.RegistryUsecase
	sessionUc  usecase.SessionUsecase
	logger     *slog.Logger
}

// NewRegistryHandler is the constructor for RegistryHandler, injected by Fx.
func NewRegistryHandler(registryUc usecase.RegistryUsecase, sessionUc usecase.SessionUsecase, logger *slog.Logger) *RegistryHandler {
	return &RegistryHandler{
		registryUc: registryUc,
		sessionUc:  sessionUc,
		logger:     logger,
	}
}

// List returns every linked registry in the active scope.
func (h *RegistryHandler) List(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	registries, err := h.registryUc.List(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, registries, "Registries retrieved")
}

type addRegistryRequest struct {
	Name  string `json:"name" validate:"required"`
	Type  string `json:"type"`
	URL   string `json:"url" validate:"required"`
	Notes string `json:"notes"`
}

// Add links a gift registry.
func (h *RegistryHandler) Add(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	var req addRegistryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registry input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Registry name and URL are required")
	}

	registry, err := h.registryUc.Add(c.Request().Context(), scope, usecase.AddRegistryInput{
		Name:  req.Name,
		Type:  entity.RegistryType(req.Type),
		URL:   req.URL,
		Notes: req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registry, "Registry linked")
}

// Remove unlinks a gift registry.
func (h *RegistryHandler) Remove(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.registryUc.Remove(c.Request().Context(), scope, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Registry removed"}, "Registry removed")
}
