// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"vivaha/internal/delivery/http/response"
	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// currentUserID reads the authenticated user's id set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// resolveScope determines the namespace the request operates on: the user's
// active workspace when one is selected, otherwise their personal scope.
func resolveScope(c echo.Context, sessions usecase.SessionUsecase) (entity.Scope, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return entity.Scope{}, err
	}

	return sessions.ActiveScope(c.Request().Context(), userID)
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid id in path")
	}

	return id, nil
}
