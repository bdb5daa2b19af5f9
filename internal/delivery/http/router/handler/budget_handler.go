package handler

import (
	"log/slog"
	"net/http"

	"vivaha/internal/delivery/http/response"
	"vivaha/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BudgetHandler serves budget operations in the active scope.
type BudgetHandler struct {
	budgetUc  usecase.BudgetUsecase
	sessionUc usecase.SessionUsecase
	logger    *slog.Logger
}

// NewBudgetHandler is the constructor for BudgetHandler, injected by Fx.
func NewBudgetHandler(budgetUc usecase.BudgetUsecase, sessionUc usecase.SessionUsecase, logger *slog.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetUc:  budgetUc,
		sessionUc: sessionUc,
		logger:    logger,
	}
}

// List returns every budget category in the active scope.
func (h *BudgetHandler) List(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	categories, err := h.budgetUc.List(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Budget retrieved")
}

type createBudgetRequest struct {
	Name      string  `json:"name" validate:"required"`
	Allocated float64 `json:"allocated"`
	Spent     float64 `json:"spent"`
	Notes     string  `json:"notes"`
}

// Create adds a spending category.
func (h *BudgetHandler) Create(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createBudgetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid budget input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Category name is required")
	}

	category, err := h.budgetUc.Create(c.Request().Context(), scope, usecase.CreateBudgetCategoryInput{
		Name:      req.Name,
		Allocated: req.Allocated,
		Spent:     req.Spent,
		Notes:     req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Budget category added")
}

type updateBudgetRequest struct {
	Name      *string  `json:"name"`
	Allocated *float64 `json:"allocated"`
	Spent     *float64 `json:"spent"`
	Notes     *string  `json:"notes"`
}

// Update applies a partial category update.
func (h *BudgetHandler) Update(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid budget input")
	}

	category, err := h.budgetUc.Update(c.Request().Context(), scope, id, usecase.UpdateBudgetCategoryInput{
		Name:      req.Name,
		Allocated: req.Allocated,
		Spent:     req.Spent,
		Notes:     req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Budget category updated")
}

// Delete removes a budget category.
func (h *BudgetHandler) Delete(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.budgetUc.Delete(c.Request().Context(), scope, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Budget category removed"}, "Budget category removed")
}

// Summary returns allocation and spending totals.
func (h *BudgetHandler) Summary(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	summary, err := h.budgetUc.Summary(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Budget summary retrieved")
}
