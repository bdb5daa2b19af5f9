package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vivaha/internal/delivery/http/response"
	"vivaha/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TodoHandler serves planning checklist operations in the active scope.
type TodoHandler struct {
	todoUc    usecase.TodoUsecase
	sessionUc usecase.SessionUsecase
	logger    *slog.Logger
}

// NewTodoHandler is the constructor for TodoHandler, injected by Fx.
func NewTodoHandler(todoUc usecase.TodoUsecase, sessionUc usecase.SessionUsecase, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{
		todoUc:    todoUc,
		sessionUc: sessionUc,
		logger:    logger,
	}
}

// List returns every task in the active scope.
func (h *TodoHandler) List(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	todos, err := h.todoUc.List(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, todos, "Todos retrieved")
}

type createTodoRequest struct {
	Title    string     `json:"title" validate:"required"`
	Category string     `json:"category"`
	DueDate  *time.Time `json:"due_date"`
}

// Create adds a planning task.
func (h *TodoHandler) Create(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Task title is required")
	}

	todo, err := h.todoUc.Create(c.Request().Context(), scope, usecase.CreateTodoInput{
		Title:    req.Title,
		Category: req.Category,
		DueDate:  req.DueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, todo, "Task added")
}

type updateTodoRequest struct {
	Title     *string    `json:"title"`
	Completed *bool      `json:"completed"`
	Category  *string    `json:"category"`
	DueDate   *time.Time `json:"due_date"`
}

// Update applies a partial task update.
func (h *TodoHandler) Update(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}

	todo, err := h.todoUc.Update(c.Request().Context(), scope, id, usecase.UpdateTodoInput{
		Title:     req.Title,
		Completed: req.Completed,
		Category:  req.Category,
		DueDate:   req.DueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, todo, "Task updated")
}

// Toggle flips a task's completion state.
func (h *TodoHandler) Toggle(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	todo, err := h.todoUc.Toggle(c.Request().Context(), scope, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, todo, "Task toggled")
}

// Delete removes a task.
func (h *TodoHandler) Delete(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.todoUc.Delete(c.Request().Context(), scope, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Task removed"}, "Task removed")
}
