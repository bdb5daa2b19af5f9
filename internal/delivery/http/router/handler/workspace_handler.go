package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vivaha/internal/delivery/http/response"
	"vivaha/internal/domain/entity"
	"vivaha/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WorkspaceHandler serves workspace lifecycle and team operations.
type WorkspaceHandler struct {
	workspaceUc usecase.WorkspaceUsecase
	sessionUc   usecase.SessionUsecase
	logger      *slog.Logger
}

// NewWorkspaceHandler is the constructor for WorkspaceHandler, injected by Fx.
func NewWorkspaceHandler(workspaceUc usecase.WorkspaceUsecase, sessionUc usecase.SessionUsecase, logger *slog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceUc: workspaceUc,
		sessionUc:   sessionUc,
		logger:      logger,
	}
}

type createWorkspaceRequest struct {
	Name        string     `json:"name" validate:"required"`
	WeddingDate *time.Time `json:"wedding_date" validate:"required"`
	WeddingType string     `json:"wedding_type"`
	Notes       string     `json:"notes"`
}

// Create opens a new wedding workspace owned by the caller.
func (h *WorkspaceHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workspace input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Workspace name and wedding date are required")
	}

	input := usecase.CreateWorkspaceInput{
		OwnerID:     userID,
		Name:        req.Name,
		WeddingType: entity.WeddingType(req.WeddingType),
		Notes:       req.Notes,
	}
	if req.WeddingDate != nil {
		input.WeddingDate = *req.WeddingDate
	}

	workspace, err := h.workspaceUc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, workspace, "Workspace created")
}

// Get returns one workspace the caller has access to.
func (h *WorkspaceHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	workspace, err := h.workspaceUc.Get(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workspace, "Workspace retrieved")
}

// List returns the caller's workspaces. Archived workspaces are included
// only when ?include_archived=true.
func (h *WorkspaceHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := usecase.ListWorkspacesInput{
		UserID:          userID,
		IncludeArchived: c.QueryParam("include_archived") == "true",
	}
	if status := c.QueryParam("status"); status != "" {
		input.Statuses = []entity.WorkspaceStatus{entity.WorkspaceStatus(status)}
	}

	workspaces, err := h.workspaceUc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workspaces, "Workspaces retrieved")
}

type updateWorkspaceRequest struct {
	Name        *string    `json:"name"`
	WeddingDate *time.Time `json:"wedding_date"`
	WeddingType *string    `json:"wedding_type"`
	Notes       *string    `json:"notes"`
	Status      *string    `json:"status"`
}

// Update applies a partial workspace update.
func (h *WorkspaceHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workspace input")
	}

	input := usecase.UpdateWorkspaceInput{
		Name:        req.Name,
		WeddingDate: req.WeddingDate,
		Notes:       req.Notes,
	}
	if req.WeddingType != nil {
		weddingType := entity.WeddingType(*req.WeddingType)
		input.WeddingType = &weddingType
	}
	if req.Status != nil {
		status := entity.WorkspaceStatus(*req.Status)
		input.Status = &status
	}

	workspace, err := h.workspaceUc.Update(c.Request().Context(), userID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workspace, "Workspace updated")
}

type renameWorkspaceRequest struct {
	Name string `json:"name" validate:"required"`
}

// Rename changes the workspace name.
func (h *WorkspaceHandler) Rename(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req renameWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rename input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Workspace name is required")
	}

	workspace, err := h.workspaceUc.Rename(c.Request().Context(), userID, id, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workspace, "Workspace renamed")
}

// Archive hides a workspace from default listings.
func (h *WorkspaceHandler) Archive(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	workspace, err := h.workspaceUc.Archive(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workspace, "Workspace archived")
}

// Unarchive restores an archived workspace.
func (h *WorkspaceHandler) Unarchive(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	workspace, err := h.workspaceUc.Unarchive(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workspace, "Workspace unarchived")
}

// Duplicate creates a workspace shell copying an existing one's settings.
func (h *WorkspaceHandler) Duplicate(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	workspace, err := h.workspaceUc.Duplicate(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, workspace, "Workspace duplicated")
}

// Delete permanently removes a workspace and everything in its namespace.
func (h *WorkspaceHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.workspaceUc.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Workspace deleted"}, "Workspace deleted")
}

type addTeamMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

// AddTeamMember grants a collaborator access to the workspace.
func (h *WorkspaceHandler) AddTeamMember(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req addTeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid team member input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Member email is required")
	}

	workspace, err := h.workspaceUc.AddTeamMember(c.Request().Context(), userID, id, usecase.AddTeamMemberInput{
		Email: req.Email,
		Role:  entity.TeamRole(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workspace, "Team member added")
}

// RecomputeMetrics refreshes the workspace's cached progress counters.
func (h *WorkspaceHandler) RecomputeMetrics(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	workspace, err := h.workspaceUc.RecomputeMetrics(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workspace, "Metrics recomputed")
}

// InviteQR returns a PNG QR code encoding an invitation to the workspace.
func (h *WorkspaceHandler) InviteQR(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.workspaceUc.InviteQR(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Select makes a workspace the caller's active data partition.
func (h *WorkspaceHandler) Select(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.sessionUc.SelectWorkspace(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"active_workspace": id.String()}, "Workspace selected")
}

// ClearSelection returns the caller to their personal data partition.
func (h *WorkspaceHandler) ClearSelection(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.sessionUc.ClearWorkspace(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Returned to personal planning data"}, "Workspace selection cleared")
}
