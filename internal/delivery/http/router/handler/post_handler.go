package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vivaha/internal/delivery/http/response"
	"vivaha/internal/domain/entity"
	"vivaha/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler serves the community feed. Posts always live under the
// author's personal namespace, so no scope resolution is involved.
type PostHandler struct {
	postUc usecase.PostUsecase
	userUc usecase.UserUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(postUc usecase.PostUsecase, userUc usecase.UserUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postUc: postUc,
		userUc: userUc,
		logger: logger,
	}
}

// displayName resolves the caller's display name for attribution.
func (h *PostHandler) displayName(c echo.Context) (string, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return "", err
	}

	user, err := h.userUc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return "", err
	}

	return user.Name, nil
}

// Feed returns the most recent community posts, newest first.
func (h *PostHandler) Feed(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a number")
		}
		limit = parsed
	}

	posts, err := h.postUc.Feed(c.Request().Context(), entity.PostCategory(c.QueryParam("category")), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "Feed retrieved")
}

type createPostRequest struct {
	Type      string   `json:"type"`
	Category  string   `json:"category"`
	Content   string   `json:"content" validate:"required"`
	PhotoURL  string   `json:"photo_url"`
	Location  string   `json:"location"`
	Tags      []string `json:"tags"`
	AppRating int      `json:"app_rating"`
}

// Create publishes a post authored by the caller.
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Post content is required")
	}

	authorName, err := h.displayName(c)
	if err != nil {
		return errors.WithStack(err)
	}

	post, err := h.postUc.Create(c.Request().Context(), entity.PersonalScope(userID), authorName, usecase.CreatePostInput{
		Type:      entity.PostType(req.Type),
		Category:  entity.PostCategory(req.Category),
		Content:   req.Content,
		PhotoURL:  req.PhotoURL,
		Location:  req.Location,
		Tags:      req.Tags,
		AppRating: req.AppRating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post published")
}

type updatePostRequest struct {
	Content  *string  `json:"content"`
	PhotoURL *string  `json:"photo_url"`
	Location *string  `json:"location"`
	Tags     []string `json:"tags"`
}

// Update edits a post the caller authored.
func (h *PostHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	post, err := h.postUc.Update(c.Request().Context(), entity.PersonalScope(userID), id, usecase.UpdatePostInput{
		Content:  req.Content,
		PhotoURL: req.PhotoURL,
		Location: req.Location,
		Tags:     req.Tags,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Post updated")
}

// Delete removes a post the caller authored.
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.postUc.Delete(c.Request().Context(), entity.PersonalScope(userID), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Post deleted"}, "Post deleted")
}

// ToggleLike adds or removes the caller's like on a post.
func (h *PostHandler) ToggleLike(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	post, err := h.postUc.ToggleLike(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Like toggled")
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// AddComment appends a comment to a post.
func (h *PostHandler) AddComment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Comment content is required")
	}

	userName, err := h.displayName(c)
	if err != nil {
		return errors.WithStack(err)
	}

	post, err := h.postUc.AddComment(c.Request().Context(), userID, userName, id, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Comment added")
}
