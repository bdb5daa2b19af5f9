package handler

import (
	"log/slog"
	"net/http"

	"vivaha/internal/delivery/http/response"
	"vivaha/internal/domain/service"
	"vivaha/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssistantHandler serves the planning assistant chat endpoint.
type AssistantHandler struct {
	assistantUc usecase.AssistantUsecase
	sessionUc   usecase.SessionUsecase
	logger      *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler, injected by Fx.
func NewAssistantHandler(assistantUc usecase.AssistantUsecase, sessionUc usecase.SessionUsecase, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistantUc: assistantUc,
		sessionUc:   sessionUc,
		logger:      logger,
	}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
	History []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"history"`
}

// Chat handles one assistant conversation turn.
func (h *AssistantHandler) Chat(c echo.Context) error {
	scope, err := resolveScope(c, h.sessionUc)
	if err != nil {
		return errors.WithStack(err)
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Message is required")
	}

	input := usecase.ChatInput{
		Message: req.Message,
		History: make([]service.AssistantMessage, 0, len(req.History)),
	}
	for _, m := range req.History {
		input.History = append(input.History, service.AssistantMessage{Role: m.Role, Content: m.Content})
	}

	output, err := h.assistantUc.Chat(c.Request().Context(), scope, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Assistant replied")
}
