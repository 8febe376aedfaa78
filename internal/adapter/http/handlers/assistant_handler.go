package handlers

import (
	"errors"
	"granite_estimator/internal/adapter/http/dto/request"
	"granite_estimator/internal/adapter/http/dto/response"
	"granite_estimator/internal/usecase"
	"granite_estimator/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	usecase usecase.IAssistantUseCase
}

func NewAssistantHandler(uc usecase.IAssistantUseCase) *AssistantHandler {
	return &AssistantHandler{usecase: uc}
}

// Chat godoc
// @Summary      Ask the shop assistant a question
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      request.ChatRequest  true  "Message"
// @Success      200   {object}  response.ChatResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	reply, err := h.usecase.Chat(c.Request.Context(), payload.ResolveMessage())
	if err != nil {
		log.Printf("[assistant][handler] chat failed err=%v", err)
		writeAppError(c, mapAssistantError(err))
		return
	}
	c.JSON(http.StatusOK, response.ChatResponse{Response: reply})
}

// GetBusinessInfo returns the shop contact details shown by the widget.
func (h *AssistantHandler) GetBusinessInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.BusinessInfo())
}

func mapAssistantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyChatMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Message is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChatMessageTooLong):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Message is too long", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssistantUnavailable):
		return pkg.NewDomainError("ASSISTANT_UNAVAILABLE", "The assistant is temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// GetInstructions exposes the assistant's system prompt for the widget debug panel.
func (h *AssistantHandler) GetInstructions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"instructions": usecase.SystemInstructions(h.usecase.BusinessInfo())})
}
