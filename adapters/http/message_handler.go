package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	contentUC "github.com/Autum7899/My-Portfolio/internal/usecase/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type MessageHandler struct {
	contentUseCase *contentUC.ContentUseCase
	logger         logger.Logger
}

func NewMessageHandler(uc *contentUC.ContentUseCase, log logger.Logger) *MessageHandler {
	return &MessageHandler{contentUseCase: uc, logger: log}
}

// SubmitMessage is the contact form endpoint, the one unauthenticated write.
func (h *MessageHandler) SubmitMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name, email, and message are required", err))
		return
	}

	msg := content.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := h.contentUseCase.SubmitMessage(c.Request.Context(), msg); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}
