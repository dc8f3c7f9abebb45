package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contentUC "github.com/Autum7899/My-Portfolio/internal/usecase/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type ProfileHandler struct {
	contentUseCase *contentUC.ContentUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *contentUC.ContentUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{contentUseCase: uc, logger: log}
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	if err := h.contentUseCase.UpdateProfile(c.Request.Context(), req.ToDomain()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
