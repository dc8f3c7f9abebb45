package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contentUC "github.com/Autum7899/My-Portfolio/internal/usecase/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type CareerHandler struct {
	contentUseCase *contentUC.ContentUseCase
	logger         logger.Logger
}

func NewCareerHandler(uc *contentUC.ContentUseCase, log logger.Logger) *CareerHandler {
	return &CareerHandler{contentUseCase: uc, logger: log}
}

func (h *CareerHandler) CreateCareer(c *gin.Context) {
	var req CareerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	id, err := h.contentUseCase.CreateCareer(c.Request.Context(), req.ToDomain())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *CareerHandler) UpdateCareer(c *gin.Context) {
	var req CareerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	if req.ID == 0 {
		c.Error(apperror.NewInvalidInput("id is required", nil))
		return
	}

	if err := h.contentUseCase.UpdateCareer(c.Request.Context(), req.ToDomain()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Career entry updated"})
}

func (h *CareerHandler) DeleteCareer(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	if err := h.contentUseCase.DeleteCareer(c.Request.Context(), req.ID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Career entry deleted"})
}
