package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contentUC "github.com/Autum7899/My-Portfolio/internal/usecase/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type SkillHandler struct {
	contentUseCase *contentUC.ContentUseCase
	logger         logger.Logger
}

func NewSkillHandler(uc *contentUC.ContentUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{contentUseCase: uc, logger: log}
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	id, err := h.contentUseCase.CreateSkill(c.Request.Context(), req.ToDomain())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	if req.ID == 0 {
		c.Error(apperror.NewInvalidInput("id is required", nil))
		return
	}

	if err := h.contentUseCase.UpdateSkill(c.Request.Context(), req.ToDomain()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill updated"})
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	if err := h.contentUseCase.DeleteSkill(c.Request.Context(), req.ID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted"})
}
