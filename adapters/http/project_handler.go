package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contentUC "github.com/Autum7899/My-Portfolio/internal/usecase/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type ProjectHandler struct {
	contentUseCase *contentUC.ContentUseCase
	logger         logger.Logger
}

func NewProjectHandler(uc *contentUC.ContentUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{contentUseCase: uc, logger: log}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	id, err := h.contentUseCase.CreateProject(c.Request.Context(), req.ToDomain())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	if req.ID == 0 {
		c.Error(apperror.NewInvalidInput("id is required", nil))
		return
	}

	if err := h.contentUseCase.UpdateProject(c.Request.Context(), req.ToDomain()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project updated"})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	if err := h.contentUseCase.DeleteProject(c.Request.Context(), req.ID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
