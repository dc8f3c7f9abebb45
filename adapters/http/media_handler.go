package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Autum7899/My-Portfolio/adapters/media_storage"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type MediaHandler struct {
	uploader media_storage.Uploader
	logger   logger.Logger
}

func NewMediaHandler(uploader media_storage.Uploader, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploader: uploader, logger: log}
}

// UploadMedia receives a multipart image and returns the hosted URL, which
// the admin client then writes into a project or profile field.
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	base := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	publicID := base + "-" + uuid.NewString()

	url, err := h.uploader.Upload(c.Request.Context(), file, "portfolio", publicID)
	if err != nil {
		c.Error(apperror.NewInternal("failed to upload media", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
