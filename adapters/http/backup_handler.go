package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	backupUC "github.com/Autum7899/My-Portfolio/internal/usecase/backup"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type BackupHandler struct {
	backupUseCase *backupUC.BackupUseCase
	logger        logger.Logger
}

func NewBackupHandler(uc *backupUC.BackupUseCase, log logger.Logger) *BackupHandler {
	return &BackupHandler{backupUseCase: uc, logger: log}
}

func (h *BackupHandler) CreateBackup(c *gin.Context) {
	url, err := h.backupUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
