package backup

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Autum7899/My-Portfolio/adapters/media_storage"
	"github.com/Autum7899/My-Portfolio/internal/usecase/snapshot"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

// BackupUseCase ships the current snapshot payload to cloudinary as a
// timestamped JSON artifact, so content survives a lost database.
type BackupUseCase struct {
	snapshotUC *snapshot.SnapshotUseCase
	uploader   media_storage.Uploader
	logger     logger.Logger
}

func NewBackupUseCase(snapshotUC *snapshot.SnapshotUseCase, uploader media_storage.Uploader, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		snapshotUC: snapshotUC,
		uploader:   uploader,
		logger:     log,
	}
}

func (uc *BackupUseCase) Execute(ctx context.Context) (string, error) {
	uc.logger.Info("Starting portfolio snapshot backup...")

	payload, err := uc.snapshotUC.Execute(ctx)
	if err != nil {
		return "", err
	}

	timestamp := time.Now().UTC().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("portfolio-%s.json", timestamp)
	folder := "backups/portfolio"
	publicID := fmt.Sprintf("%s/%s", folder, filename)

	uploadURL, err := uc.uploader.Upload(ctx, bytes.NewReader(payload), folder, publicID)
	if err != nil {
		uc.logger.Error("Failed to upload backup to Cloudinary", err)
		return "", apperror.NewInternal("failed to upload backup", err)
	}

	uc.logger.Info("Snapshot backup uploaded successfully",
		zap.String("url", uploadURL),
		zap.String("public_id", publicID),
	)
	return uploadURL, nil
}
