package fallback

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

// Store keeps the last known-good snapshot so the portfolio stays readable
// and editable when the gateway is unreachable. Save is best-effort: a full
// disk or quota failure is logged, never surfaced. Load reports absence via
// the bool, never an error.
type Store interface {
	Save(ctx context.Context, snap content.Snapshot)
	Load(ctx context.Context) (content.Snapshot, bool)
}

type FileStore struct {
	path string
	log  logger.Logger
}

func NewFileStore(path string, log logger.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (s *FileStore) Save(_ context.Context, snap content.Snapshot) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		s.log.Warn("fallback: failed to encode snapshot", zap.Error(err))
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Warn("fallback: failed to create directory", zap.String("path", s.path), zap.Error(err))
		return
	}

	// Write-then-rename keeps the previous copy intact if the process dies
	// mid-write. The staging file gets a unique name so concurrent saves
	// cannot interleave writes in the same file.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		s.log.Warn("fallback: failed to stage snapshot", zap.String("path", s.path), zap.Error(err))
		return
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		s.log.Warn("fallback: failed to write snapshot", zap.String("path", tmp.Name()), zap.Error(err))
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		s.log.Warn("fallback: failed to write snapshot", zap.String("path", tmp.Name()), zap.Error(err))
		return
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		s.log.Warn("fallback: failed to replace snapshot", zap.String("path", s.path), zap.Error(err))
	}
}

func (s *FileStore) Load(_ context.Context) (content.Snapshot, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("fallback: failed to read snapshot", zap.String("path", s.path), zap.Error(err))
		}
		return content.Snapshot{}, false
	}

	var snap content.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.log.Warn("fallback: stored snapshot is corrupt", zap.String("path", s.path), zap.Error(err))
		return content.Snapshot{}, false
	}
	return snap, true
}
