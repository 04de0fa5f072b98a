package catalogRepo

import (
	"os"
	"sync"

	"go.uber.org/zap"

	"tripdesk/models"
)

// fallbackFile is a static local dataset, loaded lazily and exactly once per
// process. A missing or malformed file yields an empty set plus a logged
// warning, never an error.
type fallbackFile struct {
	path   string
	logger *zap.Logger

	once  sync.Once
	items []models.RawRecord
}

func newFallbackFile(path string, logger *zap.Logger) *fallbackFile {
	return &fallbackFile{path: path, logger: logger}
}

func (f *fallbackFile) Items() []models.RawRecord {
	f.once.Do(f.load)
	return f.items
}

func (f *fallbackFile) load() {
	f.items = []models.RawRecord{}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		f.logger.Warn("Unable to load local fallback data",
			zap.String("path", f.path), zap.Error(err))
		return
	}

	var items []models.RawRecord
	if err := json.Unmarshal(raw, &items); err != nil {
		f.logger.Warn("Malformed local fallback data",
			zap.String("path", f.path), zap.Error(err))
		return
	}
	f.items = items
}
