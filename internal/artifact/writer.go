// Package artifact writes the pipeline's intermediate documents to disk.
package artifact

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/withlaunch/bluectl/internal/logging"
)

// Writer persists pipeline artifacts. Existing files are always truncated.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a writer on the given filesystem.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// Write stores data at path, replacing any previous content.
func (w *Writer) Write(path string, data []byte) error {
	if err := afero.WriteFile(w.fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logging.Info("Wrote artifact", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}
