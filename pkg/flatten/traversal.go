package flatten

import (
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

// walkCandidates walks the tree rooted at root, pruning excluded directories
// and dropping excluded or inaccessible entries without aborting the walk.
// Surviving file entries are handed to emit one at a time; each candidate is
// fully processed before the walk advances. An error from emit stops the
// walk and is returned — emit only fails on output I/O errors, which are
// fatal to the run.
func walkCandidates(root string, logger *zap.Logger, emit func(path string, d fs.DirEntry) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug("Skipping inaccessible entry",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}

		if excluded(d.Name(), d.IsDir()) {
			if d.IsDir() {
				logger.Debug("Pruning ignored directory", zap.String("path", path))
				return filepath.SkipDir
			}
			logger.Debug("Skipping ignored file", zap.String("path", path))
			return nil
		}

		if d.IsDir() {
			return nil
		}

		return emit(path, d)
	})
}
