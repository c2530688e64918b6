// Package flatten walks a source tree and concatenates its text files into a
// single Markdown document, one fenced code block per file.
package flatten

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Arguments holds the command-line arguments for a flatten run.
type Arguments struct {
	Path       string // The file or directory to flatten
	SaveInside bool   // Place the output inside the target directory instead of beside it
}

const (
	// MaxFileSize is the per-file size cap in bytes; larger files are skipped.
	MaxFileSize = 1 << 20

	// FallbackBaseName names the output document when the resolved input has
	// no usable name component (filesystem roots).
	FallbackBaseName = "codebase"
)

// Execute is the entry point for the flatten package. It resolves the source
// path, creates the output document next to (or inside) it, and drives the
// traversal through the writer. Setup failures are returned; per-entry
// failures during the walk are absorbed as skips.
func Execute(args *Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	source, err := resolvePath(args.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve source path %q: %w", args.Path, err)
	}

	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("failed to stat source path: %w", err)
	}

	outPath := OutputPath(source, info.IsDir(), args.SaveInside)
	logger.Debug("Starting flatten run",
		zap.String("source", source),
		zap.String("output", outPath))

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	buffered := bufio.NewWriter(outFile)
	writer := NewWriter(buffered, source, outPath, logger)

	if err := walkCandidates(source, logger, writer.Add); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	logger.Info("Flatten run completed",
		zap.String("output", outPath),
		zap.Int("sections", writer.Sections()),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// OutputPath determines where the output document goes: inside the source
// directory when saveInside is set, beside it otherwise, and always beside a
// source file. The document is named after the resolved source.
func OutputPath(source string, isDir, saveInside bool) string {
	base := filepath.Base(source)
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = FallbackBaseName
	}
	outName := base + ".md"

	if isDir && saveInside {
		return filepath.Join(source, outName)
	}
	// filepath.Dir of a root path is the root itself, so a flattened root
	// filesystem keeps its document at the root.
	return filepath.Join(filepath.Dir(source), outName)
}

// resolvePath returns the absolute, symlink-resolved form of path. It fails
// when the path does not exist.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
