package flatten

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Writer turns candidate files into Markdown sections on an output stream.
// Every skip decision is local to one candidate; only write failures on the
// output stream itself are returned.
type Writer struct {
	out      *bufio.Writer
	root     string // resolved source root, base for relative paths
	outName  string // base name of the output file
	outPath  string // canonicalized absolute path of the output file
	logger   *zap.Logger
	sections int
}

// NewWriter prepares a writer emitting to out for a walk rooted at root.
// outPath is the output target; it is canonicalized once so every candidate
// can be compared against it, falling back to the given path when
// canonicalization fails (e.g. the file is on an exotic mount).
func NewWriter(out *bufio.Writer, root, outPath string, logger *zap.Logger) *Writer {
	canonical := outPath
	if resolved, err := filepath.EvalSymlinks(outPath); err == nil {
		canonical = resolved
	}
	return &Writer{
		out:     out,
		root:    root,
		outName: filepath.Base(outPath),
		outPath: canonical,
		logger:  logger,
	}
}

// Sections returns how many file sections have been emitted so far.
func (w *Writer) Sections() int {
	return w.sections
}

// Add runs one candidate through the per-file filters and, if it survives,
// appends its Markdown section to the output. Filters apply in order and the
// first match skips the file: self-exclusion, extension denylist, size cap,
// binary sniff, read failure, emptiness after decode.
func (w *Writer) Add(path string, d fs.DirEntry) error {
	if d.Name() == w.outName {
		return nil
	}
	if abs, err := filepath.EvalSymlinks(path); err == nil && abs == w.outPath {
		return nil
	}

	ext := fileExt(d.Name())
	if ext != "" {
		if _, ok := ignoredExtensions()["."+ext]; ok {
			w.logger.Debug("Skipping denylisted extension",
				zap.String("path", path),
				zap.String("extension", ext))
			return nil
		}
	}

	if info, err := d.Info(); err == nil && info.Size() > MaxFileSize {
		w.logger.Debug("Skipping oversized file",
			zap.String("path", path),
			zap.Int64("sizeBytes", info.Size()))
		return nil
	}

	if !isTextFile(path) {
		w.logger.Debug("Skipping binary file", zap.String("path", path))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		w.logger.Debug("Skipping unreadable file",
			zap.String("path", path),
			zap.Error(err))
		return nil
	}

	// Lossy decode: invalid UTF-8 sequences become replacement characters,
	// the content is still emitted.
	content := strings.ToValidUTF8(string(data), "�")
	if strings.TrimSpace(content) == "" {
		w.logger.Debug("Skipping empty file", zap.String("path", path))
		return nil
	}

	if err := w.writeSection(relativePath(w.root, path), ext, content); err != nil {
		return fmt.Errorf("failed to write section for %s: %w", path, err)
	}
	w.sections++
	w.logger.Debug("Added file section", zap.String("path", path))
	return nil
}

// writeSection emits one Markdown block: a level-2 heading with the relative
// path, then the content inside a fenced code block tagged with the
// extension. The content is embedded verbatim; a closing fence inside it
// will break the surrounding Markdown, which is accepted.
func (w *Writer) writeSection(relPath, lang, content string) error {
	if _, err := fmt.Fprintf(w.out, "## File: %s\n\n", relPath); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w.out, "```%s\n", lang); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w.out, content); err != nil {
		return err
	}
	_, err := w.out.WriteString("```\n\n")
	return err
}

// fileExt returns the lowercased extension of name without the dot, or ""
// when there is none. A bare leading dot (".gitignore") is a name, not an
// extension.
func fileExt(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// relativePath renders path relative to root with forward slashes. Paths
// outside root (or equal to it) fall back the way the walk produced them.
func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	if rel == "." {
		// The walk root itself was a file.
		rel = ""
	}
	return filepath.ToSlash(rel)
}
