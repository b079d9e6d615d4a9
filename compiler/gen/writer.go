package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// Writer renders assembled files to disk, normalizing the output with
// goimports so generated files don't depend on a postprocessing step.
type Writer struct {
	outDir string

	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks generation output.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// NewWriter creates a writer emitting into outDir.
func NewWriter(outDir string) *Writer {
	return &Writer{outDir: outDir}
}

// Metrics returns a snapshot of the writer metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// WriteFile renders the file and writes it under the writer's output
// directory.
func (w *Writer) WriteFile(f *jen.File, name string) error {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	fullPath := filepath.Join(w.outDir, name)
	formatted, err := imports.Process(fullPath, buf.Bytes(), nil)
	if err != nil {
		// Keep the unformatted output around for debugging; we're already in
		// an error state, so the write errors are intentionally ignored.
		debugPath := fullPath + ".error"
		_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return fmt.Errorf("format %s: %w (unformatted written to %s)", name, err, debugPath)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(fullPath, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(len(formatted))
	w.mu.Unlock()

	return nil
}
