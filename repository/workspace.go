// Package repository wires the masking engine to the filesystem: it reads C
// sources, persists masked output and conversion tables, and derives the
// conventional output locations.
package repository

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/cmask/masker"
	"github.com/viant/cmask/masker/table"
)

const (
	maskedSuffix   = "_masked"
	restoredSuffix = "_restored"
	tableSuffix    = "_table.txt"
)

// Workspace reads and writes masking artifacts through a file service.
type Workspace struct {
	fs afs.Service
}

// New creates a workspace backed by the default file service.
func New() *Workspace {
	return &Workspace{fs: afs.New()}
}

// ReadSource loads a C source file.
func (w *Workspace) ReadSource(ctx context.Context, URL string) (string, error) {
	data, err := w.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", fmt.Errorf("failed to read source %s: %w", URL, err)
	}
	return string(data), nil
}

// WriteMasked persists the masked source next to the input together with its
// conversion table, and returns both locations.
func (w *Workspace) WriteMasked(ctx context.Context, sourceURL string, result *masker.Result) (string, string, error) {
	maskedURL := MaskedPath(sourceURL)
	if err := w.fs.Upload(ctx, maskedURL, file.DefaultFileOsMode, strings.NewReader(result.Source)); err != nil {
		return "", "", fmt.Errorf("failed to write masked source %s: %w", maskedURL, err)
	}
	tableURL := TablePath(sourceURL)
	if err := w.fs.Upload(ctx, tableURL, file.DefaultFileOsMode, bytes.NewReader(table.EncodeText(result.Table))); err != nil {
		return "", "", fmt.Errorf("failed to write conversion table %s: %w", tableURL, err)
	}
	return maskedURL, tableURL, nil
}

// ReadTable loads and parses a conversion table.
func (w *Workspace) ReadTable(ctx context.Context, URL string) (*table.Table, error) {
	data, err := w.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read conversion table %s: %w", URL, err)
	}
	result, err := table.DecodeText(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse conversion table %s: %w", URL, err)
	}
	return result, nil
}

// WriteRestored persists restored source derived from the masked file name.
func (w *Workspace) WriteRestored(ctx context.Context, maskedURL string, result *masker.RestoreResult) (string, error) {
	restoredURL := RestoredPath(maskedURL)
	if err := w.fs.Upload(ctx, restoredURL, file.DefaultFileOsMode, strings.NewReader(result.Source)); err != nil {
		return "", fmt.Errorf("failed to write restored source %s: %w", restoredURL, err)
	}
	return restoredURL, nil
}

// MaskedPath derives the masked output location: base_masked.c for base.c.
func MaskedPath(sourceURL string) string {
	base, ext := splitExt(sourceURL)
	return base + maskedSuffix + ext
}

// TablePath derives the conversion table location: base_table.txt for base.c.
func TablePath(sourceURL string) string {
	base, _ := splitExt(sourceURL)
	return base + tableSuffix
}

// RestoredPath derives the restored output location, stripping a _masked
// marker when present: base_restored.c for base_masked.c.
func RestoredPath(maskedURL string) string {
	base, ext := splitExt(maskedURL)
	base = strings.TrimSuffix(base, maskedSuffix)
	return base + restoredSuffix + ext
}

// InferTablePath guesses the table location for a masked file when none is
// supplied.
func InferTablePath(maskedURL string) string {
	base, _ := splitExt(maskedURL)
	base = strings.TrimSuffix(base, maskedSuffix)
	return base + tableSuffix
}

func splitExt(URL string) (string, string) {
	if idx := strings.LastIndex(URL, "."); idx > strings.LastIndex(URL, "/") {
		return URL[:idx], URL[idx:]
	}
	return URL, ""
}
