package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UniqueDocumentName derives a collision-resistant backend name from an
// original filename. Source names must be unique in the backend namespace,
// and the same file is often uploaded more than once, so an 8-hex uniqueness
// token is inserted before the extension: report.pdf -> report-1a2b3c4d.pdf.
func UniqueDocumentName(original string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	ext := filepath.Ext(original)
	base := strings.TrimSuffix(original, ext)
	if base == "" {
		base = "document"
	}

	return base + "-" + token + ext
}
