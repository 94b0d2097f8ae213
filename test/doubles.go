// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations without mock frameworks.
package testdoubles

import (
	"context"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
)

// ---------------------------------------------------------------------------
// SpyFileAccess
// ---------------------------------------------------------------------------

// SpyFileAccess implements repositories.FileAccessRepository as a
// configurable spy. Configure the response fields for the methods your test
// exercises, then inspect the call-tracking fields to verify behavior.
type SpyFileAccess struct {
	// --- ListFiles ---
	Files        []entities.File
	ListFilesErr error
	// spy: suffixes that were requested
	ListedSuffixes []string

	// --- GetFileContent ---
	FileContents   map[string]string // path -> content
	FileContentErr error
	// spy: paths that were read
	ReadPaths []string
}

// ListFiles returns the configured files filtered by suffix.
func (s *SpyFileAccess) ListFiles(
	_ context.Context,
	_, _, _, suffix string,
) ([]entities.File, error) {
	s.ListedSuffixes = append(s.ListedSuffixes, suffix)
	if s.ListFilesErr != nil {
		return nil, s.ListFilesErr
	}
	return s.Files, nil
}

// GetFileContent returns the configured content for the path.
func (s *SpyFileAccess) GetFileContent(
	_ context.Context,
	_, _, path, _ string,
) (string, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	if s.FileContentErr != nil {
		return "", s.FileContentErr
	}
	return s.FileContents[path], nil
}
