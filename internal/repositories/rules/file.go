package rules

import (
	"context"
	"os"
	"strings"

	"github.com/cardforge/forge-api/internal/errors"
)

// FileConfig holds the dependencies for the file-backed repository.
type FileConfig struct {
	// Path is the location of the rules document on disk.
	Path string
}

// Validate ensures all required dependencies are provided.
func (c *FileConfig) Validate() error {
	if c.Path == "" {
		return errors.InvalidArgument("Path is required")
	}
	return nil
}

// FileRepository reads the rules document from a file on every Get. The
// document is small and reads are rare (one per external generation call),
// so there is no caching layer.
type FileRepository struct {
	path string
}

// NewFile creates a file-backed rules repository.
func NewFile(cfg *FileConfig) (*FileRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &FileRepository{path: cfg.Path}, nil
}

// Get loads and trims the rules document. A missing or unreadable file is a
// configuration fault surfaced as a rules-unavailable error.
func (r *FileRepository) Get(_ context.Context) (*GetOutput, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.RulesUnavailablef("rules document not found: %s", r.path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeRulesUnavailable, "failed to read rules document: %s", r.path)
	}

	return &GetOutput{Document: strings.TrimSpace(string(data))}, nil
}
