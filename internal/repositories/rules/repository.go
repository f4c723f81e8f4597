// Package rules provides the repository for the standing stat-generation
// rules document. The document is an opaque text blob handed whole to the
// external generative model as standing context; its internal structure is
// never parsed here.
package rules

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rulesmock github.com/cardforge/forge-api/internal/repositories/rules Repository

// Repository loads the standing rules document.
type Repository interface {
	Get(ctx context.Context) (*GetOutput, error)
}

// GetOutput contains the loaded rules document.
type GetOutput struct {
	Document string
}
