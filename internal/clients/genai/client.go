// Package genai is the contract for invoking an external generative model.
// The core treats the model as a free-form text generator: a standing rules
// document goes in as system context, a per-request instruction as the
// prompt, and raw text comes back for parsing and validation.
package genai

//go:generate mockgen -destination=mock/mock_client.go -package=genaimock github.com/cardforge/forge-api/internal/clients/genai Client

import (
	"context"
)

// Client defines the interface for external generative model calls. The call
// is blocking with no built-in timeout or retry; callers own that policy.
type Client interface {
	GenerateText(ctx context.Context, input *GenerateTextInput) (*GenerateTextOutput, error)
}

// GenerateTextInput carries the standing rules document and the per-request
// instruction.
type GenerateTextInput struct {
	// System is the standing rules document, passed whole as model context.
	System string

	// Prompt is the per-request instruction.
	Prompt string
}

// GenerateTextOutput carries the raw model reply.
type GenerateTextOutput struct {
	Text string
}
