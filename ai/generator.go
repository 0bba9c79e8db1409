// Package ai wraps the third-party generative-content API behind a single
// "generate content from prompt" call, plus the strict decode and category
// filtering applied to everything the model returns. The platform never
// trusts free-text model output: anything that fails the decode fails the
// whole request, and category names that don't match the live category set
// are dropped.
package ai

import "context"

// Generator is the narrow interface to the generative-AI collaborator.
// Production uses the Gemini HTTP client, tests use FakeGenerator.
type Generator interface {
	// GenerateContent sends one prompt and returns the model's text response
	// verbatim. No retries: callers fail the request on error.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
