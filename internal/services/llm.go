package services

import "context"

// TextGenerator is the contract with the hosted text-completion
// collaborator. Both pipeline steps (intent classification and narration)
// submit a single prompt string and expect a short text reply.
//
// A non-nil error means the collaborator was unreachable or returned a
// payload that could not be parsed; callers decide whether that aborts the
// turn (classifier) or degrades to a fallback (narrator).
type TextGenerator interface {
	// Generate submits one prompt and returns the model's text reply.
	Generate(ctx context.Context, prompt string) (string, error)

	// InitModel prepares the model on startup where the provider needs it.
	InitModel(ctx context.Context, modelName string) error

	// IsModelReady reports whether the model can serve requests.
	IsModelReady(ctx context.Context, modelName string) (bool, error)
}
