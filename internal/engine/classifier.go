package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emberveil/adventure-engine/internal/services"
	"github.com/emberveil/adventure-engine/pkg/game"
	"github.com/emberveil/adventure-engine/pkg/intent"
	"github.com/emberveil/adventure-engine/pkg/prompts"
)

// Classifier maps a free-text player action onto a mechanical intent by
// asking the text-completion collaborator to pick from the class's legal
// tag set.
type Classifier struct {
	generator services.TextGenerator
	logger    *slog.Logger
}

// NewClassifier creates a classifier backed by the given generator.
func NewClassifier(generator services.TextGenerator, logger *slog.Logger) *Classifier {
	return &Classifier{generator: generator, logger: logger}
}

// Classify submits the per-class classification prompt and parses the
// reply. A reply that matches no known tag is not an error: it yields the
// none intent and the turn proceeds as pure narration. An unreachable
// generator is a hard failure that aborts the turn.
func (c *Classifier) Classify(ctx context.Context, action string, class game.Class) (intent.Intent, error) {
	prompt := prompts.ClassifierPrompt(class, action)

	reply, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		return intent.None, fmt.Errorf("classify action: %w", err)
	}

	in := intent.Parse(reply)
	c.logger.Debug("Classified action",
		"class", class,
		"tag", in.Tag(),
		"reply", reply)
	return in, nil
}
