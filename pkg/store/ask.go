package store

import (
	"context"
	"fmt"
	"strings"

	"orgboard/pkg/orgboard"
)

// Fixed generation parameters for AskAI: instructional prefix plus the user
// question, capped output length, fixed temperature.
const (
	askSystemPrompt = "You are the assistant for a small organizational website. " +
		"Answer the visitor's question about the organization briefly, " +
		"accurately, and in plain language."
	askMaxOutputTokens = 512
	askTemperature     = 0.7
)

// AskAI sends question to the configured text generator and returns the
// generated text.
//
// The busy flag stays set while any call is in flight; overlapping calls
// keep it set until the last one returns, and every path clears its share.
// Without a configured generator the call fails with
// orgboard.ErrGeneratorNotConfigured before any network activity.
func (c *Container) AskAI(ctx context.Context, question string) (string, error) {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return "", fmt.Errorf("ask ai: empty question")
	}

	c.mu.Lock()
	if err := c.guardOpenLocked("ask ai"); err != nil {
		c.mu.Unlock()
		return "", err
	}
	if c.generator == nil {
		c.mu.Unlock()
		return "", fmt.Errorf("ask ai: %w", orgboard.ErrGeneratorNotConfigured)
	}
	c.busyCalls++
	generator := c.generator
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.busyCalls--
		c.mu.Unlock()
	}()

	text, err := generator.Generate(ctx, orgboard.GenerateRequest{
		SystemPrompt:    askSystemPrompt,
		Question:        trimmed,
		MaxOutputTokens: askMaxOutputTokens,
		Temperature:     askTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("ask ai: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("ask ai: %w", orgboard.ErrEmptyGeneration)
	}

	return text, nil
}
