package orgboard

import (
	"context"
	"fmt"
	"strings"
)

// GenerateRequest is one plain-text generation request.
type GenerateRequest struct {
	// SystemPrompt is the instructional prefix applied before the question.
	SystemPrompt string
	// Question is the user-authored question body.
	Question string
	// MaxOutputTokens optionally caps generated token count.
	MaxOutputTokens int
	// Temperature optionally controls output randomness.
	Temperature float64
}

// Validate checks one generation request contract.
func (r GenerateRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("validate generate request: missing question")
	}
	if r.MaxOutputTokens < 0 {
		return fmt.Errorf("validate generate request: max output tokens must be >= 0")
	}
	if r.Temperature < 0 {
		return fmt.Errorf("validate generate request: temperature must be >= 0")
	}

	return nil
}

// TextGenerator sends one prompt to a generative-text service and returns
// plain text. Implementations keep provider transport details hidden.
type TextGenerator interface {
	// Generate performs one blocking generation call.
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
