// Package openai implements a TextGenerator backed by the OpenAI
// Responses API.
package openai

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"orgboard/pkg/orgboard"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
)

// ProviderConfig configures one OpenAI-backed generator instance.
type ProviderConfig struct {
	// APIKey is the credential used to authenticate requests.
	APIKey string
	// Model identifies which OpenAI model to call.
	Model string
	// BaseURL optionally overrides the OpenAI endpoint.
	BaseURL string
	// Organization optionally sets the OpenAI organization header.
	Organization string
	// Project optionally sets the OpenAI project header.
	Project string
	// MaxRetries optionally overrides the SDK retry count.
	//
	// Nil keeps the SDK default behavior.
	MaxRetries *int
}

// Provider is a text generator backed by the OpenAI Responses API.
type Provider struct {
	responses openAIResponsesClient
	model     string
}

type openAIResponsesClient interface {
	New(ctx context.Context, body responses.ResponseNewParams, opts ...option.RequestOption) (*responses.Response, error)
}

type openAIResponseServiceAdapter struct {
	service responses.ResponseService
}

func (a openAIResponseServiceAdapter) New(
	ctx context.Context,
	body responses.ResponseNewParams,
	opts ...option.RequestOption,
) (*responses.Response, error) {
	return a.service.New(ctx, body, opts...)
}

// New builds one OpenAI Responses API generator instance.
func New(cfg ProviderConfig) (*Provider, error) {
	normalized, err := normalizeProviderConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("new openai generator: %w", err)
	}

	options := make([]option.RequestOption, 0, 5)
	options = append(options, option.WithAPIKey(normalized.APIKey))
	if normalized.BaseURL != "" {
		options = append(options, option.WithBaseURL(normalized.BaseURL))
	}
	if normalized.Organization != "" {
		options = append(options, option.WithOrganization(normalized.Organization))
	}
	if normalized.Project != "" {
		options = append(options, option.WithProject(normalized.Project))
	}
	if normalized.MaxRetries != nil {
		options = append(options, option.WithMaxRetries(*normalized.MaxRetries))
	}

	client := openai.NewClient(options...)

	return &Provider{
		responses: openAIResponseServiceAdapter{service: client.Responses},
		model:     normalized.Model,
	}, nil
}

// Generate performs one blocking OpenAI generation call.
func (p *Provider) Generate(ctx context.Context, req orgboard.GenerateRequest) (string, error) {
	if p == nil {
		return "", fmt.Errorf("openai generate: nil generator")
	}
	if ctx == nil {
		return "", fmt.Errorf("openai generate: nil context")
	}
	if p.responses == nil {
		return "", fmt.Errorf("openai generate: responses client is nil")
	}
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("openai generate validate request: %w", err)
	}

	response, err := p.responses.New(ctx, mapGenerateRequest(p.model, req))
	if err != nil {
		return "", fmt.Errorf("openai generate: %w", err)
	}
	if response == nil {
		return "", fmt.Errorf("openai generate: nil response")
	}

	return response.OutputText(), nil
}

func mapGenerateRequest(model string, req orgboard.GenerateRequest) responses.ResponseNewParams {
	params := responses.ResponseNewParams{
		Model: model,
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(req.Question),
		},
	}
	if strings.TrimSpace(req.SystemPrompt) != "" {
		params.Instructions = openai.String(req.SystemPrompt)
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxOutputTokens > 0 {
		params.MaxOutputTokens = openai.Int(int64(req.MaxOutputTokens))
	}

	return params
}

func normalizeProviderConfig(cfg ProviderConfig) (ProviderConfig, error) {
	normalized := ProviderConfig{
		APIKey:       strings.TrimSpace(cfg.APIKey),
		Model:        strings.TrimSpace(cfg.Model),
		BaseURL:      strings.TrimSpace(cfg.BaseURL),
		Organization: strings.TrimSpace(cfg.Organization),
		Project:      strings.TrimSpace(cfg.Project),
		MaxRetries:   cloneIntPointer(cfg.MaxRetries),
	}
	if normalized.APIKey == "" {
		return ProviderConfig{}, fmt.Errorf("missing api_key")
	}
	if normalized.Model == "" {
		return ProviderConfig{}, fmt.Errorf("missing model")
	}
	if normalized.MaxRetries != nil && *normalized.MaxRetries < 0 {
		return ProviderConfig{}, fmt.Errorf("max_retries must be >= 0")
	}
	if normalized.BaseURL != "" {
		parsed, err := url.Parse(normalized.BaseURL)
		if err != nil {
			return ProviderConfig{}, fmt.Errorf("parse base_url: %w", err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return ProviderConfig{}, fmt.Errorf("parse base_url: must include scheme and host")
		}
	}

	return normalized, nil
}

func cloneIntPointer(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value

	return &cloned
}

var _ orgboard.TextGenerator = (*Provider)(nil)
