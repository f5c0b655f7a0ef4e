// Package gemini implements a TextGenerator backed by the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"orgboard/pkg/orgboard"

	"google.golang.org/genai"
)

const defaultAPIVersion = "v1beta"

// ProviderConfig configures one Gemini-backed generator instance.
type ProviderConfig struct {
	// APIKey is the credential used to authenticate requests.
	APIKey string
	// Model identifies which Gemini model to call.
	Model string
	// BaseURL optionally overrides the Gemini endpoint.
	BaseURL string
	// APIVersion optionally overrides Gemini API version.
	//
	// Zero defaults to v1beta.
	APIVersion string
}

// Provider is a text generator backed by the Gemini API.
type Provider struct {
	models geminiModelsClient
	model  string
}

type geminiModelsClient interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// New builds one Gemini generator instance.
func New(cfg ProviderConfig) (*Provider, error) {
	normalized, err := normalizeProviderConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("new gemini generator: %w", err)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  normalized.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    normalized.BaseURL,
			APIVersion: normalized.APIVersion,
		},
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("new gemini client: %w", err)
	}
	if client == nil || client.Models == nil {
		return nil, fmt.Errorf("new gemini client: models client is nil")
	}

	return &Provider{
		models: client.Models,
		model:  normalized.Model,
	}, nil
}

// Generate performs one blocking Gemini generation call.
func (p *Provider) Generate(ctx context.Context, req orgboard.GenerateRequest) (string, error) {
	if p == nil {
		return "", fmt.Errorf("gemini generate: nil generator")
	}
	if ctx == nil {
		return "", fmt.Errorf("gemini generate: nil context")
	}
	if p.models == nil {
		return "", fmt.Errorf("gemini generate: models client is nil")
	}
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("gemini generate validate request: %w", err)
	}

	contents, config, err := mapGenerateRequest(req)
	if err != nil {
		return "", fmt.Errorf("gemini generate map request: %w", err)
	}

	response, err := p.models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if response == nil {
		return "", fmt.Errorf("gemini generate: nil response")
	}

	return response.Text(), nil
}

func mapGenerateRequest(req orgboard.GenerateRequest) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	contents := []*genai.Content{
		{
			Role: string(genai.RoleUser),
			Parts: []*genai.Part{
				{Text: req.Question},
			},
		},
	}

	config := &genai.GenerateContentConfig{}
	if strings.TrimSpace(req.SystemPrompt) != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				{Text: req.SystemPrompt},
			},
		}
	}
	if req.Temperature > 0 {
		temperature := float32(req.Temperature)
		config.Temperature = &temperature
	}
	if req.MaxOutputTokens > 0 {
		if req.MaxOutputTokens > math.MaxInt32 {
			return nil, nil, fmt.Errorf("max output tokens exceeds int32 range")
		}
		config.MaxOutputTokens = int32(req.MaxOutputTokens)
	}

	return contents, config, nil
}

func normalizeProviderConfig(cfg ProviderConfig) (ProviderConfig, error) {
	normalized := ProviderConfig{
		APIKey:     strings.TrimSpace(cfg.APIKey),
		Model:      strings.TrimSpace(cfg.Model),
		BaseURL:    strings.TrimSpace(cfg.BaseURL),
		APIVersion: strings.TrimSpace(cfg.APIVersion),
	}
	if normalized.APIKey == "" {
		return ProviderConfig{}, fmt.Errorf("missing api_key")
	}
	if normalized.Model == "" {
		return ProviderConfig{}, fmt.Errorf("missing model")
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
	if normalized.APIVersion == "" {
		normalized.APIVersion = defaultAPIVersion
	}

	return normalized, nil
}

var _ orgboard.TextGenerator = (*Provider)(nil)
