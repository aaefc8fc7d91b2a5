// Package anthropic implements translate.Translator using the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/vidyasetu/agentcore/translate"
)

// Options configure the Anthropic translation adapter (model id, max tokens,
// API key).
type Options struct {
	Model     anthropic.Model
	MaxTokens int64
	APIKey    string
}

// Provider wraps the Anthropic Messages API behind translate.Translator.
type Provider struct {
	client *anthropic.Client
	opts   Options
}

var _ translate.Translator = (*Provider)(nil)

// New creates a Provider using the official client.
func New(optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:     anthropic.ModelClaude3_5Sonnet20241022,
		MaxTokens: 2048,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &Provider{client: &client, opts: opts}
}

// NewFromClient creates a Provider from an existing client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:     anthropic.ModelClaude3_5Sonnet20241022,
		MaxTokens: 2048,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Provider{client: client, opts: opts}
}

// Translate renders text into the target language via a single Messages call.
func (p *Provider) Translate(ctx context.Context, text, source, target string) (string, error) {
	if source == target {
		return text, nil
	}

	system := fmt.Sprintf(
		"You are a translation engine. Translate the user's text to %s (%s). Reply with the translation only, no commentary.",
		translate.LanguageName(target), target,
	)
	if source != "" && source != "auto" {
		system = fmt.Sprintf(
			"You are a translation engine. Translate the user's text from %s to %s. Reply with the translation only, no commentary.",
			translate.LanguageName(source), translate.LanguageName(target),
		)
	}

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     p.opts.Model,
		MaxTokens: p.opts.MaxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("anthropic returned no text content")
	}
	return out, nil
}
