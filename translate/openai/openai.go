// Package openai implements translate.Translator and translate.Detector using
// the OpenAI Chat Completions API. Prompting is kept deliberately narrow: one
// system instruction per operation and the raw text as the user message, so
// the model's answer can be used verbatim.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"

	"github.com/vidyasetu/agentcore/translate"
)

// Options configure the OpenAI translation adapter.
type Options struct {
	Model       string
	Temperature float64
}

// Provider wraps the OpenAI Chat Completions API behind the translate
// interfaces.
type Provider struct {
	client *openai.Client
	opts   Options
}

var (
	_ translate.Translator = (*Provider)(nil)
	_ translate.Detector   = (*Provider)(nil)
)

// New creates a Provider using the default client (API key from environment).
func New(optFns ...func(o *Options)) *Provider {
	client := openai.NewClient()
	return NewFromClient(&client, optFns...)
}

// NewFromClient creates a Provider from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:       openai.ChatModelGPT4oMini,
		Temperature: 0.2,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Provider{client: client, opts: opts}
}

// Translate renders text into the target language. Source "auto" leaves source
// identification to the model.
func (p *Provider) Translate(ctx context.Context, text, source, target string) (string, error) {
	if source == target {
		return text, nil
	}

	instruction := fmt.Sprintf(
		"You are a translation engine. Translate the user's text to %s (%s). Reply with the translation only, no commentary.",
		translate.LanguageName(target), target,
	)
	if source != "" && source != "auto" {
		instruction = fmt.Sprintf(
			"You are a translation engine. Translate the user's text from %s to %s. Reply with the translation only, no commentary.",
			translate.LanguageName(source), translate.LanguageName(target),
		)
	}

	out, err := p.complete(ctx, instruction, text)
	if err != nil {
		return "", fmt.Errorf("translate to %s: %w", target, err)
	}
	return out, nil
}

// Detect asks the model for the ISO 639-1 code of the text, constrained to the
// platform languages; unsupported answers fall back to English.
func (p *Provider) Detect(ctx context.Context, text string) (string, error) {
	instruction := "Identify the language of the user's text. Reply with only the ISO 639-1 code, e.g. \"hi\" or \"en\"."

	out, err := p.complete(ctx, instruction, text)
	if err != nil {
		return "", fmt.Errorf("detect language: %w", err)
	}

	code := strings.ToLower(strings.Trim(strings.TrimSpace(out), "\"'.`"))
	if !translate.IsSupported(code) {
		return translate.DefaultLanguage, nil
	}
	return code, nil
}

func (p *Provider) complete(ctx context.Context, instruction, text string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.opts.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(instruction),
			openai.UserMessage(text),
		},
		Temperature: openai.Float(p.opts.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
