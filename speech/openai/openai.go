// Package openai implements speech.Transcriber and speech.Synthesizer using
// the OpenAI audio endpoints (Whisper transcription and TTS). Synthesized
// audio is written to a temp directory owned by the provider; callers are
// expected to run speech.CleanupTempFiles against TempDir() periodically.
package openai

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/openai/openai-go"

	"github.com/vidyasetu/agentcore/internal/util"
	"github.com/vidyasetu/agentcore/speech"
)

// Options configure the OpenAI speech adapter.
type Options struct {
	TranscriptionModel string
	SpeechModel        string
	PremiumSpeechModel string
	Voice              openai.AudioSpeechNewParamsVoice

	// TempDir is where synthesized audio files are written. Defaults to a
	// "agentcore_audio" directory under the OS temp dir, created on first use.
	TempDir string
}

// Provider wraps the OpenAI audio APIs behind the speech interfaces.
type Provider struct {
	client *openai.Client
	opts   Options
}

var (
	_ speech.Transcriber = (*Provider)(nil)
	_ speech.Synthesizer = (*Provider)(nil)
)

// New creates a Provider using the default client (API key from environment).
func New(optFns ...func(o *Options)) *Provider {
	client := openai.NewClient()
	return NewFromClient(&client, optFns...)
}

// NewFromClient creates a Provider from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *Provider {
	opts := Options{
		TranscriptionModel: openai.AudioModelWhisper1,
		SpeechModel:        openai.SpeechModelTTS1,
		PremiumSpeechModel: openai.SpeechModelTTS1HD,
		Voice:              openai.AudioSpeechNewParamsVoiceAlloy,
		TempDir:            filepath.Join(os.TempDir(), "agentcore_audio"),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Provider{client: client, opts: opts}
}

// TempDir returns the directory synthesized audio is written to.
func (p *Provider) TempDir() string { return p.opts.TempDir }

// Transcribe converts the audio file to text. Language "auto" leaves detection
// to the model. Whisper does not report confidence, so it is fixed at 1.0.
func (p *Provider) Transcribe(ctx context.Context, audioPath, language string) (speech.Transcription, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return speech.Transcription{}, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	params := openai.AudioTranscriptionNewParams{
		Model: p.opts.TranscriptionModel,
		File:  f,
	}
	if language != "" && language != "auto" {
		params.Language = openai.String(language)
	}

	transcription, err := p.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return speech.Transcription{}, fmt.Errorf("openai transcription error: %w", err)
	}

	detected := language
	if detected == "" || detected == "auto" {
		detected = "en"
	}

	return speech.Transcription{
		Text:       transcription.Text,
		Language:   detected,
		Confidence: 1.0,
	}, nil
}

// Synthesize renders text to an mp3 file under TempDir and returns its path.
func (p *Provider) Synthesize(ctx context.Context, text, language string, premium bool) (speech.Synthesis, error) {
	model := p.opts.SpeechModel
	method := "openai_tts"
	if premium {
		model = p.opts.PremiumSpeechModel
		method = "openai_tts_hd"
	}

	resp, err := p.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model: model,
		Input: text,
		Voice: p.opts.Voice,
	})
	if err != nil {
		return speech.Synthesis{}, fmt.Errorf("openai speech error: %w", err)
	}
	defer resp.Body.Close()

	if err := os.MkdirAll(p.opts.TempDir, 0o755); err != nil {
		return speech.Synthesis{}, fmt.Errorf("create temp dir: %w", err)
	}

	audioPath := filepath.Join(p.opts.TempDir, util.NewID()+".mp3")
	out, err := os.Create(audioPath)
	if err != nil {
		return speech.Synthesis{}, fmt.Errorf("create audio file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return speech.Synthesis{}, fmt.Errorf("write audio file: %w", err)
	}

	return speech.Synthesis{
		AudioPath: audioPath,
		Language:  language,
		Method:    method,
	}, nil
}
