// Package speech defines the voice I/O seams used by the speech agent:
// Transcriber (speech-to-text) and Synthesizer (text-to-speech), plus audio
// input validation, temp-file housekeeping and the Responder seam (with its
// keyword-matched CannedResponder default) used by the composed voice
// interaction flow. The openai subpackage
// provides the production implementation of both interfaces.
package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Transcription is the result of a speech-to-text call.
type Transcription struct {
	Text       string  `json:"text"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// Synthesis is the result of a text-to-speech call.
type Synthesis struct {
	AudioPath string `json:"audio_file"`
	Language  string `json:"language"`
	Method    string `json:"method"`
}

// Transcriber converts recorded audio into text. Language may be "auto" to
// let the provider detect it.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (Transcription, error)
}

// Synthesizer renders text into an audio file. Premium selects a higher
// quality voice where the provider offers one.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string, premium bool) (Synthesis, error)
}

// Capabilities reports which voice features the configured providers support.
type Capabilities struct {
	SpeechToText        bool     `json:"speech_to_text"`
	TextToSpeechBasic   bool     `json:"text_to_speech_basic"`
	TextToSpeechPremium bool     `json:"text_to_speech_premium"`
	SupportedLanguages  []string `json:"supported_languages"`
	MaxAudioDuration    int      `json:"max_audio_duration"`
	SupportedFormats    []string `json:"supported_formats"`
}

// DefaultCapabilities describes the stock provider setup.
func DefaultCapabilities(stt Transcriber, tts Synthesizer) Capabilities {
	return Capabilities{
		SpeechToText:        stt != nil,
		TextToSpeechBasic:   tts != nil,
		TextToSpeechPremium: tts != nil,
		SupportedLanguages:  []string{"en", "hi", "te", "ta", "bn", "kn"},
		MaxAudioDuration:    300,
		SupportedFormats:    []string{"mp3", "wav", "ogg"},
	}
}

// MaxAudioBytes caps accepted uploads at 50MB.
const MaxAudioBytes = 50 * 1024 * 1024

var allowedAudioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".ogg":  true,
	".m4a":  true,
	".flac": true,
}

// AudioInfo is the result of validating an audio input file.
type AudioInfo struct {
	Size             int64   `json:"file_size"`
	Format           string  `json:"format"`
	DurationEstimate float64 `json:"duration_estimate"`
}

// ValidateAudioInput checks that the file exists, is within the size cap and
// carries a supported extension. The duration estimate assumes 128kbps audio
// and is informational only.
func ValidateAudioInput(audioPath string) (AudioInfo, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return AudioInfo{}, fmt.Errorf("audio file not found: %w", err)
	}
	if info.Size() > MaxAudioBytes {
		return AudioInfo{}, fmt.Errorf("audio file too large: %d bytes", info.Size())
	}

	ext := strings.ToLower(filepath.Ext(audioPath))
	if !allowedAudioExtensions[ext] {
		return AudioInfo{}, fmt.Errorf("unsupported audio format %q", ext)
	}

	return AudioInfo{
		Size:             info.Size(),
		Format:           ext,
		DurationEstimate: float64(info.Size()) / (128 * 1024 / 8),
	}, nil
}

// CleanupTempFiles removes files under dir older than maxAge, returning how
// many were deleted. Failure to remove one file never aborts removal of the
// rest.
func CleanupTempFiles(dir string, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read temp dir: %w", err)
	}

	now := time.Now()
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) < maxAge {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}
