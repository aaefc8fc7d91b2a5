package translate

import (
	"context"
	"unicode"
)

// Static is the zero-dependency fallback provider. Detection is a script-range
// heuristic over the platform languages; translation returns the input text
// unchanged, which mirrors the product behavior when no translation backend is
// reachable (serve the original rather than fail the lesson).
type Static struct{}

var (
	_ Translator = Static{}
	_ Detector   = Static{}
)

// Detect classifies text by the first rune belonging to one of the supported
// scripts, defaulting to English.
func (Static) Detect(_ context.Context, text string) (string, error) {
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Devanagari, r):
			return "hi", nil
		case unicode.Is(unicode.Telugu, r):
			return "te", nil
		case unicode.Is(unicode.Tamil, r):
			return "ta", nil
		case unicode.Is(unicode.Bengali, r):
			return "bn", nil
		case unicode.Is(unicode.Kannada, r):
			return "kn", nil
		}
	}
	return DefaultLanguage, nil
}

// Translate returns the text unchanged.
func (Static) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}
