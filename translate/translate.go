// Package translate defines the translation and language-detection seams used
// by the language agent, together with the supported-language tables and
// localized learning prompt templates for the Indian vernacular languages the
// platform targets. Provider subpackages (openai, anthropic) implement the
// interfaces against LLM APIs; Static is the deterministic fallback used when
// no provider is available.
package translate

import (
	"context"
	"strings"
)

// Translator translates text between languages. Source may be "auto" to let
// the provider detect the source language.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Detector identifies the language of a text, returning an ISO 639-1 code.
type Detector interface {
	Detect(ctx context.Context, text string) (string, error)
}

// DefaultLanguage is the code assumed when detection fails or a language is
// unsupported.
const DefaultLanguage = "en"

// SupportedLanguages maps the language codes the platform serves to their
// English names.
var SupportedLanguages = map[string]string{
	"hi": "Hindi",
	"te": "Telugu",
	"ta": "Tamil",
	"bn": "Bengali",
	"kn": "Kannada",
	"en": "English",
}

// IsSupported reports whether code is one of the platform languages.
func IsSupported(code string) bool {
	_, ok := SupportedLanguages[code]
	return ok
}

// LanguageName returns the English name for a supported code, or the code
// itself for unknown ones.
func LanguageName(code string) string {
	if name, ok := SupportedLanguages[code]; ok {
		return name
	}
	return code
}

// Prompts holds the localized learning prompt templates for one language.
type Prompts struct {
	QuestionPrompt string `json:"question_prompt"`
	QuizIntro      string `json:"quiz_intro"`
	ResourceIntro  string `json:"resource_intro"`
	Explanation    string `json:"explanation"`
}

// LearningPrompts holds per-language learning prompt templates.
var LearningPrompts = map[string]Prompts{
	"hi": {
		QuestionPrompt: "आपने क्या सीखा?",
		QuizIntro:      "आइए आपकी समझ का परीक्षण करते हैं:",
		ResourceIntro:  "यहाँ कुछ उपयोगी संसाधन हैं:",
		Explanation:    "व्याख्या:",
	},
	"te": {
		QuestionPrompt: "మీరు ఏమి నేర్చుకున్నారు?",
		QuizIntro:      "మీ అవగాహనను పరీక్షిద్దాం:",
		ResourceIntro:  "ఇక్కడ కొన్ని ఉపయోగకరమైన వనరులు ఉన్నాయి:",
		Explanation:    "వివరణ:",
	},
	"ta": {
		QuestionPrompt: "நீங்கள் என்ன கற்றுக்கொண்டீர்கள்?",
		QuizIntro:      "உங்கள் புரிதலை சோதிக்கலாம்:",
		ResourceIntro:  "இங்கே சில பயனுள்ள வளங்கள் உள்ளன:",
		Explanation:    "விளக்கம்:",
	},
	"bn": {
		QuestionPrompt: "আপনি কী শিখেছেন?",
		QuizIntro:      "আসুন আপনার বোঝাপড়া পরীক্ষা করি:",
		ResourceIntro:  "এখানে কিছু দরকারী সম্পদ রয়েছে:",
		Explanation:    "ব্যাখ্যা:",
	},
	"kn": {
		QuestionPrompt: "ನೀವು ಏನು ಕಲಿತಿದ್ದೀರಿ?",
		QuizIntro:      "ನಿಮ್ಮ ತಿಳುವಳಿಕೆಯನ್ನು ಪರೀಕ್ಷಿಸೋಣ:",
		ResourceIntro:  "ಇಲ್ಲಿ ಕೆಲವು ಉಪಯೋಗಕರ ಸಂಪನ್ಮೂಲಗಳಿವೆ:",
		Explanation:    "ವಿವರಣೆ:",
	},
	"en": {
		QuestionPrompt: "What did you learn?",
		QuizIntro:      "Let's test your understanding:",
		ResourceIntro:  "Here are some useful resources:",
		Explanation:    "Explanation:",
	},
}

// PromptsFor returns the learning prompts for a language, falling back to
// English for unsupported codes.
func PromptsFor(code string) Prompts {
	if p, ok := LearningPrompts[code]; ok {
		return p
	}
	return LearningPrompts[DefaultLanguage]
}

// Preferences capture a user's language setup: the primary interface
// language, additional languages content may fall back to, and the
// presentation toggles driven by them.
type Preferences struct {
	PrimaryLanguage    string   `json:"primary_language"`
	SecondaryLanguages []string `json:"secondary_languages"`
	LearningStyle      string   `json:"learning_style"`
	CulturalContext    bool     `json:"cultural_context"`
	VoiceEnabled       bool     `json:"voice_enabled"`
}

// DefaultPreferences returns the platform defaults applied to users without
// stored preferences. Per-user persistence lives outside this package.
func DefaultPreferences() Preferences {
	return Preferences{
		PrimaryLanguage:    DefaultLanguage,
		SecondaryLanguages: []string{"hi"},
		LearningStyle:      "visual",
		CulturalContext:    true,
		VoiceEnabled:       true,
	}
}

// QualityReport is the outcome of a lightweight translation sanity check.
type QualityReport struct {
	Score     float64  `json:"quality_score"`
	Issues    []string `json:"issues"`
	Validated bool     `json:"validated"`
}

// ValidateQuality runs cheap structural checks on a translation: emptiness,
// unchanged output for a non-English target, and suspicious length ratios.
// It is a heuristic gate, not a linguistic judgment.
func ValidateQuality(original, translated, target string) QualityReport {
	report := QualityReport{Score: 1.0, Issues: []string{}}

	switch {
	case strings.TrimSpace(translated) == "":
		report.Score = 0.0
		report.Issues = append(report.Issues, "empty translation")
	case strings.TrimSpace(original) == strings.TrimSpace(translated) && target != "en":
		report.Score = 0.5
		report.Issues = append(report.Issues, "translation appears unchanged")
	case len(translated) < len(original)*3/10:
		report.Score = 0.7
		report.Issues = append(report.Issues, "translation significantly shorter than original")
	case len(translated) > len(original)*3:
		report.Score = 0.7
		report.Issues = append(report.Issues, "translation significantly longer than original")
	}

	report.Validated = report.Score >= 0.7
	return report
}
