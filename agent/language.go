package agent

import (
	"context"

	"github.com/vidyasetu/agentcore/core"
	"github.com/vidyasetu/agentcore/translate"
)

// Task types handled by the LanguageAgent.
const (
	TaskDetectLanguage     core.TaskType = "detect_language"
	TaskTranslateContent   core.TaskType = "translate_content"
	TaskLocalizeLearning   core.TaskType = "localize_learning"
	TaskTranslateQuiz      core.TaskType = "translate_quiz"
	TaskTranslateResources core.TaskType = "translate_resources"
	TaskMultilingualPrompt core.TaskType = "create_multilingual_prompt"
)

// LanguageAgentName is the default registry name for the language agent.
const LanguageAgentName = "LanguageSelectorAgent"

// LanguageAgentOptions configure the language agent's providers.
type LanguageAgentOptions struct {
	// Translator performs translations. Defaults to translate.Static (text
	// passes through unchanged) so the agent degrades gracefully without a
	// provider.
	Translator translate.Translator

	// Detector identifies languages. Defaults to translate.Static's script
	// heuristic.
	Detector translate.Detector
}

// LanguageAgent handles language detection, translation and localization of
// learning content for the platform's vernacular languages.
type LanguageAgent struct {
	Base
	translator translate.Translator
	detector   translate.Detector
}

var _ core.Agent = (*LanguageAgent)(nil)

// NewLanguageAgent constructs a language agent with optional provider
// overrides.
func NewLanguageAgent(optFns ...func(o *LanguageAgentOptions)) *LanguageAgent {
	opts := LanguageAgentOptions{
		Translator: translate.Static{},
		Detector:   translate.Static{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &LanguageAgent{
		Base: NewBaseWithDescription(
			LanguageAgentName,
			"Handles multilingual translation and language-specific content adaptation for Indian vernacular languages",
			core.CapabilityTranslation,
		),
		translator: opts.Translator,
		detector:   opts.Detector,
	}
}

// Preferences returns the language preferences for a user. Only the platform
// defaults exist today; per-user storage is a backend concern.
func (a *LanguageAgent) Preferences() translate.Preferences {
	return translate.DefaultPreferences()
}

// Process dispatches over the agent's task type set.
func (a *LanguageAgent) Process(ctx context.Context, task core.Task) (any, error) {
	switch task.Type {
	case TaskDetectLanguage:
		return a.detectLanguage(ctx, task)
	case TaskTranslateContent:
		return a.translateContent(ctx, task)
	case TaskLocalizeLearning:
		return a.localizeLearning(ctx, task)
	case TaskTranslateQuiz:
		return a.translateQuiz(ctx, task)
	case TaskTranslateResources:
		return a.translateResources(ctx, task)
	case TaskMultilingualPrompt:
		return a.multilingualPrompt(ctx, task)
	default:
		return nil, core.NewUnknownTaskTypeError(a.Name(), task.Type)
	}
}

// DetectionResult is the payload of a detect_language task.
type DetectionResult struct {
	Language     string  `json:"language"`
	LanguageName string  `json:"language_name,omitempty"`
	Supported    bool    `json:"supported"`
	Confidence   float64 `json:"confidence"`
}

func (a *LanguageAgent) detectLanguage(ctx context.Context, task core.Task) (any, error) {
	text := task.Str("text", "")
	if text == "" {
		return DetectionResult{Language: translate.DefaultLanguage, Confidence: 0.0}, nil
	}

	code, err := a.detector.Detect(ctx, text)
	if err != nil {
		return nil, err
	}

	return DetectionResult{
		Language:     code,
		LanguageName: translate.LanguageName(code),
		Supported:    translate.IsSupported(code),
		Confidence:   1.0,
	}, nil
}

// TranslationResult is the payload of a translate_content task.
type TranslationResult struct {
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	OriginalText   string `json:"original_text,omitempty"`
}

func (a *LanguageAgent) translateContent(ctx context.Context, task core.Task) (any, error) {
	text := task.Str("text", "")
	target := task.Str("target_language", translate.DefaultLanguage)
	source := task.Str("source_language", "auto")

	if text == "" {
		return TranslationResult{SourceLanguage: translate.DefaultLanguage, TargetLanguage: target}, nil
	}

	translated, err := a.translator.Translate(ctx, text, source, target)
	if err != nil {
		return nil, err
	}

	return TranslationResult{
		TranslatedText: translated,
		SourceLanguage: source,
		TargetLanguage: target,
		OriginalText:   text,
	}, nil
}

// CulturalContext carries the regional adaptation hints for one language.
type CulturalContext struct {
	Greeting           string   `json:"greeting"`
	Encouragement      string   `json:"encouragement"`
	LearningStyle      string   `json:"learning_style"`
	CulturalReferences []string `json:"cultural_references"`
}

// RoleContext carries the presentation adaptations for one user role.
type RoleContext struct {
	Tone       string `json:"tone"`
	Complexity string `json:"complexity"`
	Examples   string `json:"examples"`
}

// CulturalAdaptations is the combined adaptation advice attached to localized
// content.
type CulturalAdaptations struct {
	CulturalContext CulturalContext `json:"cultural_context"`
	RoleContext     RoleContext     `json:"role_context"`
	Recommendations []string        `json:"recommendations"`
}

// LocalizationResult is the payload of a localize_learning task.
type LocalizationResult struct {
	LocalizedContent string              `json:"localized_content"`
	Prompts          translate.Prompts   `json:"prompts"`
	Adaptations      CulturalAdaptations `json:"cultural_adaptations"`
	TargetLanguage   string              `json:"target_language"`
	Role             string              `json:"role"`
}

func (a *LanguageAgent) localizeLearning(ctx context.Context, task core.Task) (any, error) {
	content := task.Str("content", "")
	target := task.Str("target_language", translate.DefaultLanguage)
	role := task.Str("role", "student")

	localized, err := a.translator.Translate(ctx, content, "auto", target)
	if err != nil {
		return nil, err
	}

	return LocalizationResult{
		LocalizedContent: localized,
		Prompts:          translate.PromptsFor(target),
		Adaptations:      adaptationsFor(target, role),
		TargetLanguage:   target,
		Role:             role,
	}, nil
}

// QuizQuestion is one translatable quiz entry.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// QuizTranslationResult is the payload of a translate_quiz task.
type QuizTranslationResult struct {
	TranslatedQuiz []QuizQuestion `json:"translated_quiz"`
	TargetLanguage string         `json:"target_language"`
	QuestionCount  int            `json:"question_count"`
}

func (a *LanguageAgent) translateQuiz(ctx context.Context, task core.Task) (any, error) {
	target := task.Str("target_language", translate.DefaultLanguage)
	quiz := decodeQuiz(task.Input["quiz"])
	if len(quiz) == 0 {
		return QuizTranslationResult{TranslatedQuiz: []QuizQuestion{}, TargetLanguage: target}, nil
	}

	translated := make([]QuizQuestion, 0, len(quiz))
	for _, q := range quiz {
		tq := q
		var err error
		if tq.Question, err = a.translator.Translate(ctx, q.Question, "auto", target); err != nil {
			return nil, err
		}
		if q.Explanation != "" {
			if tq.Explanation, err = a.translator.Translate(ctx, q.Explanation, "auto", target); err != nil {
				return nil, err
			}
		}
		tq.Options = make([]string, len(q.Options))
		for i, opt := range q.Options {
			if tq.Options[i], err = a.translator.Translate(ctx, opt, "auto", target); err != nil {
				return nil, err
			}
		}
		translated = append(translated, tq)
	}

	return QuizTranslationResult{
		TranslatedQuiz: translated,
		TargetLanguage: target,
		QuestionCount:  len(translated),
	}, nil
}

// Resource is one translatable learning resource entry.
type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// ResourceTranslationResult is the payload of a translate_resources task.
type ResourceTranslationResult struct {
	TranslatedResources []Resource `json:"translated_resources"`
	TargetLanguage      string     `json:"target_language"`
	ResourceCount       int        `json:"resource_count"`
}

func (a *LanguageAgent) translateResources(ctx context.Context, task core.Task) (any, error) {
	target := task.Str("target_language", translate.DefaultLanguage)
	resources := decodeResources(task.Input["resources"])
	if len(resources) == 0 {
		return ResourceTranslationResult{TranslatedResources: []Resource{}, TargetLanguage: target}, nil
	}

	translated := make([]Resource, 0, len(resources))
	for _, r := range resources {
		tr := r
		var err error
		if tr.Title, err = a.translator.Translate(ctx, r.Title, "auto", target); err != nil {
			return nil, err
		}
		if r.Description != "" {
			if tr.Description, err = a.translator.Translate(ctx, r.Description, "auto", target); err != nil {
				return nil, err
			}
		}
		translated = append(translated, tr)
	}

	return ResourceTranslationResult{
		TranslatedResources: translated,
		TargetLanguage:      target,
		ResourceCount:       len(translated),
	}, nil
}

// PromptResult is the payload of a create_multilingual_prompt task.
type PromptResult struct {
	MultilingualPrompt string `json:"multilingual_prompt"`
	TargetLanguage     string `json:"target_language"`
	OriginalPrompt     string `json:"original_prompt"`
}

func (a *LanguageAgent) multilingualPrompt(_ context.Context, task core.Task) (any, error) {
	base := task.Str("prompt", "")
	target := task.Str("target_language", translate.DefaultLanguage)
	extra := task.Str("context", "")

	prompt := base
	if target != translate.DefaultLanguage {
		prompt += "\n\nRespond entirely in " + translate.LanguageName(target) +
			". Use simple, clear language suited to learners."
	}
	if extra != "" {
		prompt += "\n\nContext: " + extra
	}

	return PromptResult{
		MultilingualPrompt: prompt,
		TargetLanguage:     target,
		OriginalPrompt:     base,
	}, nil
}

func decodeQuiz(v any) []QuizQuestion {
	items, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]QuizQuestion); ok {
			return typed
		}
		return nil
	}
	quiz := make([]QuizQuestion, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		q := QuizQuestion{
			Question:    str(m["question"]),
			Answer:      str(m["answer"]),
			Explanation: str(m["explanation"]),
		}
		if opts, ok := m["options"].([]any); ok {
			for _, opt := range opts {
				q.Options = append(q.Options, str(opt))
			}
		}
		quiz = append(quiz, q)
	}
	return quiz
}

func decodeResources(v any) []Resource {
	items, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]Resource); ok {
			return typed
		}
		return nil
	}
	resources := make([]Resource, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		resources = append(resources, Resource{
			Title:       str(m["title"]),
			Description: str(m["description"]),
			URL:         str(m["url"]),
		})
	}
	return resources
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
