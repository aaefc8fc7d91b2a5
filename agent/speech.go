package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/vidyasetu/agentcore/core"
	"github.com/vidyasetu/agentcore/speech"
)

// Task types handled by the SpeechAgent.
const (
	TaskSpeechToText     core.TaskType = "speech_to_text"
	TaskTextToSpeech     core.TaskType = "text_to_speech"
	TaskVoiceQuestion    core.TaskType = "process_voice_question"
	TaskAudioResponse    core.TaskType = "generate_audio_response"
	TaskVoiceInteraction core.TaskType = "voice_interaction_flow"
)

// SpeechAgentName is the default registry name for the speech agent.
const SpeechAgentName = "SpeechAgent"

// SpeechAgentOptions configure the speech agent's providers.
type SpeechAgentOptions struct {
	// Transcriber performs speech-to-text. Required for the STT task types;
	// leaving it nil makes those tasks fail with a clear error.
	Transcriber speech.Transcriber

	// Synthesizer performs text-to-speech. Same contract as Transcriber.
	Synthesizer speech.Synthesizer

	// Responder supplies the reply text in the voice interaction flow.
	// Defaults to the keyword-matched speech.CannedResponder.
	Responder speech.Responder
}

// SpeechAgent handles voice input/output: transcription, synthesis and the
// composed voice-question and full voice-interaction flows.
type SpeechAgent struct {
	Base
	stt       speech.Transcriber
	tts       speech.Synthesizer
	responder speech.Responder
}

var _ core.Agent = (*SpeechAgent)(nil)

// NewSpeechAgent constructs a speech agent with optional provider overrides.
func NewSpeechAgent(optFns ...func(o *SpeechAgentOptions)) *SpeechAgent {
	opts := SpeechAgentOptions{
		Responder: speech.CannedResponder{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &SpeechAgent{
		Base: NewBaseWithDescription(
			SpeechAgentName,
			"Handles speech-to-text and text-to-speech operations for voice-enabled learning",
			core.CapabilitySpeech,
		),
		stt:       opts.Transcriber,
		tts:       opts.Synthesizer,
		responder: opts.Responder,
	}
}

// VoiceCapabilities reports what the configured providers support.
func (a *SpeechAgent) VoiceCapabilities() speech.Capabilities {
	return speech.DefaultCapabilities(a.stt, a.tts)
}

// Process dispatches over the agent's task type set.
func (a *SpeechAgent) Process(ctx context.Context, task core.Task) (any, error) {
	switch task.Type {
	case TaskSpeechToText:
		return a.speechToText(ctx, task)
	case TaskTextToSpeech:
		return a.textToSpeech(ctx, task)
	case TaskVoiceQuestion:
		return a.voiceQuestion(ctx, task)
	case TaskAudioResponse:
		return a.audioResponse(ctx, task)
	case TaskVoiceInteraction:
		return a.voiceInteraction(ctx, task)
	default:
		return nil, core.NewUnknownTaskTypeError(a.Name(), task.Type)
	}
}

func (a *SpeechAgent) speechToText(ctx context.Context, task core.Task) (speech.Transcription, error) {
	audioPath := task.Str("audio_file_path", "")
	language := task.Str("language", "auto")

	if audioPath == "" {
		return speech.Transcription{}, fmt.Errorf("no audio file provided")
	}
	if a.stt == nil {
		return speech.Transcription{}, fmt.Errorf("speech-to-text service not available")
	}

	return a.stt.Transcribe(ctx, audioPath, language)
}

func (a *SpeechAgent) textToSpeech(ctx context.Context, task core.Task) (speech.Synthesis, error) {
	text := task.Str("text", "")
	language := task.Str("language", "en")
	premium := task.Bool("premium")

	if text == "" {
		return speech.Synthesis{}, fmt.Errorf("no text provided")
	}
	if a.tts == nil {
		return speech.Synthesis{}, fmt.Errorf("text-to-speech service not available")
	}

	return a.tts.Synthesize(ctx, text, language, premium)
}

// VoiceQuestionResult is the payload of a process_voice_question task: the
// transcribed question ready for downstream processing, with the workflow
// context passed through untouched.
type VoiceQuestionResult struct {
	QuestionText       string         `json:"question_text"`
	DetectedLanguage   string         `json:"detected_language"`
	Confidence         float64        `json:"confidence"`
	ReadyForProcessing bool           `json:"ready_for_processing"`
	Context            map[string]any `json:"context,omitempty"`
}

func (a *SpeechAgent) voiceQuestion(ctx context.Context, task core.Task) (VoiceQuestionResult, error) {
	transcription, err := a.speechToText(ctx, core.Task{
		Type: TaskSpeechToText,
		Input: map[string]any{
			"audio_file_path": task.Str("audio_file_path", ""),
			"language":        task.Str("user_language", "en"),
		},
	})
	if err != nil {
		return VoiceQuestionResult{}, fmt.Errorf("speech recognition failed: %w", err)
	}

	return VoiceQuestionResult{
		QuestionText:       transcription.Text,
		DetectedLanguage:   transcription.Language,
		Confidence:         transcription.Confidence,
		ReadyForProcessing: true,
		Context:            task.Context,
	}, nil
}

// AudioResponseResult is the payload of a generate_audio_response task.
type AudioResponseResult struct {
	AudioPath    string `json:"audio_file"`
	ResponseText string `json:"response_text"`
	Language     string `json:"language"`
}

func (a *SpeechAgent) audioResponse(ctx context.Context, task core.Task) (AudioResponseResult, error) {
	responseText := task.Str("response_text", "")
	language := task.Str("language", "en")

	if responseText == "" {
		return AudioResponseResult{}, fmt.Errorf("no response text provided")
	}

	synthesis, err := a.textToSpeech(ctx, core.Task{
		Type: TaskTextToSpeech,
		Input: map[string]any{
			"text":     responseText,
			"language": language,
			"premium":  task.Bool("premium"),
		},
	})
	if err != nil {
		return AudioResponseResult{}, err
	}

	return AudioResponseResult{
		AudioPath:    synthesis.AudioPath,
		ResponseText: responseText,
		Language:     language,
	}, nil
}

// ConversationEntry is one line of the voice interaction log.
type ConversationEntry struct {
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	Language  string    `json:"language"`
	AudioPath string    `json:"audio_file,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// VoiceInteractionResult is the payload of a voice_interaction_flow task. The
// flow reports stage-level failures inside the payload rather than failing the
// whole task, so callers can see how far the interaction got.
type VoiceInteractionResult struct {
	Success         bool                `json:"success"`
	Stages          map[string]any      `json:"stages"`
	FinalAudio      string              `json:"final_audio,omitempty"`
	ConversationLog []ConversationEntry `json:"conversation_log"`
	Error           string              `json:"error,omitempty"`
	Stage           string              `json:"stage,omitempty"`
}

// voiceInteraction chains speech-to-text, a canned keyword-matched response
// and text-to-speech into one round trip.
func (a *SpeechAgent) voiceInteraction(ctx context.Context, task core.Task) (VoiceInteractionResult, error) {
	flow := VoiceInteractionResult{
		Stages:          map[string]any{},
		ConversationLog: []ConversationEntry{},
	}

	question, err := a.voiceQuestion(ctx, task)
	if err != nil {
		flow.Error = err.Error()
		flow.Stage = "speech_to_text"
		return flow, nil
	}
	flow.Stages["speech_to_text"] = question
	flow.ConversationLog = append(flow.ConversationLog, ConversationEntry{
		Type:      "user_speech",
		Text:      question.QuestionText,
		Language:  question.DetectedLanguage,
		Timestamp: time.Now(),
	})

	responseText := a.responder.Respond(question.QuestionText, question.DetectedLanguage)
	flow.Stages["text_processing"] = map[string]any{
		"response_text": responseText,
		"language":      question.DetectedLanguage,
	}

	premium := false
	if v, ok := task.Context["premium_voice"].(bool); ok {
		premium = v
	}
	response, err := a.audioResponse(ctx, core.Task{
		Type: TaskAudioResponse,
		Input: map[string]any{
			"response_text": responseText,
			"language":      question.DetectedLanguage,
			"premium":       premium,
		},
	})
	if err != nil {
		flow.Error = err.Error()
		flow.Stage = "text_to_speech"
		return flow, nil
	}
	flow.Stages["text_to_speech"] = response

	flow.Success = true
	flow.FinalAudio = response.AudioPath
	flow.ConversationLog = append(flow.ConversationLog, ConversationEntry{
		Type:      "system_response",
		Text:      responseText,
		Language:  question.DetectedLanguage,
		AudioPath: response.AudioPath,
		Timestamp: time.Now(),
	})

	return flow, nil
}
