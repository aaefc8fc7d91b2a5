package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/agentcore/core"
	"github.com/vidyasetu/agentcore/speech"
)

type fakeTranscriber struct {
	transcription speech.Transcription
	err           error
}

func (f fakeTranscriber) Transcribe(context.Context, string, string) (speech.Transcription, error) {
	return f.transcription, f.err
}

type fakeSynthesizer struct {
	synthesis speech.Synthesis
	err       error
}

func (f fakeSynthesizer) Synthesize(_ context.Context, _, language string, _ bool) (speech.Synthesis, error) {
	if f.err != nil {
		return speech.Synthesis{}, f.err
	}
	out := f.synthesis
	out.Language = language
	return out, nil
}

func newTestSpeechAgent(stt speech.Transcriber, tts speech.Synthesizer) *SpeechAgent {
	return NewSpeechAgent(func(o *SpeechAgentOptions) {
		o.Transcriber = stt
		o.Synthesizer = tts
	})
}

func TestSpeechAgent_Identity(t *testing.T) {
	a := NewSpeechAgent()
	assert.Equal(t, SpeechAgentName, a.Name())
	assert.Contains(t, a.Capabilities(), core.CapabilitySpeech)
}

func TestSpeechAgent_SpeechToText(t *testing.T) {
	a := newTestSpeechAgent(fakeTranscriber{
		transcription: speech.Transcription{Text: "hello there", Language: "en", Confidence: 1.0},
	}, nil)

	out, err := a.Process(context.Background(), core.Task{
		Type:  TaskSpeechToText,
		Input: map[string]any{"audio_file_path": "/tmp/q.mp3"},
	})
	require.NoError(t, err)

	transcription := out.(speech.Transcription)
	assert.Equal(t, "hello there", transcription.Text)
	assert.Equal(t, "en", transcription.Language)
}

func TestSpeechAgent_SpeechToText_NoAudio(t *testing.T) {
	a := newTestSpeechAgent(fakeTranscriber{}, nil)

	_, err := a.Process(context.Background(), core.Task{Type: TaskSpeechToText})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no audio file provided")
}

func TestSpeechAgent_SpeechToText_NoProvider(t *testing.T) {
	a := NewSpeechAgent()

	_, err := a.Process(context.Background(), core.Task{
		Type:  TaskSpeechToText,
		Input: map[string]any{"audio_file_path": "/tmp/q.mp3"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestSpeechAgent_TextToSpeech(t *testing.T) {
	a := newTestSpeechAgent(nil, fakeSynthesizer{
		synthesis: speech.Synthesis{AudioPath: "/tmp/out.mp3", Method: "openai_tts"},
	})

	out, err := a.Process(context.Background(), core.Task{
		Type:  TaskTextToSpeech,
		Input: map[string]any{"text": "well done", "language": "hi"},
	})
	require.NoError(t, err)

	synthesis := out.(speech.Synthesis)
	assert.Equal(t, "/tmp/out.mp3", synthesis.AudioPath)
	assert.Equal(t, "hi", synthesis.Language)
}

func TestSpeechAgent_TextToSpeech_NoText(t *testing.T) {
	a := newTestSpeechAgent(nil, fakeSynthesizer{})

	_, err := a.Process(context.Background(), core.Task{Type: TaskTextToSpeech})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text provided")
}

func TestSpeechAgent_VoiceQuestion(t *testing.T) {
	a := newTestSpeechAgent(fakeTranscriber{
		transcription: speech.Transcription{Text: "what is gravity", Language: "en", Confidence: 1.0},
	}, nil)

	out, err := a.Process(context.Background(), core.Task{
		Type:    TaskVoiceQuestion,
		Input:   map[string]any{"audio_file_path": "/tmp/q.mp3", "user_language": "en"},
		Context: map[string]any{"session": "s-1"},
	})
	require.NoError(t, err)

	question := out.(VoiceQuestionResult)
	assert.Equal(t, "what is gravity", question.QuestionText)
	assert.Equal(t, "en", question.DetectedLanguage)
	assert.True(t, question.ReadyForProcessing)
	assert.Equal(t, "s-1", question.Context["session"])
}

func TestSpeechAgent_VoiceQuestion_RecognitionFails(t *testing.T) {
	a := newTestSpeechAgent(fakeTranscriber{err: errors.New("provider down")}, nil)

	_, err := a.Process(context.Background(), core.Task{
		Type:  TaskVoiceQuestion,
		Input: map[string]any{"audio_file_path": "/tmp/q.mp3"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "speech recognition failed")
}

func TestSpeechAgent_VoiceInteraction_FullFlow(t *testing.T) {
	a := newTestSpeechAgent(
		fakeTranscriber{transcription: speech.Transcription{Text: "hello tutor", Language: "en", Confidence: 1.0}},
		fakeSynthesizer{synthesis: speech.Synthesis{AudioPath: "/tmp/reply.mp3", Method: "openai_tts"}},
	)

	out, err := a.Process(context.Background(), core.Task{
		Type:  TaskVoiceInteraction,
		Input: map[string]any{"audio_file_path": "/tmp/q.mp3", "user_language": "en"},
	})
	require.NoError(t, err)

	flow := out.(VoiceInteractionResult)
	assert.True(t, flow.Success)
	assert.Equal(t, "/tmp/reply.mp3", flow.FinalAudio)
	require.Len(t, flow.ConversationLog, 2)
	assert.Equal(t, "user_speech", flow.ConversationLog[0].Type)
	assert.Equal(t, "system_response", flow.ConversationLog[1].Type)
	// "hello" triggers the greeting response.
	assert.Contains(t, flow.ConversationLog[1].Text, "help you with your learning")
	assert.Contains(t, flow.Stages, "speech_to_text")
	assert.Contains(t, flow.Stages, "text_processing")
	assert.Contains(t, flow.Stages, "text_to_speech")
}

type fixedResponder struct {
	reply string
}

func (f fixedResponder) Respond(string, string) string { return f.reply }

func TestSpeechAgent_VoiceInteraction_CustomResponder(t *testing.T) {
	a := NewSpeechAgent(func(o *SpeechAgentOptions) {
		o.Transcriber = fakeTranscriber{
			transcription: speech.Transcription{Text: "hello tutor", Language: "en", Confidence: 1.0},
		}
		o.Synthesizer = fakeSynthesizer{
			synthesis: speech.Synthesis{AudioPath: "/tmp/reply.mp3", Method: "openai_tts"},
		}
		o.Responder = fixedResponder{reply: "custom reply"}
	})

	out, err := a.Process(context.Background(), core.Task{
		Type:  TaskVoiceInteraction,
		Input: map[string]any{"audio_file_path": "/tmp/q.mp3", "user_language": "en"},
	})
	require.NoError(t, err)

	flow := out.(VoiceInteractionResult)
	require.True(t, flow.Success)
	require.Len(t, flow.ConversationLog, 2)
	assert.Equal(t, "custom reply", flow.ConversationLog[1].Text)
}

func TestSpeechAgent_VoiceInteraction_STTStageFailure(t *testing.T) {
	a := newTestSpeechAgent(fakeTranscriber{err: errors.New("mic broken")}, fakeSynthesizer{})

	out, err := a.Process(context.Background(), core.Task{
		Type:  TaskVoiceInteraction,
		Input: map[string]any{"audio_file_path": "/tmp/q.mp3"},
	})
	// Stage failures are reported inside the payload, not as task errors.
	require.NoError(t, err)

	flow := out.(VoiceInteractionResult)
	assert.False(t, flow.Success)
	assert.Equal(t, "speech_to_text", flow.Stage)
	assert.Contains(t, flow.Error, "mic broken")
	assert.Empty(t, flow.FinalAudio)
}

func TestSpeechAgent_VoiceInteraction_TTSStageFailure(t *testing.T) {
	a := newTestSpeechAgent(
		fakeTranscriber{transcription: speech.Transcription{Text: "quiz me", Language: "en"}},
		fakeSynthesizer{err: errors.New("tts down")},
	)

	out, err := a.Process(context.Background(), core.Task{
		Type:  TaskVoiceInteraction,
		Input: map[string]any{"audio_file_path": "/tmp/q.mp3"},
	})
	require.NoError(t, err)

	flow := out.(VoiceInteractionResult)
	assert.False(t, flow.Success)
	assert.Equal(t, "text_to_speech", flow.Stage)
	require.Len(t, flow.ConversationLog, 1)
}

func TestSpeechAgent_VoiceCapabilities(t *testing.T) {
	full := newTestSpeechAgent(fakeTranscriber{}, fakeSynthesizer{})
	caps := full.VoiceCapabilities()
	assert.True(t, caps.SpeechToText)
	assert.True(t, caps.TextToSpeechBasic)
	assert.Contains(t, caps.SupportedLanguages, "hi")

	bare := NewSpeechAgent()
	caps = bare.VoiceCapabilities()
	assert.False(t, caps.SpeechToText)
	assert.False(t, caps.TextToSpeechBasic)
}
