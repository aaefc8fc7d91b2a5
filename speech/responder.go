package speech

import "strings"

// Responder produces the reply text for a transcribed voice question in the
// voice interaction flow.
type Responder interface {
	Respond(question, language string) string
}

// CannedResponder is the stock Responder used when no richer agent handles
// the transcribed question. Selection is simple keyword matching over a
// per-language response table.
type CannedResponder struct{}

var _ Responder = CannedResponder{}

type cannedResponses struct {
	greeting string
	learning string
	quiz     string
	fallback string
}

var responseTable = map[string]cannedResponses{
	"en": {
		greeting: "Hello! I'm here to help you with your learning.",
		learning: "That's a great question about learning. Let me help you understand this better.",
		quiz:     "I can help you test your knowledge with some questions.",
		fallback: "Thank you for your question. I'm processing your learning request.",
	},
	"hi": {
		greeting: "नमस्ते! मैं आपकी सीखने में मदद करने के लिए यहाँ हूँ।",
		learning: "यह सीखने के बारे में एक बेहतरीन सवाल है। मैं आपको इसे बेहतर समझने में मदद करूंगा।",
		quiz:     "मैं कुछ सवालों के साथ आपके ज्ञान का परीक्षण करने में आपकी मदद कर सकता हूँ।",
		fallback: "आपके सवाल के लिए धन्यवाद। मैं आपकी सीखने की अनुरोध को प्रोसेस कर रहा हूँ।",
	},
	"te": {
		greeting: "నమస్కారం! నేను మీ అభ్యాసంలో సహాయం చేయడానికి ఇక్కడ ఉన్నాను।",
		learning: "ఇది అభ్యాసం గురించి అద్భుతమైన ప్రశ్న. నేను దీన్ని బాగా అర్థం చేసుకోవడంలో మీకు సహాయం చేస్తాను।",
		quiz:     "నేను కొన్ని ప్రశ్నలతో మీ జ్ఞానాన్ని పరీక్షించడంలో మీకు సహాయం చేయగలను।",
		fallback: "మీ ప్రశ్నకు ధన్యవాదాలు. నేను మీ అభ్యాస అభ్యర్థనను ప్రాసెస్ చేస్తున్నాను।",
	},
}

var (
	greetingKeywords = []string{"hello", "hi", "नमस्ते", "నమస్కారం"}
	learningKeywords = []string{"learn", "study", "सीख", "అభ్యాసం"}
	quizKeywords     = []string{"quiz", "test", "प्रश्न", "ప్రశ్న"}
)

// Respond returns a canned response for the question in the given language,
// falling back to English for languages without a table entry.
func (CannedResponder) Respond(question, language string) string {
	responses, ok := responseTable[language]
	if !ok {
		responses = responseTable["en"]
	}

	q := strings.ToLower(question)
	switch {
	case containsAny(q, greetingKeywords):
		return responses.greeting
	case containsAny(q, learningKeywords):
		return responses.learning
	case containsAny(q, quizKeywords):
		return responses.quiz
	default:
		return responses.fallback
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
