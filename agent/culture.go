package agent

import "fmt"

// culturalContexts holds regional adaptation hints per language. English is
// the fallback for languages without an entry.
var culturalContexts = map[string]CulturalContext{
	"hi": {
		Greeting:           "नमस्ते",
		Encouragement:      "बहुत अच्छा!",
		LearningStyle:      "व्यावहारिक उदाहरणों के साथ",
		CulturalReferences: []string{"गुरु-शिष्य परंपरा", "श्लोक और कहावतें"},
	},
	"te": {
		Greeting:           "నమస్కారం",
		Encouragement:      "చాలా బాగుంది!",
		LearningStyle:      "ఆచరణాత్మక ఉదాహరణలతో",
		CulturalReferences: []string{"గురు-శిష్య సంప్రదాయం", "సుభాషితాలు"},
	},
	"ta": {
		Greeting:           "வணக்கம்",
		Encouragement:      "மிகவும் நல்லது!",
		LearningStyle:      "நடைமுறை உதாரணங்களுடன்",
		CulturalReferences: []string{"குரு-சிஷ்ய பரம்பரை", "திருக்குறள் வரிகள்"},
	},
	"bn": {
		Greeting:           "নমস্কার",
		Encouragement:      "খুবই ভালো!",
		LearningStyle:      "ব্যবহারিক উদাহরণ সহ",
		CulturalReferences: []string{"গুরু-শিষ্য ঐতিহ্য", "রবীন্দ্রনাথের বাণী"},
	},
	"kn": {
		Greeting:           "ನಮಸ್ಕಾರ",
		Encouragement:      "ತುಂಬಾ ಚೆನ್ನಾಗಿದೆ!",
		LearningStyle:      "ಪ್ರಾಯೋಗಿಕ ಉದಾಹರಣೆಗಳೊಂದಿಗೆ",
		CulturalReferences: []string{"ಗುರು-ಶಿಷ್ಯ ಸಂಪ್ರದಾಯ", "ವಚನಗಳು"},
	},
	"en": {
		Greeting:           "Hello",
		Encouragement:      "Well done!",
		LearningStyle:      "with practical examples",
		CulturalReferences: []string{"mentor-learner tradition", "proverbs and sayings"},
	},
}

// roleAdaptations holds presentation adjustments per user role. Student is the
// fallback for unknown roles.
var roleAdaptations = map[string]RoleContext{
	"student": {
		Tone:       "encouraging and supportive",
		Complexity: "simplified explanations",
		Examples:   "relatable to daily life",
	},
	"researcher": {
		Tone:       "academic and detailed",
		Complexity: "comprehensive analysis",
		Examples:   "research-oriented",
	},
	"professional": {
		Tone:       "practical and actionable",
		Complexity: "industry-focused",
		Examples:   "workplace scenarios",
	},
}

// adaptationsFor combines the cultural and role tables into the advice block
// attached to localized content.
func adaptationsFor(language, role string) CulturalAdaptations {
	cultural, ok := culturalContexts[language]
	if !ok {
		cultural = culturalContexts["en"]
	}
	roleCtx, ok := roleAdaptations[role]
	if !ok {
		roleCtx = roleAdaptations["student"]
	}

	return CulturalAdaptations{
		CulturalContext: cultural,
		RoleContext:     roleCtx,
		Recommendations: []string{
			fmt.Sprintf("Use %s for greetings", cultural.Greeting),
			fmt.Sprintf("Incorporate %s approach", cultural.LearningStyle),
			fmt.Sprintf("Apply %s tone", roleCtx.Tone),
			fmt.Sprintf("Provide %s level content", roleCtx.Complexity),
		},
	}
}
