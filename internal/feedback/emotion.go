package feedback

import "github.com/sampath-kumaramd/mathlearn-project/internal/profile"

// Emotion is the inferred emotional state of the student.
type Emotion string

const (
	EmotionNeutral    Emotion = "neutral"
	EmotionConfused   Emotion = "confused"
	EmotionFrustrated Emotion = "frustrated"
	EmotionExcited    Emotion = "excited"
)

// AudioMetrics are speech-pattern measurements supplied by the capture
// layer. Nil fields mean the metric was not measured, which is distinct
// from a measured zero.
type AudioMetrics struct {
	ExtendedPauses  *int     `json:"extended_pauses,omitempty"`
	PitchVariations *float64 `json:"pitch_variations,omitempty"`
	SpeakingRate    *float64 `json:"speaking_rate,omitempty"`
}

// DetectEmotion infers emotion from audio metrics. Rules run in fixed
// order: frustration outranks excitement outranks confusion.
func DetectEmotion(m AudioMetrics) Emotion {
	if m.ExtendedPauses != nil && *m.ExtendedPauses > 3 {
		return EmotionFrustrated
	}
	if m.PitchVariations != nil && *m.PitchVariations > 0.8 {
		return EmotionExcited
	}
	if m.SpeakingRate != nil && *m.SpeakingRate < 0.7 {
		return EmotionConfused
	}
	return EmotionNeutral
}

// Pacing is the delivery adjustment for a detected emotion.
type Pacing struct {
	ExplanationDepth   string  `json:"explanation_depth"`
	SpeechRate         float64 `json:"speech_rate"`
	AdditionalExamples bool    `json:"additional_examples"`

	// ExplanationStyle is derived from the impairment category, not the
	// emotion.
	ExplanationStyle string `json:"explanation_style"`
}

var pacingByEmotion = map[Emotion]Pacing{
	EmotionNeutral:    {ExplanationDepth: "normal", SpeechRate: 1.0, AdditionalExamples: false},
	EmotionConfused:   {ExplanationDepth: "detailed", SpeechRate: 0.8, AdditionalExamples: true},
	EmotionFrustrated: {ExplanationDepth: "simplified", SpeechRate: 0.9, AdditionalExamples: true},
	EmotionExcited:    {ExplanationDepth: "advanced", SpeechRate: 1.1, AdditionalExamples: false},
}

// PacingFor returns the pacing adjustment for an emotion and impairment.
// Unknown emotions get the neutral pacing.
func PacingFor(emotion Emotion, impairment profile.Impairment) Pacing {
	p, ok := pacingByEmotion[emotion]
	if !ok {
		p = pacingByEmotion[EmotionNeutral]
	}

	switch impairment {
	case profile.ImpairmentAcquiredBlindness:
		p.ExplanationStyle = "spatial_reference"
	case profile.ImpairmentLowVision:
		p.ExplanationStyle = "high_contrast_audio"
	default:
		p.ExplanationStyle = "audio_descriptive"
	}

	return p
}
