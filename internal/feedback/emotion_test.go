package feedback

import (
	"testing"

	"github.com/sampath-kumaramd/mathlearn-project/internal/profile"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestDetectEmotion(t *testing.T) {
	tests := []struct {
		name    string
		metrics AudioMetrics
		want    Emotion
	}{
		{"no metrics", AudioMetrics{}, EmotionNeutral},
		{"many pauses", AudioMetrics{ExtendedPauses: intPtr(4)}, EmotionFrustrated},
		{"pauses at threshold", AudioMetrics{ExtendedPauses: intPtr(3)}, EmotionNeutral},
		{"high pitch variation", AudioMetrics{PitchVariations: floatPtr(0.9)}, EmotionExcited},
		{"pitch at threshold", AudioMetrics{PitchVariations: floatPtr(0.8)}, EmotionNeutral},
		{"slow speech", AudioMetrics{SpeakingRate: floatPtr(0.5)}, EmotionConfused},
		{"rate at threshold", AudioMetrics{SpeakingRate: floatPtr(0.7)}, EmotionNeutral},
		{"unmeasured rate is not slow", AudioMetrics{PitchVariations: floatPtr(0.1)}, EmotionNeutral},
		{
			"pauses outrank pitch",
			AudioMetrics{ExtendedPauses: intPtr(5), PitchVariations: floatPtr(0.9)},
			EmotionFrustrated,
		},
		{
			"pitch outranks rate",
			AudioMetrics{PitchVariations: floatPtr(0.9), SpeakingRate: floatPtr(0.5)},
			EmotionExcited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectEmotion(tt.metrics); got != tt.want {
				t.Errorf("DetectEmotion = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPacingFor_Emotions(t *testing.T) {
	p := PacingFor(EmotionConfused, profile.ImpairmentCongenitalBlindness)
	if p.ExplanationDepth != "detailed" || p.SpeechRate != 0.8 || !p.AdditionalExamples {
		t.Errorf("confused pacing = %+v", p)
	}

	p = PacingFor(EmotionExcited, profile.ImpairmentCongenitalBlindness)
	if p.ExplanationDepth != "advanced" || p.SpeechRate != 1.1 || p.AdditionalExamples {
		t.Errorf("excited pacing = %+v", p)
	}

	p = PacingFor(EmotionFrustrated, profile.ImpairmentCongenitalBlindness)
	if p.ExplanationDepth != "simplified" || p.SpeechRate != 0.9 {
		t.Errorf("frustrated pacing = %+v", p)
	}

	p = PacingFor(Emotion("bored"), profile.ImpairmentCongenitalBlindness)
	if p.ExplanationDepth != "normal" || p.SpeechRate != 1.0 {
		t.Errorf("unknown emotion should get neutral pacing, got %+v", p)
	}
}

func TestPacingFor_ExplanationStyleByImpairment(t *testing.T) {
	tests := []struct {
		impairment profile.Impairment
		want       string
	}{
		{profile.ImpairmentCongenitalBlindness, "audio_descriptive"},
		{profile.ImpairmentAcquiredBlindness, "spatial_reference"},
		{profile.ImpairmentLowVision, "high_contrast_audio"},
	}
	for _, tt := range tests {
		p := PacingFor(EmotionNeutral, tt.impairment)
		if p.ExplanationStyle != tt.want {
			t.Errorf("impairment %d: ExplanationStyle = %q, want %q", tt.impairment, p.ExplanationStyle, tt.want)
		}
	}
}
