package profile

// LearningStyle describes how lessons and feedback should be delivered for
// a student. It is a pure function of the impairment category.
type LearningStyle struct {
	InteractionMode  string `json:"interaction_mode"`
	FeedbackStyle    string `json:"feedback_style"`
	Pacing           string `json:"pacing"`
	ExplanationDepth string `json:"explanation_depth"`
}

// LearningStyle returns the delivery defaults for the student's impairment
// category. Unrecognized categories get the congenital-blindness defaults.
func (p *Profile) LearningStyle() LearningStyle {
	return StyleFor(p.impairment)
}

// StyleFor maps an impairment category to its learning-style defaults.
func StyleFor(impairment Impairment) LearningStyle {
	switch impairment {
	case ImpairmentAcquiredBlindness:
		return LearningStyle{
			InteractionMode:  "audio_with_spatial_references",
			FeedbackStyle:    "comparative",
			Pacing:           "adjustable",
			ExplanationDepth: "graduated",
		}
	case ImpairmentLowVision:
		return LearningStyle{
			InteractionMode:  "audio_with_high_contrast",
			FeedbackStyle:    "highlight_based",
			Pacing:           "user_controlled",
			ExplanationDepth: "concise",
		}
	default:
		return LearningStyle{
			InteractionMode:  "audio_centric",
			FeedbackStyle:    "descriptive",
			Pacing:           "moderate",
			ExplanationDepth: "detailed",
		}
	}
}
