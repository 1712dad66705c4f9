package feedback

import (
	"context"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/sampath-kumaramd/mathlearn-project/internal/problems"
	"github.com/sampath-kumaramd/mathlearn-project/internal/profile"
)

// encouragementThreshold is the proficiency below which extra
// encouragement is appended to incorrect feedback.
const encouragementThreshold = 3.0

// Feedback is the graded result of one answer.
type Feedback struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`

	// FeedbackText is the Sinhala message read to the student.
	FeedbackText string `json:"feedback_text"`

	// ErrorType labels the classified mistake. Empty for correct answers.
	ErrorType ErrorType `json:"error_type,omitempty"`

	// Explanation expands on the error when the type has a curated
	// explanation. Empty otherwise.
	Explanation string `json:"explanation,omitempty"`

	// NextSteps suggests what to do after a wrong answer.
	NextSteps []string `json:"next_steps"`
}

// Engine grades answers and produces feedback.
type Engine struct {
	rng    *rand.Rand
	logger *zap.Logger
}

// NewEngine creates an Engine. A nil rng falls back to a non-deterministic
// source; a nil logger falls back to a no-op.
func NewEngine(rng *rand.Rand, logger *zap.Logger) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{rng: rng, logger: logger}
}

// Grade checks an answer, builds feedback, then records the attempt on
// the profile. Correctness is an exact string match after trimming
// whitespace, so the canonical answer format is authoritative. The
// encouragement check reads the proficiency as it stood before this
// attempt. A nil profile grades and classifies only: nothing is recorded
// and no encouragement is added. A persistence failure downgrades to a
// warning because the graded feedback must still reach the student.
func (e *Engine) Grade(ctx context.Context, prof *profile.Profile, problem *problems.Problem, userAnswer string, responseTime *float64) *Feedback {
	isCorrect := strings.TrimSpace(userAnswer) == strings.TrimSpace(problem.Answer)

	fb := &Feedback{
		IsCorrect:     isCorrect,
		CorrectAnswer: problem.Answer,
	}

	if isCorrect {
		fb.FeedbackText = e.pick(correctTemplates)
		e.recordAttempt(ctx, prof, problem, isCorrect, responseTime)
		return fb
	}

	fb.ErrorType = AnalyzeError(problem.Answer, userAnswer)
	fb.Explanation = errorExplanations[fb.ErrorType]

	text := strings.ReplaceAll(e.pick(incorrectTemplates), "{answer}", problem.Answer)
	if prof != nil && prof.Proficiency(string(problem.Type), "") < encouragementThreshold {
		text += " " + e.pick(encouragementTemplates)
	}
	fb.FeedbackText = text

	fb.NextSteps = make([]string, len(nextSteps))
	copy(fb.NextSteps, nextSteps)

	e.recordAttempt(ctx, prof, problem, isCorrect, responseTime)
	return fb
}

func (e *Engine) recordAttempt(ctx context.Context, prof *profile.Profile, problem *problems.Problem, isCorrect bool, responseTime *float64) {
	if prof == nil {
		return
	}
	if err := prof.RecordAttempt(ctx, string(problem.Type), problem.Subtype, isCorrect, responseTime); err != nil {
		e.logger.Warn("attempt recorded but not persisted",
			zap.String("student_id", prof.StudentID()),
			zap.Error(err),
		)
	}
}

// SpeechText flattens feedback into the single utterance read aloud.
func (f *Feedback) SpeechText() string {
	if !f.IsCorrect && f.Explanation != "" {
		return f.FeedbackText + " " + f.Explanation
	}
	return f.FeedbackText
}

func (e *Engine) pick(templates []string) string {
	return templates[e.rng.IntN(len(templates))]
}
