// Package feedback grades answers, classifies mistakes, and produces
// Sinhala feedback, emotion-aware pacing, and progress reports.
package feedback

import (
	"math"
	"strconv"
	"strings"
)

// ErrorType labels the kind of mistake behind a wrong answer.
type ErrorType string

const (
	ErrorSignReversal        ErrorType = "sign_reversal"
	ErrorDecimalMisalignment ErrorType = "decimal_misalignment"
	ErrorOffByOne            ErrorType = "off_by_one"
	ErrorCalculation         ErrorType = "calculation_error"
	ErrorFormat              ErrorType = "format_error"
)

// ClassifyInput carries the parsed numeric values of a wrong answer.
type ClassifyInput struct {
	UserValue    float64
	CorrectValue float64
}

// Classifier is a rule-based error classifier.
// Returns a type and confidence (0.0-1.0), or ("", 0) if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) (ErrorType, float64)
}

// DefaultClassifiers returns classifiers in priority order. Sign reversal
// outranks decimal misalignment because a negated answer also trips the
// ratio rule when the magnitudes line up.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&SignReversalClassifier{},
		&DecimalShiftClassifier{},
		&OffByOneClassifier{},
	}
}

// SignReversalClassifier flags answers that are the exact negation of the
// correct value.
type SignReversalClassifier struct{}

func (c *SignReversalClassifier) Name() string { return "sign-reversal" }

func (c *SignReversalClassifier) Classify(input *ClassifyInput) (ErrorType, float64) {
	if input.UserValue == -input.CorrectValue {
		return ErrorSignReversal, 0.9
	}
	return "", 0
}

// DecimalShiftClassifier flags answers that are a power-of-ten multiple of
// the correct value, the signature of a misplaced decimal point. Zero
// values are skipped so the ratio is always defined.
type DecimalShiftClassifier struct{}

func (c *DecimalShiftClassifier) Name() string { return "decimal-shift" }

func (c *DecimalShiftClassifier) Classify(input *ClassifyInput) (ErrorType, float64) {
	if input.UserValue == 0 || input.CorrectValue == 0 {
		return "", 0
	}
	if math.Mod(math.Abs(input.UserValue/input.CorrectValue), 10) == 0 ||
		math.Mod(math.Abs(input.CorrectValue/input.UserValue), 10) == 0 {
		return ErrorDecimalMisalignment, 0.85
	}
	return "", 0
}

// OffByOneClassifier flags answers exactly one away from the correct value.
type OffByOneClassifier struct{}

func (c *OffByOneClassifier) Name() string { return "off-by-one" }

func (c *OffByOneClassifier) Classify(input *ClassifyInput) (ErrorType, float64) {
	if math.Abs(input.UserValue-input.CorrectValue) == 1 {
		return ErrorOffByOne, 0.8
	}
	return "", 0
}

// AnalyzeError classifies a wrong answer against the correct one. Answers
// that fail to parse as numbers are format errors; answers no rule matches
// fall through to a general calculation error.
func AnalyzeError(correctAnswer, userAnswer string) ErrorType {
	userValue, err := strconv.ParseFloat(strings.TrimSpace(userAnswer), 64)
	if err != nil {
		return ErrorFormat
	}
	correctValue, err := strconv.ParseFloat(strings.TrimSpace(correctAnswer), 64)
	if err != nil {
		return ErrorFormat
	}

	input := &ClassifyInput{UserValue: userValue, CorrectValue: correctValue}
	for _, c := range DefaultClassifiers() {
		if et, conf := c.Classify(input); et != "" && conf > 0 {
			return et
		}
	}
	return ErrorCalculation
}
