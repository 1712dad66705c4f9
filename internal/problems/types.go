// Package problems generates culturally contextualized Sinhala math
// problems. The default generator is template-based; an LLM-backed
// generator is available behind the same interface.
package problems

import (
	"context"
	"fmt"
)

// Topic identifies a problem type.
type Topic string

const (
	TopicAddition       Topic = "addition"
	TopicSubtraction    Topic = "subtraction"
	TopicMultiplication Topic = "multiplication"
	TopicDivision       Topic = "division"
	TopicProbability    Topic = "probability"
)

// AllTopics lists the supported topics in curriculum order.
func AllTopics() []Topic {
	return []Topic{TopicAddition, TopicSubtraction, TopicMultiplication, TopicDivision, TopicProbability}
}

// ContextType tags a problem with its cultural flavor.
type ContextType string

const (
	ContextRural ContextType = "rural"
	ContextUrban ContextType = "urban"
)

// Problem is a generated word problem. Problems are ephemeral: they are
// consumed by the lesson assembler or the grader and never stored.
type Problem struct {
	// Type is the topic this problem exercises.
	Type Topic `json:"type"`

	// Subtype names the learning objective the problem targets, when one
	// applies. Empty for plain arithmetic drills.
	Subtype string `json:"subtype,omitempty"`

	// Difficulty is the 1-10 difficulty the problem was generated at.
	Difficulty int `json:"difficulty"`

	// Question is the Sinhala problem text.
	Question string `json:"question"`

	// Answer is the canonical correct answer as a string, e.g. "42" or "3/10".
	Answer string `json:"answer"`

	// ContextType is the rural/urban flavor of the question.
	ContextType ContextType `json:"context_type"`

	// FestivalContext is the festival name woven into the question, when
	// the generation month falls in a festival season. Empty otherwise.
	FestivalContext string `json:"festival_context,omitempty"`

	// TotalItems and TargetItems are set for probability problems only.
	TotalItems  int `json:"total_items,omitempty"`
	TargetItems int `json:"target_items,omitempty"`
}

// ErrUnknownTopic reports a topic outside the supported set. It is a
// validation error: callers surface it as a structured payload, never a
// crash.
type ErrUnknownTopic struct {
	Topic Topic
}

func (e *ErrUnknownTopic) Error() string {
	return fmt.Sprintf("unknown problem topic: %q", e.Topic)
}

// Generator produces a single problem for a topic at a difficulty in [1,10].
type Generator interface {
	Generate(ctx context.Context, topic Topic, difficulty int) (*Problem, error)
}
