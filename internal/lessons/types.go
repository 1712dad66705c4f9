// Package lessons assembles personalized lessons from the mastery model
// and the problem generator. A lesson is read-only with respect to the
// profile: assembling one never records attempts or changes levels.
package lessons

import (
	"github.com/sampath-kumaramd/mathlearn-project/internal/problems"
	"github.com/sampath-kumaramd/mathlearn-project/internal/profile"
)

// WorkedExample is a problem paired with its step-by-step solution.
type WorkedExample struct {
	problems.Problem

	// SolutionSteps walks through the solution in Sinhala, one step per
	// entry. Empty when no step template exists for the problem type.
	SolutionSteps []string `json:"solution_steps,omitempty"`
}

// Lesson is a fully assembled study unit for one topic.
type Lesson struct {
	// Topic is the focus topic the lesson drills.
	Topic string `json:"topic"`

	// Difficulty is the 1-10 level the lesson was assembled at, derived
	// from the student's current proficiency.
	Difficulty int `json:"difficulty"`

	// LearningStyle carries the presentation preferences for the
	// student's impairment type.
	LearningStyle profile.LearningStyle `json:"learning_style"`

	// Introduction is a Sinhala primer on the topic.
	Introduction string `json:"introduction"`

	// Examples are worked examples building up to the lesson difficulty.
	Examples []WorkedExample `json:"examples"`

	// Problems are the practice problems, difficulty jittered around the
	// lesson level.
	Problems []problems.Problem `json:"problems"`

	// Summary recaps the topic in Sinhala.
	Summary string `json:"summary"`
}
