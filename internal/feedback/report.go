package feedback

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sampath-kumaramd/mathlearn-project/internal/profile"
)

// exerciseTiers maps proficiency bands to suggested exercise tiers.
// Levels 1-2 are Basic, 3-5 Intermediate, 6+ Advanced.
var exerciseTiers = []string{"Basic", "Intermediate", "Advanced"}

// OverallProgress summarizes the student across all topics.
type OverallProgress struct {
	CurrentLevel float64 `json:"current_level"`

	// Improvement is reserved for period-over-period comparison once
	// enough report history accumulates. Always 0 for now.
	Improvement float64 `json:"improvement"`
}

// TopicProgress summarizes one topic.
type TopicProgress struct {
	CurrentLevel float64 `json:"current_level"`
	Improvement  float64 `json:"improvement"`
}

// Recommendation suggests a topic to work on next.
type Recommendation struct {
	Topic              string `json:"topic"`
	Reason             string `json:"reason"`
	SuggestedExercises string `json:"suggested_exercises"`
}

// Report is a periodic progress report for one student.
type Report struct {
	StudentID       string                   `json:"student_id"`
	ReportDate      string                   `json:"report_date"`
	Period          string                   `json:"period"`
	OverallProgress OverallProgress          `json:"overall_progress"`
	TopicProgress   map[string]TopicProgress `json:"topic_progress"`
	Recommendations []Recommendation         `json:"recommendations"`
}

// BuildReport assembles a progress report from the profile's current
// state. The recommendations mirror the learning path, so a student with
// no weak areas gets an empty list.
func BuildReport(prof *profile.Profile, period string, now func() time.Time) *Report {
	if now == nil {
		now = time.Now
	}

	report := &Report{
		StudentID:  prof.StudentID(),
		ReportDate: now().Format(time.RFC3339),
		Period:     period,
		OverallProgress: OverallProgress{
			CurrentLevel: prof.Proficiency("", ""),
		},
		TopicProgress:   make(map[string]TopicProgress),
		Recommendations: []Recommendation{},
	}

	for _, topic := range prof.Topics() {
		report.TopicProgress[topic] = TopicProgress{
			CurrentLevel: prof.TopicLevel(topic),
		}
	}

	for _, entry := range prof.LearningPath() {
		report.Recommendations = append(report.Recommendations, Recommendation{
			Topic:              entry.Topic,
			Reason:             fmt.Sprintf("Current proficiency is %s/10", strconv.FormatFloat(entry.CurrentLevel, 'f', -1, 64)),
			SuggestedExercises: tierFor(entry.CurrentLevel),
		})
	}

	return report
}

// tierFor maps a proficiency level to an exercise tier.
func tierFor(level float64) string {
	idx := int(level / 3)
	if idx > 2 {
		idx = 2
	}
	return exerciseTiers[idx]
}
