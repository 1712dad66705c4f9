package feedback

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/sampath-kumaramd/mathlearn-project/internal/profile"
)

func reportClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	}
}

func TestBuildReport_Shape(t *testing.T) {
	prof := profile.New("s1", profile.ImpairmentCongenitalBlindness)
	for range 5 {
		if err := prof.RecordAttempt(context.Background(), "addition", "", true, nil); err != nil {
			t.Fatalf("RecordAttempt: %v", err)
		}
	}

	report := BuildReport(prof, "biweekly", reportClock())

	if report.StudentID != "s1" {
		t.Errorf("StudentID = %q", report.StudentID)
	}
	if report.Period != "biweekly" {
		t.Errorf("Period = %q", report.Period)
	}
	if report.ReportDate != "2025-06-01T09:00:00Z" {
		t.Errorf("ReportDate = %q", report.ReportDate)
	}

	// One touched topic at level 2.0; overall average equals it.
	tp, ok := report.TopicProgress["addition"]
	if !ok {
		t.Fatal("missing addition topic progress")
	}
	if math.Abs(tp.CurrentLevel-2.0) > 1e-9 {
		t.Errorf("addition CurrentLevel = %v, want 2.0", tp.CurrentLevel)
	}
	if tp.Improvement != 0 {
		t.Errorf("Improvement = %v, want 0 placeholder", tp.Improvement)
	}
	if math.Abs(report.OverallProgress.CurrentLevel-2.0) > 1e-9 {
		t.Errorf("overall CurrentLevel = %v, want 2.0", report.OverallProgress.CurrentLevel)
	}
}

func TestBuildReport_RecommendationsFollowPath(t *testing.T) {
	prof := profile.New("s1", profile.ImpairmentCongenitalBlindness)
	if err := prof.RecordAttempt(context.Background(), "subtraction", "", false, nil); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	report := BuildReport(prof, "biweekly", reportClock())
	if len(report.Recommendations) != 1 {
		t.Fatalf("len(Recommendations) = %d, want 1", len(report.Recommendations))
	}
	rec := report.Recommendations[0]
	if rec.Topic != "subtraction" {
		t.Errorf("Topic = %q, want subtraction", rec.Topic)
	}
	if rec.Reason != "Current proficiency is 0.9/10" {
		t.Errorf("Reason = %q", rec.Reason)
	}
	if rec.SuggestedExercises != "Basic" {
		t.Errorf("SuggestedExercises = %q, want Basic", rec.SuggestedExercises)
	}
}

func TestBuildReport_NewStudent(t *testing.T) {
	prof := profile.New("fresh", profile.ImpairmentLowVision)
	report := BuildReport(prof, "weekly", reportClock())

	if len(report.TopicProgress) != 0 {
		t.Errorf("TopicProgress = %v, want empty", report.TopicProgress)
	}
	// Untouched students report the default level.
	if report.OverallProgress.CurrentLevel != 1.0 {
		t.Errorf("overall CurrentLevel = %v, want 1.0 default", report.OverallProgress.CurrentLevel)
	}

	// With no topics touched the path falls back to the objective
	// taxonomy, where every objective sits at the default 1, so the
	// recommendations are the first three objectives.
	if len(report.Recommendations) != 3 {
		t.Fatalf("len(Recommendations) = %d, want 3", len(report.Recommendations))
	}
	for _, rec := range report.Recommendations {
		if rec.Reason != "Current proficiency is 1/10" {
			t.Errorf("Reason = %q", rec.Reason)
		}
		if rec.SuggestedExercises != "Basic" {
			t.Errorf("SuggestedExercises = %q, want Basic", rec.SuggestedExercises)
		}
	}
	if report.Recommendations[0].Topic != "algebra_linear_equations" {
		t.Errorf("first recommendation = %q, want algebra_linear_equations", report.Recommendations[0].Topic)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		level float64
		want  string
	}{
		{1, "Basic"},
		{2.9, "Basic"},
		{3, "Intermediate"},
		{5.9, "Intermediate"},
		{6, "Advanced"},
		{10, "Advanced"},
	}
	for _, tt := range tests {
		if got := tierFor(tt.level); got != tt.want {
			t.Errorf("tierFor(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
