// Package profile owns the student mastery model: per-topic and
// per-objective proficiency scores, the graded-attempt history, the
// learning-path selector, and the per-student registry.
package profile

import (
	"context"
	"sort"
	"time"
)

const (
	// MinLevel and MaxLevel bound every proficiency score.
	MinLevel = 1.0
	MaxLevel = 10.0

	// DefaultLevel is the implicit score of any untouched topic or objective.
	DefaultLevel = 1.0

	// correctDelta and incorrectDelta are deliberately asymmetric: mastery
	// builds slowly over repeated correct answers and a single slip must not
	// collapse a topic's tracked level.
	correctDelta   = 0.2
	incorrectDelta = 0.1
)

// Impairment identifies the student's visual impairment category. It is
// fixed at profile creation and drives learning-style defaults.
type Impairment int

const (
	ImpairmentCongenitalBlindness Impairment = 1
	ImpairmentAcquiredBlindness   Impairment = 2
	ImpairmentLowVision           Impairment = 3
)

// Attempt is one graded answer in the performance history. The history is
// append-only; records are never mutated.
type Attempt struct {
	Timestamp    string   `json:"timestamp"`
	Topic        string   `json:"topic"`
	Subtopic     string   `json:"subtopic"`
	Correct      bool     `json:"is_correct"`
	ResponseTime *float64 `json:"response_time"`
}

// Record is the persisted, JSON-compatible shape of a profile.
type Record struct {
	StudentID          string                        `json:"student_id"`
	ImpairmentType     int                           `json:"impairment_type"`
	TopicProgress      map[string]float64            `json:"topic_progress"`
	PerformanceHistory []Attempt                     `json:"performance_history"`
	LearningObjectives map[string]map[string]float64 `json:"learning_objectives"`
	LastUpdated        string                        `json:"last_updated"`
}

// Saver persists a profile record. Implementations must be safe to call
// from the goroutine holding the profile's registry lock.
type Saver interface {
	Save(ctx context.Context, rec *Record) error
}

// Profile is the in-memory mastery state for one student. It is not safe
// for concurrent use; the Registry serializes access per student id.
type Profile struct {
	studentID  string
	impairment Impairment

	topicProgress map[string]float64
	topicOrder    []string // insertion order, for deterministic path selection
	objectives    map[string]map[string]float64
	history       []Attempt

	saver Saver
	now   func() time.Time
}

// New creates a fresh profile with all scores at the default level.
func New(studentID string, impairment Impairment) *Profile {
	if impairment < ImpairmentCongenitalBlindness || impairment > ImpairmentLowVision {
		impairment = ImpairmentCongenitalBlindness
	}
	return &Profile{
		studentID:     studentID,
		impairment:    impairment,
		topicProgress: make(map[string]float64),
		objectives:    newObjectiveScores(),
		now:           time.Now,
	}
}

// FromRecord rebuilds a profile from a stored record. Stored values overlay
// the defaults: only keys present in the record are applied, and objective
// scores outside the fixed taxonomy are dropped.
func FromRecord(rec *Record) *Profile {
	impairment := Impairment(rec.ImpairmentType)
	p := New(rec.StudentID, impairment)

	// Map iteration order is random; load topics in sorted order so the
	// first-touch order (and thus path tie-breaking) is stable across loads.
	for _, topic := range sortedKeys(rec.TopicProgress) {
		p.setTopic(topic, clampLevel(rec.TopicProgress[topic]))
	}

	for category, stored := range rec.LearningObjectives {
		existing, ok := p.objectives[category]
		if !ok {
			continue
		}
		for objective, level := range stored {
			if _, ok := existing[objective]; ok {
				existing[objective] = clampLevel(level)
			}
		}
	}

	p.history = append(p.history, rec.PerformanceHistory...)
	return p
}

// StudentID returns the stable student identifier.
func (p *Profile) StudentID() string { return p.studentID }

// Impairment returns the student's impairment category.
func (p *Profile) Impairment() Impairment { return p.impairment }

// History returns the graded-attempt history, oldest first. The returned
// slice must not be modified.
func (p *Profile) History() []Attempt { return p.history }

// Topics returns the touched topics in first-touch order.
func (p *Profile) Topics() []string {
	out := make([]string, len(p.topicOrder))
	copy(out, p.topicOrder)
	return out
}

// SetSaver attaches the write-through persistence hook. Used by the
// Registry; tests may leave it unset.
func (p *Profile) SetSaver(s Saver) { p.saver = s }

// Proficiency returns the student's proficiency level in [1,10].
//
//   - both topic and subtopic set: the learning-objective score, or the
//     default level if the pair is not in the fixed taxonomy;
//   - topic only: that topic's score, default level if untouched;
//   - neither: the average across all touched topics, default level if none.
func (p *Profile) Proficiency(topic, subtopic string) float64 {
	if topic != "" && subtopic != "" {
		if objs, ok := p.objectives[topic]; ok {
			if level, ok := objs[subtopic]; ok {
				return level
			}
		}
		return DefaultLevel
	}

	if topic != "" {
		if level, ok := p.topicProgress[topic]; ok {
			return level
		}
		return DefaultLevel
	}

	if len(p.topicProgress) == 0 {
		return DefaultLevel
	}
	var sum float64
	for _, level := range p.topicProgress {
		sum += level
	}
	return sum / float64(len(p.topicProgress))
}

// TopicLevel returns the score for one topic (default level if untouched).
func (p *Profile) TopicLevel(topic string) float64 {
	return p.Proficiency(topic, "")
}

// RecordAttempt appends a history record and folds the outcome into the
// topic score (+0.2 capped at 10 when correct, -0.1 floored at 1 when
// incorrect). When subtopic names a real objective under topic in the fixed
// taxonomy, the same rule is applied to the objective score independently.
//
// The in-memory update always happens; the returned error only reports a
// persistence failure and should be treated as a warning by callers.
func (p *Profile) RecordAttempt(ctx context.Context, topic, subtopic string, correct bool, responseTime *float64) error {
	p.history = append(p.history, Attempt{
		Timestamp:    p.now().Format(time.RFC3339),
		Topic:        topic,
		Subtopic:     subtopic,
		Correct:      correct,
		ResponseTime: responseTime,
	})

	p.setTopic(topic, adjust(p.TopicLevel(topic), correct))

	if objs, ok := p.objectives[topic]; ok {
		if level, ok := objs[subtopic]; ok {
			objs[subtopic] = adjust(level, correct)
		}
	}

	if p.saver == nil {
		return nil
	}
	return p.saver.Save(ctx, p.Snapshot())
}

// Snapshot exports the current state as a persistable record.
func (p *Profile) Snapshot() *Record {
	topics := make(map[string]float64, len(p.topicProgress))
	for topic, level := range p.topicProgress {
		topics[topic] = level
	}
	objectives := make(map[string]map[string]float64, len(p.objectives))
	for category, objs := range p.objectives {
		m := make(map[string]float64, len(objs))
		for objective, level := range objs {
			m[objective] = level
		}
		objectives[category] = m
	}
	history := make([]Attempt, len(p.history))
	copy(history, p.history)

	return &Record{
		StudentID:          p.studentID,
		ImpairmentType:     int(p.impairment),
		TopicProgress:      topics,
		PerformanceHistory: history,
		LearningObjectives: objectives,
		LastUpdated:        p.now().Format(time.RFC3339),
	}
}

func (p *Profile) setTopic(topic string, level float64) {
	if _, ok := p.topicProgress[topic]; !ok {
		p.topicOrder = append(p.topicOrder, topic)
	}
	p.topicProgress[topic] = level
}

func adjust(level float64, correct bool) float64 {
	if correct {
		return clampLevel(level + correctDelta)
	}
	return clampLevel(level - incorrectDelta)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func clampLevel(level float64) float64 {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
