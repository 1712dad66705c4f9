package lessons

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/sampath-kumaramd/mathlearn-project/internal/problems"
	"github.com/sampath-kumaramd/mathlearn-project/internal/profile"
	"github.com/sampath-kumaramd/mathlearn-project/internal/sinhala"
)

const (
	exampleCount  = 2
	practiceCount = 5
)

// Assembler builds lessons from a problem generator.
type Assembler struct {
	gen    problems.Generator
	tok    *sinhala.Tokenizer
	rng    *rand.Rand
	logger *zap.Logger
}

// NewAssembler creates an Assembler. A nil rng falls back to a
// non-deterministic source; a nil logger falls back to a no-op.
func NewAssembler(gen problems.Generator, rng *rand.Rand, logger *zap.Logger) *Assembler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{
		gen:    gen,
		tok:    sinhala.NewTokenizer(),
		rng:    rng,
		logger: logger,
	}
}

// Build assembles a lesson for the student. When focusTopic is empty the
// head of the learning path is used, falling back to addition for a
// student with no weak areas. The profile is only read, never written.
func (a *Assembler) Build(ctx context.Context, prof *profile.Profile, focusTopic string) (*Lesson, error) {
	topic := a.resolveTopic(prof, focusTopic)

	difficulty := int(prof.Proficiency(string(topic), ""))
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 10 {
		difficulty = 10
	}

	examples, err := a.buildExamples(ctx, topic, difficulty)
	if err != nil {
		return nil, err
	}

	practice, err := a.buildPractice(ctx, topic, difficulty)
	if err != nil {
		return nil, err
	}

	lesson := &Lesson{
		Topic:         string(topic),
		Difficulty:    difficulty,
		LearningStyle: prof.LearningStyle(),
		Introduction:  introductionFor(topic),
		Examples:      examples,
		Problems:      practice,
		Summary:       summaryFor(topic),
	}

	a.logger.Debug("lesson assembled",
		zap.String("student_id", prof.StudentID()),
		zap.String("topic", lesson.Topic),
		zap.Int("difficulty", difficulty),
	)

	return lesson, nil
}

// resolveTopic picks the lesson topic: explicit request first, then the
// head of the learning path, then the addition default. Path entries that
// name a learning objective rather than a drillable topic also fall back
// to the default.
func (a *Assembler) resolveTopic(prof *profile.Profile, focusTopic string) problems.Topic {
	candidate := focusTopic
	if candidate == "" {
		if path := prof.LearningPath(); len(path) > 0 {
			candidate = path[0].Topic
		}
	}

	for _, t := range problems.AllTopics() {
		if string(t) == candidate {
			return t
		}
	}
	return problems.TopicAddition
}

// buildExamples generates worked examples ramping up to the lesson
// difficulty. The first example sits one level below the target.
func (a *Assembler) buildExamples(ctx context.Context, topic problems.Topic, difficulty int) ([]WorkedExample, error) {
	start := difficulty - 1
	if start < 1 {
		start = 1
	}

	examples := make([]WorkedExample, 0, exampleCount)
	for i := range exampleCount {
		d := start + i
		if d > 10 {
			d = 10
		}
		p, err := a.gen.Generate(ctx, topic, d)
		if err != nil {
			return nil, fmt.Errorf("generating example %d: %w", i+1, err)
		}
		examples = append(examples, WorkedExample{
			Problem:       *p,
			SolutionSteps: solutionSteps(a.tok, p),
		})
	}
	return examples, nil
}

// buildPractice generates the practice set, jittering each problem's
// difficulty one level around the target.
func (a *Assembler) buildPractice(ctx context.Context, topic problems.Topic, difficulty int) ([]problems.Problem, error) {
	practice := make([]problems.Problem, 0, practiceCount)
	for i := range practiceCount {
		d := difficulty + a.rng.IntN(3) - 1
		if d < 1 {
			d = 1
		}
		if d > 10 {
			d = 10
		}
		p, err := a.gen.Generate(ctx, topic, d)
		if err != nil {
			return nil, fmt.Errorf("generating practice problem %d: %w", i+1, err)
		}
		practice = append(practice, *p)
	}
	return practice, nil
}
