package problems

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sampath-kumaramd/mathlearn-project/internal/llm"
	"github.com/sampath-kumaramd/mathlearn-project/internal/sinhala"
)

// LLMGenerator produces problems with an LLM provider instead of the
// built-in templates. It keeps the same cultural contract: rural bias and
// festival seasons are decided here and passed to the model, so output
// distribution matches the template generator.
type LLMGenerator struct {
	provider llm.Provider
	rng      *rand.Rand
	now      func() time.Time

	// MaxTokens and Temperature tune the generation request.
	MaxTokens   int
	Temperature float64
}

// NewLLM creates an LLM-backed generator. A nil rng or now falls back to
// non-deterministic defaults, same as NewCultural.
func NewLLM(provider llm.Provider, rng *rand.Rand, now func() time.Time) *LLMGenerator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if now == nil {
		now = time.Now
	}
	return &LLMGenerator{
		provider:    provider,
		rng:         rng,
		now:         now,
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}

// problemOutput is the raw LLM response before validation.
type problemOutput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Subtype  string `json:"subtype"`
	Context  string `json:"context"`
	Festival string `json:"festival"`
}

// Generate requests one word problem from the provider and validates it.
func (g *LLMGenerator) Generate(ctx context.Context, topic Topic, difficulty int) (*Problem, error) {
	known := false
	for _, t := range AllTopics() {
		if t == topic {
			known = true
			break
		}
	}
	if !known {
		return nil, &ErrUnknownTopic{Topic: topic}
	}

	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 10 {
		difficulty = 10
	}

	contextType := ContextUrban
	if g.rng.Float64() < ruralUrbanRatio {
		contextType = ContextRural
	}
	festivalName := ""
	if f := festivalForMonth(int(g.now().Month())); f != "" && g.rng.Float64() < festivalChance {
		festivalName = f
	}

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(topic, difficulty, contextType, festivalName),
		Schema:      problemSchema,
		MaxTokens:   g.MaxTokens,
		Temperature: g.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM problem generation failed: %w", err)
	}

	var raw problemOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	p := &Problem{
		Type:            topic,
		Subtype:         raw.Subtype,
		Difficulty:      difficulty,
		Question:        raw.Question,
		Answer:          raw.Answer,
		ContextType:     contextType,
		FestivalContext: raw.Festival,
	}

	if err := checkGenerated(p); err != nil {
		return nil, err
	}
	return p, nil
}

// checkGenerated rejects problems a student could not work with: empty
// fields or a question carrying no Sinhala text.
func checkGenerated(p *Problem) error {
	if p.Question == "" || p.Answer == "" {
		return &llm.ErrInvalidResponse{
			Err: fmt.Errorf("generated problem missing question or answer"),
		}
	}
	if !sinhala.ContainsSinhala(p.Question) {
		return &llm.ErrInvalidResponse{
			Err: fmt.Errorf("generated question contains no Sinhala text"),
		}
	}
	return nil
}
