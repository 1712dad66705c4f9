package problems

import "github.com/sampath-kumaramd/mathlearn-project/internal/llm"

// problemSchema defines the JSON schema for LLM word-problem responses.
var problemSchema = &llm.Schema{
	Name:        "sinhala-word-problem",
	Description: "A single Sinhala math word problem with its answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The word problem text in Sinhala script, self-contained and age-appropriate",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer as a plain string. Integers without separators; fractions as a/b in lowest terms.",
			},
			"subtype": map[string]any{
				"type":        "string",
				"description": "A short label for the problem variant, e.g. word_problem",
			},
			"context": map[string]any{
				"type":        "string",
				"enum":        []any{"rural", "urban"},
				"description": "The setting the problem is placed in",
			},
			"festival": map[string]any{
				"type":        "string",
				"description": "The Sri Lankan festival the problem references, or empty if none",
			},
		},
		"required":             []any{"question", "answer", "subtype", "context"},
		"additionalProperties": false,
	},
}
