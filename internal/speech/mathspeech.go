package speech

import (
	"regexp"
	"strings"
)

// componentPattern extracts numbers, operators, and single-letter
// variables from an equation string.
var componentPattern = regexp.MustCompile(`(\d+\.?\d*|[+\-*/=^()]|[xyzabc])`)

// Processor rewrites mathematical notation as spoken text.
type Processor struct {
	sinhalaTerms map[string]string
	englishTerms map[string]string
}

// NewProcessor creates a Processor with the Sinhala math vocabulary.
func NewProcessor() *Processor {
	return &Processor{
		sinhalaTerms: map[string]string{
			"+": "එකතු කිරීම",
			"-": "අඩු කිරීම",
			"*": "ගුණ කිරීම",
			"/": "බෙදීම",
			"=": "සමානයි",
			"^": "බලය",
		},
		englishTerms: map[string]string{
			"+": "plus",
			"-": "minus",
			"*": "times",
			"/": "divided by",
			"=": "equals",
			"^": "to the power of",
		},
	}
}

// ParseEquation splits an equation into its spoken components: numbers,
// operators, and variables. Anything else is dropped.
func (p *Processor) ParseEquation(equation string) []string {
	return componentPattern.FindAllString(equation, -1)
}

// EquationToSpeech converts an equation to a speech-friendly sentence.
// Operators become words in the requested language; numbers and variables
// pass through unchanged.
func (p *Processor) EquationToSpeech(equation, language string) string {
	terms := p.sinhalaTerms
	if language == "en" {
		terms = p.englishTerms
	}

	components := p.ParseEquation(equation)
	parts := make([]string, 0, len(components))
	for _, comp := range components {
		if word, ok := terms[comp]; ok {
			parts = append(parts, word)
			continue
		}
		parts = append(parts, comp)
	}
	return strings.Join(parts, " ")
}
