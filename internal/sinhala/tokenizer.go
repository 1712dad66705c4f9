// Package sinhala provides lightweight linguistic annotation for Sinhala
// text mixed with mathematical notation. It is a best-effort regex
// tokenizer, not a full morphological analyzer.
package sinhala

import (
	"regexp"
	"sort"
	"strconv"
)

var (
	sinhalaPattern    = regexp.MustCompile(`[\x{0D80}-\x{0DFF}]+`)
	numberPattern     = regexp.MustCompile(`\d+(?:\.\d+)?`)
	mathSymbolPattern = regexp.MustCompile(`[+\-*/=^()]`)
)

// Tokenizer splits Sinhala text containing numbers and math symbols into
// position-ordered tokens.
type Tokenizer struct{}

// NewTokenizer creates a Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

type span struct {
	text  string
	start int
}

// Tokenize returns all Sinhala words, numbers, and math symbols in text,
// ordered by position of appearance.
func (t *Tokenizer) Tokenize(text string) []string {
	var spans []span
	for _, re := range []*regexp.Regexp{sinhalaPattern, numberPattern, mathSymbolPattern} {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, span{text: text[loc[0]:loc[1]], start: loc[0]})
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	tokens := make([]string, len(spans))
	for i, s := range spans {
		tokens[i] = s.text
	}
	return tokens
}

// ContainsSinhala reports whether text has at least one Sinhala script run.
func ContainsSinhala(text string) bool {
	return sinhalaPattern.MatchString(text)
}

// ExtractNumbers returns the integer values embedded in text, in order of
// appearance. Decimal values are truncated toward zero; tokens that fail to
// parse are skipped.
func (t *Tokenizer) ExtractNumbers(text string) []int {
	var numbers []int
	for _, m := range numberPattern.FindAllString(text, -1) {
		if n, err := strconv.Atoi(m); err == nil {
			numbers = append(numbers, n)
			continue
		}
		if f, err := strconv.ParseFloat(m, 64); err == nil {
			numbers = append(numbers, int(f))
		}
	}
	return numbers
}
