package problems

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a math tutor creating word problems in Sinhala for visually impaired students in Sri Lanka.

Rules:
- Generate a single word problem for the given topic and difficulty.
- Write the question entirely in Sinhala script. Numbers may stay as Arabic numerals.
- The problem must be solvable from the text alone when read aloud. Never rely on diagrams, tables, or visual layout.
- Place the problem in an everyday Sri Lankan setting that matches the requested context. Rural settings use farms, paddy fields, coconuts, and village markets. Urban settings use buses, shops, school supplies, and city markets.
- If a festival is given, weave it naturally into the scenario.
- The answer must be exact. Integers as plain digits. Fractions as a/b reduced to lowest terms.
- Keep quantities small enough to compute mentally at the given difficulty. Difficulty 1 means single-digit operands. Difficulty 10 may use operands up to a few hundred.`

// buildPrompt constructs the user prompt for one problem request.
func buildPrompt(topic Topic, difficulty int, contextType ContextType, festival string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Difficulty: %d (scale 1-10)\n", difficulty)
	fmt.Fprintf(&b, "Context: %s\n", contextType)
	if festival != "" {
		fmt.Fprintf(&b, "Festival: %s\n", festival)
	} else {
		b.WriteString("Festival: none\n")
	}

	if topic == TopicProbability {
		b.WriteString("\nFor probability, describe a collection of items and ask for the probability of drawing one kind. Answer as a reduced fraction.\n")
	}

	return b.String()
}
