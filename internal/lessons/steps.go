package lessons

import (
	"fmt"

	"github.com/sampath-kumaramd/mathlearn-project/internal/problems"
	"github.com/sampath-kumaramd/mathlearn-project/internal/sinhala"
)

// solutionSteps builds a Sinhala walkthrough for a worked example. The
// operands are recovered from the question text with the tokenizer, so
// the steps always quote the numbers the student just heard.
func solutionSteps(tok *sinhala.Tokenizer, p *problems.Problem) []string {
	numbers := tok.ExtractNumbers(p.Question)
	if len(numbers) < 2 {
		return nil
	}
	a, b := numbers[0], numbers[1]

	switch p.Type {
	case problems.TopicAddition:
		return []string{
			fmt.Sprintf("පළමුව, අපට එකතු කිරීමට ඇති සංඛ්‍යා හඳුනාගනිමු: %d සහ %d", a, b),
			fmt.Sprintf("දැන් අපි එම සංඛ්‍යා එකතු කරමු: %d + %d", a, b),
			fmt.Sprintf("අවසාන පිළිතුර: %d", a+b),
		}
	case problems.TopicSubtraction:
		return []string{
			fmt.Sprintf("පළමුව, අපට ඇති සංඛ්‍යා හඳුනාගනිමු: %d සහ %d", a, b),
			fmt.Sprintf("දැන් අපි අඩු කරමු: %d - %d", a, b),
			fmt.Sprintf("අවසාන පිළිතුර: %d", a-b),
		}
	}

	return nil
}
