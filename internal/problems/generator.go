package problems

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

// CulturalGenerator is the template-based Generator. Content is randomized
// from a seedable source; the shape of each problem is deterministic.
type CulturalGenerator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewCultural creates a CulturalGenerator. A nil rng gets a time-seeded
// source; a nil now defaults to time.Now. Tests inject both.
func NewCultural(rng *rand.Rand, now func() time.Time) *CulturalGenerator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if now == nil {
		now = time.Now
	}
	return &CulturalGenerator{rng: rng, now: now}
}

// Generate produces one problem for the topic at the given difficulty.
// Difficulty is clamped to [1,10]. Unknown topics return *ErrUnknownTopic.
func (g *CulturalGenerator) Generate(_ context.Context, topic Topic, difficulty int) (*Problem, error) {
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

	festivalName := festivalForMonth(int(g.now().Month()))
	useFestival := festivalName != "" && g.rng.Float64() < festivalChance

	switch topic {
	case TopicAddition:
		return g.addition(contextType, difficulty, festivalName, useFestival), nil
	case TopicSubtraction:
		return g.subtraction(contextType, difficulty, festivalName, useFestival), nil
	case TopicMultiplication:
		return g.multiplication(contextType, difficulty, festivalName, useFestival), nil
	case TopicDivision:
		return g.division(contextType, difficulty, festivalName, useFestival), nil
	case TopicProbability:
		return g.probability(contextType, difficulty, festivalName, useFestival), nil
	default:
		return nil, &ErrUnknownTopic{Topic: topic}
	}
}

// intN returns a random integer in [1, max].
func (g *CulturalGenerator) intN(max int) int {
	if max < 1 {
		max = 1
	}
	return 1 + g.rng.IntN(max)
}

func (g *CulturalGenerator) pick(templates []string) string {
	return templates[g.rng.IntN(len(templates))]
}

func (g *CulturalGenerator) addition(ct ContextType, difficulty int, festivalName string, useFestival bool) *Problem {
	maxNum := 10 * difficulty
	a, b := g.intN(maxNum), g.intN(maxNum)

	p := &Problem{
		Type:        TopicAddition,
		Difficulty:  difficulty,
		Answer:      strconv.Itoa(a + b),
		ContextType: ct,
	}

	if useFestival {
		p.FestivalContext = festivalName
		p.Question = fmt.Sprintf("%s සමයේදී ගමේ වැසියන් කුඩා පහන් %d ක් සහ විශාල පහන් %d ක් දැල්වූහ. ඔවුන් මුළු වශයෙන් කොපමණ පහන් ගණනක් දැල්වූවාද?", festivalName, a, b)
		return p
	}

	rural := []string{
		fmt.Sprintf("ගොවියෙක් මුලින් කිලෝග්‍රෑම් %d ක් සහ පසුව කිලෝග්‍රෑම් %d ක් වී අස්වනු ලබා ගත්තේය. ඔහු මුළු වශයෙන් කොපමණ වී ප්‍රමාණයක් ලබා ගත්තේද?", a, b),
		fmt.Sprintf("ගම්මානයේ ළමයින් %d දෙනෙක් සහ වැඩිහිටියන් %d දෙනෙක් පන්සලට ගියහ. පන්සලට ගිය මුළු ජන ගණන කීයද?", a, b),
	}
	urban := []string{
		fmt.Sprintf("බස් රථයේ මුලින් මගීන් %d දෙනෙක් සිටි අතර, ඊළඟ නැවතුමේදී තවත් මගීන් %d දෙනෙක් නැග්ගහ. දැන් බස් රථයේ සිටින මුළු මගීන් ගණන කීයද?", a, b),
		fmt.Sprintf("සාප්පුවේ රුපියල් %d ක් වටිනා පොතක් සහ රුපියල් %d ක් වටිනා පැන්සලක් මිලදී ගතී. ඇය මුළු වශයෙන් කොපමණ මුදලක් වියදම් කළාද?", a, b),
	}
	p.Question = g.pickContext(ct, rural, urban)
	return p
}

func (g *CulturalGenerator) subtraction(ct ContextType, difficulty int, festivalName string, useFestival bool) *Problem {
	maxNum := 10 * difficulty
	a, b := g.intN(maxNum), g.intN(maxNum)
	if b > a {
		a, b = b, a
	}

	p := &Problem{
		Type:        TopicSubtraction,
		Difficulty:  difficulty,
		Answer:      strconv.Itoa(a - b),
		ContextType: ct,
	}

	if useFestival {
		p.FestivalContext = festivalName
		p.Question = fmt.Sprintf("%s උත්සවය සඳහා කූඩු %d ක් සාදා තිබූ අතර සුළඟින් %d ක් හානි විය. ඉතිරි කූඩු ගණන කීයද?", festivalName, a, b)
		return p
	}

	rural := []string{
		fmt.Sprintf("ගොවියෙකුට පොල් ගෙඩි %d ක් තිබූ අතර ඔහු %d ක් වෙළඳපොලේ විකුණුවේය. ඔහුට ඉතිරිව ඇති පොල් ගෙඩි ගණන කීයද?", a, b),
		fmt.Sprintf("වැවේ මාළු %d ක් සිටි අතර ධීවරයෝ %d ක් අල්ලා ගත්හ. වැවේ ඉතිරිව සිටින මාළු ගණන කීයද?", a, b),
	}
	urban := []string{
		fmt.Sprintf("බස් රථයේ මගීන් %d දෙනෙක් සිටි අතර නැවතුමේදී %d දෙනෙක් බැස ගියහ. දැන් බස් රථයේ සිටින මගීන් ගණන කීයද?", a, b),
		fmt.Sprintf("ළමයෙකුට රුපියල් %d ක් තිබූ අතර ඔහු රුපියල් %d ක් වියදම් කළේය. ඔහුට ඉතිරි මුදල කීයද?", a, b),
	}
	p.Question = g.pickContext(ct, rural, urban)
	return p
}

func (g *CulturalGenerator) multiplication(ct ContextType, difficulty int, festivalName string, useFestival bool) *Problem {
	// Keep factors small enough that products stay age-appropriate.
	a := g.intN(2 + difficulty)
	b := g.intN(10)

	p := &Problem{
		Type:        TopicMultiplication,
		Difficulty:  difficulty,
		Answer:      strconv.Itoa(a * b),
		ContextType: ct,
	}

	if useFestival {
		p.FestivalContext = festivalName
		p.Question = fmt.Sprintf("%s සමයේදී එක් වීථියක පහන් %d බැගින් වීථි %d ක පහන් දල්වා ඇත. මුළු පහන් ගණන කීයද?", festivalName, b, a)
		return p
	}

	rural := []string{
		fmt.Sprintf("ගොවියෙක් වී පැළ පේළි %d ක් සිටුවයි. එක් පේළියක පැළ %d ක් ඇත. මුළු පැළ ගණන කීයද?", a, b),
		fmt.Sprintf("ගමේ ගෙවතු %d ක් ඇති අතර එක් ගෙවත්තක පොල් ගස් %d ක් ඇත. මුළු පොල් ගස් ගණන කීයද?", a, b),
	}
	urban := []string{
		fmt.Sprintf("පන්ති කාමර %d ක එක් පන්තියක සිසුන් %d බැගින් සිටී. මුළු සිසුන් ගණන කීයද?", a, b),
		fmt.Sprintf("පෙට්ටි %d ක එක් පෙට්ටියක පැන්සල් %d බැගින් ඇත. මුළු පැන්සල් ගණන කීයද?", a, b),
	}
	p.Question = g.pickContext(ct, rural, urban)
	return p
}

func (g *CulturalGenerator) division(ct ContextType, difficulty int, festivalName string, useFestival bool) *Problem {
	// Construct an exact division: total = divisor * quotient.
	divisor := 1 + g.intN(min(9, difficulty+2))
	quotient := g.intN(10 * difficulty / divisor)
	total := divisor * quotient

	p := &Problem{
		Type:        TopicDivision,
		Difficulty:  difficulty,
		Answer:      strconv.Itoa(quotient),
		ContextType: ct,
	}

	if useFestival {
		p.FestivalContext = festivalName
		p.Question = fmt.Sprintf("%s දිනයේ කැවුම් %d ක් පවුල් %d ක් අතර සමානව බෙදා දෙයි. එක් පවුලකට ලැබෙන කැවුම් ගණන කීයද?", festivalName, total, divisor)
		return p
	}

	rural := []string{
		fmt.Sprintf("ගොවියෙක් අඹ ගෙඩි %d ක් ළමයින් %d දෙනෙකුට සමානව බෙදා දෙයි. එක් ළමයෙකුට ලැබෙන අඹ ගෙඩි ගණන කීයද?", total, divisor),
		fmt.Sprintf("වී කිලෝග්‍රෑම් %d ක් මලු %d කට සමානව බෙදා ඇත. එක් මල්ලක ඇති වී ප්‍රමාණය කීයද?", total, divisor),
	}
	urban := []string{
		fmt.Sprintf("රුපියල් %d ක් ළමයින් %d දෙනෙකුට සමානව බෙදා දෙයි. එක් ළමයෙකුට ලැබෙන මුදල කීයද?", total, divisor),
		fmt.Sprintf("පොත් %d ක් රාක්ක %d ක සමානව තබා ඇත. එක් රාක්කයක ඇති පොත් ගණන කීයද?", total, divisor),
	}
	p.Question = g.pickContext(ct, rural, urban)
	return p
}

func (g *CulturalGenerator) probability(ct ContextType, difficulty int, festivalName string, useFestival bool) *Problem {
	total := 2 + g.intN(3+difficulty)
	target := g.intN(total - 1)
	other := total - target

	p := &Problem{
		Type:        TopicProbability,
		Difficulty:  difficulty,
		Answer:      fractionString(target, total),
		ContextType: ct,
		TotalItems:  total,
		TargetItems: target,
	}

	if useFestival {
		p.FestivalContext = festivalName
		p.Question = fmt.Sprintf("%s සැමරුමට පහන් %d ක් ඇති අතර ඉන් %d ක් රතු පැහැයයි. අහඹු ලෙස පහනක් ගත් විට එය රතු පහනක් වීමේ සම්භාවිතාව කීයද?", festivalName, total, target)
		return p
	}

	rural := []string{
		fmt.Sprintf("කූඩයක අඹ ගෙඩි %d ක් සහ පේර ගෙඩි %d ක් ඇත. අහඹු ලෙස ගෙඩියක් ගත් විට එය අඹ ගෙඩියක් වීමේ සම්භාවිතාව කීයද?", target, other),
		fmt.Sprintf("ගොවිපොළේ කුකුළන් %d ක් සහ තාරාවන් %d ක් සිටී. අහඹු ලෙස සතෙකු තේරූ විට එය කුකුළෙකු වීමේ සම්භාවිතාව කීයද?", target, other),
	}
	urban := []string{
		fmt.Sprintf("පෙට්ටියක රතු බෝල %d ක් සහ නිල් බෝල %d ක් ඇත. අහඹු ලෙස බෝලයක් ගත් විට එය රතු බෝලයක් වීමේ සම්භාවිතාව කීයද?", target, other),
		fmt.Sprintf("බෑගයක නිල් පෑන් %d ක් සහ කළු පෑන් %d ක් ඇත. අහඹු ලෙස පෑනක් ගත් විට එය නිල් පෑනක් වීමේ සම්භාවිතාව කීයද?", target, other),
	}
	p.Question = g.pickContext(ct, rural, urban)
	return p
}

func (g *CulturalGenerator) pickContext(ct ContextType, rural, urban []string) string {
	if ct == ContextRural {
		return g.pick(rural)
	}
	return g.pick(urban)
}

// fractionString renders target/total in lowest terms.
func fractionString(target, total int) string {
	d := gcd(target, total)
	return fmt.Sprintf("%d/%d", target/d, total/d)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
