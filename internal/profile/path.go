package profile

import "sort"

// weakThreshold is the proficiency level below which a topic or objective
// counts as a weak area.
const weakThreshold = 5.0

// maxPathEntries caps the learning path length.
const maxPathEntries = 3

// PathEntry is one prioritized remediation item.
type PathEntry struct {
	Topic        string  `json:"topic"`
	CurrentLevel float64 `json:"current_level"`
	TargetLevel  float64 `json:"target_level"`
	Priority     int     `json:"priority"`
}

// LearningPath ranks the student's weak areas, weakest first, and returns
// at most three entries.
//
// Topic-level scores are scanned first; only when no topic is below the
// threshold does the selector fall back to the objective taxonomy, using
// "category_objective" names. The two granularities are never mixed in one
// result. An empty path means no weak areas exist at either granularity.
func (p *Profile) LearningPath() []PathEntry {
	type candidate struct {
		name  string
		level float64
	}

	var weak []candidate
	for _, topic := range p.topicOrder {
		if level := p.topicProgress[topic]; level < weakThreshold {
			weak = append(weak, candidate{name: topic, level: level})
		}
	}

	if len(weak) == 0 {
		for _, cat := range defaultTaxonomy {
			for _, objective := range cat.Objectives {
				if level := p.objectives[cat.Name][objective]; level < weakThreshold {
					weak = append(weak, candidate{name: cat.Name + "_" + objective, level: level})
				}
			}
		}
	}

	// Weakest first; stable so equal levels keep first-encountered order.
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].level < weak[j].level })

	if len(weak) > maxPathEntries {
		weak = weak[:maxPathEntries]
	}

	path := make([]PathEntry, len(weak))
	for i, c := range weak {
		path[i] = PathEntry{
			Topic:        c.name,
			CurrentLevel: c.level,
			TargetLevel:  min(MaxLevel, c.level+2),
			Priority:     i + 1,
		}
	}
	return path
}
