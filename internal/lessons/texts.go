package lessons

import (
	"fmt"

	"github.com/sampath-kumaramd/mathlearn-project/internal/problems"
)

// Sinhala lesson narration. Each topic gets an introduction read at the
// start of a lesson and a summary read at the end.

var topicIntroductions = map[problems.Topic]string{
	problems.TopicAddition:       "එකතු කිරීම යනු දෙකක් හෝ ඊට වැඩි ගණනක් එකතු කිරීමේ ක්‍රියාවලියයි.",
	problems.TopicSubtraction:    "අඩු කිරීම යනු එක් අගයකින් තවත් අගයක් ඉවත් කිරීමේ ක්‍රියාවලියයි.",
	problems.TopicMultiplication: "ගුණ කිරීම යනු සංඛ්‍යාවක් කිහිප වතාවක් එකතු කිරීමේ කෙටි ක්‍රමයයි.",
	problems.TopicDivision:       "බෙදීම යනු ප්‍රමාණයක් කොටස් වලට බෙදීමේ ක්‍රියාවලියයි.",
	problems.TopicProbability:    "සම්භාවිතාව යනු සිදුවීමක් සිදුවීමට ඇති ඉඩකඩ මැනීමේ ක්‍රමයයි.",
}

var topicSummaries = map[problems.Topic]string{
	problems.TopicAddition:       "එකතු කිරීමේදී, ඔබ දෙකක් හෝ වැඩි ගණනක් සංඛ්‍යා එකතු කරන අතර අවසාන එකතුව ලබා ගනී.",
	problems.TopicSubtraction:    "අඩු කිරීමේදී, ඔබ එක් සංඛ්‍යාවකින් තවත් සංඛ්‍යාවක් අඩු කරයි.",
	problems.TopicMultiplication: "ගුණ කිරීමේදී, ඔබ සංඛ්‍යාවක් වෙනත් සංඛ්‍යාවකින් වැඩි කරයි.",
	problems.TopicDivision:       "බෙදීමේදී, ඔබ සංඛ්‍යාවක් සමාන කොටස් වලට බෙදයි.",
	problems.TopicProbability:    "සම්භාවිතාවේදී, ඔබ අපේක්ෂිත ප්‍රතිඵල ගණන මුළු ප්‍රතිඵල ගණනින් බෙදයි.",
}

// introductionFor returns the topic introduction, with a generic
// fallback for topics without a curated text.
func introductionFor(topic problems.Topic) string {
	if intro, ok := topicIntroductions[topic]; ok {
		return intro
	}
	return fmt.Sprintf("%s පිළිබඳ හැඳින්වීම", topic)
}

// summaryFor returns the topic summary, with a generic fallback.
func summaryFor(topic problems.Topic) string {
	if s, ok := topicSummaries[topic]; ok {
		return s
	}
	return fmt.Sprintf("%s පිළිබඳ සාරාංශය", topic)
}
