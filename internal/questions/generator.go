package questions

import (
	"fmt"
	"strings"
)

// DefaultTopic substitutes when the caller supplies none.
const DefaultTopic = "this field"

// FallbackText is returned to clients when generation fails, instead of the
// underlying error.
const FallbackText = "We could not prepare your interview questions right now. Please try again in a moment."

// templates hold one %s placeholder each for the interview topic.
var templates = [10]string{
	"Tell me about your background and experience in %s.",
	"What attracted you to a career in %s?",
	"Describe a challenging problem you solved in %s and how you approached it.",
	"Which tools or techniques in %s do you rely on most, and why?",
	"How do you keep your knowledge of %s up to date?",
	"Walk me through a recent project in %s you are proud of.",
	"What is a common misconception people have about %s?",
	"How would you explain a core concept of %s to someone outside the field?",
	"Describe a time you disagreed with a teammate about a decision in %s.",
	"Where do you see %s heading in the next few years?",
}

// Generate renders the ten template questions for a topic, numbered 1..10 and
// joined by newlines. A non-empty focus prompt annotates the first question
// only.
func Generate(topic, focusPrompt string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = DefaultTopic
	}
	focusPrompt = strings.TrimSpace(focusPrompt)

	lines := make([]string, 0, len(templates))
	for i, tpl := range templates {
		line := fmt.Sprintf("%d. %s", i+1, fmt.Sprintf(tpl, topic))
		if i == 0 && focusPrompt != "" {
			line += fmt.Sprintf(" (Focus more on: %s)", focusPrompt)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
