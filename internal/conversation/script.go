package conversation

import (
	"fmt"
	"strings"
)

// DefaultQuestions is the fixed interview script. Every session walks the
// whole list in order before anything is sent to Gemini.
var DefaultQuestions = []string{
	"What destination are you planning to visit?",
	"When do you want to travel and for how long?",
	"Who are you traveling with (solo, family, friends, etc.)?",
	"What's your total budget for this trip?",
	"What experiences are you hoping for (adventure, relaxation, culture, etc.)?",
	"Do you prefer cities, nature, or a mix of both?",
	"Are there any specific attractions or sites you want to visit?",
	"Do you have any accessibility needs or physical limitations?",
	"Do you prefer a packed schedule or relaxed pace?",
	"What kind of transportation do you prefer during the trip?",
}

// BuildTripPrompt serializes the answered script into the single
// generation request. The reply format it demands (readable text plus a
// fenced ```json block) is what extract.Extract expects back.
func BuildTripPrompt(questions, answers []string) string {
	var qa strings.Builder
	for i, q := range questions {
		if i > 0 {
			qa.WriteString("\n")
		}
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		fmt.Fprintf(&qa, "Q: %s\nA: %s", q, answer)
	}

	return strings.TrimSpace(fmt.Sprintf(`
Based on the following trip planning Q&A. make sure each day has at least 2-4 activites if relaxed and 4-5 if packed
DO NOT overexplain or add unnecessary info. Only mention destinations which will be available on google Maps and give me their exact location.
Include:

1. A readable version (for user).
2. A JSON version formatted as:
`+"```json"+`
{
  "days": [
    { "day": 1, "stops": ["Place 1", "Place 2"] },
    { "day": 2, "stops": ["Place 3", "Place 4"] }
  ]
}
`+"```"+`

Q&A:
%s
`, qa.String()))
}
