package gemini

import (
	"encoding/json"
	"fmt"
)

// CarbonReportPrompt asks for a day-by-day driving emission estimate of
// the current itinerary. The reply is shown as-is; nothing is parsed out
// of it.
func CarbonReportPrompt(days [][]string) string {
	plan := make(map[string][]string, len(days))
	for i, stops := range days {
		plan[fmt.Sprintf("day_%d", i+1)] = stops
	}
	body, _ := json.MarshalIndent(plan, "", "  ")

	return fmt.Sprintf(`Estimate the driving carbon emissions for this trip plan:
%s

Break it down by day and route. Use kg CO₂.
Format:
Day 1:
- From A to B: ~X kg CO₂
- From B to C: ~Y kg CO₂
Total for Day 1: ~Z kg CO₂

Day 2:
- From C to D: ~X kg CO₂
Total for Day 2: ~Z kg CO₂

Overall Total: ~N kg CO₂
`, body)
}
