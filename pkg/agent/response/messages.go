package response

import (
	"fmt"

	"research-agent-be/pkg/knowledge"
)

const (
	refinePrompt = "**How should I refine this?** (e.g., 'Give me the entire report', 'Update risks')"

	// RiskUpdate does not depend on the company or detail level.
	RiskUpdate = "✅ **Updated Risks Section:**\n\n" +
		"* **Added:** Cybersecurity vulnerabilities in legacy infrastructure.\n" +
		"* **Added:** New geopolitical supply chain constraints."

	Fallback = "I've noted that request. Do you want to see the 'entire' report or update a specific section?"

	// Greeting is shown when a session is created, before the first turn.
	Greeting = "Which company should I research?"

	StatusRefining = "Agent is processing request..."
)

// Initial embeds the short report for the company named in the first turn.
func Initial(company, shortReport string) string {
	return fmt.Sprintf("I found data for **%s**.\n\n%s\n\n---\n%s", company, shortReport, refinePrompt)
}

// FullReport wraps the long report with the confirmation banner.
func FullReport(longReport string) string {
	return "✅ **I have generated the entire detailed research report:**\n\n" + longReport
}

// Recall names the level that was used.
func Recall(level knowledge.Level, report string) string {
	return fmt.Sprintf("Here is the %s research report as requested:\n\n%s", level, report)
}

// StatusAnalyzing is the transient line shown while the first lookup runs.
func StatusAnalyzing(company string) string {
	return fmt.Sprintf("🔍 **Analyzing: %s...**", company)
}
