package intent

import "strings"

// Intent is the outcome of classifying a refining-stage turn.
type Intent string

const (
	IntentFullReport Intent = "FULL_REPORT"
	IntentRiskUpdate Intent = "RISK_UPDATE"
	IntentRecall     Intent = "RECALL"
	IntentFallback   Intent = "FALLBACK"
)

// Rule fires when the lowercased text contains any of its keywords.
type Rule struct {
	Intent   Intent
	Keywords []string
}

// Matches reports whether lowered contains one of the rule keywords.
// The caller lowercases once per turn.
func (r Rule) Matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// DefaultRules in priority order. Order decides ties, not position in the text.
var DefaultRules = []Rule{
	{Intent: IntentFullReport, Keywords: []string{"entire", "full", "complete", "length", "increase"}},
	{Intent: IntentRiskUpdate, Keywords: []string{"risk", "challenge"}},
	{Intent: IntentRecall, Keywords: []string{"again", "show", "give", "report"}},
}

// Classifier evaluates rules in order; the first match wins.
type Classifier struct {
	rules []Rule
}

// NewClassifier uses DefaultRules when no rules are given.
func NewClassifier(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Classifier{rules: rules}
}

// Classify never fails: text matching no rule is IntentFallback.
func (c *Classifier) Classify(text string) Intent {
	lowered := strings.ToLower(text)
	for _, r := range c.rules {
		if r.Matches(lowered) {
			return r.Intent
		}
	}
	return IntentFallback
}

// IntentInitial labels the first turn of a session. It is never produced by Classify.
const IntentInitial Intent = "INITIAL"
