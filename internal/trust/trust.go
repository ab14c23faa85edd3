// Package trust implements the trust-classification workflow: mapping an
// organization profile to a discrete trust level through a generative text
// model, with a closed allow-list on the model output and a fixed fallback.
package trust

import "strings"

// Level is the advisory trust classification of an organization.
// It is always exactly one of the three values below.
type Level string

const (
	LevelGreen  Level = "green"
	LevelYellow Level = "yellow"
	LevelRed    Level = "red"
)

// DefaultLevel is the conservative fallback used whenever the model output
// cannot be trusted.
const DefaultLevel = LevelYellow

// ParseLevel cleans raw model output (trim + lowercase only, no substring
// extraction) and checks membership in the closed set. Any surrounding text
// around a label word makes the output invalid on purpose: a model that was
// prompt-injected into saying more than one word must not be believed.
func ParseLevel(raw string) (Level, bool) {
	switch Level(strings.ToLower(strings.TrimSpace(raw))) {
	case LevelGreen:
		return LevelGreen, true
	case LevelYellow:
		return LevelYellow, true
	case LevelRed:
		return LevelRed, true
	}
	return DefaultLevel, false
}

// OrganizationProfile is the unstructured input to classification. It is
// constructed once per request and never persisted directly; only the derived
// Level and the raw fields travel onward.
type OrganizationProfile struct {
	Name        string
	OrgType     string
	Location    string
	Description string
	DocURL      string
}
