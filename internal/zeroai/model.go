package zeroai

// Score is the AI-generation likelihood estimate for a text.
type Score struct {
	AIPercentage float64 `json:"aiPercentage"`
	Reasoning    string  `json:"reasoning"`
	Verdict      string  `json:"verdict"`
}

// Verdicts the detector may return.
const (
	VerdictHuman = "Human-Written"
	VerdictAI    = "Likely AI-Generated"
	VerdictMixed = "Mixed/Edited"
)

// HumanizeAvailable reports whether the rewrite offer applies. The
// threshold is strict: exactly 20 percent does not qualify.
func (s Score) HumanizeAvailable() bool {
	return s.AIPercentage > 20
}
