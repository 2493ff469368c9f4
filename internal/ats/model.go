package ats

// SectionFeedback is per-section feedback within an analysis.
type SectionFeedback struct {
	Section  string `json:"section"`
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

// Analysis is the ATS compliance result for a resume text.
type Analysis struct {
	Score           float64           `json:"score"`
	MissingKeywords []string          `json:"missingKeywords"`
	Suggestions     []string          `json:"suggestions"`
	SectionAnalysis []SectionFeedback `json:"sectionAnalysis"`
}
