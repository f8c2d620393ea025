package domain

// OutcomeSummary is the per-reference line item of an identification report.
type OutcomeSummary struct {
	ReferenceID   string  `json:"reference_id"`
	ReferenceName string  `json:"reference_name"`
	Success       bool    `json:"success"`
	TopSimilarity float64 `json:"top_similarity"`
	Error         string  `json:"error,omitempty"`
}

// IdentificationReport aggregates a liveness result with the outcomes of
// comparing its subject against every registered reference identity.
type IdentificationReport struct {
	IsIdentified          bool               `json:"is_identified"`
	BestMatch             *ComparisonOutcome `json:"best_match,omitempty"`
	TotalComparisons      int                `json:"total_comparisons"`
	SuccessfulComparisons int                `json:"successful_comparisons"`
	Outcomes              []OutcomeSummary   `json:"outcomes"`
	Recommendation        string             `json:"recommendation"`
	Liveness              *LivenessResult    `json:"liveness,omitempty"`
}
