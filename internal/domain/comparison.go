package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReferenceIdentity is a named person with a known face image used as a
// comparison target.
type ReferenceIdentity struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Image     []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchedFace is the provider's metadata about the face that matched inside
// the target image.
type MatchedFace struct {
	Box        BoundingBox `json:"bounding_box"`
	Confidence float64     `json:"confidence"`
}

// CandidateMatch is a single candidate returned by a face comparison.
// Similarity is in the 0-100 range. Candidate lists are sorted descending
// by similarity by the provider contract.
type CandidateMatch struct {
	Similarity float64     `json:"similarity"`
	Face       MatchedFace `json:"face"`
}

// ComparisonOutcome is the result of comparing one subject face against one
// reference identity. It is a closed variant: either Success is true and
// Matches holds the candidate list (possibly empty), or Success is false and
// Error describes the failure. Use NewComparisonOutcome / FailedComparison
// to construct it; never mix the two arms.
type ComparisonOutcome struct {
	ReferenceID   uuid.UUID        `json:"reference_id"`
	ReferenceName string           `json:"reference_name"`
	Success       bool             `json:"success"`
	Matches       []CandidateMatch `json:"matches,omitempty"`
	Error         string           `json:"error,omitempty"`
}

// NewComparisonOutcome builds the success arm of the variant.
func NewComparisonOutcome(ref ReferenceIdentity, matches []CandidateMatch) ComparisonOutcome {
	return ComparisonOutcome{
		ReferenceID:   ref.ID,
		ReferenceName: ref.Name,
		Success:       true,
		Matches:       matches,
	}
}

// FailedComparison builds the failure arm of the variant. The reference
// display name is embedded in the error text so the failure stays readable
// once it is detached from the outcome list.
func FailedComparison(ref ReferenceIdentity, err error) ComparisonOutcome {
	return ComparisonOutcome{
		ReferenceID:   ref.ID,
		ReferenceName: ref.Name,
		Success:       false,
		Error:         "comparison with " + ref.Name + " failed: " + err.Error(),
	}
}

// TopSimilarity returns the similarity of the first (highest ranked)
// candidate, or 0 when the outcome failed or carries no candidates.
func (o ComparisonOutcome) TopSimilarity() float64 {
	if !o.Success || len(o.Matches) == 0 {
		return 0
	}
	return o.Matches[0].Similarity
}
