package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdentificationAttempt is the persisted audit record of a single identify
// call. Only summary data is stored; images never touch the database.
type IdentificationAttempt struct {
	ID                    uuid.UUID `json:"id"`
	SessionID             string    `json:"session_id,omitempty"`
	Identified            bool      `json:"identified"`
	BestMatchName         string    `json:"best_match_name,omitempty"`
	BestSimilarity        float64   `json:"best_similarity"`
	TotalComparisons      int       `json:"total_comparisons"`
	SuccessfulComparisons int       `json:"successful_comparisons"`
	LatencyMs             int64     `json:"latency_ms"`
	CreatedAt             time.Time `json:"created_at"`
}
