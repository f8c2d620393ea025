package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

type AttemptRepository struct {
	pool PgxPool
}

var _ AttemptRepositoryInterface = (*AttemptRepository)(nil)

func NewAttemptRepository(pool PgxPool) *AttemptRepository {
	return &AttemptRepository{pool: pool}
}

// Create inserts a new identification attempt record
func (r *AttemptRepository) Create(ctx context.Context, attempt *domain.IdentificationAttempt) error {
	query := `
		INSERT INTO identification_attempts (
			id, session_id, identified, best_match_name, best_similarity,
			total_comparisons, successful_comparisons, latency_ms, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`

	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}

	err := r.pool.QueryRow(ctx, query,
		attempt.ID,
		attempt.SessionID,
		attempt.Identified,
		attempt.BestMatchName,
		attempt.BestSimilarity,
		attempt.TotalComparisons,
		attempt.SuccessfulComparisons,
		attempt.LatencyMs,
	).Scan(&attempt.CreatedAt)

	if err != nil {
		return fmt.Errorf("create identification attempt: %w", err)
	}

	return nil
}
