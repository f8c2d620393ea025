package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

// PgxPool is the subset of pgxpool.Pool used by repositories. pgxmock's
// pool interface satisfies it, which keeps repository tests hermetic.
type PgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ReferenceStoreInterface defines operations for reference identity storage
type ReferenceStoreInterface interface {
	Add(ctx context.Context, ref *domain.ReferenceIdentity) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReferenceIdentity, error)
	List(ctx context.Context) ([]domain.ReferenceIdentity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// AttemptRepositoryInterface defines operations for identification attempt auditing
type AttemptRepositoryInterface interface {
	Create(ctx context.Context, attempt *domain.IdentificationAttempt) error
}
