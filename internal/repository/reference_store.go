package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

// ReferenceStore is an in-memory store of reference identities. Insertion
// order is preserved: identification walks references in the order they were
// registered, which keeps match tie-breaking deterministic.
//
// Images live only in process memory; restarting the service clears the
// reference database.
type ReferenceStore struct {
	mu   sync.RWMutex
	refs []domain.ReferenceIdentity
}

var _ ReferenceStoreInterface = (*ReferenceStore)(nil)

func NewReferenceStore() *ReferenceStore {
	return &ReferenceStore{}
}

// Add registers a new reference identity. Names are unique
// (case-insensitive); a duplicate returns domain.ErrReferenceExists.
func (s *ReferenceStore) Add(_ context.Context, ref *domain.ReferenceIdentity) error {
	if ref.Name == "" {
		return domain.ErrValidationFailed
	}
	if len(ref.Image) == 0 {
		return domain.ErrInvalidImage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.refs {
		if strings.EqualFold(s.refs[i].Name, ref.Name) {
			return domain.ErrReferenceExists
		}
	}

	if ref.ID == uuid.Nil {
		ref.ID = uuid.New()
	}

	s.refs = append(s.refs, *ref)
	return nil
}

// GetByID returns a copy of the reference with the given ID, or
// domain.ErrReferenceNotFound.
func (s *ReferenceStore) GetByID(_ context.Context, id uuid.UUID) (*domain.ReferenceIdentity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.refs {
		if s.refs[i].ID == id {
			ref := s.refs[i]
			return &ref, nil
		}
	}

	return nil, domain.ErrReferenceNotFound
}

// List returns all references in registration order. The returned slice is
// a copy; callers may not mutate stored entries through it.
func (s *ReferenceStore) List(_ context.Context) ([]domain.ReferenceIdentity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ReferenceIdentity, len(s.refs))
	copy(out, s.refs)
	return out, nil
}

// Delete removes the reference with the given ID, preserving the order of
// the remaining entries.
func (s *ReferenceStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.refs {
		if s.refs[i].ID == id {
			s.refs = append(s.refs[:i], s.refs[i+1:]...)
			return nil
		}
	}

	return domain.ErrReferenceNotFound
}

// Count returns the number of registered references
func (s *ReferenceStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.refs), nil
}
