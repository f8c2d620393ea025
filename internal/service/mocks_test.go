package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

type MockLivenessProvider struct {
	mock.Mock
}

func (m *MockLivenessProvider) CreateSession(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockLivenessProvider) GetSessionResults(ctx context.Context, sessionID string) (*domain.LivenessResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LivenessResult), args.Error(1)
}

type MockFaceComparer struct {
	mock.Mock
}

func (m *MockFaceComparer) CompareFaces(ctx context.Context, sourceImage, targetImage []byte, similarityThreshold float64) ([]domain.CandidateMatch, error) {
	args := m.Called(ctx, sourceImage, targetImage, similarityThreshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateMatch), args.Error(1)
}

type MockReferenceStore struct {
	mock.Mock
}

func (m *MockReferenceStore) Add(ctx context.Context, ref *domain.ReferenceIdentity) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockReferenceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReferenceIdentity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReferenceIdentity), args.Error(1)
}

func (m *MockReferenceStore) List(ctx context.Context) ([]domain.ReferenceIdentity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReferenceIdentity), args.Error(1)
}

func (m *MockReferenceStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReferenceStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Create(ctx context.Context, attempt *domain.IdentificationAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
