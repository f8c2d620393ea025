package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/provider/rekognition"
)

func newIdentificationService(t *testing.T, comparer *MockFaceComparer, lp *MockLivenessProvider, refs *MockReferenceStore, attempts *MockAttemptRepository) *IdentificationService {
	t.Helper()
	logger := testLogger(t)
	return NewIdentificationService(comparer, NewLivenessService(lp, logger), refs, attempts, logger)
}

func storedReference(name string) domain.ReferenceIdentity {
	return domain.ReferenceIdentity{
		ID:    uuid.New(),
		Name:  name,
		Image: []byte("image-" + name),
	}
}

func TestIdentificationService_Compare(t *testing.T) {
	source := []byte("source-image")
	target := []byte("target-image")
	matches := []domain.CandidateMatch{{Similarity: 91.2}}

	comparer := new(MockFaceComparer)
	comparer.On("CompareFaces", mock.Anything, source, target, 80.0).Return(matches, nil)

	svc := newIdentificationService(t, comparer, new(MockLivenessProvider), new(MockReferenceStore), new(MockAttemptRepository))

	got, err := svc.Compare(context.Background(), source, target, 80)

	require.NoError(t, err)
	assert.Equal(t, matches, got)
	comparer.AssertExpectations(t)
}

func TestIdentificationService_Compare_InvalidThreshold(t *testing.T) {
	svc := newIdentificationService(t, new(MockFaceComparer), new(MockLivenessProvider), new(MockReferenceStore), new(MockAttemptRepository))

	_, err := svc.Compare(context.Background(), []byte("a"), []byte("b"), 150)
	assert.ErrorIs(t, err, domain.ErrInvalidThreshold)

	_, err = svc.Compare(context.Background(), []byte("a"), []byte("b"), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidThreshold)
}

func TestIdentificationService_Compare_MapsProviderErrors(t *testing.T) {
	tests := []struct {
		name        string
		providerErr error
		wantErr     error
	}{
		{
			name:        "no face detected",
			providerErr: rekognition.ErrNoFaceDetected,
			wantErr:     domain.ErrNoFaceDetected,
		},
		{
			name:        "invalid image",
			providerErr: rekognition.ErrInvalidImage,
			wantErr:     domain.ErrInvalidImage,
		},
		{
			name:        "unknown error wrapped as internal",
			providerErr: errors.New("network down"),
			wantErr:     domain.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comparer := new(MockFaceComparer)
			comparer.On("CompareFaces", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(nil, tt.providerErr)

			svc := newIdentificationService(t, comparer, new(MockLivenessProvider), new(MockReferenceStore), new(MockAttemptRepository))

			_, err := svc.Compare(context.Background(), []byte("a"), []byte("b"), 80)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIdentificationService_RegisterReference(t *testing.T) {
	refs := new(MockReferenceStore)
	refs.On("Add", mock.Anything, mock.MatchedBy(func(ref *domain.ReferenceIdentity) bool {
		return ref.Name == "Alice" && len(ref.Image) > 0
	})).Return(nil)

	svc := newIdentificationService(t, new(MockFaceComparer), new(MockLivenessProvider), refs, new(MockAttemptRepository))

	ref, err := svc.RegisterReference(context.Background(), "Alice", []byte("image-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "Alice", ref.Name)
	refs.AssertExpectations(t)
}

func TestIdentificationService_RegisterReference_Duplicate(t *testing.T) {
	refs := new(MockReferenceStore)
	refs.On("Add", mock.Anything, mock.Anything).Return(domain.ErrReferenceExists)

	svc := newIdentificationService(t, new(MockFaceComparer), new(MockLivenessProvider), refs, new(MockAttemptRepository))

	_, err := svc.RegisterReference(context.Background(), "Alice", []byte("image-bytes"))

	assert.ErrorIs(t, err, domain.ErrReferenceExists)
}

func TestIdentificationService_Identify(t *testing.T) {
	source := []byte("probe-image")
	alice := storedReference("Alice")
	bob := storedReference("Bob")

	refs := new(MockReferenceStore)
	refs.On("List", mock.Anything).Return([]domain.ReferenceIdentity{alice, bob}, nil)

	comparer := new(MockFaceComparer)
	comparer.On("CompareFaces", mock.Anything, source, alice.Image, 80.0).
		Return([]domain.CandidateMatch{{Similarity: 93.5}}, nil)
	comparer.On("CompareFaces", mock.Anything, source, bob.Image, 80.0).
		Return([]domain.CandidateMatch{}, nil)

	attempts := new(MockAttemptRepository)
	attempts.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.IdentificationAttempt) bool {
		return a.Identified && a.BestMatchName == "Alice" && a.TotalComparisons == 2 && a.SuccessfulComparisons == 2
	})).Return(nil)

	svc := newIdentificationService(t, comparer, new(MockLivenessProvider), refs, attempts)

	report, err := svc.Identify(context.Background(), source, 80)

	require.NoError(t, err)
	assert.True(t, report.IsIdentified)
	require.NotNil(t, report.BestMatch)
	assert.Equal(t, "Alice", report.BestMatch.ReferenceName)
	assert.Equal(t, "Identified as Alice with 93.50% similarity", report.Recommendation)
	assert.Nil(t, report.Liveness)

	comparer.AssertExpectations(t)
	attempts.AssertExpectations(t)
}

func TestIdentificationService_Identify_NoReferences(t *testing.T) {
	refs := new(MockReferenceStore)
	refs.On("List", mock.Anything).Return([]domain.ReferenceIdentity{}, nil)

	svc := newIdentificationService(t, new(MockFaceComparer), new(MockLivenessProvider), refs, new(MockAttemptRepository))

	_, err := svc.Identify(context.Background(), []byte("probe"), 80)

	assert.ErrorIs(t, err, domain.ErrNoReferences)
}

func TestIdentificationService_Identify_PartialFailure(t *testing.T) {
	source := []byte("probe-image")
	alice := storedReference("Alice")
	bob := storedReference("Bob")

	refs := new(MockReferenceStore)
	refs.On("List", mock.Anything).Return([]domain.ReferenceIdentity{alice, bob}, nil)

	comparer := new(MockFaceComparer)
	comparer.On("CompareFaces", mock.Anything, source, alice.Image, 80.0).
		Return(nil, errors.New("throttled"))
	comparer.On("CompareFaces", mock.Anything, source, bob.Image, 80.0).
		Return([]domain.CandidateMatch{{Similarity: 88.0}}, nil)

	attempts := new(MockAttemptRepository)
	attempts.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newIdentificationService(t, comparer, new(MockLivenessProvider), refs, attempts)

	report, err := svc.Identify(context.Background(), source, 80)

	require.NoError(t, err)
	assert.True(t, report.IsIdentified)
	assert.Equal(t, "Bob", report.BestMatch.ReferenceName)
	assert.Equal(t, 2, report.TotalComparisons)
	assert.Equal(t, 1, report.SuccessfulComparisons)

	require.Len(t, report.Outcomes, 2)
	assert.False(t, report.Outcomes[0].Success)
	assert.Contains(t, report.Outcomes[0].Error, "Alice")
}

func TestIdentificationService_Identify_ZeroThresholdUsesDefault(t *testing.T) {
	source := []byte("probe-image")
	alice := storedReference("Alice")

	refs := new(MockReferenceStore)
	refs.On("List", mock.Anything).Return([]domain.ReferenceIdentity{alice}, nil)

	comparer := new(MockFaceComparer)
	comparer.On("CompareFaces", mock.Anything, source, alice.Image, 80.0).
		Return([]domain.CandidateMatch{}, nil)

	attempts := new(MockAttemptRepository)
	attempts.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newIdentificationService(t, comparer, new(MockLivenessProvider), refs, attempts)

	report, err := svc.Identify(context.Background(), source, 0)

	require.NoError(t, err)
	assert.False(t, report.IsIdentified)
	comparer.AssertExpectations(t)
}

func TestIdentificationService_Identify_AuditFailureDoesNotFail(t *testing.T) {
	source := []byte("probe-image")
	alice := storedReference("Alice")

	refs := new(MockReferenceStore)
	refs.On("List", mock.Anything).Return([]domain.ReferenceIdentity{alice}, nil)

	comparer := new(MockFaceComparer)
	comparer.On("CompareFaces", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.CandidateMatch{{Similarity: 95.0}}, nil)

	attempts := new(MockAttemptRepository)
	attempts.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := newIdentificationService(t, comparer, new(MockLivenessProvider), refs, attempts)

	report, err := svc.Identify(context.Background(), source, 80)

	require.NoError(t, err)
	assert.True(t, report.IsIdentified)
}

func TestIdentificationService_IdentifyFromSession(t *testing.T) {
	alice := storedReference("Alice")
	livenessResult := &domain.LivenessResult{
		SessionID:  "session-1",
		Status:     domain.SessionStatusSucceeded,
		Confidence: 96,
		IsLive:     true,
		ReferenceImage: &domain.CapturedImage{
			Box:   domain.BoundingBox{Left: 0.3, Top: 0.3, Width: 0.4, Height: 0.4},
			Bytes: []byte("captured-face"),
		},
	}

	lp := new(MockLivenessProvider)
	lp.On("GetSessionResults", mock.Anything, "session-1").Return(livenessResult, nil)

	refs := new(MockReferenceStore)
	refs.On("List", mock.Anything).Return([]domain.ReferenceIdentity{alice}, nil)

	comparer := new(MockFaceComparer)
	comparer.On("CompareFaces", mock.Anything, []byte("captured-face"), alice.Image, 80.0).
		Return([]domain.CandidateMatch{{Similarity: 90.0}}, nil)

	attempts := new(MockAttemptRepository)
	attempts.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.IdentificationAttempt) bool {
		return a.SessionID == "session-1"
	})).Return(nil)

	svc := newIdentificationService(t, comparer, lp, refs, attempts)

	report, err := svc.IdentifyFromSession(context.Background(), "session-1", 80)

	require.NoError(t, err)
	assert.True(t, report.IsIdentified)
	require.NotNil(t, report.Liveness)
	assert.True(t, report.Liveness.IsLive)
	attempts.AssertExpectations(t)
}

func TestIdentificationService_IdentifyFromSession_NoReferenceImage(t *testing.T) {
	livenessResult := &domain.LivenessResult{
		SessionID: "session-1",
		Status:    domain.SessionStatusFailed,
	}

	lp := new(MockLivenessProvider)
	lp.On("GetSessionResults", mock.Anything, "session-1").Return(livenessResult, nil)

	svc := newIdentificationService(t, new(MockFaceComparer), lp, new(MockReferenceStore), new(MockAttemptRepository))

	_, err := svc.IdentifyFromSession(context.Background(), "session-1", 80)

	assert.ErrorIs(t, err, domain.ErrNoReferenceImage)
}
