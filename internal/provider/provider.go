package provider

import (
	"context"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

// LivenessProvider defines the interface for face liveness session backends.
type LivenessProvider interface {
	// CreateSession starts a new liveness session and returns its ID.
	CreateSession(ctx context.Context) (string, error)

	// GetSessionResults retrieves the outcome of a finished (or in-progress)
	// liveness session, including the reference and audit images captured
	// during the challenge.
	GetSessionResults(ctx context.Context, sessionID string) (*domain.LivenessResult, error)
}

// FaceComparer defines the interface for face comparison backends.
type FaceComparer interface {
	// CompareFaces compares the face in sourceImage against targetImage and
	// returns candidate matches sorted by similarity (0-100), highest first.
	// An empty slice means no candidate reached the threshold.
	CompareFaces(ctx context.Context, sourceImage, targetImage []byte, similarityThreshold float64) ([]domain.CandidateMatch, error)
}
