package rekognition

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/google/uuid"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/provider"
)

const (
	// maxImageSize is the maximum image size supported by AWS Rekognition (5MB)
	maxImageSize = 5 * 1024 * 1024
	// minImageSize is the minimum image size for valid processing
	minImageSize = 100

	// defaultLivenessThreshold is the minimum confidence (0-100) a SUCCEEDED
	// session must reach to be considered live
	defaultLivenessThreshold = 80
)

// Provider implements provider.LivenessProvider and provider.FaceComparer
// using AWS Rekognition Face Liveness and CompareFaces
type Provider struct {
	client            *Client
	livenessThreshold float64
}

// ProviderOption defines optional configuration for Provider
type ProviderOption func(*Provider)

// WithLivenessThreshold sets the confidence a session must exceed to count
// as live. Values outside (0, 100] fall back to the default.
func WithLivenessThreshold(threshold float64) ProviderOption {
	return func(p *Provider) {
		if threshold > 0 && threshold <= 100 {
			p.livenessThreshold = threshold
		}
	}
}

// Ensure Provider implements the provider interfaces at compile time
var (
	_ provider.LivenessProvider = (*Provider)(nil)
	_ provider.FaceComparer     = (*Provider)(nil)
)

// NewProvider creates a new Rekognition provider
func NewProvider(ctx context.Context, cfg Config, opts ...ProviderOption) (*Provider, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create rekognition client: %w", err)
	}

	p := &Provider{
		client:            client,
		livenessThreshold: defaultLivenessThreshold,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// validateImage checks if image data is valid for Rekognition processing
func validateImage(image []byte) error {
	if len(image) == 0 {
		return ErrInvalidImage
	}
	if len(image) < minImageSize {
		return fmt.Errorf("%w: image too small (%d bytes, minimum %d)", ErrInvalidImage, len(image), minImageSize)
	}
	if len(image) > maxImageSize {
		return fmt.Errorf("%w: image too large (%d bytes, maximum %d)", ErrInvalidImage, len(image), maxImageSize)
	}
	return nil
}

// CreateSession starts a new Face Liveness session and returns its ID.
// A fresh client request token is generated per call so retries after a
// failure never collide with a previous attempt.
func (p *Provider) CreateSession(ctx context.Context) (string, error) {
	input := &rekognition.CreateFaceLivenessSessionInput{
		ClientRequestToken: aws.String(uuid.NewString()),
		Settings: &types.CreateFaceLivenessSessionRequestSettings{
			AuditImagesLimit: aws.Int32(p.client.config.AuditImagesLimit),
		},
	}

	output, err := p.client.rekognition.CreateFaceLivenessSession(ctx, input)
	if err != nil {
		return "", fmt.Errorf("create liveness session: %w", ParseAPIError(err))
	}

	return aws.ToString(output.SessionId), nil
}

// GetSessionResults retrieves the outcome of a liveness session.
// IsLive is true only when the session succeeded and its confidence exceeds
// the configured threshold.
func (p *Provider) GetSessionResults(ctx context.Context, sessionID string) (*domain.LivenessResult, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: empty session id", ErrSessionNotFound)
	}

	input := &rekognition.GetFaceLivenessSessionResultsInput{
		SessionId: aws.String(sessionID),
	}

	output, err := p.client.rekognition.GetFaceLivenessSessionResults(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("get liveness session results: %w", ParseAPIError(err))
	}

	status := string(output.Status)
	confidence := float64(aws.ToFloat32(output.Confidence))

	result := &domain.LivenessResult{
		SessionID:  aws.ToString(output.SessionId),
		Status:     status,
		Confidence: confidence,
		IsLive:     status == domain.SessionStatusSucceeded && confidence > p.livenessThreshold,
	}

	if output.ReferenceImage != nil {
		img := toCapturedImage(*output.ReferenceImage)
		result.ReferenceImage = &img
	}

	result.AuditImages = make([]domain.CapturedImage, 0, len(output.AuditImages))
	for _, audit := range output.AuditImages {
		result.AuditImages = append(result.AuditImages, toCapturedImage(audit))
	}

	if output.Challenge != nil {
		result.Challenge = &domain.Challenge{
			Type:    string(output.Challenge.Type),
			Version: aws.ToString(output.Challenge.Version),
		}
	}

	return result, nil
}

// CompareFaces compares the face in sourceImage against targetImage using the
// Rekognition CompareFaces API. Candidate matches come back sorted by
// similarity descending, as Rekognition returns them. An empty slice (no
// error) means no face in the target reached the threshold.
func (p *Provider) CompareFaces(ctx context.Context, sourceImage, targetImage []byte, similarityThreshold float64) ([]domain.CandidateMatch, error) {
	if err := validateImage(sourceImage); err != nil {
		return nil, fmt.Errorf("source image: %w", err)
	}
	if err := validateImage(targetImage); err != nil {
		return nil, fmt.Errorf("target image: %w", err)
	}

	input := &rekognition.CompareFacesInput{
		SourceImage: &types.Image{
			Bytes: sourceImage,
		},
		TargetImage: &types.Image{
			Bytes: targetImage,
		},
		SimilarityThreshold: aws.Float32(float32(similarityThreshold)),
	}

	output, err := p.client.rekognition.CompareFaces(ctx, input)
	if err != nil {
		if parsedErr := ParseNoFaceError(err); parsedErr != err {
			return nil, parsedErr
		}
		return nil, fmt.Errorf("compare faces: %w", ParseAPIError(err))
	}

	matches := make([]domain.CandidateMatch, 0, len(output.FaceMatches))
	for _, match := range output.FaceMatches {
		candidate := domain.CandidateMatch{
			Similarity: float64(aws.ToFloat32(match.Similarity)),
		}
		if match.Face != nil {
			candidate.Face = domain.MatchedFace{
				Box:        toBoundingBox(match.Face.BoundingBox),
				Confidence: float64(aws.ToFloat32(match.Face.Confidence)),
			}
		}
		matches = append(matches, candidate)
	}

	return matches, nil
}

func toCapturedImage(img types.AuditImage) domain.CapturedImage {
	captured := domain.CapturedImage{
		Box:   toBoundingBox(img.BoundingBox),
		Bytes: img.Bytes,
	}

	if img.S3Object != nil {
		captured.S3Object = &domain.S3ObjectRef{
			Bucket:  aws.ToString(img.S3Object.Bucket),
			Name:    aws.ToString(img.S3Object.Name),
			Version: aws.ToString(img.S3Object.Version),
		}
	}

	return captured
}

func toBoundingBox(box *types.BoundingBox) domain.BoundingBox {
	if box == nil {
		return domain.BoundingBox{}
	}
	return domain.BoundingBox{
		Left:   float64(aws.ToFloat32(box.Left)),
		Top:    float64(aws.ToFloat32(box.Top)),
		Width:  float64(aws.ToFloat32(box.Width)),
		Height: float64(aws.ToFloat32(box.Height)),
	}
}
