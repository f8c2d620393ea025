package rekognition

import "errors"

var (
	// ErrSessionNotFound indicates that the liveness session ID does not exist or has expired
	ErrSessionNotFound = errors.New("liveness session not found")

	// ErrInvalidCredentials indicates that AWS credentials are invalid or missing
	ErrInvalidCredentials = errors.New("invalid or missing AWS credentials")

	// ErrNoFaceDetected indicates that no face was found in the provided image
	ErrNoFaceDetected = errors.New("no face detected in image")

	// ErrInvalidImage indicates that the image payload is empty, too small or too large
	ErrInvalidImage = errors.New("invalid image data")

	// ErrThrottled indicates the Rekognition API rejected the call due to rate limiting
	ErrThrottled = errors.New("rekognition request throttled")
)
