package domain

import (
	"fmt"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code, so errors.Is works across WithError copies
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Err:        err,
	}
}

// Pre-defined errors
var (
	ErrInternal = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}

	ErrBadRequest = &AppError{
		Code:       "BAD_REQUEST",
		Message:    "Invalid request",
		StatusCode: 400,
	}

	ErrUnauthorized = &AppError{
		Code:       "UNAUTHORIZED",
		Message:    "Invalid or missing API key",
		StatusCode: 401,
	}

	ErrNotFound = &AppError{
		Code:       "NOT_FOUND",
		Message:    "Resource not found",
		StatusCode: 404,
	}

	ErrValidationFailed = &AppError{
		Code:       "VALIDATION_FAILED",
		Message:    "Request validation failed",
		StatusCode: 422,
	}

	ErrInvalidImage = &AppError{
		Code:       "INVALID_IMAGE",
		Message:    "Invalid image format or corrupted file",
		StatusCode: 422,
	}

	ErrInvalidDimensions = &AppError{
		Code:       "INVALID_DIMENSIONS",
		Message:    "Image dimensions must be positive",
		StatusCode: 422,
	}

	ErrInvalidThreshold = &AppError{
		Code:       "INVALID_THRESHOLD",
		Message:    "Similarity threshold must be between 0 and 100",
		StatusCode: 422,
	}

	ErrSessionNotFound = &AppError{
		Code:       "SESSION_NOT_FOUND",
		Message:    "Liveness session not found",
		StatusCode: 404,
	}

	ErrSessionCreateFailed = &AppError{
		Code:       "SESSION_CREATE_FAILED",
		Message:    "Could not create a liveness session",
		StatusCode: 502,
	}

	ErrNoFaceDetected = &AppError{
		Code:       "NO_FACE_DETECTED",
		Message:    "No face detected in the image",
		StatusCode: 422,
	}

	ErrNoReferenceImage = &AppError{
		Code:       "NO_REFERENCE_IMAGE",
		Message:    "Liveness session has no reference image to identify",
		StatusCode: 422,
	}

	ErrReferenceNotFound = &AppError{
		Code:       "REFERENCE_NOT_FOUND",
		Message:    "Reference identity not found",
		StatusCode: 404,
	}

	ErrReferenceExists = &AppError{
		Code:       "REFERENCE_ALREADY_EXISTS",
		Message:    "A reference identity with this name already exists",
		StatusCode: 409,
	}

	ErrNoReferences = &AppError{
		Code:       "NO_REFERENCES",
		Message:    "No reference identities registered for comparison",
		StatusCode: 422,
	}
)
