package domain

// Liveness session status values as reported by the provider.
const (
	SessionStatusCreated    = "CREATED"
	SessionStatusInProgress = "IN_PROGRESS"
	SessionStatusSucceeded  = "SUCCEEDED"
	SessionStatusFailed     = "FAILED"
	SessionStatusExpired    = "EXPIRED"
)

// S3ObjectRef is a remote locator for a captured image stored by the
// provider instead of being returned inline.
type S3ObjectRef struct {
	Bucket  string `json:"bucket"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// CapturedImage is a frame captured during a liveness session. It carries
// the detected face bounding box plus either inline image bytes or a remote
// object locator, mirroring what the provider returns.
type CapturedImage struct {
	Box      BoundingBox  `json:"bounding_box"`
	Bytes    []byte       `json:"bytes,omitempty"`
	S3Object *S3ObjectRef `json:"s3_object,omitempty"`
}

// Challenge describes the liveness challenge the user completed.
type Challenge struct {
	Type    string `json:"type"`
	Version string `json:"version,omitempty"`
}

// LivenessResult is the outcome of a completed (or still running) liveness
// session. Confidence is expressed in the provider's 0-100 range. IsLive is
// derived: status SUCCEEDED and confidence above the configured threshold.
type LivenessResult struct {
	SessionID      string          `json:"session_id"`
	Status         string          `json:"status"`
	Confidence     float64         `json:"confidence"`
	IsLive         bool            `json:"is_live"`
	ReferenceImage *CapturedImage  `json:"reference_image,omitempty"`
	AuditImages    []CapturedImage `json:"audit_images,omitempty"`
	Challenge      *Challenge      `json:"challenge,omitempty"`
}
