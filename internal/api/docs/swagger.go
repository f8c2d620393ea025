package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// CreateSessionResponse represents the response for liveness session creation
type CreateSessionResponse struct {
	SessionID string `json:"session_id" example:"6e1f7b8a-0c5d-4b3e-9f2a-8d7c6b5a4e3d"`
}

// BoundingBoxData represents a normalized face bounding box
type BoundingBoxData struct {
	Left   float64 `json:"left" example:"0.25"`
	Top    float64 `json:"top" example:"0.2"`
	Width  float64 `json:"width" example:"0.5"`
	Height float64 `json:"height" example:"0.6"`
}

// LivenessData represents the liveness verdict for a session
type LivenessData struct {
	SessionID  string  `json:"session_id" example:"6e1f7b8a-0c5d-4b3e-9f2a-8d7c6b5a4e3d"`
	Status     string  `json:"status" example:"SUCCEEDED"`
	Confidence float64 `json:"confidence" example:"96.5"`
	IsLive     bool    `json:"is_live" example:"true"`
}

// ConsistencyData represents the geometric consistency analysis
type ConsistencyData struct {
	HasSubject       bool     `json:"has_subject" example:"true"`
	AuditCount       int      `json:"audit_count" example:"4"`
	AverageQuality   float64  `json:"average_quality" example:"94"`
	ConsistencyScore float64  `json:"consistency_score" example:"0.92"`
	Recommendations  []string `json:"recommendations" example:"Face detection quality is good"`
}

// SessionResultsResponse represents the response for session results
type SessionResultsResponse struct {
	Liveness    LivenessData    `json:"liveness"`
	Consistency ConsistencyData `json:"consistency"`
}

// CandidateMatchData represents a single face match
type CandidateMatchData struct {
	Similarity float64         `json:"similarity" example:"97.3"`
	Box        BoundingBoxData `json:"bounding_box"`
	Confidence float64         `json:"confidence" example:"99.9"`
}

// CompareFacesResponse represents the response for face comparison
type CompareFacesResponse struct {
	MatchFound     bool                 `json:"match_found" example:"true"`
	BestSimilarity float64              `json:"best_similarity" example:"97.3"`
	Count          int                  `json:"count" example:"1"`
	Matches        []CandidateMatchData `json:"matches"`
}

// ReferenceData represents a registered reference identity
type ReferenceData struct {
	ID        string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string `json:"name" example:"Alice"`
	CreatedAt string `json:"created_at" example:"2024-01-01T00:00:00Z"`
}

// ListReferencesResponse wraps the list of registered references
type ListReferencesResponse struct {
	References []ReferenceData `json:"references"`
	Count      int             `json:"count" example:"3"`
}

// OutcomeSummaryData represents one comparison outcome in a report
type OutcomeSummaryData struct {
	ReferenceID   string  `json:"reference_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ReferenceName string  `json:"reference_name" example:"Alice"`
	Success       bool    `json:"success" example:"true"`
	TopSimilarity float64 `json:"top_similarity" example:"92.35"`
	Error         string  `json:"error,omitempty"`
}

// IdentificationReportResponse represents the identification report
type IdentificationReportResponse struct {
	IsIdentified          bool                 `json:"is_identified" example:"true"`
	TotalComparisons      int                  `json:"total_comparisons" example:"3"`
	SuccessfulComparisons int                  `json:"successful_comparisons" example:"3"`
	Outcomes              []OutcomeSummaryData `json:"outcomes"`
	Recommendation        string               `json:"recommendation" example:"Identified as Alice with 92.35% similarity"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code" example:"VALIDATION_FAILED"`
	Message string `json:"message" example:"Request validation failed"`
}

// EmptyResponse represents no content response (204)
type EmptyResponse struct{}

// NewSwagger creates and configures the Swagger documentation
func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "Faceproof API",
		Version:     "v1.0.0",
		Description: "Face liveness verification and identification API backed by AWS Rekognition Face Liveness",
		Host:        "localhost:3000",
		Path:        "/v1",
	})

	endpoints := []*endpoint.EndPoint{
		// POST /v1/liveness/sessions - Create Liveness Session
		endpoint.New(
			endpoint.POST,
			"/liveness/sessions",
			endpoint.WithTags("Liveness"),
			endpoint.WithSummary("Start a liveness session"),
			endpoint.WithDescription("Creates a new face liveness session. The returned session_id is passed to the client-side liveness widget."),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(CreateSessionResponse{}, "201", "Session created successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing API key"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "SESSION_CREATE_FAILED", Message: "Could not create a liveness session"}, "502", "Bad Gateway"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"ApiKeyAuth": {}}}),
		),

		// GET /v1/liveness/sessions/:session_id/results - Get Session Results
		endpoint.New(
			endpoint.GET,
			"/liveness/sessions/{session_id}/results",
			endpoint.WithTags("Liveness"),
			endpoint.WithSummary("Get liveness session results"),
			endpoint.WithDescription("Returns the liveness verdict plus a geometric consistency analysis of the captured frames."),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("session_id", parameter.Path, parameter.WithDescription("Liveness session ID")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(SessionResultsResponse{}, "200", "Results retrieved successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing API key"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "SESSION_NOT_FOUND", Message: "Liveness session not found"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"ApiKeyAuth": {}}}),
		),

		// POST /v1/faces/compare - Compare Faces
		endpoint.New(
			endpoint.POST,
			"/faces/compare",
			endpoint.WithTags("Faces"),
			endpoint.WithSummary("Compare two face images"),
			endpoint.WithDescription("Compares the face in source_image against target_image and returns candidate matches above the threshold."),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("threshold", parameter.Query, parameter.WithDescription("Minimum similarity threshold (0-100, default: 80)")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(CompareFacesResponse{}, "200", "Comparison completed successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "Invalid request"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing API key"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "NO_FACE_DETECTED", Message: "No face detected in image"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "INVALID_THRESHOLD", Message: "Similarity threshold must be between 0 and 100"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"ApiKeyAuth": {}}}),
		),

		// POST /v1/references - Register Reference
		endpoint.New(
			endpoint.POST,
			"/references",
			endpoint.WithTags("References"),
			endpoint.WithSummary("Register a reference identity"),
			endpoint.WithDescription("Registers a named reference image for identification. Names are unique (case-insensitive)."),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ReferenceData{}, "201", "Reference registered successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "name and image are required"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing API key"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "REFERENCE_ALREADY_EXISTS", Message: "A reference identity with this name already exists"}, "409", "Conflict"),
				response.New(ErrorResponse{Code: "INVALID_IMAGE", Message: "Invalid image format or corrupted file"}, "422", "Unprocessable Entity"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"ApiKeyAuth": {}}}),
		),

		// GET /v1/references - List References
		endpoint.New(
			endpoint.GET,
			"/references",
			endpoint.WithTags("References"),
			endpoint.WithSummary("List registered references"),
			endpoint.WithDescription("Returns all registered reference identities in registration order, without image payloads."),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ListReferencesResponse{}, "200", "References retrieved successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing API key"}, "401", "Unauthorized"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"ApiKeyAuth": {}}}),
		),

		// DELETE /v1/references/:id - Delete Reference
		endpoint.New(
			endpoint.DELETE,
			"/references/{id}",
			endpoint.WithTags("References"),
			endpoint.WithSummary("Delete a reference identity"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Reference UUID")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EmptyResponse{}, "204", "Reference deleted successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing API key"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "REFERENCE_NOT_FOUND", Message: "Reference identity not found"}, "404", "Not Found"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"ApiKeyAuth": {}}}),
		),

		// POST /v1/identify - Identify Person
		endpoint.New(
			endpoint.POST,
			"/identify",
			endpoint.WithTags("Identification"),
			endpoint.WithSummary("Identify a person against registered references"),
			endpoint.WithDescription("Identifies the person in the uploaded image, or in the reference frame of a finished liveness session when session_id is given, by comparing against every registered reference."),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("session_id", parameter.Query, parameter.WithDescription("Liveness session to identify from (takes precedence over image)")),
				parameter.StrParam("threshold", parameter.Query, parameter.WithDescription("Minimum similarity threshold (0-100, default: 80)")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(IdentificationReportResponse{}, "200", "Identification completed successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "Invalid request"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing API key"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "SESSION_NOT_FOUND", Message: "Liveness session not found"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "NO_REFERENCE_IMAGE", Message: "Liveness session has no reference image to identify"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "NO_REFERENCES", Message: "No reference identities registered for comparison"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"ApiKeyAuth": {}}}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
