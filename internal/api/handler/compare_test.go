package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

// MockComparisonService is a mock implementation of ComparisonService
type MockComparisonService struct {
	mock.Mock
}

func (m *MockComparisonService) Compare(ctx context.Context, sourceImage, targetImage []byte, threshold float64) ([]domain.CandidateMatch, error) {
	args := m.Called(ctx, sourceImage, targetImage, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateMatch), args.Error(1)
}

func TestCompareHandler_Compare(t *testing.T) {
	tests := []struct {
		name           string
		fields         map[string]string
		files          map[string][]byte
		setupMock      func(*MockComparisonService)
		expectedStatus int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name: "match found",
			files: map[string][]byte{
				"source_image": make([]byte, 5000),
				"target_image": make([]byte, 5000),
			},
			setupMock: func(m *MockComparisonService) {
				m.On("Compare", mock.Anything, mock.Anything, mock.Anything, 80.0).Return([]domain.CandidateMatch{
					{Similarity: 97.3, Face: domain.MatchedFace{Confidence: 99.9}},
					{Similarity: 85.1, Face: domain.MatchedFace{Confidence: 99.2}},
				}, nil)
			},
			expectedStatus: 200,
			checkResponse: func(t *testing.T, body []byte) {
				var resp CompareResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.True(t, resp.MatchFound)
				assert.Equal(t, 97.3, resp.BestSimilarity)
				assert.Equal(t, 2, resp.Count)
				assert.Len(t, resp.Matches, 2)
			},
		},
		{
			name: "no match",
			files: map[string][]byte{
				"source_image": make([]byte, 5000),
				"target_image": make([]byte, 5000),
			},
			setupMock: func(m *MockComparisonService) {
				m.On("Compare", mock.Anything, mock.Anything, mock.Anything, 80.0).Return([]domain.CandidateMatch{}, nil)
			},
			expectedStatus: 200,
			checkResponse: func(t *testing.T, body []byte) {
				var resp CompareResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.False(t, resp.MatchFound)
				assert.Equal(t, 0.0, resp.BestSimilarity)
			},
		},
		{
			name: "custom threshold forwarded",
			fields: map[string]string{
				"threshold": "95",
			},
			files: map[string][]byte{
				"source_image": make([]byte, 5000),
				"target_image": make([]byte, 5000),
			},
			setupMock: func(m *MockComparisonService) {
				m.On("Compare", mock.Anything, mock.Anything, mock.Anything, 95.0).Return([]domain.CandidateMatch{}, nil)
			},
			expectedStatus: 200,
		},
		{
			name: "missing target image",
			files: map[string][]byte{
				"source_image": make([]byte, 5000),
			},
			setupMock:      func(m *MockComparisonService) {},
			expectedStatus: 422,
		},
		{
			name: "no face detected",
			files: map[string][]byte{
				"source_image": make([]byte, 5000),
				"target_image": make([]byte, 5000),
			},
			setupMock: func(m *MockComparisonService) {
				m.On("Compare", mock.Anything, mock.Anything, mock.Anything, 80.0).Return(nil, domain.ErrNoFaceDetected)
			},
			expectedStatus: 422,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockComparisonService{}
			tt.setupMock(mockService)

			h := NewCompareHandler(mockService, testLogger())
			app := newTestApp()
			app.Post("/v1/faces/compare", h.Compare)

			body, contentType := multipartBody(t, tt.fields, tt.files)

			req := httptest.NewRequest("POST", "/v1/faces/compare", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				respBody, _ := io.ReadAll(resp.Body)
				tt.checkResponse(t, respBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}
