package rekognition

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/rekognition"
)

// mockRekognitionAPI is a mock implementation of RekognitionAPI for testing
type mockRekognitionAPI struct {
	createFaceLivenessSessionFunc     func(ctx context.Context, params *rekognition.CreateFaceLivenessSessionInput, optFns ...func(*rekognition.Options)) (*rekognition.CreateFaceLivenessSessionOutput, error)
	getFaceLivenessSessionResultsFunc func(ctx context.Context, params *rekognition.GetFaceLivenessSessionResultsInput, optFns ...func(*rekognition.Options)) (*rekognition.GetFaceLivenessSessionResultsOutput, error)
	compareFacesFunc                  func(ctx context.Context, params *rekognition.CompareFacesInput, optFns ...func(*rekognition.Options)) (*rekognition.CompareFacesOutput, error)
}

func (m *mockRekognitionAPI) CreateFaceLivenessSession(ctx context.Context, params *rekognition.CreateFaceLivenessSessionInput, optFns ...func(*rekognition.Options)) (*rekognition.CreateFaceLivenessSessionOutput, error) {
	if m.createFaceLivenessSessionFunc != nil {
		return m.createFaceLivenessSessionFunc(ctx, params, optFns...)
	}
	return &rekognition.CreateFaceLivenessSessionOutput{}, nil
}

func (m *mockRekognitionAPI) GetFaceLivenessSessionResults(ctx context.Context, params *rekognition.GetFaceLivenessSessionResultsInput, optFns ...func(*rekognition.Options)) (*rekognition.GetFaceLivenessSessionResultsOutput, error) {
	if m.getFaceLivenessSessionResultsFunc != nil {
		return m.getFaceLivenessSessionResultsFunc(ctx, params, optFns...)
	}
	return &rekognition.GetFaceLivenessSessionResultsOutput{}, nil
}

func (m *mockRekognitionAPI) CompareFaces(ctx context.Context, params *rekognition.CompareFacesInput, optFns ...func(*rekognition.Options)) (*rekognition.CompareFacesOutput, error) {
	if m.compareFacesFunc != nil {
		return m.compareFacesFunc(ctx, params, optFns...)
	}
	return &rekognition.CompareFacesOutput{}, nil
}

// newTestProvider builds a Provider backed by the given mock, bypassing AWS
// credential loading
func newTestProvider(mock *mockRekognitionAPI, opts ...ProviderOption) *Provider {
	p := &Provider{
		client: &Client{
			rekognition: mock,
			config:      DefaultConfig(),
		},
		livenessThreshold: defaultLivenessThreshold,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}
