package rekognition

// Config holds configuration for the AWS Rekognition provider
type Config struct {
	// Region is the AWS region where Rekognition will be used (e.g., "us-east-1").
	// Face Liveness is not available in every region; check AWS docs.
	Region string

	// AuditImagesLimit is the number of audit images requested per liveness
	// session (0-4, AWS limit)
	AuditImagesLimit int32
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		Region:           "us-east-1",
		AuditImagesLimit: 4,
	}
}
