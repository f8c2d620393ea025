package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

func TestAnalyzeConsistency_NoSubject(t *testing.T) {
	report := AnalyzeConsistency(nil, nil)

	assert.False(t, report.HasSubject)
	assert.Equal(t, 0, report.AuditCount)
	assert.Equal(t, 0.0, report.AverageQuality)
	assert.Equal(t, 0.0, report.ConsistencyScore)
	assert.Equal(t, []string{"No reference image available"}, report.Recommendations)
}

func TestAnalyzeConsistency_SmallCenteredSubject(t *testing.T) {
	// area 0.04 -> quality 36: both the low-quality and too-small rules
	// fire, the "good" message must not.
	subject := box(0.4, 0.4, 0.2, 0.2)

	report := AnalyzeConsistency(&subject, nil)

	assert.True(t, report.HasSubject)
	assert.Equal(t, 0, report.AuditCount)
	assert.InDelta(t, 36, report.AverageQuality, 1e-9)
	assert.Equal(t, 0.0, report.ConsistencyScore)
	assert.Equal(t, []string{
		"Consider retaking — face quality could be improved",
		"Face appears too small — move closer to camera",
	}, report.Recommendations)
}

func TestAnalyzeConsistency_GoodDetection(t *testing.T) {
	// area 0.16, centered, band bonus: quality 94. Audits identical to the
	// subject give consistency 1.0, so no rule fires.
	subject := box(0.3, 0.3, 0.4, 0.4)
	audits := []domain.BoundingBox{subject, subject}

	report := AnalyzeConsistency(&subject, audits)

	assert.Equal(t, 2, report.AuditCount)
	assert.InDelta(t, 94, report.AverageQuality, 1e-9)
	assert.InDelta(t, 1.0, report.ConsistencyScore, 1e-12)
	assert.Equal(t, []string{"Face detection quality is good"}, report.Recommendations)
}

func TestAnalyzeConsistency_InconsistentAudits(t *testing.T) {
	subject := box(0.3, 0.3, 0.4, 0.4)
	audits := []domain.BoundingBox{
		box(0.0, 0.0, 0.4, 0.4), // drifted detection, low IoU
	}

	report := AnalyzeConsistency(&subject, audits)

	assert.Less(t, report.ConsistencyScore, 0.7)
	assert.Contains(t, report.Recommendations, "Inconsistent face detection across images")
}

func TestAnalyzeConsistency_LargeOffCenterSubject(t *testing.T) {
	// area 0.64, off-center (center at 0.75): quality 70 so the
	// low-quality rule stays silent while off-center and too-large fire.
	subject := box(0.35, 0.35, 0.8, 0.8)

	report := AnalyzeConsistency(&subject, nil)

	assert.Equal(t, []string{
		"Face should be more centered in the frame",
		"Face appears too large — move away from camera",
	}, report.Recommendations)
	assert.InDelta(t, 70, report.AverageQuality, 1e-9)
}

func TestAnalyzeConsistency_AverageIncludesSubject(t *testing.T) {
	subject := box(0.3, 0.3, 0.4, 0.4) // quality 94
	audits := []domain.BoundingBox{
		box(0.4, 0.4, 0.2, 0.2), // quality 36
	}

	report := AnalyzeConsistency(&subject, audits)

	assert.InDelta(t, 65, report.AverageQuality, 1e-9)
}
