package geometry

import (
	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

// User-facing detection quality messages.
const (
	msgNoReference  = "No reference image available"
	msgLowQuality   = "Consider retaking — face quality could be improved"
	msgInconsistent = "Inconsistent face detection across images"
	msgOffCenter    = "Face should be more centered in the frame"
	msgTooSmall     = "Face appears too small — move closer to camera"
	msgTooLarge     = "Face appears too large — move away from camera"
	msgGood         = "Face detection quality is good"
)

// ConsistencyReport summarizes detection quality across the frames of a
// liveness session: the reference (subject) frame plus any audit frames.
type ConsistencyReport struct {
	HasSubject       bool     `json:"has_subject"`
	AuditCount       int      `json:"audit_count"`
	AverageQuality   float64  `json:"average_quality"`
	ConsistencyScore float64  `json:"consistency_score"`
	Recommendations  []string `json:"recommendations"`
}

// AnalyzeConsistency scores the subject box together with the audit boxes.
// AverageQuality is the mean QualityScore over the subject and all audits
// (subject always included); ConsistencyScore is the mean IoU between the
// subject and each audit box, 0 when there are none. Recommendation rules
// fire independently and keep their listed order; when none fires the
// single "good" message is returned. A nil subject yields a degraded but
// valid report, not an error.
func AnalyzeConsistency(subject *domain.BoundingBox, audits []domain.BoundingBox) ConsistencyReport {
	if subject == nil {
		return ConsistencyReport{
			Recommendations: []string{msgNoReference},
		}
	}

	qualitySum := float64(QualityScore(*subject))
	for _, box := range audits {
		qualitySum += float64(QualityScore(box))
	}
	averageQuality := qualitySum / float64(1+len(audits))

	consistencyScore := 0.0
	if len(audits) > 0 {
		iouSum := 0.0
		for _, box := range audits {
			iouSum += IntersectionOverUnion(*subject, box)
		}
		consistencyScore = iouSum / float64(len(audits))
	}

	var recommendations []string
	if averageQuality < 70 {
		recommendations = append(recommendations, msgLowQuality)
	}
	if len(audits) > 0 && consistencyScore < 0.7 {
		recommendations = append(recommendations, msgInconsistent)
	}
	if !IsCentered(*subject, DefaultCenterTolerance) {
		recommendations = append(recommendations, msgOffCenter)
	}
	if Area(*subject) < 0.1 {
		recommendations = append(recommendations, msgTooSmall)
	}
	if Area(*subject) > 0.5 {
		recommendations = append(recommendations, msgTooLarge)
	}
	if len(recommendations) == 0 {
		recommendations = []string{msgGood}
	}

	return ConsistencyReport{
		HasSubject:       true,
		AuditCount:       len(audits),
		AverageQuality:   averageQuality,
		ConsistencyScore: consistencyScore,
		Recommendations:  recommendations,
	}
}
