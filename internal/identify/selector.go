// Package identify selects the best reference match from a list of
// comparison outcomes and assembles the identification report. It performs
// no network calls; outcomes are produced upstream by the comparison
// provider.
package identify

import (
	"fmt"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

// DefaultSimilarityThreshold is the conventional minimum similarity (0-100)
// a top candidate must reach to qualify as a match.
const DefaultSimilarityThreshold = 80

// SelectBestMatch scans outcomes in input order and returns the one whose
// first candidate has the strictly highest similarity among those reaching
// minSimilarity. Only successful outcomes with at least one candidate are
// considered, and only their first candidate: the provider contract
// guarantees candidate lists are pre-sorted descending by similarity.
// Ties keep the first-encountered outcome. Returns nil when nothing
// qualifies.
func SelectBestMatch(outcomes []domain.ComparisonOutcome, minSimilarity float64) *domain.ComparisonOutcome {
	var best *domain.ComparisonOutcome
	bestSimilarity := 0.0

	for i := range outcomes {
		outcome := &outcomes[i]
		if !outcome.Success || len(outcome.Matches) == 0 {
			continue
		}

		similarity := outcome.Matches[0].Similarity
		if similarity < minSimilarity {
			continue
		}

		if best == nil || similarity > bestSimilarity {
			best = outcome
			bestSimilarity = similarity
		}
	}

	return best
}

// BuildReport aggregates a liveness result with the comparison outcomes
// into an identification report, using DefaultSimilarityThreshold to pick
// the best match.
func BuildReport(liveness *domain.LivenessResult, outcomes []domain.ComparisonOutcome) domain.IdentificationReport {
	return BuildReportWithThreshold(liveness, outcomes, DefaultSimilarityThreshold)
}

// BuildReportWithThreshold is BuildReport with an explicit minimum
// similarity for match selection.
func BuildReportWithThreshold(liveness *domain.LivenessResult, outcomes []domain.ComparisonOutcome, minSimilarity float64) domain.IdentificationReport {
	best := SelectBestMatch(outcomes, minSimilarity)

	successful := 0
	summaries := make([]domain.OutcomeSummary, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Success {
			successful++
		}
		summaries = append(summaries, domain.OutcomeSummary{
			ReferenceID:   outcome.ReferenceID.String(),
			ReferenceName: outcome.ReferenceName,
			Success:       outcome.Success,
			TopSimilarity: outcome.TopSimilarity(),
			Error:         outcome.Error,
		})
	}

	recommendation := "No matching person found in reference database"
	if best != nil {
		recommendation = fmt.Sprintf("Identified as %s with %.2f%% similarity",
			best.ReferenceName, best.Matches[0].Similarity)
	}

	return domain.IdentificationReport{
		IsIdentified:          best != nil,
		BestMatch:             best,
		TotalComparisons:      len(outcomes),
		SuccessfulComparisons: successful,
		Outcomes:              summaries,
		Recommendation:        recommendation,
		Liveness:              liveness,
	}
}
