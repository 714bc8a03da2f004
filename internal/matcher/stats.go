package matcher

import "gst-reconciliation/internal/domain"

// Summarize reduces a result set to summary counters. Match rate counts
// only exact matches; everything else needs some form of review.
func Summarize(results []domain.MatchResult) domain.Stats {
	stats := domain.Stats{TotalRecords: len(results)}

	for _, r := range results {
		switch r.Status {
		case domain.StatusExactMatch:
			stats.ExactMatch++
		case domain.StatusAmountMismatch:
			stats.AmountMismatch++
		case domain.StatusDateMismatch:
			stats.DateMismatch++
		case domain.StatusGSTINMismatch:
			stats.GSTINMismatch++
		case domain.StatusPROnly:
			stats.PROnly++
		case domain.StatusGSTR2BOnly:
			stats.GSTR2BOnly++
		case domain.StatusDuplicate:
			stats.Duplicate++
		}
	}

	if stats.TotalRecords > 0 {
		stats.MatchRate = float64(stats.ExactMatch) / float64(stats.TotalRecords) * 100
	}
	stats.PendingReview = stats.AmountMismatch + stats.GSTINMismatch + stats.PROnly + stats.GSTR2BOnly
	stats.Discrepancies = stats.TotalRecords - stats.ExactMatch

	return stats
}
