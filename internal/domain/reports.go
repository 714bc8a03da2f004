package domain

import "github.com/shopspring/decimal"

// MatchStatus classifies the outcome of reconciling one or two invoices.
type MatchStatus string

const (
	StatusExactMatch     MatchStatus = "exact_match"
	StatusAmountMismatch MatchStatus = "amount_mismatch"
	StatusGSTINMismatch  MatchStatus = "gstin_mismatch"
	StatusPROnly         MatchStatus = "pr_only"
	StatusGSTR2BOnly     MatchStatus = "gstr2b_only"

	// Reserved statuses. They exist in downstream reporting schemas but the
	// matching rules never emit them; date tolerance and duplicate detection
	// are not part of the authoritative match path.
	StatusDateMismatch MatchStatus = "date_mismatch"
	StatusDuplicate    MatchStatus = "duplicate"
)

// String returns the string representation of MatchStatus.
func (s MatchStatus) String() string {
	return string(s)
}

// MatchResult is the classified outcome for one invoice (one-sided) or one
// pair of invoices. Exactly one of PRInvoiceID/GSTR2BInvoiceID is empty for
// pr_only and gstr2b_only outcomes; both are set otherwise. Results are
// created once per reconciliation run and never mutated.
type MatchResult struct {
	Status          MatchStatus `json:"status"`
	PRInvoiceID     string      `json:"pr_invoice_id,omitempty"`
	GSTR2BInvoiceID string      `json:"gstr2b_invoice_id,omitempty"`

	// ConfidenceScore is a rule-strength score in [0,100], not a probability.
	ConfidenceScore float64 `json:"confidence_score"`

	// MatchRule names the classification rule that fired, for audit.
	MatchRule string `json:"match_rule"`

	// Signed deltas, always Purchase Register minus GSTR-2B, computed on the
	// raw values so consumers see the exact residual even inside tolerance.
	TaxableDiff decimal.Decimal `json:"taxable_diff"`
	IGSTDiff    decimal.Decimal `json:"igst_diff"`
	CGSTDiff    decimal.Decimal `json:"cgst_diff"`
	SGSTDiff    decimal.Decimal `json:"sgst_diff"`
	TotalDiff   decimal.Decimal `json:"total_diff"`
}

// Stats summarizes a full result set.
type Stats struct {
	TotalRecords   int     `json:"total_records"`
	ExactMatch     int     `json:"exact_match"`
	AmountMismatch int     `json:"amount_mismatch"`
	DateMismatch   int     `json:"date_mismatch"`
	GSTINMismatch  int     `json:"gstin_mismatch"`
	PROnly         int     `json:"pr_only"`
	GSTR2BOnly     int     `json:"gstr2b_only"`
	Duplicate      int     `json:"duplicate"`
	MatchRate      float64 `json:"match_rate"`
	PendingReview  int     `json:"pending_review"`
	Discrepancies  int     `json:"discrepancies"`
}

// ReconciliationReport is the top-level structure for the final JSON output.
type ReconciliationReport struct {
	Summary Stats         `json:"summary"`
	Results []MatchResult `json:"results"`
}
