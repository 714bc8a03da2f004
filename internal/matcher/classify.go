package matcher

import (
	"gst-reconciliation/internal/domain"

	"github.com/shopspring/decimal"
)

// Confidence scores per rule. These express rule strength for reviewer
// triage, not probabilities.
const (
	confidenceExactMatch     = 100.0
	confidenceAmountMismatch = 85.0
	confidenceGSTINMismatch  = 70.0
	confidenceOneSided       = 100.0
)

// Audit tags naming the rule that produced a result.
const (
	ruleExactMatch     = "EXACT_MATCH: GSTIN + Invoice No + All Amounts"
	ruleAmountMismatch = "AMOUNT_MISMATCH: GSTIN + Invoice No match, amounts differ"
	ruleGSTINMismatch  = "GSTIN_MISMATCH: Invoice No + Amounts match, GSTIN differs"
	rulePROnly         = "PR_ONLY: Invoice not found in GSTR-2B"
	ruleGSTR2BOnly     = "GSTR2B_ONLY: Invoice not found in Purchase Register"
)

// calculateDiffs computes the signed residuals between a pair, always
// Purchase Register minus GSTR-2B, on the raw amounts.
func calculateDiffs(pr, gstr2b domain.Invoice) (taxable, igst, cgst, sgst, total decimal.Decimal) {
	taxable = pr.TaxableValue.Sub(gstr2b.TaxableValue)
	igst = pr.IGST.Sub(gstr2b.IGST)
	cgst = pr.CGST.Sub(gstr2b.CGST)
	sgst = pr.SGST.Sub(gstr2b.SGST)
	total = pr.TotalValue().Sub(gstr2b.TotalValue())
	return
}

// classifyPair applies the decision table to one candidate pair. The caller
// guarantees both invoices share a normalized invoice number. Returns nil
// when neither GSTIN nor amounts agree; such a pair is not a match at all.
//
// Gating amounts are taxable value (relative-tolerant), IGST, CGST and SGST
// (absolute-tolerant). Cess is informational only and never gates a match.
func (e *Engine) classifyPair(pr, gstr2b domain.Invoice) *domain.MatchResult {
	gstinMatch := NormalizeGSTIN(pr.VendorGSTIN) == NormalizeGSTIN(gstr2b.VendorGSTIN)

	allAmountsMatch := e.config.AmountsEqual(pr.TaxableValue, gstr2b.TaxableValue, true) &&
		e.config.AmountsEqual(pr.IGST, gstr2b.IGST, false) &&
		e.config.AmountsEqual(pr.CGST, gstr2b.CGST, false) &&
		e.config.AmountsEqual(pr.SGST, gstr2b.SGST, false)

	var (
		status     domain.MatchStatus
		confidence float64
		rule       string
	)
	switch {
	case gstinMatch && allAmountsMatch:
		status, confidence, rule = domain.StatusExactMatch, confidenceExactMatch, ruleExactMatch
	case gstinMatch:
		status, confidence, rule = domain.StatusAmountMismatch, confidenceAmountMismatch, ruleAmountMismatch
	case allAmountsMatch:
		status, confidence, rule = domain.StatusGSTINMismatch, confidenceGSTINMismatch, ruleGSTINMismatch
	default:
		return nil
	}

	taxableDiff, igstDiff, cgstDiff, sgstDiff, totalDiff := calculateDiffs(pr, gstr2b)
	return &domain.MatchResult{
		Status:          status,
		PRInvoiceID:     pr.ID,
		GSTR2BInvoiceID: gstr2b.ID,
		ConfidenceScore: confidence,
		MatchRule:       rule,
		TaxableDiff:     taxableDiff,
		IGSTDiff:        igstDiff,
		CGSTDiff:        cgstDiff,
		SGSTDiff:        sgstDiff,
		TotalDiff:       totalDiff,
	}
}
