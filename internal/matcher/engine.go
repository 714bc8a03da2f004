package matcher

import "gst-reconciliation/internal/domain"

// Engine reconciles one Purchase Register against one GSTR-2B statement.
// An Engine carries per-run bookkeeping of consumed invoices, so callers
// must create a fresh instance per reconciliation run; sharing one across
// concurrent runs would leak matched-invoice state between unrelated
// clients.
type Engine struct {
	config        Config
	matchedPR     map[string]bool
	matchedGSTR2B map[string]bool
}

// NewEngine creates an engine with the given tolerance configuration.
func NewEngine(config Config) *Engine {
	return &Engine{config: config}
}

// Reconcile matches Purchase Register invoices against GSTR-2B invoices and
// returns one MatchResult per input invoice across both sides.
//
// Result ordering is fixed for reproducibility: matched pairs in Purchase
// Register order, then pr_only leftovers in Purchase Register order, then
// gstr2b_only leftovers in GSTR-2B order.
func (e *Engine) Reconcile(prInvoices, gstr2bInvoices []domain.Invoice) []domain.MatchResult {
	results := make([]domain.MatchResult, 0, len(prInvoices)+len(gstr2bInvoices))
	e.matchedPR = make(map[string]bool, len(prInvoices))
	e.matchedGSTR2B = make(map[string]bool, len(gstr2bInvoices))

	index := buildIndex(gstr2bInvoices)

	// Phase 1: match each PR invoice against its candidate bucket, keeping
	// the highest-confidence classification. Ties keep the earliest
	// candidate in bucket order (strict > comparison), which pins the
	// tie-break for determinism.
	for _, prInv := range prInvoices {
		key := NormalizeInvoiceNo(prInv.InvoiceNo)
		if key == "" {
			continue
		}

		var best *domain.MatchResult
		for _, candidate := range index[key] {
			if e.matchedGSTR2B[candidate.ID] {
				continue
			}
			match := e.classifyPair(prInv, candidate)
			if match != nil && (best == nil || match.ConfidenceScore > best.ConfidenceScore) {
				best = match
			}
		}

		if best != nil {
			results = append(results, *best)
			e.matchedPR[best.PRInvoiceID] = true
			e.matchedGSTR2B[best.GSTR2BInvoiceID] = true
		}
	}

	// Phase 2: unmatched PR invoices, including those with unusable invoice
	// numbers. Deltas are the invoice's own values: the absent side is zero.
	for _, prInv := range prInvoices {
		if e.matchedPR[prInv.ID] {
			continue
		}
		results = append(results, domain.MatchResult{
			Status:          domain.StatusPROnly,
			PRInvoiceID:     prInv.ID,
			ConfidenceScore: confidenceOneSided,
			MatchRule:       rulePROnly,
			TaxableDiff:     prInv.TaxableValue,
			IGSTDiff:        prInv.IGST,
			CGSTDiff:        prInv.CGST,
			SGSTDiff:        prInv.SGST,
			TotalDiff:       prInv.TotalValue(),
		})
	}

	// Phase 3: unmatched GSTR-2B invoices. Deltas stay PR-minus-GSTR2B, so
	// the invoice's own values are negated.
	for _, gstr2bInv := range gstr2bInvoices {
		if e.matchedGSTR2B[gstr2bInv.ID] {
			continue
		}
		results = append(results, domain.MatchResult{
			Status:          domain.StatusGSTR2BOnly,
			GSTR2BInvoiceID: gstr2bInv.ID,
			ConfidenceScore: confidenceOneSided,
			MatchRule:       ruleGSTR2BOnly,
			TaxableDiff:     gstr2bInv.TaxableValue.Neg(),
			IGSTDiff:        gstr2bInv.IGST.Neg(),
			CGSTDiff:        gstr2bInv.CGST.Neg(),
			SGSTDiff:        gstr2bInv.SGST.Neg(),
			TotalDiff:       gstr2bInv.TotalValue().Neg(),
		})
	}

	return results
}
