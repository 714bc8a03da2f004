package matcher

import (
	"encoding/json"
	"testing"

	"gst-reconciliation/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func makeInvoice(id, invoiceNo, gstin string, side domain.Side, taxable, igst, cgst, sgst int64) domain.Invoice {
	return domain.Invoice{
		ID:           id,
		InvoiceNo:    invoiceNo,
		VendorGSTIN:  gstin,
		TaxableValue: decimal.NewFromInt(taxable),
		IGST:         decimal.NewFromInt(igst),
		CGST:         decimal.NewFromInt(cgst),
		SGST:         decimal.NewFromInt(sgst),
		TotalTax:     decimal.NewFromInt(igst + cgst + sgst),
		Source:       side,
	}
}

func TestEngine_Reconcile_ExactMatch(t *testing.T) {
	pr := []domain.Invoice{
		makeInvoice("L1", "INV-01", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 1000, 180, 0, 0),
	}
	gstr2b := []domain.Invoice{
		makeInvoice("R1", "INV-01", "27ABCDE1234F1Z5", domain.SideGSTR2B, 1000, 180, 0, 0),
	}

	results := NewEngine(DefaultConfig()).Reconcile(pr, gstr2b)

	assert.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, domain.StatusExactMatch, r.Status)
	assert.Equal(t, "L1", r.PRInvoiceID)
	assert.Equal(t, "R1", r.GSTR2BInvoiceID)
	assert.Equal(t, 100.0, r.ConfidenceScore)
	assert.True(t, r.TaxableDiff.IsZero())
	assert.True(t, r.IGSTDiff.IsZero())
	assert.True(t, r.CGSTDiff.IsZero())
	assert.True(t, r.SGSTDiff.IsZero())
	assert.True(t, r.TotalDiff.IsZero())
}

func TestEngine_Reconcile_AmountMismatch(t *testing.T) {
	// 5% over, below the 10k materiality threshold, so only the absolute
	// tolerance applies and the amounts do not match.
	pr := []domain.Invoice{
		makeInvoice("L1", "INV-01", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 1000, 180, 0, 0),
	}
	gstr2b := []domain.Invoice{
		makeInvoice("R1", "INV-01", "27ABCDE1234F1Z5", domain.SideGSTR2B, 1050, 180, 0, 0),
	}

	results := NewEngine(DefaultConfig()).Reconcile(pr, gstr2b)

	assert.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, domain.StatusAmountMismatch, r.Status)
	assert.Equal(t, 85.0, r.ConfidenceScore)
	assert.True(t, r.TaxableDiff.Equal(decimal.NewFromInt(-50)), "taxable diff %s", r.TaxableDiff)
	assert.True(t, r.TotalDiff.Equal(decimal.NewFromInt(-50)), "total diff %s", r.TotalDiff)
}

func TestEngine_Reconcile_GSTINMismatchPrecedence(t *testing.T) {
	// Same invoice number and matching amounts but different registration
	// must classify as gstin_mismatch, never exact_match.
	pr := []domain.Invoice{
		makeInvoice("L1", "INV-01", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 1000, 180, 0, 0),
	}
	gstr2b := []domain.Invoice{
		makeInvoice("R1", "INV-01", "24QRSTU1234A1B2", domain.SideGSTR2B, 1000, 180, 0, 0),
	}

	results := NewEngine(DefaultConfig()).Reconcile(pr, gstr2b)

	assert.Len(t, results, 1)
	assert.Equal(t, domain.StatusGSTINMismatch, results[0].Status)
	assert.Equal(t, 70.0, results[0].ConfidenceScore)
}

func TestEngine_Reconcile_CessNotGating(t *testing.T) {
	pr := makeInvoice("L1", "INV-01", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 1000, 180, 0, 0)
	pr.Cess = decimal.NewFromInt(500)
	gstr2b := makeInvoice("R1", "INV-01", "27ABCDE1234F1Z5", domain.SideGSTR2B, 1000, 180, 0, 0)

	results := NewEngine(DefaultConfig()).Reconcile([]domain.Invoice{pr}, []domain.Invoice{gstr2b})

	assert.Len(t, results, 1)
	assert.Equal(t, domain.StatusExactMatch, results[0].Status)
}

func TestEngine_Reconcile_PROnly(t *testing.T) {
	pr := []domain.Invoice{
		makeInvoice("L1", "INV-02", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 1000, 180, 0, 0),
	}

	results := NewEngine(DefaultConfig()).Reconcile(pr, nil)

	assert.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, domain.StatusPROnly, r.Status)
	assert.Equal(t, "L1", r.PRInvoiceID)
	assert.Empty(t, r.GSTR2BInvoiceID)
	assert.Equal(t, 100.0, r.ConfidenceScore)
	assert.True(t, r.TaxableDiff.Equal(decimal.NewFromInt(1000)))
	assert.True(t, r.IGSTDiff.Equal(decimal.NewFromInt(180)))
	assert.True(t, r.TotalDiff.Equal(decimal.NewFromInt(1180)))
}

func TestEngine_Reconcile_GSTR2BOnlyNegatedDeltas(t *testing.T) {
	gstr2b := []domain.Invoice{
		makeInvoice("R1", "INV-09", "27ABCDE1234F1Z5", domain.SideGSTR2B, 1000, 180, 0, 0),
	}

	results := NewEngine(DefaultConfig()).Reconcile(nil, gstr2b)

	assert.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, domain.StatusGSTR2BOnly, r.Status)
	assert.Empty(t, r.PRInvoiceID)
	assert.Equal(t, "R1", r.GSTR2BInvoiceID)
	assert.True(t, r.TaxableDiff.Equal(decimal.NewFromInt(-1000)))
	assert.True(t, r.IGSTDiff.Equal(decimal.NewFromInt(-180)))
	assert.True(t, r.TotalDiff.Equal(decimal.NewFromInt(-1180)))
}

func TestEngine_Reconcile_NoDoubleConsumption(t *testing.T) {
	pr := []domain.Invoice{
		makeInvoice("L1", "INV-01", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 1000, 180, 0, 0),
	}
	gstr2b := []domain.Invoice{
		makeInvoice("R1", "INV-01", "27ABCDE1234F1Z5", domain.SideGSTR2B, 1000, 180, 0, 0),
		makeInvoice("R2", "INV-01", "27ABCDE1234F1Z5", domain.SideGSTR2B, 1000, 180, 0, 0),
	}

	results := NewEngine(DefaultConfig()).Reconcile(pr, gstr2b)

	assert.Len(t, results, 2)
	// First-seen wins the tie: R1 is consumed, R2 falls through.
	assert.Equal(t, domain.StatusExactMatch, results[0].Status)
	assert.Equal(t, "R1", results[0].GSTR2BInvoiceID)
	assert.Equal(t, domain.StatusGSTR2BOnly, results[1].Status)
	assert.Equal(t, "R2", results[1].GSTR2BInvoiceID)
}

func TestEngine_Reconcile_BestCandidateWins(t *testing.T) {
	// R1 shares the invoice number but differs in amounts (85 confidence);
	// R2 matches exactly (100). The exact candidate must win even though it
	// comes later in the bucket.
	pr := []domain.Invoice{
		makeInvoice("L1", "INV-01", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 1000, 180, 0, 0),
	}
	gstr2b := []domain.Invoice{
		makeInvoice("R1", "INV-01", "27ABCDE1234F1Z5", domain.SideGSTR2B, 2000, 180, 0, 0),
		makeInvoice("R2", "INV-01", "27ABCDE1234F1Z5", domain.SideGSTR2B, 1000, 180, 0, 0),
	}

	results := NewEngine(DefaultConfig()).Reconcile(pr, gstr2b)

	assert.Len(t, results, 2)
	assert.Equal(t, domain.StatusExactMatch, results[0].Status)
	assert.Equal(t, "R2", results[0].GSTR2BInvoiceID)
	assert.Equal(t, domain.StatusGSTR2BOnly, results[1].Status)
	assert.Equal(t, "R1", results[1].GSTR2BInvoiceID)
}

func TestEngine_Reconcile_EmptyInvoiceNumbersFallThrough(t *testing.T) {
	pr := []domain.Invoice{
		makeInvoice("L1", "", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 1000, 180, 0, 0),
		makeInvoice("L2", "///", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 500, 90, 0, 0),
	}
	gstr2b := []domain.Invoice{
		makeInvoice("R1", "", "27ABCDE1234F1Z5", domain.SideGSTR2B, 1000, 180, 0, 0),
	}

	results := NewEngine(DefaultConfig()).Reconcile(pr, gstr2b)

	assert.Len(t, results, 3)
	assert.Equal(t, domain.StatusPROnly, results[0].Status)
	assert.Equal(t, domain.StatusPROnly, results[1].Status)
	assert.Equal(t, domain.StatusGSTR2BOnly, results[2].Status)
}

func TestEngine_Reconcile_Totality(t *testing.T) {
	pr := []domain.Invoice{
		makeInvoice("L1", "INV-01", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 1000, 180, 0, 0),
		makeInvoice("L2", "INV-02", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 2000, 0, 180, 180),
		makeInvoice("L3", "", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 300, 54, 0, 0),
		makeInvoice("L4", "INV-04", "24QRSTU1234A1B2", domain.SidePurchaseRegister, 4000, 720, 0, 0),
	}
	gstr2b := []domain.Invoice{
		makeInvoice("R1", "INV-01", "27ABCDE1234F1Z5", domain.SideGSTR2B, 1000, 180, 0, 0),
		makeInvoice("R2", "INV-02", "27ABCDE1234F1Z5", domain.SideGSTR2B, 2500, 0, 180, 180),
		makeInvoice("R3", "INV-99", "27ABCDE1234F1Z5", domain.SideGSTR2B, 999, 0, 0, 0),
		makeInvoice("R4", "INV-04", "24QRSTU1234A1B3", domain.SideGSTR2B, 4000, 720, 0, 0),
	}

	results := NewEngine(DefaultConfig()).Reconcile(pr, gstr2b)

	seenPR := make(map[string]int)
	seenGSTR2B := make(map[string]int)
	for _, r := range results {
		if r.PRInvoiceID != "" {
			seenPR[r.PRInvoiceID]++
		}
		if r.GSTR2BInvoiceID != "" {
			seenGSTR2B[r.GSTR2BInvoiceID]++
		}
	}

	for _, inv := range pr {
		assert.Equal(t, 1, seenPR[inv.ID], "purchase register invoice %s must appear exactly once", inv.ID)
	}
	for _, inv := range gstr2b {
		assert.Equal(t, 1, seenGSTR2B[inv.ID], "gstr2b invoice %s must appear exactly once", inv.ID)
	}
}

func TestEngine_Reconcile_Deterministic(t *testing.T) {
	pr := []domain.Invoice{
		makeInvoice("L1", "INV-01", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 1000, 180, 0, 0),
		makeInvoice("L2", "INV-02", "27ABCDE1234F1Z5", domain.SidePurchaseRegister, 2000, 0, 180, 180),
		makeInvoice("L3", "INV-03", "24QRSTU1234A1B2", domain.SidePurchaseRegister, 50000, 9000, 0, 0),
	}
	gstr2b := []domain.Invoice{
		makeInvoice("R1", "INV-02", "27ABCDE1234F1Z5", domain.SideGSTR2B, 2100, 0, 180, 180),
		makeInvoice("R2", "INV-01", "27ABCDE1234F1Z5", domain.SideGSTR2B, 1000, 180, 0, 0),
		makeInvoice("R3", "INV-03", "24QRSTU1234A1B2", domain.SideGSTR2B, 50100, 9000, 0, 0),
	}

	first := NewEngine(DefaultConfig()).Reconcile(pr, gstr2b)
	second := NewEngine(DefaultConfig()).Reconcile(pr, gstr2b)

	firstJSON, err := json.Marshal(first)
	assert.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	assert.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestEngine_Reconcile_EmptyInputs(t *testing.T) {
	results := NewEngine(DefaultConfig()).Reconcile(nil, nil)
	assert.Empty(t, results)
}
