package matcher

import "strings"

// NormalizeInvoiceNo canonicalizes an invoice number for use as a match key.
// Every character that is not a letter or digit is dropped and the remainder
// is upper-cased, so "inv-001", "INV 001" and "Inv/001" all collide.
// Empty input yields an empty key, which is never matchable.
func NormalizeInvoiceNo(invoiceNo string) string {
	if invoiceNo == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(invoiceNo))
	for _, r := range strings.ToUpper(strings.TrimSpace(invoiceNo)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeGSTIN canonicalizes a GSTIN for comparison: upper-cased, with all
// whitespace removed. Values that are not 15 characters long are kept as-is
// rather than rejected, so typos still compare and surface as mismatches.
func NormalizeGSTIN(gstin string) string {
	if gstin == "" {
		return ""
	}
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(gstin)), " ", "")
}
