package matcher

import "gst-reconciliation/internal/domain"

// invoiceIndex groups invoices by normalized invoice number for O(1)
// candidate lookup. Bucket order preserves input order; the driver's
// first-seen tie-break depends on it.
type invoiceIndex map[string][]domain.Invoice

// buildIndex indexes invoices by their normalized invoice number. Invoices
// whose normalized number is empty are excluded: they can never be matched
// and fall through to the one-sided results instead.
func buildIndex(invoices []domain.Invoice) invoiceIndex {
	index := make(invoiceIndex, len(invoices))
	for _, inv := range invoices {
		key := NormalizeInvoiceNo(inv.InvoiceNo)
		if key == "" {
			continue
		}
		index[key] = append(index[key], inv)
	}
	return index
}
