package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side identifies which of the two ledgers an invoice came from.
type Side string

const (
	SidePurchaseRegister Side = "purchase_register"
	SideGSTR2B           Side = "gstr2b"
)

// Invoice is a normalized purchase invoice record, produced by the gateway
// layer and consumed by the matching engine. All monetary fields use
// decimal arithmetic; binary floats would drift at the tolerance boundary.
type Invoice struct {
	ID           string          `json:"id"`
	InvoiceNo    string          `json:"invoice_no"`
	InvoiceDate  time.Time       `json:"invoice_date"`
	VendorGSTIN  string          `json:"vendor_gstin"`
	VendorName   string          `json:"vendor_name,omitempty"`
	TaxableValue decimal.Decimal `json:"taxable_value"`
	IGST         decimal.Decimal `json:"igst"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	Cess         decimal.Decimal `json:"cess"`
	TotalTax     decimal.Decimal `json:"total_tax"`
	InvoiceValue decimal.Decimal `json:"invoice_value"`

	// GSTR-2B specific fields, zero-valued for Purchase Register records.
	ReturnPeriod string `json:"return_period,omitempty"`
	ITCAvailable bool   `json:"itc_available,omitempty"`

	// Provenance for audit trails.
	RowNumber int  `json:"row_number,omitempty"`
	Source    Side `json:"source"`
}

// TotalValue returns taxable value plus total tax, the figure used for the
// signed total delta between the two sides.
func (inv Invoice) TotalValue() decimal.Decimal {
	return inv.TaxableValue.Add(inv.TotalTax)
}
