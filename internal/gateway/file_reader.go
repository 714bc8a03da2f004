package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"gst-reconciliation/internal/domain"
)

// prColumnMappings lists the header synonyms accepted for each logical
// Purchase Register field. Real-world registers name their columns freely;
// matching is case-insensitive.
var prColumnMappings = map[string][]string{
	"invoice_no": {
		"invoice no", "invoice number", "inv no", "inv. no", "bill no",
		"bill number", "invoice_no", "invoiceno", "document no", "doc no",
	},
	"invoice_date": {
		"invoice date", "inv date", "bill date", "date", "invoice_date",
		"invoicedate", "document date", "doc date",
	},
	"vendor_gstin": {
		"gstin", "gstin/uin", "vendor gstin", "supplier gstin", "gstin no",
		"gst no", "gstin of supplier", "party gstin", "vendor_gstin",
	},
	"vendor_name": {
		"vendor name", "supplier name", "party name", "name of supplier",
		"vendor", "supplier", "party", "vendor_name",
	},
	"taxable_value": {
		"taxable value", "taxable amount", "assessable value", "base amount",
		"taxable", "taxable_value", "net amount",
	},
	"igst": {"igst", "igst amount", "integrated tax", "igst amt"},
	"cgst": {"cgst", "cgst amount", "central tax", "cgst amt"},
	"sgst": {"sgst", "sgst amount", "state tax", "sgst amt", "utgst"},
	"cess": {"cess", "cess amount", "cess amt"},
	"total_tax": {
		"total tax", "tax amount", "gst amount", "total gst", "total_tax",
	},
	"invoice_value": {
		"invoice value", "total amount", "gross amount", "invoice amount",
		"total value", "invoice_value", "bill amount",
	},
}

// gstr2bColumnMappings covers both the human-readable GSTR-2B export headers
// and the government portal's short codes (inum, ctin, txval and friends).
var gstr2bColumnMappings = map[string][]string{
	"invoice_no":    {"invoice no", "inum", "invoice number"},
	"invoice_date":  {"invoice date", "idt", "date"},
	"vendor_gstin":  {"gstin of supplier", "ctin", "gstin"},
	"vendor_name":   {"trade/legal name", "trdnm"},
	"taxable_value": {"taxable value", "txval"},
	"igst":          {"integrated tax", "iamt", "igst"},
	"cgst":          {"central tax", "camt", "cgst"},
	"sgst":          {"state/ut tax", "samt", "sgst"},
	"cess":          {"cess", "csamt"},
	"return_period": {"return period", "rtnprd"},
	"itc_available": {"itc availability", "itcavl"},
}

var amountJunk = regexp.MustCompile(`[₹$,\s]`)

var dateFormats = []string{
	"02/01/2006", "02-01-2006", "2006-01-02", "2006/01/02",
	"02.01.2006", "2 Jan 2006", "2 January 2006",
}

// FileInvoiceRepository implements usecase.InvoiceRepository for CSV and
// XLSX spreadsheet files.
type FileInvoiceRepository struct{}

// NewFileInvoiceRepository creates a new repository instance.
func NewFileInvoiceRepository() *FileInvoiceRepository {
	return &FileInvoiceRepository{}
}

// GetPurchaseRegister reads and normalizes a Purchase Register file.
func (r *FileInvoiceRepository) GetPurchaseRegister(ctx context.Context, path string) ([]domain.Invoice, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read purchase register file %s: %w", path, err)
	}
	return parseRows(rows, prColumnMappings, domain.SidePurchaseRegister)
}

// GetGSTR2B reads and normalizes a GSTR-2B statement file.
func (r *FileInvoiceRepository) GetGSTR2B(ctx context.Context, path string) ([]domain.Invoice, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gstr2b file %s: %w", path, err)
	}
	return parseRows(rows, gstr2bColumnMappings, domain.SideGSTR2B)
}

// readRows loads a spreadsheet as raw string cells. CSV files go through
// encoding/csv; anything else is treated as a workbook and read from its
// first sheet.
func readRows(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		reader := csv.NewReader(file)
		reader.FieldsPerRecord = -1
		return reader.ReadAll()
	}

	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer workbook.Close()

	return workbook.GetRows(workbook.GetSheetName(0))
}

// parseRows maps the header row against the synonym table, then coerces
// every data row into an Invoice. Rows without an invoice number or GSTIN
// are skipped; they carry nothing the engine could ever match on.
func parseRows(rows [][]string, mappings map[string][]string, side domain.Side) ([]domain.Invoice, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	columns := mapColumns(rows[0], mappings)

	var missing []string
	for _, required := range []string{"invoice_no", "vendor_gstin"} {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var invoices []domain.Invoice
	for i, row := range rows[1:] {
		inv := domain.Invoice{
			ID:           uuid.NewString(),
			InvoiceNo:    strings.TrimSpace(cell(row, columns, "invoice_no")),
			InvoiceDate:  parseDate(cell(row, columns, "invoice_date")),
			VendorGSTIN:  parseGSTIN(cell(row, columns, "vendor_gstin")),
			VendorName:   strings.TrimSpace(cell(row, columns, "vendor_name")),
			TaxableValue: parseAmount(cell(row, columns, "taxable_value")),
			IGST:         parseAmount(cell(row, columns, "igst")),
			CGST:         parseAmount(cell(row, columns, "cgst")),
			SGST:         parseAmount(cell(row, columns, "sgst")),
			Cess:         parseAmount(cell(row, columns, "cess")),
			InvoiceValue: parseAmount(cell(row, columns, "invoice_value")),
			RowNumber:    i + 2, // spreadsheet row: 1-indexed plus header
			Source:       side,
		}

		if _, ok := columns["total_tax"]; ok {
			inv.TotalTax = parseAmount(cell(row, columns, "total_tax"))
		}
		if inv.TotalTax.IsZero() {
			inv.TotalTax = inv.IGST.Add(inv.CGST).Add(inv.SGST).Add(inv.Cess)
		}
		if inv.InvoiceValue.IsZero() {
			inv.InvoiceValue = inv.TaxableValue.Add(inv.TotalTax)
		}

		if side == domain.SideGSTR2B {
			inv.ReturnPeriod = strings.TrimSpace(cell(row, columns, "return_period"))
			inv.ITCAvailable = parseITCFlag(cell(row, columns, "itc_available"))
		}

		if inv.InvoiceNo == "" || inv.VendorGSTIN == "" {
			continue
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// mapColumns resolves each logical field to a column index by matching the
// header row against the synonym lists, case-insensitively.
func mapColumns(header []string, mappings map[string][]string) map[string]int {
	lower := make(map[string]int, len(header))
	for i, col := range header {
		lower[strings.ToLower(strings.TrimSpace(col))] = i
	}

	columns := make(map[string]int, len(mappings))
	for field, names := range mappings {
		for _, name := range names {
			if idx, ok := lower[name]; ok {
				columns[field] = idx
				break
			}
		}
	}
	return columns
}

// cell returns the raw value for a logical field, tolerating both unmapped
// fields and rows shorter than the header.
func cell(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseAmount coerces a cell to a decimal amount. Currency symbols, commas
// and whitespace are stripped; anything unparseable degrades to zero rather
// than failing the whole file.
func parseAmount(value string) decimal.Decimal {
	cleaned := amountJunk.ReplaceAllString(strings.TrimSpace(value), "")
	if cleaned == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// parseDate tries the date formats seen across real registers and GSTR-2B
// exports. Unparseable dates yield the zero time; dates never gate matching.
func parseDate(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, trimmed); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseGSTIN keeps only well-formed 15-character GSTINs; anything else is
// treated as absent so the row is dropped at ingestion.
func parseGSTIN(value string) string {
	gstin := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(value)), " ", "")
	if len(gstin) != 15 {
		return ""
	}
	return gstin
}

// parseITCFlag interprets the ITC availability column. Absent values default
// to available, matching the government export convention.
func parseITCFlag(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return true
	}
	switch strings.ToUpper(trimmed) {
	case "Y", "YES", "TRUE", "1":
		return true
	default:
		return false
	}
}
