// Command gendemo writes a sample Purchase Register and GSTR-2B statement
// with seeded discrepancies: an amount mismatch, a GSTIN typo, an invoice
// missing from each side. Useful for trying the reconciler end to end.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var purchaseRegisterRows = [][]string{
	{"Invoice No", "Invoice Date", "Vendor GSTIN", "Vendor Name", "Taxable Value", "IGST", "CGST", "SGST", "Total Tax", "Invoice Value"},
	{"INV-001", "01-07-2024", "24AABCT1234F1Z5", "Dev Technologies Pvt Ltd", "50000", "0", "4500", "4500", "9000", "59000"},
	{"INV-002", "03-07-2024", "27BCDRF5678K2L6", "Shree Metals Pvt Ltd", "75000", "13500", "0", "0", "13500", "88500"},
	{"INV-003", "05-07-2024", "29DEFGH9012R3S7", "Global Tech Solutions", "120000", "0", "10800", "10800", "21600", "141600"},
	{"INV-004", "08-07-2024", "33GHIJK3456Y4Z8", "Sunrise Industries", "30000", "0", "2700", "2700", "5400", "35400"},
	{"INV-005", "10-07-2024", "07LMNOP7890F5G9", "Bharat Enterprises", "45000", "8100", "0", "0", "8100", "53100"},
	{"INV-006", "15-07-2024", "24QRSTU1234A1B2", "Raj Corporation", "60000", "0", "5400", "5400", "10800", "70800"},
	{"INV-007", "20-07-2024", "27VWXYZ5678C3D4", "Patel Traders", "25000", "0", "2250", "2250", "4500", "29500"},
}

var gstr2bRows = [][]string{
	{"GSTIN of Supplier", "Trade/Legal Name", "Invoice No", "Invoice Date", "Taxable Value", "Integrated Tax", "Central Tax", "State/UT Tax", "Cess", "Return Period"},
	{"24AABCT1234F1Z5", "Dev Technologies Pvt Ltd", "INV-001", "01-07-2024", "50000", "0", "4500", "4500", "0", "072024"},
	// INV-002: taxable 78000 vs 75000 in the register, an amount mismatch.
	{"27BCDRF5678K2L6", "Shree Metals Pvt Ltd", "INV-002", "03-07-2024", "78000", "14040", "0", "0", "0", "072024"},
	{"29DEFGH9012R3S7", "Global Tech Solutions", "INV-003", "06-07-2024", "120000", "0", "10800", "10800", "0", "072024"},
	{"33GHIJK3456Y4Z8", "Sunrise Industries", "INV-004", "08-07-2024", "30000", "0", "2700", "2700", "0", "072024"},
	// INV-005 is intentionally absent: it stays register-only.
	// INV-006: last GSTIN character differs, a GSTIN typo mismatch.
	{"24QRSTU1234A1B3", "Raj Corporation", "INV-006", "15-07-2024", "60000", "0", "5400", "5400", "0", "072024"},
	{"27VWXYZ5678C3D4", "Patel Traders", "INV-007", "20-07-2024", "25000", "0", "2250", "2250", "0", "072024"},
	// INV-008 has no register counterpart: it stays statement-only.
	{"10NEWCO8888N1P2", "New Company Pvt Ltd", "INV-008", "22-07-2024", "40000", "7200", "0", "0", "0", "072024"},
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}

func main() {
	outDir := flag.String("out", ".", "Directory to write the demo files into")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	prPath := filepath.Join(*outDir, "demo_purchase_register.csv")
	if err := writeCSV(prPath, purchaseRegisterRows); err != nil {
		log.Fatalf("Failed to write purchase register: %v", err)
	}
	fmt.Printf("Purchase Register written to %s\n", prPath)

	gstr2bPath := filepath.Join(*outDir, "demo_gstr2b.csv")
	if err := writeCSV(gstr2bPath, gstr2bRows); err != nil {
		log.Fatalf("Failed to write GSTR-2B statement: %v", err)
	}
	fmt.Printf("GSTR-2B statement written to %s\n", gstr2bPath)
}
