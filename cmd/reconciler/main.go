package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"gst-reconciliation/internal/gateway"
	"gst-reconciliation/internal/matcher"
	"gst-reconciliation/internal/usecase"
)

func main() {
	// Define command-line flags
	prFile := flag.String("pr", "", "Path to the Purchase Register file, CSV or XLSX (required)")
	gstr2bFile := flag.String("gstr2b", "", "Path to the GSTR-2B statement file, CSV or XLSX (required)")
	tolerance := flag.Float64("tolerance", 1.00, "Absolute amount tolerance in currency units")
	relativeTolerance := flag.Float64("relative-tolerance", 0.01, "Relative tolerance for material taxable values (0.01 = 1%)")
	materiality := flag.Float64("materiality", 10000, "Taxable value above which the relative tolerance applies")
	flag.Parse()

	// Validate required flags
	if *prFile == "" || *gstr2bFile == "" {
		fmt.Println("Error: Both -pr and -gstr2b flags are required.")
		flag.Usage()
		os.Exit(1)
	}

	config := matcher.Config{
		AbsoluteTolerance:    decimal.NewFromFloat(*tolerance),
		RelativeTolerance:    decimal.NewFromFloat(*relativeTolerance),
		MaterialityThreshold: decimal.NewFromFloat(*materiality),
	}

	// --- Dependency Injection (Wiring the application) ---
	// In a larger app, this might be done with a DI container.
	// Here, we do it manually, which is clear and simple.

	// 1. Create the repository (the outermost layer)
	fileRepo := gateway.NewFileInvoiceRepository()

	// 2. Create the usecase and inject the repository (the core logic layer)
	reconciliationUseCase, err := usecase.NewReconciliationUseCase(fileRepo, config)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// --- Execute the Usecase ---
	report, err := reconciliationUseCase.Reconcile(context.Background(), *prFile, *gstr2bFile)
	if err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON report: %v", err)
	}

	fmt.Println(string(output))
}
