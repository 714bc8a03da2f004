package usecase

import (
	"context"
	"fmt"

	"gst-reconciliation/internal/domain"
	"gst-reconciliation/internal/matcher"
)

// ReconciliationUseCase orchestrates the reconciliation process: it fetches
// both ledgers through the repository, runs the matching engine and
// assembles the report.
type ReconciliationUseCase struct {
	repo   InvoiceRepository
	config matcher.Config
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(repo InvoiceRepository, config matcher.Config) (*ReconciliationUseCase, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid matcher configuration: %w", err)
	}
	return &ReconciliationUseCase{repo: repo, config: config}, nil
}

// Reconcile loads both ledgers and produces the full reconciliation report.
// A fresh engine is created per call; engine bookkeeping must never be
// shared between runs.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, prPath, gstr2bPath string) (*domain.ReconciliationReport, error) {
	prInvoices, err := uc.repo.GetPurchaseRegister(ctx, prPath)
	if err != nil {
		return nil, fmt.Errorf("could not get purchase register invoices: %w", err)
	}

	gstr2bInvoices, err := uc.repo.GetGSTR2B(ctx, gstr2bPath)
	if err != nil {
		return nil, fmt.Errorf("could not get gstr2b invoices: %w", err)
	}

	results := matcher.NewEngine(uc.config).Reconcile(prInvoices, gstr2bInvoices)

	return &domain.ReconciliationReport{
		Summary: matcher.Summarize(results),
		Results: results,
	}, nil
}
