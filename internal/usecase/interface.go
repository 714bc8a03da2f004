package usecase

import (
	"context"

	"gst-reconciliation/internal/domain"
)

// InvoiceRepository defines the interface for fetching normalized invoice
// records. The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go InvoiceRepository
type InvoiceRepository interface {
	GetPurchaseRegister(ctx context.Context, path string) ([]domain.Invoice, error)
	GetGSTR2B(ctx context.Context, path string) ([]domain.Invoice, error)
}
