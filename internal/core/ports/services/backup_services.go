package services

import (
	"context"

	"github.com/baatie/controllerpro/internal/core/domain"
)

// EntityBackup is the export document for a single business and its owned
// records.
type EntityBackup struct {
	Business *domain.BusinessProfile `json:"business"`
	Clients  []domain.Client         `json:"clients"`
	Invoices []domain.Invoice        `json:"invoices"`
	Expenses []domain.Expense        `json:"expenses"`
	Budgets  []domain.ProjectBudget  `json:"budgets"`
}

// SystemBackup is the export document covering every tenant.
type SystemBackup struct {
	Businesses []domain.BusinessProfile `json:"businesses"`
	Clients    []domain.Client          `json:"clients"`
	Invoices   []domain.Invoice         `json:"invoices"`
	Expenses   []domain.Expense         `json:"expenses"`
	Budgets    []domain.ProjectBudget   `json:"budgets"`
}

// BackupSvcFacade exports and restores JSON backup documents. Import
// validates the top-level shape (a business or businesses key) before
// touching any data and rejects anything else with apperrors.ErrValidation.
type BackupSvcFacade interface {
	// ExportBusiness produces the backup document for one business.
	ExportBusiness(ctx context.Context, businessID string) (*EntityBackup, error)

	// ExportSystem produces the backup document for every tenant.
	ExportSystem(ctx context.Context) (*SystemBackup, error)

	// ImportBackup detects the document shape from raw JSON and restores
	// the records it carries with their original ids and field values.
	ImportBackup(ctx context.Context, raw []byte) error
}
