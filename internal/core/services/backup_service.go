package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/baatie/controllerpro/internal/apperrors"
	"github.com/baatie/controllerpro/internal/core/domain"
	portsrepo "github.com/baatie/controllerpro/internal/core/ports/repositories"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
)

// backupService implements JSON export/import over the repositories.
type backupService struct {
	BaseService
	businessRepo portsrepo.BusinessRepositoryFacade
	clientRepo   portsrepo.ClientRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	budgetRepo   portsrepo.BudgetRepositoryFacade
}

// NewBackupService creates a new backup service.
func NewBackupService(
	businessRepo portsrepo.BusinessRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	budgetRepo portsrepo.BudgetRepositoryFacade,
) portssvc.BackupSvcFacade {
	return &backupService{
		businessRepo: businessRepo,
		clientRepo:   clientRepo,
		invoiceRepo:  invoiceRepo,
		expenseRepo:  expenseRepo,
		budgetRepo:   budgetRepo,
	}
}

var _ portssvc.BackupSvcFacade = (*backupService)(nil)

// ExportBusiness produces the backup document for one business and its
// owned records.
func (s *backupService) ExportBusiness(ctx context.Context, businessID string) (*portssvc.EntityBackup, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.ListClients(ctx, businessID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.ListInvoices(ctx, businessID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, businessID)
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgetRepo.ListBudgets(ctx, businessID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Entity backup exported",
		slog.String("business_id", businessID),
		slog.Int("clients", len(clients)),
		slog.Int("invoices", len(invoices)),
		slog.Int("expenses", len(expenses)),
		slog.Int("budgets", len(budgets)))

	return &portssvc.EntityBackup{
		Business: business,
		Clients:  emptyIfNilClients(clients),
		Invoices: emptyIfNilInvoices(invoices),
		Expenses: emptyIfNilExpenses(expenses),
		Budgets:  emptyIfNilBudgets(budgets),
	}, nil
}

// ExportSystem produces the cross-tenant backup document. The unscoped
// list form is reserved for exactly this path.
func (s *backupService) ExportSystem(ctx context.Context) (*portssvc.SystemBackup, error) {
	businesses, err := s.businessRepo.ListBusinesses(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.ListClients(ctx, "")
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.ListInvoices(ctx, "")
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, "")
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgetRepo.ListBudgets(ctx, "")
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "System backup exported",
		slog.Int("businesses", len(businesses)))

	return &portssvc.SystemBackup{
		Businesses: businesses,
		Clients:    emptyIfNilClients(clients),
		Invoices:   emptyIfNilInvoices(invoices),
		Expenses:   emptyIfNilExpenses(expenses),
		Budgets:    emptyIfNilBudgets(budgets),
	}, nil
}

// ImportBackup detects the document shape from the raw JSON and restores
// the records it carries. The top-level shape is validated before any row
// is written: a document with neither a business nor a businesses key is
// rejected with ErrValidation.
func (s *backupService) ImportBackup(ctx context.Context, raw []byte) error {
	var probe struct {
		Business   json.RawMessage `json:"business"`
		Businesses json.RawMessage `json:"businesses"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("%w: backup document is not valid JSON: %v", apperrors.ErrValidation, err)
	}

	switch {
	case len(probe.Businesses) > 0:
		var doc portssvc.SystemBackup
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("%w: malformed system backup: %v", apperrors.ErrValidation, err)
		}
		return s.restoreSystem(ctx, doc)
	case len(probe.Business) > 0:
		var doc portssvc.EntityBackup
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("%w: malformed entity backup: %v", apperrors.ErrValidation, err)
		}
		if doc.Business == nil {
			return fmt.Errorf("%w: entity backup is missing its business record", apperrors.ErrValidation)
		}
		return s.restoreEntities(ctx, []domain.BusinessProfile{*doc.Business},
			doc.Clients, doc.Invoices, doc.Expenses, doc.Budgets)
	default:
		return fmt.Errorf("%w: backup document must contain a business or businesses key", apperrors.ErrValidation)
	}
}

func (s *backupService) restoreSystem(ctx context.Context, doc portssvc.SystemBackup) error {
	if len(doc.Businesses) == 0 {
		return fmt.Errorf("%w: system backup contains no businesses", apperrors.ErrValidation)
	}
	return s.restoreEntities(ctx, doc.Businesses, doc.Clients, doc.Invoices, doc.Expenses, doc.Budgets)
}

// restoreEntities writes records with their original ids and field values.
// Businesses are written first so owned rows never land before their root.
func (s *backupService) restoreEntities(
	ctx context.Context,
	businesses []domain.BusinessProfile,
	clients []domain.Client,
	invoices []domain.Invoice,
	expenses []domain.Expense,
	budgets []domain.ProjectBudget,
) error {
	for _, b := range businesses {
		if b.BusinessID == "" {
			return fmt.Errorf("%w: backup business record is missing its id", apperrors.ErrValidation)
		}
		if err := s.businessRepo.SaveBusiness(ctx, b); err != nil {
			s.LogError(ctx, err, "Failed to restore business",
				slog.String("business_id", b.BusinessID))
			return err
		}
	}
	for _, c := range clients {
		if err := s.clientRepo.SaveClient(ctx, c); err != nil {
			s.LogError(ctx, err, "Failed to restore client",
				slog.String("client_id", c.ClientID))
			return err
		}
	}
	for _, inv := range invoices {
		if err := s.invoiceRepo.SaveInvoice(ctx, inv); err != nil {
			s.LogError(ctx, err, "Failed to restore invoice",
				slog.String("invoice_id", inv.InvoiceID))
			return err
		}
	}
	for _, e := range expenses {
		if err := s.expenseRepo.SaveExpense(ctx, e); err != nil {
			s.LogError(ctx, err, "Failed to restore expense",
				slog.String("expense_id", e.ExpenseID))
			return err
		}
	}
	for _, b := range budgets {
		if err := s.budgetRepo.SaveBudget(ctx, b); err != nil {
			s.LogError(ctx, err, "Failed to restore budget",
				slog.String("budget_id", b.BudgetID))
			return err
		}
	}

	s.LogInfo(ctx, "Backup imported",
		slog.Int("businesses", len(businesses)),
		slog.Int("clients", len(clients)),
		slog.Int("invoices", len(invoices)),
		slog.Int("expenses", len(expenses)),
		slog.Int("budgets", len(budgets)))
	return nil
}

func emptyIfNilClients(v []domain.Client) []domain.Client {
	if v == nil {
		return []domain.Client{}
	}
	return v
}

func emptyIfNilInvoices(v []domain.Invoice) []domain.Invoice {
	if v == nil {
		return []domain.Invoice{}
	}
	return v
}

func emptyIfNilExpenses(v []domain.Expense) []domain.Expense {
	if v == nil {
		return []domain.Expense{}
	}
	return v
}

func emptyIfNilBudgets(v []domain.ProjectBudget) []domain.ProjectBudget {
	if v == nil {
		return []domain.ProjectBudget{}
	}
	return v
}
