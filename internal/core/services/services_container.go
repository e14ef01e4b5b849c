package services

import (
	portsrepo "github.com/baatie/controllerpro/internal/core/ports/repositories"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
)

// NewServiceContainer creates a service container with properly wired
// dependencies. The advisor provider may be nil; the advisory feature then
// degrades while everything else keeps working.
func NewServiceContainer(repos portsrepo.RepositoryProvider, advisor portssvc.AdvisorProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Business = NewBusinessService(repos.BusinessRepo)
	container.Client = NewClientService(repos.ClientRepo, repos.InvoiceRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.BusinessRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo)
	container.Dashboard = NewDashboardService(repos.BusinessRepo, repos.InvoiceRepo, repos.ExpenseRepo, repos.BudgetRepo, advisor)
	container.Backup = NewBackupService(repos.BusinessRepo, repos.ClientRepo, repos.InvoiceRepo, repos.ExpenseRepo, repos.BudgetRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}
