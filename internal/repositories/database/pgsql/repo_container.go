package pgsql

import (
	portsrepo "github.com/baatie/controllerpro/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres-backed repository around a
// shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BusinessRepo: newPgxBusinessRepository(pool),
		ClientRepo:   newPgxClientRepository(pool),
		InvoiceRepo:  newPgxInvoiceRepository(pool),
		ExpenseRepo:  newPgxExpenseRepository(pool),
		BudgetRepo:   newPgxBudgetRepository(pool),
		UserRepo:     newPgxUserRepository(pool),
	}
}
