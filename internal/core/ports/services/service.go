package services

// ServiceContainer holds all service facades so route registration can be
// handed a single dependency.
type ServiceContainer struct {
	Business  BusinessSvcFacade
	Client    ClientSvcFacade
	Invoice   InvoiceSvcFacade
	Expense   ExpenseSvcFacade
	Budget    BudgetSvcFacade
	Dashboard DashboardSvcFacade
	Backup    BackupSvcFacade
	User      UserSvcFacade
}
