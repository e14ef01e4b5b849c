package domain

// InvoiceTheme holds the presentation settings applied to a business's
// printed and exported invoices.
type InvoiceTheme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	Layout         string `json:"layout"` // e.g. "executive", "svelte", "vanguard"
	LetterheadURL  string `json:"letterheadUrl,omitempty"`
}

// BusinessProfile is the tenant root. Every client, invoice, expense and
// project budget belongs to exactly one business profile, and the system
// keeps at least one profile alive at all times.
type BusinessProfile struct {
	BusinessID        string       `json:"id"`
	Name              string       `json:"name"`
	LogoURL           string       `json:"logoUrl,omitempty"`
	PhoneNumber       string       `json:"phoneNumber,omitempty"`
	Address           string       `json:"address"`
	TaxID             string       `json:"taxId"`
	DefaultNetDays    int          `json:"defaultNetDays"`
	ExpenseCategories []string     `json:"expenseCategories"`
	Theming           InvoiceTheme `json:"theming"`
	TemplateURL       string       `json:"templateUrl,omitempty"`
}
