package entity

// BillingAccountRef is one row of the billing account reference table.
// The name stored is the one observed the first time the id appeared.
type BillingAccountRef struct {
	ID   string
	Name string
}

// BillingProfileRef is one row of the billing profile reference table.
type BillingProfileRef struct {
	ID       string
	Name     string
	Currency string
}
