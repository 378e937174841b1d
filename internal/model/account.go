package model

// Account is a chart-of-accounts entry that carries an SRU mapping.
// Accounts without an #SRU line never become an Account.
type Account struct {
	Number int
	SRU    int // tax-form line the account reports on
	Name   string
}
