package models

// Billing is one statement of account line shown on the owner billing page.
type Billing struct {
	ID          int
	Patient     string
	Description string
	Amount      int64
	Date        string
	Paid        bool
}
