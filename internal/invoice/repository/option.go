package repository

import (
	"time"

	"billomat-invoicing/internal/model"
)

// TimeEntryQuery mirrors the host query contract. A nil BillingState or
// Billable means "any".
type TimeEntryQuery struct {
	Start        time.Time
	End          time.Time
	TaskIDs      []string
	BillingState *model.BillingState
	Billable     *bool
	TeamMemberID string
}

// CreateInvoiceOptions is the invoice to submit. Prices and quantities are
// already rendered with two decimals.
type CreateInvoiceOptions struct {
	ClientID   string
	ContactID  string
	SupplyDate string
	Items      []InvoiceItemOptions
}

type InvoiceItemOptions struct {
	Unit        string
	UnitPrice   string
	Quantity    string
	Title       string
	Description string
}
