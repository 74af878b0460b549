package repository

import (
	"context"

	"billomat-invoicing/internal/model"
)

// TimeEntrySource returns the host's time entries matching a query.
type TimeEntrySource interface {
	TimeEntries(ctx context.Context, q TimeEntryQuery) ([]model.TimeEntry, error)
}

// BillingStateUpdater changes the host-side billing state of time entries.
type BillingStateUpdater interface {
	SetBillingState(ctx context.Context, ids []string, state model.BillingState) error
}

// BillomatRepository is bound to one Billomat account for its whole lifetime.
type BillomatRepository interface {
	// ListClientContacts walks every client page and joins each client with its contacts.
	ListClientContacts(ctx context.Context) (ClientContactsResult, error)
	// CreateInvoice posts a new invoice and returns its ID. A non-201 reply is a *RemoteError.
	CreateInvoice(ctx context.Context, opt CreateInvoiceOptions) (string, error)
	// InvoiceURL is the web URL of an invoice in the Billomat app.
	InvoiceURL(invoiceID string) string
}

// BillomatFactory builds a repository for one account. An account ID that
// cannot name a Billomat subdomain yields ErrInvalidAccountID.
type BillomatFactory interface {
	New(accountID, apiKey string) (BillomatRepository, error)
}
