package invoice

import (
	"context"

	"billomat-invoicing/internal/invoice/repository"
)

// Host is the application that owns the time entries and the user session.
type Host interface {
	repository.TimeEntrySource
	repository.BillingStateUpdater

	// ShowAlert surfaces a message to the user.
	ShowAlert(ctx context.Context, title, message string)
	// OpenURL asks the host to open url in an external viewer.
	OpenURL(ctx context.Context, url string) error
}

// UseCase defines the business logic interface for the invoice domain.
type UseCase interface {
	// Preview aggregates the filtered time entries and renders them as a markdown table.
	Preview(ctx context.Context, host Host, input PreviewInput) (PreviewOutput, error)

	// EntryIDs returns the IDs of exactly the entries Preview and Create aggregate.
	EntryIDs(ctx context.Context, host Host, filter Filter) ([]string, error)

	// ListClientContacts resolves the Billomat client/contact picklist.
	ListClientContacts(ctx context.Context, input ListClientContactsInput) (ListClientContactsOutput, error)

	// Create submits the aggregated line items as a new Billomat invoice.
	Create(ctx context.Context, host Host, input CreateInput) (CreateOutput, error)
}
