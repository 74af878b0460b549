package invoice

import "errors"

// Domain-specific errors for the invoice package.
var (
	ErrInvalidAccountID     = errors.New("billomat account id is invalid")
	ErrInvalidClientContact = errors.New("client contact selection is malformed")
	ErrInvalidDateRange     = errors.New("end date is before start date")
	ErrInvoiceRejected      = errors.New("billomat rejected the invoice")
	ErrInvoiceTransport     = errors.New("billomat invoice request failed")
	ErrMissingAPIKey        = errors.New("billomat api key is empty")
)
