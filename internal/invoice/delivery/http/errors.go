package http

import (
	"context"
	"errors"
	"net/http"

	"billomat-invoicing/internal/invoice"
	pkgErrors "billomat-invoicing/pkg/errors"
)

// Response codes of the invoice domain.
const (
	codeInvalidDateRange     = 30001
	codeInvalidClientContact = 30002
	codeMissingAPIKey        = 30003
	codeInvoiceRejected      = 30004
	codeInvoiceTransport     = 30005
	codeInvalidAccountID     = 30006
)

var (
	errInvalidDateRange     = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, codeInvalidDateRange, invoice.ErrInvalidDateRange.Error())
	errInvalidClientContact = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, codeInvalidClientContact, invoice.ErrInvalidClientContact.Error())
	errMissingAPIKey        = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, codeMissingAPIKey, invoice.ErrMissingAPIKey.Error())
	errInvoiceRejected      = pkgErrors.NewHTTPErrorWithCode(http.StatusBadGateway, codeInvoiceRejected, invoice.ErrInvoiceRejected.Error())
	errInvoiceTransport     = pkgErrors.NewHTTPErrorWithCode(http.StatusBadGateway, codeInvoiceTransport, invoice.ErrInvoiceTransport.Error())
	errInvalidAccountID     = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, codeInvalidAccountID, invoice.ErrInvalidAccountID.Error())
	errRequestCanceled      = pkgErrors.NewHTTPError(499, "request canceled")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, invoice.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, invoice.ErrInvalidClientContact):
		return errInvalidClientContact
	case errors.Is(err, invoice.ErrMissingAPIKey):
		return errMissingAPIKey
	case errors.Is(err, invoice.ErrInvalidAccountID):
		return errInvalidAccountID
	case errors.Is(err, invoice.ErrInvoiceRejected):
		return errInvoiceRejected
	case errors.Is(err, invoice.ErrInvoiceTransport):
		return errInvoiceTransport
	case errors.Is(err, context.Canceled):
		return errRequestCanceled
	default:
		return pkgErrors.ErrInternalServerError
	}
}
