package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	invoiceHTTP "billomat-invoicing/internal/invoice/delivery/http"
)

// setupInvoiceDomain registers the invoice and Billomat directory routes.
func (srv HTTPServer) setupInvoiceDomain(ctx context.Context, api *gin.RouterGroup) error {
	if srv.invoiceHandler == nil {
		return errors.New("invoice handler is required")
	}

	// registers /api/v1/invoices and /api/v1/billomat/client-contacts
	invoiceHTTP.RegisterRoutes(api, srv.invoiceHandler, srv.mw)

	srv.l.Infof(ctx, "Invoice domain registered")
	return nil
}
