package billomat

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"billomat-invoicing/internal/invoice/repository"
	pkgLog "billomat-invoicing/pkg/log"
)

const tracerName = "billomat-invoicing/billomat"

type implRepository struct {
	client          *Client
	accountID       string
	appURL          string
	clientPageSize  int
	contactPageSize int
	l               pkgLog.Logger
}

// ListClientContacts walks client pages 1..ceil(total/pageSize) in order and
// reads each client's contacts right after the client. A page or client that
// cannot be read contributes nothing and is counted as degraded. The page count
// comes from the first page only when it carries a client list.
func (r *implRepository) ListClientContacts(ctx context.Context) (repository.ClientContactsResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "billomat.ListClientContacts")
	defer span.End()

	var result repository.ClientContactsResult

	totalPages := 1
	for page := 1; page <= totalPages; page++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		clientPage, err := r.client.ListClients(ctx, page, r.clientPageSize)
		result.Pages++
		if err != nil {
			r.l.Warnf(ctx, "billomat repository: client page %d skipped: %v", page, err)
			result.DegradedPages++
			continue
		}

		if !clientPage.Listed {
			if clientPage.Total > 0 {
				r.l.Warnf(ctx, "billomat repository: client page %d has no client list, total %d", page, clientPage.Total)
				result.DegradedPages++
			}
			continue
		}
		if page == 1 {
			totalPages = pageCount(clientPage.Total, r.clientPageSize)
		}

		for _, c := range clientPage.Clients {
			contacts, ok := r.listContacts(ctx, c.ID)
			if !ok {
				result.DegradedClients++
			}
			for _, ct := range contacts {
				result.Contacts = append(result.Contacts, repository.ClientContact{
					ClientID:   c.ID,
					ClientName: c.Name,
					ContactID:  ct.ID,
					FirstName:  ct.FirstName,
					LastName:   ct.LastName,
				})
			}
		}
	}

	span.SetAttributes(
		attribute.Int("billomat.pages", result.Pages),
		attribute.Int("billomat.contacts", len(result.Contacts)),
		attribute.Int("billomat.degraded_pages", result.DegradedPages),
		attribute.Int("billomat.degraded_clients", result.DegradedClients),
	)
	return result, nil
}

// listContacts pages through a client's contacts until the reported total is
// reached. ok is false when any page could not be read; the contacts read
// before the failure are still returned.
func (r *implRepository) listContacts(ctx context.Context, clientID string) ([]Contact, bool) {
	var contacts []Contact

	totalPages := 1
	for page := 1; page <= totalPages; page++ {
		contactPage, err := r.client.ListContacts(ctx, clientID, page, r.contactPageSize)
		if err != nil {
			r.l.Warnf(ctx, "billomat repository: contacts of client %s page %d skipped: %v", clientID, page, err)
			return contacts, false
		}
		if page == 1 {
			totalPages = pageCount(contactPage.Total, r.contactPageSize)
		}
		if !contactPage.Listed {
			break
		}
		contacts = append(contacts, contactPage.Contacts...)
	}
	return contacts, true
}

func (r *implRepository) CreateInvoice(ctx context.Context, opt repository.CreateInvoiceOptions) (string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "billomat.CreateInvoice")
	defer span.End()

	req := CreateInvoiceRequest{
		Invoice: InvoicePayload{
			ClientID:       opt.ClientID,
			ContactID:      opt.ContactID,
			SupplyDateType: "SUPPLY_TEXT",
			SupplyDate:     opt.SupplyDate,
			NetGross:       "NET",
			Items:          make([]InvoiceItemEntry, 0, len(opt.Items)),
		},
	}
	for _, it := range opt.Items {
		req.Invoice.Items = append(req.Invoice.Items, InvoiceItemEntry{Item: InvoiceItem{
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Title:       it.Title,
			Description: it.Description,
		}})
	}

	inv, err := r.client.CreateInvoice(ctx, req)
	if err != nil {
		r.l.Errorf(ctx, "billomat repository: failed to create invoice: %v", err)
		return "", err
	}
	span.SetAttributes(attribute.String("billomat.invoice_id", inv.ID))
	return inv.ID, nil
}

func (r *implRepository) InvoiceURL(invoiceID string) string {
	return fmt.Sprintf("%s/app/invoices/show/entityId/%s", r.appURL, invoiceID)
}

// pageCount is ceil(total/perPage); a missing or zero total still yields no
// further pages beyond the first.
func pageCount(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
