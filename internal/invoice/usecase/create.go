package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"billomat-invoicing/internal/invoice"
	"billomat-invoicing/internal/invoice/repository"
	"billomat-invoicing/internal/model"
	"billomat-invoicing/pkg/i18n"
	"billomat-invoicing/pkg/money"
)

// Create submits the aggregated line items as a Billomat invoice.
// Every failure is reported through exactly one host alert. Billing state and the opened URL are only touched after Billomat
// accepted the invoice.
func (uc *implUseCase) Create(ctx context.Context, host invoice.Host, input invoice.CreateInput) (invoice.CreateOutput, error) {
	loc := uc.localizer(input.Options.Locale)

	clientID, contactID, ok := splitClientContact(input.ClientContact)
	if !ok {
		host.ShowAlert(ctx, alertTitle, loc.T(i18n.KeyInputDataEmpty))
		return invoice.CreateOutput{}, invoice.ErrInvalidClientContact
	}
	if input.Account.APIKey == "" {
		host.ShowAlert(ctx, alertTitle, alertMessage(loc, invoice.ErrMissingAPIKey))
		return invoice.CreateOutput{}, invoice.ErrMissingAPIKey
	}
	repo, err := uc.billomatRepo(input.Account)
	if err != nil {
		host.ShowAlert(ctx, alertTitle, alertMessage(loc, err))
		return invoice.CreateOutput{}, err
	}

	entries, err := uc.timeEntries(ctx, host, input.Filter)
	if err != nil {
		host.ShowAlert(ctx, alertTitle, alertMessage(loc, err))
		return invoice.CreateOutput{}, err
	}
	items := aggregate(entries, input.Options, loc)

	opt := repository.CreateInvoiceOptions{
		ClientID:   clientID,
		ContactID:  contactID,
		SupplyDate: supplyDate(input.Filter.StartDate, input.Filter.EndDate),
		Items:      make([]repository.InvoiceItemOptions, 0, len(items)),
	}
	for _, it := range items {
		description := ""
		if input.Options.ShowNotes {
			description = strings.ReplaceAll(it.Note, noteSeparator, "\n")
		}
		opt.Items = append(opt.Items, repository.InvoiceItemOptions{
			Unit:        unitLabel(loc, it.Unit),
			UnitPrice:   money.Fixed2(it.Price),
			Quantity:    money.Fixed2(it.Quantity),
			Title:       it.Name,
			Description: description,
		})
	}

	invoiceID, err := repo.CreateInvoice(ctx, opt)
	if err != nil {
		var remote *repository.RemoteError
		if errors.As(err, &remote) {
			host.ShowAlert(ctx, alertTitleAPIError, rejectedMessage(remote))
			return invoice.CreateOutput{}, fmt.Errorf("%w: %v", invoice.ErrInvoiceRejected, err)
		}
		host.ShowAlert(ctx, alertTitleAPIError, err.Error())
		return invoice.CreateOutput{}, fmt.Errorf("%w: %v", invoice.ErrInvoiceTransport, err)
	}

	out := invoice.CreateOutput{
		InvoiceID:  invoiceID,
		InvoiceURL: repo.InvoiceURL(invoiceID),
	}
	uc.l.Infof(ctx, "invoice.usecase.Create: created invoice %s with %d items", invoiceID, len(items))

	if input.MarkAsBilled {
		ids := entryIDs(entries)
		if err := host.SetBillingState(ctx, ids, model.BillingStateBilled); err != nil {
			// the invoice exists already, so the user is told and the flow goes on
			uc.l.Errorf(ctx, "invoice.usecase.Create: failed to mark %d entries billed for invoice %s: %v", len(ids), invoiceID, err)
			host.ShowAlert(ctx, alertTitle, err.Error())
		} else {
			out.BilledEntryIDs = ids
		}
	}

	if err := host.OpenURL(ctx, out.InvoiceURL); err != nil {
		uc.l.Warnf(ctx, "invoice.usecase.Create: failed to open %s: %v", out.InvoiceURL, err)
	}
	return out, nil
}
