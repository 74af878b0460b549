package usecase

import (
	"context"
	"fmt"

	"billomat-invoicing/internal/invoice"
	"billomat-invoicing/pkg/i18n"
)

func (uc *implUseCase) ListClientContacts(ctx context.Context, input invoice.ListClientContactsInput) (invoice.ListClientContactsOutput, error) {
	if input.Account.APIKey == "" {
		return invoice.ListClientContactsOutput{}, invoice.ErrMissingAPIKey
	}
	loc := uc.localizer(input.Locale)

	repo, err := uc.billomatRepo(input.Account)
	if err != nil {
		return invoice.ListClientContactsOutput{}, err
	}
	res, err := repo.ListClientContacts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "invoice.usecase.ListClientContacts: %v", err)
		return invoice.ListClientContactsOutput{}, err
	}

	out := invoice.ListClientContactsOutput{
		Options:         make([]invoice.ClientContactOption, 0, len(res.Contacts)),
		Pages:           res.Pages,
		DegradedPages:   res.DegradedPages,
		DegradedClients: res.DegradedClients,
	}
	for _, c := range res.Contacts {
		out.Options = append(out.Options, invoice.ClientContactOption{
			DisplayName: fmt.Sprintf("%s - %s %s", c.ClientName, c.FirstName, c.LastName),
			Value:       c.ClientID + "#" + c.ContactID,
		})
	}

	if len(out.Options) == 0 {
		out.Options = append(out.Options, invoice.ClientContactOption{
			DisplayName: loc.T(i18n.KeyInputDataEmpty),
			Value:       "",
		})
	}

	if res.Degraded() {
		uc.l.Warnf(ctx, "invoice.usecase.ListClientContacts: partial directory, %d/%d pages and %d clients unreadable",
			res.DegradedPages, res.Pages, res.DegradedClients)
	}
	return out, nil
}
