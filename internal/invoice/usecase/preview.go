package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"billomat-invoicing/internal/invoice"
	"billomat-invoicing/pkg/i18n"
	"billomat-invoicing/pkg/money"
)

func (uc *implUseCase) Preview(ctx context.Context, host invoice.Host, input invoice.PreviewInput) (invoice.PreviewOutput, error) {
	loc := uc.localizer(input.Options.Locale)

	entries, err := uc.timeEntries(ctx, host, input.Filter)
	if err != nil {
		host.ShowAlert(ctx, alertTitle, alertMessage(loc, err))
		return invoice.PreviewOutput{}, err
	}
	items := aggregate(entries, input.Options, loc)

	currency := input.CurrencySymbol
	if currency == "" {
		currency = uc.currencySymbol
	}

	sums := make([]decimal.Decimal, 0, len(items))
	for _, it := range items {
		sums = append(sums, it.Sum)
	}
	total := money.Sum(sums...)

	uc.l.Infof(ctx, "invoice.usecase.Preview: %d entries aggregated into %d line items", len(entries), len(items))

	return invoice.PreviewOutput{
		Markdown: uc.renderPreview(items, total, currency, input.Options.ShowNotes, loc),
		Items:    items,
		Total:    total,
	}, nil
}

func (uc *implUseCase) renderPreview(items []invoice.LineItem, total decimal.Decimal, currency string, showNotes bool, loc i18n.Localizer) string {
	var sb strings.Builder

	sb.WriteString("![](" + uc.logo + ")\n")
	sb.WriteString("## " + loc.T(i18n.KeyInvoiceHeader) + "\n")

	for _, key := range []string{i18n.KeyInvoicePos, i18n.KeyInvoicePrice, i18n.KeyInvoiceQty, i18n.KeyInvoiceUnit, i18n.KeyInvoiceNet} {
		sb.WriteString("|" + loc.T(key))
	}
	sb.WriteString("|\n")
	sb.WriteString("|-|-:|-:|-|-:|\n")

	for _, it := range items {
		name := it.Name
		if showNotes {
			name = "**" + it.Name + "**" + noteSeparator + strings.ReplaceAll(it.Note, "\n", noteSeparator)
		}
		sb.WriteString("|" + name)
		sb.WriteString("|" + money.Fixed2(it.Price) + " " + currency)
		sb.WriteString("|" + money.Fixed2(it.Quantity))
		sb.WriteString("|" + unitLabel(loc, it.Unit))
		sb.WriteString("|" + money.Fixed2(it.Sum) + " " + currency)
		sb.WriteString("|\n")
	}

	sb.WriteString("|||||**" + money.Fixed2(total) + " " + currency + "**|\n")
	return sb.String()
}
