package usecase

import (
	"billomat-invoicing/internal/invoice"
	"billomat-invoicing/internal/invoice/repository"
	"billomat-invoicing/pkg/i18n"
	pkgLog "billomat-invoicing/pkg/log"
)

// DefaultLogo is the image reference placed at the top of every preview.
const DefaultLogo = "plugins/BillomatInvoices/billomat_logo.png"

type implUseCase struct {
	l              pkgLog.Logger
	loc            i18n.Localizer
	billomat       repository.BillomatFactory
	logo           string
	currencySymbol string
}

// New creates a new invoice UseCase instance.
// loc is used whenever a request does not name its own locale.
func New(
	l pkgLog.Logger,
	loc i18n.Localizer,
	billomat repository.BillomatFactory,
	logo string,
	currencySymbol string,
) invoice.UseCase {
	if logo == "" {
		logo = DefaultLogo
	}
	return &implUseCase{
		l:              l,
		loc:            loc,
		billomat:       billomat,
		logo:           logo,
		currencySymbol: currencySymbol,
	}
}
