package i18n

// Message keys.
const (
	KeyUnitHours      = "unit.hours"
	KeyUnitKilometer  = "unit.kilometer"
	KeyUnitQuantity   = "unit.quantity"
	KeyInvoiceHeader  = "invoice.header"
	KeyInvoicePos     = "invoice.position"
	KeyInvoicePrice   = "invoice.price"
	KeyInvoiceQty     = "invoice.quantity"
	KeyInvoiceUnit    = "invoice.unit"
	KeyInvoiceNet     = "invoice.net"
	KeyInputDataEmpty = "input.data.empty"

	KeyAPIKeyMissing     = "error.api_key.missing"
	KeyAccountInvalid    = "error.account.invalid"
	KeyDateRangeInvalid  = "error.date_range.invalid"
	KeyTimeEntriesFailed = "error.time_entries.failed"
)

type localeDef struct {
	dateLayout string
	timeLayout string
	messages   map[string]string
}

var locales = map[string]localeDef{
	"en-US": {
		dateLayout: "1/2/2006",
		timeLayout: "03:04 PM",
		messages: map[string]string{
			KeyUnitHours:      "hours",
			KeyUnitKilometer:  "km",
			KeyUnitQuantity:   "pcs",
			KeyInvoiceHeader:  "Invoice Preview",
			KeyInvoicePos:     "Position",
			KeyInvoicePrice:   "Price",
			KeyInvoiceQty:     "Quantity",
			KeyInvoiceUnit:    "Unit",
			KeyInvoiceNet:     "Net",
			KeyInputDataEmpty: "No data available",

			KeyAPIKeyMissing:     "Please enter your Billomat API key",
			KeyAccountInvalid:    "The Billomat ID may only contain letters, digits and hyphens",
			KeyDateRangeInvalid:  "The end date is before the start date",
			KeyTimeEntriesFailed: "The time entries could not be loaded",
		},
	},
	"de-DE": {
		dateLayout: "2.1.2006",
		timeLayout: "15:04",
		messages: map[string]string{
			KeyUnitHours:      "Std.",
			KeyUnitKilometer:  "km",
			KeyUnitQuantity:   "Stk.",
			KeyInvoiceHeader:  "Rechnungsvorschau",
			KeyInvoicePos:     "Position",
			KeyInvoicePrice:   "Preis",
			KeyInvoiceQty:     "Menge",
			KeyInvoiceUnit:    "Einheit",
			KeyInvoiceNet:     "Netto",
			KeyInputDataEmpty: "Keine Daten vorhanden",

			KeyAPIKeyMissing:     "Bitte den Billomat API-Schlüssel eingeben",
			KeyAccountInvalid:    "Die Billomat-ID darf nur Buchstaben, Ziffern und Bindestriche enthalten",
			KeyDateRangeInvalid:  "Das Enddatum liegt vor dem Startdatum",
			KeyTimeEntriesFailed: "Die Zeiteinträge konnten nicht geladen werden",
		},
	},
}
