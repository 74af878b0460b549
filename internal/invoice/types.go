package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"billomat-invoicing/internal/model"
)

// Filter selects the time entries an invoice is built from.
type Filter struct {
	StartDate          time.Time
	EndDate            time.Time
	TaskIDs            []string
	OnlyUnbilled       bool
	IncludeNonBillable bool
	TeamMemberID       string
}

// Options controls how notes are built and shown.
type Options struct {
	ShowTimesInNotes bool
	ShowNotes        bool
	Locale           string // empty uses the service default
}

// LineItem is one aggregated, priced invoice row. All contributing entries
// share (TaskID, SubtaskID); Price comes from the first entry seen.
type LineItem struct {
	TaskID    string
	SubtaskID string
	Name      string
	Unit      model.Unit
	Price     decimal.Decimal
	Quantity  decimal.Decimal
	Note      string
	Sum       decimal.Decimal
}

// Account identifies a Billomat account. An empty AccountID means "default".
type Account struct {
	AccountID string
	APIKey    string
}

// ClientContactOption is one picklist entry. Value is "clientID#contactID",
// or empty for the no-data placeholder.
type ClientContactOption struct {
	DisplayName string `json:"name"`
	Value       string `json:"value"`
}

// --- UseCase inputs ---

type PreviewInput struct {
	Filter         Filter
	Options        Options
	CurrencySymbol string // empty uses the service default
}

type ListClientContactsInput struct {
	Account Account
	Locale  string
}

type CreateInput struct {
	Account       Account
	Filter        Filter
	Options       Options
	ClientContact string
	MarkAsBilled  bool
}

// --- UseCase outputs ---

type PreviewOutput struct {
	Markdown string
	Items    []LineItem
	Total    decimal.Decimal
}

// ListClientContactsOutput carries the picklist plus how much of the
// directory could not be read.
type ListClientContactsOutput struct {
	Options         []ClientContactOption
	Pages           int
	DegradedPages   int
	DegradedClients int
}

type CreateOutput struct {
	InvoiceID      string
	InvoiceURL     string
	BilledEntryIDs []string
}
