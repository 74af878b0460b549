package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"billomat-invoicing/internal/invoice"
	"billomat-invoicing/internal/invoice/repository"
	"billomat-invoicing/internal/model"
	"billomat-invoicing/pkg/i18n"
)

const (
	noteSeparator = "<br/>"

	alertTitle         = "Billomat"
	alertTitleAPIError = "Billomat API Error"

	// supplyDateLayout matches the "Wed May 01 2024" form Billomat shows as supply text.
	supplyDateLayout = "Mon Jan 02 2006"
)

var minutesPerHour = decimal.NewFromInt(60)

// groupKey identifies the line item an entry belongs to.
type groupKey struct {
	taskID    string
	subtaskID string
}

func (uc *implUseCase) localizer(locale string) i18n.Localizer {
	if locale == "" {
		return uc.loc
	}
	return i18n.New(locale)
}

// billomatRepo builds the Billomat repository for account. An unusable account
// ID surfaces as invoice.ErrInvalidAccountID.
func (uc *implUseCase) billomatRepo(account invoice.Account) (repository.BillomatRepository, error) {
	repo, err := uc.billomat.New(account.AccountID, account.APIKey)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidAccountID) {
			return nil, fmt.Errorf("%w: %v", invoice.ErrInvalidAccountID, err)
		}
		return nil, err
	}
	return repo, nil
}

// alertMessage is the localized text shown to the user for a failure that
// happens before Billomat is contacted.
func alertMessage(loc i18n.Localizer, err error) string {
	switch {
	case errors.Is(err, invoice.ErrMissingAPIKey):
		return loc.T(i18n.KeyAPIKeyMissing)
	case errors.Is(err, invoice.ErrInvalidAccountID):
		return loc.T(i18n.KeyAccountInvalid)
	case errors.Is(err, invoice.ErrInvalidDateRange):
		return loc.T(i18n.KeyDateRangeInvalid)
	default:
		return loc.T(i18n.KeyTimeEntriesFailed)
	}
}

func lineName(e model.TimeEntry) string {
	if e.Subtask == "" {
		return e.Task
	}
	return e.Task + ": " + e.Subtask
}

func unitOf(t model.EntryType) model.Unit {
	switch t {
	case model.EntryTypeTimed:
		return model.UnitHours
	case model.EntryTypeMileage:
		return model.UnitKilometer
	case model.EntryTypeFixed:
		return model.UnitQuantity
	default:
		return model.UnitNone
	}
}

// quantityOf returns the entry's contribution in its unit. Unknown types contribute nothing.
func quantityOf(e model.TimeEntry) decimal.Decimal {
	switch e.Type {
	case model.EntryTypeTimed:
		return e.Duration.Decimal.Div(minutesPerHour)
	case model.EntryTypeMileage:
		return e.Distance.Decimal
	case model.EntryTypeFixed:
		return e.Quantity.Decimal
	default:
		return decimal.Zero
	}
}

func unitLabel(loc i18n.Localizer, u model.Unit) string {
	switch u {
	case model.UnitHours:
		return loc.T(i18n.KeyUnitHours)
	case model.UnitKilometer:
		return loc.T(i18n.KeyUnitKilometer)
	case model.UnitQuantity:
		return loc.T(i18n.KeyUnitQuantity)
	default:
		return ""
	}
}

func supplyDate(start, end time.Time) string {
	return start.Format(supplyDateLayout) + " - " + end.Format(supplyDateLayout)
}

// rejectedMessage renders a failed response the way it is shown to the user.
func rejectedMessage(e *repository.RemoteError) string {
	b, err := json.Marshal(struct {
		StatusCode int    `json:"statusCode"`
		Result     string `json:"result"`
	}{e.StatusCode, e.Body})
	if err != nil {
		return fmt.Sprintf("%d %s", e.StatusCode, e.Body)
	}
	return string(b)
}

func splitClientContact(v string) (clientID, contactID string, ok bool) {
	parts := strings.Split(v, "#")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
