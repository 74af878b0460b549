package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType selects which quantity field of a TimeEntry is meaningful.
type EntryType string

const (
	EntryTypeTimed   EntryType = "timed"
	EntryTypeMileage EntryType = "mileage"
	EntryTypeFixed   EntryType = "fixed"
)

// Unit is the invoice unit a line item is billed in.
type Unit string

const (
	UnitNone      Unit = ""
	UnitHours     Unit = "hours"
	UnitKilometer Unit = "kilometer"
	UnitQuantity  Unit = "quantity"
)

// BillingState is the host-side invoicing flag of a time entry.
type BillingState int

const (
	BillingStateUnbilled BillingState = 0
	BillingStateBilled   BillingState = 1
	BillingStatePaid     BillingState = 2
)

// TimeEntry is a tracked record as delivered by the host application.
// Exactly one of Duration, Distance and Quantity is meaningful, chosen by Type.
type TimeEntry struct {
	ID        string          `json:"id"`
	TaskID    string          `json:"task_id"`
	SubtaskID string          `json:"subtask_id"`
	Task      string          `json:"task"`
	Subtask   string          `json:"subtask"`
	Type      EntryType       `json:"type"`
	Rate      decimal.Decimal `json:"rate"`
	Sum       decimal.Decimal `json:"sum"`
	Note      string          `json:"note"`

	Start    *time.Time          `json:"start,omitempty"`
	End      *time.Time          `json:"end,omitempty"`
	Duration decimal.NullDecimal `json:"duration"` // minutes
	Distance decimal.NullDecimal `json:"distance"`
	Quantity decimal.NullDecimal `json:"quantity"`

	// Host-side attributes the time-entry query filters on.
	BillingState BillingState `json:"billing_state"`
	Billable     *bool        `json:"billable,omitempty"` // nil means billable
	UserID       string       `json:"user_id,omitempty"`
}

// IsBillable reports whether the entry is billable; entries without the flag are.
func (e TimeEntry) IsBillable() bool {
	return e.Billable == nil || *e.Billable
}
