// Package inline serves time entries handed over by the caller, applying the
// same query contract the host application implements.
package inline

import (
	"context"
	"slices"

	"billomat-invoicing/internal/invoice/repository"
	"billomat-invoicing/internal/model"
)

type implSource struct {
	entries []model.TimeEntry
}

// New creates a TimeEntrySource over entries. The slice is not copied.
func New(entries []model.TimeEntry) repository.TimeEntrySource {
	return &implSource{entries: entries}
}

func (s *implSource) TimeEntries(ctx context.Context, q repository.TimeEntryQuery) ([]model.TimeEntry, error) {
	out := make([]model.TimeEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if matches(e, q) {
			out = append(out, e)
		}
	}
	return out, nil
}

func matches(e model.TimeEntry, q repository.TimeEntryQuery) bool {
	// Entries without a start timestamp are not constrained by the date range.
	if e.Start != nil {
		if !q.Start.IsZero() && e.Start.Before(q.Start) {
			return false
		}
		if !q.End.IsZero() && e.Start.After(q.End) {
			return false
		}
	}
	if len(q.TaskIDs) > 0 && !slices.Contains(q.TaskIDs, e.TaskID) {
		return false
	}
	if q.BillingState != nil && e.BillingState != *q.BillingState {
		return false
	}
	if q.Billable != nil && e.IsBillable() != *q.Billable {
		return false
	}
	if q.TeamMemberID != "" && e.UserID != q.TeamMemberID {
		return false
	}
	return true
}
