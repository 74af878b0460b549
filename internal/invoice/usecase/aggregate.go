package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"billomat-invoicing/internal/invoice"
	"billomat-invoicing/internal/invoice/repository"
	"billomat-invoicing/internal/model"
	"billomat-invoicing/pkg/i18n"
	"billomat-invoicing/pkg/money"
)

// timeEntries queries the source for the filter and keeps only entries with a positive sum.
// Every other read path starts here.
func (uc *implUseCase) timeEntries(ctx context.Context, src repository.TimeEntrySource, f invoice.Filter) ([]model.TimeEntry, error) {
	if !f.StartDate.IsZero() && !f.EndDate.IsZero() && f.EndDate.Before(f.StartDate) {
		return nil, invoice.ErrInvalidDateRange
	}

	q := repository.TimeEntryQuery{
		Start:        f.StartDate,
		End:          f.EndDate,
		TaskIDs:      f.TaskIDs,
		TeamMemberID: f.TeamMemberID,
	}
	if f.OnlyUnbilled {
		state := model.BillingStateUnbilled
		q.BillingState = &state
	}
	if !f.IncludeNonBillable {
		billable := true
		q.Billable = &billable
	}

	entries, err := src.TimeEntries(ctx, q)
	if err != nil {
		uc.l.Errorf(ctx, "invoice.usecase.timeEntries: failed to query time entries: %v", err)
		return nil, fmt.Errorf("query time entries: %w", err)
	}

	out := make([]model.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if e.Sum.IsPositive() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (uc *implUseCase) EntryIDs(ctx context.Context, host invoice.Host, filter invoice.Filter) ([]string, error) {
	entries, err := uc.timeEntries(ctx, host, filter)
	if err != nil {
		return nil, err
	}
	return entryIDs(entries), nil
}

func entryIDs(entries []model.TimeEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

// aggregate groups entries by (task, subtask) into line items sorted by name.
// The first entry of a group fixes its name, unit and price.
func aggregate(entries []model.TimeEntry, opts invoice.Options, loc i18n.Localizer) []invoice.LineItem {
	index := make(map[groupKey]int)
	items := make([]invoice.LineItem, 0)

	for _, e := range entries {
		key := groupKey{taskID: e.TaskID, subtaskID: e.SubtaskID}
		i, ok := index[key]
		if !ok {
			items = append(items, invoice.LineItem{
				TaskID:    e.TaskID,
				SubtaskID: e.SubtaskID,
				Name:      lineName(e),
				Unit:      unitOf(e.Type),
				Price:     e.Rate,
			})
			i = len(items) - 1
			index[key] = i
		}

		item := &items[i]
		qty := quantityOf(e)
		item.Quantity = item.Quantity.Add(qty)
		item.Sum = item.Sum.Add(e.Sum)

		if item.Note != "" && e.Note != "" {
			item.Note += noteSeparator
		}
		if opts.ShowTimesInNotes && e.Type != model.EntryTypeFixed && e.Start != nil && e.End != nil {
			item.Note += fmt.Sprintf("%s %s - %s (%s %s)%s",
				loc.FormatDate(*e.Start, false),
				loc.FormatDate(*e.Start, true),
				loc.FormatDate(*e.End, true),
				money.Round(qty, 1),
				unitLabel(loc, item.Unit),
				noteSeparator,
			)
		}
		item.Note += e.Note
	}

	slices.SortStableFunc(items, func(a, b invoice.LineItem) int {
		return strings.Compare(a.Name, b.Name)
	})
	return items
}
