package usecase_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"billomat-invoicing/internal/invoice"
	"billomat-invoicing/internal/invoice/usecase"
	"billomat-invoicing/internal/model"
	"billomat-invoicing/pkg/i18n"
)

func newUseCase(b *mockBillomat) invoice.UseCase {
	if b == nil {
		b = &mockBillomat{}
	}
	return usecase.New(&mockLogger{}, i18n.New("en-US"), b, "", "€")
}

func previewItems(t *testing.T, entries []model.TimeEntry, opts invoice.Options) []invoice.LineItem {
	t.Helper()
	out, err := newUseCase(nil).Preview(context.Background(), &mockHost{entries: entries}, invoice.PreviewInput{Options: opts})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.Items
}

func TestTimeEntryQuery(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name         string
		filter       invoice.Filter
		wantState    *model.BillingState
		wantBillable *bool
	}{
		{
			name:         "Only Unbilled Excluding Non Billable",
			filter:       invoice.Filter{StartDate: start, EndDate: end, OnlyUnbilled: true},
			wantState:    new(model.BillingState),
			wantBillable: func() *bool { b := true; return &b }(),
		},
		{
			name:   "Everything",
			filter: invoice.Filter{StartDate: start, EndDate: end, IncludeNonBillable: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := &mockHost{}
			tt.filter.TaskIDs = []string{"t1", "t2"}
			tt.filter.TeamMemberID = "u1"

			if _, err := newUseCase(nil).EntryIDs(context.Background(), host, tt.filter); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(host.queries) != 1 {
				t.Fatalf("expected one query, got %d", len(host.queries))
			}
			q := host.queries[0]
			if !q.Start.Equal(start) || !q.End.Equal(end) || q.TeamMemberID != "u1" || !slices.Equal(q.TaskIDs, []string{"t1", "t2"}) {
				t.Errorf("unexpected query %+v", q)
			}
			if (q.BillingState == nil) != (tt.wantState == nil) || (q.BillingState != nil && *q.BillingState != *tt.wantState) {
				t.Errorf("billing state filter = %v, want %v", q.BillingState, tt.wantState)
			}
			if (q.Billable == nil) != (tt.wantBillable == nil) || (q.Billable != nil && *q.Billable != *tt.wantBillable) {
				t.Errorf("billable filter = %v, want %v", q.Billable, tt.wantBillable)
			}
		})
	}
}

func TestNonPositiveSumsExcluded(t *testing.T) {
	entries := []model.TimeEntry{
		timed("e1", "t1", "", "Design", "", "100", "150", "90", ""),
		timed("e2", "t1", "", "Design", "", "100", "0", "30", ""),
		timed("e3", "t2", "", "Support", "", "100", "-5", "30", ""),
		fixed("e4", "t3", "Licenses", "25", "100", "4", ""),
	}
	host := &mockHost{entries: entries}
	uc := newUseCase(nil)

	ids, err := uc.EntryIDs(context.Background(), host, invoice.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(ids, []string{"e1", "e4"}) {
		t.Errorf("expected ids [e1 e4], got %v", ids)
	}

	items := previewItems(t, entries, invoice.Options{})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if !items[0].Quantity.Equal(dec("1.5")) {
		t.Errorf("zero-sum entry leaked into Design quantity: %s", items[0].Quantity)
	}
	for _, it := range items {
		if it.Name == "Support" {
			t.Errorf("negative-sum entry aggregated: %+v", it)
		}
	}
}

func TestGrouping(t *testing.T) {
	entries := []model.TimeEntry{
		timed("e1", "t1", "s1", "Design", "Review", "100", "150", "90", ""),
		timed("e2", "t1", "s1", "Design", "Review", "120", "60", "30", ""),
		// same concatenation "123", different tuple
		timed("e3", "1", "23", "A", "", "10", "10", "60", ""),
		timed("e4", "12", "3", "B", "", "10", "10", "60", ""),
	}
	items := previewItems(t, entries, invoice.Options{})
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d: %+v", len(items), items)
	}

	var design invoice.LineItem
	for _, it := range items {
		if it.TaskID == "t1" {
			design = it
		}
	}
	if design.Name != "Design: Review" {
		t.Errorf("unexpected name %q", design.Name)
	}
	if !design.Quantity.Equal(dec("2")) || !design.Sum.Equal(dec("210")) {
		t.Errorf("expected quantity 2 and sum 210, got %s and %s", design.Quantity, design.Sum)
	}
	if !design.Price.Equal(dec("100")) {
		t.Errorf("expected first-seen price 100, got %s", design.Price)
	}
}

func TestUnitMapping(t *testing.T) {
	unknown := timed("e4", "t4", "", "Other", "", "1", "1", "60", "")
	unknown.Type = "break"

	tests := []struct {
		name     string
		entry    model.TimeEntry
		wantQty  string
		wantUnit model.Unit
	}{
		{"Timed", timed("e1", "t1", "", "Timed", "", "100", "150", "90", ""), "1.5", model.UnitHours},
		{"Mileage", mileage("e2", "t2", "Mileage", "0.3", "3.69", "12.3"), "12.3", model.UnitKilometer},
		{"Fixed", fixed("e3", "t3", "Fixed", "25", "100", "4", ""), "4", model.UnitQuantity},
		{"Unknown", unknown, "0", model.UnitNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := previewItems(t, []model.TimeEntry{tt.entry}, invoice.Options{})
			if len(items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(items))
			}
			if !items[0].Quantity.Equal(dec(tt.wantQty)) {
				t.Errorf("quantity = %s, want %s", items[0].Quantity, tt.wantQty)
			}
			if items[0].Unit != tt.wantUnit {
				t.Errorf("unit = %q, want %q", items[0].Unit, tt.wantUnit)
			}
		})
	}
}

func TestNames(t *testing.T) {
	items := previewItems(t, []model.TimeEntry{
		timed("e1", "t1", "", "Design", "", "1", "1", "60", ""),
		timed("e2", "t1", "s1", "Design", "Review", "1", "1", "60", ""),
	}, invoice.Options{})

	got := []string{items[0].Name, items[1].Name}
	if !slices.Equal(got, []string{"Design", "Design: Review"}) {
		t.Errorf("unexpected names %v", got)
	}
}

func TestSorting(t *testing.T) {
	entries := []model.TimeEntry{
		fixed("e1", "t1", "banana", "1", "1", "1", ""),
		fixed("e2", "t2", "Same", "1", "1", "1", ""),
		fixed("e3", "t3", "Cherry", "1", "1", "1", ""),
		fixed("e4", "t4", "Same", "1", "1", "1", ""),
		fixed("e5", "t5", "Apple", "1", "1", "1", ""),
	}

	for run := 0; run < 5; run++ {
		items := previewItems(t, entries, invoice.Options{})
		var got []string
		for _, it := range items {
			got = append(got, it.Name+"/"+it.TaskID)
		}
		want := []string{"Apple/t5", "Cherry/t3", "Same/t2", "Same/t4", "banana/t1"}
		if !slices.Equal(got, want) {
			t.Fatalf("run %d: got %v, want %v", run, got, want)
		}
	}
}

func TestNotes(t *testing.T) {
	at := func(h, m int) *time.Time {
		v := time.Date(2024, 3, 7, h, m, 0, 0, time.UTC)
		return &v
	}

	first := timed("e1", "t1", "", "Design", "", "100", "150", "90", "Kickoff")
	first.Start, first.End = at(14, 5), at(15, 35)
	second := timed("e2", "t1", "", "Design", "", "100", "50", "30", "")
	third := timed("e3", "t1", "", "Design", "", "100", "50", "30", "Wrap-up")
	withTimesNoNote := timed("e4", "t2", "", "Review", "", "100", "50", "20", "")
	withTimesNoNote.Start, withTimesNoNote.End = at(9, 0), at(9, 20)
	fixedWithTimes := fixed("e5", "t3", "Setup", "10", "10", "1", "Laptop")
	fixedWithTimes.Start, fixedWithTimes.End = at(9, 0), at(9, 20)

	entries := []model.TimeEntry{first, second, third, withTimesNoNote, fixedWithTimes}

	t.Run("Plain", func(t *testing.T) {
		items := previewItems(t, entries, invoice.Options{})
		if items[0].Note != "Kickoff<br/>Wrap-up" {
			t.Errorf("unexpected note %q", items[0].Note)
		}
		if items[1].Note != "" {
			t.Errorf("expected empty note, got %q", items[1].Note)
		}
	})

	t.Run("Times In Notes", func(t *testing.T) {
		items := previewItems(t, entries, invoice.Options{ShowTimesInNotes: true})
		if want := "3/7/2024 02:05 PM - 03:35 PM (1.5 hours)<br/>Kickoff<br/>Wrap-up"; items[0].Note != want {
			t.Errorf("got %q, want %q", items[0].Note, want)
		}
		if want := "3/7/2024 09:00 AM - 09:20 AM (0.3 hours)<br/>"; items[1].Note != want {
			t.Errorf("got %q, want %q", items[1].Note, want)
		}
		if items[2].Note != "Laptop" {
			t.Errorf("fixed entries carry no times, got %q", items[2].Note)
		}
	})

	t.Run("German Locale", func(t *testing.T) {
		items := previewItems(t, entries[:1], invoice.Options{ShowTimesInNotes: true, Locale: "de-DE"})
		if want := "7.3.2024 14:05 - 15:35 (1.5 Std.)<br/>Kickoff"; items[0].Note != want {
			t.Errorf("got %q, want %q", items[0].Note, want)
		}
	})
}

func TestTimeEntryErrors(t *testing.T) {
	uc := newUseCase(nil)

	t.Run("Inverted Range", func(t *testing.T) {
		f := invoice.Filter{
			StartDate: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}
		host := &mockHost{}
		_, err := uc.EntryIDs(context.Background(), host, f)
		if !errors.Is(err, invoice.ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
		if len(host.queries) != 0 {
			t.Errorf("host must not be queried")
		}
	})

	t.Run("Source Failure", func(t *testing.T) {
		_, err := uc.EntryIDs(context.Background(), &mockHost{queryErr: errHostDown}, invoice.Filter{})
		if !errors.Is(err, errHostDown) {
			t.Fatalf("expected wrapped host error, got %v", err)
		}
	})
}
