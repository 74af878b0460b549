package usecase_test

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"billomat-invoicing/internal/invoice/repository"
	"billomat-invoicing/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type alert struct {
	title   string
	message string
}

// mockHost hands out its entries unfiltered and records every side effect.
type mockHost struct {
	entries    []model.TimeEntry
	queryErr   error
	billingErr error
	openErr    error

	queries     []repository.TimeEntryQuery
	alerts      []alert
	billedCalls int
	billedIDs   []string
	billedState model.BillingState
	opened      []string
}

func (h *mockHost) TimeEntries(ctx context.Context, q repository.TimeEntryQuery) ([]model.TimeEntry, error) {
	h.queries = append(h.queries, q)
	if h.queryErr != nil {
		return nil, h.queryErr
	}
	return h.entries, nil
}

func (h *mockHost) SetBillingState(ctx context.Context, ids []string, state model.BillingState) error {
	h.billedCalls++
	h.billedIDs = ids
	h.billedState = state
	return h.billingErr
}

func (h *mockHost) ShowAlert(ctx context.Context, title, message string) {
	h.alerts = append(h.alerts, alert{title: title, message: message})
}

func (h *mockHost) OpenURL(ctx context.Context, url string) error {
	h.opened = append(h.opened, url)
	return h.openErr
}

// mockBillomat serves as both factory and repository.
type mockBillomat struct {
	contacts  repository.ClientContactsResult
	listErr   error
	invoiceID string
	createErr error
	newErr    error

	accountID string
	apiKey    string
	newCalls  int
	listCalls int
	created   []repository.CreateInvoiceOptions
}

func (m *mockBillomat) New(accountID, apiKey string) (repository.BillomatRepository, error) {
	m.newCalls++
	m.accountID = accountID
	m.apiKey = apiKey
	if m.newErr != nil {
		return nil, m.newErr
	}
	return m, nil
}

func (m *mockBillomat) ListClientContacts(ctx context.Context) (repository.ClientContactsResult, error) {
	m.listCalls++
	return m.contacts, m.listErr
}

func (m *mockBillomat) CreateInvoice(ctx context.Context, opt repository.CreateInvoiceOptions) (string, error) {
	m.created = append(m.created, opt)
	if m.createErr != nil {
		return "", m.createErr
	}
	return m.invoiceID, nil
}

func (m *mockBillomat) InvoiceURL(id string) string {
	return "https://acme.billomat.net/app/invoices/show/entityId/" + id
}

var errHostDown = errors.New("host unavailable")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func timed(id, taskID, subtaskID, task, subtask, rate, sum, minutes, note string) model.TimeEntry {
	return model.TimeEntry{
		ID: id, TaskID: taskID, SubtaskID: subtaskID, Task: task, Subtask: subtask,
		Type: model.EntryTypeTimed, Rate: dec(rate), Sum: dec(sum), Duration: nullDec(minutes), Note: note,
	}
}

func mileage(id, taskID, task, rate, sum, km string) model.TimeEntry {
	return model.TimeEntry{
		ID: id, TaskID: taskID, Task: task,
		Type: model.EntryTypeMileage, Rate: dec(rate), Sum: dec(sum), Distance: nullDec(km),
	}
}

func fixed(id, taskID, task, rate, sum, qty, note string) model.TimeEntry {
	return model.TimeEntry{
		ID: id, TaskID: taskID, Task: task,
		Type: model.EntryTypeFixed, Rate: dec(rate), Sum: dec(sum), Quantity: nullDec(qty), Note: note,
	}
}
