package http

import (
	"errors"
	"time"

	"billomat-invoicing/internal/invoice"
	"billomat-invoicing/internal/model"
	"billomat-invoicing/pkg/money"
)

const dateLayout = "2006-01-02"

var errMissingDates = errors.New("start_date and end_date are required")

// --- Request DTOs ---

// formReq mirrors the host form shared by preview and create.
type formReq struct {
	StartDate          string   `json:"start_date" example:"2024-03-01"`
	EndDate            string   `json:"end_date" example:"2024-03-31"`
	TaskIDs            []string `json:"task_ids"`
	OnlyUnbilled       bool     `json:"only_unbilled"`
	IncludeNonBillable bool     `json:"include_non_billable"`
	TeamMemberID       string   `json:"team_member_id"`
	ShowTimesInNotes   bool     `json:"show_times_in_notes"`
	ShowNotes          bool     `json:"show_notes"`
	Locale             string   `json:"locale" example:"de-DE"`
}

func (r formReq) validate() error {
	if r.StartDate == "" || r.EndDate == "" {
		return errMissingDates
	}
	return nil
}

// toFilter parses the dates. A date without a time covers the whole day.
func (r formReq) toFilter() (invoice.Filter, error) {
	start, err := parseDate(r.StartDate, false)
	if err != nil {
		return invoice.Filter{}, err
	}
	end, err := parseDate(r.EndDate, true)
	if err != nil {
		return invoice.Filter{}, err
	}
	return invoice.Filter{
		StartDate:          start,
		EndDate:            end,
		TaskIDs:            r.TaskIDs,
		OnlyUnbilled:       r.OnlyUnbilled,
		IncludeNonBillable: r.IncludeNonBillable,
		TeamMemberID:       r.TeamMemberID,
	}, nil
}

func (r formReq) toOptions() invoice.Options {
	return invoice.Options{
		ShowTimesInNotes: r.ShowTimesInNotes,
		ShowNotes:        r.ShowNotes,
		Locale:           r.Locale,
	}
}

func parseDate(v string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

type previewReq struct {
	Form           formReq           `json:"form"`
	TimeEntries    []model.TimeEntry `json:"time_entries"`
	CurrencySymbol string            `json:"currency_symbol" example:"€"`
}

func (r previewReq) validate() error { return r.Form.validate() }

func (r previewReq) toInput() (invoice.PreviewInput, error) {
	f, err := r.Form.toFilter()
	if err != nil {
		return invoice.PreviewInput{}, err
	}
	return invoice.PreviewInput{
		Filter:         f,
		Options:        r.Form.toOptions(),
		CurrencySymbol: r.CurrencySymbol,
	}, nil
}

type createReq struct {
	Form          formReq           `json:"form"`
	TimeEntries   []model.TimeEntry `json:"time_entries"`
	BillomatID    string            `json:"billomat_id" example:"acme"`
	APIKey        string            `json:"api_key"`
	ClientContact string            `json:"client_contact" example:"7#70"`
	MarkAsBilled  bool              `json:"mark_as_billed"`
}

func (r createReq) validate() error { return r.Form.validate() }

func (r createReq) toInput() (invoice.CreateInput, error) {
	f, err := r.Form.toFilter()
	if err != nil {
		return invoice.CreateInput{}, err
	}
	return invoice.CreateInput{
		Account:       invoice.Account{AccountID: r.BillomatID, APIKey: r.APIKey},
		Filter:        f,
		Options:       r.Form.toOptions(),
		ClientContact: r.ClientContact,
		MarkAsBilled:  r.MarkAsBilled,
	}, nil
}

type clientContactsReq struct {
	BillomatID string `json:"billomat_id" example:"acme"`
	APIKey     string `json:"api_key"`
	Locale     string `json:"locale"`
}

func (r clientContactsReq) toInput() invoice.ListClientContactsInput {
	return invoice.ListClientContactsInput{
		Account: invoice.Account{AccountID: r.BillomatID, APIKey: r.APIKey},
		Locale:  r.Locale,
	}
}

// --- Response DTOs ---

type alertResp struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type lineItemResp struct {
	TaskID    string `json:"task_id"`
	SubtaskID string `json:"subtask_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Price     string `json:"price"`
	Quantity  string `json:"quantity"`
	Note      string `json:"note"`
	Sum       string `json:"sum"`
}

type previewResp struct {
	Markdown string         `json:"markdown"`
	Items    []lineItemResp `json:"items"`
	Total    string         `json:"total"`
}

func (h *handler) newPreviewResp(out invoice.PreviewOutput) previewResp {
	items := make([]lineItemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = lineItemResp{
			TaskID:    it.TaskID,
			SubtaskID: it.SubtaskID,
			Name:      it.Name,
			Unit:      string(it.Unit),
			Price:     money.Fixed2(it.Price),
			Quantity:  money.Fixed2(it.Quantity),
			Note:      it.Note,
			Sum:       money.Fixed2(it.Sum),
		}
	}
	return previewResp{
		Markdown: out.Markdown,
		Items:    items,
		Total:    money.Fixed2(out.Total),
	}
}

type createResp struct {
	InvoiceID      string      `json:"invoice_id"`
	InvoiceURL     string      `json:"invoice_url"`
	OpenedURL      string      `json:"opened_url,omitempty"`
	BilledEntryIDs []string    `json:"billed_entry_ids"`
	Alerts         []alertResp `json:"alerts"`
}

func (h *handler) newCreateResp(out invoice.CreateOutput, host *requestHost) createResp {
	billed := out.BilledEntryIDs
	if billed == nil {
		billed = []string{}
	}
	return createResp{
		InvoiceID:      out.InvoiceID,
		InvoiceURL:     out.InvoiceURL,
		OpenedURL:      host.openedURL,
		BilledEntryIDs: billed,
		Alerts:         alertsOrEmpty(host.alerts),
	}
}

type clientContactsResp struct {
	Options         []invoice.ClientContactOption `json:"options"`
	Pages           int                           `json:"pages"`
	DegradedPages   int                           `json:"degraded_pages"`
	DegradedClients int                           `json:"degraded_clients"`
}

func (h *handler) newClientContactsResp(out invoice.ListClientContactsOutput) clientContactsResp {
	return clientContactsResp{
		Options:         out.Options,
		Pages:           out.Pages,
		DegradedPages:   out.DegradedPages,
		DegradedClients: out.DegradedClients,
	}
}

func alertsOrEmpty(alerts []alertResp) []alertResp {
	if alerts == nil {
		return []alertResp{}
	}
	return alerts
}
