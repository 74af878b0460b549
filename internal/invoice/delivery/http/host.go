package http

import (
	"context"

	"billomat-invoicing/internal/invoice/repository"
	"billomat-invoicing/internal/invoice/repository/inline"
	"billomat-invoicing/internal/model"
)

// requestHost stands in for the calling application during one request.
// Entries come from the request body, side effects are recorded and echoed
// back in the response.
type requestHost struct {
	repository.TimeEntrySource

	alerts    []alertResp
	billedIDs []string
	openedURL string
}

func newRequestHost(entries []model.TimeEntry) *requestHost {
	return &requestHost{TimeEntrySource: inline.New(entries)}
}

func (h *requestHost) SetBillingState(ctx context.Context, ids []string, state model.BillingState) error {
	if state == model.BillingStateBilled {
		h.billedIDs = append(h.billedIDs, ids...)
	}
	return nil
}

func (h *requestHost) ShowAlert(ctx context.Context, title, message string) {
	h.alerts = append(h.alerts, alertResp{Title: title, Message: message})
}

func (h *requestHost) OpenURL(ctx context.Context, url string) error {
	h.openedURL = url
	return nil
}
