package http

import (
	"github.com/gin-gonic/gin"

	"billomat-invoicing/pkg/response"
)

// Preview godoc
// @Summary     Preview an invoice
// @Description Aggregates the submitted time entries into line items and renders the markdown preview.
// @Tags        Invoice
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Form values and time entries"
// @Success     200  {object} previewResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/invoices/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	host := newRequestHost(req.TimeEntries)
	output, err := h.uc.Preview(ctx, host, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), map[string]interface{}{"alerts": alertsOrEmpty(host.alerts)})
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Create godoc
// @Summary     Create a Billomat invoice
// @Description Submits the aggregated line items to Billomat. Alerts, billed entry IDs and the
// @Description invoice URL the host should open are returned with the result.
// @Tags        Invoice
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Form values, time entries and Billomat selection"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request - malformed client contact, invalid Billomat ID or missing API key"
// @Failure     502  {object} response.Resp "Billomat rejected the invoice"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/invoices [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input.Account = h.withDefaults(input.Account)

	host := newRequestHost(req.TimeEntries)
	output, err := h.uc.Create(ctx, host, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), map[string]interface{}{"alerts": alertsOrEmpty(host.alerts)})
		return
	}

	response.OK(c, h.newCreateResp(output, host))
}

// ListClientContacts godoc
// @Summary     List Billomat client contacts
// @Description Resolves every client and contact of the account into a picklist. Pages or clients
// @Description that could not be read are counted in degraded_pages and degraded_clients.
// @Tags        Billomat
// @Accept      json
// @Produce     json
// @Param       body body clientContactsReq true "Billomat account"
// @Success     200  {object} clientContactsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/billomat/client-contacts [POST]
func (h *handler) ListClientContacts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClientContactsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input := req.toInput()
	input.Account = h.withDefaults(input.Account)

	output, err := h.uc.ListClientContacts(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListClientContacts: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newClientContactsResp(output))
}
