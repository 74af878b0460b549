package billomat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"billomat-invoicing/internal/invoice/repository"
)

// APIKeyHeader carries the Billomat API key on every request.
const APIKeyHeader = "X-BillomatApiKey"

// Client is the HTTP wrapper for the Billomat REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Billomat HTTP client. baseURL must end with "/api/".
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListClients fetches one page via GET /clients?per_page=N&page=P.
// A non-200 reply is returned as *repository.RemoteError.
func (c *Client) ListClients(ctx context.Context, page, perPage int) (ClientPage, error) {
	query := fmt.Sprintf("per_page=%d&page=%d", perPage, page)

	status, raw, err := c.do(ctx, http.MethodGet, "clients", query, nil)
	if err != nil {
		return ClientPage{}, fmt.Errorf("failed to call billomat clients API: %w", err)
	}
	if status != http.StatusOK {
		return ClientPage{}, &repository.RemoteError{StatusCode: status, Body: string(raw)}
	}

	var env clientsEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ClientPage{}, fmt.Errorf("failed to decode billomat clients response: %w", err)
	}

	out := ClientPage{Total: int(env.Clients.Total)}
	if env.Clients.Client == nil {
		return out, nil
	}
	out.Listed = true
	out.Clients = make([]ClientRecord, 0, len(*env.Clients.Client))
	for _, wc := range *env.Clients.Client {
		out.Clients = append(out.Clients, ClientRecord{ID: string(wc.ID), Name: wc.Name})
	}
	return out, nil
}

// ListContacts fetches one page via GET /contacts?client_id=ID&per_page=N&page=P.
func (c *Client) ListContacts(ctx context.Context, clientID string, page, perPage int) (ContactPage, error) {
	query := fmt.Sprintf("client_id=%s&per_page=%d&page=%d", url.QueryEscape(clientID), perPage, page)

	status, raw, err := c.do(ctx, http.MethodGet, "contacts", query, nil)
	if err != nil {
		return ContactPage{}, fmt.Errorf("failed to call billomat contacts API: %w", err)
	}
	if status != http.StatusOK {
		return ContactPage{}, &repository.RemoteError{StatusCode: status, Body: string(raw)}
	}

	var env contactsEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ContactPage{}, fmt.Errorf("failed to decode billomat contacts response: %w", err)
	}

	out := ContactPage{Total: int(env.Contacts.Total)}
	if env.Contacts.Contact == nil {
		return out, nil
	}
	out.Listed = true
	out.Contacts = make([]Contact, 0, len(*env.Contacts.Contact))
	for _, wc := range *env.Contacts.Contact {
		out.Contacts = append(out.Contacts, Contact{ID: string(wc.ID), FirstName: wc.FirstName, LastName: wc.LastName})
	}
	return out, nil
}

// CreateInvoice creates a new invoice via POST /invoices. Anything but 201
// is returned as *repository.RemoteError carrying the raw body.
func (c *Client) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (Invoice, error) {
	status, raw, err := c.do(ctx, http.MethodPost, "invoices", "", req)
	if err != nil {
		return Invoice{}, fmt.Errorf("failed to call billomat invoices API: %w", err)
	}
	if status != http.StatusCreated {
		return Invoice{}, &repository.RemoteError{StatusCode: status, Body: string(raw)}
	}

	var env invoiceEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Invoice{}, fmt.Errorf("failed to decode billomat invoice response: %w", err)
	}
	if env.Invoice.ID == "" {
		return Invoice{}, fmt.Errorf("billomat invoice response carries no id: %s", string(raw))
	}
	return Invoice{ID: string(env.Invoice.ID)}, nil
}

func (c *Client) do(ctx context.Context, method, path, rawQuery string, body any) (int, []byte, error) {
	target := c.baseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set(APIKeyHeader, c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, raw, nil
}
