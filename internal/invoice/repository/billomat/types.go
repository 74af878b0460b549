package billomat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ---- Request/Response types scoped to this package ----

// ClientRecord is a Billomat client (customer) record.
type ClientRecord struct {
	ID   string
	Name string
}

// Contact is a Billomat contact person of a client.
type Contact struct {
	ID        string
	FirstName string
	LastName  string
}

// ClientPage is one page of GET /clients. Listed is false when the reply
// carried no client list at all.
type ClientPage struct {
	Total   int
	Clients []ClientRecord
	Listed  bool
}

// ContactPage is one page of GET /contacts.
type ContactPage struct {
	Total    int
	Contacts []Contact
	Listed   bool
}

// CreateInvoiceRequest is the body for POST /invoices.
type CreateInvoiceRequest struct {
	Invoice InvoicePayload `json:"invoice"`
}

type InvoicePayload struct {
	ClientID       string             `json:"client_id"`
	ContactID      string             `json:"contact_id"`
	SupplyDateType string             `json:"supply_date_type"`
	SupplyDate     string             `json:"supply_date"`
	NetGross       string             `json:"net_gross"`
	Items          []InvoiceItemEntry `json:"invoice-items"`
}

type InvoiceItemEntry struct {
	Item InvoiceItem `json:"invoice-item"`
}

type InvoiceItem struct {
	Unit        string `json:"unit"`
	UnitPrice   string `json:"unit_price"`
	Quantity    string `json:"quantity"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Invoice is the subset of the created invoice we read back.
type Invoice struct {
	ID string
}

// Wire shapes. Billomat serializes numbers as strings on some endpoints and
// collapses single-element lists into a bare object.

type clientsEnvelope struct {
	Clients struct {
		Total  flexInt               `json:"@total"`
		Client *flexList[wireClient] `json:"client"`
	} `json:"clients"`
}

type wireClient struct {
	ID   flexString `json:"id"`
	Name string     `json:"name"`
}

type contactsEnvelope struct {
	Contacts struct {
		Total   flexInt                `json:"@total"`
		Contact *flexList[wireContact] `json:"contact"`
	} `json:"contacts"`
}

type wireContact struct {
	ID        flexString `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
}

type invoiceEnvelope struct {
	Invoice struct {
		ID flexString `json:"id"`
	} `json:"invoice"`
}

// flexString accepts a JSON string or number.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	*s = flexString(n.String())
	return nil
}

// flexInt accepts a JSON integer or a string holding one.
type flexInt int

func (i *flexInt) UnmarshalJSON(b []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	if s == "" {
		*i = 0
		return nil
	}
	n, err := strconv.Atoi(string(s))
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", string(s), err)
	}
	*i = flexInt(n)
	return nil
}

// flexList accepts a JSON array or a single object.
type flexList[T any] []T

func (l *flexList[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '[' {
		var items []T
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var item T
	if err := json.Unmarshal(b, &item); err != nil {
		return err
	}
	*l = flexList[T]{item}
	return nil
}
