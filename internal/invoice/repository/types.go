package repository

import (
	"errors"
	"fmt"
)

// ErrInvalidAccountID is returned for an account ID that is not a single host label.
var ErrInvalidAccountID = errors.New("billomat account id is not a valid host label")

// ClientContact is one (client, contact) pair read from the directory.
type ClientContact struct {
	ClientID   string
	ClientName string
	ContactID  string
	FirstName  string
	LastName   string
}

// ClientContactsResult is a possibly partial directory listing. Pages and
// clients that could not be read are counted instead of failing the call.
type ClientContactsResult struct {
	Contacts        []ClientContact
	Pages           int
	DegradedPages   int
	DegradedClients int
}

// Degraded reports whether any page or client was skipped.
func (r ClientContactsResult) Degraded() bool {
	return r.DegradedPages > 0 || r.DegradedClients > 0
}

// RemoteError is a Billomat reply with an unexpected status code.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("billomat API error %d: %s", e.StatusCode, e.Body)
}
