package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"billomat-invoicing/internal/invoice"
	"billomat-invoicing/pkg/log"
)

// Handler is the public interface for the invoice HTTP delivery layer.
type Handler interface {
	Preview(c *gin.Context)
	Create(c *gin.Context)
	ListClientContacts(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      invoice.UseCase
	account invoice.Account
}

// New creates a new HTTP handler for the invoice domain. account fills in
// whatever a request leaves empty.
func New(l log.Logger, uc invoice.UseCase, account invoice.Account) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		account: account,
	}
}

// withDefaults fills the configured account into a. The configured API key is
// only lent to the configured account.
func (h *handler) withDefaults(a invoice.Account) invoice.Account {
	if a.AccountID == "" {
		a.AccountID = h.account.AccountID
	}
	if a.APIKey == "" && strings.EqualFold(a.AccountID, h.account.AccountID) {
		a.APIKey = h.account.APIKey
	}
	return a
}
