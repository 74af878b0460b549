package billomat

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"billomat-invoicing/internal/invoice/repository"
	pkgLog "billomat-invoicing/pkg/log"
)

const (
	// DefaultAccountID is used when no account identifier is configured.
	DefaultAccountID = "default"

	DefaultClientPageSize  = 50
	DefaultContactPageSize = 100
)

var accountIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Config is shared by every repository the factory builds.
type Config struct {
	// BaseURL replaces https://<account>.billomat.net/api/ when set. The
	// account ID is substituted for "{account}".
	BaseURL         string
	ClientPageSize  int
	ContactPageSize int
	HTTPClient      *http.Client
}

type implFactory struct {
	cfg Config
	l   pkgLog.Logger
}

// NewFactory creates a BillomatFactory.
func NewFactory(cfg Config, l pkgLog.Logger) repository.BillomatFactory {
	if cfg.ClientPageSize <= 0 {
		cfg.ClientPageSize = DefaultClientPageSize
	}
	if cfg.ContactPageSize <= 0 {
		cfg.ContactPageSize = DefaultContactPageSize
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	return &implFactory{cfg: cfg, l: l}
}

// New creates a repository bound to accountID. An empty accountID means "default".
// The account ID becomes the subdomain, so anything but one lowercase DNS label is rejected.
func (f *implFactory) New(accountID, apiKey string) (repository.BillomatRepository, error) {
	if accountID == "" {
		accountID = DefaultAccountID
	}
	accountID = strings.ToLower(accountID)
	if !accountIDPattern.MatchString(accountID) {
		return nil, fmt.Errorf("%w: %q", repository.ErrInvalidAccountID, accountID)
	}
	return &implRepository{
		client:          NewClient(f.apiURL(accountID), apiKey, f.cfg.HTTPClient),
		accountID:       accountID,
		appURL:          fmt.Sprintf("https://%s.billomat.net", accountID),
		clientPageSize:  f.cfg.ClientPageSize,
		contactPageSize: f.cfg.ContactPageSize,
		l:               f.l,
	}, nil
}

func (f *implFactory) apiURL(accountID string) string {
	if f.cfg.BaseURL != "" {
		return strings.ReplaceAll(f.cfg.BaseURL, "{account}", accountID)
	}
	return fmt.Sprintf("https://%s.billomat.net/api/", accountID)
}
