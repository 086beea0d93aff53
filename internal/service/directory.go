package service

import (
	"crypto/tls"
	"time"

	"property-portal-backend/internal/config"
	"property-portal-backend/internal/logger"

	"github.com/go-ldap/ldap/v3"
)

// LDAPDirectory resolves invitee profiles from a corporate LDAP directory.
// It implements DirectoryLookup; wiring it is optional and controlled by
// configuration.
type LDAPDirectory struct {
	cfg *config.Config
}

// NewLDAPDirectory creates a new LDAP directory lookup
func NewLDAPDirectory(cfg *config.Config) *LDAPDirectory {
	return &LDAPDirectory{cfg: cfg}
}

// LookupByEmail searches the directory for a user by mail attribute and
// returns their profile, or nil when the address is unknown
func (d *LDAPDirectory) LookupByEmail(email string) (*DirectoryProfile, error) {
	addr := d.cfg.LDAPHost + ":" + d.cfg.LDAPPort

	l, err := ldap.DialTLS("tcp", addr, &tls.Config{InsecureSkipVerify: d.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if d.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(d.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(d.cfg.LDAPBindDN, d.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	filter := "(mail=" + ldap.EscapeFilter(email) + ")"
	attrs := []string{"displayName", "mobile"}

	req := ldap.NewSearchRequest(
		d.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		1,
		d.cfg.LDAPTimeoutSec,
		false,
		filter,
		attrs,
		nil,
	)

	logger.New().Debugf("Searching LDAP directory at %s for %s", addr, email)

	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}
	if len(res.Entries) == 0 {
		logger.New().WithField("email", email).Debug("No directory entry found for invitee")
		return nil, nil
	}

	e := res.Entries[0]
	return &DirectoryProfile{
		DisplayName: e.GetAttributeValue("displayName"),
		PhoneNumber: e.GetAttributeValue("mobile"),
	}, nil
}
