package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Identity is the signed-in actor. Authentication is mocked: the identity is
// synthesized from whatever the credential verifier accepted, never looked up
// against a user store.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  Role      `json:"role"`
}

// IsPrivileged reports whether the identity may review requests and manage the
// catalog. The role claim is assigned at login.
func (i *Identity) IsPrivileged() bool {
	return i != nil && i.Role == RoleAdmin
}

const (
	defaultAdminEmail  = "admin@luxe.com"
	defaultAdminDomain = "@admin.com"
)

// IsAdminEmail is the legacy privilege predicate: an exact match on the
// administrative address or a suffix match on the administrative domain. Kept
// for identities persisted before the role claim existed.
func IsAdminEmail(email string) bool {
	return email == defaultAdminEmail || strings.HasSuffix(email, defaultAdminDomain)
}

// AdminMatcher builds a privilege predicate for a deployment-specific admin
// address and domain suffix. Empty arguments fall back to the defaults.
func AdminMatcher(email, domain string) func(string) bool {
	if email == "" {
		email = defaultAdminEmail
	}
	if domain == "" {
		domain = defaultAdminDomain
	}
	if !strings.HasPrefix(domain, "@") {
		domain = "@" + domain
	}
	return func(candidate string) bool {
		return candidate == email || strings.HasSuffix(candidate, domain)
	}
}

// SessionRepository persists the current identity. Load returns (nil, nil)
// when nobody is signed in.
type SessionRepository interface {
	Load() (*Identity, error)
	Save(identity *Identity) error
	Clear() error
}
