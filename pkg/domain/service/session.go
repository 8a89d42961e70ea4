package service

import (
	"fmt"
	"strings"
	"time"

	"storefront/pkg/domain/model"
	"storefront/pkg/logger"

	"github.com/google/uuid"
)

// CredentialVerifier checks a credential pair before an identity is
// synthesized. Swapping in a real verifier does not touch the other
// containers.
type CredentialVerifier interface {
	Verify(email, password string) error
}

// MockVerifier accepts any non-empty credentials after a fixed delay that
// stands in for a network round-trip. It performs no real verification and
// must not be used outside development and tests.
type MockVerifier struct {
	Delay time.Duration
}

func (v MockVerifier) Verify(email, password string) error {
	if email == "" {
		return model.ErrEmailRequired
	}
	if password == "" {
		return model.ErrPasswordRequired
	}
	if v.Delay > 0 {
		time.Sleep(v.Delay)
	}
	return nil
}

// Session holds the signed-in identity and persists it across restarts.
type Session interface {
	Login(email, password string) (*model.Identity, error)
	Signup(email, password, name string) (*model.Identity, error)
	Logout() error
	Current() (*model.Identity, error)
}

// NewSessionService builds the session container. isAdmin decides the role
// claim at login; nil falls back to the default administrative pattern.
func NewSessionService(repo model.SessionRepository, verifier CredentialVerifier, isAdmin func(email string) bool, dispatcher EventDispatcher, log logger.Logger) Session {
	if isAdmin == nil {
		isAdmin = model.IsAdminEmail
	}
	if log == nil {
		log = logger.Default()
	}
	return &sessionService{
		repo:       repo,
		verifier:   verifier,
		isAdmin:    isAdmin,
		dispatcher: dispatcher,
		log:        log,
	}
}

type sessionService struct {
	repo       model.SessionRepository
	verifier   CredentialVerifier
	isAdmin    func(email string) bool
	dispatcher EventDispatcher
	log        logger.Logger
}

// Login synthesizes an identity from the email, naming it after the local
// part.
func (s *sessionService) Login(email, password string) (*model.Identity, error) {
	if err := s.verifier.Verify(email, password); err != nil {
		return nil, err
	}
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	return s.establish(email, name)
}

func (s *sessionService) Signup(email, password, name string) (*model.Identity, error) {
	if err := s.verifier.Verify(email, password); err != nil {
		return nil, err
	}
	if name == "" {
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		} else {
			name = email
		}
	}
	return s.establish(email, name)
}

func (s *sessionService) establish(email, name string) (*model.Identity, error) {
	role := model.RoleCustomer
	if s.isAdmin(email) {
		role = model.RoleAdmin
	}

	identity := &model.Identity{
		ID:    uuid.Must(uuid.NewV7()),
		Email: email,
		Name:  name,
		Role:  role,
	}

	if err := s.repo.Save(identity); err != nil {
		return nil, fmt.Errorf("failed to persist identity: %w", err)
	}

	s.dispatch(model.UserLoggedIn{
		UserID: identity.ID,
		Email:  identity.Email,
		Role:   identity.Role,
	})

	return identity, nil
}

// Logout clears the persisted identity. Logging out while signed out is a
// no-op.
func (s *sessionService) Logout() error {
	identity, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("failed to load identity: %w", err)
	}
	if identity == nil {
		return nil
	}

	if err := s.repo.Clear(); err != nil {
		return fmt.Errorf("failed to clear identity: %w", err)
	}

	s.dispatch(model.UserLoggedOut{UserID: identity.ID})
	return nil
}

// Current returns the signed-in identity, or nil when nobody is signed in.
func (s *sessionService) Current() (*model.Identity, error) {
	return s.repo.Load()
}

func (s *sessionService) dispatch(event Event) {
	if err := s.dispatcher.Dispatch(event); err != nil {
		s.log.Warn("failed to dispatch event", "event", event.Type(), "error", err)
	}
}
