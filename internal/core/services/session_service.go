package services

import (
	"errors"
	"log"
	"sync"

	"hbt-medrefill/internal/config"
	"hbt-medrefill/internal/pkg/jwt"
	"hbt-medrefill/internal/pkg/password"
)

// ErrInvalidCredentials is returned on a failed admin login. Retries
// are unlimited: no lockout, no attempt counting, no backoff.
var ErrInvalidCredentials = errors.New("invalid admin credential")

// SessionState is the admin gate state machine value
type SessionState string

// Session states
const (
	SessionLoggedOut SessionState = "logged_out"
	SessionLoggedIn  SessionState = "logged_in"
)

// SessionService is the admin session gate: a two-state machine guarding
// the staff panel behind one shared static credential. The gate is a
// convenience, not a security boundary; the store itself enforces no
// authorization.
type SessionService struct {
	mu    sync.Mutex
	state SessionState
	cfg   *config.Config
	views *ViewService
}

// NewSessionService creates a session gate starting logged out
func NewSessionService(cfg *config.Config, views *ViewService) *SessionService {
	return &SessionService{
		state: SessionLoggedOut,
		cfg:   cfg,
		views: views,
	}
}

// Login checks the submitted credential against the shared secret. On
// success the gate flips to logged in and a session token is issued for
// the staff panel routes.
func (s *SessionService) Login(credential string) (string, error) {
	if !s.credentialOK(credential) {
		log.Println("⚠️ Admin login failed: wrong credential")
		return "", ErrInvalidCredentials
	}

	s.mu.Lock()
	s.state = SessionLoggedIn
	s.mu.Unlock()

	token, err := jwt.GenerateSessionToken(s.cfg.Session.Secret, s.cfg.Session.TokenMins)
	if err != nil {
		return "", err
	}

	log.Println("✅ Admin logged in")
	return token, nil
}

// Logout flips the gate back to logged out and forces the active view
// back to the creation form.
func (s *SessionService) Logout() {
	s.mu.Lock()
	s.state = SessionLoggedOut
	s.mu.Unlock()

	s.views.ForceCreation()
	log.Println("✅ Admin logged out")
}

// State returns the current gate state
func (s *SessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LoggedIn reports whether the gate is open
func (s *SessionService) LoggedIn() bool {
	return s.State() == SessionLoggedIn
}

// credentialOK verifies the credential. A configured bcrypt hash takes
// precedence over the plain shared secret.
func (s *SessionService) credentialOK(credential string) bool {
	if s.cfg.Admin.PasswordHash != "" {
		return password.Verify(credential, s.cfg.Admin.PasswordHash)
	}
	return password.Equal(credential, s.cfg.Admin.Password)
}
