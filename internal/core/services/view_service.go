package services

import (
	"errors"
	"sync"
	"time"
)

// View identifies the single active screen of the booking front-end
type View string

// Views
const (
	ViewCreation View = "creation"
	ViewTracking View = "tracking"
	ViewAdmin    View = "admin"
)

// ErrUnknownView is returned when switching to a view that does not exist
var ErrUnknownView = errors.New("unknown view")

// NotificationKind classifies a transient notification
type NotificationKind string

// Notification kinds
const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is the single transient message shown to the user. It
// expires at ExpiresAt or is replaced by the next relevant action,
// whichever comes first.
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// ViewState is the coordinator state handed to the presentation layer
type ViewState struct {
	Active       View          `json:"active"`
	Screen       string        `json:"screen"`
	Notification *Notification `json:"notification,omitempty"`
}

// ViewService coordinates which screen is active and owns the current
// transient notification. There is exactly one notification at a time,
// no stacking and no racing timers.
type ViewService struct {
	mu     sync.Mutex
	active View
	note   *Notification
	ttl    time.Duration
}

// NewViewService creates a view coordinator. The ttl bounds how long a
// transient notification stays visible.
func NewViewService(ttl time.Duration) *ViewService {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &ViewService{
		active: ViewCreation,
		ttl:    ttl,
	}
}

// Switch changes the active view. Session state is untouched: an admin
// session survives view switches until an explicit logout.
func (s *ViewService) Switch(v View) error {
	switch v {
	case ViewCreation, ViewTracking, ViewAdmin:
	default:
		return ErrUnknownView
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = v
	return nil
}

// ForceCreation resets the active view to the creation form. Used on
// admin logout.
func (s *ViewService) ForceCreation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = ViewCreation
}

// Active returns the currently selected view
func (s *ViewService) Active() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Notify replaces the current notification with a new one
func (s *ViewService) Notify(kind NotificationKind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.note = &Notification{
		Kind:      kind,
		Message:   message,
		ExpiresAt: time.Now().Add(s.ttl),
	}
}

// ClearNotification drops the current notification immediately
func (s *ViewService) ClearNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.note = nil
}

// Notification returns the current notification, or nil once it has
// expired.
func (s *ViewService) Notification() *Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.note == nil || time.Now().After(s.note.ExpiresAt) {
		return nil
	}
	n := *s.note
	return &n
}

// SweepExpired clears the notification if its expiry has passed.
// Invoked on a schedule by the sweeper service.
func (s *ViewService) SweepExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.note != nil && time.Now().After(s.note.ExpiresAt) {
		s.note = nil
	}
}

// State resolves the coordinator state for the presentation layer.
// Selecting the admin view while logged out yields the login screen, so
// the panel with its mutation controls is structurally unreachable
// without a session.
func (s *ViewService) State(loggedIn bool) ViewState {
	s.mu.Lock()
	active := s.active
	note := s.note
	if note != nil && time.Now().After(note.ExpiresAt) {
		note = nil
	} else if note != nil {
		n := *note
		note = &n
	}
	s.mu.Unlock()

	screen := string(active)
	if active == ViewAdmin {
		if loggedIn {
			screen = "admin_panel"
		} else {
			screen = "admin_login"
		}
	}

	return ViewState{
		Active:       active,
		Screen:       screen,
		Notification: note,
	}
}
