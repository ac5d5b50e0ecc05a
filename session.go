package techquiry

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Authentication marks a session as logged in as the given user. It is a
// lookup key only; it does not own the login record.
type Authentication struct {
	UserID int `json:"user_id"`
}

// SessionHelper is the per-session authentication slot: it holds at most
// one Authentication, or nil for an anonymous session. Get and Set are
// atomic so racing requests within one session never observe a torn value.
type SessionHelper interface {
	GetAuthentication() *Authentication
	SetAuthentication(auth *Authentication)
}

// SessionManager keeps one authentication slot per active session id. Slots
// start anonymous; sessions unknown to the manager read as anonymous too.
// Logging out releases a slot immediately; slots of sessions that log in
// and then go silent are reclaimed by Sweep, so the map stays bounded by
// the number of sessions active within the idle window.
type SessionManager struct {
	mu    sync.Mutex
	slots map[string]*sessionEntry
}

type sessionEntry struct {
	auth    *Authentication
	touched time.Time
}

// NewSessionManager creates an empty SessionManager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		slots: make(map[string]*sessionEntry),
	}
}

// NewSessionID returns a fresh opaque session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Helper returns the SessionHelper bound to the given session id.
func (m *SessionManager) Helper(sessionID string) SessionHelper {
	return &sessionSlot{manager: m, sessionID: sessionID}
}

// ClearSession drops the slot of the given session id entirely, e.g. on
// session expiry.
func (m *SessionManager) ClearSession(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, sessionID)
}

// Sweep drops every slot that has not been read or written within maxIdle
// and reports how many were removed. Sessions swept while still in use
// simply read as anonymous again.
func (m *SessionManager) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for sessionID, entry := range m.slots {
		if entry.touched.Before(cutoff) {
			delete(m.slots, sessionID)
			removed++
		}
	}

	return removed
}

func (m *SessionManager) get(sessionID string) *Authentication {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.slots[sessionID]
	if entry == nil {
		return nil
	}

	entry.touched = time.Now()
	return entry.auth
}

func (m *SessionManager) set(sessionID string, auth *Authentication) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if auth == nil {
		delete(m.slots, sessionID)
		return
	}
	m.slots[sessionID] = &sessionEntry{auth: auth, touched: time.Now()}
}

type sessionSlot struct {
	manager   *SessionManager
	sessionID string
}

var _ SessionHelper = (*sessionSlot)(nil)

func (s *sessionSlot) GetAuthentication() *Authentication {
	return s.manager.get(s.sessionID)
}

func (s *sessionSlot) SetAuthentication(auth *Authentication) {
	s.manager.set(s.sessionID, auth)
}
