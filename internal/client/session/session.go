// Package session models the client's authentication status as a small
// state machine: Unknown at process start, then LoggedOut or LoggedIn.
//
// A LoggedIn session always carries a non-empty bearer token; there is no
// way to construct one without it.
package session

import (
	"errors"
	"fmt"
	"sync"
)

type Status int

const (
	Unknown Status = iota
	LoggedOut
	LoggedIn
)

func (s Status) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case LoggedOut:
		return "logged out"
	case LoggedIn:
		return "logged in"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

var ErrEmptyToken = errors.New("session: logged-in session requires a token")

// Session is an immutable value; transitions produce new values.
type Session struct {
	status Status
	token  string
	email  string
}

// Authenticated builds a LoggedIn session.
func Authenticated(token, email string) (Session, error) {
	if token == "" {
		return Session{}, ErrEmptyToken
	}
	return Session{status: LoggedIn, token: token, email: email}, nil
}

// Anonymous is the LoggedOut session.
func Anonymous() Session {
	return Session{status: LoggedOut}
}

func (s Session) Status() Status { return s.status }
func (s Session) Token() string  { return s.token }
func (s Session) Email() string  { return s.email }
func (s Session) LoggedIn() bool { return s.status == LoggedIn }
func (s Session) Resolved() bool { return s.status != Unknown }

func (s Session) String() string {
	if s.status == LoggedIn && s.email != "" {
		return fmt.Sprintf("%s as %s", s.status, s.email)
	}
	return s.status.String()
}

// Holder keeps the current session for concurrent readers.
type Holder struct {
	mu  sync.RWMutex
	cur Session
}

func NewHolder() *Holder {
	return &Holder{}
}

func (h *Holder) Current() Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cur
}

// LogIn moves to LoggedIn. The previous session, if any, is replaced.
func (h *Holder) LogIn(token, email string) (Session, error) {
	s, err := Authenticated(token, email)
	if err != nil {
		return Session{}, err
	}
	h.mu.Lock()
	h.cur = s
	h.mu.Unlock()
	return s, nil
}

// LogOut moves to LoggedOut from any state.
func (h *Holder) LogOut() Session {
	s := Anonymous()
	h.mu.Lock()
	h.cur = s
	h.mu.Unlock()
	return s
}
