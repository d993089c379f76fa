// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"sync"
	"time"

	"github.com/danielhkuo/huddle/models"
)

// sessionState models the one-way open → closing → closed lifecycle. The
// transient closing state is what makes "first close trigger wins" a
// structural guarantee: whichever of the deadline timer, the
// full-participation check or a manual close moves the session out of
// open, every later trigger sees a non-open state and backs off.
type sessionState int

const (
	stateOpen sessionState = iota
	stateClosing
	stateClosed
)

// Session is one live anonymous vote. Identity, question, options and
// deadline are immutable after creation; state and the vote ledger are
// guarded by mu and mutated only by the engine.
type Session struct {
	GroupID  string
	ID       string
	Question string
	Options  []string
	Deadline time.Time
	Ref      models.MessageRef

	mu       sync.Mutex
	state    sessionState
	votes    map[string]int
	eligible map[string]struct{}
	timer    *time.Timer
}

// Progress returns the current voted and eligible counts. An eligible
// count of zero means eligibility was not enforced for this session.
func (s *Session) Progress() (voted, eligible int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.votes), len(s.eligible)
}
