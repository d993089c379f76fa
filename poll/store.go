// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"fmt"
	"sync"
)

// Store is the registry of live sessions, keyed by group and session id.
// It is the only structure shared across sessions; per-session state is
// guarded by each session's own lock.
type Store struct {
	mu     sync.RWMutex
	groups map[string]map[string]*Session
}

func NewStore() *Store {
	return &Store{groups: make(map[string]map[string]*Session)}
}

// Add registers a session. Fails if the (group, id) pair is already taken.
func (s *Store) Add(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.groups[sess.GroupID]
	if !ok {
		bucket = make(map[string]*Session)
		s.groups[sess.GroupID] = bucket
	}
	if _, exists := bucket[sess.ID]; exists {
		return fmt.Errorf("session %s already exists in group %s", sess.ID, sess.GroupID)
	}
	bucket[sess.ID] = sess
	return nil
}

// Get looks up a live session.
func (s *Store) Get(groupID, id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.groups[groupID][id]
	return sess, ok
}

// Remove drops a session. The group bucket is deallocated when its last
// session is removed, so finished groups do not accumulate empty maps.
func (s *Store) Remove(groupID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.groups[groupID]
	if !ok {
		return
	}
	delete(bucket, id)
	if len(bucket) == 0 {
		delete(s.groups, groupID)
	}
}

// ListByGroup returns the group's live sessions in unspecified order.
func (s *Store) ListByGroup(groupID string) []*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket := s.groups[groupID]
	sessions := make([]*Session, 0, len(bucket))
	for _, sess := range bucket {
		sessions = append(sessions, sess)
	}
	return sessions
}
