// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/huddle/db"
	"github.com/danielhkuo/huddle/gateway"
	"github.com/danielhkuo/huddle/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps every query on the same in-memory database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// FakeGateway is a scriptable in-memory chat platform. Failure fields
// make individual calls fail; recorded slices let tests assert on what
// the engine rendered, acknowledged or posted. All access is locked so
// concurrent engine operations can share one fake.
type FakeGateway struct {
	mu sync.Mutex

	// Scripted behavior
	Members       []models.Member
	MembersErr    error
	RenderErr     error
	CloseFailures int // fail this many RenderSessionClosed calls
	PostFailures  int // fail this many PostMessage calls

	// Recorded interactions
	Rendered []models.MessageRef
	Closed   []models.Results
	Acks     []string // voter=label
	Rejects  []string // voter=reason
	DMs      []string // user=text
	Posts    []string // channel=text

	renderSeq int
	replies   map[string]chan string
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{replies: make(map[string]chan string)}
}

func (g *FakeGateway) RenderSessionCreated(groupID, channelID, question string, options []string, closesAt time.Time) (models.MessageRef, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.RenderErr != nil {
		return models.MessageRef{}, g.RenderErr
	}
	g.renderSeq++
	ref := models.MessageRef{ChannelID: channelID, MessageID: fmt.Sprintf("msg-%d", g.renderSeq)}
	g.Rendered = append(g.Rendered, ref)
	return ref, nil
}

func (g *FakeGateway) RenderSessionClosed(ref models.MessageRef, res models.Results) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.CloseFailures > 0 {
		g.CloseFailures--
		return fmt.Errorf("render unavailable")
	}
	g.Closed = append(g.Closed, res)
	return nil
}

func (g *FakeGateway) AcknowledgeVote(voterID, optionLabel string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Acks = append(g.Acks, voterID+"="+optionLabel)
	return nil
}

func (g *FakeGateway) RejectVote(voterID, reason string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Rejects = append(g.Rejects, voterID+"="+reason)
	return nil
}

func (g *FakeGateway) ListChannelMembers(groupID, channelID string) ([]models.Member, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.MembersErr != nil {
		return nil, g.MembersErr
	}
	return append([]models.Member(nil), g.Members...), nil
}

func (g *FakeGateway) SendDirectMessage(userID, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.DMs = append(g.DMs, userID+"="+text)
	return nil
}

func (g *FakeGateway) AwaitReply(ctx context.Context, userID string, timeout time.Duration) (string, error) {
	ch := g.replyChan(userID)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(timeout):
		return "", gateway.ErrNoReply
	case reply := <-ch:
		return reply, nil
	}
}

func (g *FakeGateway) PostMessage(channelID, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.PostFailures > 0 {
		g.PostFailures--
		return fmt.Errorf("channel unavailable")
	}
	g.Posts = append(g.Posts, channelID+"="+text)
	return nil
}

// Reply queues a DM reply for the given user, as if they had typed it.
func (g *FakeGateway) Reply(userID, text string) {
	g.replyChan(userID) <- text
}

func (g *FakeGateway) replyChan(userID string) chan string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.replies[userID]
	if !ok {
		ch = make(chan string, 16)
		g.replies[userID] = ch
	}
	return ch
}

// ClosedResults returns a snapshot of the results published so far.
func (g *FakeGateway) ClosedResults() []models.Results {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]models.Results(nil), g.Closed...)
}

// RejectCount returns how many vote rejections were delivered.
func (g *FakeGateway) RejectCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Rejects)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
