// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package standup

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/huddle/models"
	"github.com/danielhkuo/huddle/testutil"
)

func newTestService(t *testing.T, gw *testutil.FakeGateway, replyTimeout time.Duration) *Service {
	t.Helper()
	svc := NewService(NewStore(testutil.SetupTestDB(t)), gw, replyTimeout)
	svc.retryDelay = time.Millisecond
	return svc
}

// TestCollectRecordsAnswers walks a user through the full question
// sequence and checks the saved entry
func TestCollectRecordsAnswers(t *testing.T) {
	gw := testutil.NewFakeGateway()
	svc := newTestService(t, gw, time.Second)

	// Queue all three replies up front; AwaitReply drains them in order
	gw.Reply("u1", "shipped the login page")
	gw.Reply("u1", "start on billing")
	gw.Reply("u1", "waiting on designs")

	entry, err := svc.Collect(context.Background(), "g1", "u1", "Alice")
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if entry.Did != "shipped the login page" {
		t.Errorf("Wrong did answer: %q", entry.Did)
	}
	if entry.Plan != "start on billing" {
		t.Errorf("Wrong plan answer: %q", entry.Plan)
	}
	if entry.Blockers != "waiting on designs" {
		t.Errorf("Wrong blockers answer: %q", entry.Blockers)
	}

	if len(gw.DMs) != 3 {
		t.Errorf("Expected 3 prompts sent, got %d", len(gw.DMs))
	}

	saved, err := svc.store.ListEntries("g1")
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(saved) != 1 || saved[0].Did != entry.Did {
		t.Errorf("Entry was not persisted: %+v", saved)
	}
}

// TestCollectTimeoutDefaults verifies a silent user still produces a
// fixed-shape entry with "no response" answers
func TestCollectTimeoutDefaults(t *testing.T) {
	gw := testutil.NewFakeGateway()
	svc := newTestService(t, gw, 20*time.Millisecond)

	// Only answer the first prompt, then go quiet
	gw.Reply("u1", "debugged the importer")

	entry, err := svc.Collect(context.Background(), "g1", "u1", "Alice")
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if entry.Did != "debugged the importer" {
		t.Errorf("Wrong did answer: %q", entry.Did)
	}
	if entry.Plan != models.NoResponse || entry.Blockers != models.NoResponse {
		t.Errorf("Expected no-response defaults, got plan=%q blockers=%q", entry.Plan, entry.Blockers)
	}
}

// TestRunRound collects from every opted-in user concurrently
func TestRunRound(t *testing.T) {
	gw := testutil.NewFakeGateway()
	svc := newTestService(t, gw, 20*time.Millisecond)

	svc.store.OptIn("g1", "u1", "Alice")
	svc.store.OptIn("g1", "u2", "Bob")

	// Alice answers everything, Bob stays silent
	gw.Reply("u1", "a")
	gw.Reply("u1", "b")
	gw.Reply("u1", "c")

	count, err := svc.RunRound(context.Background(), "g1")
	if err != nil {
		t.Fatalf("RunRound failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 collected entries, got %d", count)
	}

	entries, _ := svc.store.ListEntries("g1")
	if len(entries) != 2 {
		t.Fatalf("Expected 2 saved entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.UserID == "u2" && e.Did != models.NoResponse {
			t.Errorf("Silent user should have default answers, got %q", e.Did)
		}
	}
}

func TestRunRoundNoParticipants(t *testing.T) {
	gw := testutil.NewFakeGateway()
	svc := newTestService(t, gw, time.Second)

	count, err := svc.RunRound(context.Background(), "g1")
	if err != nil {
		t.Fatalf("RunRound failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 entries, got %d", count)
	}
	if len(gw.DMs) != 0 {
		t.Errorf("No prompts should be sent with no participants, got %d", len(gw.DMs))
	}
}

// TestSummaryFormat spot-checks the report layout
func TestSummaryFormat(t *testing.T) {
	entries := []models.StandupEntry{
		{DisplayName: "Alice", Did: "shipped", Plan: "billing", Blockers: "none", SubmittedAt: time.Now().Add(-time.Hour)},
		{DisplayName: "Bob", Did: "reviews", Plan: "refactor", Blockers: models.NoResponse, SubmittedAt: time.Now()},
	}

	report := FormatSummary(entries)

	for _, want := range []string{
		"# Daily Standup Summary",
		"## Alice",
		"**Did:** shipped",
		"**Plan:** billing",
		"## Bob",
		"**Blockers:** no response",
		"1 hour ago",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("Summary missing %q:\n%s", want, report)
		}
	}
}
