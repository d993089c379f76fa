// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package standup

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/huddle/models"
	"github.com/danielhkuo/huddle/testutil"
)

func testEntry(groupID, userID, did string) models.StandupEntry {
	return models.StandupEntry{
		ID:          uuid.NewString(),
		GroupID:     groupID,
		UserID:      userID,
		DisplayName: "User " + userID,
		Did:         did,
		Plan:        "more of the same",
		Blockers:    "none",
		SubmittedAt: time.Now(),
	}
}

func TestOptInOptOut(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))

	if err := store.OptIn("g1", "u1", "Alice"); err != nil {
		t.Fatalf("OptIn failed: %v", err)
	}
	if err := store.OptIn("g1", "u2", "Bob"); err != nil {
		t.Fatalf("OptIn failed: %v", err)
	}
	// Re-opting in refreshes the display name instead of duplicating
	if err := store.OptIn("g1", "u1", "Alice M."); err != nil {
		t.Fatalf("Repeat OptIn failed: %v", err)
	}

	participants, err := store.ListParticipants("g1")
	if err != nil {
		t.Fatalf("ListParticipants failed: %v", err)
	}
	if len(participants) != 2 {
		t.Fatalf("Expected 2 participants, got %d", len(participants))
	}
	if participants[0].DisplayName != "Alice M." {
		t.Errorf("Expected refreshed display name, got %q", participants[0].DisplayName)
	}

	if err := store.OptOut("g1", "u1"); err != nil {
		t.Fatalf("OptOut failed: %v", err)
	}
	participants, _ = store.ListParticipants("g1")
	if len(participants) != 1 || participants[0].UserID != "u2" {
		t.Errorf("Expected only u2 after opt-out, got %+v", participants)
	}

	// Opting out twice is a no-op
	if err := store.OptOut("g1", "u1"); err != nil {
		t.Errorf("Repeated OptOut failed: %v", err)
	}
}

// TestSaveEntryLatestWins verifies a repeat submission replaces the
// user's previous entry rather than adding a second row
func TestSaveEntryLatestWins(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))

	if err := store.SaveEntry(testEntry("g1", "u1", "wrote docs")); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	if err := store.SaveEntry(testEntry("g1", "u1", "fixed the build")); err != nil {
		t.Fatalf("Second SaveEntry failed: %v", err)
	}
	if err := store.SaveEntry(testEntry("g1", "u2", "reviewed PRs")); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}

	entries, err := store.ListEntries("g1")
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries (one per user), got %d", len(entries))
	}
	for _, e := range entries {
		if e.UserID == "u1" && e.Did != "fixed the build" {
			t.Errorf("Expected latest entry to win, got %q", e.Did)
		}
	}
}

func TestClearEntries(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))

	store.SaveEntry(testEntry("g1", "u1", "a"))
	store.SaveEntry(testEntry("g2", "u1", "b"))

	if err := store.ClearEntries("g1"); err != nil {
		t.Fatalf("ClearEntries failed: %v", err)
	}

	if entries, _ := store.ListEntries("g1"); len(entries) != 0 {
		t.Errorf("Expected g1 entries cleared, got %d", len(entries))
	}
	if entries, _ := store.ListEntries("g2"); len(entries) != 1 {
		t.Errorf("Clearing g1 must not touch g2, got %d entries", len(entries))
	}
}

func TestSummaryConfigRoundTrip(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))

	if _, err := store.GetConfig("g1"); err != sql.ErrNoRows {
		t.Fatalf("Expected sql.ErrNoRows for unconfigured group, got %v", err)
	}

	cfg := models.SummaryConfig{GroupID: "g1", ChannelID: "c9", Hour: 17, Minute: 0}
	if err := store.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig failed: %v", err)
	}

	got, err := store.GetConfig("g1")
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}
	if got.ChannelID != "c9" || got.Hour != 17 || got.Minute != 0 {
		t.Errorf("Config mismatch: %+v", got)
	}

	if err := store.MarkSummarySent("g1", "2026-08-25"); err != nil {
		t.Fatalf("MarkSummarySent failed: %v", err)
	}
	got, _ = store.GetConfig("g1")
	if got.LastSentDate != "2026-08-25" {
		t.Errorf("Expected last sent date recorded, got %q", got.LastSentDate)
	}

	// Reconfiguring keeps the last-sent marker
	cfg.Hour = 9
	if err := store.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig failed: %v", err)
	}
	got, _ = store.GetConfig("g1")
	if got.Hour != 9 || got.LastSentDate != "2026-08-25" {
		t.Errorf("Reconfiguration lost state: %+v", got)
	}

	configs, err := store.ListConfigs()
	if err != nil {
		t.Fatalf("ListConfigs failed: %v", err)
	}
	if len(configs) != 1 {
		t.Errorf("Expected 1 config, got %d", len(configs))
	}
}
