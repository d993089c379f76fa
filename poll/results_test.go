// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"reflect"
	"testing"
)

// TestResultsTieDetection verifies that all options sharing the maximum
// count are reported as winners, in original option order
func TestResultsTieDetection(t *testing.T) {
	options := []string{"A", "B", "C"}
	votes := map[string]int{"u1": 0, "u2": 1, "u3": 0, "u4": 1}

	res := CompileResults("lunch?", options, votes, 0)

	if !reflect.DeepEqual(res.Counts, []int{2, 2, 0}) {
		t.Errorf("Expected counts [2 2 0], got %v", res.Counts)
	}
	if !reflect.DeepEqual(res.Winners, []string{"A", "B"}) {
		t.Errorf("Expected winners [A B], got %v", res.Winners)
	}
	if res.NoVotes {
		t.Error("Expected NoVotes to be false")
	}
}

// TestResultsSoleWinner verifies the single-winner case with a known
// participation fraction
func TestResultsSoleWinner(t *testing.T) {
	options := []string{"A", "B"}
	votes := map[string]int{"u1": 0, "u2": 0, "u3": 1}

	res := CompileResults("q", options, votes, 4)

	if !reflect.DeepEqual(res.Winners, []string{"A"}) {
		t.Errorf("Expected sole winner A, got %v", res.Winners)
	}
	if res.Counts[0] != 2 || res.Counts[1] != 1 {
		t.Errorf("Expected counts [2 1], got %v", res.Counts)
	}
	if !res.ParticipationKnown {
		t.Error("Expected participation to be known")
	}
	if res.Participation != 0.75 {
		t.Errorf("Expected participation 0.75, got %v", res.Participation)
	}
}

// TestResultsZeroVotes verifies an empty ledger reports "no votes cast"
// rather than an all-option tie at zero
func TestResultsZeroVotes(t *testing.T) {
	res := CompileResults("q", []string{"A", "B"}, map[string]int{}, 3)

	if !res.NoVotes {
		t.Error("Expected NoVotes to be true")
	}
	if len(res.Winners) != 0 {
		t.Errorf("Expected no winners, got %v", res.Winners)
	}
	if !reflect.DeepEqual(res.Counts, []int{0, 0}) {
		t.Errorf("Expected counts [0 0], got %v", res.Counts)
	}
}

// TestResultsUnknownParticipation verifies participation is omitted when
// eligibility was not enforced
func TestResultsUnknownParticipation(t *testing.T) {
	res := CompileResults("q", []string{"A", "B"}, map[string]int{"u1": 0}, 0)

	if res.ParticipationKnown {
		t.Error("Expected participation to be unknown with no eligible count")
	}
	if res.Participation != 0 {
		t.Errorf("Expected zero participation value, got %v", res.Participation)
	}
}

// TestResultsDeterministic verifies the compiler is a pure function:
// re-running it on the same ledger yields an identical record
func TestResultsDeterministic(t *testing.T) {
	options := []string{"A", "B", "C"}
	votes := map[string]int{"u1": 2, "u2": 0, "u3": 2, "u4": 1, "u5": 2}

	first := CompileResults("q", options, votes, 6)
	for i := 0; i < 10; i++ {
		again := CompileResults("q", options, votes, 6)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Run %d differed: %+v vs %+v", i, first, again)
		}
	}
}

// TestResultsIgnoresOutOfRangeIndex verifies a corrupt ledger index
// cannot panic the tally
func TestResultsIgnoresOutOfRangeIndex(t *testing.T) {
	votes := map[string]int{"u1": 0, "u2": 7, "u3": -1}

	res := CompileResults("q", []string{"A", "B"}, votes, 0)

	if res.Counts[0] != 1 || res.Counts[1] != 0 {
		t.Errorf("Expected counts [1 0], got %v", res.Counts)
	}
}
