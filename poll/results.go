// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import "github.com/danielhkuo/huddle/models"

// CompileResults tallies a closed session's ledger into an immutable
// results record. It is a pure function of its inputs: re-running it on
// the same ledger yields an identical record.
//
// Winners are every option tied at the maximum count, in original option
// order. A maximum of zero reports "no votes cast" instead of declaring
// every option a winner. Participation is only reported when eligibility
// was enforced (eligibleCount > 0); otherwise the denominator is unknown.
func CompileResults(question string, options []string, votes map[string]int, eligibleCount int) models.Results {
	counts := make([]int, len(options))
	for _, idx := range votes {
		if idx >= 0 && idx < len(counts) {
			counts[idx]++
		}
	}

	maxVotes := 0
	for _, c := range counts {
		if c > maxVotes {
			maxVotes = c
		}
	}

	var winners []string
	if maxVotes > 0 {
		for i, c := range counts {
			if c == maxVotes {
				winners = append(winners, options[i])
			}
		}
	}

	res := models.Results{
		Question:      question,
		Options:       append([]string(nil), options...),
		Counts:        counts,
		Winners:       winners,
		NoVotes:       maxVotes == 0,
		VotedCount:    len(votes),
		EligibleCount: eligibleCount,
	}
	if eligibleCount > 0 {
		res.Participation = float64(len(votes)) / float64(eligibleCount)
		res.ParticipationKnown = true
	}
	return res
}
