// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"log/slog"

	"github.com/danielhkuo/huddle/gateway"
)

// snapshotEligibility computes the fixed set of identities allowed to
// vote: the channel's current members minus bot accounts. Computed once
// at session creation and never refreshed.
//
// A failed membership lookup returns an empty set rather than failing
// creation; the session then closes on its deadline only, since full
// participation cannot be detected against an unknown electorate.
func snapshotEligibility(gw gateway.Gateway, groupID, channelID string) map[string]struct{} {
	members, err := gw.ListChannelMembers(groupID, channelID)
	if err != nil {
		slog.Warn("membership lookup failed, early closure disabled",
			"group_id", groupID,
			"channel_id", channelID,
			"error", err,
		)
		return make(map[string]struct{})
	}

	eligible := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m.Bot {
			continue
		}
		eligible[m.ID] = struct{}{}
	}
	return eligible
}
