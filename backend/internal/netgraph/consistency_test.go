package netgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterGhostConnections_OwnerSideBacking(t *testing.T) {
	conns := []Connection{{ID: "conn-1", UserAID: "owner", UserBID: "ben"}}
	contacts := []Contact{{ID: "c1", OwnerID: "owner", FullName: "Ben", LinkedProfileID: "ben"}}

	kept, warnings := filterGhostConnections("owner", conns, contacts, nil)

	assert.Len(t, kept, 1)
	assert.Empty(t, warnings)
}

func TestFilterGhostConnections_FarSideBacking(t *testing.T) {
	// The owner deleted their card, but Ben still keeps one pointing back.
	conns := []Connection{{ID: "conn-1", UserAID: "owner", UserBID: "ben"}}
	secondDegree := map[string][]Contact{
		"ben": {{ID: "b1", OwnerID: "ben", FullName: "Owner", LinkedProfileID: "owner"}},
	}

	kept, warnings := filterGhostConnections("owner", conns, nil, secondDegree)

	assert.Len(t, kept, 1)
	assert.Empty(t, warnings)
}

func TestFilterGhostConnections_GhostDropped(t *testing.T) {
	conns := []Connection{{ID: "conn-ghost", UserAID: "owner", UserBID: "ben"}}
	contacts := []Contact{{ID: "c1", OwnerID: "owner", FullName: "Someone Else"}}

	kept, warnings := filterGhostConnections("owner", conns, contacts, map[string][]Contact{})

	assert.Empty(t, kept)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnGhostConnection, warnings[0].Code)
	assert.Equal(t, "conn-ghost", warnings[0].RecordID)
}

func TestFilterGhostConnections_SelfConnectionDropped(t *testing.T) {
	conns := []Connection{{ID: "conn-self", UserAID: "owner", UserBID: "owner"}}

	kept, warnings := filterGhostConnections("owner", conns, nil, nil)

	assert.Empty(t, kept)
	assert.Len(t, warnings, 1)
}
