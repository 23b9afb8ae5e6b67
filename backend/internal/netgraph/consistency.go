package netgraph

import "fmt"

// ============================================================================
// Consistency Guard
// ============================================================================

// Contact and connection rows are deleted independently elsewhere in the
// system, so an accepted connection can survive the deletion of every contact
// that backed it. Such "ghost" connections must not surface as edges.

// filterGhostConnections keeps a connection only when at least one side owns
// a contact whose linked profile points at the other side. Dropped
// connections are reported through the diagnostics channel, never as errors.
func filterGhostConnections(
	ownerID string,
	connections []Connection,
	ownedContacts []Contact,
	secondDegree map[string][]Contact,
) ([]Connection, []Warning) {
	kept := make([]Connection, 0, len(connections))
	var warnings []Warning

	for _, conn := range connections {
		if !conn.Touches(ownerID) || conn.UserAID == conn.UserBID {
			warnings = append(warnings, ghostWarning(conn))
			continue
		}

		other := conn.Other(ownerID)
		if hasContactLinkedTo(ownedContacts, other) ||
			hasContactLinkedTo(secondDegree[other], ownerID) {
			kept = append(kept, conn)
			continue
		}

		warnings = append(warnings, ghostWarning(conn))
	}

	return kept, warnings
}

func hasContactLinkedTo(contacts []Contact, profileID string) bool {
	for _, c := range contacts {
		if c.LinkedProfileID == profileID {
			return true
		}
	}
	return false
}

func ghostWarning(conn Connection) Warning {
	return Warning{
		Code:     WarnGhostConnection,
		Message:  fmt.Sprintf("connection %s has no contact backing on either side", conn.ID),
		RecordID: conn.ID,
	}
}
