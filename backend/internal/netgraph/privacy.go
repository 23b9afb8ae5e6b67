package netgraph

// ============================================================================
// Privacy Filter
// ============================================================================

// Second-degree exposure is governed by two independent flags: a mutual user
// can hide their whole network beyond the first degree, and an individual
// contact (or the account it links to) can opt out of appearing in other
// people's second-degree views.
//
// Filtering runs before identity resolution so a suppressed record never
// contributes merged attributes to an existing node.

// visibleSecondDegree returns the subset of a mutual user's contacts that may
// be exposed to the requesting owner.
func visibleSecondDegree(mutualProfile Profile, contacts []Contact, profiles map[string]Profile) []Contact {
	if mutualProfile.AnonymousBeyondFirstDegree {
		return nil
	}

	visible := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.AnonymousToConnections {
			continue
		}
		if c.LinkedProfileID != "" {
			if p, ok := profiles[c.LinkedProfileID]; ok && p.AnonymousToConnections {
				continue
			}
		}
		visible = append(visible, c)
	}

	return visible
}
