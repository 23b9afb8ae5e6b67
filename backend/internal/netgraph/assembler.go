package netgraph

import "time"

// ============================================================================
// Graph Assembly
// ============================================================================

// assembler builds the node and edge sets in four ordered passes: self,
// mutual users, owned contacts, second degree. All bookkeeping maps are
// scoped to one build and discarded with it.
type assembler struct {
	snap     *Snapshot
	resolver *Resolver
	activity map[string]ActivitySummary
	jitter   JitterSource
	now      time.Time

	nodes      []*Node
	nodeByID   map[string]*Node
	mutualNode map[string]*Node // mutual profile id -> node
	edges      []*Edge
	edgeSeen   map[string]bool
	selfID     string
	warnings   []Warning
}

func newAssembler(snap *Snapshot, resolver *Resolver, activity map[string]ActivitySummary, jitter JitterSource, now time.Time) *assembler {
	return &assembler{
		snap:       snap,
		resolver:   resolver,
		activity:   activity,
		jitter:     jitter,
		now:        now,
		nodeByID:   make(map[string]*Node),
		mutualNode: make(map[string]*Node),
		edgeSeen:   make(map[string]bool),
	}
}

// addSelf creates the single self node. Its fan-out is fixed after assembly
// from the raw contact and surviving connection counts.
func (a *assembler) addSelf() {
	identity, _ := a.resolver.Resolve(Candidate{
		LinkedProfileID: a.snap.OwnerID,
		FullName:        a.snap.OwnerProfile.FullName,
		Headline:        a.snap.OwnerProfile.Headline,
		Location:        a.snap.OwnerProfile.Location,
		FromProfile:     true,
	})

	label := identity.Label
	if label == "" {
		label = "You"
	}

	node := &Node{
		ID:       identity.NodeID,
		Label:    label,
		Category: CategorySelf,
	}
	a.selfID = node.ID
	a.addNode(node)
}

// addMutualUsers creates one mutual_user node and one self edge per
// surviving connection. When the owner also keeps a contact card linked to
// the mutual user, that card's relationship type and activity drive the
// edge; otherwise defaults apply.
func (a *assembler) addMutualUsers(connections []Connection) {
	for _, conn := range connections {
		mutualID := conn.Other(a.snap.OwnerID)
		if _, exists := a.mutualNode[mutualID]; exists {
			// Duplicate storage direction of the same connection.
			continue
		}

		linked := findContactLinkedTo(a.snap.Contacts, mutualID)
		if linked != nil {
			a.resolver.Resolve(contactCandidate(*linked))
		}

		candidate := Candidate{LinkedProfileID: mutualID}
		if profile, ok := a.snap.Profiles[mutualID]; ok {
			candidate.FullName = profile.FullName
			candidate.Headline = profile.Headline
			candidate.Location = profile.Location
			candidate.FromProfile = true
		}
		identity, _ := a.resolver.Resolve(candidate)

		if _, exists := a.nodeByID[identity.NodeID]; exists {
			continue
		}

		label := identity.Label
		if label == "" {
			label = "Member"
		}

		node := &Node{
			ID:       identity.NodeID,
			Label:    label,
			Category: CategoryMutualUser,
		}
		a.addNode(node)
		a.mutualNode[mutualID] = node

		edge := &Edge{
			Source:   a.selfID,
			Target:   node.ID,
			IsMutual: true,
		}
		if linked != nil {
			summary := a.activity[linked.ID]
			edge.Distance = closenessFor(linked.RelationshipType) * a.jitter.Next()
			edge.Thickness = ThicknessForCount(summary.Count)
			edge.RecencyIntensity = RecencyIntensity(summary.MostRecent, a.now)
		} else {
			edge.Distance = defaultDistance * a.jitter.Next()
			edge.Thickness = ThicknessForCount(0)
			edge.RecencyIntensity = RecencyIntensity(nil, a.now)
		}
		a.addEdge(edge)
	}
}

// addOwnedContacts creates owned_contact nodes for every contact card that
// is not already on the map as a mutual user. The linked-profile match is
// the principal dedup rule keeping one person from appearing twice.
func (a *assembler) addOwnedContacts() {
	for _, c := range a.snap.Contacts {
		if c.LinkedProfileID == a.snap.OwnerID {
			// A card the owner keeps for themself adds nothing.
			continue
		}
		if c.LinkedProfileID != "" {
			if _, shown := a.mutualNode[c.LinkedProfileID]; shown {
				continue
			}
		}

		identity, ok := a.resolver.Resolve(contactCandidate(c))
		if !ok {
			a.warnings = append(a.warnings, unresolvableWarning(c.ID))
			continue
		}
		if c.LinkedProfileID != "" {
			if profile, found := a.snap.Profiles[c.LinkedProfileID]; found {
				identity, _ = a.resolver.Resolve(Candidate{
					LinkedProfileID: c.LinkedProfileID,
					FullName:        profile.FullName,
					Headline:        profile.Headline,
					Location:        profile.Location,
					FromProfile:     true,
				})
			}
		}

		if identity.NodeID == a.selfID {
			continue
		}
		if _, exists := a.nodeByID[identity.NodeID]; exists {
			// Two cards for the same person collapse into one node.
			continue
		}

		node := &Node{
			ID:       identity.NodeID,
			Label:    identity.Label,
			Category: CategoryOwnedContact,
		}
		a.addNode(node)

		summary := a.activity[c.ID]
		a.addEdge(&Edge{
			Source:           a.selfID,
			Target:           node.ID,
			Distance:         closenessFor(identity.RelationshipType) * a.jitter.Next(),
			Thickness:        ThicknessForCount(summary.Count),
			RecencyIntensity: RecencyIntensity(summary.MostRecent, a.now),
		})
	}
}

// addSecondDegree walks every mutual user's own contacts. The privacy filter
// runs first, then surviving records resolve through the shared resolver:
// a record that dedups to an existing node only contributes a new edge
// (a cross-link when the node is an owned contact), everything else becomes
// a second_degree node labeled by role only.
func (a *assembler) addSecondDegree(connections []Connection) {
	for _, conn := range connections {
		mutualID := conn.Other(a.snap.OwnerID)
		mutual, ok := a.mutualNode[mutualID]
		if !ok {
			continue
		}

		contacts := visibleSecondDegree(a.snap.Profiles[mutualID], a.snap.SecondDegree[mutualID], a.snap.Profiles)
		for _, c := range contacts {
			if c.LinkedProfileID == a.snap.OwnerID {
				// The owner seen through a connection's address book.
				continue
			}

			identity, usable := a.resolver.Resolve(contactCandidate(c))
			if !usable {
				a.warnings = append(a.warnings, unresolvableWarning(c.ID))
				continue
			}
			if identity.NodeID == a.selfID || identity.NodeID == mutual.ID {
				continue
			}

			if existing, found := a.nodeByID[identity.NodeID]; found {
				a.addEdge(&Edge{
					Source:           mutual.ID,
					Target:           existing.ID,
					Distance:         closenessFor(c.RelationshipType) * a.jitter.Next(),
					Thickness:        ThicknessForCount(0),
					RecencyIntensity: RecencyIntensity(nil, a.now),
					IsSecondDegree:   true,
					IsCrossLink:      existing.Category == CategoryOwnedContact,
				})
				continue
			}

			node := &Node{
				ID:       identity.NodeID,
				Label:    roleLabel(identity.Headline),
				Category: CategorySecondDegree,
			}
			a.addNode(node)
			a.addEdge(&Edge{
				Source:           mutual.ID,
				Target:           node.ID,
				Distance:         closenessFor(c.RelationshipType) * a.jitter.Next(),
				Thickness:        ThicknessForCount(0),
				RecencyIntensity: RecencyIntensity(nil, a.now),
				IsSecondDegree:   true,
			})
		}
	}
}

// finish fixes the self fan-out and computes radii once all edges exist
func (a *assembler) finish(connections []Connection) *Graph {
	if self, ok := a.nodeByID[a.selfID]; ok {
		self.ConnectionCount = len(a.snap.Contacts) + len(connections)
	}
	for _, n := range a.nodes {
		n.Radius = RadiusFor(n.Category, n.ConnectionCount)
	}
	return &Graph{Nodes: a.nodes, Edges: a.edges}
}

func (a *assembler) addNode(n *Node) {
	a.nodes = append(a.nodes, n)
	a.nodeByID[n.ID] = n
}

// addEdge appends an edge once per source/target pair and bumps the fan-out
// of both endpoints. Parallel edges between the same pair collapse.
func (a *assembler) addEdge(e *Edge) {
	key := e.Source + "->" + e.Target
	if a.edgeSeen[key] {
		return
	}
	a.edgeSeen[key] = true
	a.edges = append(a.edges, e)

	if src, ok := a.nodeByID[e.Source]; ok {
		src.ConnectionCount++
	}
	if tgt, ok := a.nodeByID[e.Target]; ok {
		tgt.ConnectionCount++
	}
}

func contactCandidate(c Contact) Candidate {
	return Candidate{
		LinkedProfileID:  c.LinkedProfileID,
		FullName:         c.FullName,
		Headline:         c.Headline,
		Location:         c.Location,
		RelationshipType: c.RelationshipType,
	}
}

func findContactLinkedTo(contacts []Contact, profileID string) *Contact {
	for i := range contacts {
		if contacts[i].LinkedProfileID == profileID {
			return &contacts[i]
		}
	}
	return nil
}

// roleLabel is the label policy for unlinked second-degree people: role or
// title only, never the name.
func roleLabel(headline string) string {
	if headline == "" {
		return "Contact"
	}
	return headline
}
