package netgraph

import "time"

// ============================================================================
// Relationship Graph Types
// ============================================================================

// Category classifies a graph node relative to the requesting owner
type Category string

const (
	CategorySelf         Category = "self"
	CategoryOwnedContact Category = "owned_contact"
	CategoryMutualUser   Category = "mutual_user"
	CategorySecondDegree Category = "second_degree"
)

// Profile represents a platform account's public attributes
type Profile struct {
	ID                         string `json:"id"`
	FullName                   string `json:"full_name"`
	Headline                   string `json:"headline,omitempty"`
	Location                   string `json:"location,omitempty"`
	AnonymousBeyondFirstDegree bool   `json:"anonymous_beyond_first_degree"`
	AnonymousToConnections     bool   `json:"anonymous_to_connections"`
}

// Contact is a relationship card owned by exactly one account
type Contact struct {
	ID                     string `json:"id"`
	OwnerID                string `json:"owner_id"`
	FullName               string `json:"full_name"`
	Headline               string `json:"headline,omitempty"`
	Location               string `json:"location,omitempty"`
	RelationshipType       string `json:"relationship_type,omitempty"`
	LinkedProfileID        string `json:"linked_profile_id,omitempty"`
	AnonymousToConnections bool   `json:"anonymous_to_connections"`
}

// Connection is an accepted, symmetric link between two accounts
type Connection struct {
	ID         string    `json:"id"`
	UserAID    string    `json:"user_a_id"`
	UserBID    string    `json:"user_b_id"`
	AcceptedAt time.Time `json:"accepted_at"`
}

// Touches reports whether the connection involves the given account
func (c Connection) Touches(userID string) bool {
	return c.UserAID == userID || c.UserBID == userID
}

// Other returns the account on the far side of the connection from userID
func (c Connection) Other(userID string) string {
	if c.UserAID == userID {
		return c.UserBID
	}
	return c.UserAID
}

// ActivityRecord is one timestamped note/interaction tied to a contact.
// Note content never reaches the graph engine; only the timestamp matters.
type ActivityRecord struct {
	ID         string    `json:"id"`
	ContactID  string    `json:"contact_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Snapshot is the immutable input of one graph build, fetched once
type Snapshot struct {
	OwnerID      string
	OwnerProfile Profile
	Contacts     []Contact
	Connections  []Connection
	Activities   []ActivityRecord
	// Profiles holds attributes for every resolved account id,
	// including anonymity flags.
	Profiles map[string]Profile
	// SecondDegree holds contacts owned by mutual users, keyed by their id.
	SecondDegree map[string][]Contact
	// Warnings carries partial-fetch diagnostics from the read layer.
	Warnings []Warning
}

// Node is one rendered person in the output graph
type Node struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	Category        Category `json:"category"`
	ConnectionCount int      `json:"connectionCount"`
	Radius          float64  `json:"radius"`
}

// Edge is one rendered relationship in the output graph
type Edge struct {
	Source           string  `json:"source"`
	Target           string  `json:"target"`
	Distance         float64 `json:"distance"`
	Thickness        float64 `json:"thickness"`
	RecencyIntensity float64 `json:"recencyIntensity"`
	IsMutual         bool    `json:"isMutual"`
	IsSecondDegree   bool    `json:"isSecondDegree"`
	IsCrossLink      bool    `json:"isCrossLink"`
}

// Graph is the full output handed to the force-directed renderer
type Graph struct {
	Nodes []*Node `json:"nodes"`
	Edges []*Edge `json:"edges"`
}

// ============================================================================
// Diagnostics
// ============================================================================

// WarningCode classifies a non-fatal drop or degradation during a build
type WarningCode string

const (
	WarnPartialFetch       WarningCode = "partial_fetch"
	WarnUnresolvableRecord WarningCode = "unresolvable_record"
	WarnGhostConnection    WarningCode = "ghost_connection"
)

// Warning is a structured diagnostics record. Warnings are reported alongside
// the graph, never as errors: the worst case is a smaller but consistent graph.
type Warning struct {
	Code     WarningCode `json:"code"`
	Message  string      `json:"message"`
	RecordID string      `json:"record_id,omitempty"`
}
