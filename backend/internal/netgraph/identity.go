package netgraph

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ============================================================================
// Identity Resolution
// ============================================================================

// nodeNamespace is the UUIDv5 namespace for node ids. Node ids are derived
// from the dedup key so the same person always resolves to the same id,
// which keeps rebuilds deterministic for a given snapshot.
var nodeNamespace = uuid.MustParse("6f1c5a1e-8d4b-4c6a-9f2e-3b7d0a54c911")

// Candidate is one raw person-record drawn from any source: an account
// profile, an owned contact card, or a mutual user's contact card.
type Candidate struct {
	LinkedProfileID  string
	FullName         string
	Headline         string
	Location         string
	RelationshipType string
	// FromProfile marks attributes as account-derived. Profile-derived
	// employment/headline fields take precedence over manually entered
	// contact fields; manually entered relationship metadata wins.
	FromProfile bool
}

// Identity is the merged view of one distinct real-world person
type Identity struct {
	Key              string
	NodeID           string
	Label            string
	Headline         string
	Location         string
	RelationshipType string
}

// Resolver assigns each distinct person exactly one dedup key and node id.
// Its bookkeeping map is local to one build and discarded afterward.
type Resolver struct {
	identities map[string]*Identity
}

// NewResolver creates an empty resolver for a single build
func NewResolver() *Resolver {
	return &Resolver{
		identities: make(map[string]*Identity),
	}
}

// Key computes the dedup key for a candidate: the linked-account id when
// present, otherwise the normalized display name. ok is false when the
// record carries neither and cannot be resolved.
func (r *Resolver) Key(c Candidate) (string, bool) {
	if c.LinkedProfileID != "" {
		return "profile:" + c.LinkedProfileID, true
	}
	name := normalizeName(c.FullName)
	if name == "" {
		return "", false
	}
	return "name:" + name, true
}

// Resolve merges the candidate into the identity for its dedup key, creating
// it on first sight. ok is false when the record is unusable; callers drop
// such records with a warning instead of aborting the build.
func (r *Resolver) Resolve(c Candidate) (*Identity, bool) {
	key, ok := r.Key(c)
	if !ok {
		return nil, false
	}

	id, exists := r.identities[key]
	if !exists {
		id = &Identity{
			Key:    key,
			NodeID: uuid.NewSHA1(nodeNamespace, []byte(key)).String(),
		}
		r.identities[key] = id
	}

	r.merge(id, c)
	return id, true
}

// Lookup returns the identity already resolved for a candidate, if any
func (r *Resolver) Lookup(c Candidate) (*Identity, bool) {
	key, ok := r.Key(c)
	if !ok {
		return nil, false
	}
	id, exists := r.identities[key]
	return id, exists
}

// merge applies field precedence: profile-derived fields win for the
// display/employment attributes, contact-entered fields win for
// relationship metadata.
func (r *Resolver) merge(id *Identity, c Candidate) {
	if c.FromProfile {
		if c.FullName != "" {
			id.Label = c.FullName
		}
		if c.Headline != "" {
			id.Headline = c.Headline
		}
		if c.Location != "" {
			id.Location = c.Location
		}
	} else {
		if id.Label == "" {
			id.Label = c.FullName
		}
		if id.Headline == "" {
			id.Headline = c.Headline
		}
		if id.Location == "" {
			id.Location = c.Location
		}
		if c.RelationshipType != "" {
			id.RelationshipType = c.RelationshipType
		}
	}
}

// normalizeName case-folds and collapses whitespace so the same name spelled
// slightly differently still resolves to one person
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// unresolvableWarning builds the diagnostics record for a dropped candidate
func unresolvableWarning(recordID string) Warning {
	return Warning{
		Code:     WarnUnresolvableRecord,
		Message:  fmt.Sprintf("record %s has neither a linked profile nor a usable name", recordID),
		RecordID: recordID,
	}
}
