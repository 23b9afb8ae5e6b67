package netgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_LinkedProfileWinsOverName(t *testing.T) {
	r := NewResolver()

	// Same person referenced by linked account from two sources.
	first, ok := r.Resolve(Candidate{LinkedProfileID: "u1", FullName: "Ben Okafor"})
	require.True(t, ok)
	second, ok := r.Resolve(Candidate{LinkedProfileID: "u1", FullName: "Benjamin O."})
	require.True(t, ok)

	assert.Equal(t, first.NodeID, second.NodeID)

	// A different spelling without the link is a different identity.
	other, ok := r.Resolve(Candidate{FullName: "Benjamin O."})
	require.True(t, ok)
	assert.NotEqual(t, first.NodeID, other.NodeID)
}

func TestResolver_NameNormalization(t *testing.T) {
	r := NewResolver()

	a, ok := r.Resolve(Candidate{FullName: "  Greta   MEYER "})
	require.True(t, ok)
	b, ok := r.Resolve(Candidate{FullName: "greta meyer"})
	require.True(t, ok)

	assert.Equal(t, a.NodeID, b.NodeID)
}

func TestResolver_NodeIDStableAcrossBuilds(t *testing.T) {
	a, ok := NewResolver().Resolve(Candidate{LinkedProfileID: "u1", FullName: "Ben"})
	require.True(t, ok)
	b, ok := NewResolver().Resolve(Candidate{LinkedProfileID: "u1", FullName: "Ben"})
	require.True(t, ok)

	assert.Equal(t, a.NodeID, b.NodeID)
}

func TestResolver_MergePrecedence(t *testing.T) {
	r := NewResolver()

	// Manually entered card first.
	id, ok := r.Resolve(Candidate{
		LinkedProfileID:  "u1",
		FullName:         "Ben O.",
		Headline:         "Engineer (old card)",
		RelationshipType: "Close Friend",
	})
	require.True(t, ok)

	// Profile-derived record merges in: employment fields win,
	// relationship metadata stays manual.
	id, ok = r.Resolve(Candidate{
		LinkedProfileID: "u1",
		FullName:        "Ben Okafor",
		Headline:        "Staff Engineer",
		Location:        "Berlin",
		FromProfile:     true,
	})
	require.True(t, ok)

	assert.Equal(t, "Ben Okafor", id.Label)
	assert.Equal(t, "Staff Engineer", id.Headline)
	assert.Equal(t, "Berlin", id.Location)
	assert.Equal(t, "Close Friend", id.RelationshipType)

	// A later manual card never overwrites profile-derived fields.
	id, ok = r.Resolve(Candidate{
		LinkedProfileID: "u1",
		FullName:        "Benny",
		Headline:        "Some Guy",
	})
	require.True(t, ok)
	assert.Equal(t, "Ben Okafor", id.Label)
	assert.Equal(t, "Staff Engineer", id.Headline)
}

func TestResolver_UnusableRecordDropped(t *testing.T) {
	r := NewResolver()

	_, ok := r.Resolve(Candidate{FullName: "   "})
	assert.False(t, ok)

	_, ok = r.Resolve(Candidate{})
	assert.False(t, ok)

	// A linked id alone is enough.
	_, ok = r.Resolve(Candidate{LinkedProfileID: "u9"})
	assert.True(t, ok)
}

func TestResolver_Lookup(t *testing.T) {
	r := NewResolver()

	_, found := r.Lookup(Candidate{FullName: "Greta Meyer"})
	assert.False(t, found)

	resolved, ok := r.Resolve(Candidate{FullName: "Greta Meyer"})
	require.True(t, ok)

	got, found := r.Lookup(Candidate{FullName: "greta meyer"})
	require.True(t, found)
	assert.Equal(t, resolved.NodeID, got.NodeID)
}
