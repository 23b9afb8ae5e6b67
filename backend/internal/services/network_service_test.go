package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshwork/backend/internal/netgraph"
)

type fakeSource struct {
	snapshot *netgraph.Snapshot
	err      error
	calls    int
}

func (f *fakeSource) FetchSnapshot(ctx context.Context, ownerID string) (*netgraph.Snapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func TestBuildNetwork(t *testing.T) {
	source := &fakeSource{
		snapshot: &netgraph.Snapshot{
			OwnerID:      "ava",
			OwnerProfile: netgraph.Profile{ID: "ava", FullName: "Ava Lindqvist"},
			Contacts: []netgraph.Contact{
				{ID: "c1", OwnerID: "ava", FullName: "Greta Meyer", RelationshipType: "Friend"},
			},
		},
	}

	svc := NewNetworkService(source)
	view, err := svc.BuildNetwork(context.Background(), "ava",
		netgraph.WithJitter(netgraph.NoJitter()))

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, 1, source.calls)
	assert.Len(t, view.Graph.Nodes, 2)
	assert.Len(t, view.Graph.Edges, 1)
	assert.Empty(t, view.Warnings)
}

func TestBuildNetwork_FetchWarningsSurfaceInView(t *testing.T) {
	source := &fakeSource{
		snapshot: &netgraph.Snapshot{
			OwnerID:      "ava",
			OwnerProfile: netgraph.Profile{ID: "ava", FullName: "Ava Lindqvist"},
			Warnings: []netgraph.Warning{
				{Code: netgraph.WarnPartialFetch, Message: "fetch failed for connections"},
			},
		},
	}

	view, err := NewNetworkService(source).BuildNetwork(context.Background(), "ava")

	require.NoError(t, err)
	require.Len(t, view.Warnings, 1)
	assert.Equal(t, netgraph.WarnPartialFetch, view.Warnings[0].Code)
}

func TestBuildNetwork_FetchErrorPropagates(t *testing.T) {
	source := &fakeSource{err: fmt.Errorf("bolt connection refused")}

	view, err := NewNetworkService(source).BuildNetwork(context.Background(), "ava")

	require.Error(t, err)
	assert.Nil(t, view)
}

func TestBuildNetwork_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := &fakeSource{
		snapshot: &netgraph.Snapshot{
			OwnerID:      "ava",
			OwnerProfile: netgraph.Profile{ID: "ava"},
		},
	}

	view, err := NewNetworkService(source).BuildNetwork(ctx, "ava")

	require.Error(t, err)
	assert.Nil(t, view, "a half-built graph must never be returned")
}
