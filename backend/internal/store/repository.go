package store

import (
	"context"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"meshwork/backend/internal/netgraph"
	"meshwork/backend/pkg/logger"
)

// Repository handles all Neo4j read operations for the graph engine.
// The engine itself is read-only; every write in the product goes through
// the CRUD endpoints, which live elsewhere.
type Repository struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewRepository creates a new store repository
func NewRepository(driver neo4j.DriverWithContext) *Repository {
	return &Repository{
		driver: driver,
		logger: logger.Get(),
	}
}

// Close closes the Neo4j driver connection
func (r *Repository) Close() error {
	return r.driver.Close(context.Background())
}

// FetchSnapshot collects everything one graph build needs. The four
// owner-scoped slices (profile, contacts, connections, activity) have no
// dependency on each other and are fetched concurrently; the second-degree
// fetch waits for the resolved mutual ids, which is the only ordering
// dependency. A failed slice degrades to empty with a partial_fetch warning
// so a build never aborts; context cancellation aborts everything and the
// partial snapshot is discarded.
func (r *Repository) FetchSnapshot(ctx context.Context, ownerID string) (*netgraph.Snapshot, error) {
	snap := &netgraph.Snapshot{
		OwnerID:      ownerID,
		Profiles:     make(map[string]netgraph.Profile),
		SecondDegree: make(map[string][]netgraph.Contact),
	}

	var mu sync.Mutex
	degrade := func(slice string, err error) {
		mu.Lock()
		defer mu.Unlock()
		snap.Warnings = append(snap.Warnings, netgraph.Warning{
			Code:    netgraph.WarnPartialFetch,
			Message: "fetch failed for " + slice + ": " + err.Error(),
		})
		r.logger.Warn("Snapshot slice degraded to empty",
			zap.String("slice", slice),
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := r.ProfileByID(gctx, ownerID)
		if err != nil {
			degrade("owner profile", err)
			return nil
		}
		mu.Lock()
		snap.OwnerProfile = profile
		snap.Profiles[profile.ID] = profile
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		contacts, err := r.OwnedContacts(gctx, ownerID)
		if err != nil {
			degrade("owned contacts", err)
			return nil
		}
		mu.Lock()
		snap.Contacts = contacts
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		connections, err := r.AcceptedConnections(gctx, ownerID)
		if err != nil {
			degrade("connections", err)
			return nil
		}
		mu.Lock()
		snap.Connections = connections
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		activities, err := r.ActivityForOwner(gctx, ownerID)
		if err != nil {
			degrade("activity records", err)
			return nil
		}
		mu.Lock()
		snap.Activities = activities
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Second-degree contacts require the resolved mutual ids.
	mutualIDs := make([]string, 0, len(snap.Connections))
	for _, conn := range snap.Connections {
		mutualIDs = append(mutualIDs, conn.Other(ownerID))
	}
	if len(mutualIDs) > 0 {
		secondDegree, err := r.ContactsOfUsers(ctx, mutualIDs)
		if err != nil {
			degrade("second-degree contacts", err)
		} else {
			snap.SecondDegree = secondDegree
		}
	}

	// Profiles for every resolved account id: mutual users plus anyone a
	// contact card links to, so anonymity flags and merge precedence work.
	missing := missingProfileIDs(snap, mutualIDs)
	if len(missing) > 0 {
		profiles, err := r.ProfilesByID(ctx, missing)
		if err != nil {
			degrade("profiles", err)
		} else {
			for id, p := range profiles {
				snap.Profiles[id] = p
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return snap, nil
}

func missingProfileIDs(snap *netgraph.Snapshot, mutualIDs []string) []string {
	seen := make(map[string]bool, len(snap.Profiles))
	for id := range snap.Profiles {
		seen[id] = true
	}

	var missing []string
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		missing = append(missing, id)
	}

	for _, id := range mutualIDs {
		add(id)
	}
	for _, c := range snap.Contacts {
		add(c.LinkedProfileID)
	}
	for _, contacts := range snap.SecondDegree {
		for _, c := range contacts {
			add(c.LinkedProfileID)
		}
	}
	return missing
}
