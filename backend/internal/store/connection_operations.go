package store

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"meshwork/backend/internal/netgraph"
)

// ============================================================================
// Connection Read Operations
// ============================================================================

// AcceptedConnections returns every accepted connection touching the owner.
// Connections are stored in one direction; the undirected match plus the
// DISTINCT id keeps a connection from surfacing twice, and the engine never
// emits two edges for one connection either way.
func (r *Repository) AcceptedConnections(ctx context.Context, ownerID string) ([]netgraph.Connection, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (o:Profile {id: $ownerID})-[conn:CONNECTED]-(other:Profile)
		WHERE conn.status = 'accepted' AND other.id <> $ownerID
		RETURN DISTINCT
			conn.id as id,
			other.id as other_id,
			conn.accepted_at as accepted_at
		ORDER BY conn.accepted_at
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"ownerID": ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch connections: %w", err)
	}

	var connections []netgraph.Connection
	for result.Next(ctx) {
		record := result.Record()
		connections = append(connections, netgraph.Connection{
			ID:         getStringFromRecord(record, "id"),
			UserAID:    ownerID,
			UserBID:    getStringFromRecord(record, "other_id"),
			AcceptedAt: getTimeFromRecord(record, "accepted_at"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read connection records: %w", err)
	}

	return connections, nil
}
