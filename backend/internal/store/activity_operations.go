package store

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"meshwork/backend/internal/netgraph"
)

// ============================================================================
// Activity Read Operations
// ============================================================================

// ActivityForOwner returns the timestamped interaction records attached to
// the owner's contacts. Only ids and timestamps come back; note content
// never reaches the graph engine.
func (r *Repository) ActivityForOwner(ctx context.Context, ownerID string) ([]netgraph.ActivityRecord, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (o:Profile {id: $ownerID})-[:OWNS]->(c:Contact)-[:HAS_ACTIVITY]->(a:Activity)
		RETURN
			a.id as id,
			c.id as contact_id,
			a.occurred_at as occurred_at
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"ownerID": ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity records: %w", err)
	}

	var records []netgraph.ActivityRecord
	for result.Next(ctx) {
		record := result.Record()
		records = append(records, netgraph.ActivityRecord{
			ID:         getStringFromRecord(record, "id"),
			ContactID:  getStringFromRecord(record, "contact_id"),
			OccurredAt: getTimeFromRecord(record, "occurred_at"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activity records: %w", err)
	}

	return records, nil
}
