package store

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"meshwork/backend/internal/netgraph"
	"meshwork/backend/pkg/errors"
)

// ============================================================================
// Profile Read Operations
// ============================================================================

// ProfileByID returns one account profile including its anonymity flags
func (r *Repository) ProfileByID(ctx context.Context, profileID string) (netgraph.Profile, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (p:Profile {id: $profileID})
		RETURN
			p.id as id,
			p.full_name as full_name,
			p.headline as headline,
			p.location as location,
			p.anonymous_beyond_first_degree as anonymous_beyond_first_degree,
			p.anonymous_to_connections as anonymous_to_connections
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"profileID": profileID,
	})
	if err != nil {
		return netgraph.Profile{}, fmt.Errorf("failed to fetch profile: %w", err)
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return netgraph.Profile{}, fmt.Errorf("failed to read profile record: %w", err)
		}
		return netgraph.Profile{}, errors.NewProfileNotFound(profileID)
	}

	return profileFromRecord(result.Record()), nil
}

// ProfilesByID returns the profiles for a set of account ids, keyed by id.
// Missing ids are simply absent from the map.
func (r *Repository) ProfilesByID(ctx context.Context, profileIDs []string) (map[string]netgraph.Profile, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (p:Profile)
		WHERE p.id IN $profileIDs
		RETURN
			p.id as id,
			p.full_name as full_name,
			p.headline as headline,
			p.location as location,
			p.anonymous_beyond_first_degree as anonymous_beyond_first_degree,
			p.anonymous_to_connections as anonymous_to_connections
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"profileIDs": profileIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	profiles := make(map[string]netgraph.Profile, len(profileIDs))
	for result.Next(ctx) {
		p := profileFromRecord(result.Record())
		profiles[p.ID] = p
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profile records: %w", err)
	}

	return profiles, nil
}

func profileFromRecord(record *neo4j.Record) netgraph.Profile {
	return netgraph.Profile{
		ID:                         getStringFromRecord(record, "id"),
		FullName:                   getStringFromRecord(record, "full_name"),
		Headline:                   getStringFromRecord(record, "headline"),
		Location:                   getStringFromRecord(record, "location"),
		AnonymousBeyondFirstDegree: getBoolFromRecord(record, "anonymous_beyond_first_degree"),
		AnonymousToConnections:     getBoolFromRecord(record, "anonymous_to_connections"),
	}
}
