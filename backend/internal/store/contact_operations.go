package store

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"meshwork/backend/internal/netgraph"
)

// ============================================================================
// Contact Read Operations
// ============================================================================

// OwnedContacts returns every contact card owned by the given account,
// including the linked profile id when the card points at a platform user
func (r *Repository) OwnedContacts(ctx context.Context, ownerID string) ([]netgraph.Contact, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (o:Profile {id: $ownerID})-[:OWNS]->(c:Contact)
		OPTIONAL MATCH (c)-[:LINKED_TO]->(lp:Profile)
		RETURN
			c.id as id,
			c.full_name as full_name,
			c.headline as headline,
			c.location as location,
			c.relationship_type as relationship_type,
			c.anonymous_to_connections as anonymous_to_connections,
			lp.id as linked_profile_id
		ORDER BY c.full_name
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"ownerID": ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owned contacts: %w", err)
	}

	var contacts []netgraph.Contact
	for result.Next(ctx) {
		record := result.Record()
		contacts = append(contacts, contactFromRecord(record, ownerID))
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contact records: %w", err)
	}

	return contacts, nil
}

// ContactsOfUsers returns the contact cards owned by each of the given
// users, keyed by owner id. This is the privileged second-degree read:
// ordinary per-owner authorization would block the requester from seeing a
// connection's raw contact rows, so this query is supplied by the
// persistence layer as a deliberate bypass and kept isolated here. Privacy
// flags still come back with each row; enforcement happens in the engine's
// privacy filter, before any dedup.
func (r *Repository) ContactsOfUsers(ctx context.Context, userIDs []string) (map[string][]netgraph.Contact, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (o:Profile)-[:OWNS]->(c:Contact)
		WHERE o.id IN $userIDs
		OPTIONAL MATCH (c)-[:LINKED_TO]->(lp:Profile)
		RETURN
			o.id as owner_id,
			c.id as id,
			c.full_name as full_name,
			c.headline as headline,
			c.location as location,
			c.relationship_type as relationship_type,
			c.anonymous_to_connections as anonymous_to_connections,
			lp.id as linked_profile_id
		ORDER BY o.id, c.full_name
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"userIDs": userIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contacts of users: %w", err)
	}

	contacts := make(map[string][]netgraph.Contact)
	for result.Next(ctx) {
		record := result.Record()
		ownerID := getStringFromRecord(record, "owner_id")
		contacts[ownerID] = append(contacts[ownerID], contactFromRecord(record, ownerID))
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contact records: %w", err)
	}

	return contacts, nil
}

func contactFromRecord(record *neo4j.Record, ownerID string) netgraph.Contact {
	return netgraph.Contact{
		ID:                     getStringFromRecord(record, "id"),
		OwnerID:                ownerID,
		FullName:               getStringFromRecord(record, "full_name"),
		Headline:               getStringFromRecord(record, "headline"),
		Location:               getStringFromRecord(record, "location"),
		RelationshipType:       getStringFromRecord(record, "relationship_type"),
		LinkedProfileID:        getStringFromRecord(record, "linked_profile_id"),
		AnonymousToConnections: getBoolFromRecord(record, "anonymous_to_connections"),
	}
}
