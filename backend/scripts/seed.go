package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"meshwork/backend/pkg/config"
	"meshwork/backend/pkg/logger"
)

// Seeds a small demo network: one owner with direct contacts, two accepted
// connections (one of them anonymous beyond the first degree), activity
// history, and second-degree contacts including a cross-link back to one of
// the owner's own contacts.
func main() {
	reset := flag.Bool("reset", false, "Delete all existing data before seeding")
	flag.Parse()

	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting database seeding...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(err))
	}
	defer driver.Close(context.Background())

	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
	}

	if *reset {
		log.Info("Resetting database...")
		if err := run(ctx, driver, "MATCH (n) DETACH DELETE n", nil); err != nil {
			log.Fatal("Failed to reset database", zap.Error(err))
		}
	}

	log.Info("Creating constraints...")
	if err := createConstraints(ctx, driver); err != nil {
		log.Warn("Failed to create some constraints (may already exist)", zap.Error(err))
	}

	log.Info("Seeding demo network...")
	if err := seedNetwork(ctx, driver); err != nil {
		log.Fatal("Failed to seed network", zap.Error(err))
	}

	log.Info("Seeding complete",
		zap.String("owner_id", "ava"),
		zap.String("try", "GET /api/network/ava/graph"),
	)
}

func createConstraints(ctx context.Context, driver neo4j.DriverWithContext) error {
	constraints := []string{
		"CREATE CONSTRAINT profile_id IF NOT EXISTS FOR (p:Profile) REQUIRE p.id IS UNIQUE",
		"CREATE CONSTRAINT contact_id IF NOT EXISTS FOR (c:Contact) REQUIRE c.id IS UNIQUE",
		"CREATE CONSTRAINT activity_id IF NOT EXISTS FOR (a:Activity) REQUIRE a.id IS UNIQUE",
	}
	for _, stmt := range constraints {
		if err := run(ctx, driver, stmt, nil); err != nil {
			return err
		}
	}
	return nil
}

func seedNetwork(ctx context.Context, driver neo4j.DriverWithContext) error {
	now := time.Now().UTC()

	profiles := []map[string]interface{}{
		{"id": "ava", "full_name": "Ava Lindqvist", "headline": "Product Designer", "location": "Stockholm", "anon_first": false, "anon_conn": false},
		{"id": "ben", "full_name": "Ben Okafor", "headline": "Backend Engineer", "location": "Berlin", "anon_first": false, "anon_conn": false},
		{"id": "chloe", "full_name": "Chloe Tan", "headline": "Venture Analyst", "location": "Singapore", "anon_first": true, "anon_conn": false},
		{"id": "dina", "full_name": "Dina Haddad", "headline": "Data Scientist", "location": "Amman", "anon_first": false, "anon_conn": true},
	}
	for _, p := range profiles {
		err := run(ctx, driver, `
			MERGE (p:Profile {id: $id})
			SET p.full_name = $full_name,
			    p.headline = $headline,
			    p.location = $location,
			    p.anonymous_beyond_first_degree = $anon_first,
			    p.anonymous_to_connections = $anon_conn
		`, p)
		if err != nil {
			return err
		}
	}

	contacts := []map[string]interface{}{
		// Ava's cards. ben-card links to Ben's account; greta is unlinked and
		// also known to Ben, which produces the cross-link.
		{"owner": "ava", "id": "ava-ben", "full_name": "Ben Okafor", "headline": "Backend Engineer", "relationship_type": "Close Friend", "linked": "ben", "anon": false},
		{"owner": "ava", "id": "ava-chloe", "full_name": "Chloe Tan", "headline": "Venture Analyst", "relationship_type": "Colleague", "linked": "chloe", "anon": false},
		{"owner": "ava", "id": "ava-greta", "full_name": "Greta Meyer", "headline": "Recruiter", "relationship_type": "Acquaintance", "linked": "", "anon": false},
		// Ben's cards, seen by Ava as second degree.
		{"owner": "ben", "id": "ben-ava", "full_name": "Ava Lindqvist", "headline": "Product Designer", "relationship_type": "Close Friend", "linked": "ava", "anon": false},
		{"owner": "ben", "id": "ben-greta", "full_name": "Greta Meyer", "headline": "Recruiter", "relationship_type": "Client", "linked": "", "anon": false},
		{"owner": "ben", "id": "ben-dina", "full_name": "Dina Haddad", "headline": "Data Scientist", "relationship_type": "Colleague", "linked": "dina", "anon": false},
		{"owner": "ben", "id": "ben-secret", "full_name": "Sam Quiet", "headline": "Advisor", "relationship_type": "Mentor", "linked": "", "anon": true},
		// Chloe hides her network beyond the first degree; none of these show.
		{"owner": "chloe", "id": "chloe-ava", "full_name": "Ava Lindqvist", "headline": "Product Designer", "relationship_type": "Colleague", "linked": "ava", "anon": false},
		{"owner": "chloe", "id": "chloe-x", "full_name": "Xavier Brandt", "headline": "Founder", "relationship_type": "Client", "linked": "", "anon": false},
	}
	for _, c := range contacts {
		err := run(ctx, driver, `
			MATCH (o:Profile {id: $owner})
			MERGE (c:Contact {id: $id})
			SET c.full_name = $full_name,
			    c.headline = $headline,
			    c.relationship_type = $relationship_type,
			    c.anonymous_to_connections = $anon
			MERGE (o)-[:OWNS]->(c)
		`, c)
		if err != nil {
			return err
		}
		if linked, _ := c["linked"].(string); linked != "" {
			err := run(ctx, driver, `
				MATCH (c:Contact {id: $id})
				MATCH (p:Profile {id: $linked})
				MERGE (c)-[:LINKED_TO]->(p)
			`, map[string]interface{}{"id": c["id"], "linked": linked})
			if err != nil {
				return err
			}
		}
	}

	connections := []map[string]interface{}{
		{"id": "conn-ava-ben", "a": "ava", "b": "ben", "accepted_at": now.AddDate(0, -6, 0).Format(time.RFC3339)},
		{"id": "conn-ava-chloe", "a": "ava", "b": "chloe", "accepted_at": now.AddDate(0, -2, 0).Format(time.RFC3339)},
	}
	for _, conn := range connections {
		err := run(ctx, driver, `
			MATCH (a:Profile {id: $a})
			MATCH (b:Profile {id: $b})
			MERGE (a)-[conn:CONNECTED {id: $id}]->(b)
			SET conn.status = 'accepted',
			    conn.accepted_at = datetime($accepted_at)
		`, conn)
		if err != nil {
			return err
		}
	}

	activities := []map[string]interface{}{
		{"id": "act-1", "contact": "ava-ben", "occurred_at": now.AddDate(0, 0, -2).Format(time.RFC3339)},
		{"id": "act-2", "contact": "ava-ben", "occurred_at": now.AddDate(0, 0, -15).Format(time.RFC3339)},
		{"id": "act-3", "contact": "ava-ben", "occurred_at": now.AddDate(0, -1, 0).Format(time.RFC3339)},
		{"id": "act-4", "contact": "ava-chloe", "occurred_at": now.AddDate(0, -3, 0).Format(time.RFC3339)},
		{"id": "act-5", "contact": "ava-greta", "occurred_at": now.AddDate(-1, 0, 0).Format(time.RFC3339)},
	}
	for _, a := range activities {
		err := run(ctx, driver, `
			MATCH (c:Contact {id: $contact})
			MERGE (act:Activity {id: $id})
			SET act.occurred_at = datetime($occurred_at)
			MERGE (c)-[:HAS_ACTIVITY]->(act)
		`, a)
		if err != nil {
			return err
		}
	}

	return nil
}

func run(ctx context.Context, driver neo4j.DriverWithContext, query string, params map[string]interface{}) error {
	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	if _, err := session.Run(ctx, query, params); err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	return nil
}
