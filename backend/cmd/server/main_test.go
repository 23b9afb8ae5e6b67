package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshwork/backend/internal/netgraph"
	"meshwork/backend/internal/services"
	"meshwork/backend/pkg/logger"
)

type stubSource struct {
	snapshot *netgraph.Snapshot
}

func (s *stubSource) FetchSnapshot(ctx context.Context, ownerID string) (*netgraph.Snapshot, error) {
	return s.snapshot, nil
}

func testRouter(snapshot *netgraph.Snapshot) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewNetworkService(&stubSource{snapshot: snapshot})
	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/api/network/:ownerID/graph", networkGraphHandler(svc, 5*time.Second, logger.Get()))
	return router
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ok", response["status"])
}

func TestNetworkGraphEndpoint(t *testing.T) {
	router := testRouter(&netgraph.Snapshot{
		OwnerID:      "ava",
		OwnerProfile: netgraph.Profile{ID: "ava", FullName: "Ava Lindqvist"},
		Contacts: []netgraph.Contact{
			{ID: "c1", OwnerID: "ava", FullName: "Greta Meyer", RelationshipType: "Friend"},
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/network/ava/graph?seed=42", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Graph struct {
			Nodes []map[string]interface{} `json:"nodes"`
			Edges []map[string]interface{} `json:"edges"`
		} `json:"graph"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Len(t, view.Graph.Nodes, 2)
	assert.Len(t, view.Graph.Edges, 1)

	// Field names are the renderer's contract.
	node := view.Graph.Nodes[0]
	for _, key := range []string{"id", "label", "category", "connectionCount", "radius"} {
		assert.Contains(t, node, key)
	}
	edge := view.Graph.Edges[0]
	for _, key := range []string{"source", "target", "distance", "thickness", "recencyIntensity", "isMutual", "isSecondDegree", "isCrossLink"} {
		assert.Contains(t, edge, key)
	}
}

func TestNetworkGraphEndpoint_SeedIsStable(t *testing.T) {
	snapshot := &netgraph.Snapshot{
		OwnerID:      "ava",
		OwnerProfile: netgraph.Profile{ID: "ava", FullName: "Ava Lindqvist"},
		Contacts: []netgraph.Contact{
			{ID: "c1", OwnerID: "ava", FullName: "Greta Meyer", RelationshipType: "Friend"},
		},
	}
	router := testRouter(snapshot)

	get := func() string {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/network/ava/graph?seed=7", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	assert.Equal(t, get(), get(), "same snapshot and seed must produce identical output")
}

func TestNetworkGraphEndpoint_InvalidSeed(t *testing.T) {
	router := testRouter(&netgraph.Snapshot{
		OwnerID:      "ava",
		OwnerProfile: netgraph.Profile{ID: "ava"},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/network/ava/graph?seed=abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
