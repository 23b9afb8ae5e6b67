package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"meshwork/backend/internal/netgraph"
	"meshwork/backend/pkg/logger"
	"meshwork/backend/pkg/metrics"
)

// SnapshotSource provides the immutable input of one graph build. The Neo4j
// repository implements it; tests substitute a fixture.
type SnapshotSource interface {
	FetchSnapshot(ctx context.Context, ownerID string) (*netgraph.Snapshot, error)
}

// NetworkService composes the read layer and the graph engine into the one
// operation the view layer calls.
type NetworkService struct {
	source  SnapshotSource
	builder *netgraph.Builder
	logger  *zap.Logger
}

// NetworkView is the response handed to the renderer: the scored graph plus
// the structured diagnostics accumulated during fetch and assembly.
type NetworkView struct {
	Graph    *netgraph.Graph    `json:"graph"`
	Warnings []netgraph.Warning `json:"warnings"`
}

// NewNetworkService creates a network service
func NewNetworkService(source SnapshotSource) *NetworkService {
	return &NetworkService{
		source:  source,
		builder: netgraph.NewBuilder(),
		logger:  logger.Get(),
	}
}

// BuildNetwork fetches a fresh snapshot and assembles the scored graph for
// one owner. Cancelling ctx aborts in-flight fetches and discards partial
// results; a half-built graph is never returned.
func (s *NetworkService) BuildNetwork(ctx context.Context, ownerID string, opts ...netgraph.BuildOption) (*NetworkView, error) {
	start := time.Now()

	snap, err := s.source.FetchSnapshot(ctx, ownerID)
	if err != nil {
		s.observe(start, err)
		return nil, err
	}

	graph, warnings, err := s.builder.Build(ctx, snap, opts...)
	if err != nil {
		s.observe(start, err)
		return nil, err
	}

	for _, w := range warnings {
		metrics.RecordsDroppedTotal.WithLabelValues(string(w.Code)).Inc()
	}
	s.observe(start, nil)

	s.logger.Info("Network graph built",
		zap.String("owner_id", ownerID),
		zap.Int("nodes", len(graph.Nodes)),
		zap.Int("edges", len(graph.Edges)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &NetworkView{
		Graph:    graph,
		Warnings: warnings,
	}, nil
}

func (s *NetworkService) observe(start time.Time, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = "cancelled"
	default:
		outcome = "error"
	}
	metrics.GraphBuildsTotal.WithLabelValues(outcome).Inc()
	metrics.GraphBuildDuration.Observe(time.Since(start).Seconds())
}
