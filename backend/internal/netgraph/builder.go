package netgraph

import (
	"context"
	"time"

	"meshwork/backend/pkg/errors"
	"meshwork/backend/pkg/logger"

	"go.uber.org/zap"
)

// ============================================================================
// Build Pipeline
// ============================================================================

// Builder runs the full assembly pipeline over one immutable snapshot:
// resolve identities, guard structural consistency, assemble the four node
// passes with privacy filtering, then score. It is pure and re-entrant:
// every build gets its own bookkeeping, so concurrent builds never interfere.
// The only non-determinism is the cosmetic distance jitter, and that is
// injectable.
type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a builder
func NewBuilder() *Builder {
	return &Builder{logger: logger.Get()}
}

// BuildOption customizes a single build
type BuildOption func(*buildOptions)

type buildOptions struct {
	jitter JitterSource
	now    time.Time
}

// WithJitter pins the jitter source, typically to a fixed seed in tests
func WithJitter(j JitterSource) BuildOption {
	return func(o *buildOptions) { o.jitter = j }
}

// WithNow pins the clock used for recency scoring
func WithNow(t time.Time) BuildOption {
	return func(o *buildOptions) { o.now = t }
}

// Build assembles the scored relationship graph for a snapshot. Warnings
// describe everything that was dropped or degraded; an error is returned
// only for an unusable snapshot or a cancelled context, in which case no
// partial graph is ever returned.
func (b *Builder) Build(ctx context.Context, snap *Snapshot, opts ...BuildOption) (*Graph, []Warning, error) {
	if snap == nil || snap.OwnerID == "" {
		ownerID := ""
		if snap != nil {
			ownerID = snap.OwnerID
		}
		return nil, nil, errors.NewSnapshotIncomplete(ownerID)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, errors.NewContextCancelled("graph build", err)
	}

	options := buildOptions{
		jitter: NewJitter(time.Now().UnixNano()),
		now:    time.Now(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	warnings := make([]Warning, 0, len(snap.Warnings))
	warnings = append(warnings, snap.Warnings...)

	resolver := NewResolver()
	activity := SummarizeActivity(snap.Activities)

	connections, ghostWarnings := filterGhostConnections(
		snap.OwnerID, snap.Connections, snap.Contacts, snap.SecondDegree)
	warnings = append(warnings, ghostWarnings...)

	asm := newAssembler(snap, resolver, activity, options.jitter, options.now)
	asm.addSelf()
	asm.addMutualUsers(connections)
	asm.addOwnedContacts()

	if err := ctx.Err(); err != nil {
		return nil, nil, errors.NewContextCancelled("graph build", err)
	}

	asm.addSecondDegree(connections)
	graph := asm.finish(connections)
	warnings = append(warnings, asm.warnings...)

	if err := ctx.Err(); err != nil {
		return nil, nil, errors.NewContextCancelled("graph build", err)
	}

	b.logger.Debug("Graph build complete",
		zap.String("owner_id", snap.OwnerID),
		zap.Int("nodes", len(graph.Nodes)),
		zap.Int("edges", len(graph.Edges)),
		zap.Int("warnings", len(warnings)),
	)

	return graph, warnings, nil
}
