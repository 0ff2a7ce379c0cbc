package audittrail

import (
	"context"
	"time"

	"github.com/opsdesk/backend/internal/metrics"
	"github.com/opsdesk/backend/internal/models"
	"go.uber.org/zap"
)

// normalized is a ChangeRecord with its legacy columns folded in and its states parsed.
type normalized struct {
	rec        models.ChangeRecord
	action     string
	entityType string
	entityID   string
	actorID    string
	kind       Kind
	before     models.Payload
	after      models.Payload
}

func normalize(r models.ChangeRecord) normalized {
	n := normalized{
		rec:        r,
		action:     r.NormalizedAction(),
		entityType: r.NormalizedEntityType(),
		entityID:   r.NormalizedEntityID(),
		before:     r.Before(),
		after:      r.After(),
	}
	if r.ActorUserID != nil {
		n.actorID = models.Deref(r.ActorUserID)
	}
	n.kind = Classify(n.entityType)
	return n
}

// normalizeAll drops internal bookkeeping actions and normalizes the rest, keeping order.
func normalizeAll(records []models.ChangeRecord) []normalized {
	out := make([]normalized, 0, len(records))
	for _, r := range records {
		n := normalize(r)
		if models.IsSystemAction(n.action) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Resolve turns a batch of records into display entries using already loaded lookups.
// It does not mutate its inputs and gives the same output for the same inputs.
func Resolve(records []models.ChangeRecord, lk *Lookups) []models.ResolvedLogEntry {
	return resolveAll(normalizeAll(records), lk)
}

func resolveAll(records []normalized, lk *Lookups) []models.ResolvedLogEntry {
	if lk == nil {
		lk = &Lookups{}
	}
	out := make([]models.ResolvedLogEntry, 0, len(records))
	for _, n := range records {
		out = append(out, enrich(n, lk))
	}
	return out
}

// Resolver runs a full pass: extract references, load lookups, enrich. All state lives
// inside a single call.
type Resolver struct {
	loader *Loader
	log    *zap.Logger
}

func NewResolver(store Store, lookupTimeout time.Duration, log *zap.Logger) *Resolver {
	return &Resolver{
		loader: NewLoader(store, lookupTimeout, log),
		log:    log,
	}
}

func (r *Resolver) Resolve(ctx context.Context, records []models.ChangeRecord) []models.ResolvedLogEntry {
	start := time.Now()

	batch := normalizeAll(records)
	refs := extract(batch)
	lk := r.loader.Load(ctx, refs)
	entries := resolveAll(batch, lk)

	elapsed := time.Since(start)
	metrics.ResolveDuration.Observe(elapsed.Seconds())
	metrics.EntriesResolved.Add(float64(len(entries)))
	r.log.Debug("audit trail resolved",
		zap.Int("records", len(records)),
		zap.Int("entries", len(entries)),
		zap.Int("users", len(refs.Users)),
		zap.Int("assets", len(refs.Assets)),
		zap.Duration("elapsed", elapsed),
	)
	return entries
}
