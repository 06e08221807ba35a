// Package toggle flips a user-to-target relation between present and
// absent. The store's uniqueness constraint is the arbiter: the engine never
// reads before it writes.
package toggle

import (
	"context"

	"gotube/internal/common"
	"gotube/internal/logging"
	"gotube/internal/metrics"
)

type State string

const (
	Added   State = "added"
	Removed State = "removed"
)

const defaultMaxAttempts = 3

// Store is the relation persistence the engine drives. Insert must return a
// Conflict error when the natural key already exists; Delete removes by
// natural key and reports whether a row went away.
type Store[R any] interface {
	Insert(ctx context.Context, row *R) error
	Delete(ctx context.Context, row *R) (bool, error)
}

// Result carries the inserted row when State is Added.
type Result[R any] struct {
	State    State `json:"state"`
	Relation *R    `json:"relation,omitempty"`
}

type Engine[R any] struct {
	relation    string
	store       Store[R]
	maxAttempts int
}

func NewEngine[R any](relation string, store Store[R]) *Engine[R] {
	return &Engine[R]{
		relation:    relation,
		store:       store,
		maxAttempts: defaultMaxAttempts,
	}
}

// Toggle inserts key, or deletes it when the insert collides. If the delete
// finds nothing a concurrent toggle got there first and the insert is tried
// again.
func (e *Engine[R]) Toggle(ctx context.Context, key R) (*Result[R], error) {
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		row := key
		err := e.store.Insert(ctx, &row)
		if err == nil {
			metrics.TogglesTotal.WithLabelValues(e.relation, string(Added)).Inc()
			return &Result[R]{State: Added, Relation: &row}, nil
		}
		if !common.IsConflict(err) {
			return nil, common.Wrap(err, "failed to insert "+e.relation)
		}
		metrics.ToggleConflictsTotal.WithLabelValues(e.relation).Inc()

		removed, err := e.store.Delete(ctx, &row)
		if err != nil {
			return nil, common.Wrap(err, "failed to delete "+e.relation)
		}
		if removed {
			metrics.TogglesTotal.WithLabelValues(e.relation, string(Removed)).Inc()
			return &Result[R]{State: Removed}, nil
		}

		logging.Ctx(ctx).Debug().
			Str("relation", e.relation).
			Int("attempt", attempt).
			Msg("toggle lost a race, retrying")
	}

	metrics.TogglesTotal.WithLabelValues(e.relation, "conflict").Inc()
	return nil, common.Conflict(e.relation + " is being changed concurrently, try again")
}
