package messaging

import (
	"context"
	"sync"
	"time"

	"gotube/internal/common"
	"gotube/internal/logging"
	"gotube/internal/metrics"
)

const publishTimeout = 5 * time.Second

// Dispatcher fans events out to publishers from a fixed worker pool so that
// request handlers never wait on the broker.
type Dispatcher struct {
	publishers map[string]common.EventPublisher
	events     chan common.EngagementEvent
	workers    int
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.RWMutex
	wg         sync.WaitGroup
	closed     bool
}

func NewDispatcher(workers, bufferSize int) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	d := &Dispatcher{
		publishers: make(map[string]common.EventPublisher),
		events:     make(chan common.EngagementEvent, bufferSize),
		workers:    workers,
		ctx:        ctx,
		cancel:     cancel,
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.processEvents()
	}
	return d
}

func (d *Dispatcher) Subscribe(name string, p common.EventPublisher) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.publishers[name] = p
	logging.Info().Str("publisher", name).Msg("event publisher subscribed")
}

func (d *Dispatcher) Unsubscribe(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.publishers, name)
}

// Emit queues the event. A full buffer drops it.
func (d *Dispatcher) Emit(event common.EngagementEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	select {
	case d.events <- event:
	default:
		metrics.EventsDroppedTotal.Inc()
		logging.Warn().Str("type", string(event.Type)).Msg("event buffer full, dropping event")
	}
}

// Dispatch publishes synchronously to every publisher. Failures are logged.
func (d *Dispatcher) Dispatch(ctx context.Context, event common.EngagementEvent) {
	d.mu.RLock()
	names := make([]string, 0, len(d.publishers))
	publishers := make([]common.EventPublisher, 0, len(d.publishers))
	for name, p := range d.publishers {
		names = append(names, name)
		publishers = append(publishers, p)
	}
	d.mu.RUnlock()

	for i, p := range publishers {
		if err := p.Publish(ctx, event); err != nil {
			logging.Error().Err(err).
				Str("publisher", names[i]).
				Str("type", string(event.Type)).
				Str("target_id", event.TargetID).
				Msg("event publish failed")
		}
	}
}

func (d *Dispatcher) processEvents() {
	defer d.wg.Done()

	for {
		select {
		case event, ok := <-d.events:
			if !ok {
				return
			}
			d.publish(event)
		case <-d.ctx.Done():
			d.drain()
			return
		}
	}
}

func (d *Dispatcher) publish(event common.EngagementEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	d.Dispatch(ctx, event)
}

func (d *Dispatcher) drain() {
	for {
		select {
		case event := <-d.events:
			d.publish(event)
		default:
			return
		}
	}
}

// Shutdown stops accepting events, publishes what is buffered and waits for
// the workers.
func (d *Dispatcher) Shutdown() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	d.cancel()
	d.wg.Wait()
	logging.Info().Msg("event dispatcher shutdown complete")
}
