// Package messaging publishes engagement events to NATS.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"gotube/internal/common"
	"gotube/internal/config"
	"gotube/internal/logging"
)

// NATSPublisher writes each event to "<prefix>.<event type>", for example
// gotube.like.added.
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
}

func NewNATSConnection(cfg *config.Config) (*nats.Conn, error) {
	conn, err := nats.Connect(cfg.NATSURL(),
		nats.Name("gotube-engagement"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logging.Warn().Err(err).Msg("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logging.Info().Str("url", c.ConnectedUrl()).Msg("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return conn, nil
}

func NewNATSPublisher(conn *nats.Conn, prefix string) *NATSPublisher {
	return &NATSPublisher{conn: conn, prefix: prefix}
}

func (p *NATSPublisher) Subject(eventType common.EventType) string {
	if p.prefix == "" {
		return string(eventType)
	}
	return p.prefix + "." + string(eventType)
}

func (p *NATSPublisher) Publish(ctx context.Context, event common.EngagementEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}
	if err := p.conn.Publish(p.Subject(event.Type), payload); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		logging.Warn().Err(err).Msg("nats drain failed")
	}
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, common.EngagementEvent) error { return nil }
