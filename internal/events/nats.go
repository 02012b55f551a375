// Package events publishes session lifecycle events over NATS for the
// report and analytics services downstream.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/BoomMccloud/interviewer-pro-sub001/internal/interview"
)

// subjectPrefix is prepended to event types, giving subjects like
// "interview.session.completed".
const subjectPrefix = "interview."

// Publisher sends engine events to NATS. Implements interview.EventSink.
type Publisher struct {
	nc  *nats.Conn
	log *zap.SugaredLogger
}

// Connect dials NATS with unlimited reconnects. The interview flow must
// survive a broker outage, so losing the connection only degrades
// event delivery.
func Connect(url string, log *zap.SugaredLogger) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warnw("nats disconnected", "err", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infow("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Publisher{nc: nc, log: log}, nil
}

// Publish sends one lifecycle event. The engine treats failures as
// non-fatal; this only reports them.
func (p *Publisher) Publish(_ context.Context, ev interview.Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := p.nc.Publish(subjectPrefix+ev.Type, b); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}
	return nil
}

// Close drains the connection.
func (p *Publisher) Close() {
	if err := p.nc.Drain(); err != nil {
		p.log.Warnw("nats drain", "err", err)
	}
}
