package bus

//go:generate mockgen -package=mocks -destination=mocks/mock_bus.go github.com/waseertanvir/walkies-sub000/internal/bus Bus

import (
	"context"
	"sync"

	"github.com/waseertanvir/walkies-sub000/internal/models"
)

// Bus is the presence/location broadcast primitive: topic-scoped,
// best-effort, no history. A subscriber joining late misses everything
// published before it joined, and a reconnect is a brand-new subscription.
type Bus interface {
	// Publish sends a sample to everyone currently on the topic.
	// Fire-and-forget: there is no acknowledgment and no retry.
	Publish(ctx context.Context, topic string, sample *models.PositionSample) error

	// Subscribe attaches to a topic and yields every sample published by
	// anyone except selfID, until Close is called or the underlying
	// connection drops.
	Subscribe(ctx context.Context, topic, selfID string) (*Subscription, error)
}

// Subscription is one live attachment to a topic. Samples arrive on C;
// the channel closes when the subscription ends for any reason.
type Subscription struct {
	samples   chan *models.PositionSample
	closeOnce sync.Once
	closeFn   func()
}

// NewSubscription wraps a sample channel and a release function. Transports
// own the channel and must close it when the subscription ends.
func NewSubscription(samples chan *models.PositionSample, closeFn func()) *Subscription {
	return &Subscription{
		samples: samples,
		closeFn: closeFn,
	}
}

// C returns the stream of incoming samples
func (s *Subscription) C() <-chan *models.PositionSample {
	return s.samples
}

// Close releases the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.closeOnce.Do(s.closeFn)
}
