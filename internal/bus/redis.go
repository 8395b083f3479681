package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/waseertanvir/walkies-sub000/internal/models"
)

// subscriptionBuffer bounds how far a slow reader can lag before samples
// are dropped. Position samples supersede each other, so dropping is fine.
const subscriptionBuffer = 32

// Config holds configuration for the Redis bus
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Logger for delivery diagnostics
	Logger *logrus.Logger
}

// redisBus implements the Bus interface over Redis Pub/Sub
type redisBus struct {
	client *redis.Client
	log    *logrus.Logger
}

// NewRedis creates a new Redis-backed presence bus
func NewRedis(cfg *Config) (*redisBus, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.New()
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisBus{
		client: cfg.RedisClient,
		log:    log,
	}, nil
}

// Publish sends a sample to everyone currently on the topic
func (b *redisBus) Publish(ctx context.Context, topic string, sample *models.PositionSample) error {
	if topic == "" || sample == nil {
		return errors.New("topic and sample cannot be empty")
	}

	payload, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal sample: %w", err)
	}

	return b.client.Publish(ctx, topic, payload).Err()
}

// Subscribe attaches to a topic. The returned subscription's channel closes
// when Close is called or the pubsub connection drops.
func (b *redisBus) Subscribe(ctx context.Context, topic, selfID string) (*Subscription, error) {
	if topic == "" {
		return nil, errors.New("topic cannot be empty")
	}

	pubsub := b.client.Subscribe(ctx, topic)

	// Confirm the SUBSCRIBE took effect before handing out the stream
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	sub := NewSubscription(make(chan *models.PositionSample, subscriptionBuffer), func() {
		_ = pubsub.Close()
	})

	go b.pump(pubsub, sub, topic, selfID)

	return sub, nil
}

// pump moves messages from the pubsub connection onto the subscription
// channel, dropping the subscriber's own samples and anything malformed
func (b *redisBus) pump(pubsub *redis.PubSub, sub *Subscription, topic, selfID string) {
	defer close(sub.samples)

	for msg := range pubsub.Channel() {
		var sample models.PositionSample
		if err := json.Unmarshal([]byte(msg.Payload), &sample); err != nil {
			b.log.WithFields(logrus.Fields{
				"topic": topic,
				"error": err,
			}).Warn("dropping malformed position sample")
			continue
		}

		if sample.PublisherID == selfID {
			continue
		}

		select {
		case sub.samples <- &sample:
		default:
			// Reader is lagging; newer samples supersede this one anyway
		}
	}
}
