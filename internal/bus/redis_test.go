package bus

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/waseertanvir/walkies-sub000/internal/models"
)

type RedisBusTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	bus    Bus
}

func (s *RedisBusTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	b, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.bus = b
}

func (s *RedisBusTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisBusTestSuite(t *testing.T) {
	suite.Run(t, new(RedisBusTestSuite))
}

func (s *RedisBusTestSuite) sample(publisherID string, role models.ParticipantRole) *models.PositionSample {
	return &models.PositionSample{
		PublisherID: publisherID,
		Role:        role,
		DisplayName: publisherID,
		Latitude:    49.2827,
		Longitude:   -123.1207,
		Timestamp:   time.Now().UTC(),
	}
}

// collect reads samples until n arrive or the deadline passes
func (s *RedisBusTestSuite) collect(sub *Subscription, n int) []*models.PositionSample {
	var got []*models.PositionSample
	deadline := time.After(2 * time.Second)
	for len(got) < n {
		select {
		case sample, ok := <-sub.C():
			if !ok {
				return got
			}
			got = append(got, sample)
		case <-deadline:
			return got
		}
	}
	return got
}

func (s *RedisBusTestSuite) TestSubscriberReceivesOthersNeverItself() {
	ctx := context.Background()
	topic := "walk:sess-1:positions"

	sub, err := s.bus.Subscribe(ctx, topic, "owner-1")
	s.Require().NoError(err)
	defer sub.Close()

	// The subscriber's own sample, then two from the counterpart
	s.Require().NoError(s.bus.Publish(ctx, topic, s.sample("owner-1", models.RoleOwner)))
	s.Require().NoError(s.bus.Publish(ctx, topic, s.sample("walker-1", models.RoleWalker)))
	s.Require().NoError(s.bus.Publish(ctx, topic, s.sample("walker-1", models.RoleWalker)))

	got := s.collect(sub, 2)
	s.Require().Len(got, 2)
	for _, sample := range got {
		s.Equal("walker-1", sample.PublisherID)
	}
}

func (s *RedisBusTestSuite) TestTwoPublishersOneSubscriber() {
	ctx := context.Background()
	topic := "walk:sess-1:positions"

	sub, err := s.bus.Subscribe(ctx, topic, "viewer")
	s.Require().NoError(err)
	defer sub.Close()

	s.Require().NoError(s.bus.Publish(ctx, topic, s.sample("owner-1", models.RoleOwner)))
	s.Require().NoError(s.bus.Publish(ctx, topic, s.sample("walker-1", models.RoleWalker)))

	got := s.collect(sub, 2)
	s.Require().Len(got, 2)

	roster := NewRoster()
	for _, sample := range got {
		roster.Observe(sample)
	}
	_, ok := roster.Get("owner-1")
	s.True(ok)
	_, ok = roster.Get("walker-1")
	s.True(ok)
}

func (s *RedisBusTestSuite) TestTopicsAreIsolated() {
	ctx := context.Background()

	sub, err := s.bus.Subscribe(ctx, "walk:sess-1:positions", "viewer")
	s.Require().NoError(err)
	defer sub.Close()

	s.Require().NoError(s.bus.Publish(ctx, "walk:sess-2:positions", s.sample("walker-1", models.RoleWalker)))

	select {
	case sample, ok := <-sub.C():
		if ok {
			s.Failf("unexpected sample", "got sample from %s", sample.PublisherID)
		}
	case <-time.After(200 * time.Millisecond):
	}
}

func (s *RedisBusTestSuite) TestCloseEndsStream() {
	ctx := context.Background()

	sub, err := s.bus.Subscribe(ctx, "walk:sess-1:positions", "viewer")
	s.Require().NoError(err)

	sub.Close()
	// Close is idempotent
	sub.Close()

	select {
	case _, ok := <-sub.C():
		s.False(ok)
	case <-time.After(2 * time.Second):
		s.Fail("stream did not close")
	}
}

func (s *RedisBusTestSuite) TestMalformedPayloadIsDropped() {
	ctx := context.Background()
	topic := "walk:sess-1:positions"

	sub, err := s.bus.Subscribe(ctx, topic, "viewer")
	s.Require().NoError(err)
	defer sub.Close()

	s.Require().NoError(s.client.Publish(ctx, topic, "not json").Err())
	s.Require().NoError(s.bus.Publish(ctx, topic, s.sample("walker-1", models.RoleWalker)))

	got := s.collect(sub, 1)
	s.Require().Len(got, 1)
	s.Equal("walker-1", got[0].PublisherID)
}
