package profile

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/waseertanvir/walkies-sub000/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetProfile() {
	err := s.repo.SaveProfile(context.Background(), &SaveProfileInput{
		Profile: &models.Profile{
			ID:          "user-1",
			DisplayName: "Sam",
			AvatarURL:   "https://example.com/sam.png",
		},
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetProfile(context.Background(), &GetProfileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal("Sam", retrieved.DisplayName)
}

func (s *RedisRepositoryTestSuite) TestGetProfile_NotFound() {
	_, err := s.repo.GetProfile(context.Background(), &GetProfileInput{UserID: "missing"})
	s.Require().ErrorIs(err, ErrProfileNotFound)
}
