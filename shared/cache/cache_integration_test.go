//go:build integration

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nomad/infras/otel/mocks"
	"nomad/shared/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisCacheSuite struct {
	suite.Suite
	ctx       context.Context
	container testcontainers.Container
	client    *redis.Client
	cache     cache.RedisCache
}

func (s *RedisCacheSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	endpoint, err := container.Endpoint(s.ctx, "")
	s.Require().NoError(err)

	s.client = redis.NewClient(&redis.Options{Addr: endpoint})
	s.cache = cache.NewRedisCache(s.client, mocks.NewOtel())
}

func (s *RedisCacheSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}

	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(s.ctx).Err())
}

func (s *RedisCacheSuite) TestSaveAndGetJSON() {
	type trip struct {
		ID     string `json:"id"`
		Nights int    `json:"nights"`
	}

	s.Require().NoError(s.cache.Save(s.ctx, "trip:1", trip{ID: "1", Nights: 3}, 60))

	var got trip
	s.Require().NoError(s.cache.Get(s.ctx, "trip:1", &got))
	s.Equal(trip{ID: "1", Nights: 3}, got)

	ttl, err := s.client.TTL(s.ctx, "trip:1").Result()
	s.Require().NoError(err)
	s.InDelta(60, ttl.Seconds(), 2)
}

func (s *RedisCacheSuite) TestStringIsStoredRaw() {
	s.Require().NoError(s.cache.Save(s.ctx, "limiter:x", "7", 60))

	raw, err := s.client.Get(s.ctx, "limiter:x").Result()
	s.Require().NoError(err)
	s.Equal("7", raw)

	var got string
	s.Require().NoError(s.cache.Get(s.ctx, "limiter:x", &got))
	s.Equal("7", got)
}

func (s *RedisCacheSuite) TestMissWrapsNil() {
	var got string
	err := s.cache.Get(s.ctx, "missing", &got)

	s.True(errors.Is(err, cache.Nil))
}

func (s *RedisCacheSuite) TestClearByPattern() {
	s.Require().NoError(s.cache.Save(s.ctx, "comment:trip-1:page=1", "a", 60))
	s.Require().NoError(s.cache.Save(s.ctx, "comment:trip-1:page=2", "b", 60))
	s.Require().NoError(s.cache.Save(s.ctx, "comment:trip-2:page=1", "c", 60))

	s.Require().NoError(s.cache.Clear(s.ctx, "comment:trip-1:*"))

	keys, err := s.client.Keys(s.ctx, "comment:*").Result()
	s.Require().NoError(err)
	s.Equal([]string{"comment:trip-2:page=1"}, keys)
}

func (s *RedisCacheSuite) TestDelete() {
	s.Require().NoError(s.cache.Save(s.ctx, "booking:1", "x", 60))
	s.Require().NoError(s.cache.Delete(s.ctx, "booking:1"))

	var got string
	s.True(errors.Is(s.cache.Get(s.ctx, "booking:1", &got), cache.Nil))
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheSuite))
}
