package redis_test

import (
	"context"
	"frontdesk/config"
	"frontdesk/infras/redis"
	"testing"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "cache"
	cfg.Cache.Redis.Primary.Port = "6380"
	cfg.Cache.Redis.Primary.Password = "secret"
	cfg.Cache.Redis.Primary.DB = 2

	opts := redis.Options(cfg)

	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.NotZero(t, opts.DialTimeout)
}

func TestPing_Unreachable(t *testing.T) {
	client := goRedis.NewClient(&goRedis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	err := redis.Ping(context.Background(), client)

	assert.ErrorIs(t, err, redis.ErrUnreachable)
}
