package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("MARKET_REQUEST_TIMEOUT", "")
	t.Setenv("RABBITMQ_URL", "")

	cfg := New()

	assert.Equal(t, "127.0.0.1", cfg.GRPC.Host)
	assert.Equal(t, "50051", cfg.GRPC.Port)
	assert.Contains(t, cfg.DB.DSN, "@tcp(localhost:3306)/barter")
	assert.Equal(t, 5*time.Second, cfg.Market.RequestTimeout)
	assert.Empty(t, cfg.RabbitMQ.URL)
	assert.NotEmpty(t, cfg.Market.GreetingText)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("MYSQL_DSN", "u:p@tcp(db:3306)/x")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("MARKET_REQUEST_TIMEOUT", "250ms")
	t.Setenv("MARKET_PAGE_SIZE", "not-a-number")
	t.Setenv("LOG_SOURCE", "yes")

	cfg := New()

	assert.Equal(t, "u:p@tcp(db:3306)/x", cfg.DB.DSN)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 250*time.Millisecond, cfg.Market.RequestTimeout)
	assert.Equal(t, 20, cfg.Market.PageSize)
	assert.True(t, cfg.Log.Source)
}
