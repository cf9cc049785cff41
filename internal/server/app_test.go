package server

import (
	"context"
	"testing"
	"time"

	"github.com/gamezone/gamezone/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_RejectsMissingSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret key is required")
}

func TestNewApp_UnreachableDatabase(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "s"
	cfg.DatabaseDSN = "postgres://u:p@127.0.0.1:1/db?sslmode=disable&connect_timeout=1"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := NewApp(ctx, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db ping error")
}
