package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"todoList/internal/app"
	"todoList/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Init(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "tasks.csv")

	a := app.New(cfg)
	require.NoError(t, a.Init(context.Background()))
	defer a.Close()

	require.NotNil(t, a.Service())
	assert.Equal(t, cfg, a.Config())

	_, err := uuid.Parse(a.InvocationID())
	assert.NoError(t, err)

	assert.NoError(t, a.Service().HealthCheck(context.Background()))
}

func TestApp_InitErrors(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		cfg := config.Default()
		cfg.Logging.Level = "loud"

		a := app.New(cfg)
		assert.Error(t, a.Init(context.Background()))
		a.Close()
	})

	t.Run("empty store path", func(t *testing.T) {
		cfg := config.Default()
		cfg.Storage.Path = ""

		a := app.New(cfg)
		assert.Error(t, a.Init(context.Background()))
		a.Close()
	})
}

func TestApp_CloseTwice(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "tasks.csv")

	a := app.New(cfg)
	require.NoError(t, a.Init(context.Background()))

	assert.NotPanics(t, func() {
		a.Close()
		a.Close()
	})
}
