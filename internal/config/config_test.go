package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playmatatu/billiards/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, game.DefaultSceneParams(), cfg.Scene)
	assert.Equal(t, -9.81, cfg.GravityY)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.DatabaseURL)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("TICK_RATE", "120")
	t.Setenv("TABLE_HALF_WIDTH", "500")
	t.Setenv("BALL_RADIUS", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("MIGRATE_ON_START", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 120, cfg.TickRate)
	assert.Equal(t, 500.0, cfg.Scene.HalfWidth)
	assert.Equal(t, game.BallRadius, cfg.Scene.BallRadius, "bad numbers fall back to the default")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.MigrateOnStart)
}

func TestApplySceneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
table:
  half_width: 600
  ball_radius: 12
gravity:
  x: 0
  y: 0
physics:
  friction: 0.3
`), 0o644))

	cfg := Load()
	require.NoError(t, cfg.ApplySceneFile(path))

	assert.Equal(t, 600.0, cfg.Scene.HalfWidth)
	assert.Equal(t, 12.0, cfg.Scene.BallRadius)
	assert.Equal(t, game.TableHalfHeight, cfg.Scene.HalfHeight, "missing keys keep defaults")
	assert.Equal(t, 0.0, cfg.GravityY)
	assert.Equal(t, 0.3, cfg.Friction)
	assert.Equal(t, 0.95, cfg.BallElasticity)
	assert.Equal(t, path, cfg.SceneFile)
	require.NoError(t, cfg.Validate())
}

func TestApplySceneFileErrors(t *testing.T) {
	cfg := Load()
	assert.Error(t, cfg.ApplySceneFile(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("table: [1, 2"), 0o644))
	assert.Error(t, cfg.ApplySceneFile(path))
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.TickRate = 0
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.SnapshotEvery = 0
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.Scene.BallRadius = -1
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.Scene.HalfWidth = 100 // rack of radius 10 needs ~92 units past centre+50
	assert.Error(t, cfg.Validate())
}
