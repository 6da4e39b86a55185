package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/playmatatu/billiards/internal/game"
)

type Config struct {
	// Environment
	Environment string
	LogLevel    string

	// Server
	Port           string
	AllowedOrigins []string

	// Redis mirror (optional)
	RedisURL           string
	SnapshotTTLSeconds int

	// Control event recorder (optional)
	DatabaseURL    string
	MigrateOnStart bool
	MigrationsURL  string

	// Simulation loop
	TickRate      int // ticks per second
	SnapshotEvery int // broadcast every N frames

	// Scene
	SceneFile string
	Scene     game.SceneParams

	// Physics
	GravityX       float64
	GravityY       float64
	BallElasticity float64
	RailElasticity float64
	Friction       float64
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	defaults := game.DefaultSceneParams()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		Port:           getEnv("APP_PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),

		RedisURL:           getEnv("REDIS_URL", ""),
		SnapshotTTLSeconds: getEnvInt("SNAPSHOT_TTL_SECONDS", 60),

		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrateOnStart: getEnv("MIGRATE_ON_START", "false") == "true",
		MigrationsURL:  getEnv("MIGRATIONS_URL", "file://migrations"),

		TickRate:      getEnvInt("TICK_RATE", 60),
		SnapshotEvery: getEnvInt("SNAPSHOT_EVERY", 2),

		SceneFile: getEnv("SCENE_FILE", ""),
		Scene: game.SceneParams{
			HalfWidth:     getEnvFloat("TABLE_HALF_WIDTH", defaults.HalfWidth),
			HalfHeight:    getEnvFloat("TABLE_HALF_HEIGHT", defaults.HalfHeight),
			BallRadius:    getEnvFloat("BALL_RADIUS", defaults.BallRadius),
			RailThickness: getEnvFloat("RAIL_THICKNESS", defaults.RailThickness),
		},

		GravityX:       getEnvFloat("GRAVITY_X", 0),
		GravityY:       getEnvFloat("GRAVITY_Y", -9.81),
		BallElasticity: getEnvFloat("BALL_ELASTICITY", 0.95),
		RailElasticity: getEnvFloat("RAIL_ELASTICITY", 1),
		Friction:       getEnvFloat("FRICTION", 0.1),
	}
}

// sceneFile is the YAML layout of SCENE_FILE. Missing keys keep the values
// already in Config.
type sceneFile struct {
	Table   *game.SceneParams `yaml:"table"`
	Gravity *game.Vec2        `yaml:"gravity"`
	Physics *struct {
		BallElasticity *float64 `yaml:"ball_elasticity"`
		RailElasticity *float64 `yaml:"rail_elasticity"`
		Friction       *float64 `yaml:"friction"`
	} `yaml:"physics"`
}

// ApplySceneFile overlays the YAML scene file at path onto the config.
func (c *Config) ApplySceneFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scene file: %w", err)
	}

	var sf sceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	if sf.Table != nil {
		if sf.Table.HalfWidth > 0 {
			c.Scene.HalfWidth = sf.Table.HalfWidth
		}
		if sf.Table.HalfHeight > 0 {
			c.Scene.HalfHeight = sf.Table.HalfHeight
		}
		if sf.Table.BallRadius > 0 {
			c.Scene.BallRadius = sf.Table.BallRadius
		}
		if sf.Table.RailThickness > 0 {
			c.Scene.RailThickness = sf.Table.RailThickness
		}
	}
	if sf.Gravity != nil {
		c.GravityX = sf.Gravity.X
		c.GravityY = sf.Gravity.Y
	}
	if p := sf.Physics; p != nil {
		if p.BallElasticity != nil {
			c.BallElasticity = *p.BallElasticity
		}
		if p.RailElasticity != nil {
			c.RailElasticity = *p.RailElasticity
		}
		if p.Friction != nil {
			c.Friction = *p.Friction
		}
	}
	c.SceneFile = path
	return nil
}

// Validate rejects geometry and loop settings the table cannot run with.
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.SnapshotEvery <= 0 {
		return fmt.Errorf("snapshot interval must be positive, got %d", c.SnapshotEvery)
	}
	s := c.Scene
	if s.HalfWidth <= 0 || s.HalfHeight <= 0 || s.BallRadius <= 0 || s.RailThickness <= 0 {
		return fmt.Errorf("scene dimensions must be positive: %+v", s)
	}
	// The rack spans 4 spacings along x and must fit between the centre and the right rail.
	rackDepth := 4*game.RackSpacing(s.BallRadius) + s.BallRadius
	if s.HalfWidth/2+rackDepth >= s.HalfWidth-s.RailThickness/2 {
		return fmt.Errorf("table half width %.1f too small for a rack of radius %.1f", s.HalfWidth, s.BallRadius)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
