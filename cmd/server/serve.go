package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/playmatatu/billiards/internal/api"
	"github.com/playmatatu/billiards/internal/config"
	"github.com/playmatatu/billiards/internal/database"
	"github.com/playmatatu/billiards/internal/engine"
	"github.com/playmatatu/billiards/internal/game"
	"github.com/playmatatu/billiards/internal/migrations"
	"github.com/playmatatu/billiards/internal/physics"
	"github.com/playmatatu/billiards/internal/recorder"
	"github.com/playmatatu/billiards/internal/redis"
	"github.com/playmatatu/billiards/internal/ws"
)

func serveCmd() *cobra.Command {
	var (
		port      string
		sceneFile string
		tickRate  int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the table simulation and the viewer server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(sceneFile)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			if tickRate > 0 {
				cfg.TickRate = tickRate
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "HTTP port (overrides APP_PORT)")
	cmd.Flags().StringVar(&sceneFile, "scene", "", "YAML scene file (overrides SCENE_FILE)")
	cmd.Flags().IntVar(&tickRate, "tick-rate", 0, "Simulation ticks per second (overrides TICK_RATE)")
	return cmd
}

// loadConfig reads the environment, overlays the scene file and sets up
// logging.
func loadConfig(sceneFile string) (*config.Config, error) {
	cfg := config.Load()
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := setupLogging(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	if sceneFile == "" {
		sceneFile = cfg.SceneFile
	}
	if sceneFile != "" {
		if err := cfg.ApplySceneFile(sceneFile); err != nil {
			return nil, err
		}
		logrus.Infof("[CONFIG] Scene loaded from %s", sceneFile)
	}
	return cfg, nil
}

func serve(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	phys := physics.NewWorld(physics.Options{
		Gravity:        game.NewVec2(cfg.GravityX, cfg.GravityY),
		BallElasticity: cfg.BallElasticity,
		RailElasticity: cfg.RailElasticity,
		Friction:       cfg.Friction,
	})
	runner := engine.NewRunner(engine.Options{
		TickRate:      cfg.TickRate,
		SnapshotEvery: cfg.SnapshotEvery,
		Scene:         cfg.Scene,
	}, phys)

	hub := ws.NewHub(runner)
	runner.AddPublisher(hub)

	// Initialize Redis mirror (optional)
	rdb, err := redis.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
		mirror := ws.NewMirror(rdb, time.Duration(cfg.SnapshotTTLSeconds)*time.Second)
		mirror.Start(ctx)
		runner.AddPublisher(mirror)
		ws.StartInputSubscriber(ctx, rdb, runner)
	} else {
		logrus.Info("[REDIS] REDIS_URL not set; snapshot mirror disabled")
	}

	// Initialize control event recorder (optional)
	deps := api.Deps{Table: runner, Hub: hub}
	var rec *recorder.Recorder
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
		if cfg.MigrateOnStart {
			logrus.Info("[MIGRATE] Running DB migrations on startup...")
			if err := migrations.RunMigrations(cfg.DatabaseURL, cfg.MigrationsURL); err != nil {
				return err
			}
		}
		rec, err = recorder.New(recorder.NewPostgresStore(db), cfg.Scene, cfg.TickRate)
		if err != nil {
			return err
		}
		if err := rec.Start(ctx); err != nil {
			return err
		}
		runner.AddObserver(rec)
		deps.Sessions = rec
	} else {
		logrus.Info("[DB] DATABASE_URL not set; control events are not recorded")
	}

	runDone := make(chan struct{})
	go func() {
		runner.Run(ctx)
		close(runDone)
	}()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	api.SetupRoutes(router, deps, cfg)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("Starting billiards server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			stop()
			<-runDone
			return fmt.Errorf("failed to start server: %w", err)
		}
	}

	logrus.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Warnf("HTTP shutdown: %v", err)
	}

	<-runDone
	if rec != nil {
		if err := rec.Close(runner.Frames()); err != nil {
			logrus.Warnf("[DB] %v", err)
		}
	}
	return nil
}
