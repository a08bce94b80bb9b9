package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asgmods/grapplehook/assets"
	cfg "github.com/asgmods/grapplehook/config"
	"github.com/asgmods/grapplehook/server/core"
	"github.com/asgmods/grapplehook/shared/collision"
	"github.com/asgmods/grapplehook/shared/protocol"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	envFile := flag.String("env", ".env", "Optional .env file")
	port := flag.Uint("port", 0, "Server port (overrides GRAPPLE_PORT)")
	tickRate := flag.Int("tickrate", 0, "Server tick rate (overrides GRAPPLE_TICK_RATE)")
	name := flag.String("name", "", "Server display name")
	level := flag.String("level", "", "Level name under assets/levels")
	logLevel := flag.String("loglevel", "", "Log level (overrides LOG_LEVEL)")
	flag.Parse()

	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}

	if err := cfg.Load(*envFile); err != nil {
		lg.WithError(err).Fatal("failed to load config")
	}
	// Flags beat the environment.
	if *port != 0 {
		cfg.Server.Port = int(*port)
	}
	if *tickRate > 0 {
		cfg.Server.TickRate = *tickRate
	}
	if *name != "" {
		cfg.Server.Name = *name
	}
	if *level != "" {
		cfg.Server.Level = *level
	}
	if *logLevel != "" {
		cfg.Server.LogLevel = *logLevel
	}

	lvl, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		lg.WithError(err).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	lg.Level = lvl

	if cfg.Server.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Server.SentryDSN}); err != nil {
			lg.WithError(err).Warn("sentry disabled")
		}
		defer sentry.Flush(2 * time.Second)
	}

	if cfg.Server.StatsviewAddr != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(cfg.Server.StatsviewAddr))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	if err := protocol.RegisterComponents(); err != nil {
		lg.WithError(err).Fatal("failed to register components")
	}

	levelData, err := collision.Load(assets.Levels(), assets.LevelsDir, cfg.Server.Level, cfg.World.UnitScale, cfg.World.CellSize)
	if err != nil {
		lg.WithError(err).Fatal("failed to load level")
	}
	lg.WithFields(logrus.Fields{
		"level":  levelData.Name,
		"solids": len(levelData.Solids),
		"spawns": len(levelData.SpawnPoints),
	}).Info("level loaded")

	server := core.NewServer(core.Config{
		Port:           uint(cfg.Server.Port),
		TickRate:       cfg.Server.TickRate,
		Name:           cfg.Server.Name,
		MaxPlayers:     cfg.Server.MaxPlayers,
		CommandQueue:   cfg.Server.CommandQueue,
		MaxSourceDrift: cfg.Server.MaxSourceDrift,
		Tuning:         cfg.Tether,
		Settings:       cfg.SessionSettings{},
		Physics:        cfg.Physics,
	}, levelData, lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Loop().Run(ctx) })
	g.Go(func() error { return server.Start(ctx) })
	g.Go(func() error {
		<-ctx.Done()
		lg.Info("shutting down server")
		server.Stop()
		return nil
	})

	lg.WithFields(logrus.Fields{
		"name":     cfg.Server.Name,
		"port":     cfg.Server.Port,
		"tickrate": cfg.Server.TickRate,
	}).Info("starting grapplehook server")
	if err := g.Wait(); err != nil {
		lg.WithError(err).Error("server error")
		os.Exit(1)
	}
}
