package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asgmods/grapplehook/assets"
	"github.com/asgmods/grapplehook/components"
	cfg "github.com/asgmods/grapplehook/config"
	"github.com/asgmods/grapplehook/network"
	"github.com/asgmods/grapplehook/shared/collision"
	"github.com/asgmods/grapplehook/shared/protocol"
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/asgmods/grapplehook/systems"
	"github.com/asgmods/grapplehook/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"golang.org/x/sync/errgroup"
)

const clientVersion = "1"

func main() {
	envFile := flag.String("env", ".env", "Optional .env file")
	addr := flag.String("addr", "", "Server address host:port (defaults to localhost and GRAPPLE_PORT)")
	name := flag.String("name", "bot", "Player name")
	style := flag.String("style", "swing", "Bot routine: swing or climb")
	logLevel := flag.String("loglevel", "", "Log level (overrides LOG_LEVEL)")
	flag.Parse()

	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}

	if err := cfg.Load(*envFile); err != nil {
		lg.WithError(err).Fatal("failed to load config")
	}
	if *logLevel != "" {
		cfg.Server.LogLevel = *logLevel
	}
	if lvl, err := logrus.ParseLevel(cfg.Server.LogLevel); err == nil {
		lg.Level = lvl
	}
	if *addr == "" {
		*addr = fmt.Sprintf("localhost:%d", cfg.Server.Port)
	}

	botStyle := cfg.BotStyleSwing
	switch *style {
	case "swing":
	case "climb":
		botStyle = cfg.BotStyleClimb
	default:
		lg.WithField("style", *style).Fatal("unknown bot style")
	}

	if err := protocol.RegisterComponents(); err != nil {
		lg.WithError(err).Fatal("failed to register components")
	}

	client := network.NewClient(lg.WithField("component", "network"))
	client.Connect(*addr, clientVersion, *name)
	defer client.Disconnect()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := waitForJoin(ctx, client); err != nil {
			return err
		}
		level, err := collision.Load(assets.Levels(), assets.LevelsDir, client.Level(), cfg.World.UnitScale, cfg.World.CellSize)
		if err != nil {
			// Aim reachability is cosmetic; play on without it.
			lg.WithError(err).Warn("level not available locally")
			level = nil
		}
		b := &bot{
			client: client,
			world:  donburi.NewWorld(),
			style:  botStyle,
			level:  level,
			log:    lg.WithField("player", *name),
		}
		return b.run(ctx)
	})

	lg.WithFields(logrus.Fields{"addr": *addr, "name": *name, "style": *style}).Info("starting grapplehook bot")
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		lg.WithError(err).Error("bot stopped")
		os.Exit(1)
	}
}

func waitForJoin(ctx context.Context, client *network.Client) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		switch client.State() {
		case network.StateJoinedGame:
			return nil
		case network.StateError:
			return client.LastError()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

type bot struct {
	client *network.Client
	world  donburi.World
	style  cfg.BotStyle
	level  *collision.Level
	log    logrus.FieldLogger
	input  systems.InputSender
}

func (b *bot) run(ctx context.Context) error {
	b.input = systems.InputSender{Send: b.client.SendMessage, Log: b.log}
	opts := systems.ToolOptions{
		Link:     b.client,
		Settings: systems.SessionSettings{World: b.world, Fallback: b.client},
		Tuning:   cfg.Tether,
		Logger:   b.log,
		OnEvent:  systems.LocalEventLogger(b.log),
	}
	if b.level != nil {
		opts.Collision = b.level
	}

	dt := 1 / float64(cfg.Bot.TickRate)
	ticker := time.NewTicker(time.Second / time.Duration(cfg.Bot.TickRate))
	defer ticker.Stop()
	defer systems.UnequipLocal(b.world)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if st := b.client.State(); st != network.StateJoinedGame {
				return fmt.Errorf("connection lost: %s", st)
			}
			b.tick(now, dt, opts)
		}
	}
}

func (b *bot) tick(now time.Time, dt float64, opts systems.ToolOptions) {
	localID := b.client.NetworkID()
	if snap := b.client.LatestSnapshot(); snap != nil {
		systems.ApplySnapshot(b.world, *snap, localID)
	}
	systems.ApplyVelocityCorrections(b.world, b.client.DrainCorrections())
	systems.MirrorTether(b.world)

	if tool := systems.EquipLocal(b.world, opts); tool != nil {
		b.ensureBot()
	}

	systems.UpdateBots(b.world)
	systems.UpdateGrappleInput(b.world)
	systems.UpdateTool(b.world, dt)
	b.input.Update(b.world, now)
	systems.LogTetherEvents(b.log, localID, b.client.DrainTetherEvents())
}

func (b *bot) ensureBot() {
	entry, ok := tags.Local.First(b.world)
	if !ok || entry.HasComponent(components.Bot) {
		return
	}
	entry.AddComponent(components.Bot)
	components.Bot.SetValue(entry, components.BotData{Style: b.style})
	b.log.WithField("style", b.style).Info("bot attached")
}

var _ tether.CollisionQuery = (*collision.Level)(nil)
