// Command starfront runs a turn-based space strategy game with
// AI-controlled players.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/starfront-game/starfront/internal/api"
	"github.com/starfront-game/starfront/internal/engine"
	"github.com/starfront-game/starfront/internal/galaxy"
	"github.com/starfront-game/starfront/internal/game"
	"github.com/starfront-game/starfront/internal/persistence"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("STARFRONT — turn-based space strategy simulation")

	dbPath := "data/starfront.db"
	apiPort := 8080
	adminKey := os.Getenv("STARFRONT_ADMIN_KEY")

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll("data", 0755)
	db, err := persistence.Open(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", dbPath)

	// ── Galaxy ────────────────────────────────────────────────────────
	cfg := galaxy.DefaultGenConfig()
	cfg.Seed = 42
	stars := galaxy.Generate(cfg)
	slog.Info("galaxy generated", "stars", len(stars), "radius", cfg.Radius)

	// ── Game setup ────────────────────────────────────────────────────
	settings := game.DefaultSettings()
	creator := uuid.New()
	g := game.NewGame("Frontier Alpha", creator, settings, stars)

	aliases := []string{"Meridian", "Vanguard", "Corsair", "Halcyon"}
	players := make([]*game.Player, 0, len(aliases))
	for i, alias := range aliases {
		p := &game.Player{ID: uuid.New(), Alias: alias}
		if i == 0 {
			p.ID = creator
		}
		p.Research.Hyperspace = i % 3
		if err := g.Join(p); err != nil {
			slog.Error("player failed to join", "alias", alias, "error", err)
			os.Exit(1)
		}
		players = append(players, p)
	}
	slog.Info("game started", "game", g.Name, "players", len(g.Players), "state", g.State)

	// ── Simulation & engine ───────────────────────────────────────────
	sim := engine.NewSimulation(g)
	eng := engine.NewEngine(settings.TicksPerCycle)
	eng.OnTick = sim.TickGame
	eng.OnCycleStart = sim.CycleStart
	eng.OnCycleEnd = func(tick uint64) {
		sim.CycleEnd(tick)
		if err := db.SaveGame(g); err != nil {
			slog.Warn("cycle snapshot failed", "error", err)
		}
	}

	// Hand the last two seats to the computer; each activation runs one
	// planning pass.
	for _, p := range players[2:] {
		if err := sim.SetAIControlled(p.ID); err != nil {
			slog.Warn("AI activation failed", "player", p.Alias, "error", err)
		}
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	server := &api.Server{Sim: sim, Eng: eng, DB: db, Port: apiPort, AdminKey: adminKey}
	server.Start()

	// ── Shutdown handling ─────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("shutdown signal received")
		eng.Stop()
	}()

	eng.Run()

	// Final snapshot and summary.
	if err := db.SaveGame(g); err != nil {
		slog.Error("final snapshot failed", "error", err)
	}
	if err := db.SaveEvents(g.ID, sim.Events); err != nil {
		slog.Error("event save failed", "error", err)
	}

	totalCredits := int64(0)
	for _, p := range g.Players {
		totalCredits += p.Credits
	}
	slog.Info("simulation ended",
		"tick", g.Tick,
		"cycle", engine.CycleNumber(g.Tick, settings.TicksPerCycle),
		"carriers", len(g.Carriers),
		"total_credits", humanize.Comma(totalCredits),
		"events", fmt.Sprintf("%d recorded", len(sim.Events)),
	)
}
