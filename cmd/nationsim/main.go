// Command nationsim runs the Statecraft grand-strategy nation simulation.
package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/talgya/statecraft/internal/api"
	"github.com/talgya/statecraft/internal/crisis"
	"github.com/talgya/statecraft/internal/engine"
	"github.com/talgya/statecraft/internal/history"
	"github.com/talgya/statecraft/internal/narrative"
	"github.com/talgya/statecraft/internal/persistence"
)

func main() {
	var (
		seed      = flag.Int64("seed", 0, "world seed (0 = random, non-reproducible)")
		dbPath    = flag.String("db", "data/statecraft.db", "sqlite database path")
		startYear = flag.Int("start", 1700, "first simulated year")
		endYear   = flag.Int("end", 1945, "stop after this year (0 = run forever)")
		port      = flag.Int("port", 8080, "HTTP API port")
		speed     = flag.Float64("speed", 1.0, "years per second")
		crisisLib = flag.String("crises", "", "optional YAML crisis library overriding the built-in one")
		fresh     = flag.Bool("fresh", false, "ignore saved runs and start a new one")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Info("Statecraft — Grand Strategy Nation Simulation")

	// ── Crisis library ────────────────────────────────────────────────
	lib := crisis.DefaultLibrary()
	if *crisisLib != "" {
		loaded, err := crisis.LoadLibrary(*crisisLib)
		if err != nil {
			slog.Error("failed to load crisis library", "path", *crisisLib, "error", err)
			os.Exit(1)
		}
		lib = loaded
		slog.Info("crisis library loaded", "path", *crisisLib, "templates", len(lib.Templates))
	}

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(*dbPath), 0755)
	db, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", *dbPath)

	// ── Load or start a run ──────────────────────────────────────────
	var runID string
	var world *engine.World

	if !*fresh {
		id, savedSeed, savedStart, err := db.LatestRun()
		switch {
		case err == nil:
			w, werr := engine.NewWorld(savedSeed, lib, history.DefaultBaselines(), savedStart)
			if werr != nil {
				slog.Error("failed to rebuild world", "error", werr)
				os.Exit(1)
			}
			states, year, lerr := db.LoadLatestYear(id)
			if errors.Is(lerr, sql.ErrNoRows) {
				// Run registered but killed before its first save;
				// fall through to a fresh start.
				slog.Warn("run has no saved years; starting fresh", "run", id)
			} else if lerr != nil {
				slog.Error("failed to load saved year", "run", id, "error", lerr)
				os.Exit(1)
			} else {
				w.Restore(year, states)
				runID, world = id, w
				slog.Info("run restored", "run", runID, "year", year, "nations", len(states))
			}
		case errors.Is(err, sql.ErrNoRows):
			// No saved run; fall through to a fresh start.
		default:
			slog.Error("failed to query saved runs", "error", err)
			os.Exit(1)
		}
	}

	if world == nil {
		w, err := engine.NewWorld(*seed, lib, history.DefaultBaselines(), *startYear)
		if err != nil {
			slog.Error("failed to build world", "error", err)
			os.Exit(1)
		}
		id, err := db.CreateRun(w.Seed, *startYear)
		if err != nil {
			slog.Error("failed to register run", "error", err)
			os.Exit(1)
		}
		runID, world = id, w
		slog.Info("new run", "run", runID, "seed", w.Seed, "start_year", *startYear,
			"nations", len(world.Nations))
	}

	// ── Narrative client ─────────────────────────────────────────────
	writer := narrative.NewClient(os.Getenv("ANTHROPIC_API_KEY"))
	if writer.Enabled() {
		slog.Info("narrative client enabled")
	} else {
		slog.Warn("ANTHROPIC_API_KEY not set — chronicles will use the plain digest fallback")
	}

	// ── Turn engine ──────────────────────────────────────────────────
	eng := engine.NewEngine()
	eng.Speed = *speed
	eng.OnYear = func() {
		results := world.StepYear()
		if err := db.SaveWorld(runID, world, results); err != nil {
			slog.Error("yearly save failed", "year", world.CurrentYear(), "error", err)
		}

		year := world.CurrentYear()
		if year%10 == 0 {
			chron, err := narrative.GenerateChronicle(writer, year, world.RecentEvents(100))
			if err == nil {
				slog.Info("decade chronicle", "year", year)
				fmt.Println(chron.Content)
			}
		}
		if *endYear > 0 && year >= *endYear {
			eng.Stop()
		}
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	adminKey := os.Getenv("STATECRAFT_ADMIN_KEY")
	if adminKey == "" {
		slog.Warn("STATECRAFT_ADMIN_KEY not set — admin POST endpoints will be disabled")
	}

	apiServer := &api.Server{
		World:    world,
		Eng:      eng,
		Writer:   writer,
		DB:       db,
		RunID:    runID,
		Port:     *port,
		AdminKey: adminKey,
	}
	apiServer.Start()

	// ── Start ─────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	fmt.Printf("\n%d great powers enter the year %d.\n", len(world.Nations), world.CurrentYear())
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", *port)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	eng.Run()

	slog.Info("simulation stopped", "year", world.CurrentYear())
}
