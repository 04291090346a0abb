package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fourstack/connect4/internal/config"
	"github.com/fourstack/connect4/internal/domain"
	"github.com/fourstack/connect4/internal/engine"
	"github.com/fourstack/connect4/internal/selfplay"
	"github.com/fourstack/connect4/internal/tui"
)

func main() {
	mode := flag.String("mode", "selfplay", "selfplay (watch in the terminal), play (human vs engine) or batch (headless)")
	games := flag.Int("games", 1, "number of games in batch mode")
	depth := flag.Int("depth", 0, "search depth override (0 = use SEARCH_DEPTH)")
	quiet := flag.Bool("quiet", false, "batch mode: log per-game results only, no per-move lines")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()
	if *depth > 0 {
		cfg.SearchDepth = *depth
	}

	switch *mode {
	case "batch":
		runBatch(cfg, *games, *quiet)
	case "play":
		if err := tui.Run(tui.ModeHuman, engine.New(cfg.EngineConfig())); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
	case "selfplay":
		if err := tui.Run(tui.ModeSelfPlay, engine.New(cfg.EngineConfig())); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
	default:
		log.Fatalf("Unknown mode %q (want selfplay, play or batch)", *mode)
	}
}

func runBatch(cfg *config.Config, games int, quiet bool) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Running %d self-play game(s) at depth %d", games, cfg.SearchDepth)

	var redWins, blackWins, draws int
	for i := 0; i < games; i++ {
		runner := selfplay.NewRunner(
			engine.New(cfg.EngineConfig()),
			engine.New(cfg.EngineConfig()),
		)
		if !quiet {
			runner.OnMove = func(m selfplay.MoveRecord) {
				log.Printf("  ply %2d: %s drops in column %d (score %d, depth %d, %s)",
					m.Ply, m.Player, m.Column+1, m.Score, m.Depth, m.Elapsed.Round(time.Millisecond))
			}
		}

		report, err := runner.Play(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Interrupted")
				break
			}
			log.Fatalf("Game %d failed: %v", i+1, err)
		}

		switch report.Winner {
		case domain.Red:
			redWins++
		case domain.Black:
			blackWins++
		default:
			draws++
		}
		log.Printf("Game %d [%s]: %s after %d plies in %s, moves %v",
			i+1, report.GameID, outcome(report), report.Plies,
			report.Duration.Round(time.Millisecond), report.Moves)
	}

	log.Printf("Summary: Red %d, Black %d, draws %d", redWins, blackWins, draws)
}

func outcome(r *selfplay.Report) string {
	if r.Status == domain.StatusDraw {
		return "draw"
	}
	if r.Winner == domain.Red {
		return "Red wins"
	}
	return "Black wins"
}
