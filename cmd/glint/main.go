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

	"github.com/glintlog/glint"
	"github.com/glintlog/glint/internal/config"
	"github.com/glintlog/glint/internal/replay"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override glint config path (optional)")
	replayPath := flag.String("replay", "", "re-render the tail of an existing log file")
	replayLines := flag.Int("lines", 200, "lines to replay from the end of the file")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "glint: %v\n", err)
		return 1
	}

	log := glint.New(glint.Options{
		MinLevel:      glint.ParseLevel(cfg.Level),
		JustifyColumn: cfg.JustifyColumn,
		NoValueLimit:  !cfg.LimitValues,
		AddSource:     cfg.AddSource,
	})

	if *replayPath != "" {
		if err := runReplay(log, *replayPath, *replayLines); err != nil {
			fmt.Fprintf(os.Stderr, "glint: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runShowcase(ctx, log); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "glint: %v\n", err)
		return 1
	}
	return 0
}

func runReplay(log *glint.Logger, path string, lines int) error {
	tail, err := replay.Read(path, lines)
	if err != nil {
		return err
	}
	for _, line := range tail {
		if err := log.Log(replay.Parse(line)); err != nil {
			return err
		}
	}
	return nil
}

// runShowcase walks through the renderer's surface: levels, fields,
// repeat ceilings, a sticky status line, and two overlapping bars.
func runShowcase(ctx context.Context, log *glint.Logger) error {
	log.Info("starting showcase")
	log.Debug("verbose details enabled", glint.F("pid", os.Getpid()))
	log.Warn("disk space below threshold", glint.F("free_mb", 412))
	log.Error("downstream unreachable",
		glint.F("err", fmt.Errorf("dial backend: %w", errors.New("connection refused"))),
		glint.F("attempts", []int{1, 2, 3, 5, 8, 13, 21, 34, 55, 89}),
	)

	for i := 0; i < 6; i++ {
		log.Log(glint.Event{
			Level:   glint.LevelInfo,
			ID:      "repeat-demo",
			Message: "this line is limited to three repeats",
			Limit:   3,
		})
	}

	log.Status("phase", "warming up")
	ticker := time.NewTicker(120 * time.Millisecond)
	defer ticker.Stop()
	for step := 0; step <= 20; step++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		log.Progress("copy", "Copying payload", float64(step)/20)
		if step >= 5 {
			log.Progress("verify", "Verifying", float64(step-5)/15)
		}
		if step == 10 {
			log.Status("phase", "halfway there")
		}
	}
	log.ProgressDone("copy", "Copying payload")
	log.ProgressDone("verify", "Verifying")
	log.StatusDone("phase", "showcase complete")
	return nil
}
