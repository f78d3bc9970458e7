package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/younwookim/starship/internal/application/launcher"
	"github.com/younwookim/starship/internal/infrastructure/config"
	"github.com/younwookim/starship/internal/infrastructure/sound"
	"github.com/younwookim/starship/internal/infrastructure/terminal"
)

func main() {
	cfg, err := config.Default().LoadLaunch()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start the rumble while stderr still reaches the terminal
	var engine launcher.Engine = launcher.Idle{}
	if cfg.Rumble.Enabled {
		engine = launcher.Ignite(sound.NewRumble(cfg.Rumble))
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}
	screen.WatchKeys(ctx, cancel)

	runner := launcher.New(cfg, rand.New(rand.NewSource(time.Now().UnixNano())), screen, engine)
	runner.MaxFrames = config.GetEnvInt("LAUNCH_FRAMES", 0)

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Launch sequence failed: %v", err)
	}
	if err := terminal.WriteFarewell(os.Stdout); err != nil {
		log.Printf("Failed to write farewell: %v", err)
	}
	log.Printf("Launch sequence ended")
}
