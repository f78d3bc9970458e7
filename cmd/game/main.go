package main

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/starship/internal/application/game"
	"github.com/younwookim/starship/internal/application/scene"
	"github.com/younwookim/starship/internal/application/scene/menu"
	"github.com/younwookim/starship/internal/application/system"
	"github.com/younwookim/starship/internal/infrastructure/audio"
	"github.com/younwookim/starship/internal/infrastructure/config"
	"github.com/younwookim/starship/internal/infrastructure/render"
)

func main() {
	loader := config.Default()
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	display := cfg.Physics.Display
	env := &scene.Env{
		Config:   cfg,
		Input:    system.NewKeyboardInput(),
		Renderer: render.New(display.ScreenWidth, display.ScreenHeight, display.Framerate, display.Title, rand.New(rand.NewSource(time.Now().UnixNano()))),
		Audio:    audio.New(config.GetEnv("STARSHIP_MUTE", "") != ""),
		Seed:     func() int64 { return time.Now().UnixNano() },
	}
	env.NewMenu = func() scene.Scene { return menu.New(env) }

	g := game.New(env.NewMenu(), display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("Bye (high score: %d)", env.HighScore)
}
