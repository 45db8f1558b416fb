package main

import (
	"flag"
	"image"
	"image/color"
	"log"

	"github.com/automoto/plunger/assets"
	"github.com/automoto/plunger/config"
	"github.com/automoto/plunger/game"
	"github.com/automoto/plunger/hud"
	"github.com/automoto/plunger/input/device"
	"github.com/automoto/plunger/render"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	level  string
	game   *game.Game
	input  *device.Device
	hud    *render.HUD
}

func NewGame(level string) (*Game, error) {
	g := &Game{
		level: level,
		input: device.New(device.DefaultBindings()),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart builds a fresh world for the current level.
func (g *Game) restart() error {
	level, err := assets.LoadLevel(g.level)
	if err != nil {
		return err
	}
	run, err := game.New(level)
	if err != nil {
		return err
	}
	g.game = run
	g.hud = &render.HUD{}
	hud.Bind(run.World(), g.hud)
	return nil
}

func (g *Game) Update() error {
	frame := g.input.Next()
	if g.game.Over() {
		// Any press after death starts a new run
		if frame.JumpPressed || frame.FirePressed {
			return g.restart()
		}
		return nil
	}
	g.game.Update(frame)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	render.DrawWorld(g.game.World(), screen, config.Debug.DrawHitboxes)
	g.hud.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "level1", "embedded level to play")
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Plunger")
	ebiten.SetTPS(config.C.TickRate)

	g, err := NewGame(*levelName)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
