// Command simulate runs a level headless, driven by a scripted input file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/automoto/plunger/assets"
	"github.com/automoto/plunger/config"
	"github.com/automoto/plunger/game"
	"github.com/automoto/plunger/hud"
	"github.com/automoto/plunger/input"
	"github.com/automoto/plunger/shared/leveldata"
)

func main() {
	levelArg := flag.String("level", "level1", "embedded level name or path to a .tmx file")
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	scriptPath := flag.String("script", "", "YAML input script (idle when empty)")
	ticks := flag.Int("ticks", 0, "ticks to run (0 = script length, or until the player dies)")
	realtime := flag.Bool("realtime", false, "run at the configured tick rate instead of as fast as possible")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	level, err := loadLevel(*levelArg)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	var source input.Source = input.Idle{}
	limit := *ticks
	if *scriptPath != "" {
		script, err := input.LoadScript(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
		source = script
		if limit == 0 {
			limit = script.Len()
		}
	}

	run, err := game.New(level)
	if err != nil {
		log.Fatalf("Failed to build level: %v", err)
	}
	state := &hud.State{}
	hud.Bind(run.World(), state)

	if *realtime {
		runRealtime(run, source, limit)
	} else {
		for limit == 0 || run.Ticks() < limit {
			if run.Over() {
				break
			}
			run.Update(source.Next())
		}
	}

	fmt.Printf("level=%s ticks=%d time=%.2fs health=%d/%d plungers=%d/%d points=%d enemies=%d dead=%t\n",
		level.Name, run.Ticks(), state.Seconds, state.Health, state.MaxHealth,
		state.Plungers, state.MaxPlungers, state.Points, len(run.Enemies()), run.Over())
}

func runRealtime(run *game.Game, source input.Source, limit int) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if limit > 0 {
		source = &limited{Source: source, left: limit, done: cancel}
	}
	game.NewLoop(run, source, config.C.TickRate).Run(ctx)
}

// limited cancels the run once it has produced its frames.
type limited struct {
	input.Source
	left int
	done func()
}

func (l *limited) Next() input.Frame {
	l.left--
	if l.left <= 0 {
		l.done()
	}
	return l.Source.Next()
}

func loadLevel(arg string) (*leveldata.Level, error) {
	if !strings.HasSuffix(arg, ".tmx") {
		return assets.LoadLevel(arg)
	}
	return leveldata.Load(os.DirFS(filepath.Dir(arg)), filepath.Base(arg))
}
