package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/automoto/plunger/input"
)

// Loop runs a game at a fixed tick rate on a ticker, reading one input
// frame per tick.
type Loop struct {
	game     *Game
	source   input.Source
	tickRate int
	running  bool
	stopChan chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex
}

func NewLoop(game *Game, source input.Source, tickRate int) *Loop {
	if source == nil {
		source = input.Idle{}
	}
	return &Loop{
		game:     game,
		source:   source,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until Stop is called, ctx is cancelled or the player dies.
func (l *Loop) Run(ctx context.Context) {
	l.setRunning(true)
	defer l.setRunning(false)

	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop cancelled")
			return
		case <-l.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			l.tick()
			if l.game.Over() {
				log.Printf("Game over after %.1fs", l.game.Elapsed())
				return
			}
		}
	}
}

func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *Loop) setRunning(r bool) {
	l.mu.Lock()
	l.running = r
	l.mu.Unlock()
}

func (l *Loop) tick() {
	l.game.Update(l.source.Next())
}
