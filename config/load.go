package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// document mirrors the YAML override file. Sections left out of the file
// keep their current values.
type document struct {
	Game      Config          `yaml:"game"`
	Player    PlayerConfig    `yaml:"player"`
	Upgrades  UpgradeConfig   `yaml:"upgrades"`
	Plunger   PlungerConfig   `yaml:"plunger"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Proximity ProximityConfig `yaml:"proximity"`
	Camera    CameraConfig    `yaml:"camera"`
	Debug     DebugConfig     `yaml:"debug"`
}

// LoadFile applies the YAML overrides in path on top of the current values.
func LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := Load(f); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// Load applies YAML overrides read from r. Nothing is changed when decoding
// or validation fails.
func Load(r io.Reader) error {
	doc := document{
		Game:      *C,
		Player:    Player,
		Upgrades:  Upgrades,
		Plunger:   Plunger,
		Enemy:     Enemy,
		Proximity: Proximity,
		Camera:    Camera,
		Debug:     Debug,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	if err := doc.validate(); err != nil {
		return err
	}

	game := doc.Game
	C = &game
	Player = doc.Player
	Upgrades = doc.Upgrades
	Plunger = doc.Plunger
	Enemy = doc.Enemy
	Proximity = doc.Proximity
	Camera = doc.Camera
	Debug = doc.Debug
	return nil
}

// Validate checks the current configuration.
func Validate() error {
	doc := document{
		Game:      *C,
		Player:    Player,
		Upgrades:  Upgrades,
		Plunger:   Plunger,
		Enemy:     Enemy,
		Proximity: Proximity,
	}
	return doc.validate()
}

func (d *document) validate() error {
	switch {
	case d.Game.Width <= 0 || d.Game.Height <= 0:
		return fmt.Errorf("%w: game size %dx%d", ErrInvalid, d.Game.Width, d.Game.Height)
	case d.Game.TickRate <= 0:
		return fmt.Errorf("%w: tickRate %d", ErrInvalid, d.Game.TickRate)
	case d.Player.MaxHealth+d.Upgrades.HealthBonus <= 0:
		return fmt.Errorf("%w: player maxHealth must be positive", ErrInvalid)
	case d.Player.MaxPlungers+d.Upgrades.PlungerBonus <= 0:
		return fmt.Errorf("%w: player maxPlungers must be positive", ErrInvalid)
	case d.Player.InvincibilityDuration < 0 || d.Player.KnockbackDuration < 0 || d.Player.CoyoteTime < 0:
		return fmt.Errorf("%w: player durations must not be negative", ErrInvalid)
	case d.Player.RetrieveRange < 0:
		return fmt.Errorf("%w: player retrieveRange %v", ErrInvalid, d.Player.RetrieveRange)
	case d.Plunger.HitRadius <= 0:
		return fmt.Errorf("%w: plunger hitRadius %v", ErrInvalid, d.Plunger.HitRadius)
	case d.Plunger.ViewportMargin < 0:
		return fmt.Errorf("%w: plunger viewportMargin %v", ErrInvalid, d.Plunger.ViewportMargin)
	case d.Proximity.CellSize <= 0:
		return fmt.Errorf("%w: proximity cellSize %d", ErrInvalid, d.Proximity.CellSize)
	}

	for kind, t := range map[string]EnemyTypeConfig{
		KindPatrol:    d.Enemy.Patrol,
		KindOscillate: d.Enemy.Oscillate,
		KindShooter:   d.Enemy.Shooter,
	} {
		if t.MaxHealth <= 0 {
			return fmt.Errorf("%w: enemy %s maxHealth %d", ErrInvalid, kind, t.MaxHealth)
		}
		if t.Points < 0 {
			return fmt.Errorf("%w: enemy %s points %d", ErrInvalid, kind, t.Points)
		}
	}
	return nil
}
