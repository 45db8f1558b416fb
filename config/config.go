package config

// PlayerConfig contains the player's base stats. Speeds are pixels per tick,
// durations are seconds.
type PlayerConfig struct {
	// Movement
	MoveSpeed         float64 `yaml:"moveSpeed"`
	JumpSpeed         float64 `yaml:"jumpSpeed"`
	Gravity           float64 `yaml:"gravity"`
	MaxFallSpeed      float64 `yaml:"maxFallSpeed"`
	CoyoteTime        float64 `yaml:"coyoteTime"`
	JumpCutMultiplier float64 `yaml:"jumpCutMultiplier"` // applied to upward speed when jump is released early

	// Resources
	MaxHealth     int     `yaml:"maxHealth"`
	MaxPlungers   int     `yaml:"maxPlungers"`
	RetrieveRange float64 `yaml:"retrieveRange"`

	// Damage intake
	InvincibilityDuration float64 `yaml:"invincibilityDuration"`
	KnockbackForce        float64 `yaml:"knockbackForce"`
	KnockbackDuration     float64 `yaml:"knockbackDuration"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// UpgradeConfig holds additive bonuses applied on top of PlayerConfig.
type UpgradeConfig struct {
	SpeedBonus   float64 `yaml:"speedBonus"`
	JumpBonus    float64 `yaml:"jumpBonus"`
	HealthBonus  int     `yaml:"healthBonus"`
	PlungerBonus int     `yaml:"plungerBonus"`
}

// PlungerConfig contains projectile tuning.
type PlungerConfig struct {
	Speed             float64 `yaml:"speed"`
	Gravity           float64 `yaml:"gravity"`
	HitRadius         float64 `yaml:"hitRadius"`
	Size              float64 `yaml:"size"`
	SpawnOffset       float64 `yaml:"spawnOffset"`       // distance from the player's center along the aim
	ViewportMargin    float64 `yaml:"viewportMargin"`    // fraction of the viewport added on each side
	MaxFlightDistance float64 `yaml:"maxFlightDistance"` // used when no camera is available
}

// EnemyTypeConfig contains configuration for one enemy behaviour.
type EnemyTypeConfig struct {
	Name          string  `yaml:"name"`
	MaxHealth     int     `yaml:"maxHealth"`
	Points        int     `yaml:"points"`
	ContactDamage int     `yaml:"contactDamage"`
	Gravity       float64 `yaml:"gravity"`

	// Patrol
	PatrolSpeed       float64 `yaml:"patrolSpeed"`
	EdgeProbeDistance float64 `yaml:"edgeProbeDistance"`

	// Oscillate
	MoveRange   float64 `yaml:"moveRange"`
	LegDuration float64 `yaml:"legDuration"` // seconds to travel from one end of the range to the other

	// Shooter
	DetectionRadius  float64 `yaml:"detectionRadius"`
	TimeBetweenShots float64 `yaml:"timeBetweenShots"`
	ShotSpeed        float64 `yaml:"shotSpeed"`
	ShotLifetime     float64 `yaml:"shotLifetime"`
	ShotDamage       int     `yaml:"shotDamage"`
	ShotSize         float64 `yaml:"shotSize"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// EnemyConfig groups the per-behaviour enemy types.
type EnemyConfig struct {
	Patrol    EnemyTypeConfig `yaml:"patrol"`
	Oscillate EnemyTypeConfig `yaml:"oscillate"`
	Shooter   EnemyTypeConfig `yaml:"shooter"`
}

// Type returns the configuration for a behaviour kind as written in level files.
func (e *EnemyConfig) Type(kind string) (*EnemyTypeConfig, bool) {
	switch kind {
	case KindPatrol:
		return &e.Patrol, true
	case KindOscillate:
		return &e.Oscillate, true
	case KindShooter:
		return &e.Shooter, true
	}
	return nil, false
}

// Enemy kinds used by level files.
const (
	KindPatrol    = "patrol"
	KindOscillate = "oscillate"
	KindShooter   = "shooter"
)

// ProximityConfig controls spatial query ordering.
type ProximityConfig struct {
	// LegacyOrder returns candidates in raw spatial-index order instead of nearest-first.
	LegacyOrder bool `yaml:"legacyOrder"`
	CellSize    int  `yaml:"cellSize"`
}

// CameraConfig contains camera follow settings.
type CameraConfig struct {
	FollowLerp float64 `yaml:"followLerp"`
}

// DebugConfig contains debug options.
type DebugConfig struct {
	TraceTransitions bool `yaml:"traceTransitions"`
	DrawHitboxes     bool `yaml:"drawHitboxes"`
}

// Config holds general game configuration
type Config struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tickRate"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Upgrades UpgradeConfig
var Plunger PlungerConfig
var Enemy EnemyConfig
var Proximity ProximityConfig
var Camera CameraConfig
var Debug DebugConfig

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// TickSeconds is the simulated time of one update.
func TickSeconds() float64 {
	if C == nil || C.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(C.TickRate)
}

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	Player = PlayerConfig{
		// Movement
		MoveSpeed:         3.0,
		JumpSpeed:         9.0,
		Gravity:           0.5,
		MaxFallSpeed:      10.0,
		CoyoteTime:        0.2,
		JumpCutMultiplier: 0.5,

		// Resources
		MaxHealth:     3,
		MaxPlungers:   1,
		RetrieveRange: 64.0,

		// Damage intake
		InvincibilityDuration: 1.0,
		KnockbackForce:        6.0,
		KnockbackDuration:     0.2,

		// Dimensions
		CollisionWidth:  16,
		CollisionHeight: 24,
	}

	Upgrades = UpgradeConfig{}

	Plunger = PlungerConfig{
		Speed:             8.0,
		Gravity:           0.15,
		HitRadius:         16.0,
		Size:              8.0,
		SpawnOffset:       12.0,
		ViewportMargin:    0.1,
		MaxFlightDistance: 1200.0,
	}

	Enemy = EnemyConfig{
		Patrol: EnemyTypeConfig{
			Name:              "Goomba",
			MaxHealth:         3,
			Points:            10,
			ContactDamage:     1,
			Gravity:           0.5,
			PatrolSpeed:       1.0,
			EdgeProbeDistance: 8.0,
			CollisionWidth:    16,
			CollisionHeight:   16,
		},
		Oscillate: EnemyTypeConfig{
			Name:            "Fly",
			MaxHealth:       3,
			Points:          10,
			ContactDamage:   1,
			MoveRange:       64.0,
			LegDuration:     1.5,
			CollisionWidth:  16,
			CollisionHeight: 12,
		},
		Shooter: EnemyTypeConfig{
			Name:             "Turret",
			MaxHealth:        3,
			Points:           10,
			Gravity:          0.5,
			DetectionRadius:  160.0,
			TimeBetweenShots: 2.0,
			ShotSpeed:        4.0,
			ShotLifetime:     5.0,
			ShotDamage:       1,
			ShotSize:         6.0,
			CollisionWidth:   16,
			CollisionHeight:  16,
		},
	}

	Proximity = ProximityConfig{
		LegacyOrder: false,
		CellSize:    8,
	}

	Camera = CameraConfig{
		FollowLerp: 0.15,
	}

	Debug = DebugConfig{}
}
