package config

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig contains world physics values. They are read once when the
// collision world is built and are fixed for its lifetime.
type PhysicsConfig struct {
	GravityX     float64 `yaml:"gravityX"`
	GravityY     float64 `yaml:"gravityY"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"` // 0 = unlimited
}

// ZombieConfig contains the playable character's values
type ZombieConfig struct {
	// Spawn is used when the level has no "zombie" spawn point
	SpawnX float64 `yaml:"spawnX"`
	SpawnY float64 `yaml:"spawnY"`

	// Collision box half-size in pixels
	HalfWidth  float64 `yaml:"halfWidth"`
	HalfHeight float64 `yaml:"halfHeight"`

	// Movement (pixels per second)
	MaxWalkSpeed float64 `yaml:"maxWalkSpeed"`
	JumpImpulse  float64 `yaml:"jumpImpulse"`

	// Attack length in seconds
	AttackDuration float64 `yaml:"attackDuration"`

	// Fade applied to the sprite after death
	DeathFadeSeconds float64 `yaml:"deathFadeSeconds"`
	DeathFadeAlpha   float64 `yaml:"deathFadeAlpha"`
}

// ProjectileConfig contains the fireball's values
type ProjectileConfig struct {
	StartX      float64 `yaml:"startX"`
	StartY      float64 `yaml:"startY"`
	SpeedX      float64 `yaml:"speedX"`   // pixels per second
	RestartX    float64 `yaml:"restartX"` // x to wrap to once off the left edge
	FrameWidth  float64 `yaml:"frameWidth"`
	FrameHeight float64 `yaml:"frameHeight"`
	Scale       float64 `yaml:"scale"`
	Frames      int     `yaml:"frames"`
	FPS         float64 `yaml:"fps"`
	Lethal      bool    `yaml:"lethal"` // contact kills the zombie
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	MinZoom  float64 `yaml:"minZoom"`
	MaxZoom  float64 `yaml:"maxZoom"`
	Zoom     float64 `yaml:"zoom"`
	ZoomRate float64 `yaml:"zoomRate"` // zoom units per second
	OriginX  float64 `yaml:"originX"`
	OriginY  float64 `yaml:"originY"`
	StartX   float64 `yaml:"startX"`
	StartY   float64 `yaml:"startY"`
}

// LevelConfig selects the TMX level and its collision layer
type LevelConfig struct {
	Name  string `yaml:"name"`
	Layer string `yaml:"layer"`
}

// UIConfig contains HUD configuration
type UIConfig struct {
	HUDFontSize float64  `yaml:"hudFontSize"`
	HUDTextX    int      `yaml:"hudTextX"`
	HUDTextY    int      `yaml:"hudTextY"`
	HUDColor    [4]uint8 `yaml:"hudColor"`
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	ShowCollision bool `yaml:"showCollision"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Zombie ZombieConfig
var Projectile ProjectileConfig
var Camera CameraConfig
var Level LevelConfig
var UI UIConfig
var Debug DebugConfig

func init() {
	Reset()
}

// Reset restores every section to its default.
func Reset() {
	C = &Config{
		Width:  800,
		Height: 480,
		Title:  "Sandbox",
	}

	Physics = PhysicsConfig{
		GravityX:     0,
		GravityY:     900,
		MaxFallSpeed: 0,
	}

	Zombie = ZombieConfig{
		SpawnX:           300,
		SpawnY:           500,
		HalfWidth:        24,
		HalfHeight:       48,
		MaxWalkSpeed:     200,
		JumpImpulse:      500,
		AttackDuration:   0.6,
		DeathFadeSeconds: 1.5,
		DeathFadeAlpha:   0.35,
	}

	Projectile = ProjectileConfig{
		StartX:      850,
		StartY:      200,
		SpeedX:      -500,
		RestartX:    1900,
		FrameWidth:  512,
		FrameHeight: 197,
		Scale:       0.5,
		Frames:      6,
		FPS:         15,
		Lethal:      false,
	}

	Camera = CameraConfig{
		MinZoom:  0.5,
		MaxZoom:  2.0,
		Zoom:     0.5,
		ZoomRate: 1.0,
		OriginX:  400,
		OriginY:  240,
		StartX:   408,
		StartY:   270,
	}

	Level = LevelConfig{
		Name:  "level01",
		Layer: "Tile Layer 1",
	}

	UI = UIConfig{
		HUDFontSize: 16,
		HUDTextX:    5,
		HUDTextY:    5,
		HUDColor:    [4]uint8{128, 128, 128, 255},
	}

	Debug = DebugConfig{
		ShowCollision: false,
	}
}
