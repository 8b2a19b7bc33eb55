package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of an override file. Sections and fields that
// are absent keep their current value.
type File struct {
	Window     Config           `yaml:"window"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Zombie     ZombieConfig     `yaml:"zombie"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Camera     CameraConfig     `yaml:"camera"`
	Level      LevelConfig      `yaml:"level"`
	UI         UIConfig         `yaml:"ui"`
	Debug      DebugConfig      `yaml:"debug"`
}

// Load overlays the YAML file at path onto the current configuration. The
// globals are left untouched if the file cannot be read or parsed.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	f := File{
		Window:     *C,
		Physics:    Physics,
		Zombie:     Zombie,
		Projectile: Projectile,
		Camera:     Camera,
		Level:      Level,
		UI:         UI,
		Debug:      Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	window := f.Window
	C = &window
	Physics = f.Physics
	Zombie = f.Zombie
	Projectile = f.Projectile
	Camera = f.Camera
	Level = f.Level
	UI = f.UI
	Debug = f.Debug
	return nil
}

func (f *File) validate() error {
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d", f.Window.Width, f.Window.Height)
	}
	if f.Camera.MinZoom <= 0 || f.Camera.MaxZoom < f.Camera.MinZoom {
		return fmt.Errorf("camera zoom range [%v, %v]", f.Camera.MinZoom, f.Camera.MaxZoom)
	}
	if f.Zombie.HalfWidth <= 0 || f.Zombie.HalfHeight <= 0 {
		return fmt.Errorf("zombie half-size %vx%v", f.Zombie.HalfWidth, f.Zombie.HalfHeight)
	}
	return nil
}
