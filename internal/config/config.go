package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/diskbox/internal/physics"
	"github.com/san-kum/diskbox/internal/vec"
)

const (
	DefaultDt          = 1.0 / 60.0
	DefaultDiskRadius  = 25.0
	DefaultMargin      = 200.0
	DefaultWindowW     = 1280
	DefaultWindowH     = 720
	DefaultRestitution = 0.8
	DefaultDamping     = 2.0
	DefaultSlop        = 0.01
	DefaultPercent     = 0.8
)

// Config is the sandbox configuration loaded from yaml: window geometry,
// disk sizing, bounds policy and the physics parameters.
type Config struct {
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	Dt           float64 `yaml:"dt"`
	DiskRadius   float64 `yaml:"disk_radius"`
	Margin       float64 `yaml:"margin"`

	Physics PhysicsConfig `yaml:"physics"`
}

type PhysicsConfig struct {
	FrictionEnabled bool    `yaml:"friction_enabled"`
	Restitution     float64 `yaml:"restitution"`
	GravityX        float64 `yaml:"gravity_x"`
	GravityY        float64 `yaml:"gravity_y"`
	LinearDamping   float64 `yaml:"linear_damping"`
	Slop            float64 `yaml:"slop"`
	Percent         float64 `yaml:"percent"`
}

func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  DefaultWindowW,
		WindowHeight: DefaultWindowH,
		Dt:           DefaultDt,
		DiskRadius:   DefaultDiskRadius,
		Margin:       DefaultMargin,
		Physics: PhysicsConfig{
			FrictionEnabled: true,
			Restitution:     DefaultRestitution,
			LinearDamping:   DefaultDamping,
			Slop:            DefaultSlop,
			Percent:         DefaultPercent,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PhysicsConfig converts the yaml physics block into the kernel's config.
// Values are clamped by the kernel, not here.
func (c *Config) PhysicsConfig() physics.Config {
	return physics.Config{
		FrictionEnabled: c.Physics.FrictionEnabled,
		Restitution:     c.Physics.Restitution,
		Gravity:         vec.New(c.Physics.GravityX, c.Physics.GravityY),
		LinearDamping:   c.Physics.LinearDamping,
		Slop:            c.Physics.Slop,
		Percent:         c.Physics.Percent,
	}
}

// Bounds derives the lifecycle bounds from the window size and margin.
func (c *Config) Bounds() physics.Bounds {
	return physics.Bounds{
		HalfWidth:  float64(c.WindowWidth) / 2,
		HalfHeight: float64(c.WindowHeight) / 2,
		Margin:     c.Margin,
	}
}
