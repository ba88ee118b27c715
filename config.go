package flycam

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Config is everything needed to build a Camera, as loaded from YAML.
type Config struct {
	Position mgl32.Vec3
	WorldUp  mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Settings Settings
	Bindings Bindings
}

// DefaultConfig matches the original demo scene: three units back on +Z,
// looking down -Z.
func DefaultConfig() Config {
	return Config{
		Position: mgl32.Vec3{0, 0, 3},
		WorldUp:  mgl32.Vec3{0, 1, 0},
		Yaw:      -90,
		Pitch:    0,
		Settings: DefaultSettings(),
		Bindings: DefaultBindings(),
	}
}

// NewCamera builds a Camera from the config.
func (cfg Config) NewCamera(opts ...Option) (*Camera, error) {
	base := []Option{WithSettings(cfg.Settings), WithBindings(cfg.Bindings)}
	return NewCamera(cfg.Position, cfg.WorldUp, cfg.Yaw, cfg.Pitch, append(base, opts...)...)
}

type configFile struct {
	MovementSpeed *float32          `yaml:"movement_speed"`
	Sensitivity   *float32          `yaml:"sensitivity"`
	AspectRatio   *float32          `yaml:"aspect_ratio"`
	FovDegrees    *float32          `yaml:"fov_degrees"`
	Near          *float32          `yaml:"near"`
	Far           *float32          `yaml:"far"`
	WrapYaw       *bool             `yaml:"wrap_yaw"`
	Position      *[3]float32       `yaml:"position"`
	WorldUp       *[3]float32       `yaml:"world_up"`
	Yaw           *float32          `yaml:"yaw"`
	Pitch         *float32          `yaml:"pitch"`
	Bindings      map[string]string `yaml:"bindings"`
}

// LoadConfig decodes a YAML camera config. Omitted fields keep the values of
// DefaultConfig; a bindings map replaces the default bindings entirely.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	var raw configFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("flycam: decode config: %w", err)
	}

	set := func(dst *float32, src *float32) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.Settings.MovementSpeed, raw.MovementSpeed)
	set(&cfg.Settings.Sensitivity, raw.Sensitivity)
	set(&cfg.Settings.AspectRatio, raw.AspectRatio)
	set(&cfg.Settings.Near, raw.Near)
	set(&cfg.Settings.Far, raw.Far)
	set(&cfg.Yaw, raw.Yaw)
	set(&cfg.Pitch, raw.Pitch)
	if raw.FovDegrees != nil {
		cfg.Settings.FovY = mgl32.DegToRad(*raw.FovDegrees)
	}
	if raw.WrapYaw != nil {
		cfg.Settings.WrapYaw = *raw.WrapYaw
	}
	if raw.Position != nil {
		cfg.Position = mgl32.Vec3(*raw.Position)
	}
	if raw.WorldUp != nil {
		cfg.WorldUp = mgl32.Vec3(*raw.WorldUp)
	}

	if raw.Bindings != nil {
		cfg.Bindings = make(Bindings, len(raw.Bindings))
		for keyName, moveName := range raw.Bindings {
			k, err := ParseKey(keyName)
			if err != nil {
				return Config{}, fmt.Errorf("flycam: bindings: %w", err)
			}
			m, err := ParseMovement(moveName)
			if err != nil {
				return Config{}, fmt.Errorf("flycam: bindings for %s: %w", k, err)
			}
			cfg.Bindings[k] = m
		}
	}

	if err := cfg.Settings.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("flycam: open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}
