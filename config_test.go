package flycam

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Overrides(t *testing.T) {
	doc := `
movement_speed: 5
sensitivity: 0.2
aspect_ratio: 1.5
fov_degrees: 60
near: 0.5
far: 500
wrap_yaw: true
position: [1, 2, 3]
yaw: 0
pitch: 10
bindings:
  up: forward
  down: backward
  E: up
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, float32(5), cfg.Settings.MovementSpeed)
	assert.Equal(t, float32(0.2), cfg.Settings.Sensitivity)
	assert.Equal(t, float32(1.5), cfg.Settings.AspectRatio)
	assert.Equal(t, mgl32.DegToRad(60), cfg.Settings.FovY)
	assert.Equal(t, float32(0.5), cfg.Settings.Near)
	assert.Equal(t, float32(500), cfg.Settings.Far)
	assert.True(t, cfg.Settings.WrapYaw)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cfg.Position)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cfg.WorldUp)
	assert.Equal(t, float32(0), cfg.Yaw)
	assert.Equal(t, float32(10), cfg.Pitch)
	assert.Equal(t, Bindings{KeyUp: MoveForward, KeyDown: MoveBackward, KeyE: MoveUp}, cfg.Bindings)

	cam, err := cfg.NewCamera()
	require.NoError(t, err)
	assert.Equal(t, cfg.Settings, cam.Settings())
	cam.ProcessInput(KeyEvent{Code: KeyE, Pressed: true})
	assert.True(t, cam.Moving(MoveUp))
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "zoom: 3\n"},
		{"invalid near", "near: 0\n"},
		{"far before near", "near: 10\nfar: 1\n"},
		{"unknown key", "bindings:\n  hyper: forward\n"},
		{"unknown movement", "bindings:\n  w: sideways\n"},
		{"malformed", "movement_speed: [1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tc.doc))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(strings.NewReader("near: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")
	require.NoError(t, os.WriteFile(path, []byte("far: 250\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, float32(250), cfg.Settings.Far)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
