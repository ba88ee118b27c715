package flycam

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Settings are the tunables of a Camera. FovY is the vertical field of view
// in radians.
type Settings struct {
	MovementSpeed float32
	Sensitivity   float32
	AspectRatio   float32
	FovY          float32
	Near          float32
	Far           float32

	// WrapYaw keeps yaw in [0, 360) after every rotation.
	WrapYaw bool
}

func DefaultSettings() Settings {
	return Settings{
		MovementSpeed: 2.5,
		Sensitivity:   0.1,
		AspectRatio:   1.0,
		FovY:          mgl32.DegToRad(45),
		Near:          0.1,
		Far:           100.0,
	}
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

func (s Settings) Validate() error {
	if !finite(s.MovementSpeed) || s.MovementSpeed < 0 {
		return configErr("movement speed", s.MovementSpeed, "must be finite and >= 0")
	}
	if !finite(s.Sensitivity) || s.Sensitivity < 0 {
		return configErr("sensitivity", s.Sensitivity, "must be finite and >= 0")
	}
	if !finite(s.AspectRatio) || s.AspectRatio <= 0 {
		return configErr("aspect ratio", s.AspectRatio, "must be finite and > 0")
	}
	if !finite(s.FovY) || s.FovY <= 0 || s.FovY >= math32.Pi {
		return configErr("fov", mgl32.RadToDeg(s.FovY), "must lie in (0, 180) degrees")
	}
	return validateClip(s.Near, s.Far)
}

func validateClip(near, far float32) error {
	if !finite(near) || near <= 0 {
		return configErr("near plane", near, "must be finite and > 0")
	}
	if !finite(far) || far <= near {
		return configErr("far plane", far, "must be finite and > near")
	}
	return nil
}

// Setters below validate the full resulting settings and leave the camera
// unchanged on error.

func (c *Camera) SetSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.settings = s
	if s.WrapYaw {
		c.yaw = wrapDegrees(c.yaw)
	}
	return nil
}

func (c *Camera) SetMovementSpeed(speed float32) error {
	s := c.settings
	s.MovementSpeed = speed
	return c.SetSettings(s)
}

func (c *Camera) SetSensitivity(sensitivity float32) error {
	s := c.settings
	s.Sensitivity = sensitivity
	return c.SetSettings(s)
}

func (c *Camera) SetAspectRatio(aspect float32) error {
	s := c.settings
	s.AspectRatio = aspect
	return c.SetSettings(s)
}

// SetFovY sets the vertical field of view in radians.
func (c *Camera) SetFovY(fovy float32) error {
	s := c.settings
	s.FovY = fovy
	return c.SetSettings(s)
}

func (c *Camera) SetFovDegrees(deg float32) error {
	return c.SetFovY(mgl32.DegToRad(deg))
}

func (c *Camera) SetClipPlanes(near, far float32) error {
	s := c.settings
	s.Near, s.Far = near, far
	return c.SetSettings(s)
}

func (c *Camera) Settings() Settings { return c.settings }
