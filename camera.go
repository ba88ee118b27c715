// Package flycam implements a free-fly camera: Euler yaw/pitch orientation,
// key-driven movement integrated over frame time, pointer look, and the view
// and projection matrices a renderer needs each frame.
//
// Vectors and matrices are mgl32 values. Matrices are column-major, the view
// matrix is a right-handed look-at (eye space looks down -Z) and the
// projection maps depth to the OpenGL clip range [-1, 1].
package flycam

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pitch limits in degrees. The view matrix degenerates when looking straight
// along the world up axis.
const (
	MaxPitch float32 = 89.0
	MinPitch float32 = -89.0
)

// parallelEpsilon is the shortest direction x worldUp cross product that
// still yields a usable right axis.
const parallelEpsilon = 1e-6

type cursor struct {
	x, y float64
}

// Camera is owned by a single frame loop. Use Views for cross-goroutine
// access. Build cameras with NewCamera; the zero value has no valid axes.
type Camera struct {
	position mgl32.Vec3
	yaw      float32
	pitch    float32
	worldUp  mgl32.Vec3

	direction mgl32.Vec3
	right     mgl32.Vec3
	up        mgl32.Vec3

	lastCursor *cursor
	moving     [movementCount]bool

	settings Settings
	bindings Bindings
	log      Logger
}

type Option func(*Camera)

// WithSettings replaces DefaultSettings. The settings are validated by
// NewCamera.
func WithSettings(s Settings) Option {
	return func(c *Camera) { c.settings = s }
}

// WithBindings replaces DefaultBindings with a copy of b.
func WithBindings(b Bindings) Option {
	return func(c *Camera) { c.bindings = b.clone() }
}

// WithLogger routes camera warnings to l, scoped as "camera".
func WithLogger(l Logger) Option {
	return func(c *Camera) {
		if l != nil {
			c.log = Named(l, "camera")
		}
	}
}

// NewCamera builds a camera at position looking along yaw/pitch (degrees).
// Yaw -90 with pitch 0 looks down -Z. Pitch is clamped to [MinPitch, MaxPitch].
func NewCamera(position, worldUp mgl32.Vec3, yaw, pitch float32, opts ...Option) (*Camera, error) {
	for i := 0; i < 3; i++ {
		if !finite(position[i]) {
			return nil, configErr("position", position, "components must be finite")
		}
	}
	if !finite(yaw) {
		return nil, configErr("yaw", yaw, "must be finite")
	}
	if !finite(pitch) {
		return nil, configErr("pitch", pitch, "must be finite")
	}
	pitch = clampPitch(pitch)
	if err := validateWorldUp(worldUp, yaw, pitch); err != nil {
		return nil, err
	}

	c := &Camera{
		position:  position,
		yaw:       yaw,
		pitch:     pitch,
		worldUp:   worldUp.Normalize(),
		direction: mgl32.Vec3{0, 0, -1},
		settings:  DefaultSettings(),
		bindings:  DefaultBindings(),
		log:       NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.settings.Validate(); err != nil {
		return nil, err
	}
	if c.settings.WrapYaw {
		c.yaw = wrapDegrees(c.yaw)
	}
	c.recomputeAxes()
	return c, nil
}

// validateWorldUp rejects vectors that cannot produce a right axis for the
// given orientation.
func validateWorldUp(up mgl32.Vec3, yaw, pitch float32) error {
	for i := 0; i < 3; i++ {
		if !finite(up[i]) {
			return configErr("world up", up, "components must be finite")
		}
	}
	if up.Len() < 1e-6 {
		return configErr("world up", up, "must not be zero length")
	}
	if parallel(forward(yaw, pitch), up.Normalize()) {
		return configErr("world up", up, "must not be parallel to the view direction")
	}
	return nil
}

func clampPitch(p float32) float32 {
	if p > MaxPitch {
		return MaxPitch
	}
	if p < MinPitch {
		return MinPitch
	}
	return p
}

func wrapDegrees(d float32) float32 {
	d = math32.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func forward(yawDeg, pitchDeg float32) mgl32.Vec3 {
	yaw := mgl32.DegToRad(yawDeg)
	pitch := mgl32.DegToRad(pitchDeg)
	return mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

func parallel(direction, worldUp mgl32.Vec3) bool {
	return direction.Cross(worldUp).Len() < parallelEpsilon
}

func (c *Camera) logger() Logger {
	if c.log == nil {
		return NewNopLogger()
	}
	return c.log
}

// recomputeAxes must run after every change to yaw, pitch or worldUp.
func (c *Camera) recomputeAxes() {
	c.direction = forward(c.yaw, c.pitch)
	c.right = c.direction.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.direction).Normalize()
}

// Rotate adds the offsets (degrees) to yaw and pitch. Pitch saturates at
// ±89 degrees; yaw is unbounded unless Settings.WrapYaw is set. A rotation
// that would look straight along the world up axis is dropped.
func (c *Camera) Rotate(yawDelta, pitchDelta float32) {
	if !finite(yawDelta) || !finite(pitchDelta) {
		c.logger().Warnf("dropping non-finite rotation (%v, %v)", yawDelta, pitchDelta)
		return
	}
	yaw := c.yaw + yawDelta
	pitch := clampPitch(c.pitch + pitchDelta)
	if parallel(forward(yaw, pitch), c.worldUp) {
		c.logger().Warnf("dropping rotation (%v, %v): view would align with world up %v", yawDelta, pitchDelta, c.worldUp)
		return
	}
	c.yaw, c.pitch = yaw, pitch
	if c.settings.WrapYaw {
		c.yaw = wrapDegrees(c.yaw)
	}
	c.recomputeAxes()
}

func (c *Camera) translate(axis mgl32.Vec3, d float32) {
	if !finite(d) {
		c.logger().Warnf("dropping non-finite move distance %v", d)
		return
	}
	c.position = c.position.Add(axis.Mul(d))
}

func (c *Camera) MoveForward(d float32)  { c.translate(c.direction, d) }
func (c *Camera) MoveBackward(d float32) { c.translate(c.direction, -d) }
func (c *Camera) MoveRight(d float32)    { c.translate(c.right, d) }
func (c *Camera) MoveLeft(d float32)     { c.translate(c.right, -d) }
func (c *Camera) MoveUp(d float32)       { c.translate(c.up, d) }
func (c *Camera) MoveDown(d float32)     { c.translate(c.up, -d) }

// Update integrates the held movement intents over dt seconds. Opposing
// intents are applied independently and cancel out.
func (c *Camera) Update(dt float32) {
	if !finite(dt) {
		c.logger().Warnf("dropping non-finite delta time %v", dt)
		return
	}
	velocity := c.settings.MovementSpeed * dt
	if c.moving[MoveForward] {
		c.MoveForward(velocity)
	}
	if c.moving[MoveBackward] {
		c.MoveBackward(velocity)
	}
	if c.moving[MoveLeft] {
		c.MoveLeft(velocity)
	}
	if c.moving[MoveRight] {
		c.MoveRight(velocity)
	}
	if c.moving[MoveUp] {
		c.MoveUp(velocity)
	}
	if c.moving[MoveDown] {
		c.MoveDown(velocity)
	}
}

// ProcessInput applies a single host event. Keys without a binding are
// ignored. The first pointer sample after construction or ResetCursor only
// records the position.
func (c *Camera) ProcessInput(ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		if m, ok := c.bindings[e.Code]; ok {
			c.moving[m] = e.Pressed
		}
	case PointerMoveEvent:
		if math.IsNaN(e.X) || math.IsNaN(e.Y) || math.IsInf(e.X, 0) || math.IsInf(e.Y, 0) {
			c.logger().Warnf("dropping non-finite pointer sample (%v, %v)", e.X, e.Y)
			return
		}
		if c.lastCursor != nil {
			xOffset := float32(e.X-c.lastCursor.x) * c.settings.Sensitivity
			yOffset := float32(c.lastCursor.y-e.Y) * c.settings.Sensitivity
			c.Rotate(xOffset, yOffset)
		}
		c.lastCursor = &cursor{x: e.X, y: e.Y}
	}
}

// ResetCursor forgets the last pointer sample, so the next one does not
// rotate. Hosts call it when cursor capture is toggled.
func (c *Camera) ResetCursor() { c.lastCursor = nil }

// Moving reports whether the given intent is currently held.
func (c *Camera) Moving(m Movement) bool {
	if m < 0 || m >= movementCount {
		return false
	}
	return c.moving[m]
}

// ViewMatrix looks from the position along direction with the derived up
// vector.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.direction), c.up)
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	s := c.settings
	return mgl32.Perspective(s.FovY, s.AspectRatio, s.Near, s.Far)
}

// ViewProjection is ProjectionMatrix * ViewMatrix.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

func (c *Camera) Frustum() Frustum {
	return ExtractFrustum(c.ViewProjection())
}

func (c *Camera) Position() mgl32.Vec3  { return c.position }
func (c *Camera) Yaw() float32          { return c.yaw }
func (c *Camera) Pitch() float32        { return c.pitch }
func (c *Camera) Direction() mgl32.Vec3 { return c.direction }
func (c *Camera) Right() mgl32.Vec3     { return c.right }
func (c *Camera) Up() mgl32.Vec3        { return c.up }
func (c *Camera) WorldUp() mgl32.Vec3   { return c.worldUp }

func (c *Camera) SetPosition(p mgl32.Vec3) error {
	for i := 0; i < 3; i++ {
		if !finite(p[i]) {
			return configErr("position", p, "components must be finite")
		}
	}
	c.position = p
	return nil
}

func (c *Camera) SetWorldUp(up mgl32.Vec3) error {
	if err := validateWorldUp(up, c.yaw, c.pitch); err != nil {
		return err
	}
	c.worldUp = up.Normalize()
	c.recomputeAxes()
	return nil
}
