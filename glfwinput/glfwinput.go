// Package glfwinput adapts GLFW window callbacks into flycam events.
package glfwinput

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/flycam"
)

var glfwToKey = map[glfw.Key]flycam.Key{
	glfw.KeyA:            flycam.KeyA,
	glfw.KeyB:            flycam.KeyB,
	glfw.KeyC:            flycam.KeyC,
	glfw.KeyD:            flycam.KeyD,
	glfw.KeyE:            flycam.KeyE,
	glfw.KeyF:            flycam.KeyF,
	glfw.KeyG:            flycam.KeyG,
	glfw.KeyH:            flycam.KeyH,
	glfw.KeyI:            flycam.KeyI,
	glfw.KeyJ:            flycam.KeyJ,
	glfw.KeyK:            flycam.KeyK,
	glfw.KeyL:            flycam.KeyL,
	glfw.KeyM:            flycam.KeyM,
	glfw.KeyN:            flycam.KeyN,
	glfw.KeyO:            flycam.KeyO,
	glfw.KeyP:            flycam.KeyP,
	glfw.KeyQ:            flycam.KeyQ,
	glfw.KeyR:            flycam.KeyR,
	glfw.KeyS:            flycam.KeyS,
	glfw.KeyT:            flycam.KeyT,
	glfw.KeyU:            flycam.KeyU,
	glfw.KeyV:            flycam.KeyV,
	glfw.KeyW:            flycam.KeyW,
	glfw.KeyX:            flycam.KeyX,
	glfw.KeyY:            flycam.KeyY,
	glfw.KeyZ:            flycam.KeyZ,
	glfw.Key0:            flycam.Key0,
	glfw.Key1:            flycam.Key1,
	glfw.Key2:            flycam.Key2,
	glfw.Key3:            flycam.Key3,
	glfw.Key4:            flycam.Key4,
	glfw.Key5:            flycam.Key5,
	glfw.Key6:            flycam.Key6,
	glfw.Key7:            flycam.Key7,
	glfw.Key8:            flycam.Key8,
	glfw.Key9:            flycam.Key9,
	glfw.KeySpace:        flycam.KeySpace,
	glfw.KeyEnter:        flycam.KeyEnter,
	glfw.KeyEscape:       flycam.KeyEscape,
	glfw.KeyTab:          flycam.KeyTab,
	glfw.KeyRight:        flycam.KeyRight,
	glfw.KeyLeft:         flycam.KeyLeft,
	glfw.KeyDown:         flycam.KeyDown,
	glfw.KeyUp:           flycam.KeyUp,
	glfw.KeyPageUp:       flycam.KeyPageUp,
	glfw.KeyPageDown:     flycam.KeyPageDown,
	glfw.KeyLeftShift:    flycam.KeyLeftShift,
	glfw.KeyRightShift:   flycam.KeyRightShift,
	glfw.KeyLeftControl:  flycam.KeyLeftControl,
	glfw.KeyRightControl: flycam.KeyRightControl,
	glfw.KeyLeftAlt:      flycam.KeyLeftAlt,
	glfw.KeyRightAlt:     flycam.KeyRightAlt,
}

// TranslateKey maps a GLFW key callback onto a flycam.KeyEvent. Repeats and
// keys flycam does not know report false.
func TranslateKey(key glfw.Key, action glfw.Action) (flycam.KeyEvent, bool) {
	if action == glfw.Repeat {
		return flycam.KeyEvent{}, false
	}
	k, ok := glfwToKey[key]
	if !ok {
		return flycam.KeyEvent{}, false
	}
	return flycam.KeyEvent{Code: k, Pressed: action == glfw.Press}, true
}

// Sink receives translated window input.
type Sink interface {
	Push(ev flycam.Event)
	Resize(width, height int)
}

// Queue buffers events between polls, preserving arrival order. GLFW invokes
// callbacks on the thread calling PollEvents, so no locking is needed.
type Queue struct {
	events        []flycam.Event
	width, height int
	resized       bool
}

func (q *Queue) Push(ev flycam.Event) { q.events = append(q.events, ev) }

func (q *Queue) Resize(width, height int) {
	q.width, q.height, q.resized = width, height, true
}

// Drain hands every queued event to fn in order and empties the queue.
func (q *Queue) Drain(fn func(flycam.Event)) {
	for _, ev := range q.events {
		fn(ev)
	}
	q.events = q.events[:0]
}

// TakeResize returns the latest framebuffer size reported since the last
// call.
func (q *Queue) TakeResize() (width, height int, ok bool) {
	if !q.resized {
		return 0, 0, false
	}
	q.resized = false
	return q.width, q.height, true
}

// Attach installs key, cursor and framebuffer callbacks on win that feed
// sink. It replaces any callbacks previously set for those events.
func Attach(win *glfw.Window, sink Sink) {
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if ev, ok := TranslateKey(key, action); ok {
			sink.Push(ev)
		}
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		sink.Push(flycam.PointerMoveEvent{X: x, Y: y})
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if width > 0 && height > 0 {
			sink.Resize(width, height)
		}
	})
}

// AspectRatio returns width/height, or false for a minimised window.
func AspectRatio(width, height int) (float32, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	return float32(width) / float32(height), true
}
