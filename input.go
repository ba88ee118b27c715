package flycam

import (
	"fmt"
	"strings"
)

// Key is a physical key code. Hosts translate their native codes into Key
// before handing events to a Camera.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown: "unknown",
	KeyA:       "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f",
	KeyG: "g", KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l",
	KeyM: "m", KeyN: "n", KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r",
	KeyS: "s", KeyT: "t", KeyU: "u", KeyV: "v", KeyW: "w", KeyX: "x",
	KeyY: "y", KeyZ: "z",
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeySpace:        "space",
	KeyEnter:        "enter",
	KeyEscape:       "escape",
	KeyTab:          "tab",
	KeyRight:        "right",
	KeyLeft:         "left",
	KeyDown:         "down",
	KeyUp:           "up",
	KeyPageUp:       "page_up",
	KeyPageDown:     "page_down",
	KeyLeftShift:    "left_shift",
	KeyRightShift:   "right_shift",
	KeyLeftControl:  "left_control",
	KeyRightControl: "right_control",
	KeyLeftAlt:      "left_alt",
	KeyRightAlt:     "right_alt",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// ParseKey accepts the names produced by Key.String, case-insensitively.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := KeyA; k < keyCount; k++ {
		if keyNames[k] == name {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("flycam: unknown key %q", name)
}

// Movement is one of the six movement intents.
type Movement int

const (
	MoveForward Movement = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	movementCount
)

var movementNames = [movementCount]string{
	MoveForward:  "forward",
	MoveBackward: "backward",
	MoveLeft:     "left",
	MoveRight:    "right",
	MoveUp:       "up",
	MoveDown:     "down",
}

func (m Movement) String() string {
	if m < 0 || m >= movementCount {
		return fmt.Sprintf("Movement(%d)", int(m))
	}
	return movementNames[m]
}

func ParseMovement(name string) (Movement, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m := MoveForward; m < movementCount; m++ {
		if movementNames[m] == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("flycam: unknown movement %q", name)
}

// Bindings maps keys onto movement intents. Several keys may drive the same
// intent.
type Bindings map[Key]Movement

func DefaultBindings() Bindings {
	return Bindings{
		KeyW:           MoveForward,
		KeyS:           MoveBackward,
		KeyA:           MoveLeft,
		KeyD:           MoveRight,
		KeySpace:       MoveUp,
		KeyLeftControl: MoveDown,
	}
}

func (b Bindings) clone() Bindings {
	out := make(Bindings, len(b))
	for k, m := range b {
		out[k] = m
	}
	return out
}

// Event is the input accepted by Camera.ProcessInput: a KeyEvent or a
// PointerMoveEvent.
type Event interface {
	isEvent()
}

type KeyEvent struct {
	Code    Key
	Pressed bool
}

// PointerMoveEvent carries absolute cursor coordinates in window space, Y
// growing downward.
type PointerMoveEvent struct {
	X, Y float64
}

func (KeyEvent) isEvent()         {}
func (PointerMoveEvent) isEvent() {}
