package flycam

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrUnknownView = errors.New("flycam: unknown view")

type ViewId uuid.UUID

func (id ViewId) String() string { return uuid.UUID(id).String() }

// Views holds one camera per active scene or viewport. All access goes
// through a single lock, so a host rendering from several goroutines gets
// exclusive access per frame via Frame.
type Views struct {
	mu     sync.Mutex
	views  map[ViewId]*Camera
	active ViewId
	has    bool
}

func NewViews() *Views {
	return &Views{views: make(map[ViewId]*Camera)}
}

// Add registers cam under a fresh id. The first view added becomes active.
func (v *Views) Add(cam *Camera) ViewId {
	id := ViewId(uuid.New())
	v.mu.Lock()
	defer v.mu.Unlock()
	v.views[id] = cam
	if !v.has {
		v.active, v.has = id, true
	}
	return id
}

// Get returns the camera registered under id. Callers sharing v across
// goroutines should use Frame instead.
func (v *Views) Get(id ViewId) (*Camera, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	cam, ok := v.views[id]
	return cam, ok
}

func (v *Views) Remove(id ViewId) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.views, id)
	if v.has && v.active == id {
		v.has = false
	}
}

func (v *Views) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.views)
}

func (v *Views) SetActive(id ViewId) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.views[id]; !ok {
		return ErrUnknownView
	}
	v.active, v.has = id, true
	return nil
}

// Active returns the id of the active view, if any.
func (v *Views) Active() (ViewId, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active, v.has
}

// Frame runs fn with exclusive access to the camera. fn must not retain the
// pointer or call back into v.
func (v *Views) Frame(id ViewId, fn func(*Camera)) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	cam, ok := v.views[id]
	if !ok {
		return ErrUnknownView
	}
	fn(cam)
	return nil
}

// FrameActive is Frame on the active view.
func (v *Views) FrameActive(fn func(*Camera)) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.has {
		return ErrUnknownView
	}
	fn(v.views[v.active])
	return nil
}
