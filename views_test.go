package flycam

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViews_AddRemove(t *testing.T) {
	views := NewViews()
	_, ok := views.Active()
	assert.False(t, ok)

	first := views.Add(newTestCamera(t))
	second := views.Add(newTestCamera(t))
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, views.Len())

	active, ok := views.Active()
	require.True(t, ok)
	assert.Equal(t, first, active)

	require.NoError(t, views.SetActive(second))
	active, _ = views.Active()
	assert.Equal(t, second, active)

	cam, ok := views.Get(second)
	require.True(t, ok)
	assert.NotNil(t, cam)

	views.Remove(second)
	_, ok = views.Get(second)
	assert.False(t, ok)
	_, ok = views.Active()
	assert.False(t, ok)
	assert.Equal(t, 1, views.Len())

	assert.ErrorIs(t, views.SetActive(second), ErrUnknownView)
	assert.ErrorIs(t, views.Frame(second, func(*Camera) {}), ErrUnknownView)
	assert.ErrorIs(t, views.FrameActive(func(*Camera) {}), ErrUnknownView)
}

func TestViews_FrameIsExclusive(t *testing.T) {
	views := NewViews()
	id := views.Add(newTestCamera(t))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = views.Frame(id, func(cam *Camera) {
					cam.MoveUp(0.01)
				})
			}
		}()
	}
	wg.Wait()

	require.NoError(t, views.FrameActive(func(cam *Camera) {
		assert.InDelta(t, 8, cam.Position().Y(), 1e-2)
	}))
}

func TestViewId_String(t *testing.T) {
	views := NewViews()
	id := views.Add(newTestCamera(t))
	assert.Len(t, id.String(), 36)
}
