package gfx_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/glquad/pkg/gfx"
	"github.com/kjkrol/glquad/pkg/shader"
)

type fakeWindow struct {
	closeAfter int
	swaps      int
	polls      int
	close      bool
	onPoll     func(n int)
}

func (w *fakeWindow) ShouldClose() bool {
	return w.close || (w.closeAfter > 0 && w.swaps >= w.closeAfter)
}
func (w *fakeWindow) SetShouldClose(v bool) { w.close = v }
func (w *fakeWindow) SwapBuffers()          { w.swaps++ }
func (w *fakeWindow) PollEvents() {
	w.polls++
	if w.onPoll != nil {
		w.onPoll(w.polls)
	}
}

type fakeRenderer struct {
	frames  []gfx.Frame
	reloads []shader.ProgramSources
	sizes   [][2]int
	closed  bool
}

func (r *fakeRenderer) Render(f gfx.Frame) { r.frames = append(r.frames, f) }
func (r *fakeRenderer) Reload(src shader.ProgramSources) error {
	r.reloads = append(r.reloads, src)
	return nil
}
func (r *fakeRenderer) Resize(w, h int) { r.sizes = append(r.sizes, [2]int{w, h}) }
func (r *fakeRenderer) Close()          { r.closed = true }

func newPulse() *gfx.Pulse {
	return gfx.NewPulse(0.05, 0.01, mgl32.Vec4{0, 0.8, 0.8, 1})
}

func TestEventBus_RunsUntilWindowCloses(t *testing.T) {
	bus := gfx.NewEventLoop(0, 0)
	w := &fakeWindow{closeAfter: 3}
	r := &fakeRenderer{}

	err := bus.Run(context.Background(), w, r, newPulse(), nil)
	require.NoError(t, err)

	require.Len(t, r.frames, 3)
	assert.Equal(t, 3, w.swaps)
	assert.Equal(t, 3, w.polls)
	assert.InDelta(t, 0.0, r.frames[0].Color[0], 1e-6)
	assert.InDelta(t, 0.05, r.frames[1].Color[0], 1e-6)
	assert.InDelta(t, 0.10, r.frames[2].Color[0], 1e-6)
}

func TestEventBus_DispatchesQueuedEventsBetweenFrames(t *testing.T) {
	bus := gfx.NewEventLoop(4, 0)
	w := &fakeWindow{}
	r := &fakeRenderer{}
	w.onPoll = func(n int) {
		if n == 1 {
			bus.EmitEvent(gfx.KeyPress{Label: "escape"})
		}
	}

	var seen []gfx.Event
	err := bus.Run(context.Background(), w, r, newPulse(), func(e gfx.Event) {
		seen = append(seen, e)
		if k, ok := e.(gfx.KeyPress); ok && k.Label == "escape" {
			w.SetShouldClose(true)
		}
	})
	require.NoError(t, err)

	assert.Equal(t, []gfx.Event{gfx.KeyPress{Label: "escape"}}, seen)
	// the close request lands after the second frame's events are drained
	assert.Len(t, r.frames, 2)
}

func TestEventBus_EmitDropsWhenFull(t *testing.T) {
	bus := gfx.NewEventLoop(1, 0)
	bus.EmitEvent(gfx.ReloadRequest{})
	bus.EmitEvent(gfx.ReloadRequest{})
	bus.EmitEvent(nil)

	count := 0
	w := &fakeWindow{closeAfter: 1}
	err := bus.Run(context.Background(), w, &fakeRenderer{}, newPulse(), func(gfx.Event) { count++ })
	require.NoError(t, err)

	assert.Equal(t, 1, count)
}

func TestEventBus_ContextCancel(t *testing.T) {
	bus := gfx.NewEventLoop(0, 0)
	ctx, cancel := context.WithCancel(context.Background())
	w := &fakeWindow{onPoll: func(n int) {
		if n == 2 {
			cancel()
		}
	}}

	err := bus.Run(ctx, w, &fakeRenderer{}, newPulse(), nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, w.swaps)
}

func TestEventBus_Stop(t *testing.T) {
	bus := gfx.NewEventLoop(0, 0)
	w := &fakeWindow{onPoll: func(int) { bus.Stop() }}

	err := bus.Run(context.Background(), w, &fakeRenderer{}, newPulse(), nil)

	assert.NoError(t, err)
	assert.Equal(t, 1, w.swaps)
}

func TestEventBus_RefreshRatePacesFrames(t *testing.T) {
	bus := gfx.NewEventLoop(0, 10*time.Millisecond)
	w := &fakeWindow{closeAfter: 4}

	start := time.Now()
	require.NoError(t, bus.Run(context.Background(), w, &fakeRenderer{}, newPulse(), nil))

	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestEventBus_DrainMaxSpreadsEventsOverFrames(t *testing.T) {
	bus := gfx.NewEventLoop(8, 0)
	bus.SetStrategy(gfx.DrainMax(2))
	for i := 0; i < 5; i++ {
		bus.EmitEvent(gfx.ReloadRequest{})
	}

	w := &fakeWindow{closeAfter: 3}
	var perFrame []int
	handled := 0
	w.onPoll = func(int) { perFrame = append(perFrame, handled) }

	err := bus.Run(context.Background(), w, &fakeRenderer{}, newPulse(), func(gfx.Event) { handled++ })
	require.NoError(t, err)

	assert.Equal(t, []int{2, 4, 5}, perFrame)
}

func TestDrainAll(t *testing.T) {
	queue := []gfx.Event{gfx.ReloadRequest{}, gfx.Resize{Width: 1, Height: 1}}
	next := func() (gfx.Event, bool) {
		if len(queue) == 0 {
			return nil, false
		}
		e := queue[0]
		queue = queue[1:]
		return e, true
	}

	var got []gfx.Event
	n := gfx.DrainAll().Consume(next, func(e gfx.Event) { got = append(got, e) })

	assert.Equal(t, 2, n)
	assert.Equal(t, []gfx.Event{gfx.ReloadRequest{}, gfx.Resize{Width: 1, Height: 1}}, got)
}
