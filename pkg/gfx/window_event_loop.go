package gfx

import (
	"context"
	"runtime"
	"time"
)

// Window is the part of a platform window the frame loop drives.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	PollEvents()
}

type EventDispatcher func(Event)

// EventBus queues events from callbacks and watcher goroutines and hands
// them to a dispatcher on the render thread, between frames.
type EventBus struct {
	ctx         context.Context
	cancel      context.CancelFunc
	events      chan Event
	refreshRate time.Duration
	strategy    EventsConsumerStrategy
}

// NewEventLoop creates an EventBus. refreshRate caps the frame rate; zero
// leaves pacing to the window's swap interval.
func NewEventLoop(bufferSize int, refreshRate time.Duration) *EventBus {
	if bufferSize == 0 {
		bufferSize = 1024
	}
	eventLoop := EventBus{
		events:      make(chan Event, bufferSize),
		refreshRate: refreshRate,
		strategy:    DrainAll(),
	}
	eventLoop.ctx, eventLoop.cancel = context.WithCancel(context.Background())
	return &eventLoop
}

// EmitEvent never blocks; it is safe to call from any goroutine.
func (el *EventBus) EmitEvent(event Event) {
	if el == nil || event == nil {
		return
	}
	select {
	case el.events <- event:
	default:
		// drop if buffer full to avoid blocking producer
	}
}

// SetStrategy replaces the default DrainAll strategy. Call it before Run.
func (el *EventBus) SetStrategy(strategy EventsConsumerStrategy) {
	if strategy != nil {
		el.strategy = strategy
	}
}

// Stop makes Run return after the current frame.
func (el *EventBus) Stop() {
	el.cancel()
}

// Run renders frames until the window asks to close, Stop is called, or ctx
// is done. Each frame drains queued events, renders with the pulse's
// current color, advances the pulse, swaps and polls. It returns ctx.Err()
// only when ctx ended the loop.
func (el *EventBus) Run(
	ctx context.Context,
	window Window,
	renderer Renderer,
	pulse *Pulse,
	dispatcher EventDispatcher,
) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	updater := newRenderUpdater(el.refreshRate, func() {
		renderer.Render(Frame{Color: pulse.Color()})
		pulse.Advance()
		window.SwapBuffers()
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-el.ctx.Done():
			return nil
		default:
		}
		if window.ShouldClose() {
			return nil
		}
		el.consumeEvents(dispatcher)
		updater.run()
		window.PollEvents()
	}
}

func (el *EventBus) consumeEvents(handle EventDispatcher) int {
	if handle == nil {
		handle = func(Event) {}
	}
	return el.strategy.Consume(el.nextEvent, handle)
}

func (el *EventBus) nextEvent() (Event, bool) {
	select {
	case event := <-el.events:
		return event, true
	default:
		return nil, false
	}
}
