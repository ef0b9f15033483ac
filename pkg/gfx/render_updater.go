package gfx

import "time"

type renderUpdater struct {
	rendererRefreshRate time.Duration
	nextRenderTime      time.Time
	render              func()
	sleep               func(time.Duration)
	now                 func() time.Time
}

// newRenderUpdater paces render to rendererRefreshRate. A non-positive rate
// renders on every call and leaves pacing to the swap interval.
func newRenderUpdater(
	rendererRefreshRate time.Duration,
	render func(),
) *renderUpdater {
	return &renderUpdater{
		rendererRefreshRate: rendererRefreshRate,
		nextRenderTime:      time.Now(),
		render:              render,
		sleep:               time.Sleep,
		now:                 time.Now,
	}
}

func (r *renderUpdater) run() {
	if r.rendererRefreshRate <= 0 {
		r.render()
		return
	}
	if wait := r.nextRenderTime.Sub(r.now()); wait > 0 {
		r.sleep(wait)
	}
	r.render()
	r.nextRenderTime = r.now().Add(r.rendererRefreshRate)
}
