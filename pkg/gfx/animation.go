package gfx

import "github.com/go-gl/mathgl/mgl32"

// Pulse bounces the red channel of a color between 0 and 1, one step per
// frame. The first step uses Increment; after the value leaves [0, 1] the
// step flips to -Step or +Step.
type Pulse struct {
	Value     float32
	Increment float32
	Step      float32
	Base      mgl32.Vec4 // green, blue and alpha are taken from here
}

// NewPulse returns a pulse starting at zero.
func NewPulse(increment, step float32, base mgl32.Vec4) *Pulse {
	return &Pulse{
		Increment: increment,
		Step:      step,
		Base:      base,
	}
}

// Color returns the current color without advancing.
func (p *Pulse) Color() mgl32.Vec4 {
	c := p.Base
	c[0] = p.Value
	return c
}

// Advance moves the pulse to the next frame.
func (p *Pulse) Advance() {
	if p.Value > 1 {
		p.Increment = -p.Step
	} else if p.Value < 0 {
		p.Increment = p.Step
	}
	p.Value += p.Increment
}
