package gfx

// EventsConsumerStrategy decides how many queued events are handled before
// the next frame is rendered.
type EventsConsumerStrategy interface {
	Consume(next func() (Event, bool), handle func(Event)) int
}

type DrainAllStrategy struct{}

func (DrainAllStrategy) Consume(next func() (Event, bool), handle func(Event)) int {
	count := 0
	for {
		event, ok := next()
		if !ok {
			return count
		}
		handle(event)
		count++
	}
}

// DrainMaxStrategy handles at most Max events per frame; the rest wait for
// the following frames.
type DrainMaxStrategy struct {
	Max int
}

func (s DrainMaxStrategy) Consume(next func() (Event, bool), handle func(Event)) int {
	max := s.Max
	if max <= 0 {
		max = 1
	}
	count := 0
	for count < max {
		event, ok := next()
		if !ok {
			return count
		}
		handle(event)
		count++
	}
	return count
}

func DrainAll() EventsConsumerStrategy {
	return DrainAllStrategy{}
}

func DrainMax(max int) EventsConsumerStrategy {
	return DrainMaxStrategy{Max: max}
}
