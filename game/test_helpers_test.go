package game

// fakeWorld records every call the core makes into the simulation.
type fakeWorld struct {
	next     EntityID
	live     map[EntityID][]string
	ticks    []Tick
	spawned  int
	despawns int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{live: make(map[EntityID][]string)}
}

func (w *fakeWorld) Spawn(components ...string) EntityID {
	w.next++
	w.live[w.next] = components
	w.spawned++
	return w.next
}

func (w *fakeWorld) Despawn(id EntityID) {
	if _, ok := w.live[id]; ok {
		delete(w.live, id)
		w.despawns++
	}
}

func (w *fakeWorld) Advance(tick Tick) {
	w.ticks = append(w.ticks, tick)
}

// withComponent counts live entities carrying component.
func (w *fakeWorld) withComponent(component string) int {
	n := 0
	for _, cs := range w.live {
		for _, c := range cs {
			if c == component {
				n++
				break
			}
		}
	}
	return n
}

func newTestContext() (*Context, *fakeWorld) {
	w := newFakeWorld()
	return &Context{
		World:     w,
		TimeScale: NewTimeScaleController([]float64{0.5, 1.0, 2.0, 4.0}, 1.0),
	}, w
}

func newTestDriver(presets []float64, initial float64, opts Options) (*Driver, *fakeWorld) {
	w := newFakeWorld()
	return NewDriver(w, NewTimeScaleController(presets, initial), opts), w
}
