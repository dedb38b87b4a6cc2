// Package world is the in-process simulation driven by the game core: an entity registry
// keyed by component names plus a simulated clock that accumulates scaled ticks.
package world

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/dsf-game/dsf/game"
)

// Entity is a spawned entity and the components it was created with.
type Entity struct {
	ID         game.EntityID
	Components []string
}

// Has reports whether the entity carries the named component.
func (e Entity) Has(component string) bool {
	for _, c := range e.Components {
		if c == component {
			return true
		}
	}
	return false
}

// System runs once per tick, in registration order.
type System func(w *World, tick game.Tick)

// World implements game.Simulation.
type World struct {
	// Clock is the simulated time in seconds.
	Clock float64
	// Ticks counts Advance calls.
	Ticks uint64

	entities map[game.EntityID]Entity
	nextID   game.EntityID
	systems  []System
}

// New creates an empty world.
func New() *World {
	return &World{
		entities: make(map[game.EntityID]Entity),
	}
}

// AddSystem registers a system run on every tick.
func (w *World) AddSystem(s System) {
	if s == nil {
		panic("AddSystem: system must not be nil")
	}
	w.systems = append(w.systems, s)
}

// Spawn creates an entity with the given components and returns its ID. IDs start at 1.
func (w *World) Spawn(components ...string) game.EntityID {
	w.nextID++
	w.entities[w.nextID] = Entity{
		ID:         w.nextID,
		Components: append([]string(nil), components...),
	}
	logrus.Debugf("spawned entity %d %v", w.nextID, components)
	return w.nextID
}

// Despawn removes an entity. Unknown IDs are ignored.
func (w *World) Despawn(id game.EntityID) {
	if _, ok := w.entities[id]; !ok {
		return
	}
	delete(w.entities, id)
	logrus.Debugf("despawned entity %d", id)
}

// Advance moves the clock forward by tick.Delta and runs the systems.
func (w *World) Advance(tick game.Tick) {
	w.Clock += tick.Delta
	w.Ticks++
	for _, s := range w.systems {
		s(w, tick)
	}
	logrus.Tracef("[frame %06d] advanced %.4fs at x%v, clock=%.4fs", tick.Frame, tick.Delta, tick.Scale, w.Clock)
}

// Get returns the entity with the given ID.
func (w *World) Get(id game.EntityID) (Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.entities)
}

// With returns the IDs of entities carrying the named component, in ascending order.
func (w *World) With(component string) []game.EntityID {
	var ids []game.EntityID
	for id, e := range w.entities {
		if e.Has(component) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
