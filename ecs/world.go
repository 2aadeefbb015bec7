package ecs

import (
	"fmt"

	"github.com/milk9111/gravityball/ecs/component"
)

// Kind is any typed component kind; used where kinds of differing types are
// passed together.
type Kind interface {
	ID() component.ComponentID
}

// World owns entities, their components and the frame event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires the handle.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if w == nil {
		return fmt.Errorf("ecs: add component: nil world")
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if !w.entities.isAlive(e) {
		return fmt.Errorf("ecs: add component to %s: %w", e, component.ErrEntityNotAlive)
	}
	if value == nil {
		return component.ErrNilComponent
	}
	store, ok := w.stores[id]
	if !ok {
		store = newSparseSet()
		w.stores[id] = store
	}
	store.Set(e, value)
	return nil
}

func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if w == nil {
		return false
	}
	return w.stores[id].Remove(e)
}

func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	if w == nil {
		return false
	}
	return w.stores[id].Has(e)
}

func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if w == nil {
		return nil, false
	}
	return w.stores[id].Get(e)
}

// Query returns the entities holding every given kind, in the dense order of
// the smallest store.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	var smallest *SparseSet
	for _, k := range kinds {
		store := w.stores[k.ID()]
		if store.Len() == 0 {
			return nil
		}
		if smallest == nil || store.Len() < smallest.Len() {
			smallest = store
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.denseEntities {
		matched := true
		for _, k := range kinds {
			if !w.stores[k.ID()].Has(e) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity holding kind.
func (w *World) First(kind Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	store := w.stores[kind.ID()]
	if store.Len() == 0 {
		return 0, false
	}
	return store.denseEntities[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
