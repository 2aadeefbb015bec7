package system

import (
	"slices"

	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
	"github.com/milk9111/gravityball/gravity"
)

// OverlapSystem tests every AreaTrigger sphere against entity Bounds and
// reports membership changes to the area's subscribers. Exits are delivered
// before enters, synchronously, in entity order.
type OverlapSystem struct {
	areas map[ecs.Entity]*overlapArea
}

type overlapArea struct {
	members map[ecs.Entity]gravity.Actor
	subs    []overlapSub
}

type overlapSub struct {
	enter func(gravity.Actor)
	exit  func(gravity.Actor)
}

func NewOverlapSystem() *OverlapSystem {
	return &OverlapSystem{areas: make(map[ecs.Entity]*overlapArea)}
}

// Source adapts one area entity to gravity.OverlapSource.
func (s *OverlapSystem) Source(area ecs.Entity) gravity.OverlapSource {
	return overlapSource{sys: s, area: area}
}

type overlapSource struct {
	sys  *OverlapSystem
	area ecs.Entity
}

func (o overlapSource) Subscribe(enter, exit func(gravity.Actor)) {
	if o.sys == nil {
		return
	}
	a := o.sys.area(o.area)
	a.subs = append(a.subs, overlapSub{enter: enter, exit: exit})
}

func (s *OverlapSystem) area(e ecs.Entity) *overlapArea {
	a, ok := s.areas[e]
	if !ok {
		a = &overlapArea{members: make(map[ecs.Entity]gravity.Actor)}
		s.areas[e] = a
	}
	return a
}

// Members returns the entities currently inside area, in entity order.
func (s *OverlapSystem) Members(area ecs.Entity) []ecs.Entity {
	a, ok := s.areas[area]
	if !ok {
		return nil
	}
	out := make([]ecs.Entity, 0, len(a.members))
	for e := range a.members {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

func (s *OverlapSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	candidates := w.Query(component.BoundsComponent.Kind(), component.TransformComponent.Kind())
	slices.Sort(candidates)

	areas := make([]ecs.Entity, 0, len(s.areas))
	for e := range s.areas {
		areas = append(areas, e)
	}
	slices.Sort(areas)

	for _, areaEnt := range areas {
		a := s.areas[areaEnt]
		if !w.IsAlive(areaEnt) {
			// a destroyed area just forgets its members
			delete(s.areas, areaEnt)
			continue
		}
		trigger, ok := ecs.Get(w, areaEnt, component.AreaTriggerComponent.Kind())
		if !ok {
			continue
		}
		at, ok := ecs.Get(w, areaEnt, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		current := make(map[ecs.Entity]struct{}, len(a.members))
		for _, e := range candidates {
			if e == areaEnt {
				continue
			}
			bounds, _ := ecs.Get(w, e, component.BoundsComponent.Kind())
			t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			reach := trigger.Radius + bounds.Radius
			if t.Position.Sub(at.Position).Len() <= reach {
				current[e] = struct{}{}
			}
		}

		var exits []ecs.Entity
		for e := range a.members {
			if _, still := current[e]; !still {
				exits = append(exits, e)
			}
		}
		slices.Sort(exits)
		for _, e := range exits {
			actor := a.members[e]
			delete(a.members, e)
			for _, sub := range a.subs {
				if sub.exit != nil {
					sub.exit(actor)
				}
			}
		}

		for _, e := range candidates {
			if _, in := current[e]; !in {
				continue
			}
			if _, known := a.members[e]; known {
				continue
			}
			actor := ActorFor(w, e)
			if actor == nil {
				continue
			}
			a.members[e] = actor
			for _, sub := range a.subs {
				if sub.enter != nil {
					sub.enter(actor)
				}
			}
		}
	}
}
