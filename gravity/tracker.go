package gravity

// TrackedKind tags how a tracked actor is affected by the field.
type TrackedKind uint8

const (
	// TrackedGeneric actors receive area forces.
	TrackedGeneric TrackedKind = iota
	// TrackedHoming actors are projectiles steered by their own integrator.
	TrackedHoming
)

func (k TrackedKind) String() string {
	if k == TrackedHoming {
		return "homing"
	}
	return "generic"
}

// Tracked is one member of the affected set. Kind is resolved once, on entry.
type Tracked struct {
	Actor Actor
	Kind  TrackedKind
}

// Tracker keeps the actors currently inside a field's area, in entry order.
type Tracker struct {
	entries []Tracked
	index   map[ActorID]int
}

func NewTracker() *Tracker {
	return &Tracker{index: make(map[ActorID]int)}
}

// Add inserts a and reports whether it was not already tracked.
func (t *Tracker) Add(a Actor, kind TrackedKind) bool {
	if t == nil || a == nil {
		return false
	}
	if t.index == nil {
		t.index = make(map[ActorID]int)
	}
	if _, ok := t.index[a.ID()]; ok {
		return false
	}
	t.index[a.ID()] = len(t.entries)
	t.entries = append(t.entries, Tracked{Actor: a, Kind: kind})
	return true
}

// Remove drops the actor with id. Removing a non-member is a no-op.
func (t *Tracker) Remove(id ActorID) (Tracked, bool) {
	if t == nil {
		return Tracked{}, false
	}
	idx, ok := t.index[id]
	if !ok {
		return Tracked{}, false
	}
	removed := t.entries[idx]
	copy(t.entries[idx:], t.entries[idx+1:])
	t.entries[len(t.entries)-1] = Tracked{}
	t.entries = t.entries[:len(t.entries)-1]
	delete(t.index, id)
	for i := idx; i < len(t.entries); i++ {
		t.index[t.entries[i].Actor.ID()] = i
	}
	return removed, true
}

func (t *Tracker) Contains(id ActorID) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[id]
	return ok
}

// Kind returns how id is tracked.
func (t *Tracker) Kind(id ActorID) (TrackedKind, bool) {
	if t == nil {
		return 0, false
	}
	idx, ok := t.index[id]
	if !ok {
		return 0, false
	}
	return t.entries[idx].Kind, true
}

func (t *Tracker) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Count returns how many members have the given kind.
func (t *Tracker) Count(kind TrackedKind) int {
	if t == nil {
		return 0
	}
	n := 0
	for _, e := range t.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Each calls fn for every member of the given kind in entry order.
// fn must not add or remove members.
func (t *Tracker) Each(kind TrackedKind, fn func(Actor)) {
	if t == nil || fn == nil {
		return
	}
	for _, e := range t.entries {
		if e.Kind == kind {
			fn(e.Actor)
		}
	}
}
