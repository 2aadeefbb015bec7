package gravity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type stubActor ActorID

func (s stubActor) ID() ActorID          { return ActorID(s) }
func (s stubActor) Position() mgl64.Vec3 { return mgl64.Vec3{} }

func TestTrackerKeepsEntryOrder(t *testing.T) {
	tr := NewTracker()
	for _, id := range []ActorID{3, 1, 2, 5} {
		kind := TrackedGeneric
		if id == 5 {
			kind = TrackedHoming
		}
		if !tr.Add(stubActor(id), kind) {
			t.Fatalf("expected add of %d to succeed", id)
		}
	}
	if tr.Add(stubActor(1), TrackedHoming) {
		t.Fatalf("duplicate add should be rejected")
	}
	if kind, _ := tr.Kind(1); kind != TrackedGeneric {
		t.Fatalf("duplicate add must not change the kind, got %v", kind)
	}

	if _, ok := tr.Remove(1); !ok {
		t.Fatalf("expected remove of 1")
	}
	if _, ok := tr.Remove(1); ok {
		t.Fatalf("removing a non-member should report false")
	}

	var got []ActorID
	tr.Each(TrackedGeneric, func(a Actor) { got = append(got, a.ID()) })
	want := []ActorID{3, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if tr.Count(TrackedHoming) != 1 || tr.Len() != 3 {
		t.Fatalf("unexpected counts: homing=%d len=%d", tr.Count(TrackedHoming), tr.Len())
	}

	// indices must stay valid after a middle removal
	if _, ok := tr.Remove(2); !ok || tr.Contains(2) {
		t.Fatalf("expected 2 removed")
	}
	if kind, ok := tr.Kind(5); !ok || kind != TrackedHoming || !tr.Contains(3) {
		t.Fatalf("remaining members lost after removal")
	}
}

func TestTrackerNilSafe(t *testing.T) {
	var tr *Tracker
	if tr.Add(stubActor(1), TrackedGeneric) || tr.Len() != 0 || tr.Contains(1) {
		t.Fatalf("nil tracker should be inert")
	}
	if _, ok := tr.Remove(1); ok {
		t.Fatalf("nil tracker remove should report false")
	}
}
