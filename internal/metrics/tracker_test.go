package metrics

import (
	"testing"

	"github.com/google/uuid"

	"github.com/plexsphere/linkmond/internal/sampler"
)

func newHandle() sampler.Handle {
	return sampler.Handle(uuid.New())
}

func TestTargetTrackerInsert(t *testing.T) {
	tr := newTargetTracker()

	h1 := newHandle()
	if _, replaced := tr.insert("net0", h1); replaced {
		t.Error("insert() on empty tracker reported a replaced handle")
	}

	// Inserting a second name must not disturb the first.
	h2 := newHandle()
	if _, replaced := tr.insert("net1", h2); replaced {
		t.Error("insert() of distinct name reported a replaced handle")
	}
	if got, ok := tr.remove("net0"); !ok || got != h1 {
		t.Errorf("remove(net0) = %v, %v, want %v, true", got, ok, h1)
	}
}

func TestTargetTrackerOverwrite(t *testing.T) {
	tr := newTargetTracker()

	h1 := newHandle()
	h2 := newHandle()
	tr.insert("net0", h1)

	prev, replaced := tr.insert("net0", h2)
	if !replaced {
		t.Fatal("insert() of duplicate name did not report replacement")
	}
	if prev != h1 {
		t.Errorf("insert() prev = %v, want %v", prev, h1)
	}

	// Last write wins: the stored handle is the fresh one.
	if got, ok := tr.remove("net0"); !ok || got != h2 {
		t.Errorf("remove(net0) = %v, %v, want %v, true", got, ok, h2)
	}
}

func TestTargetTrackerRemoveAbsent(t *testing.T) {
	tr := newTargetTracker()
	if _, ok := tr.remove("never-tracked"); ok {
		t.Error("remove() of absent name reported a handle")
	}
}

func TestTargetTrackerNames(t *testing.T) {
	tr := newTargetTracker()
	tr.insert("net1", newHandle())
	tr.insert("net0", newHandle())

	got := tr.names()
	if len(got) != 2 || got[0] != "net0" || got[1] != "net1" {
		t.Errorf("names() = %v, want [net0 net1]", got)
	}
}
