package routine

import (
	"reflect"
	"testing"
)

func TestSwitchContextRoundTrip(t *testing.T) {
	var main, other ExecutionContext
	main.resume = make(chan struct{})

	var steps []string
	other.prepare(func() {
		steps = append(steps, "first")
		switchContext(&other, &main)
		steps = append(steps, "second")
		handoff(&main)
	})

	steps = append(steps, "start")
	switchContext(&main, &other)
	steps = append(steps, "between")
	switchContext(&main, &other)
	steps = append(steps, "end")

	want := []string{"start", "first", "between", "second", "end"}
	if !reflect.DeepEqual(steps, want) {
		t.Errorf("control transfer order: got %v, want %v", steps, want)
	}
}

func TestPrepareReplacesOccupant(t *testing.T) {
	var main, c ExecutionContext
	main.resume = make(chan struct{})

	var got string
	c.prepare(func() {
		got = "first"
		handoff(&main)
	})
	// Re-priming installs a fresh resume channel; the first occupant is
	// never switched in.
	c.prepare(func() {
		got = "second"
		handoff(&main)
	})

	switchContext(&main, &c)
	if got != "second" {
		t.Errorf("resumed occupant: got %q, want %q", got, "second")
	}
}

func TestContextPingPong(t *testing.T) {
	// Two prepared contexts ping-pong through a shared main context; each
	// handoff chain must preserve strict alternation.
	var main, a, b ExecutionContext
	main.resume = make(chan struct{})

	var order []string
	a.prepare(func() {
		order = append(order, "a1")
		switchContext(&a, &main)
		order = append(order, "a2")
		handoff(&main)
	})
	b.prepare(func() {
		order = append(order, "b1")
		switchContext(&b, &main)
		order = append(order, "b2")
		handoff(&main)
	})

	switchContext(&main, &a)
	switchContext(&main, &b)
	switchContext(&main, &a)
	switchContext(&main, &b)

	want := []string{"a1", "b1", "a2", "b2"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("alternation: got %v, want %v", order, want)
	}
}
