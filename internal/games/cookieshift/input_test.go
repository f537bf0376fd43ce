package cookieshift

import "testing"

func TestDebouncerFiresFreshMove(t *testing.T) {
	var d Debouncer

	d.Press(DirRight, false)
	d.Tick()

	m, ok := d.Take()
	if !ok {
		t.Fatal("fresh move should fire")
	}
	if m.Dir != DirRight || m.Slide {
		t.Errorf("move = %+v, want plain right", m)
	}

	// Fires exactly once.
	if _, ok := d.Take(); ok {
		t.Error("second Take should find nothing")
	}
}

func TestDebouncerWindowBoundary(t *testing.T) {
	var d Debouncer

	d.Press(DirUp, true)
	for i := 0; i < moveWindowTicks; i++ {
		d.Tick()
	}

	if _, ok := d.Take(); !ok {
		t.Error("move aged exactly to the window should still fire")
	}
}

func TestDebouncerDiscardsStaleMove(t *testing.T) {
	var d Debouncer

	d.Press(DirDown, false)
	for i := 0; i < moveWindowTicks+1; i++ {
		d.Tick()
	}

	if _, ok := d.Take(); ok {
		t.Error("stale move should be discarded silently")
	}
	if d.Pending() {
		t.Error("stale Take should still clear the pending move")
	}
}

func TestDebouncerOverwritesPending(t *testing.T) {
	var d Debouncer

	d.Press(DirLeft, false)
	d.Tick()
	d.Tick()
	d.Press(DirUp, true)

	m, ok := d.Take()
	if !ok {
		t.Fatal("overwritten move should fire (timer restarted)")
	}
	if m.Dir != DirUp || !m.Slide {
		t.Errorf("move = %+v, want slide up", m)
	}
}

func TestDebouncerCustomWindow(t *testing.T) {
	d := Debouncer{Window: 1}

	d.Press(DirRight, false)
	d.Tick()
	d.Tick()

	if _, ok := d.Take(); ok {
		t.Error("move older than the custom window should be discarded")
	}
}

func TestDebouncerTickWithoutPending(t *testing.T) {
	var d Debouncer
	d.Tick()
	d.Tick()

	if _, ok := d.Take(); ok {
		t.Error("Take with nothing pending should report no move")
	}

	// Aging before a press must not count against the new move.
	d.Press(DirLeft, false)
	if _, ok := d.Take(); !ok {
		t.Error("move pressed after idle ticks should be fresh")
	}
}

func TestDebouncerReset(t *testing.T) {
	var d Debouncer
	d.Press(DirDown, true)
	d.Reset()

	if d.Pending() {
		t.Error("Reset should drop the buffered move")
	}
}
