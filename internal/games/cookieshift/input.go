package cookieshift

// Input debouncer: raw per-tick key edges become a single buffered intended
// move with a short validity window. While slides and refills are blocked
// (animation in flight, board not full) the pending move keeps aging; if it
// is not consumed within the window it is dropped without effect.

// moveWindowTicks is how many frame-times a buffered move stays valid.
const moveWindowTicks = 3

// Move is a buffered player intent.
type Move struct {
	Dir   Direction
	Slide bool // modifier held: rotate the line instead of moving the cursor
}

// Debouncer holds at most one pending move and its age in ticks.
// The zero value is ready to use with the default window.
type Debouncer struct {
	// Window overrides the validity window in ticks; 0 means the default.
	Window int

	move    Move
	pending bool
	age     int
}

// Press records a new key edge, overwriting any unfired pending move and
// restarting the freshness timer.
func (d *Debouncer) Press(dir Direction, slide bool) {
	d.move = Move{Dir: dir, Slide: slide}
	d.pending = true
	d.age = 0
}

// Tick advances the freshness timer for a tick without a new key edge.
func (d *Debouncer) Tick() {
	if d.pending {
		d.age++
	}
}

// Take consumes the pending move. The move is cleared either way; ok is
// false when there was no pending move or it had gone stale.
func (d *Debouncer) Take() (m Move, ok bool) {
	if !d.pending {
		return Move{}, false
	}
	d.pending = false
	window := d.Window
	if window <= 0 {
		window = moveWindowTicks
	}
	if d.age > window {
		return Move{}, false
	}
	return d.move, true
}

// Pending reports whether a move is buffered (fresh or not).
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Reset drops any buffered move.
func (d *Debouncer) Reset() {
	d.pending = false
	d.age = 0
}
