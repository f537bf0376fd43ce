package cookieshift

// Animation layer. Sprites are the presentation handles of the board: the
// grid owns piece identities, sprites own displayed glyph index and
// position (in fractional cell units). Grid mutations reach the sprites
// only through the narrow SetIndex/Animate commands, mirroring how the
// renderer is a collaborator rather than part of the core.

// Completion tags delivered when a tween finishes.
const (
	// tagSlideExit marks the ejected piece finishing its slide off the
	// board. Scoring waits for this event.
	tagSlideExit = 1
)

// Tween is a fixed-duration linear position animation.
type Tween struct {
	FromX, FromY float64
	ToX, ToY     float64
	Elapsed      int
	Duration     int
	Tag          int // 0 = no completion event
}

// Done reports whether the tween has reached its end.
func (t *Tween) Done() bool {
	return t.Elapsed >= t.Duration
}

// Pos returns the current interpolated position.
func (t *Tween) Pos() (x, y float64) {
	if t.Duration <= 0 || t.Done() {
		return t.ToX, t.ToY
	}
	f := float64(t.Elapsed) / float64(t.Duration)
	x = t.FromX + (t.ToX-t.FromX)*f
	y = t.FromY + (t.ToY-t.FromY)*f
	return x, y
}

// Sprite is the visual handle for one piece.
type Sprite struct {
	Index   int // glyph table index; -1 hides the sprite
	X, Y    float64
	Visible bool
	tween   *Tween
}

// SetIndex updates the displayed glyph.
func (s *Sprite) SetIndex(i int) {
	s.Index = i
}

// PlaceAt pins the sprite to a position with no animation.
func (s *Sprite) PlaceAt(x, y float64) {
	s.X, s.Y = x, y
	s.tween = nil
}

// Animate starts a linear move; any running tween is replaced.
func (s *Sprite) Animate(fromX, fromY, toX, toY float64, duration, tag int) {
	s.X, s.Y = fromX, fromY
	s.tween = &Tween{
		FromX: fromX, FromY: fromY,
		ToX: toX, ToY: toY,
		Duration: duration,
		Tag:      tag,
	}
}

// Animating reports whether the sprite's current tween is still in flight.
func (s *Sprite) Animating() bool {
	return s.tween != nil && !s.tween.Done()
}

// advance moves the tween one tick forward; a finishing tween with a tag
// appends it to completed.
func (s *Sprite) advance(completed *[]int) {
	if s.tween == nil || s.tween.Done() {
		return
	}
	s.tween.Elapsed++
	s.X, s.Y = s.tween.Pos()
	if s.tween.Done() && s.tween.Tag != 0 {
		*completed = append(*completed, s.tween.Tag)
	}
}

// animator owns all sprites and the completion-event queue.
type animator struct {
	sprites   [BoardSize][BoardSize]Sprite
	extra     Sprite // the transient ejected piece
	completed []int
}

// reset pins every cell sprite to its board position and hides the extra.
func (a *animator) reset() {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			s := &a.sprites[y][x]
			s.PlaceAt(float64(x), float64(y))
			s.Index = -1
			s.Visible = false
		}
	}
	a.extra = Sprite{Index: -1}
	a.completed = nil
}

// cellSprite returns the handle for a board cell.
func (a *animator) cellSprite(x, y int) *Sprite {
	return &a.sprites[y][x]
}

// animating reports whether any sprite's animation has not completed.
// Slides and buffered input are held back while this is true.
func (a *animator) animating() bool {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if a.sprites[y][x].Animating() {
				return true
			}
		}
	}
	return a.extra.Animating()
}

// advance ticks every tween once and queues completion events.
func (a *animator) advance() {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			a.sprites[y][x].advance(&a.completed)
		}
	}
	a.extra.advance(&a.completed)
}

// drain returns and clears the queued completion events. Called exactly
// once per tick by the scoring step, so an event takes effect no earlier
// than the tick its animation finished.
func (a *animator) drain() []int {
	events := a.completed
	a.completed = nil
	return events
}
