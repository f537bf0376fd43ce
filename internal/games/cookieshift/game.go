// Package cookieshift implements the Cookie Shift puzzle: a 5x5 board of
// cookie pieces the player rotates row- and column-wise to line up matching
// pieces and rack up clears. Game logic is pure and deterministic; the
// platform layer supplies input, timing and rendering.
package cookieshift

import (
	"math/rand"

	"github.com/vovakirdan/tui-cookieshift/internal/config"
	"github.com/vovakirdan/tui-cookieshift/internal/core"
	"github.com/vovakirdan/tui-cookieshift/internal/registry"
)

// Package-level variables for config
var selectedConfigPath string

// SetConfigPath sets a custom config file path used on the next Reset.
func SetConfigPath(path string) {
	selectedConfigPath = path
}

// Game implements the Cookie Shift puzzle.
type Game struct {
	rng  *rand.Rand
	tick uint64
	cfg  config.CookieShiftConfig

	board  Board
	cursor Cursor
	deb    Debouncer
	anim   animator

	clears int // accumulated clear count, shown as the score

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a new Cookie Shift game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("cookieshift", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "cookieshift"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Cookie Shift"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadCookieShift(selectedConfigPath)
	if err != nil {
		gameCfg = config.DefaultCookieShiftConfig()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.clears = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false

	g.board.ClearAll()
	g.cursor = Cursor{X: 2, Y: 2}
	g.deb = Debouncer{Window: g.cfg.Timing.InputWindowFrames}
	g.anim.reset()

	// Initial populate.
	g.refill()

	g.checkScreenSize()
}

// Resize adopts a new screen size without restarting the session.
// The board and score survive; only the too-small guard is re-evaluated.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := 30
	minH := 16
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
//
// Fixed per-tick order: input capture, animation advance, event-driven clear
// scoring, reset handling, cursor/slide commit, board refill. Slides and
// buffered input are only consumed while no animation is in flight and the
// board is fully occupied.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Input capture: a key edge buffers a move, otherwise the buffered
	// move ages toward its freshness window.
	if dir, slide, ok := moveAction(in); ok {
		g.deb.Press(dir, slide)
	} else {
		g.deb.Tick()
	}

	g.anim.advance()

	// Clear scoring happens no earlier than the tick the eject animation
	// finishes. The occupancy guard covers a reset racing the event.
	for _, tag := range g.anim.drain() {
		if tag == tagSlideExit {
			g.anim.extra.Visible = false
			if g.board.IsFull() {
				g.clears += CountClears(g.board.Pieces())
			}
		}
	}

	if in.Has(core.ActionReset) {
		g.board.ClearAll()
		for y := 0; y < BoardSize; y++ {
			for x := 0; x < BoardSize; x++ {
				g.anim.cellSprite(x, y).Visible = false
			}
		}
	}

	// Commit the buffered move. While a slide animation is in flight or
	// cells are empty this is skipped entirely, which is the backpressure
	// that prevents overlapping commits; the buffered move keeps aging
	// and goes stale instead.
	if !g.anim.animating() && g.board.IsFull() {
		if mv, ok := g.deb.Take(); ok {
			g.apply(mv)
		}
	}

	if g.board.HasEmpty() {
		g.refill()
	}

	return core.StepResult{State: g.State()}
}

// moveAction extracts a buffered-move key edge from the input frame.
func moveAction(in core.InputFrame) (dir Direction, slide, ok bool) {
	switch {
	case in.Has(core.ActionSlideUp):
		return DirUp, true, true
	case in.Has(core.ActionSlideDown):
		return DirDown, true, true
	case in.Has(core.ActionSlideLeft):
		return DirLeft, true, true
	case in.Has(core.ActionSlideRight):
		return DirRight, true, true
	case in.Has(core.ActionUp):
		return DirUp, false, true
	case in.Has(core.ActionDown):
		return DirDown, false, true
	case in.Has(core.ActionLeft):
		return DirLeft, false, true
	case in.Has(core.ActionRight):
		return DirRight, false, true
	}
	return 0, false, false
}

// apply commits a consumed move: either a plain cursor step or a line slide.
func (g *Game) apply(mv Move) {
	if !mv.Slide {
		g.cursor.Move(mv.Dir)
		return
	}

	res := g.board.Slide(g.cursor, mv.Dir)
	dur := g.cfg.Timing.SlideFrames

	// Each piece slides in from its upstream neighbor cell.
	for i, c := range res.Cells {
		sp := g.anim.cellSprite(c[0], c[1])
		sp.SetIndex(res.Line[i].SpriteIndex())
		sp.Visible = true
		sp.Animate(
			float64(c[0]-res.DX), float64(c[1]-res.DY),
			float64(c[0]), float64(c[1]),
			dur, 0,
		)
	}

	// The extra sprite makes the wrapping piece appear to slice off the
	// board edge; its completion event triggers clear scoring.
	g.anim.extra.Visible = true
	g.anim.extra.SetIndex(res.Ejected.SpriteIndex())
	g.anim.extra.Animate(
		float64(res.ExitX), float64(res.ExitY),
		float64(res.ExitX+res.DX), float64(res.ExitY+res.DY),
		dur, tagSlideExit,
	)
}

// refill populates every empty cell and pushes the visual updates.
func (g *Game) refill() {
	for _, f := range g.board.Fill(g.rng) {
		sp := g.anim.cellSprite(f.X, f.Y)
		sp.SetIndex(f.Piece.SpriteIndex())
		sp.PlaceAt(float64(f.X), float64(f.Y))
		sp.Visible = true
	}
}

// Clears returns the accumulated clear count.
func (g *Game) Clears() int {
	return g.clears
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.clears,
		GameOver: false, // endless: the session ends when the player quits
		Paused:   g.paused || g.tooSmall,
	}
}
