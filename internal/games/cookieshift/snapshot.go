package cookieshift

// GameStateType represents the current game phase.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StateFilling     GameStateType = "filling"
	StatePausedSmall GameStateType = "paused_small_window"
)

// EmptyCell marks an unoccupied board cell in a snapshot.
const EmptyCell int8 = -1

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Board   [BoardSize][BoardSize]int8 // piece values, EmptyCell for vacant
	CursorX int
	CursorY int
	Clears  int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		CursorX: g.cursor.X,
		CursorY: g.cursor.Y,
		Clears:  g.clears,
		State:   StatePlaying,
	}

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p, ok := g.board.At(x, y); ok {
				snap.Board[y][x] = int8(p)
			} else {
				snap.Board[y][x] = EmptyCell
			}
		}
	}

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.board.HasEmpty():
		snap.State = StateFilling
	case g.anim.animating():
		snap.State = StateAnimating
	}

	return snap
}
