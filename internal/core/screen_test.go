package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width() = %d, want 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, want 5", s.Height())
	}

	// All cells should start as spaces
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("cell (%d,%d) = %q, want space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if s.Get(3, 2) != '#' {
		t.Errorf("Get(3,2) = %q, want '#'", s.Get(3, 2))
	}

	// Out-of-bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestSetCellColor(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetCell(1, 1, '@', ColorYellow)
	cell := s.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorYellow {
		t.Errorf("GetCell(1,1) = %+v, want {'@' yellow}", cell)
	}

	// Plain Set resets the color
	s.Set(1, 1, '.')
	if got := s.GetCell(1, 1).Color; got != ColorDefault {
		t.Errorf("color after Set = %d, want default", got)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q, want %q", got, "  hello")
	}

	// Clipped text must not wrap
	s.DrawText(8, 0, "abc")
	if s.Get(8, 0) != 'a' || s.Get(9, 0) != 'b' {
		t.Error("clipped text should keep in-bounds characters")
	}
	if s.Get(0, 1) == 'c' {
		t.Error("clipped text must not wrap to the next row")
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, 'x')

	s.Resize(8, 6)
	if s.Get(2, 2) != 'x' {
		t.Error("resize should preserve content that stays in bounds")
	}

	s.Resize(2, 2)
	if s.Get(1, 1) != ' ' {
		t.Error("shrunk screen should still be readable")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(Rect{X: 0, Y: 0, W: 6, H: 4})

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("box corners not drawn")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if s.String() != want {
		t.Errorf("String() = %q, want %q", s.String(), want)
	}
}
