package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %d, want 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, want 8", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 3, 3)

	inside := [][2]int{{1, 1}, {3, 3}, {2, 2}}
	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d,%d) = false, want true", p[0], p[1])
		}
	}

	outside := [][2]int{{0, 1}, {4, 1}, {1, 4}}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d,%d) = true, want false", p[0], p[1])
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should pass through in-range values")
	}
	if Clamp(-3, 0, 10) != 0 {
		t.Error("Clamp should raise values below min")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should lower values above max")
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{-1, 5, 4},
		{-6, 5, 4},
		{7, 5, 2},
	}

	for _, tt := range tests {
		if got := Mod(tt.a, tt.n); got != tt.want {
			t.Errorf("Mod(%d, %d) = %d, want %d", tt.a, tt.n, got, tt.want)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(2, 3) != 2 || Min(3, 2) != 2 {
		t.Error("Min broken")
	}
	if Max(2, 3) != 3 || Max(3, 2) != 3 {
		t.Error("Max broken")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs broken")
	}
}
