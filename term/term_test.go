package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/flavioheleno/braille"
)

func newTestScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 10)
	return screen
}

func TestDraw(t *testing.T) {
	screen := newTestScreen(t)

	c := braille.NewCanvasWithSize(7, 10) // 4x3 cells
	if err := c.Set(0, 0); err != nil {
		t.Fatalf("Set(0, 0) = %v", err)
	}
	if err := c.Set(6, 9); err != nil {
		t.Fatalf("Set(6, 9) = %v", err)
	}

	Draw(screen, 2, 1, c, tcell.StyleDefault)

	tests := []struct {
		x, y int
		want rune
	}{
		{2, 1, '⠁'}, // top left cell
		{3, 1, '⠀'},
		{5, 3, '⠂'}, // bottom right cell
		{4, 2, '⠀'},
	}
	for _, tt := range tests {
		got, _, _, _ := screen.GetContent(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("screen content at (%d, %d) = %U, want %U", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawEmptyCanvas(t *testing.T) {
	screen := newTestScreen(t)

	before, _, _, _ := screen.GetContent(0, 0)
	Draw(screen, 0, 0, braille.NewCanvas(), tcell.StyleDefault)
	after, _, _, _ := screen.GetContent(0, 0)
	if before != after {
		t.Errorf("drawing an empty canvas changed the screen: %U -> %U", before, after)
	}
}

func TestPointSize(t *testing.T) {
	tests := []struct {
		cols, rows int
		w, h       int
	}{
		{80, 24, 160, 96},
		{1, 1, 2, 4},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		w, h := PointSize(tt.cols, tt.rows)
		if w != tt.w || h != tt.h {
			t.Errorf("PointSize(%d, %d) = (%d, %d), want (%d, %d)",
				tt.cols, tt.rows, w, h, tt.w, tt.h)
		}
	}
}
