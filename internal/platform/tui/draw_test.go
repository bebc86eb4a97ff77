package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

func countColor(s *core.Screen, c core.Color) int {
	n := 0
	for y := range s.Height() {
		for x := range s.Width() {
			if s.GetCell(x, y).Color == c {
				n++
			}
		}
	}
	return n
}

func TestDrawInitialFrame(t *testing.T) {
	cfg := engine.DefaultConfig()
	eng := engine.New(cfg, fixedRand(0.5))
	s := core.NewScreen(80, 23)

	layout := Draw(s, eng.Snapshot(), cfg)

	if !strings.Contains(s.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", s.Row(0))
	}
	if !strings.Contains(s.Row(0), "press space") {
		t.Errorf("HUD row = %q, expected start hint", s.Row(0))
	}
	if countColor(s, core.ColorActor) == 0 {
		t.Error("actor not drawn")
	}
	// The obstacle starts right of the arena.
	if n := countColor(s, core.ColorObstacle); n != 0 {
		t.Errorf("obstacle drawn in %d cells, expected none", n)
	}
	if layout.Restart.W != 0 {
		t.Error("restart control shown before game over")
	}
	if layout.Arena.Origin.W == 0 || layout.Arena.Origin.H == 0 {
		t.Errorf("arena viewport is empty: %+v", layout.Arena.Origin)
	}
}

func TestDrawObstacleLeavesGap(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.ObstacleStartX = 200
	eng := engine.New(cfg, fixedRand(0.5))
	s := core.NewScreen(80, 23)

	layout := Draw(s, eng.Snapshot(), cfg)
	vp := layout.Arena
	col := vp.Col(220)

	// Gap spans arena pixels 200..400.
	if c := s.GetCell(col, vp.Row(100)).Color; c != core.ColorObstacle {
		t.Errorf("cell above the gap has color %v, expected obstacle", c)
	}
	if c := s.GetCell(col, vp.Row(300)).Color; c == core.ColorObstacle || c == core.ColorObstacleCap {
		t.Errorf("cell inside the gap has color %v", c)
	}
	if c := s.GetCell(col, vp.Row(500)).Color; c != core.ColorObstacle {
		t.Errorf("cell below the gap has color %v, expected obstacle", c)
	}
}

func TestDrawGameOver(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.ObstacleStartX = 30
	cfg.ActorStartY = 500
	eng := engine.New(cfg, fixedRand(0.5))
	eng.Jump() // 430: below the gap, inside the slot

	if eng.State() != engine.GameOver {
		t.Fatalf("State = %v, expected game over", eng.State())
	}

	s := core.NewScreen(80, 23)
	layout := Draw(s, eng.Snapshot(), cfg)

	if layout.Restart.W != len(restartLabel) {
		t.Fatalf("restart control width = %d, expected %d", layout.Restart.W, len(restartLabel))
	}
	if !strings.Contains(s.Row(layout.Restart.Y), restartLabel) {
		t.Errorf("row %d = %q, expected restart label", layout.Restart.Y, s.Row(layout.Restart.Y))
	}
	if !strings.Contains(s.String(), "GAME OVER") {
		t.Error("game-over panel not drawn")
	}
	if countColor(s, core.ColorExplosion) == 0 {
		t.Error("explosion not drawn")
	}
	if n := countColor(s, core.ColorActor); n != 0 {
		t.Errorf("actor drawn in %d cells at game over, expected none", n)
	}
}

func TestDrawTinyScreen(t *testing.T) {
	cfg := engine.DefaultConfig()
	eng := engine.New(cfg, fixedRand(0.5))

	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		s := core.NewScreen(size[0], size[1])
		Draw(s, eng.Snapshot(), cfg)
	}
}

func TestClip(t *testing.T) {
	bounds := core.NewRect(10, 10, 20, 20)
	tests := []struct {
		name     string
		r        core.Rect
		expected core.Rect
	}{
		{"inside", core.NewRect(12, 12, 5, 5), core.NewRect(12, 12, 5, 5)},
		{"overlap left", core.NewRect(5, 12, 10, 5), core.NewRect(10, 12, 5, 5)},
		{"outside", core.NewRect(40, 40, 5, 5), core.Rect{}},
		{"touching right edge", core.NewRect(30, 12, 5, 5), core.Rect{}},
		{"covering", core.NewRect(0, 0, 50, 50), bounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clip(tt.r, bounds); got != tt.expected {
				t.Errorf("clip() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab", core.ColorHUD)
	s.DrawText(0, 1, "cd", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[1], "cd") {
		t.Errorf("RenderScreen() = %q", out)
	}
}

func TestSummaryTable(t *testing.T) {
	out := SummaryTable([]RunSummary{
		{Run: 1, Score: 3, Duration: 2 * time.Second},
		{Run: 2, Score: 7, Duration: 5 * time.Second},
	})

	if !strings.Contains(out, "Score") {
		t.Errorf("table missing header:\n%s", out)
	}
	if !strings.Contains(out, "best: 7") {
		t.Errorf("table missing best score:\n%s", out)
	}
}
