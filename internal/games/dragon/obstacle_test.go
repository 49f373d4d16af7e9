package dragon

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func TestNewObstacleSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := config.DefaultConfig().Obstacles

	prev := cfg.MaxSize
	for score := 0; score < 40; score++ {
		o := NewObstacle(80, score, rng, cfg)
		want := max(2, 20-score)
		if o.Size != want {
			t.Errorf("score %d: size = %d, expected %d", score, o.Size, want)
		}
		if o.Size > prev {
			t.Errorf("score %d: size grew from %d to %d", score, prev, o.Size)
		}
		if o.Size < 2 {
			t.Errorf("score %d: size %d below floor", score, o.Size)
		}
		prev = o.Size
	}
}

func TestNewObstacleGapRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := config.DefaultConfig().Obstacles

	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		o := NewObstacle(80, 0, rng, cfg)
		if o.GapY < 10 || o.GapY >= 40 {
			t.Fatalf("gap_y = %d, expected within [10, 40)", o.GapY)
		}
		if o.X != 80 {
			t.Fatalf("x = %d, expected 80", o.X)
		}
		seen[o.GapY] = true
	}

	if !seen[10] || !seen[39] {
		t.Error("both ends of the gap range should be reachable")
	}
	if len(seen) != 30 {
		t.Errorf("saw %d distinct gap rows, expected 30", len(seen))
	}
}

func TestObstacleHits(t *testing.T) {
	// Gap rows 15..35 are passable
	o := &Obstacle{X: 10, GapY: 25, Size: 20}

	tests := []struct {
		name     string
		x        int
		y        float32
		expected bool
	}{
		{"above gap", 10, 14.9, true},
		{"top boundary", 10, 15, false},
		{"center", 10, 25, false},
		{"bottom boundary", 10, 35.7, false},
		{"below gap", 10, 36, true},
		{"top of screen", 10, 0, true},
		{"column before", 9, 0, false},
		{"column after", 11, 49, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(tc.x, 0, defaultPhysics())
			p.Y = tc.y
			if got := o.Hits(p); got != tc.expected {
				t.Errorf("Hits() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestObstacleHitsOddSize(t *testing.T) {
	// Size 3 has a half size of 1: rows 19..21 are passable
	o := &Obstacle{X: 0, GapY: 20, Size: 3}
	p := NewPlayer(0, 0, defaultPhysics())

	for row, hit := range map[float32]bool{18: true, 19: false, 20: false, 21: false, 22: true} {
		p.Y = row
		if got := o.Hits(p); got != hit {
			t.Errorf("row %v: Hits() = %v, expected %v", row, got, hit)
		}
	}
}

func TestObstacleRender(t *testing.T) {
	screen := core.NewScreen(80, 50)
	f := core.NewFrame(screen, 0, core.KeyNone)

	o := &Obstacle{X: 20, GapY: 25, Size: 20}
	o.Render(f, 5)

	const col = 15 // 20 - 5
	for y := 0; y < 50; y++ {
		cell := screen.GetCell(col, y)
		wall := y < 15 || y >= 35
		if wall {
			want := core.Cell{Rune: ObstacleChar, FG: core.ColorRed, BG: core.ColorBlack}
			if cell != want {
				t.Errorf("row %d: cell = %+v, expected wall", y, cell)
			}
		} else if cell.Rune != ' ' {
			t.Errorf("row %d: cell = %q, expected gap", y, cell.Rune)
		}
	}

	// Nothing else on the screen
	if screen.Get(col-1, 0) != ' ' || screen.Get(col+1, 0) != ' ' {
		t.Error("obstacle should occupy a single column")
	}
}

func TestObstacleRenderOffScreen(t *testing.T) {
	screen := core.NewScreen(80, 50)
	f := core.NewFrame(screen, 0, core.KeyNone)

	// Freshly spawned obstacles sit just past the right edge
	o := &Obstacle{X: 85, GapY: 25, Size: 20}
	o.Render(f, 5)

	for y := 0; y < 50; y++ {
		if row := screen.Row(y); row != strings.Repeat(" ", 80) {
			t.Fatalf("row %d should be empty, got %q", y, row)
		}
	}
}
