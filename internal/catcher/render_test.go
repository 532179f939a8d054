package catcher

import (
	"strings"
	"testing"

	"maxcatch/internal/core"
)

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, 3, false)
	s := core.NewScreen(80, 24)

	g.Render(s)
	if got := s.Row(0); !strings.Contains(got, "000000  (0/30)") {
		t.Errorf("HUD row = %q, want score and miss budget", got)
	}

	g.player.score = 1234
	g.player.misses = 2
	g.Render(s)
	if got := s.Row(0); !strings.Contains(got, "001234  (2/32)") {
		t.Errorf("HUD row = %q, want updated score and budget", got)
	}
}

func TestRenderHUDInfinite(t *testing.T) {
	g := newTestGame(t, 3, true)
	s := core.NewScreen(80, 24)

	g.Render(s)
	if got := s.Row(0); !strings.Contains(got, "(0/--)") {
		t.Errorf("HUD row = %q, want -- budget in infinite mode", got)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, 3, false)
	s := core.NewScreen(80, 24)

	in := core.NewInputFrame()
	in.PushKeyDown(core.KeyPause)
	g.Step(in)
	g.Render(s)
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("paused session does not show the pause overlay")
	}

	in.Clear()
	in.PushQuit()
	g.Step(in)
	g.Render(s)
	if !strings.Contains(s.String(), "GAME OVER!") {
		t.Error("ended session does not show the game over overlay")
	}
}

func TestRenderPlayerVisible(t *testing.T) {
	g := newTestGame(t, 3, false)
	s := core.NewScreen(80, 24)

	g.Render(s)
	// The player spawns centered at two-thirds height; its art must land there
	cx := 40
	cy := 16
	found := false
	for dy := -2; dy <= 2 && !found; dy++ {
		for dx := -4; dx <= 4; dx++ {
			if s.Get(cx+dx, cy+dy) != ' ' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("player sprite not drawn near its spawn cell")
	}
}
