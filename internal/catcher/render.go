package catcher

import (
	"fmt"

	"maxcatch/internal/core"
)

// Render draws the current session state into the screen buffer. The fixed
// 800×600 field is projected onto whatever cell grid the terminal offers;
// sprites keep their cell dimensions and are placed by their projected
// centers.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, b := range g.field.Active() {
		quarters := b.rotation / 90
		art := b.sprite.Rotated(quarters)
		drawArt(dst, art, b.x, b.y, b.color)
	}

	sp := g.player.Sprite()
	drawArt(dst, sp.Art, g.player.x, g.player.y, core.ColorBrightWhite)

	g.drawHUD(dst)

	if g.state == StatePaused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.state == StateGameOver {
		drawCenteredMessage(dst, "GAME OVER!",
			fmt.Sprintf("Score: %d  |  Press any key", g.player.score))
	}
}

// drawArt places rune art centered on a field position, skipping transparent
// cells so the scene shows through.
func drawArt(dst *core.Screen, art [][]rune, fx, fy float64, c core.Color) {
	cx := projectX(dst, fx)
	cy := projectY(dst, fy)
	h := len(art)
	if h == 0 {
		return
	}
	w := len(art[0])
	left := cx - w/2
	top := cy - h/2
	for row, line := range art {
		for col, r := range line {
			if r == ' ' {
				continue
			}
			dst.SetColor(left+col, top+row, r, c)
		}
	}
}

// projectX maps a field x coordinate to a screen column.
func projectX(dst *core.Screen, fx float64) int {
	return int(fx * float64(dst.Width()) / core.FieldW)
}

// projectY maps a field y coordinate to a screen row.
func projectY(dst *core.Screen, fy float64) int {
	return int(fy * float64(dst.Height()) / core.FieldH)
}

// drawHUD shows the running score and miss budget in the top-left corner as
// " score (misses/allowed)". Infinite mode has no budget to show.
func (g *Game) drawHUD(dst *core.Screen) {
	budget := fmt.Sprintf("%d", g.diff.MissesAllowed(g.player.score))
	if g.runtime.Infinite {
		budget = "--"
	}
	hud := fmt.Sprintf(" %06d  (%d/%s)", g.player.score, g.player.misses, budget)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
