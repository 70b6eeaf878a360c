package tui

import (
	"fmt"
	"math"

	"github.com/ardentis/runeway/internal/core"
	"github.com/ardentis/runeway/internal/sim"
)

// Object glyphs for the top-down corridor view.
const (
	GlyphPlayer   = '@'
	GlyphShadow   = '.'
	GlyphObstacle = '▲'
	GlyphGem      = '◆'
	GlyphHeart    = '♥'
	GlyphStar     = '✦'
	GlyphAlien    = 'Ψ'
	GlyphMissile  = '•'
	GlyphBurst    = '*'
	GlyphEdge     = '│'
)

// draw renders the full frame into the screen buffer.
func (m Model) draw() {
	s := m.screen
	s.Clear()

	st := m.world.State()
	if st.Status == sim.StatusMenu {
		m.drawMenu()
		return
	}

	m.drawCorridor()
	m.drawHUD()

	switch st.Status {
	case sim.StatusGameOver:
		m.drawCenteredMessage("GAME OVER",
			fmt.Sprintf("Score: %d  |  Press Enter to restart", st.Score))
	case sim.StatusVictory:
		m.drawCenteredMessage("VICTORY",
			fmt.Sprintf("Score: %d  |  Press Enter to run again", st.Score))
	}
}

// drawMenu shows the title screen.
func (m Model) drawMenu() {
	s := m.screen
	h := s.Height()

	title := "R U N E W A Y"
	s.DrawTextCentered(h/2-3, title)
	s.DrawTextCentered(h/2-1, "Collect the word. Dodge the rest.")
	s.DrawTextCentered(h/2+1, "A/D or arrows to switch lanes, Space to jump")
	s.DrawTextCentered(h/2+3, "Press Enter to start, Q to quit")
}

// corridor geometry: the horizon sits just under the HUD, the player
// near the bottom. Z maps linearly onto rows, lane X onto columns.
func (m Model) corridorGeometry() (top, bottom int, zMin, zMax float64) {
	top = 1
	bottom = m.screen.Height() - 2
	zMin = -m.gameCfg.Spawn.Horizon
	zMax = 4.0
	return top, bottom, zMin, zMax
}

// screenY projects a scroll coordinate onto a row.
func (m Model) screenY(z float64) int {
	top, bottom, zMin, zMax := m.corridorGeometry()
	rows := bottom - top
	if rows <= 0 {
		return top
	}
	y := top + int(float64(rows)*(z-zMin)/(zMax-zMin))
	return core.Clamp(y, top, bottom)
}

// screenX projects a lane coordinate onto a column.
func (m Model) screenX(x float64) int {
	const laneCols = 4 // Screen columns per lane
	center := m.screen.Width() / 2
	return center + int(math.Round(x/m.gameCfg.Physics.LaneWidth*laneCols))
}

// drawCorridor renders lane edges, every active object, the bursts and
// the player.
func (m Model) drawCorridor() {
	s := m.screen
	st := m.world.State()
	top, bottom, _, _ := m.corridorGeometry()

	// Corridor edges just outside the outermost lanes.
	half := float64(st.LaneCount) / 2.0
	leftX := m.screenX(-half * m.gameCfg.Physics.LaneWidth)
	rightX := m.screenX(half * m.gameCfg.Physics.LaneWidth)
	for y := top; y <= bottom; y++ {
		s.SetCell(leftX, y, GlyphEdge, core.ColorGray)
		s.SetCell(rightX, y, GlyphEdge, core.ColorGray)
	}

	for _, o := range m.world.Objects() {
		if !o.Active {
			continue
		}
		x := m.screenX(o.Pos.X)
		y := m.screenY(o.Pos.Z)
		s.SetCell(x, y, glyphFor(o), o.Color)
	}

	for _, b := range m.bursts {
		glyph := GlyphBurst
		if b.ticks%2 == 0 {
			glyph = '·'
		}
		s.SetCell(m.screenX(b.pos.X), m.screenY(b.pos.Z), glyph, b.color)
	}

	m.drawPlayer()
}

// drawPlayer renders the player marker; airborne shows a ground shadow.
func (m Model) drawPlayer() {
	s := m.screen
	pos := m.plr.Position()
	x := m.screenX(pos.X)
	y := m.screenY(0)

	color := core.ColorBrightCyan
	if m.flashTicks > 0 {
		color = core.ColorBrightRed
	}
	if m.world.ImmortalRemaining() > 0 {
		color = core.ColorBrightYellow
	}

	if m.plr.Grounded() {
		s.SetCell(x, y, GlyphPlayer, color)
		return
	}
	s.SetCell(x, y-1, GlyphPlayer, color)
	s.SetCell(x, y, GlyphShadow, core.ColorGray)
}

// glyphFor maps an object to its display rune.
func glyphFor(o *sim.Object) rune {
	switch o.Kind {
	case sim.KindObstacle:
		return GlyphObstacle
	case sim.KindGem:
		return GlyphGem
	case sim.KindLetter:
		return o.Glyph
	case sim.KindImmortality:
		return GlyphStar
	case sim.KindHeart:
		return GlyphHeart
	case sim.KindAlien:
		return GlyphAlien
	case sim.KindMissile:
		return GlyphMissile
	default:
		return '?'
	}
}

// drawHUD renders the top status row and the bottom hint row.
func (m Model) drawHUD() {
	s := m.screen
	st := m.world.State()

	left := fmt.Sprintf(" Score %d  ", st.Score)
	s.DrawText(0, 0, left)

	x := len(left)
	for i := 0; i < st.MaxLives; i++ {
		if i < st.Lives {
			s.SetCell(x+i, 0, GlyphHeart, core.ColorBrightRed)
		} else {
			s.SetCell(x+i, 0, '·', core.ColorGray)
		}
	}
	x += st.MaxLives

	mid := fmt.Sprintf("  Lv %d  Spd %.0f  ", st.Level, st.Speed)
	s.DrawText(x, 0, mid)
	x += len(mid)

	// Word progress: collected slots show bright in their own color.
	target := sim.TargetForLevel(st.Level)
	for i := 0; i < target.Len(); i++ {
		if st.Collected[i] {
			s.SetCell(x+i, 0, target.Glyph(i), target.Color(i))
		} else {
			s.SetCell(x+i, 0, target.Glyph(i), core.ColorGray)
		}
	}
	x += target.Len()

	if remain := m.world.ImmortalRemaining(); remain > 0 {
		s.DrawTextColored(x+2, 0, fmt.Sprintf("%c %.1fs", GlyphStar, remain), core.ColorBrightYellow)
	}

	hint := " A/D lanes · Space jump · Q quit "
	s.DrawText((s.Width()-len([]rune(hint)))/2, s.Height()-1, hint)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (m Model) drawCenteredMessage(title, subtitle string) {
	s := m.screen
	w := s.Width()
	h := s.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	s.FillRect(boxX, boxY, boxW, boxH, ' ')
	s.DrawBox(boxX, boxY, boxW, boxH)

	s.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	s.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// formatDistance renders a traveled distance for HUD/scoreboard use.
func formatDistance(d float64) string {
	if d >= 1000 {
		return fmt.Sprintf("%.1fk", d/1000)
	}
	return fmt.Sprintf("%.0f", d)
}
