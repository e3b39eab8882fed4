package tui

import (
	"fmt"

	"github.com/imjvdn/vision-snake/internal/core"
	"github.com/imjvdn/vision-snake/internal/game"
)

// Scene projects the playfield onto the terminal cell grid and draws the
// snake, the food and the HUD. The playfield keeps camera-style
// coordinates; terminal cells are a downsampled view of it.
type Scene struct {
	playW, playH float64
}

// NewScene creates a scene for a playfield of the given size.
func NewScene(playW, playH float64) *Scene {
	return &Scene{playW: playW, playH: playH}
}

// project maps a playfield point into the screen's inner region, leaving
// one cell on each side for the border.
func (sc *Scene) project(p core.Point, s *core.Screen) (int, int) {
	innerW := s.Width() - 2
	innerH := s.Height() - 2
	if innerW < 1 || innerH < 1 {
		return 0, 0
	}
	x := 1 + int(p.X/sc.playW*float64(innerW))
	y := 1 + int(p.Y/sc.playH*float64(innerH))
	return core.Clamp(x, 1, s.Width()-2), core.Clamp(y, 1, s.Height()-2)
}

// snakeColor returns the body color for the current score tier.
func snakeColor(score int) core.Color {
	switch {
	case score >= 200:
		return core.ColorBrightRed
	case score >= 120:
		return core.ColorOrange
	case score >= 50:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightGreen
	}
}

// HUD carries the per-tick status line values.
type HUD struct {
	Score    int
	Length   int
	Best     int
	FPS      float64
	Source   string
	Tracking bool
}

// DrawGame renders the playfield border, the snake and the food.
func (sc *Scene) DrawGame(s *core.Screen, snap game.Snapshot, food core.Point, pulse float64, hud HUD) {
	s.Clear()
	s.DrawBox(0, 0, s.Width(), s.Height(), core.ColorGray)

	sc.drawFood(s, food, pulse)
	sc.drawSnake(s, snap)
	sc.drawHUD(s, hud)
}

func (sc *Scene) drawSnake(s *core.Screen, snap game.Snapshot) {
	if len(snap.Body) == 0 {
		return
	}
	color := snakeColor(snap.Score)

	// Connect consecutive segments so a fast fingertip still reads as a
	// continuous body at terminal resolution.
	px, py := sc.project(snap.Body[0], s)
	for _, seg := range snap.Body[1:] {
		x, y := sc.project(seg, s)
		s.DrawLineSeg(px, py, x, y, '·', color)
		px, py = x, y
	}
	for _, seg := range snap.Body[1:] {
		x, y := sc.project(seg, s)
		s.SetCell(x, y, core.Cell{Rune: 'o', Color: color})
	}

	hx, hy := sc.project(snap.Body[0], s)
	s.SetCell(hx, hy, core.Cell{Rune: '@', Color: core.ColorBrightWhite})
}

func (sc *Scene) drawFood(s *core.Screen, food core.Point, pulse float64) {
	fx, fy := sc.project(food, s)
	s.SetCell(fx, fy, core.Cell{Rune: '*', Color: core.ColorBrightMagenta})
	// Pulse ring expands and contracts around the food.
	if pulse > 1.5 {
		s.DrawCircle(fx, fy, 1, '.', core.ColorMagenta, false)
	}
	label := "COLLECT"
	lx := fx - len(label)/2
	if lx < 1 {
		lx = 1
	}
	if lx+len(label) > s.Width()-1 {
		lx = s.Width() - 1 - len(label)
	}
	if fy > 1 {
		s.DrawText(lx, fy-1, label, core.ColorMagenta)
	}
}

func (sc *Scene) drawHUD(s *core.Screen, hud HUD) {
	left := fmt.Sprintf(" score %d  len %d  best %d ", hud.Score, hud.Length, hud.Best)
	s.DrawText(1, 0, left, core.ColorBrightWhite)

	track := "hand lost"
	trackColor := core.ColorBrightRed
	if hud.Tracking {
		track = "tracking"
		trackColor = core.ColorBrightGreen
	}
	right := fmt.Sprintf(" %s  %s  %.0f fps ", hud.Source, track, hud.FPS)
	x := s.Width() - 1 - len(right)
	if x > len(left) {
		s.DrawText(x, 0, right, trackColor)
	}
}

// drawHoldBar renders the open-palm hold progress above the bottom border.
func (sc *Scene) drawHoldBar(s *core.Screen, progress float64) {
	if progress <= 0 {
		return
	}
	width := s.Width() - 4
	if width < 4 {
		return
	}
	filled := int(progress * float64(width))
	y := s.Height() - 2
	s.DrawHLine(2, y, width, '-', core.ColorGray)
	s.DrawHLine(2, y, filled, '=', core.ColorBrightCyan)
	s.DrawText(2, y-1, "hold palm open to reset", core.ColorCyan)
}

// menuOptions are the start-screen entries the fingertip can hover over.
var menuOptions = []string{"start game  (enter)", "quit  (q, esc)"}

// menuBand is the playfield height of one menu entry's hover band.
const menuBand = 60.0

// hoveredOption maps a fingertip to the menu entry whose vertical band
// contains it, or -1. Bands are 60 playfield px tall with a 20px window
// around each entry's center, stacked around the playfield middle.
func (sc *Scene) hoveredOption(fingertip *core.Point) int {
	if fingertip == nil {
		return -1
	}
	startY := sc.playH/2 - float64(len(menuOptions))*menuBand/2
	for i := range menuOptions {
		optY := startY + float64(i)*menuBand
		if fingertip.Y >= optY-20 && fingertip.Y <= optY+20 {
			return i
		}
	}
	return -1
}

// DrawMenu renders the start screen. A tracked fingertip highlights the
// entry it hovers over.
func (sc *Scene) DrawMenu(s *core.Screen, best int, fingertip *core.Point) {
	s.Clear()
	s.DrawBox(0, 0, s.Width(), s.Height(), core.ColorGray)
	mid := s.Height() / 2
	s.DrawTextCentered(mid-5, "V I S I O N   S N A K E", core.ColorBrightGreen)
	s.DrawTextCentered(mid-3, "steer with your index finger", core.ColorWhite)

	hovered := sc.hoveredOption(fingertip)
	for i, opt := range menuOptions {
		if i == hovered {
			s.DrawTextCentered(mid-1+i, "> "+opt+" <", core.ColorBrightCyan)
		} else {
			s.DrawTextCentered(mid-1+i, opt, core.ColorWhite)
		}
	}

	if best > 0 {
		s.DrawTextCentered(mid+3, fmt.Sprintf("best score: %d", best), core.ColorBrightYellow)
	}
}

// DrawPaused renders the pause overlay on top of the frozen playfield.
func (sc *Scene) DrawPaused(s *core.Screen) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-1, "P A U S E D", core.ColorBrightYellow)
	s.DrawTextCentered(mid+1, "p: resume   m: menu   q: quit", core.ColorGray)
}

// DrawGameOver renders the end-of-run overlay.
func (sc *Scene) DrawGameOver(s *core.Screen, snap game.Snapshot, best int) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-2, "G A M E   O V E R", core.ColorBrightRed)
	line := fmt.Sprintf("score %d   peak length %d", snap.Score, snap.PeakLen)
	if best > 0 && snap.Score >= best {
		line += "   new best!"
	}
	s.DrawTextCentered(mid, line, core.ColorBrightWhite)
	s.DrawTextCentered(mid+2, "r: play again   m: menu   q: quit", core.ColorGray)
}
