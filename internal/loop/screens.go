package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/asteroid-avoidance/internal/draw"
	"github.com/tomz197/asteroid-avoidance/internal/loop/config"
	"github.com/tomz197/asteroid-avoidance/internal/object"
	"github.com/tomz197/asteroid-avoidance/internal/physics"
)

// HUD layout in field units
const (
	lineSpacing   = 40
	lifeIconSize  = 30
	lifeIconGap   = 40
	shieldRadius  = 40
	rapidRadius   = 35
	ringWidth     = 2
	noticeY       = 100
	highScoreX    = config.FieldWidth - 200
	lifeIconsTop  = 60
	lifeIconRight = config.FieldWidth - 60
)

var (
	titleStyle  = draw.TextStyle{Size: draw.TextLarge, Color: draw.ColorWhite, Align: draw.AlignCenter}
	centerStyle = draw.TextStyle{Size: draw.TextMedium, Color: draw.ColorWhite, Align: draw.AlignCenter}
	hudStyle    = draw.TextStyle{Size: draw.TextMedium, Color: draw.ColorWhite}
	noticeStyle = draw.TextStyle{Size: draw.TextMedium, Color: draw.ColorGreen, Align: draw.AlignCenter}
	warnStyle   = draw.TextStyle{Size: draw.TextSmall, Color: draw.ColorRed, Align: draw.AlignCenter}
)

var menuOptions = []string{
	"PRESS ENTER TO START",
	"1 - EASY",
	"2 - NORMAL",
	"3 - HARD",
	"4 - GAME CONTROLS",
}

var controlLines = []string{
	"ARROW KEYS - MOVE SPACESHIP",
	"SPACE - SHOOT",
	"P - PAUSE GAME",
	"R - RESTART (WHEN GAME OVER)",
	"Q - QUIT",
}

// Draw issues the draw calls for the current phase. The caller brackets it
// with Begin and End.
func (s *State) Draw(r Renderer) {
	switch s.Phase {
	case PhaseMainMenu:
		if s.ShowControls {
			drawControls(r)
		} else {
			s.drawMenu(r)
		}
	default:
		s.drawGame(r)
	}
}

// drawMenu draws the title screen.
func (s *State) drawMenu(r Renderer) {
	const w, h = config.FieldWidth, config.FieldHeight
	r.Text("ASTEROID AVOIDANCE", w/2, h/4, titleStyle)

	for i, option := range menuOptions {
		r.Text(option, w/2, float64(h/2-80+i*lineSpacing), centerStyle)
	}

	r.Text(fmt.Sprintf("HIGH SCORE: %d", s.HighScore), w/2, h*3/4, centerStyle)
	r.Text("CURRENT DIFFICULTY: "+strings.ToUpper(s.Difficulty.String()), w/2, h*3/4+lineSpacing, centerStyle)
}

// drawControls draws the key help screen.
func drawControls(r Renderer) {
	const w, h = config.FieldWidth, config.FieldHeight
	r.Text("GAME CONTROLS", w/2, h/4, titleStyle)

	for i, line := range controlLines {
		r.Text(line, w/2, float64(h/2-60+i*lineSpacing), centerStyle)
	}

	r.Text("PRESS 4 TO RETURN TO MAIN MENU", w/2, h-100, centerStyle)
}

// drawGame draws the field, the HUD and the phase overlay.
func (s *State) drawGame(r Renderer) {
	s.Entities.Each(func(e *object.Entity) {
		r.Sprite(e.Sprite(), e.Bounds)
	})
	r.Sprite("spaceship", s.Ship.Bounds)

	for _, p := range s.Particles.Items() {
		r.Circle(p.Pos.X(), p.Pos.Y(), float64(p.Size), p.Color, 0)
	}

	center := s.Ship.Bounds.Center()
	if s.Ship.Shield {
		r.Circle(center.X(), center.Y(), shieldRadius, draw.ColorBlue, ringWidth)
	}
	if s.Ship.RapidFire {
		r.Circle(center.X(), center.Y(), rapidRadius, draw.ColorYellow, ringWidth)
	}

	s.drawHUD(r)

	if s.NoticeTimer > 0 {
		r.Text(s.Notice, config.FieldWidth/2, noticeY, noticeStyle)
	}

	const cx, cy = config.FieldWidth / 2, config.FieldHeight / 2
	switch s.Phase {
	case PhaseGameOver:
		r.Text("Game Over! Press R to restart", cx, cy, centerStyle)
		if s.SaveFailed {
			r.Text("HIGH SCORE NOT SAVED", cx, cy+lineSpacing, warnStyle)
		}
	case PhasePaused:
		r.Text("PAUSED", cx, cy, centerStyle)
	}
}

func (s *State) drawHUD(r Renderer) {
	r.Text(fmt.Sprintf("Score: %d", s.Score), 10, 10, hudStyle)
	r.Text(fmt.Sprintf("Level: %d", s.Level), 10, 50, hudStyle)
	r.Text(fmt.Sprintf("Combo: x%d", s.Combo), 10, 90, hudStyle)
	r.Text(fmt.Sprintf("High Score: %d", s.HighScore), highScoreX, 10, hudStyle)

	for i := 0; i < s.Lives; i++ {
		x := float64(lifeIconRight - i*lifeIconGap)
		r.Sprite("life", physics.NewRect(x, lifeIconsTop, lifeIconSize, lifeIconSize))
	}
}
