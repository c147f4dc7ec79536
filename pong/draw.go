package pong

import (
	"strconv"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/text"
	"golang.org/x/image/font"
)

const (
	smallFontSize = 16
	fontSize      = 32
	bigFontSize   = 48
	dpi           = 72
)

var (
	// ArcadeFont is the HUD face used for the scores.
	ArcadeFont font.Face
	// SmallArcadeFont is the face used for caption lines.
	SmallArcadeFont font.Face
	// BigArcadeFont is the face used for the title and the win banner.
	BigArcadeFont font.Face
)

// InitFonts parses the arcade font and builds the three HUD faces.
// It must be called once before any Draw helper.
func InitFonts() error {
	tt, err := truetype.Parse(fonts.ArcadeN_ttf)
	if err != nil {
		return err
	}
	SmallArcadeFont = truetype.NewFace(tt, &truetype.Options{
		Size:    smallFontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	ArcadeFont = truetype.NewFace(tt, &truetype.Options{
		Size:    fontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	BigArcadeFont = truetype.NewFace(tt, &truetype.Options{
		Size:    bigFontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	return nil
}

// DrawCenterLine draws the dashed dividing line down midfield.
func DrawCenterLine(cfg Config, screen *ebiten.Image) {
	x := float64(cfg.Width)/2 - 2
	for y := 0; y < cfg.Height; y += 30 {
		ebitenutil.DrawRect(screen, x, float64(y), 4, 15, LineColor)
	}
}

// DrawScores writes both scores across the top of the field.
func DrawScores(s *ScoreBoard, cfg Config, screen *ebiten.Image) {
	left := strconv.Itoa(s.Left)
	right := strconv.Itoa(s.Right)
	text.Draw(screen, left, ArcadeFont, cfg.Width/4-len(left)*fontSize/2, 60, TextColor)
	text.Draw(screen, right, ArcadeFont, 3*cfg.Width/4-len(right)*fontSize/2, 60, TextColor)
}

// DrawCaption writes the prompt line for the current state near the
// bottom of the field.
func DrawCaption(state GameState, cfg Config, screen *ebiten.Image) {
	var msg string
	switch state {
	case StartState:
		msg = "PRESS SPACE TO SERVE"
	case GameOverState:
		msg = "PRESS SPACE TO PLAY AGAIN"
	default:
		return
	}
	x := cfg.Width/2 - len(msg)*smallFontSize/2
	text.Draw(screen, msg, SmallArcadeFont, x, cfg.Height-40, AccentColor)
}

// DrawBigText centers a banner line on the field. The arcade font is
// monospaced, so the width is just glyph count times point size.
func DrawBigText(msg string, cfg Config, screen *ebiten.Image) {
	x := cfg.Width/2 - len(msg)*bigFontSize/2
	text.Draw(screen, msg, BigArcadeFont, x, cfg.Height/2-40, PaddleColor)
}
