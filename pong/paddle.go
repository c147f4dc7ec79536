package pong

import (
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Pressed is the input state for one paddle, polled once per tick.
type Pressed struct {
	Up   bool
	Down bool
}

// Paddle is a player's bat. Y is the top edge; X never changes.
type Paddle struct {
	Position
	Speed   float32
	Width   int
	Height  int
	Color   color.Color
	Up      ebiten.Key
	Down    ebiten.Key
	Pressed Pressed
	Img     *ebiten.Image
}

// MoveUp steps the paddle toward the top wall, clamped at 0.
func (p *Paddle) MoveUp() {
	p.Y -= p.Speed
	if p.Y < 0 {
		p.Y = 0
	}
}

// MoveDown steps the paddle toward the bottom wall, clamped so the
// paddle stays fully inside the field.
func (p *Paddle) MoveDown(fieldHeight int) {
	p.Y += p.Speed
	if max := float32(fieldHeight - p.Height); p.Y > max {
		p.Y = max
	}
}

// Update applies the polled input state for this tick.
func (p *Paddle) Update(fieldHeight int) {
	if p.Pressed.Up {
		p.MoveUp()
	}
	if p.Pressed.Down {
		p.MoveDown(fieldHeight)
	}
}

// CenterY returns the vertical center of the paddle face.
func (p *Paddle) CenterY() float32 {
	return p.Y + float32(p.Height)/2
}

// Draw blits the paddle sprite at its current position.
func (p *Paddle) Draw(screen *ebiten.Image) {
	p.Img.Fill(p.Color)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(p.X), float64(p.Y))
	screen.DrawImage(p.Img, opts)
}
