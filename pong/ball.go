package pong

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten"
)

// Ball is the game ball. Position is the center of its bounding square.
type Ball struct {
	Position
	XVelocity float32
	YVelocity float32
	Radius    float32
	Color     color.Color
	Img       *ebiten.Image
}

// Move advances the ball by its velocity for one tick.
func (b *Ball) Move() {
	b.X += b.XVelocity
	b.Y += b.YVelocity
}

// BounceWall reflects the ball off the top or bottom wall. The ball is
// repositioned flush to the wall so it cannot tunnel out on the tick of
// contact. Reports whether a wall was hit.
func (b *Ball) BounceWall(fieldHeight int) bool {
	if b.Y-b.Radius <= 0 {
		b.Y = b.Radius
		b.YVelocity = abs32(b.YVelocity)
		return true
	}
	if b.Y+b.Radius >= float32(fieldHeight) {
		b.Y = float32(fieldHeight) - b.Radius
		b.YVelocity = -abs32(b.YVelocity)
		return true
	}
	return false
}

// CollidePaddle bounces the ball off a paddle. The horizontal velocity
// flips; the vertical velocity is set from where along the paddle the
// ball struck, so center contact sends it flat and edge contact sends
// it steep. Each hit adds a fixed speed increment, capped at
// maxBallSpeed. Reports whether a collision occurred.
func (b *Ball) CollidePaddle(p *Paddle) bool {
	if !b.overlaps(p) {
		return false
	}

	// Contact offset along the paddle, 0 at the top edge, 1 at the bottom.
	hit := (b.Y - p.Y) / float32(p.Height)
	if hit < 0 {
		hit = 0
	}
	if hit > 1 {
		hit = 1
	}
	angle := (hit - 0.5) * deflectionScale

	speed := float32(math.Sqrt(float64(b.XVelocity*b.XVelocity + b.YVelocity*b.YVelocity)))
	speed += speedIncrement
	if speed > maxBallSpeed {
		speed = maxBallSpeed
	}

	b.XVelocity = -b.XVelocity
	b.YVelocity = angle * speed

	// Nudge the ball clear of the paddle so it cannot stick inside it.
	if b.XVelocity > 0 {
		b.X = p.X + float32(p.Width) + b.Radius + 2
	} else {
		b.X = p.X - b.Radius - 2
	}
	return true
}

// OutLeft reports whether the ball has fully left the field on the left.
func (b *Ball) OutLeft() bool {
	return b.X+b.Radius < 0
}

// OutRight reports whether the ball has fully left the field on the right.
func (b *Ball) OutRight(fieldWidth int) bool {
	return b.X-b.Radius > float32(fieldWidth)
}

// Serve recenters the ball and launches it toward the given side at the
// given speed, with a small random vertical angle.
func (b *Ball) Serve(center Position, speed float64, toward Side, rng *rand.Rand) {
	b.Position = center

	angle := (rng.Float64() - 0.5) * math.Pi / 6
	vx := float32(speed * math.Cos(angle))
	if toward == LeftSide {
		vx = -vx
	}
	b.XVelocity = vx
	b.YVelocity = float32(speed * math.Sin(angle))
}

// Draw blits the ball sprite centered on its position.
func (b *Ball) Draw(screen *ebiten.Image) {
	b.Img.Fill(b.Color)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(b.X-b.Radius), float64(b.Y-b.Radius))
	screen.DrawImage(b.Img, opts)
}

func (b *Ball) overlaps(p *Paddle) bool {
	return b.X+b.Radius >= p.X &&
		b.X-b.Radius <= p.X+float32(p.Width) &&
		b.Y+b.Radius >= p.Y &&
		b.Y-b.Radius <= p.Y+float32(p.Height)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
