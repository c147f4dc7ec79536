package pong

import (
	"image/color"
)

// Position is a set of coordinates in 2-D plan
type Position struct {
	X float32
	Y float32
}

// GetCenter returns the center position of a field
func GetCenter(width, height int) Position {
	return Position{
		X: float32(width) / 2,
		Y: float32(height) / 2,
	}
}

// GameState is an enum that represents all possible game states
type GameState byte

const (
	// StartState waits for the opening serve
	StartState GameState = iota
	// PlayState is live play
	PlayState
	// InterludeState is the pause between a point and the next serve
	InterludeState
	// GameOverState is terminal until a restart is requested
	GameOverState
)

// Side identifies one end of the field
type Side byte

const (
	NoSide Side = iota
	LeftSide
	RightSide
)

func (s Side) String() string {
	switch s {
	case LeftSide:
		return "PLAYER 1"
	case RightSide:
		return "PLAYER 2"
	}
	return "NOBODY"
}

// Opposite returns the other end of the field
func (s Side) Opposite() Side {
	switch s {
	case LeftSide:
		return RightSide
	case RightSide:
		return LeftSide
	}
	return NoSide
}

var (
	BgColor     = color.RGBA{15, 15, 25, 255}
	PaddleColor = color.RGBA{100, 200, 255, 255}
	BallColor   = color.RGBA{255, 255, 255, 255}
	TextColor   = color.RGBA{200, 200, 220, 255}
	AccentColor = color.RGBA{80, 180, 220, 255}
	LineColor   = color.RGBA{40, 50, 70, 255}
)
