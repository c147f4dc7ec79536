package pong

import "fmt"

const (
	// InitPaddleShift is the gap between a paddle and its end of the field
	InitPaddleShift  = 30
	InitPaddleWidth  = 15
	InitPaddleHeight = 100
	InitBallRadius   = 8.0

	// serveDelayTicks freezes play between a point and the next serve
	serveDelayTicks = 30

	speedIncrement  = 0.5
	maxBallSpeed    = 14.0
	deflectionScale = 1.5
)

// Config holds the startup options for a match. All values are fixed
// once the match is constructed.
type Config struct {
	// Width and Height bound the field in pixels.
	Width  int
	Height int
	// PaddleSpeed and BallSpeed are in pixels per tick (60 TPS).
	PaddleSpeed float64
	BallSpeed   float64
	// WinningScore ends the match once either side reaches it.
	WinningScore int
}

// DefaultConfig returns the classic setup: 800x600 field, first to 5.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		PaddleSpeed:  8,
		BallSpeed:    7,
		WinningScore: 5,
	}
}

// Check reports whether the configuration describes a playable field.
func (c Config) Check() error {
	if c.Width < InitPaddleShift*4 || c.Height < InitPaddleHeight*2 {
		return fmt.Errorf("field %dx%d is too small to play on", c.Width, c.Height)
	}
	if c.PaddleSpeed <= 0 || c.BallSpeed <= 0 {
		return fmt.Errorf("speeds must be positive, got paddle %v ball %v", c.PaddleSpeed, c.BallSpeed)
	}
	if c.WinningScore < 1 {
		return fmt.Errorf("winning score must be at least 1, got %d", c.WinningScore)
	}
	return nil
}
