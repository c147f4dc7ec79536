package pong

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten"
)

// Match owns the entities and drives the round state machine:
// serving, live play, the pause between points, and game over.
type Match struct {
	Cfg     Config
	Player1 *Paddle
	Player2 *Paddle
	Ball    *Ball
	Scores  *ScoreBoard

	State GameState
	// Rally counts paddle hits since the last serve.
	Rally int

	serveTimer int
	rng        *rand.Rand
}

// NewMatch builds a match from the given configuration, with both
// paddles centered and the ball waiting at midfield.
func NewMatch(cfg Config) *Match {
	center := GetCenter(cfg.Width, cfg.Height)

	m := &Match{
		Cfg: cfg,
		Player1: &Paddle{
			Position: Position{
				X: InitPaddleShift,
				Y: center.Y - InitPaddleHeight/2,
			},
			Speed:  float32(cfg.PaddleSpeed),
			Width:  InitPaddleWidth,
			Height: InitPaddleHeight,
			Color:  PaddleColor,
			Up:     ebiten.KeyW,
			Down:   ebiten.KeyS,
		},
		Player2: &Paddle{
			Position: Position{
				X: float32(cfg.Width - InitPaddleShift - InitPaddleWidth),
				Y: center.Y - InitPaddleHeight/2,
			},
			Speed:  float32(cfg.PaddleSpeed),
			Width:  InitPaddleWidth,
			Height: InitPaddleHeight,
			Color:  PaddleColor,
			Up:     ebiten.KeyUp,
			Down:   ebiten.KeyDown,
		},
		Ball: &Ball{
			Position: center,
			Radius:   InitBallRadius,
			Color:    BallColor,
		},
		Scores: NewScoreBoard(cfg.WinningScore),
		State:  StartState,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	return m
}

// Start serves the opening ball toward a random side. It does nothing
// unless the match is waiting on the start screen.
func (m *Match) Start() {
	if m.State != StartState {
		return
	}
	toward := LeftSide
	if m.rng.Intn(2) == 0 {
		toward = RightSide
	}
	m.serve(toward)
	m.State = PlayState
}

// Restart returns a finished match to the start screen with zeroed
// scores and recentered entities.
func (m *Match) Restart() {
	if m.State != GameOverState {
		return
	}
	m.Scores.Reset()
	m.resetPositions()
	m.Rally = 0
	m.State = StartState
}

// Update advances the match by one tick. During live play the order is
// paddle input, ball movement, wall bounce, paddle collision, scoring
// exits. Nothing moves in any other state.
func (m *Match) Update() {
	switch m.State {
	case StartState, GameOverState:
		// Waiting on the space key, handled by the caller.

	case InterludeState:
		m.serveTimer--
		if m.serveTimer <= 0 {
			m.State = PlayState
		}

	case PlayState:
		m.Player1.Update(m.Cfg.Height)
		m.Player2.Update(m.Cfg.Height)

		m.Ball.Move()
		m.Ball.BounceWall(m.Cfg.Height)
		if m.Ball.CollidePaddle(m.Player1) || m.Ball.CollidePaddle(m.Player2) {
			m.Rally++
		}

		if m.Ball.OutLeft() {
			m.pointTo(RightSide)
		} else if m.Ball.OutRight(m.Cfg.Width) {
			m.pointTo(LeftSide)
		}
	}
}

// Winner returns the winning side once the match is decided.
func (m *Match) Winner() (Side, bool) {
	return m.Scores.Winner()
}

// pointTo credits a point and either ends the match or schedules the
// next serve, toward the side that just conceded.
func (m *Match) pointTo(side Side) {
	m.Scores.RecordPoint(side)
	m.Rally = 0

	if _, over := m.Scores.Winner(); over {
		m.Ball.Position = GetCenter(m.Cfg.Width, m.Cfg.Height)
		m.Ball.XVelocity = 0
		m.Ball.YVelocity = 0
		m.State = GameOverState
		return
	}

	m.serve(side.Opposite())
	m.serveTimer = serveDelayTicks
	m.State = InterludeState
}

func (m *Match) serve(toward Side) {
	m.Ball.Serve(GetCenter(m.Cfg.Width, m.Cfg.Height), m.Cfg.BallSpeed, toward, m.rng)
}

func (m *Match) resetPositions() {
	center := GetCenter(m.Cfg.Width, m.Cfg.Height)
	m.Player1.Y = center.Y - float32(m.Player1.Height)/2
	m.Player2.Y = center.Y - float32(m.Player2.Height)/2
	m.Ball.Position = center
	m.Ball.XVelocity = 0
	m.Ball.YVelocity = 0
}
