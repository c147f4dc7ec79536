package pong

import "testing"

// missLeft puts a match in live play with the ball heading straight at
// the left edge and the left paddle moved out of its path.
func missLeft(cfg Config) *Match {
	m := NewMatch(cfg)
	m.State = PlayState
	m.Ball.XVelocity = -5
	m.Ball.YVelocity = 0
	m.Player1.Y = 0
	return m
}

// run ticks the match until it leaves PlayState, with a safety limit.
func run(t *testing.T, m *Match) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		m.Update()
		if m.State != PlayState {
			return
		}
	}
	t.Fatal("match never left PlayState")
}

func TestMissedBallScoresOpponent(t *testing.T) {
	cfg := DefaultConfig()
	m := missLeft(cfg)

	run(t, m)

	if m.Scores.Left != 0 || m.Scores.Right != 1 {
		t.Fatalf("got %d-%d, want 0-1", m.Scores.Left, m.Scores.Right)
	}
	center := GetCenter(cfg.Width, cfg.Height)
	if m.Ball.Position != center {
		t.Fatalf("ball not recentered after the point: %+v", m.Ball.Position)
	}
	if m.State != InterludeState {
		t.Fatalf("expected the serve pause, got state %d", m.State)
	}
}

func TestServePauseResumesPlay(t *testing.T) {
	m := missLeft(DefaultConfig())
	run(t, m)

	ballAt := m.Ball.Position
	m.Player2.Pressed.Down = true
	paddleAt := m.Player2.Y

	for i := 0; i < serveDelayTicks-1; i++ {
		m.Update()
		if m.State != InterludeState {
			t.Fatalf("serve pause ended after %d ticks", i+1)
		}
	}
	if m.Ball.Position != ballAt || m.Player2.Y != paddleAt {
		t.Fatal("entities moved during the serve pause")
	}

	m.Update()
	if m.State != PlayState {
		t.Fatalf("play did not resume after the pause, state %d", m.State)
	}
}

func TestServeGoesTowardConceder(t *testing.T) {
	m := missLeft(DefaultConfig())
	run(t, m)

	// The left side conceded, so the next serve heads left.
	if m.Ball.XVelocity >= 0 {
		t.Fatalf("serve went toward the scorer: vx = %v", m.Ball.XVelocity)
	}
}

func TestMatchEndsAtWinningScore(t *testing.T) {
	cfg := DefaultConfig()
	m := missLeft(cfg)
	m.Scores.Right = cfg.WinningScore - 1

	run(t, m)

	if m.State != GameOverState {
		t.Fatalf("expected game over, got state %d", m.State)
	}
	winner, over := m.Winner()
	if !over || winner != RightSide {
		t.Fatalf("got winner %v (over=%v), want RightSide", winner, over)
	}

	// Terminal: further ticks leave everything in place.
	at := m.Ball.Position
	for i := 0; i < 10; i++ {
		m.Update()
	}
	if m.Ball.Position != at || m.State != GameOverState {
		t.Fatal("match advanced after game over")
	}
}

func TestStartServesTheBall(t *testing.T) {
	m := NewMatch(DefaultConfig())

	m.Update()
	if m.Ball.XVelocity != 0 || m.Ball.YVelocity != 0 {
		t.Fatal("ball moving before the opening serve")
	}

	m.Start()
	if m.State != PlayState {
		t.Fatalf("expected live play after Start, got state %d", m.State)
	}
	if m.Ball.XVelocity == 0 {
		t.Fatal("opening serve left the ball without horizontal velocity")
	}
}

func TestRestartReturnsToStartScreen(t *testing.T) {
	cfg := DefaultConfig()
	m := missLeft(cfg)
	m.Scores.Right = cfg.WinningScore - 1
	run(t, m)

	// Restart only applies once the match is over.
	m.Restart()

	if m.State != StartState {
		t.Fatalf("expected the start screen, got state %d", m.State)
	}
	if m.Scores.Left != 0 || m.Scores.Right != 0 {
		t.Fatalf("scores survived the restart: %d-%d", m.Scores.Left, m.Scores.Right)
	}
	center := GetCenter(cfg.Width, cfg.Height)
	if m.Ball.Position != center || m.Ball.XVelocity != 0 {
		t.Fatal("ball not parked at midfield after the restart")
	}
	if m.Player1.Y != center.Y-float32(m.Player1.Height)/2 {
		t.Fatalf("left paddle not recentered: y = %v", m.Player1.Y)
	}

	m.Start()
	if m.State != PlayState {
		t.Fatal("restarted match refused to start")
	}
}

func TestRallyCountsPaddleHits(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMatch(cfg)
	m.State = PlayState

	// Park the ball one tick short of the left paddle face, heading in.
	m.Ball.Position = Position{
		X: m.Player1.X + float32(m.Player1.Width) + m.Ball.Radius + 4,
		Y: m.Player1.CenterY(),
	}
	m.Ball.XVelocity = -5
	m.Ball.YVelocity = 0

	m.Update()
	if m.Rally != 1 {
		t.Fatalf("rally = %d after a paddle hit, want 1", m.Rally)
	}
	if m.Ball.XVelocity <= 0 {
		t.Fatalf("ball not returned by the paddle: vx = %v", m.Ball.XVelocity)
	}
}
