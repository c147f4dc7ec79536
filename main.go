package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"

	"pingpong/pong"
)

// errQuit signals a clean exit from the game loop.
var errQuit = errors.New("quit")

// Game is the ebiten-facing wrapper around a match: it polls the
// keyboard, forwards ticks, and renders frames.
type Game struct {
	match *pong.Match
	debug bool
}

// NewGame builds a match and the sprites its entities draw with.
func NewGame(cfg pong.Config, debug bool) *Game {
	g := &Game{
		match: pong.NewMatch(cfg),
		debug: debug,
	}
	g.match.Player1.Img, _ = ebiten.NewImage(g.match.Player1.Width, g.match.Player1.Height, ebiten.FilterDefault)
	g.match.Player2.Img, _ = ebiten.NewImage(g.match.Player2.Width, g.match.Player2.Height, ebiten.FilterDefault)
	g.match.Ball.Img, _ = ebiten.NewImage(int(g.match.Ball.Radius*2), int(g.match.Ball.Radius*2), ebiten.FilterDefault)
	return g
}

// Update runs one tick: input, match logic, then the frame.
func (g *Game) Update(screen *ebiten.Image) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	switch g.match.State {
	case pong.StartState:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.match.Start()
		}
	case pong.GameOverState:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.match.Restart()
		}
	default:
		g.pollKeys()
		g.match.Update()
	}

	g.Draw(screen)

	return nil
}

// pollKeys snapshots the keyboard into each paddle's input state.
func (g *Game) pollKeys() {
	for _, p := range []*pong.Paddle{g.match.Player1, g.match.Player2} {
		p.Pressed.Up = ebiten.IsKeyPressed(p.Up)
		p.Pressed.Down = ebiten.IsKeyPressed(p.Down)
	}
}

// Draw renders the field, entities, and HUD for the current state.
func (g *Game) Draw(screen *ebiten.Image) error {
	cfg := g.match.Cfg

	screen.Fill(pong.BgColor)
	pong.DrawCenterLine(cfg, screen)

	g.match.Player1.Draw(screen)
	g.match.Player2.Draw(screen)
	g.match.Ball.Draw(screen)

	pong.DrawScores(g.match.Scores, cfg, screen)
	pong.DrawCaption(g.match.State, cfg, screen)

	switch g.match.State {
	case pong.StartState:
		pong.DrawBigText("PING PONG", cfg, screen)
	case pong.GameOverState:
		if winner, ok := g.match.Winner(); ok {
			pong.DrawBigText(fmt.Sprintf("%s WINS!", winner), cfg, screen)
		}
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f\nRally: %d", ebiten.CurrentTPS(), g.match.Rally))
	}

	return nil
}

// Layout sets the screen layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.match.Cfg.Width, g.match.Cfg.Height
}

func main() {
	cfg := pong.DefaultConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "field width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "field height in pixels")
	flag.Float64Var(&cfg.PaddleSpeed, "paddle-speed", cfg.PaddleSpeed, "paddle speed in pixels per tick")
	flag.Float64Var(&cfg.BallSpeed, "ball-speed", cfg.BallSpeed, "initial ball speed in pixels per tick")
	flag.IntVar(&cfg.WinningScore, "winning-score", cfg.WinningScore, "points needed to win the match")
	debug := flag.Bool("debug", false, "show the TPS and rally overlay")
	flag.Parse()

	if err := cfg.Check(); err != nil {
		log.Fatal(err)
	}
	if err := pong.InitFonts(); err != nil {
		log.Fatal(err)
	}

	g := NewGame(cfg, *debug)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Ping Pong")
	if err := ebiten.RunGame(g); err != nil && err != errQuit {
		log.Fatal(err)
	}
}
