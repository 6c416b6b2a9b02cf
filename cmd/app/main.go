package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"vector2/internal/common"
	"vector2/internal/config"
	"vector2/internal/physics"
)

// Visualization colors
var (
	ColorBackground = color.RGBA{20, 20, 20, 255}
	ColorMover      = color.RGBA{255, 0, 0, 255}   // Red
	ColorHeading    = color.RGBA{255, 255, 0, 255} // Yellow
	ColorCompass    = color.RGBA{50, 255, 50, 200} // Light Green
	ColorHUD        = color.RGBA{0, 0, 0, 180}
)

type Game struct {
	Config  *config.Config
	Swarm   *physics.Swarm
	Compass common.Vector2
	Target  common.Vector2
	Paused  bool
	Ticks   int
}

func NewGame(cfg *config.Config) *Game {
	rng := rand.New(rand.NewSource(cfg.Seed))
	w, h := float32(cfg.Window.Width), float32(cfg.Window.Height)

	compass := cfg.Compass.Start.Vector()
	compass.SetMagnitude(cfg.Compass.Length)

	return &Game{
		Config:  cfg,
		Swarm:   physics.NewSwarm(rng, cfg.Movers.Count, w, h, cfg.Movers.MaxSpeed, cfg.Movers.MaxForce),
		Compass: compass,
		Target:  common.New(w/2, h/2),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Paused = !g.Paused
		log.Printf("paused=%v after %d ticks", g.Paused, g.Ticks)
	}

	mx, my := ebiten.CursorPosition()
	g.Target = common.New(float32(mx), float32(my))

	if g.Paused {
		return nil
	}
	g.Ticks++

	// Screen y grows downward, so a negative angle turns the arrow
	// counter-clockwise on screen.
	g.Compass.Rotate(-g.Config.Compass.DegreesPerTick)
	g.Swarm.Step(g.Target)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	for _, m := range g.Swarm.Movers {
		corners := m.Corners()
		var path vector.Path
		for i, c := range corners {
			if i == 0 {
				path.MoveTo(c.X(), c.Y())
			} else {
				path.LineTo(c.X(), c.Y())
			}
		}
		path.Close()

		var cs ebiten.ColorScale
		cs.ScaleWithColor(ColorMover)
		vector.FillPath(screen, &path, nil, &vector.DrawPathOptions{
			AntiAlias:  true,
			ColorScale: cs,
		})

		// Heading line, slightly longer than the body
		tip := m.Velocity
		tip.SetMagnitude(m.Length/2 + 5)
		tip.AddInPlace(m.Position)
		vector.StrokeLine(screen, m.Position.X(), m.Position.Y(), tip.X(), tip.Y(), 2, ColorHeading, true)
	}

	// Compass in the bottom right corner
	origin := common.New(float32(g.Config.Window.Width)-60, float32(g.Config.Window.Height)-60)
	end := origin.Add(g.Compass)
	vector.StrokeLine(screen, origin.X(), origin.Y(), end.X(), end.Y(), 3, ColorCompass, true)

	vector.FillRect(screen, 0, 0, 220, 110, ColorHUD, true)

	msg := "VECTOR MONITOR\n"
	msg += "----------------\n"
	msg += fmt.Sprintf("Target:  %v\n", g.Target)
	msg += fmt.Sprintf("Compass: %v\n", g.Compass)
	if len(g.Swarm.Movers) > 0 {
		v := g.Swarm.Movers[0].Velocity
		msg += fmt.Sprintf("Speed:   %.2f\n", v.Magnitude())
	}
	if g.Paused {
		msg += " [PAUSED]"
	}
	msg += "\nControls:\nS = Toggle Pause"

	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.Config.Window.Width, g.Config.Window.Height
}

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "YAML config file (defaults when empty)")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game := NewGame(cfg)
	log.Printf("starting with %d movers, max speed %v", len(game.Swarm.Movers), cfg.Movers.MaxSpeed)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
