package game

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/karolinemerino/PacMan/internal/config"
	"github.com/karolinemerino/PacMan/internal/entities"
	"github.com/karolinemerino/PacMan/internal/input"
	"github.com/karolinemerino/PacMan/internal/world"
)

const hudHeight = 20

var keyBindings = map[ebiten.Key]entities.Direction{
	ebiten.KeyW:          entities.DirUp,
	ebiten.KeyArrowUp:    entities.DirUp,
	ebiten.KeyA:          entities.DirLeft,
	ebiten.KeyArrowLeft:  entities.DirLeft,
	ebiten.KeyS:          entities.DirDown,
	ebiten.KeyArrowDown:  entities.DirDown,
	ebiten.KeyD:          entities.DirRight,
	ebiten.KeyArrowRight: entities.DirRight,
}

// Game adapts a world.World to ebiten: key events feed the latch, every
// Update is one world tick, Draw renders whatever the world holds.
type Game struct {
	world      *world.World
	keys       input.Latch
	audio      *AudioManager
	log        *zap.Logger
	off        *ebiten.Image
	fullscreen bool
	quit       bool
	scale      float64
}

func New(cfg *config.Config, log *zap.Logger) *Game {
	g := &Game{
		audio: NewAudioManager(cfg.Audio),
		log:   log,
	}
	g.world = world.FromConfig(cfg, world.WithLogger(log.Named("world")), world.WithObserver(g))

	// Fit within ~75% of the display area
	nativeW, nativeH := g.nativeSize()
	sw, sh := ebiten.ScreenSizeInFullscreen()
	fit := 0.75
	g.scale = math.Min(float64(sw)*fit/float64(nativeW), float64(sh)*fit/float64(nativeH))
	if g.scale <= 0 || math.IsNaN(g.scale) || math.IsInf(g.scale, 0) {
		g.scale = 1.0
	}
	return g
}

func (g *Game) nativeSize() (int, int) {
	return int(g.world.Maze.Width()), int(g.world.Maze.Height()) + hudHeight
}

func (g *Game) ScreenWidth() int {
	w, _ := g.nativeSize()
	return int(float64(w) * g.scale)
}

func (g *Game) ScreenHeight() int {
	_, h := g.nativeSize()
	return int(float64(h) * g.scale)
}

func (g *Game) Update() error {
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}
	g.world.Step(time.Now(), g.keys.Drive())
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}

func (g *Game) handleInput() {
	for key, dir := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.keys.Press(dir)
		}
		if inpututil.IsKeyJustReleased(key) {
			g.keys.Release(dir)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
	}
}

func (g *Game) ScoreChanged(int) {
	g.audio.PlayChomp()
}

func (g *Game) PowerUpEaten() {
	g.audio.PlayPowerUp()
}

func (g *Game) GhostEaten(string) {
	g.audio.PlayGhostEaten()
}

func (g *Game) Finished(state world.State, score int) {
	if state == world.Lost {
		g.audio.PlayDeath()
	}
	g.log.Info("press Q to exit", zap.Stringer("state", state), zap.Int("score", score))
}
