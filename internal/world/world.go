package world

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/karolinemerino/PacMan/internal/config"
	"github.com/karolinemerino/PacMan/internal/entities"
	"github.com/karolinemerino/PacMan/internal/tilemap"
)

type State int

const (
	Running State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "running"
	}
}

// Observer receives game events. Calls happen inside Step, on the caller's goroutine.
type Observer interface {
	ScoreChanged(score int)
	PowerUpEaten()
	GhostEaten(color string)
	Finished(state State, score int)
}

type nopObserver struct{}

func (nopObserver) ScoreChanged(int)    {}
func (nopObserver) PowerUpEaten()       {}
func (nopObserver) GhostEaten(string)   {}
func (nopObserver) Finished(State, int) {}

type Rules struct {
	PelletPoints   int
	ScaredDuration time.Duration
}

type Option func(*World)

func WithLogger(l *zap.Logger) Option {
	return func(w *World) { w.log = l }
}

func WithObserver(o Observer) Option {
	return func(w *World) { w.observer = o }
}

func WithChooser(c Chooser) Option {
	return func(w *World) { w.choose = c }
}

// World owns every live entity and advances them one tick at a time.
type World struct {
	Maze     *tilemap.Maze
	Items    *Registry
	Player   *entities.Player
	Ghosts   []*entities.Ghost
	rules    Rules
	score    int
	state    State
	scared   scaredTimer
	choose   Chooser
	observer Observer
	log      *zap.Logger
}

func New(maze *tilemap.Maze, items *Registry, player *entities.Player, ghosts []*entities.Ghost, rules Rules, opts ...Option) *World {
	w := &World{
		Maze:     maze,
		Items:    items,
		Player:   player,
		Ghosts:   ghosts,
		rules:    rules,
		choose:   rand.New(rand.NewSource(time.Now().UnixNano())).Intn,
		observer: nopObserver{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// FromConfig lays out the maze, player and ghosts described by cfg.
func FromConfig(cfg *config.Config, opts ...Option) *World {
	maze := tilemap.Parse(cfg.Maze, cfg.CellSize)
	items := NewRegistry(maze.Pellets, maze.PowerUps, cfg.Pellet.Radius, cfg.PowerUp.Radius)
	player := entities.NewPlayer(maze.CellCenter(cfg.Player.Spawn.Col, cfg.Player.Spawn.Row), cfg.Player.Radius, cfg.Player.Speed)
	ghosts := make([]*entities.Ghost, 0, len(cfg.Ghosts))
	for _, s := range cfg.Ghosts {
		ghosts = append(ghosts, entities.NewGhost(maze.CellCenter(s.Col, s.Row), cfg.Ghost.Radius, cfg.Ghost.Speed, s.Color))
	}
	rules := Rules{PelletPoints: cfg.Pellet.Points, ScaredDuration: cfg.ScaredDuration}
	if cfg.Seed != 0 {
		opts = append([]Option{WithChooser(rand.New(rand.NewSource(cfg.Seed)).Intn)}, opts...)
	}
	return New(maze, items, player, ghosts, rules, opts...)
}

func (w *World) Score() int {
	return w.score
}

func (w *World) State() State {
	return w.state
}

// Scared reports whether a scared window is still open at now.
func (w *World) Scared(now time.Time) bool {
	return w.scared.active(now)
}

// Step advances one tick with drive as the player's requested direction.
// Once the world is Won or Lost, Step does nothing.
func (w *World) Step(now time.Time, drive entities.Direction) State {
	if w.state != Running {
		return w.state
	}
	w.expireScared(now)

	w.steerPlayer(drive)
	w.eatPellets()
	w.eatPowerUps(now)

	for i := len(w.Ghosts) - 1; i >= 0; i-- {
		gh := w.Ghosts[i]
		gh.Advance()
		if w.touchesPlayer(gh) {
			if !gh.Scared {
				w.finish(Lost)
				return w.state
			}
			w.Ghosts = append(w.Ghosts[:i], w.Ghosts[i+1:]...)
			w.log.Debug("ghost eaten", zap.String("color", gh.Color))
			w.observer.GhostEaten(gh.Color)
			continue
		}
		w.steerGhost(gh)
	}

	w.stopPlayerAtWalls()
	w.Player.Advance()

	if len(w.Items.Pellets) == 0 {
		w.finish(Won)
	}
	return w.state
}
