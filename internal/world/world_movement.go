package world

import (
	"github.com/karolinemerino/PacMan/internal/entities"
	"github.com/karolinemerino/PacMan/internal/geometry"
)

// steerPlayer resets the velocity each tick and derives it from drive alone.
func (w *World) steerPlayer(drive entities.Direction) {
	w.Player.Velocity = entities.Velocity(drive, w.Player.Speed)
	w.Player.Face()
}

// stopPlayerAtWalls zeroes the whole velocity if the trial move touches any wall.
func (w *World) stopPlayerAtWalls() {
	p := w.Player
	if w.Maze.Blocked(p.Position, p.Radius, p.Velocity) {
		p.Velocity = geometry.Vec{}
	}
}

// probe returns the headings in which one step would touch a wall. The
// ghost's actual velocity plays no part.
func (w *World) probe(gh *entities.Ghost) entities.DirectionSet {
	var blocked entities.DirectionSet
	for _, d := range entities.Directions {
		if w.Maze.Blocked(gh.Position, gh.Radius, entities.Velocity(d, gh.Speed)) {
			blocked = blocked.With(d)
		}
	}
	return blocked
}

func (w *World) steerGhost(gh *entities.Ghost) {
	prev, dir, turned := Decide(gh.PrevBlocked, w.probe(gh), gh.Heading(), w.choose)
	gh.PrevBlocked = prev
	if turned {
		gh.Steer(dir)
	}
}
