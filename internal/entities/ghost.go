package entities

import (
	"math/bits"
	"strings"

	"github.com/karolinemerino/PacMan/internal/geometry"
)

// DirectionSet is a set of headings stored as a bitmask, comparable with ==.
type DirectionSet uint8

func SetOf(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s = s.With(d)
	}
	return s
}

func (s DirectionSet) With(d Direction) DirectionSet {
	if d == DirNone {
		return s
	}
	return s | 1<<uint(d)
}

func (s DirectionSet) Has(d Direction) bool {
	return d != DirNone && s&(1<<uint(d)) != 0
}

// Minus returns the directions in s that are not in o.
func (s DirectionSet) Minus(o DirectionSet) DirectionSet {
	return s &^ o
}

func (s DirectionSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Slice returns members in probe order.
func (s DirectionSet) Slice() []Direction {
	out := make([]Direction, 0, s.Len())
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s DirectionSet) String() string {
	names := make([]string, 0, 4)
	for _, d := range s.Slice() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

type Ghost struct {
	Position geometry.Vec
	Velocity geometry.Vec
	Radius   float64
	Speed    float64
	Color    string
	Scared   bool

	// PrevBlocked is the blocked set remembered since the last heading change.
	PrevBlocked DirectionSet
}

// NewGhost starts the ghost moving right at speed.
func NewGhost(pos geometry.Vec, radius, speed float64, color string) *Ghost {
	return &Ghost{
		Position: pos,
		Velocity: Velocity(DirRight, speed),
		Radius:   radius,
		Speed:    speed,
		Color:    color,
	}
}

func (g *Ghost) Heading() Direction {
	return Heading(g.Velocity)
}

// Steer sets an axis-aligned velocity at the ghost's fixed speed.
func (g *Ghost) Steer(d Direction) {
	g.Velocity = Velocity(d, g.Speed)
}

func (g *Ghost) Advance() {
	g.Position = g.Position.Add(g.Velocity)
}
