package entities

import (
	"math"

	"github.com/karolinemerino/PacMan/internal/geometry"
)

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four headings in probe order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

func DirDelta(d Direction) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Velocity returns speed units per tick along d; DirNone is the zero vector.
func Velocity(d Direction, speed float64) geometry.Vec {
	dx, dy := DirDelta(d)
	return geometry.Vec{X: float64(dx) * speed, Y: float64(dy) * speed}
}

// Heading infers the direction of travel from a velocity, checking X before Y.
func Heading(v geometry.Vec) Direction {
	switch {
	case v.X > 0:
		return DirRight
	case v.X < 0:
		return DirLeft
	case v.Y < 0:
		return DirUp
	case v.Y > 0:
		return DirDown
	default:
		return DirNone
	}
}

func Reverse(d Direction) Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

const (
	maxMouth      = 0.75
	mouthOpenRate = 0.12
)

type Player struct {
	Position geometry.Vec
	Velocity geometry.Vec
	Radius   float64
	Speed    float64

	// Rendering state only.
	Rotation float64
	Mouth    float64
	openRate float64
}

func NewPlayer(pos geometry.Vec, radius, speed float64) *Player {
	return &Player{
		Position: pos,
		Radius:   radius,
		Speed:    speed,
		Mouth:    maxMouth,
		openRate: mouthOpenRate,
	}
}

// Face points the sprite along the current velocity; a stopped player keeps its last rotation.
func (p *Player) Face() {
	switch Heading(p.Velocity) {
	case DirRight:
		p.Rotation = 0
	case DirLeft:
		p.Rotation = math.Pi
	case DirDown:
		p.Rotation = math.Pi / 2
	case DirUp:
		p.Rotation = math.Pi * 1.5
	}
}

// Advance applies velocity to position and steps the mouth animation.
func (p *Player) Advance() {
	p.Position = p.Position.Add(p.Velocity)
	if p.Mouth > maxMouth || p.Mouth < 0 {
		p.openRate = -p.openRate
	}
	p.Mouth += p.openRate
}
