package world

import "github.com/karolinemerino/PacMan/internal/geometry"

type Collectible struct {
	Position geometry.Vec
	Radius   float64
}

// Registry holds the live pickups. Consumed items are removed, never flagged.
type Registry struct {
	Pellets  []Collectible
	PowerUps []Collectible
}

func NewRegistry(pellets, powerUps []geometry.Vec, pelletRadius, powerUpRadius float64) *Registry {
	r := &Registry{
		Pellets:  make([]Collectible, 0, len(pellets)),
		PowerUps: make([]Collectible, 0, len(powerUps)),
	}
	for _, p := range pellets {
		r.Pellets = append(r.Pellets, Collectible{Position: p, Radius: pelletRadius})
	}
	for _, p := range powerUps {
		r.PowerUps = append(r.PowerUps, Collectible{Position: p, Radius: powerUpRadius})
	}
	return r
}

// ConsumePellets removes every pellet the body touches and returns how many.
func (r *Registry) ConsumePellets(pos geometry.Vec, radius float64) int {
	var n int
	r.Pellets, n = consume(r.Pellets, pos, radius)
	return n
}

func (r *Registry) ConsumePowerUps(pos geometry.Vec, radius float64) int {
	var n int
	r.PowerUps, n = consume(r.PowerUps, pos, radius)
	return n
}

// consume walks from the end so removal never skips or revisits an item.
func consume(items []Collectible, pos geometry.Vec, radius float64) ([]Collectible, int) {
	eaten := 0
	for i := len(items) - 1; i >= 0; i-- {
		if geometry.CirclesOverlap(items[i].Position, items[i].Radius, pos, radius) {
			items = append(items[:i], items[i+1:]...)
			eaten++
		}
	}
	return items, eaten
}
