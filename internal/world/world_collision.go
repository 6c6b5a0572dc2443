package world

import (
	"time"

	"go.uber.org/zap"

	"github.com/karolinemerino/PacMan/internal/entities"
	"github.com/karolinemerino/PacMan/internal/geometry"
)

func (w *World) eatPellets() {
	n := w.Items.ConsumePellets(w.Player.Position, w.Player.Radius)
	for i := 0; i < n; i++ {
		w.score += w.rules.PelletPoints
		w.observer.ScoreChanged(w.score)
	}
	if n > 0 {
		w.log.Debug("pellets eaten", zap.Int("count", n), zap.Int("score", w.score), zap.Int("left", len(w.Items.Pellets)))
	}
}

// eatPowerUps scares every ghost. Each consumption pushes the shared deadline out.
func (w *World) eatPowerUps(now time.Time) {
	n := w.Items.ConsumePowerUps(w.Player.Position, w.Player.Radius)
	for i := 0; i < n; i++ {
		w.scared.arm(now, w.rules.ScaredDuration)
		for _, gh := range w.Ghosts {
			gh.Scared = true
		}
		w.observer.PowerUpEaten()
	}
	if n > 0 {
		w.log.Debug("power-up eaten", zap.Time("scared_until", w.scared.until))
	}
}

func (w *World) touchesPlayer(gh *entities.Ghost) bool {
	return geometry.CirclesOverlap(gh.Position, gh.Radius, w.Player.Position, w.Player.Radius)
}
