package world

import (
	"time"

	"go.uber.org/zap"
)

// scaredTimer is one deadline shared by all ghosts. Arming never moves it
// earlier, so overlapping windows end with the latest one.
type scaredTimer struct {
	until time.Time
	armed bool
}

func (t *scaredTimer) arm(now time.Time, d time.Duration) {
	if end := now.Add(d); !t.armed || end.After(t.until) {
		t.until = end
	}
	t.armed = true
}

func (t *scaredTimer) active(now time.Time) bool {
	return t.armed && now.Before(t.until)
}

// expireScared runs at the tick boundary, before any of the tick's logic.
func (w *World) expireScared(now time.Time) {
	if !w.scared.armed || now.Before(w.scared.until) {
		return
	}
	w.scared = scaredTimer{}
	for _, gh := range w.Ghosts {
		gh.Scared = false
	}
	w.log.Debug("ghosts no longer scared")
}

func (w *World) finish(s State) {
	w.state = s
	w.log.Info("game over", zap.Stringer("state", s), zap.Int("score", w.score))
	w.observer.Finished(s, w.score)
}
