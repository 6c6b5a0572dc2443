package input

import "github.com/karolinemerino/PacMan/internal/entities"

// Latch tracks which directional keys are held and which was pressed last.
type Latch struct {
	held    entities.DirectionSet
	lastKey entities.Direction
}

// Press marks d held and makes it the last key.
func (l *Latch) Press(d entities.Direction) {
	if d == entities.DirNone {
		return
	}
	l.held = l.held.With(d)
	l.lastKey = d
}

// Release clears the held flag for d only; the last key is left alone.
func (l *Latch) Release(d entities.Direction) {
	l.held = l.held.Minus(entities.SetOf(d))
}

// Drive is the last key while it is still held, otherwise DirNone.
// Other held keys never take over.
func (l *Latch) Drive() entities.Direction {
	if l.held.Has(l.lastKey) {
		return l.lastKey
	}
	return entities.DirNone
}

func (l *Latch) LastKey() entities.Direction {
	return l.lastKey
}
