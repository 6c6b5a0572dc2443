package world

import "github.com/karolinemerino/PacMan/internal/entities"

// Chooser returns a uniformly random index in [0, n).
type Chooser func(n int) int

// Decide runs one junction step for a ghost heading somewhere with memory prev
// and the freshly probed blocked set. It returns the memory to keep, the
// heading to steer, and whether the heading was (re)chosen.
//
// prev is replaced by blocked only when blocked has strictly more members, so
// within an approach it never shrinks. A choice is made whenever the two sets
// differ, or when the current heading itself is blocked (a dead end, where
// nothing else would make the sets differ). After a choice prev resets to empty.
func Decide(prev, blocked entities.DirectionSet, heading entities.Direction, choose Chooser) (entities.DirectionSet, entities.Direction, bool) {
	if blocked.Len() > prev.Len() {
		prev = blocked
	}
	if blocked == prev && !blocked.Has(heading) {
		return prev, heading, false
	}

	candidates := prev.With(heading).Minus(blocked)
	if candidates.Len() > 0 {
		return 0, pick(candidates, choose), true
	}
	return 0, deadEnd(blocked, heading, choose), true
}

// deadEnd prefers any open side turn, then the way back. A ghost boxed in on
// all four sides still reverses so that it keeps moving.
func deadEnd(blocked entities.DirectionSet, heading entities.Direction, choose Chooser) entities.Direction {
	back := entities.Reverse(heading)
	open := entities.SetOf(entities.Directions[:]...).Minus(blocked)
	if side := open.Minus(entities.SetOf(back)); side.Len() > 0 {
		return pick(side, choose)
	}
	if back == entities.DirNone {
		return entities.DirRight
	}
	return back
}

func pick(s entities.DirectionSet, choose Chooser) entities.Direction {
	options := s.Slice()
	return options[choose(len(options))]
}
