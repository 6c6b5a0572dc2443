package world

import (
	"math/rand"
	"testing"
	"time"

	"github.com/karolinemerino/PacMan/internal/config"
	"github.com/karolinemerino/PacMan/internal/entities"
	"github.com/karolinemerino/PacMan/internal/geometry"
	"github.com/karolinemerino/PacMan/internal/input"
	"github.com/karolinemerino/PacMan/internal/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cell = 40.0

type recorder struct {
	scores   []int
	powerUps int
	eaten    []string
	finished []State
}

func (r *recorder) ScoreChanged(score int)  { r.scores = append(r.scores, score) }
func (r *recorder) PowerUpEaten()           { r.powerUps++ }
func (r *recorder) GhostEaten(color string) { r.eaten = append(r.eaten, color) }
func (r *recorder) Finished(s State, _ int) { r.finished = append(r.finished, s) }

func newTestWorld(rows []string, playerCol, playerRow int, ghosts ...*entities.Ghost) (*World, *recorder) {
	maze := tilemap.Parse(rows, cell)
	items := NewRegistry(maze.Pellets, maze.PowerUps, 3, 8)
	player := entities.NewPlayer(maze.CellCenter(playerCol, playerRow), 15, 5)
	rec := &recorder{}
	rules := Rules{PelletPoints: 10, ScaredDuration: 5 * time.Second}
	w := New(maze, items, player, ghosts, rules, WithObserver(rec), WithChooser(rand.New(rand.NewSource(3)).Intn))
	return w, rec
}

func ghostAt(col, row int, color string) *entities.Ghost {
	return entities.NewGhost(geometry.Vec{X: float64(col)*cell + cell/2, Y: float64(row)*cell + cell/2}, 15, 2, color)
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestPelletsScoreTenEachAndWin(t *testing.T) {
	w, rec := newTestWorld([]string{
		"bbbbbbb",
		"b ..  b",
		"bbbbbbb",
	}, 1, 1)

	for i := 0; i < 5; i++ {
		require.Equal(t, Running, w.Step(t0, entities.DirRight))
	}
	assert.Zero(t, w.Score())

	w.Step(t0, entities.DirRight)
	assert.Equal(t, 10, w.Score())
	assert.Len(t, w.Items.Pellets, 1)

	var state State
	for i := 0; i < 8; i++ {
		state = w.Step(t0, entities.DirRight)
	}
	assert.Equal(t, Won, state)
	assert.Equal(t, 20, w.Score())
	assert.Equal(t, []int{10, 20}, rec.scores)
	assert.Equal(t, []State{Won}, rec.finished)
}

func TestWinIgnoresRemainingPowerUps(t *testing.T) {
	w, rec := newTestWorld([]string{
		"bbbbbbb",
		"b.   Pb",
		"bbbbbbb",
		"b     b",
		"bbbbbbb",
	}, 1, 1, ghostAt(1, 3, "red"))

	assert.Equal(t, Won, w.Step(t0, entities.DirNone))
	assert.Len(t, w.Items.PowerUps, 1)
	assert.Len(t, w.Ghosts, 1)
	assert.Equal(t, []State{Won}, rec.finished)
}

func scaredLayout() []string {
	return []string{
		"bbbbbbb",
		"bP   .b",
		"bbbbbbb",
		"b     b",
		"bbbbbbb",
	}
}

func allScared(w *World) bool {
	for _, gh := range w.Ghosts {
		if !gh.Scared {
			return false
		}
	}
	return true
}

func noneScared(w *World) bool {
	for _, gh := range w.Ghosts {
		if gh.Scared {
			return false
		}
	}
	return true
}

func TestPowerUpScaresEveryGhostForFiveSeconds(t *testing.T) {
	w, rec := newTestWorld(scaredLayout(), 1, 1, ghostAt(1, 3, "red"), ghostAt(4, 3, "pink"))

	w.Step(t0, entities.DirNone)
	assert.Empty(t, w.Items.PowerUps)
	assert.True(t, allScared(w))
	assert.True(t, w.Scared(t0))
	assert.Equal(t, 1, rec.powerUps)

	w.Step(t0.Add(4900*time.Millisecond), entities.DirNone)
	assert.True(t, allScared(w))

	w.Step(t0.Add(5*time.Second), entities.DirNone)
	assert.True(t, noneScared(w))
	assert.False(t, w.Scared(t0.Add(5*time.Second)))
}

func TestOverlappingPowerUpsKeepLatestDeadline(t *testing.T) {
	w, _ := newTestWorld(scaredLayout(), 1, 1, ghostAt(1, 3, "red"))

	w.Step(t0, entities.DirNone)
	require.True(t, allScared(w))

	// A second power-up right under the player, three seconds later.
	w.Items.PowerUps = append(w.Items.PowerUps, Collectible{Position: w.Player.Position, Radius: 8})
	w.Step(t0.Add(3*time.Second), entities.DirNone)
	require.Empty(t, w.Items.PowerUps)

	w.Step(t0.Add(5*time.Second), entities.DirNone)
	assert.True(t, allScared(w), "first window must not end the second")

	w.Step(t0.Add(7900*time.Millisecond), entities.DirNone)
	assert.True(t, allScared(w))

	w.Step(t0.Add(8*time.Second), entities.DirNone)
	assert.True(t, noneScared(w))
}

func TestScaredTimerNeverMovesEarlier(t *testing.T) {
	var st scaredTimer
	st.arm(t0, 5*time.Second)
	st.arm(t0.Add(-2*time.Second), 5*time.Second)
	assert.Equal(t, t0.Add(5*time.Second), st.until)
	assert.True(t, st.active(t0.Add(4*time.Second)))
	assert.False(t, st.active(t0.Add(5*time.Second)))
}

func TestTouchingGhostLoses(t *testing.T) {
	w, rec := newTestWorld(scaredLayout(), 3, 1, ghostAt(3, 1, "red"))

	assert.Equal(t, Lost, w.Step(t0, entities.DirNone))
	assert.Equal(t, []State{Lost}, rec.finished)

	// Terminal states absorb further ticks.
	pos := w.Player.Position
	assert.Equal(t, Lost, w.Step(t0.Add(time.Second), entities.DirRight))
	assert.Equal(t, pos, w.Player.Position)
	assert.Len(t, rec.finished, 1)
}

func TestScaredGhostIsEaten(t *testing.T) {
	// The ghost overlaps the player, who spawns on the power-up.
	w, rec := newTestWorld(scaredLayout(), 1, 1, ghostAt(1, 1, "pink"))

	assert.Equal(t, Running, w.Step(t0, entities.DirNone))
	assert.Empty(t, w.Ghosts)
	assert.Equal(t, []string{"pink"}, rec.eaten)
	assert.Empty(t, rec.finished)
}

func TestGhostReversesAtCorridorDeadEnd(t *testing.T) {
	gh := ghostAt(2, 1, "red")
	w, _ := newTestWorld([]string{
		"bbbbbbb",
		"b     b",
		"bbbbbbb",
		"b    .b",
		"bbbbbbb",
	}, 1, 3, gh)

	// From x=100 the wall ahead is first sensed at the cell center x=220.
	for i := 0; i < 59; i++ {
		w.Step(t0, entities.DirNone)
		require.Equal(t, entities.DirRight, gh.Heading(), "tick %d at x=%v", i, gh.Position.X)
	}
	w.Step(t0, entities.DirNone)
	assert.Equal(t, 220.0, gh.Position.X)
	assert.Equal(t, entities.DirLeft, gh.Heading())
	assert.Zero(t, gh.PrevBlocked)

	w.Step(t0, entities.DirNone)
	assert.Equal(t, 218.0, gh.Position.X)
	assert.Equal(t, entities.SetOf(entities.DirUp, entities.DirDown), gh.PrevBlocked)
}

func TestPlayerStopsDeadAtWalls(t *testing.T) {
	w, _ := newTestWorld([]string{
		"bbbbbbb",
		"b     b",
		"b     b",
		"b    .b",
		"bbbbbbb",
	}, 1, 1)
	start := w.Player.Position

	w.Step(t0, entities.DirLeft)
	assert.Equal(t, geometry.Vec{}, w.Player.Velocity)
	assert.Equal(t, start, w.Player.Position)

	w.Step(t0, entities.DirUp)
	assert.Equal(t, start, w.Player.Position)

	w.Step(t0, entities.DirRight)
	assert.Equal(t, geometry.Vec{X: 5}, w.Player.Velocity)
	assert.Equal(t, start.Add(geometry.Vec{X: 5}), w.Player.Position)
}

func TestPlayerFollowsOnlyTheLastHeldKey(t *testing.T) {
	w, _ := newTestWorld([]string{
		"bbbbbbb",
		"b     b",
		"b     b",
		"b     b",
		"b    .b",
		"bbbbbbb",
	}, 2, 1)
	var keys input.Latch

	keys.Press(entities.DirDown)
	w.Step(t0, keys.Drive())
	assert.Equal(t, geometry.Vec{Y: 5}, w.Player.Velocity)

	keys.Press(entities.DirRight)
	w.Step(t0, keys.Drive())
	assert.Equal(t, geometry.Vec{X: 5}, w.Player.Velocity)

	keys.Release(entities.DirDown)
	w.Step(t0, keys.Drive())
	assert.Equal(t, geometry.Vec{X: 5}, w.Player.Velocity)

	keys.Press(entities.DirDown)
	keys.Press(entities.DirLeft)
	keys.Release(entities.DirLeft)
	w.Step(t0, keys.Drive())
	assert.Equal(t, geometry.Vec{}, w.Player.Velocity, "down is held but is not the last key")

	keys.Release(entities.DirRight)
	keys.Press(entities.DirDown)
	w.Step(t0, keys.Drive())
	assert.Equal(t, geometry.Vec{Y: 5}, w.Player.Velocity)
}

func TestGhostsNeverEnterWalls(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cfg := config.Default()
		cfg.Seed = seed
		w := FromConfig(cfg)
		for tick := 0; tick < 4000; tick++ {
			for _, gh := range w.Ghosts {
				gh.Advance()
				require.False(t, w.Maze.Blocked(gh.Position, gh.Radius, geometry.Vec{}),
					"seed %d tick %d: %s ghost inside a wall at %v", seed, tick, gh.Color, gh.Position)
				w.steerGhost(gh)
				require.InDelta(t, gh.Speed, geometry.Distance(geometry.Vec{}, gh.Velocity), 1e-9)
				require.True(t, gh.Velocity.X == 0 || gh.Velocity.Y == 0)
			}
		}
	}
}

func TestFromConfig(t *testing.T) {
	w := FromConfig(config.Default())
	assert.Equal(t, geometry.Vec{X: 60, Y: 60}, w.Player.Position)
	require.Len(t, w.Ghosts, 3)
	assert.Equal(t, "pink", w.Ghosts[1].Color)
	assert.Equal(t, geometry.Vec{X: 260, Y: 140}, w.Ghosts[1].Position)
	assert.Len(t, w.Items.Pellets, 71)
	assert.Len(t, w.Items.PowerUps, 1)
	assert.Equal(t, Running, w.State())
}
