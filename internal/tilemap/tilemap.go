package tilemap

import "github.com/karolinemerino/PacMan/internal/geometry"

// Kind selects how a wall cell is drawn. It has no effect on collision.
type Kind int

const (
	PipeHorizontal Kind = iota + 1
	PipeVertical
	CornerTopLeft
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
	Block
	CapLeft
	CapRight
	CapBottom
	CapTop
	PipeCross
	ConnectorTop
	ConnectorRight
	ConnectorBottom
	ConnectorLeft
)

var wallSymbols = map[rune]Kind{
	'-': PipeHorizontal,
	'|': PipeVertical,
	'1': CornerTopLeft,
	'2': CornerTopRight,
	'3': CornerBottomRight,
	'4': CornerBottomLeft,
	'b': Block,
	'[': CapLeft,
	']': CapRight,
	'_': CapBottom,
	'^': CapTop,
	'+': PipeCross,
	'5': ConnectorTop,
	'6': ConnectorRight,
	'7': ConnectorBottom,
	'8': ConnectorLeft,
}

type Wall struct {
	geometry.Rect
	Kind Kind
	Col  int
	Row  int
}

// Maze is the static obstacle set plus the initial collectible layout.
type Maze struct {
	Cols     int
	Rows     int
	CellSize float64
	Walls    []Wall
	Pellets  []geometry.Vec
	PowerUps []geometry.Vec
}

func NewDefaultMaze(cellSize float64) *Maze {
	return Parse(DefaultLayout, cellSize)
}

// Parse builds a maze from rows of symbols. Unknown symbols are empty space.
func Parse(rows []string, cellSize float64) *Maze {
	m := &Maze{Rows: len(rows), CellSize: cellSize}
	for row, line := range rows {
		col := 0
		for _, sym := range line {
			pos := geometry.Vec{X: float64(col) * cellSize, Y: float64(row) * cellSize}
			if kind, ok := wallSymbols[sym]; ok {
				m.Walls = append(m.Walls, Wall{
					Rect: geometry.Rect{X: pos.X, Y: pos.Y, Width: cellSize, Height: cellSize},
					Kind: kind,
					Col:  col,
					Row:  row,
				})
			} else {
				switch sym {
				case '.', 'p':
					m.Pellets = append(m.Pellets, m.CellCenter(col, row))
				case 'P':
					m.PowerUps = append(m.PowerUps, m.CellCenter(col, row))
				}
			}
			col++
		}
		if col > m.Cols {
			m.Cols = col
		}
	}
	return m
}

func (m *Maze) CellCenter(col, row int) geometry.Vec {
	return geometry.Vec{
		X: float64(col)*m.CellSize + m.CellSize/2,
		Y: float64(row)*m.CellSize + m.CellSize/2,
	}
}

// Blocked reports whether a body advanced by velocity would touch any wall.
func (m *Maze) Blocked(center geometry.Vec, radius float64, velocity geometry.Vec) bool {
	for _, w := range m.Walls {
		if geometry.WouldCollide(center, radius, velocity, w.Rect, m.CellSize) {
			return true
		}
	}
	return false
}

func (m *Maze) Width() float64 {
	return float64(m.Cols) * m.CellSize
}

func (m *Maze) Height() float64 {
	return float64(m.Rows) * m.CellSize
}
