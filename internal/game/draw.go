package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/karolinemerino/PacMan/internal/entities"
	"github.com/karolinemerino/PacMan/internal/tilemap"
	"github.com/karolinemerino/PacMan/internal/world"
)

var (
	wallColor   = color.RGBA{R: 33, G: 33, B: 222, A: 255}
	playerColor = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	scaredColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	pelletColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bannerColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	hintColor   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	whitePixel  *ebiten.Image
)

// whiteSource is the 1x1 texture DrawTriangles samples for flat fills.
func whiteSource() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// Arms a wall kind extends from its cell center.
var wallArms = map[tilemap.Kind][]entities.Direction{
	tilemap.PipeHorizontal:    {entities.DirLeft, entities.DirRight},
	tilemap.PipeVertical:      {entities.DirUp, entities.DirDown},
	tilemap.CornerTopLeft:     {entities.DirRight, entities.DirDown},
	tilemap.CornerTopRight:    {entities.DirLeft, entities.DirDown},
	tilemap.CornerBottomRight: {entities.DirLeft, entities.DirUp},
	tilemap.CornerBottomLeft:  {entities.DirRight, entities.DirUp},
	tilemap.CapLeft:           {entities.DirRight},
	tilemap.CapRight:          {entities.DirLeft},
	tilemap.CapBottom:         {entities.DirUp},
	tilemap.CapTop:            {entities.DirDown},
	tilemap.PipeCross:         {entities.DirUp, entities.DirDown, entities.DirLeft, entities.DirRight},
	tilemap.ConnectorTop:      {entities.DirLeft, entities.DirRight, entities.DirUp},
	tilemap.ConnectorRight:    {entities.DirUp, entities.DirDown, entities.DirRight},
	tilemap.ConnectorBottom:   {entities.DirLeft, entities.DirRight, entities.DirDown},
	tilemap.ConnectorLeft:     {entities.DirUp, entities.DirDown, entities.DirLeft},
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Render at native resolution, then scale up.
	nativeW, nativeH := g.nativeSize()
	if g.off == nil || g.off.Bounds().Dx() != nativeW || g.off.Bounds().Dy() != nativeH {
		g.off = ebiten.NewImage(nativeW, nativeH)
	}
	off := g.off
	off.Clear()

	g.drawWalls(off)
	for _, c := range g.world.Items.Pellets {
		vector.DrawFilledCircle(off, float32(c.Position.X), float32(c.Position.Y), float32(c.Radius), pelletColor, true)
	}
	for _, c := range g.world.Items.PowerUps {
		vector.DrawFilledCircle(off, float32(c.Position.X), float32(c.Position.Y), float32(c.Radius), pelletColor, true)
	}
	for _, gh := range g.world.Ghosts {
		c := ghostColor(gh.Color)
		if gh.Scared {
			c = scaredColor
		}
		vector.DrawFilledCircle(off, float32(gh.Position.X), float32(gh.Position.Y), float32(gh.Radius), c, true)
	}
	drawPlayer(off, g.world.Player)
	g.drawHUD(off, nativeW, nativeH)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(off, op)
}

func ghostColor(name string) color.Color {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return color.White
}

func (g *Game) drawWalls(dst *ebiten.Image) {
	const stroke = 2
	half := float32(g.world.Maze.CellSize / 2)
	for _, w := range g.world.Maze.Walls {
		x, y := float32(w.X), float32(w.Y)
		if w.Kind == tilemap.Block {
			inset := half / 4
			vector.StrokeRect(dst, x+inset, y+inset, float32(w.Width)-2*inset, float32(w.Height)-2*inset, stroke, wallColor, true)
			continue
		}
		cx, cy := x+half, y+half
		arms := wallArms[w.Kind]
		for _, d := range arms {
			dx, dy := entities.DirDelta(d)
			vector.StrokeLine(dst, cx, cy, cx+float32(dx)*half, cy+float32(dy)*half, stroke, wallColor, true)
		}
		if len(arms) == 1 {
			vector.DrawFilledCircle(dst, cx, cy, stroke*2, wallColor, true)
		}
	}
}

// drawPlayer fills the body as a wedge with the mouth cut out, turned to Rotation.
func drawPlayer(dst *ebiten.Image, p *entities.Player) {
	cx, cy := float32(p.Position.X), float32(p.Position.Y)
	mouth := math.Max(p.Mouth, 0)
	start := float32(p.Rotation + mouth)
	end := float32(p.Rotation + 2*math.Pi - mouth)

	var path vector.Path
	path.MoveTo(cx, cy)
	path.Arc(cx, cy, float32(p.Radius), start, end, vector.Clockwise)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := playerColor.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, whiteSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *Game) drawHUD(dst *ebiten.Image, nativeW, nativeH int) {
	text.Draw(dst, fmt.Sprintf("Score: %d", g.world.Score()), basicfont.Face7x13, 4, nativeH-5, color.White)

	var banner string
	switch g.world.State() {
	case world.Won:
		banner = "YOU WIN"
	case world.Lost:
		banner = "YOU LOSE"
	default:
		return
	}
	// basicfont.Face7x13 advances 7 pixels per glyph.
	mazeH := nativeH - hudHeight
	text.Draw(dst, banner, basicfont.Face7x13, (nativeW-len(banner)*7)/2, mazeH/2, bannerColor)
	hint := "Press Q to exit"
	text.Draw(dst, hint, basicfont.Face7x13, (nativeW-len(hint)*7)/2, mazeH/2+16, hintColor)
}
