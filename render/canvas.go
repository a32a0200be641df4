package render

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	markerRune = '●'
	edgeRune   = '·'
)

// ink selects the style of a canvas cell.
type ink int

const (
	inkNone ink = iota
	inkEdge
	inkEdgeVisited
	inkLabel
	inkMarker // + Color
)

// Layers; a cell only accepts a write from the same or a higher layer.
const (
	layerEdge = iota + 1
	layerLabel
	layerMarker
)

type cell struct {
	r     rune
	ink   ink
	layer int
}

// Canvas renders the board as a width×height character picture: vertex
// positions (X, Y) are fitted into the grid with Y pointing up, edges are
// drawn as Bresenham lines and each vertex is a colored marker followed by
// its label. Returns "" for an empty board or a non-positive size.
func (b *Board) Canvas(width, height int) string {
	if b == nil || width < 1 || height < 1 {
		return ""
	}
	verts := b.Vertices()
	if len(verts) == 0 {
		return ""
	}
	edges := b.Edges()

	pts := make([][2]float64, 0, len(verts))
	for _, v := range verts {
		pts = append(pts, [2]float64{v.Position.X, v.Position.Y})
	}
	pr := fit(pts, width, height)
	g := newGrid(width, height)

	for _, e := range edges {
		k := inkEdge
		if e.Color == Visited {
			k = inkEdgeVisited
		}
		x0, y0 := pr.cell(e.From.X, e.From.Y)
		x1, y1 := pr.cell(e.To.X, e.To.Y)
		g.line(x0, y0, x1, y1, k)
	}
	for _, v := range verts {
		x, y := pr.cell(v.Position.X, v.Position.Y)
		g.put(x, y, markerRune, inkMarker+ink(v.Color), layerMarker)
	}
	for _, v := range verts {
		x, y := pr.cell(v.Position.X, v.Position.Y)
		lx, ly := pr.cell(v.LabelPos.X, v.LabelPos.Y)
		if lx <= x && ly == y {
			lx = x + 1
		}
		if n := utf8.RuneCountInString(v.Label); lx+n > width {
			lx = x - n
			if ly != y {
				lx = width - n
			}
		}
		g.text(lx, ly, v.Label)
	}

	return g.String()
}

// projection maps world coordinates onto grid cells.
type projection struct {
	minX, minY     float64
	scaleX, scaleY float64
	width, height  int
}

// fit computes a projection that spreads pts over the whole grid.
// A degenerate axis (all points equal) is centered.
func fit(pts [][2]float64, width, height int) projection {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	pr := projection{minX: minX, minY: minY, width: width, height: height}
	if span := maxX - minX; span > 0 {
		pr.scaleX = float64(width-1) / span
	} else {
		pr.minX -= float64(width-1) / 2
		pr.scaleX = 1
	}
	if span := maxY - minY; span > 0 {
		pr.scaleY = float64(height-1) / span
	} else {
		pr.minY -= float64(height-1) / 2
		pr.scaleY = 1
	}

	return pr
}

// cell projects (x, y) to a clamped (column, row).
func (p projection) cell(x, y float64) (int, int) {
	col := int(math.Round((x - p.minX) * p.scaleX))
	row := p.height - 1 - int(math.Round((y-p.minY)*p.scaleY))

	return clamp(col, 0, p.width-1), clamp(row, 0, p.height-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// grid is a fixed-size cell buffer.
type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, cells: make([]cell, w*h)}
}

// put writes r at (x, y) unless a higher layer already owns the cell.
func (g *grid) put(x, y int, r rune, k ink, layer int) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	c := &g.cells[y*g.w+x]
	if c.layer > layer {
		return
	}
	*c = cell{r: r, ink: k, layer: layer}
}

// line draws a Bresenham segment between two cells.
func (g *grid) line(x0, y0, x1, y1 int, k ink) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		g.put(x0, y0, edgeRune, k, layerEdge)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// text writes s from (x, y) rightwards, truncated at the grid edge.
func (g *grid) text(x, y int, s string) {
	for _, r := range s {
		g.put(x, y, r, inkLabel, layerLabel)
		x++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// String renders every row, styling runs of equal ink together.
func (g *grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := g.cells[y*g.w : (y+1)*g.w]
		for i := 0; i < len(row); {
			j := i
			var run strings.Builder
			for j < len(row) && row[j].ink == row[i].ink {
				r := row[j].r
				if r == 0 {
					r = ' '
				}
				run.WriteRune(r)
				j++
			}
			sb.WriteString(row[i].ink.render(run.String()))
			i = j
		}
	}

	return sb.String()
}

func (k ink) render(s string) string {
	switch {
	case k == inkNone:
		return s
	case k == inkEdge:
		return edgeStyle.Render(s)
	case k == inkEdgeVisited:
		return visitedStyle.Render(s)
	case k == inkLabel:
		return labelStyle.Render(s)
	default:
		return Color(k - inkMarker).Style().Render(s)
	}
}
