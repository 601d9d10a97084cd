package breakout

import (
	"sort"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Layout is a grid of single-character cell codes:
//
//	'0'       empty
//	'1'..'9'  simple brick with that many hits
//	'b'       bonus brick (1 hit, random effect)
//
// Any other character is an empty cell.
type Layout struct {
	ID   string
	Name string
	Rows []string
}

// Built-in layouts.
var builtinLayouts = []Layout{
	{
		ID:   "classic",
		Name: "Classic",
		Rows: []string{
			"1012112101",
			"1211111121",
			"0210220120",
			"0210220120",
			"1211111121",
			"1012112101",
		},
	},
	{
		ID:   "wall",
		Name: "Wall",
		Rows: []string{
			"1111111111",
			"1111111111",
			"1111111111",
			"1111111111",
			"1111111111",
			"1111111111",
			"1111111111",
			"1111111111",
			"1111111111",
			"1111111111",
		},
	},
	{
		ID:   "bonus",
		Name: "Bonus",
		Rows: []string{
			"1b11221b11",
			"1212bb2121",
			"0b102201b0",
			"1111111111",
		},
	},
	{
		ID:   "fortress",
		Name: "Fortress",
		Rows: []string{
			"3333333333",
			"3000bb0003",
			"3012112103",
			"3012112103",
			"3000000003",
			"3333333333",
		},
	},
}

// BuiltinLayouts returns the built-in layouts sorted by ID.
func BuiltinLayouts() []Layout {
	out := make([]Layout, len(builtinLayouts))
	copy(out, builtinLayouts)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// LayoutByID returns the built-in layout with the given ID.
func LayoutByID(id string) (Layout, bool) {
	for _, l := range builtinLayouts {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}

// LayoutFromFile converts a loaded layout file.
func LayoutFromFile(f config.LayoutFile) Layout {
	rows := make([]string, len(f.Rows))
	for i, r := range f.Rows {
		rows[i] = strings.TrimSpace(r)
	}
	return Layout{ID: f.ID, Name: f.Name, Rows: rows}
}

// Count returns the number of bricks the layout places.
func (l Layout) Count() int {
	n := 0
	for _, row := range l.Rows {
		for _, c := range row {
			if _, ok := cellHits(c); ok {
				n++
			}
		}
	}
	return n
}

// cellHits decodes a cell. ok is false for empty and unknown cells.
func cellHits(c rune) (hits int, ok bool) {
	switch {
	case c >= '1' && c <= '9':
		return int(c - '0'), true
	case c == 'b':
		return 1, true
	default:
		return 0, false
	}
}

// buildBricks places the layout's bricks in playfield coordinates.
// Bonus effects are drawn from rng in row-major order, so a seed fixes them.
func buildBricks(l Layout, geo config.BreakoutBricks, tints palette, rng *SimpleRNG) []Entity {
	bricks := make([]Entity, 0, l.Count())
	for row, cells := range l.Rows {
		col := 0
		for _, c := range cells {
			hits, ok := cellHits(c)
			if ok {
				x := geo.Left + float64(col)*(geo.Width+geo.GapX)
				y := geo.Top + float64(row)*(geo.Height+geo.GapY)

				b := Entity{
					Kind: KindSimpleBrick,
					Box:  core.NewBox(x, y, geo.Width, geo.Height),
					Hits: hits,
					Live: true,
				}
				if c == 'b' {
					b.Kind = KindBonusBrick
					b.Effect = randomEffect(rng)
				}
				b.Tint = tints.brickTint(b.Kind, b.Hits)
				bricks = append(bricks, b)
			}
			col++
		}
	}
	return bricks
}
