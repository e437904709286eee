package export

import (
	"bytes"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/gasin/seiti/pkg/board"
)

// SVGOptions configures board visualization export.
type SVGOptions struct {
	CellSize   int     // Pixel size of one board cell (default: 32)
	Margin     int     // Canvas margin in pixels (default: 24)
	StoneRatio float64 // Stone radius as a fraction of CellSize/2 (default: 0.85)
	Title      string  // Optional title drawn above the board
}

// DefaultSVGOptions returns sensible default board export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize:   32,
		Margin:     24,
		StoneRatio: 0.85,
		Title:      "seiti board",
	}
}

// ExportSVG renders state as an SVG grid: a board.Size x board.Size grid of
// cells tinted by territory color, with filled circles for stones.
func ExportSVG(state board.State, opts SVGOptions) ([]byte, error) {
	if err := state.CheckShape(); err != nil {
		return nil, err
	}

	if opts.CellSize <= 0 {
		opts.CellSize = 32
	}
	if opts.Margin <= 0 {
		opts.Margin = 24
	}
	if opts.StoneRatio <= 0 {
		opts.StoneRatio = 0.85
	}

	boardPixels := opts.CellSize * board.Size
	headerHeight := 0
	if opts.Title != "" {
		headerHeight = 30
	}
	width := boardPixels + 2*opts.Margin
	height := boardPixels + 2*opts.Margin + headerHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#dcb35c")

	if opts.Title != "" {
		canvas.Text(width/2, 20, opts.Title,
			"text-anchor:middle;font-size:16px;font-weight:bold;fill:#2d2d2d;font-family:sans-serif")
	}

	originX := opts.Margin
	originY := opts.Margin + headerHeight

	drawGridLines(canvas, originX, originY, opts.CellSize)
	drawTerritory(canvas, state, originX, originY, opts.CellSize)
	drawStones(canvas, state, originX, originY, opts.CellSize, opts.StoneRatio)

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders state and writes it to filepath with 0644
// permissions.
func SaveSVGToFile(state board.State, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(state, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

func territoryColor(color board.Color) string {
	switch color {
	case board.Black:
		return "fill:#2d2d2d;opacity:0.25"
	case board.White:
		return "fill:#f5f5f5;opacity:0.45"
	default:
		return ""
	}
}

func stoneFill(color board.Color) string {
	if color == board.Black {
		return "fill:#1a1a1a;stroke:#000;stroke-width:1"
	}
	return "fill:#f5f5f5;stroke:#333;stroke-width:1"
}

// drawGridLines draws the board.Size+1 horizontal and vertical lines that
// delimit the grid's cells.
func drawGridLines(canvas *svg.SVG, originX, originY, cellSize int) {
	span := cellSize * board.Size
	for i := 0; i <= board.Size; i++ {
		y := originY + i*cellSize
		canvas.Line(originX, y, originX+span, y, "stroke:#2d2d2d;stroke-width:1;opacity:0.5")
		x := originX + i*cellSize
		canvas.Line(x, originY, x, originY+span, "stroke:#2d2d2d;stroke-width:1;opacity:0.5")
	}
}

// drawTerritory fills every claimed-but-stoneless cell with a translucent
// tint of its owning color, so leveled tiles are visible against the grid.
func drawTerritory(canvas *svg.SVG, state board.State, originX, originY, cellSize int) {
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			i := board.Idx(x, y)
			color := board.Color(state.Territory[i])
			if color == board.Empty {
				continue
			}
			canvas.Rect(originX+x*cellSize, originY+y*cellSize, cellSize, cellSize, territoryColor(color))
		}
	}
}

// drawStones renders one filled circle per stone, sized to leave a visible
// gridline gap between adjacent stones.
func drawStones(canvas *svg.SVG, state board.State, originX, originY, cellSize int, stoneRatio float64) {
	radius := int(float64(cellSize) / 2 * stoneRatio)
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			color := board.Color(state.Stones[board.Idx(x, y)])
			if color == board.Empty {
				continue
			}
			cx := originX + x*cellSize + cellSize/2
			cy := originY + y*cellSize + cellSize/2
			canvas.Circle(cx, cy, radius, stoneFill(color))
		}
	}
}
