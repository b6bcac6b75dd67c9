// Package plot renders numeric series into a colored text canvas. It is
// the render sink of the live view: callers hand it resolved series,
// axis ranges and labels, and read back a string; it knows nothing about
// the log store or the query engine.
package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loggraph/loggraph/schema"
)

// Side selects which y-axis a series or label binds to.
type Side int

// The two y-axes of a plot.
const (
	Left Side = iota
	Right
)

// axis holds the scale of one y-side.
type axis struct {
	low, high float64
	label     string
	set       bool
}

// series is one plotted line.
type series struct {
	points []schema.AggPoint
	style  lipgloss.Style
	label  string
	side   Side
}

// Plot accumulates drawing state between Clear and Render.
type Plot struct {
	width  int
	height int

	title      string
	grid       bool
	xLow       float64
	xHigh      float64
	xTickPos   []float64
	xTickLabel []string
	axes       [2]axis
	series     []series
}

// New returns a plot with the given canvas size in cells. Width counts
// the plottable columns; axis gutters and labels render around them.
func New(width, height int) *Plot {
	return &Plot{width: width, height: height}
}

// Clear drops all series, ranges and labels but keeps the canvas size.
func (p *Plot) Clear() {
	size := Plot{width: p.width, height: p.height}
	*p = size
}

// SetTitle sets the centered title line.
func (p *Plot) SetTitle(title string) { p.title = title }

// SetGrid toggles the background grid dots.
func (p *Plot) SetGrid(on bool) { p.grid = on }

// SetXRange sets the domain covered by the x axis.
func (p *Plot) SetXRange(low, high float64) {
	p.xLow, p.xHigh = low, high
}

// SetXTicks sets tick positions (in domain coordinates) and their labels.
func (p *Plot) SetXTicks(positions []float64, labels []string) {
	p.xTickPos, p.xTickLabel = positions, labels
}

// SetAxisRange fixes the value range of one y-side.
func (p *Plot) SetAxisRange(side Side, low, high float64) {
	p.axes[side].low, p.axes[side].high = low, high
	p.axes[side].set = true
}

// SetAxisLabel names one y-side.
func (p *Plot) SetAxisLabel(side Side, label string) {
	p.axes[side].label = label
}

// Series adds one line to draw. Points must be in ascending x order.
func (p *Plot) Series(points []schema.AggPoint, color lipgloss.Color, label string, side Side) {
	p.series = append(p.series, series{
		points: points,
		style:  lipgloss.NewStyle().Foreground(color),
		label:  label,
		side:   side,
	})
}

// Width returns the plottable column count, the display width callers
// should aggregate down to.
func (p *Plot) Width() int { return p.width }

// Render draws the accumulated state into a multi-line string.
func (p *Plot) Render() string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}

	cells := make([][]rune, p.height)
	styles := make([][]*lipgloss.Style, p.height)
	for row := range cells {
		cells[row] = make([]rune, p.width)
		styles[row] = make([]*lipgloss.Style, p.width)
		for col := range cells[row] {
			cells[row][col] = ' '
		}
	}

	if p.grid {
		p.drawGrid(cells)
	}
	for i := range p.series {
		p.drawSeries(cells, styles, &p.series[i])
	}

	var b strings.Builder
	b.WriteString(p.titleLine())
	b.WriteByte('\n')
	for row := range p.height {
		b.WriteString(p.sideLabel(Left, row))
		b.WriteString(renderRow(cells[row], styles[row]))
		b.WriteString(p.sideLabel(Right, row))
		b.WriteByte('\n')
	}
	b.WriteString(p.xTickLine())
	if legend := p.legendLine(); legend != "" {
		b.WriteByte('\n')
		b.WriteString(legend)
	}
	return b.String()
}

// drawGrid fills every fourth row and column with faint dots.
func (p *Plot) drawGrid(cells [][]rune) {
	for row := 0; row < p.height; row += 2 {
		for col := 0; col < p.width; col += 4 {
			cells[row][col] = '·'
		}
	}
}

// drawSeries rasterizes one line: each point becomes a dot and vertical
// runs between neighbouring points are filled so the line stays connected
// at terminal resolution.
func (p *Plot) drawSeries(cells [][]rune, styles [][]*lipgloss.Style, s *series) {
	ax := p.axes[s.side]
	prevCol, prevRow := -1, -1
	for _, point := range s.points {
		col := p.xToCol(point.BucketStart)
		row := p.yToRow(point.Value, ax)
		if col < 0 || col >= p.width || row < 0 || row >= p.height {
			prevCol, prevRow = -1, -1
			continue
		}
		p.stamp(cells, styles, row, col, s)
		if prevCol >= 0 {
			p.connect(cells, styles, prevCol, prevRow, col, row, s)
		}
		prevCol, prevRow = col, row
	}
}

// connect fills the cells between two stamped points with a line body.
func (p *Plot) connect(cells [][]rune, styles [][]*lipgloss.Style, c0, r0, c1, r1 int, s *series) {
	span := c1 - c0
	if span <= 0 {
		return
	}
	for col := c0 + 1; col < c1; col++ {
		t := float64(col-c0) / float64(span)
		row := int(math.Round(float64(r0) + t*float64(r1-r0)))
		p.stamp(cells, styles, row, col, s)
	}
}

// stamp writes one braille dot with the series style.
func (p *Plot) stamp(cells [][]rune, styles [][]*lipgloss.Style, row, col int, s *series) {
	if row < 0 || row >= p.height || col < 0 || col >= p.width {
		return
	}
	cells[row][col] = '⣿'
	styles[row][col] = &s.style
}

// xToCol maps a domain x value to a canvas column.
func (p *Plot) xToCol(x float64) int {
	span := p.xHigh - p.xLow
	if span <= 0 {
		return -1
	}
	return int((x - p.xLow) / span * float64(p.width-1))
}

// yToRow maps a value to a canvas row (row 0 is the top).
func (p *Plot) yToRow(v float64, ax axis) int {
	if !ax.set || ax.high <= ax.low {
		return -1
	}
	frac := (v - ax.low) / (ax.high - ax.low)
	if frac < 0 || frac > 1 {
		return -1
	}
	return int(math.Round(float64(p.height-1) * (1 - frac)))
}

// renderRow groups equal-styled runs so each row carries minimal escapes.
func renderRow(cells []rune, styles []*lipgloss.Style) string {
	var b strings.Builder
	col := 0
	for col < len(cells) {
		style := styles[col]
		run := col
		for run < len(cells) && styles[run] == style {
			run++
		}
		segment := string(cells[col:run])
		if style != nil {
			segment = style.Render(segment)
		}
		b.WriteString(segment)
		col = run
	}
	return b.String()
}

// titleLine centers the title over the canvas.
func (p *Plot) titleLine() string {
	pad := gutterWidth + (p.width-len([]rune(p.title)))/2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + p.title
}

// gutterWidth is the fixed width reserved for each y-axis label column.
const gutterWidth = 8

// sideLabel renders the y-axis gutter cell for one row: range bounds at
// the corners, the axis label midway, blanks elsewhere.
func (p *Plot) sideLabel(side Side, row int) string {
	ax := p.axes[side]
	var text string
	switch {
	case !ax.set:
	case row == 0:
		text = trimFloat(ax.high)
	case row == p.height-1:
		text = trimFloat(ax.low)
	case row == p.height/2:
		text = ax.label
	}
	if len(text) > gutterWidth-1 {
		text = text[:gutterWidth-1]
	}
	if side == Left {
		return fmt.Sprintf("%*s ", gutterWidth-1, text)
	}
	return fmt.Sprintf(" %-*s", gutterWidth-1, text)
}

// xTickLine lays the tick labels under their canvas columns.
func (p *Plot) xTickLine() string {
	line := make([]rune, gutterWidth+p.width)
	for i := range line {
		line[i] = ' '
	}
	for i, pos := range p.xTickPos {
		if i >= len(p.xTickLabel) {
			break
		}
		col := p.xToCol(pos)
		if col < 0 {
			continue
		}
		label := []rune(p.xTickLabel[i])
		start := gutterWidth + col - len(label)/2
		if start < 0 {
			start = 0
		}
		if start+len(label) > len(line) {
			start = len(line) - len(label)
		}
		copy(line[start:], label)
	}
	return strings.TrimRight(string(line), " ")
}

// legendLine lists the series labels in their colors.
func (p *Plot) legendLine() string {
	if len(p.series) == 0 {
		return ""
	}
	parts := make([]string, 0, len(p.series))
	for i := range p.series {
		s := &p.series[i]
		parts = append(parts, s.style.Render("── "+s.label))
	}
	return strings.Repeat(" ", gutterWidth) + strings.Join(parts, "   ")
}

// trimFloat formats an axis bound without trailing zeros.
func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", v), "0"), ".")
}
