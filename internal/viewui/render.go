package viewui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/loggraph/loggraph/core/agg"
	"github.com/loggraph/loggraph/internal/plot"
)

const (
	// timeTickCount is how many HH:MM labels span the x axis.
	timeTickCount = 5

	// chrome rows around the plot canvas: status, tabs, title, tick
	// labels, legend, help.
	chromeRows = 8
)

var (
	liveStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	pausedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	staleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	unitStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tileStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Align(lipgloss.Center)
	dialogStyle    = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(1, 2)
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// View implements tea.Model.
func (m Model) View() string {
	if m.dialogOpen {
		return m.dialogView()
	}

	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(m.tabLine())
	b.WriteByte('\n')

	if m.activeTab == 0 {
		b.WriteString(m.indicatorView())
	} else if m.activeTab-1 < len(m.plotCache) {
		b.WriteString(m.plotCache[m.activeTab-1])
	}

	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(" f follow · g grid · j/k window · h/l day · r refresh · tab panes · q quit"))
	return b.String()
}

// statusLine shows the follow mode, date, window bounds and cadence; a
// stale marker appears when the last refresh attempt found no data.
func (m Model) statusLine() string {
	mode := pausedStyle.Render("( Paused )")
	if m.state.Follow {
		mode = liveStyle.Render("(  Live  )")
	}
	start := m.state.WindowStart()
	line := fmt.Sprintf("%s Date: %s | Window: %s - %s | Refresh: %ds",
		mode,
		m.state.WindowEnd.Format("2006-01-02"),
		start.Format("15:04:05"),
		m.state.WindowEnd.Format("15:04:05"),
		m.state.RefreshSeconds)
	if m.noData {
		line += staleStyle.Render("  [unable to refresh]")
	}
	return line
}

// tabLine renders the tab bar with the active pane highlighted.
func (m Model) tabLine() string {
	titles := make([]string, 0, len(plotTabs)+1)
	titles = append(titles, "Indicators")
	for _, tab := range plotTabs {
		titles = append(titles, tab.Title)
	}
	parts := make([]string, len(titles))
	for i, title := range titles {
		if i == m.activeTab {
			parts[i] = activeTabStyle.Render(title)
		} else {
			parts[i] = tabStyle.Render(title)
		}
	}
	return strings.Join(parts, " ")
}

// indicatorView lays the four latest-value tiles in a two-by-two grid.
func (m Model) indicatorView() string {
	tiles := make([]string, len(indicators))
	for i, spec := range indicators {
		display := "-.--"
		if value, ok := m.result.Latest(spec.Kind, spec.Field); ok {
			display = fmt.Sprintf("%.1f", value)
		}
		tiles[i] = tileStyle.Render(fmt.Sprintf("%s\n%s %s",
			spec.Label, valueStyle.Render(display), unitStyle.Render(spec.Unit)))
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, tiles[0], " ", tiles[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, tiles[2], " ", tiles[3])
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

// dialogView renders the refresh-rate prompt in place of the main view.
func (m Model) dialogView() string {
	var body strings.Builder
	body.WriteString("Set refresh rate (in seconds):\n\n")
	body.WriteString(m.input.View())
	if m.dialogErr != "" {
		body.WriteString("\n" + errStyle.Render(m.dialogErr))
	}
	body.WriteString("\n\nenter to apply · esc to cancel")

	box := dialogStyle.Render(body.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// rebuildPlots re-renders every plot tab from the last good query result.
// This is the only place plot content is computed, so the redraw counter
// below is exactly the number of actual redraws.
func (m *Model) rebuildPlots() {
	width, height := m.plotSize()
	windowSeconds := float64(m.state.WindowSeconds)
	tickPos, tickLabels := timeTicks(m.state.WindowStart(), m.state.WindowSeconds)

	for i, tab := range plotTabs {
		canvas := plot.New(width, height)
		canvas.SetGrid(m.showGrid)
		canvas.SetXRange(0, windowSeconds)

		if m.result.Empty() {
			canvas.SetTitle("No data available")
			m.plotCache[i] = canvas.Render()
			continue
		}

		canvas.SetTitle(tab.Title)
		canvas.SetXTicks(tickPos, tickLabels)
		for _, spec := range tab.Plots {
			series, ok := m.result.Kinds[spec.Kind]
			if !ok {
				continue
			}
			values, ok := series.Fields[spec.Field]
			if !ok {
				continue
			}
			points := agg.Aggregate(series.Times, values, windowSeconds, width, m.cfg.Reducer)
			if len(points) == 0 {
				continue
			}
			canvas.SetAxisRange(spec.Side, spec.YLow, spec.YHigh)
			canvas.SetAxisLabel(spec.Side, spec.Label)
			canvas.Series(points, spec.Color, fmt.Sprintf("%s (%s)", spec.Label, spec.Unit), spec.Side)
		}
		m.plotCache[i] = canvas.Render()
	}
	m.redraws++
}

// plotSize derives the plot canvas from the terminal size, honoring the
// configured width override.
func (m Model) plotSize() (int, int) {
	width := m.width - 18
	if m.cfg.Width > 0 {
		width = m.cfg.Width
	}
	if width < 0 {
		width = 0
	}
	height := m.height - chromeRows
	if height < 4 {
		height = 4
	}
	return width, height
}

// timeTicks spreads HH:MM labels evenly across the window.
func timeTicks(start time.Time, windowSeconds int) ([]float64, []string) {
	if windowSeconds <= 0 {
		return nil, nil
	}
	interval := float64(windowSeconds) / (timeTickCount - 1)
	positions := make([]float64, 0, timeTickCount)
	labels := make([]string, 0, timeTickCount)
	for i := range timeTickCount {
		offset := float64(i) * interval
		positions = append(positions, offset)
		labels = append(labels, start.Add(time.Duration(offset*float64(time.Second))).Format("15:04"))
	}
	return positions, labels
}
