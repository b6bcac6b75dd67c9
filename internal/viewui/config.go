// Package viewui implements the interactive live view: a bubbletea
// program that owns the navigation state machine, dispatches windowed
// queries off the UI loop, and redraws plot tabs only when the queried
// content actually changed.
package viewui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/loggraph/loggraph/internal/plot"
	"github.com/loggraph/loggraph/schema"
)

// plotSpec describes one line inside a plot tab: which stored field it
// reads, how it is labelled and colored, and which y-axis it scales on.
type plotSpec struct {
	Field string
	Label string
	Unit  string
	Color lipgloss.Color
	Side  plot.Side
	YLow  float64
	YHigh float64
	Kind  schema.SourceKind
}

// tabSpec is one plot tab. The indicator tab is separate and always first.
type tabSpec struct {
	Title string
	Plots []plotSpec
}

// plotTabs is the fixed layout of the viewer: the reservoir pair from the
// serial stream and the environment pair from the polled sensor. The data
// keys match what the devices emit.
var plotTabs = []tabSpec{
	{
		Title: "Reservoir",
		Plots: []plotSpec{
			{Field: "niveau_utile", Label: "Level", Unit: "cm", Color: lipgloss.Color("1"), Side: plot.Left, YLow: 0, YHigh: 50, Kind: schema.SerialKind},
			{Field: "volume_litres", Label: "Volume", Unit: "L", Color: lipgloss.Color("208"), Side: plot.Right, YLow: 0, YHigh: 250, Kind: schema.SerialKind},
		},
	},
	{
		Title: "Sensors",
		Plots: []plotSpec{
			{Field: "temperature", Label: "Temperature", Unit: "°C", Color: lipgloss.Color("4"), Side: plot.Left, YLow: 0, YHigh: 60, Kind: schema.SensorKind},
			{Field: "humidity", Label: "Humidity", Unit: "%", Color: lipgloss.Color("2"), Side: plot.Right, YLow: 0, YHigh: 100, Kind: schema.SensorKind},
		},
	},
}

// indicatorSpec is one tile on the indicator tab, showing the latest
// value of a field in the current window.
type indicatorSpec struct {
	Label string
	Unit  string
	Field string
	Kind  schema.SourceKind
}

var indicators = []indicatorSpec{
	{Label: "Level", Unit: "cm", Field: "niveau_utile", Kind: schema.SerialKind},
	{Label: "Volume", Unit: "L", Field: "volume_litres", Kind: schema.SerialKind},
	{Label: "Temperature", Unit: "°C", Field: "temperature", Kind: schema.SensorKind},
	{Label: "Humidity", Unit: "%", Field: "humidity", Kind: schema.SensorKind},
}
