package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mamadbah2/dairy/internal/domain/models"
)

const barWidth = 40

// Chart colors, cycled per series.
var palette = []lipgloss.Color{
	lipgloss.Color("#e57373"),
	lipgloss.Color("#4db6ac"),
	lipgloss.Color("#29434e"),
	lipgloss.Color("#ffd54f"),
	lipgloss.Color("#ff8a65"),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	axisStyle  = lipgloss.NewStyle().Faint(true)
)

// Series is a named row of values, one per chart category.
type Series struct {
	Name   string
	Values []float64
}

// Pie renders each point's share of the total as a labelled bar with a
// one-decimal percentage.
func Pie(title string, points []models.Point) string {
	var total float64
	for _, p := range points {
		total += p.Value
	}

	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Label
	}
	width := labelWidth(labels)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")
	for i, p := range points {
		var share float64
		if total != 0 {
			share = p.Value / total
		}
		bar := colorFor(i).Render(strings.Repeat("█", scale(share, 1)))
		fmt.Fprintf(&sb, "%-*s %s %.1f%%\n", width, p.Label, bar, share*100)
	}
	return sb.String()
}

// StackedBars renders one bar per category made of every series' segment.
func StackedBars(title, unit string, categories []string, series []Series) string {
	var top float64
	for i := range categories {
		var sum float64
		for _, s := range series {
			sum += valueAt(s, i)
		}
		top = math.Max(top, sum)
	}

	width := labelWidth(categories)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")
	for i, category := range categories {
		var bar strings.Builder
		var sum float64
		for j, s := range series {
			v := valueAt(s, i)
			sum += v
			bar.WriteString(colorFor(j).Render(strings.Repeat("█", scale(v, top))))
		}
		fmt.Fprintf(&sb, "%-*s %s %s\n", width, category, bar.String(), Number(sum))
	}
	sb.WriteString(legend(series, unit))
	return sb.String()
}

// GroupedBars renders, per category, one bar per series.
func GroupedBars(title, unit string, categories []string, series []Series) string {
	var top float64
	for _, s := range series {
		for _, v := range s.Values {
			top = math.Max(top, v)
		}
	}

	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Name
	}
	width := labelWidth(names)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")
	for i, category := range categories {
		sb.WriteString(category)
		sb.WriteString("\n")
		for j, s := range series {
			v := valueAt(s, i)
			bar := colorFor(j).Render(strings.Repeat("█", scale(v, top)))
			fmt.Fprintf(&sb, "  %-*s %s %s\n", width, s.Name, bar, Number(round(v)))
		}
	}
	sb.WriteString(legend(series, unit))
	return sb.String()
}

func legend(series []Series, unit string) string {
	parts := make([]string, 0, len(series))
	for i, s := range series {
		parts = append(parts, colorFor(i).Render("■")+" "+s.Name)
	}
	line := strings.Join(parts, "  ")
	if unit != "" {
		line += "  " + axisStyle.Render("("+unit+")")
	}
	return line + "\n"
}

func colorFor(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(palette[i%len(palette)])
}

func scale(v, top float64) int {
	if top <= 0 || v <= 0 {
		return 0
	}
	return int(math.Round(v / top * barWidth))
}

func valueAt(s Series, i int) float64 {
	if i < len(s.Values) {
		return s.Values[i]
	}
	return 0
}

func labelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w = max(w, lipgloss.Width(l))
	}
	return w
}

// round trims float noise such as 7.000000000000001 from chart labels.
func round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
