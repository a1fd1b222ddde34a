package kpi

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the trivial statistics shown on tier-2 panels
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Latest float64 `json:"latest"`
	// Change is the percentage change from the first to the latest point
	Change float64 `json:"change"`
}

// Summarize computes a summary over a series. An empty series yields a zero summary.
func Summarize(series []float64) Summary {
	if len(series) == 0 {
		return Summary{}
	}

	s := Summary{
		Count:  len(series),
		Mean:   stat.Mean(series, nil),
		Min:    floats.Min(series),
		Max:    floats.Max(series),
		Latest: series[len(series)-1],
	}
	s.Change = Change(series[0], s.Latest)

	return s
}

// Percent returns part as a percentage of whole, 0 when whole is 0
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// Change returns the percentage change from a to b, 0 when a is 0
func Change(a, b float64) float64 {
	if a == 0 {
		return 0
	}
	return (b - a) / math.Abs(a) * 100
}

// Trend returns an arrow for a percentage change
func Trend(change float64) string {
	switch {
	case change > 0.5:
		return "▲"
	case change < -0.5:
		return "▼"
	default:
		return "■"
	}
}

// FormatChange formats a change as "+4.2%"
func FormatChange(change float64) string {
	return fmt.Sprintf("%+.1f%%", change)
}

// Sparkline renders a series as block characters
func Sparkline(series []float64) string {
	if len(series) == 0 {
		return ""
	}
	blocks := []rune("▁▂▃▄▅▆▇█")
	lo, hi := floats.Min(series), floats.Max(series)

	out := make([]rune, len(series))
	for i, v := range series {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(blocks)-1))
		}
		out[i] = blocks[idx]
	}
	return string(out)
}
