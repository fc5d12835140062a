package market

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/width"
)

// HumanUSD abbreviates a dollar amount (250.00K, 1.20M).
func HumanUSD(x float64) string {
	ax := math.Abs(x)
	switch {
	case ax >= 1_000_000_000:
		return fmt.Sprintf("%.2fB", x/1_000_000_000)
	case ax >= 1_000_000:
		return fmt.Sprintf("%.2fM", x/1_000_000)
	case ax >= 1_000:
		return fmt.Sprintf("%.2fK", x/1_000)
	default:
		return fmt.Sprintf("%.0f", x)
	}
}

// DisplayWidth counts terminal cells; wide and fullwidth runes take two.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// PadRight pads s with spaces to w display cells.
func PadRight(s string, w int) string {
	if d := DisplayWidth(s); d < w {
		return s + strings.Repeat(" ", w-d)
	}
	return s
}

func FormatHeader(schemaVersion, cadence string, r MarketRegime) string {
	return fmt.Sprintf("board %s • [%s] • S5: %s (%.1f)", schemaVersion, cadence, r.Regime, float64(r.Score))
}

const TableHead = "Project  | Bucket | Stage | Score | Conf | TVL3d% | Vol/Mcap% | Structure"

// Project | Bucket | Stage | Score | Conf | TVL3d% | Vol/Mcap% | Structure
func FormatRow(it BoardItem) string {
	return fmt.Sprintf("%-8s | %-6s | %-5s | %5.1f | %4.1f | %+6.1f | %9.1f | %s",
		it.Project, it.Bucket, it.Stage, float64(it.ScoreTotal), float64(it.Confidence),
		float64(it.Metrics.TVL3d), float64(it.Metrics.VolMcap1d), PadRight(it.Structure, 28))
}

// FormatAgents renders the eight factors in weighting order.
func FormatAgents(a Agents) string {
	parts := make([]string, 0, len(factors))
	for _, f := range factors {
		parts = append(parts, fmt.Sprintf("%s=%d", f.ID, a[f.Name]))
	}
	return strings.Join(parts, " ")
}
