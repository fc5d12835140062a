// etherion/internal/types/cadence.go
package types

import "strings"

// ---- Cadence ----

// Band selects how wide the cadence modulator swings a base value.
type Band int

const (
	BandDaily Band = iota
	BandTPlus3
	BandWeekly
)

// Range returns the affine multiplier for a band as lo + span*r.
func (b Band) Range() (lo, span float64) {
	switch b {
	case BandWeekly:
		return 0.85, 0.40
	case BandTPlus3:
		return 0.90, 0.20
	case BandDaily:
		return 0.95, 0.10
	default:
		return 0.95, 0.10
	}
}

// AdvanceAbove is the stage-draw threshold above which a project moves up one
// stage. Daily never advances.
func (b Band) AdvanceAbove() (float64, bool) {
	switch b {
	case BandWeekly:
		return 0.55, true
	case BandTPlus3:
		return 0.70, true
	default:
		return 0, false
	}
}

// Cadence is the run-wide reporting interval. key is the normalized input as
// given (it feeds every hash key), band is what it modulates like.
type Cadence struct {
	key   string
	band  Band
	known bool
}

var (
	Daily  = Cadence{key: "daily", band: BandDaily, known: true}
	TPlus3 = Cadence{key: "tplus3", band: BandTPlus3, known: true}
	Weekly = Cadence{key: "weekly", band: BandWeekly, known: true}
)

// ParseCadence never fails: unknown labels behave as daily but keep their
// own spelling for hashing.
func ParseCadence(s string) Cadence {
	k := strings.ToLower(strings.TrimSpace(s))
	switch k {
	case "daily":
		return Cadence{key: k, band: BandDaily, known: true}
	case "tplus3", "t+3":
		return Cadence{key: k, band: BandTPlus3, known: true}
	case "weekly":
		return Cadence{key: k, band: BandWeekly, known: true}
	default:
		return Cadence{key: k, band: BandDaily}
	}
}

func (c Cadence) Key() string { return c.key }
func (c Cadence) Band() Band   { return c.band }
func (c Cadence) Known() bool  { return c.known }

// Tag is the display label written into every document. It follows the
// spelling, not the band: only "tplus3" displays as t+3.
func (c Cadence) Tag() string {
	switch c.key {
	case "weekly":
		return "weekly"
	case "tplus3":
		return "t+3"
	default:
		return "daily"
	}
}

func (c Cadence) String() string { return c.Tag() }
