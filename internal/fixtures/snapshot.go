// Package fixtures assembles the three dashboard documents for one run and
// writes them to disk.
package fixtures

import (
	"time"

	"etherion/internal/market"
	"etherion/internal/sensors"
	sr "etherion/internal/stablerand"
	"etherion/internal/stages"
	"etherion/internal/types"
)

const (
	DEFAULT_SCHEMA_VERSION = "1.3.x"
	TIMESTAMP_LAYOUT       = "2006-01-02 15:04 UTC"
)

// Snapshot is one generation run.
type Snapshot struct {
	Cadence types.Cadence
	Board   market.Board
	Stages  stages.Document
	Sensors sensors.Document
}

func UpdatedAt(t time.Time) string { return t.UTC().Format(TIMESTAMP_LAYOUT) }

// Generate runs all three builders. Only the timestamp depends on now.
func Generate(c types.Cadence, schemaVersion string, now time.Time) Snapshot {
	if schemaVersion == "" {
		schemaVersion = DEFAULT_SCHEMA_VERSION
	}
	m := sr.NewModulator(c)
	return Snapshot{
		Cadence: c,
		Board:   market.BuildBoard(market.Seeds, m, schemaVersion, UpdatedAt(now)),
		Stages:  stages.Build(market.Seeds, c),
		Sensors: sensors.Build(sensors.Layers, m),
	}
}

// Skeleton has the documents' shape with every collection empty.
func Skeleton(c types.Cadence, schemaVersion string, now time.Time) Snapshot {
	if schemaVersion == "" {
		schemaVersion = DEFAULT_SCHEMA_VERSION
	}
	return Snapshot{
		Cadence: c,
		Board: market.Board{
			SchemaVersion: schemaVersion,
			Cadence:       c.Tag(),
			UpdatedAt:     UpdatedAt(now),
			Items:         []market.BoardItem{},
			MarketRegime:  market.MarketRegime{Regime: market.RegimeNeutral, Score: 0.5},
		},
		Stages: stages.Document{
			Cadence:   c.Tag(),
			Stages:    stages.EmptyPools(),
			Watchlist: []string{},
		},
		Sensors: sensors.Document{
			Cadence: c.Tag(),
			Layers:  []sensors.LayerReport{},
		},
	}
}
