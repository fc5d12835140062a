// Package stages moves seed projects through the S1..S5 pipeline and picks
// the watchlist.
package stages

import (
	"etherion/internal/market"
	sr "etherion/internal/stablerand"
	"etherion/internal/types"
)

const (
	WATCH_BELOW = 0.25
	FAKE_ABOVE  = 0.6
)

type Pool struct {
	Pool []string `json:"pool"`
}

// Document is stages.json.
type Document struct {
	Cadence   string               `json:"cadence"`
	Stages    map[types.Stage]Pool `json:"stages"`
	FakeStart int                  `json:"fake_start"`
	Watchlist []string             `json:"watchlist"`
}

// Placement is where one project lands this run.
type Placement struct {
	Name    string
	From    types.Stage
	To      types.Stage
	Draw    float64
	Watched bool
}

// Place draws once per project; the same draw drives both advancement and
// watchlist membership.
func Place(p market.SeedProject, c types.Cadence) Placement {
	r := sr.Rand01("stage|" + p.Name + "|" + c.Key())
	to := p.Stage
	if th, ok := c.Band().AdvanceAbove(); ok && r > th && to != types.S5 {
		to = to.Next()
	}
	return Placement{
		Name:    p.Name,
		From:    p.Stage,
		To:      to,
		Draw:    r,
		Watched: r < WATCH_BELOW,
	}
}

// IsFakeStart ignores cadence.
func IsFakeStart(name string) bool {
	return sr.Rand01("fake|"+name) > FAKE_ABOVE
}

func EmptyPools() map[types.Stage]Pool {
	out := make(map[types.Stage]Pool, len(types.Stages))
	for _, st := range types.Stages {
		out[st] = Pool{Pool: []string{}}
	}
	return out
}

func Build(seeds []market.SeedProject, c types.Cadence) Document {
	pools := EmptyPools()
	watch := []string{}

	for _, p := range seeds {
		pl := Place(p, c)
		pool := pools[pl.To]
		pool.Pool = append(pool.Pool, pl.Name)
		pools[pl.To] = pool

		if pl.Watched {
			watch = append(watch, pl.Name)
		}
	}

	fake := 0
	for _, n := range watch {
		if IsFakeStart(n) {
			fake++
		}
	}

	return Document{
		Cadence:   c.Tag(),
		Stages:    pools,
		FakeStart: fake,
		Watchlist: watch,
	}
}
