package market

import (
	sr "etherion/internal/stablerand"
	"etherion/internal/types"
)

// ProjectKey is the hash prefix every per-project draw hangs off.
func ProjectKey(p SeedProject, c types.Cadence) string {
	return p.Name + "|" + string(p.Bucket) + "|" + c.Key()
}

// AgentScore computes one factor as a 0..100 integer.
func AgentScore(m sr.Modulator, key string, f factor) int {
	base := sr.Lerp(f.Baseline, f.Spread, sr.Rand01(key+":"+f.Sub))
	return sr.RoundInt(sr.Clamp01(m.Boost(key+":"+f.ID, base)) * 100)
}

// WeightedScore folds agents into the 0..100 total with one decimal.
func WeightedScore(a Agents) float64 {
	sum := 0.0
	for _, f := range factors {
		sum += float64(f.Weight * float64(a[f.Name]))
	}
	score := sum / 100.0
	return sr.Round1(score * 100)
}

func ScoreProject(p SeedProject, m sr.Modulator) BoardItem {
	key := ProjectKey(p, m.Cadence())

	agents := make(Agents, len(factors))
	for _, f := range factors {
		agents[f.Name] = AgentScore(m, key, f)
	}

	return BoardItem{
		Project:    p.Name,
		Bucket:     p.Bucket,
		Structure:  p.Structure,
		Stage:      p.Stage,
		ScoreTotal: types.Float(WeightedScore(agents)),
		Confidence: types.Float(sr.Round1(sr.Lerp(0.55, 0.35, sr.Rand01(key+":conf")))),
		Agents:     agents,
		Metrics: Metrics{
			TVL3d:     types.Float(sr.Round1(sr.Lerp(-2.0, 8.0, sr.Rand01(key+":tvl3")))), // -2% .. +6%
			VolMcap1d: types.Float(sr.Round1(sr.Lerp(2.0, 8.0, sr.Rand01(key+":vol1")))),  // +2% .. +10%
		},
		Actions: ActionFor(p.Bucket),
	}
}

// ClassifyRegime is total over all scores.
func ClassifyRegime(score float64) Regime {
	switch {
	case score >= BULL_AT:
		return RegimeBull
	case score <= BEAR_AT:
		return RegimeBear
	default:
		return RegimeNeutral
	}
}

// MarketRegimeFor derives the single run-wide regime.
func MarketRegimeFor(c types.Cadence) MarketRegime {
	score := sr.Round1(sr.Lerp(0.30, 0.40, sr.Rand01("market|"+c.Key())))
	return MarketRegime{Regime: ClassifyRegime(score), Score: types.Float(score)}
}

// BuildBoard scores every seed in table order.
func BuildBoard(seeds []SeedProject, m sr.Modulator, schemaVersion, updatedAt string) Board {
	items := make([]BoardItem, 0, len(seeds))
	for _, p := range seeds {
		items = append(items, ScoreProject(p, m))
	}
	return Board{
		SchemaVersion: schemaVersion,
		Cadence:       m.Cadence().Tag(),
		UpdatedAt:     updatedAt,
		Items:         items,
		MarketRegime:  MarketRegimeFor(m.Cadence()),
	}
}
