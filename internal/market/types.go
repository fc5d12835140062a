package market

import "etherion/internal/types"

type Bucket string

const (
	Bucket1000x  Bucket = "1000x"
	Bucket10000x Bucket = "10000x"
)

type SeedProject struct {
	Bucket    Bucket
	Structure string
	Stage     types.Stage
	Name      string
}

// Agents maps factor name (A1_vol_mcap ...) to a 0..100 score.
type Agents map[string]int

type Metrics struct {
	TVL3d     types.Float `json:"TVL_3d"`
	VolMcap1d types.Float `json:"VolMcap_1d"`
}

type BoardItem struct {
	Project      string       `json:"project"`
	Bucket       Bucket       `json:"bucket"`
	Structure    string       `json:"structure"`
	Stage        types.Stage  `json:"stage"`
	ScoreTotal   types.Float  `json:"score_total"` // 0..100, 1 dp
	Confidence   types.Float  `json:"confidence"`  // 0.55..0.90, 1 dp
	CurrentPrice *types.Float `json:"current_price"`
	Agents       Agents       `json:"agents"`
	Metrics      Metrics      `json:"metrics"`
	Actions      string       `json:"actions"`
}

type Regime string

const (
	RegimeBull    Regime = "bull"
	RegimeBear    Regime = "bear"
	RegimeNeutral Regime = "neutral"
)

type MarketRegime struct {
	Regime Regime      `json:"s5_regime"`
	Score  types.Float `json:"score"`
}

// Board is board.json.
type Board struct {
	SchemaVersion string       `json:"schema_version"`
	Cadence       string       `json:"cadence"`
	UpdatedAt     string       `json:"updated_at"`
	Items         []BoardItem  `json:"items"`
	MarketRegime  MarketRegime `json:"market_regime"`
}

// agent factor: (baseline + spread*rand(sub)) boosted by cadence
type factor struct {
	ID       string
	Name     string
	Baseline float64
	Spread   float64
	Sub      string
	Weight   float64
}

// scoring weights, summing to 1.0
const (
	W_A1 = 0.18
	W_A2 = 0.15
	W_A3 = 0.12
	W_A4 = 0.10
	W_B1 = 0.15
	W_B2 = 0.10
	W_B3 = 0.10
	W_B4 = 0.10
)

var factors = []factor{
	{"A1", "A1_vol_mcap", 0.50, 0.45, "a", W_A1},
	{"A2", "A2_tvl", 0.45, 0.50, "b", W_A2},
	{"A3", "A3_sns", 0.40, 0.55, "c", W_A3},
	{"A4", "A4_depth", 0.40, 0.50, "d", W_A4},
	{"B1", "B1_leverage", 0.40, 0.55, "e", W_B1},
	{"B2", "B2_whale", 0.35, 0.60, "f", W_B2},
	{"B3", "B3_dev", 0.45, 0.50, "g", W_B3},
	{"B4", "B4_ecosys", 0.40, 0.50, "h", W_B4},
}

// FactorNames returns the agent names in weighting order.
func FactorNames() []string {
	out := make([]string, len(factors))
	for i, f := range factors {
		out[i] = f.Name
	}
	return out
}

// regime thresholds (inclusive on the named side)
const (
	BULL_AT = 0.66
	BEAR_AT = 0.34
)
