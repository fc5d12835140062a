package sensors

// Layer is a fixed sensor layer and its ordered probes.
type Layer struct {
	ID     string
	Probes []string
}

var Layers = []Layer{
	{"L1_supply", []string{"lp_lock_ratio", "holder_gini"}},
	{"L2_demand", []string{"tg_growth_7d", "x_engagement"}},
	{"L3_liquidity", []string{"depth_usd"}},
	{"L4_devops", []string{"commit_7d"}},
	{"L5_narrative", []string{"news_pulse"}},
	{"L6_risk", []string{"contract_risk"}},
}

type ProbeKind int

const (
	KindOther   ProbeKind = iota
	KindRatio             // 50..100
	KindPercent           // -2..+6
	KindDepth             // integer USD
	KindCommits           // integer count
	KindRisk              // 低/中/高
)

func KindOf(probe string) ProbeKind {
	switch probe {
	case "lp_lock_ratio", "holder_gini":
		return KindRatio
	case "tg_growth_7d", "x_engagement", "news_pulse":
		return KindPercent
	case "depth_usd":
		return KindDepth
	case "commit_7d":
		return KindCommits
	case "contract_risk":
		return KindRisk
	default:
		return KindOther
	}
}

var RiskLevels = [3]string{"低", "中", "高"}
