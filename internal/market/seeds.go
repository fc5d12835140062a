package market

import "etherion/internal/types"

// Seeds is the fixed project table, in board order.
var Seeds = []SeedProject{
	{Bucket1000x, "再质押（Restaking 协议）", types.S1, "Karak"},
	{Bucket1000x, "社交基础设施（Social Infra）", types.S1, "OLAS"},
	{Bucket1000x, "数据可用性（DA）", types.S2, "Seed1"},
	{Bucket10000x, "零知识基础设施（ZK Infra）", types.S2, "ZKM"},
	{Bucket10000x, "RWA 资产通道", types.S2, "Ondo"},
}

const (
	ACTION_EVENT_ONLY = "仅事件/短线；严格风控"
	ACTION_STAGED     = "分批建仓至 50%；失去关键指标转弱减仓"
)

// ActionFor picks the action text by bucket.
func ActionFor(b Bucket) string {
	if b == Bucket10000x {
		return ACTION_EVENT_ONLY
	}
	return ACTION_STAGED
}
