package domain

import "strings"

// Tier is a coarse difficulty classification derived from exam labels.
// TierFoundation appears only in the English stage ladder; the classifier
// never returns it.
type Tier string

const (
	TierFoundation Tier = "基礎"
	TierStandard   Tier = "標準"
	TierApplied    Tier = "応用"
	TierAdvanced   Tier = "発展"
)

// tierOrder is the fixed total order used by the fallback chain:
// advanced > applied > standard.
var tierOrder = []Tier{TierAdvanced, TierApplied, TierStandard}

const commonTestKeyword = "共通テスト"

func defaultTierKeywords() map[Tier][]string {
	return map[Tier][]string{
		TierStandard: {"共通テスト", "日東駒専", "日大", "東洋", "駒澤", "専修"},
		TierApplied: {
			"MARCH", "明治", "青山", "立教", "中央", "法政",
			"関関同立", "関西", "関西学院", "同志社", "立命館",
			"地方国立", "地方国公立",
		},
		TierAdvanced: {
			"早稲田", "慶應", "早慶", "東大", "京大", "阪大", "名大",
			"東北大", "九大", "北大", "東京大学", "京都大学", "大阪大学",
			"名古屋大学", "東北大学", "九州大学", "北海道大学",
			"一橋", "東京工業", "東工", "神戸大学",
			"難関国公立", "最難関国公立",
		},
	}
}

// ClassifyTier maps a free-text exam label onto a tier by case-insensitive
// keyword containment, testing advanced before applied before standard.
// Labels that match nothing classify as standard: the planner fails open
// rather than rejecting an exam label it does not recognize.
func (t Tables) ClassifyTier(label string) Tier {
	lowered := strings.ToLower(label)
	for _, tier := range tierOrder {
		for _, keyword := range t.TierKeywords[tier] {
			if strings.Contains(lowered, strings.ToLower(keyword)) {
				return tier
			}
		}
	}
	if strings.Contains(lowered, strings.ToLower(commonTestKeyword)) {
		return TierStandard
	}
	return TierStandard
}

// FallbackChain returns the downgrade path from tier to standard,
// inclusive on both ends. chain[0] is always the input tier; unknown
// tiers get the full chain.
func FallbackChain(tier Tier) []Tier {
	for i, t := range tierOrder {
		if t == tier {
			chain := make([]Tier, len(tierOrder)-i)
			copy(chain, tierOrder[i:])
			return chain
		}
	}
	chain := make([]Tier, len(tierOrder))
	copy(chain, tierOrder)
	return chain
}
