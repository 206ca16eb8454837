package domain

func defaultEnglishLadder() map[Tier][]string {
	return map[Tier][]string{
		TierFoundation: {"基礎単語", "基礎文法", "基礎解釈"},
		TierStandard: {
			"標準単語", "標準文法", "熟語", "標準解釈", "標準長文",
			"標準(R)過去問", "共通テスト(R)対策", "標準私立対策",
			"発音", "標準(L)過去問", "共通テスト(L)対策",
			"基礎リスニング対策", "会話問題対策",
		},
		TierApplied: {
			"例文暗記", "応用単語", "応用長文", "標準作文", "応用過去問",
			"難関私立対策", "地方国公立対策", "応用文法+語法対策",
			"総合英文法対策", "応用解釈対策", "理系テーマ対策",
			"最新テーマ対策", "応用作文",
		},
		TierAdvanced: {
			"発展長文", "発展過去問", "発展単語対策", "発展文法+語法対策",
			"発展解釈対策", "発展リスニング対策", "発展作文対策", "要約対策",
			"早稲田対策", "慶應対策", "難関国公立対策",
			"北大対策", "東北大対策", "名大対策", "阪大対策", "九大対策",
			"京大対策", "東大対策",
		},
	}
}

// Shortlist picks the first n stages of the English ladder for a tier,
// used to interpolate "next few steps" snippets into advice text.
func (t Tables) Shortlist(tier Tier, n int) []string {
	stages := t.EnglishLadder[tier]
	if n > len(stages) {
		n = len(stages)
	}
	out := make([]string, n)
	copy(out, stages[:n])
	return out
}
