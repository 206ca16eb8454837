package domain

// Cause is one self-reported reason for missing a target score. Target is
// the action node the cause maps to when it triggers a recommendation.
type Cause struct {
	Key    string
	Label  string
	Target NodeKey
	Hint   string
}

// causesCommon is the generic three-item list used by subjects without a
// specific mapping.
var causesCommon = []Cause{
	{Key: "unlearned", Label: "未修/定義あいまい", Target: NodeOverview, Hint: "まだ学んでいない範囲_定義整理から"},
	{Key: "practice", Label: "演習不足", Target: NodePractice, Hint: "典型問題〜実戦演習の量が不足"},
	{Key: "format", Label: "形式_時間配分に不慣れ", Target: NodeFormatDrill, Hint: "マーク/設問形式_時間最適化"},
}

var causesEnglish = []Cause{
	{Key: "unlearned", Label: "未修（単語/文法など）", Target: NodeOverview, Hint: "基礎→標準の順に底上げ"},
	{Key: "reading", Label: "長文読解不足", Target: NodePractice, Hint: "標準→応用→発展へ段階練習"},
	{Key: "grammar", Label: "文法_語法が弱い", Target: NodePractice, Hint: "標準文法→応用文法+語法→総合英文法"},
	{Key: "vocab", Label: "単語_熟語が弱い", Target: NodePractice, Hint: "基礎→標準→応用→発展"},
	{Key: "listening", Label: "リスニングが弱い", Target: NodePractice, Hint: "発音→標準(L)過去問→共通(L)対策"},
	{Key: "writing", Label: "英作文が弱い", Target: NodePractice, Hint: "例文暗記→標準作文→応用作文"},
	{Key: "conversation", Label: "会話問題が苦手", Target: NodePractice, Hint: "会話問題の定型練習"},
	{Key: "format", Label: "形式/時間配分に不慣れ", Target: NodeFormatDrill, Hint: "共通テスト/標準私大の最適化"},
	{Key: "school", Label: "志望校別対策が必要", Target: NodePastExam, Hint: "志望校過去問→傾向対策"},
}

var causesMath = append(append([]Cause{}, causesCommon...),
	Cause{Key: "calc", Label: "計算ミスが多い", Target: NodePractice, Hint: "計算演習_途中式の型化"},
	Cause{Key: "method", Label: "典型手法の未習熟", Target: NodePractice, Hint: "例題→類題ドリル→入試演習"},
)

var causesJapanese = append(append([]Cause{}, causesCommon...),
	Cause{Key: "vocab", Label: "語彙/評論用語不足", Target: NodeOverview, Hint: "語彙_用語の基礎固め"},
	Cause{Key: "logic", Label: "要旨把握が曖昧", Target: NodePractice, Hint: "段落要約→設問根拠トレーニング"},
)

var causesScience = append(append([]Cause{}, causesCommon...),
	Cause{Key: "formula", Label: "公式/定義の未整理", Target: NodeOverview, Hint: "定義→例題→練習の順で"},
	Cause{Key: "experiment", Label: "実験考察に弱い", Target: NodePractice, Hint: "設問パターン別演習"},
)

var causesBySubject = map[Subject][]Cause{
	SubjectEnglish:     causesEnglish,
	SubjectMathIA:      causesMath,
	SubjectMathIAIIBC:  causesMath,
	SubjectMathIII:     causesMath,
	SubjectModernJP:    causesJapanese,
	SubjectClassicalJP: causesJapanese,
	SubjectKanbun:      causesJapanese,
	SubjectEssay:       causesJapanese,
	SubjectPhysicsBase: causesScience,
	SubjectChemBase:    causesScience,
	SubjectBioBase:     causesScience,
	SubjectGeoBase:     causesScience,
	SubjectPhysics:     causesScience,
	SubjectChemistry:   causesScience,
	SubjectBiology:     causesScience,
	SubjectGeoscience:  causesScience,
	SubjectJPHistory:   causesScience,
	SubjectWorldHist:   causesScience,
	SubjectGeography:   causesScience,
	SubjectCivicsEcon:  causesScience,
	SubjectCivicsEthic: causesScience,
	SubjectInformatics: causesCommon,
	SubjectOther:       causesCommon,
}

// CausesFor returns the weakness checklist registered for a subject, in
// declaration order. Subjects without an entry use the generic list.
func CausesFor(subject Subject) []Cause {
	if causes, ok := causesBySubject[subject]; ok {
		return causes
	}
	return causesCommon
}
