package domain

// Tables bundles the catalog data that the surrounding application may
// override through configuration: material links, tier keyword lists, and
// the English stage ladder. The subject, node, and cause enumerations are
// closed and never overridden.
type Tables struct {
	Links         map[NodeKey]MaterialLink
	TierKeywords  map[Tier][]string
	EnglishLadder map[Tier][]string
}

// Overrides carries the optional per-table replacements loaded from
// configuration. A nil map leaves the built-in table untouched; a present
// entry replaces that table's value for the given key wholesale.
type Overrides struct {
	Links         map[NodeKey]MaterialLink `yaml:"links"`
	TierKeywords  map[Tier][]string        `yaml:"tier_keywords"`
	EnglishLadder map[Tier][]string        `yaml:"english_ladder"`
}

func DefaultTables() Tables {
	return Tables{
		Links:         defaultLinks(),
		TierKeywords:  defaultTierKeywords(),
		EnglishLadder: defaultEnglishLadder(),
	}
}

// Apply returns a copy of the tables with the overrides merged in.
func (t Tables) Apply(o Overrides) Tables {
	merged := Tables{
		Links:         make(map[NodeKey]MaterialLink, len(t.Links)),
		TierKeywords:  make(map[Tier][]string, len(t.TierKeywords)),
		EnglishLadder: make(map[Tier][]string, len(t.EnglishLadder)),
	}
	for k, v := range t.Links {
		merged.Links[k] = v
	}
	for k, v := range t.TierKeywords {
		merged.TierKeywords[k] = v
	}
	for k, v := range t.EnglishLadder {
		merged.EnglishLadder[k] = v
	}
	for k, v := range o.Links {
		merged.Links[k] = v
	}
	for k, v := range o.TierKeywords {
		merged.TierKeywords[k] = v
	}
	for k, v := range o.EnglishLadder {
		merged.EnglishLadder[k] = v
	}
	return merged
}

// Link returns the material link for a node, if one is configured.
func (t Tables) Link(node NodeKey) (MaterialLink, bool) {
	link, ok := t.Links[node]
	return link, ok
}
