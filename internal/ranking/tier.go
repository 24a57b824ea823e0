package ranking

// Tier couples a minimum score to the priority presentation used by the
// report. Tables are evaluated top-down; the first threshold at or below the
// score wins.
type Tier struct {
	Threshold float64
	Priority  Priority
}

// DefaultTiers is the production five-level priority ladder.
func DefaultTiers() []Tier {
	return []Tier{
		{Threshold: 6.0, Priority: Priority{Icon: "🔥", Class: "hot", Label: "最高優先"}},
		{Threshold: 4.0, Priority: Priority{Icon: "⚡", Class: "high", Label: "高優先"}},
		{Threshold: 2.5, Priority: Priority{Icon: "📖", Class: "medium", Label: "中優先"}},
		{Threshold: 1.0, Priority: Priority{Icon: "📰", Class: "low", Label: "低優先"}},
		{Threshold: 0.0, Priority: Priority{Icon: "📄", Class: "minimal", Label: "参考"}},
	}
}

// Classify maps score onto tiers. The last tier acts as the catch-all, so
// every score lands in exactly one tier.
func Classify(score float64, tiers []Tier) Priority {
	for _, t := range tiers {
		if score >= t.Threshold {
			return t.Priority
		}
	}
	if len(tiers) == 0 {
		return Priority{}
	}
	return tiers[len(tiers)-1].Priority
}
