package ranking

// KeywordCategory is one weighted group of engineer-relevance keywords.
// Categories are additive: a technical term and a business term can both
// contribute to the same item's score.
type KeywordCategory struct {
	Name     string
	Keywords []string
	Weight   float64
}

// BusinessGroup is a group of business-only indicators. They never add to the
// score directly; they feed the low-tech-value penalty.
type BusinessGroup struct {
	Name     string
	Keywords []string
}

// SourceTrust maps a domain substring to a multiplicative credibility bonus.
// The table is ordered and the first matching entry wins.
type SourceTrust struct {
	Domain string
	Bonus  float64
}

// Tables holds every lookup table the Scorer consults. Instances are treated
// as immutable once constructed; tests override individual fields via
// DefaultTables().
type Tables struct {
	Keywords       []KeywordCategory
	Business       []BusinessGroup
	TrustedSources []SourceTrust

	// Tunable business-penalty heuristic. The defaults reproduce the
	// long-standing production behavior; none of them is load-bearing.
	BusinessIndicatorStep float64 // added per matched business group
	BusinessThreshold     float64 // indicator total that marks an item business-flavored
	BusinessScoreGate     float64 // penalty applies only below this running score
	BusinessPenalty       float64 // multiplier for business-only items

	MaxScore float64
}

// DefaultTables returns the production keyword, business and source-trust
// tables.
func DefaultTables() Tables {
	return Tables{
		Keywords: []KeywordCategory{
			{
				Name:     "implementation",
				Keywords: []string{"code", "api", "sdk", "library", "framework", "tutorial", "example", "github", "implementation", "coding"},
				Weight:   3.0,
			},
			{
				Name:     "ai_ml",
				Keywords: []string{"pytorch", "tensorflow", "huggingface", "langchain", "openai", "anthropic", "gpt", "llm", "transformer", "neural", "model", "training", "inference"},
				Weight:   2.5,
			},
			{
				Name:     "infrastructure",
				Keywords: []string{"docker", "kubernetes", "aws", "gcp", "azure", "production", "deploy", "devops", "mlops", "scaling"},
				Weight:   2.0,
			},
			{
				Name:     "performance",
				Keywords: []string{"optimization", "performance", "benchmark", "speed", "latency", "throughput", "memory", "gpu"},
				Weight:   1.8,
			},
			{
				Name:     "research",
				Keywords: []string{"paper", "research", "arxiv", "study", "algorithm", "method", "evaluation"},
				Weight:   1.5,
			},
			{
				Name:     "tools",
				Keywords: []string{"tool", "platform", "service", "database", "vector", "embedding", "search"},
				Weight:   1.3,
			},
		},
		Business: []BusinessGroup{
			{Name: "funding", Keywords: []string{"funding", "investment", "series", "valuation"}},
			{Name: "partnership", Keywords: []string{"partnership", "acquisition", "merger"}},
			{Name: "release", Keywords: []string{"launch", "release", "announce", "unveil"}},
		},
		TrustedSources: []SourceTrust{
			{Domain: "arxiv.org", Bonus: 2.0},
			{Domain: "github.com", Bonus: 1.8},
			{Domain: "pytorch.org", Bonus: 1.8},
			{Domain: "tensorflow.org", Bonus: 1.8},
			{Domain: "huggingface.co", Bonus: 1.8},
			{Domain: "openai.com", Bonus: 1.5},
			{Domain: "anthropic.com", Bonus: 1.5},
			{Domain: "engineering.fb.com", Bonus: 1.5},
			{Domain: "ai.googleblog.com", Bonus: 1.5},
			{Domain: "deepmind.com", Bonus: 1.5},
			{Domain: "research.google.com", Bonus: 1.3},
			{Domain: "microsoft.com", Bonus: 1.3},
			{Domain: "aws.amazon.com", Bonus: 1.3},
		},
		BusinessIndicatorStep: 0.3,
		BusinessThreshold:     0.5,
		BusinessScoreGate:     2.0,
		BusinessPenalty:       0.7,
		MaxScore:              10.0,
	}
}
