package ranking

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Item is one normalized piece of content, either an RSS article or a social
// post. The caller owns construction; scoring never mutates it.
type Item struct {
	ID        string
	Title     string
	Summary   string
	URL       string
	Source    string
	Category  string
	Published time.Time
}

// Priority is the discrete tier derived from a score.
type Priority struct {
	Icon  string
	Class string
	Label string
}

// ScoredItem is an Item annotated by one pipeline pass.
type ScoredItem struct {
	Item
	Score       float64
	Priority    Priority
	Tags        []string
	Fingerprint string
}

// Scorer computes the engineer-relevance score of an item. It is pure and
// safe for concurrent use.
type Scorer struct {
	tables    Tables
	numericRe *regexp.Regexp
}

// Indicators that an item carries actual code or a runnable example.
var codeIndicators = []string{"```", "github.com", "code example", "implementation"}

var researchWords = []string{"paper", "research", "study"}

// NewScorer builds a Scorer over the given tables. Use DefaultTables() unless
// a test needs to pin its own weights.
func NewScorer(tables Tables) *Scorer {
	return &Scorer{
		tables:    tables,
		numericRe: regexp.MustCompile(`\d+[%x]|\d+ms|\d+gb|\d+fps|benchmark|performance`),
	}
}

// Score returns the relevance score of item, clamped to [0, MaxScore].
// Missing title, summary or URL lower the score; they never fail.
func (s *Scorer) Score(item Item) float64 {
	content := strings.ToLower(item.Title) + " " + strings.ToLower(item.Summary)

	score := 0.0
	for _, cat := range s.tables.Keywords {
		matches := countMatches(content, cat.Keywords)
		if matches > 0 {
			matchBonus := float64(matches) * 0.3
			if matchBonus > 1.0 {
				matchBonus = 1.0
			}
			score += cat.Weight * (1 + matchBonus)
		}
	}

	domain := domainOf(item.URL)
	if domain != "" {
		for _, ts := range s.tables.TrustedSources {
			if strings.Contains(domain, ts.Domain) {
				score *= ts.Bonus
				break
			}
		}
	}

	if containsAny(content, codeIndicators) {
		score *= 1.5
	}

	if s.numericRe.MatchString(content) {
		score *= 1.3
	}

	if strings.Contains(strings.ToLower(item.URL), "arxiv") || wordsInContent(content, researchWords) {
		score *= 1.2
	}

	businessScore := 0.0
	for _, group := range s.tables.Business {
		if countMatches(content, group.Keywords) > 0 {
			businessScore += s.tables.BusinessIndicatorStep
		}
	}
	if businessScore > s.tables.BusinessThreshold && score < s.tables.BusinessScoreGate {
		score *= s.tables.BusinessPenalty
	}

	if score > s.tables.MaxScore {
		score = s.tables.MaxScore
	}
	return score
}

// countMatches counts how many distinct keywords appear in content.
func countMatches(content string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if matchKeyword(content, kw) {
			n++
		}
	}
	return n
}

func wordsInContent(content string, words []string) bool {
	for _, w := range words {
		if strings.Contains(content, w) {
			return true
		}
	}
	return false
}

// matchKeyword distinguishes phrases and short tokens: phrases match as
// substrings, tokens of three characters or fewer require word boundaries
// (so "ai" does not fire inside "said"), everything else is a plain
// substring check. content must already be lower-cased.
func matchKeyword(content, keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	if strings.Contains(kw, " ") {
		return strings.Contains(content, kw)
	}
	if len(kw) <= 3 {
		re := shortTokenRe(kw)
		return re.MatchString(content)
	}
	return strings.Contains(content, kw)
}

// containsAny reports whether any of the (already lower-case) markers occurs
// in content as a plain substring.
func containsAny(content string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(content, m) {
			return true
		}
	}
	return false
}

var shortTokenCache = map[string]*regexp.Regexp{}

func init() {
	// Pre-compile boundary patterns for every short token in the default
	// tables so the hot path never compiles.
	t := DefaultTables()
	for _, cat := range t.Keywords {
		for _, kw := range cat.Keywords {
			if len(kw) <= 3 && !strings.Contains(kw, " ") {
				shortTokenCache[kw] = compileShortToken(kw)
			}
		}
	}
}

func shortTokenRe(kw string) *regexp.Regexp {
	if re, ok := shortTokenCache[kw]; ok {
		return re
	}
	return compileShortToken(kw)
}

func compileShortToken(kw string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
}

// domainOf extracts the lower-cased host of link. Unparsable or empty links
// yield "" and the caller skips the trust bonus.
func domainOf(link string) string {
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Host)
}
