package ranking

import (
	"regexp"
	"strings"
)

const maxTags = 3

// tagRule is one ordered detection rule: either a compiled pattern or a
// keyword set. A rule that fires appends its tag once.
type tagRule struct {
	tag      string
	pattern  *regexp.Regexp
	keywords []string
}

// Detection order is fixed so tag output is deterministic across runs.
var tagRules = []tagRule{
	{tag: "Programming", pattern: regexp.MustCompile(`\b(python|javascript|rust|go|c\+\+|java)\b`)},
	{tag: "AI/ML", keywords: []string{"ai", "ml", "machine learning", "deep learning", "neural", "gpt", "llm"}},
	{tag: "Infrastructure", keywords: []string{"docker", "kubernetes", "aws", "cloud", "devops"}},
	{tag: "Web Dev", keywords: []string{"web", "frontend", "backend", "api", "react", "vue"}},
	{tag: "Data", keywords: []string{"data", "database", "analytics", "visualization"}},
}

func (r tagRule) matches(content string) bool {
	if r.pattern != nil {
		return r.pattern.MatchString(content)
	}
	for _, kw := range r.keywords {
		if matchKeyword(content, kw) {
			return true
		}
	}
	return false
}

// DetectTags inspects an item's text and returns up to three topic tags in
// detection order. Tags are not exclusive; an item can be both "AI/ML" and
// "Infrastructure".
func DetectTags(item Item) []string {
	content := strings.ToLower(item.Title) + " " + strings.ToLower(item.Summary)

	var tags []string
	for _, rule := range tagRules {
		if len(tags) >= maxTags {
			break
		}
		if rule.matches(content) {
			tags = append(tags, rule.tag)
		}
	}
	return tags
}
