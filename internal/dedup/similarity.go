package dedup

import "regexp"

// TextSimilarity scores how alike two texts are, in [0,1]. The Deduplicator
// only depends on this interface, so a stronger implementation (shingling,
// MinHash) can replace Jaccard without touching its control flow.
type TextSimilarity interface {
	Similarity(a, b string) float64
}

var (
	latinWordRe = regexp.MustCompile(`\b[a-z]{3,}\b`)
	cjkWordRe   = regexp.MustCompile(`[ぁ-ゟ一-龯]{2,}`)
)

// Jaccard computes set overlap over extracted words: Latin runs of three or
// more letters (case-folded by the caller's normalization) and CJK runs of
// two or more characters, covering the mixed Japanese/English content the
// feeds carry.
type Jaccard struct{}

func (Jaccard) Similarity(a, b string) float64 {
	wa := extractWords(a)
	wb := extractWords(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}

	intersection := 0
	for w := range wa {
		if _, ok := wb[w]; ok {
			intersection++
		}
	}
	union := len(wa) + len(wb) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func extractWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range latinWordRe.FindAllString(text, -1) {
		words[w] = struct{}{}
	}
	for _, w := range cjkWordRe.FindAllString(text, -1) {
		words[w] = struct{}{}
	}
	return words
}
