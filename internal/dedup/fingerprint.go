package dedup

import (
	"crypto/sha1"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	urlRe     = regexp.MustCompile(`https?://\S+`)
	mentionRe = regexp.MustCompile(`@\w+`)
	hashtagRe = regexp.MustCompile(`#\w+`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// Normalize reduces text to its comparable core: lower-cased, with URLs,
// @mentions and hashtags removed and whitespace collapsed. Two posts that
// differ only in casing, links or tag spam normalize to the same string.
func Normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = urlRe.ReplaceAllString(s, "")
	s = mentionRe.ReplaceAllString(s, "")
	s = hashtagRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Fingerprint hashes the normalized text to a short stable digest used for
// exact-duplicate detection.
func Fingerprint(text string) string {
	h := sha1.Sum([]byte(Normalize(text)))
	return hex.EncodeToString(h[:])[:12]
}
