// Package normalize provides the text cleanup applied to extracted
// specification content: NFKC folding, CJK spacing repair, and heuristic
// sentence-boundary reinsertion for fragments that lost punctuation when the
// source document was flattened.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Text applies NFKC normalization and trims surrounding whitespace.
// Every cell and line extracted from the source documents passes through
// here before any structural parsing.
func Text(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

// sentenceStarters are words observed to begin a new sentence in the error
// tables when the preceding clause lost its 。 during extraction.
const sentenceStarters = `既に|また|この|その|正しく|サンプル|JV|パラメータ|利用|レジストリ`

var sentenceBreaks = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(失敗)(` + sentenceStarters + `)`), "$1。$2"},
	{regexp.MustCompile(`(不正)(` + sentenceStarters + `|データ)`), "$1。$2"},
	{regexp.MustCompile(`(されている)(` + sentenceStarters + `)`), "$1。$2"},
	{regexp.MustCompile(`(ください)(` + sentenceStarters + `)`), "$1。$2"},
	{regexp.MustCompile(`(です|ます)(` + sentenceStarters + `)`), "$1。$2"},
}

// InsertSentenceBreaks restores 。 between a known sentence-ending word and
// a known sentence-starting word: 失敗既に becomes 失敗。既に. The pattern
// list is fixed; text matching none of it passes through unchanged.
func InsertSentenceBreaks(s string) string {
	for _, p := range sentenceBreaks {
		s = p.re.ReplaceAllString(s, p.repl)
	}
	return s
}

var (
	spaceBeforeOpen  = regexp.MustCompile(`\s+\(`)
	spaceAfterOpen   = regexp.MustCompile(`\(\s+`)
	spaceBeforeClose = regexp.MustCompile(`\s+\)`)
	spaceAfterClose  = regexp.MustCompile(`\)\s+`)
	spaceRun         = regexp.MustCompile(`\s+`)
)

// Clean applies the full catalog text cleanup: placeholder removal, CJK
// spacing repair, parenthesis tightening, whitespace collapsing, and
// sentence-break reinsertion.
func Clean(s string) string {
	s = strings.ReplaceAll(s, "同上同上", "")
	s = strings.ReplaceAll(s, "同上", "")
	s = squashCJKSpacing(s)
	s = spaceBeforeOpen.ReplaceAllString(s, "(")
	s = spaceAfterOpen.ReplaceAllString(s, "(")
	s = spaceBeforeClose.ReplaceAllString(s, ")")
	s = spaceAfterClose.ReplaceAllString(s, ")")
	s = spaceRun.ReplaceAllString(s, " ")
	s = InsertSentenceBreaks(s)
	return strings.TrimSpace(s)
}

func isCJK(r rune) bool {
	return (r >= 0x3040 && r <= 0x30FF) || (r >= 0x4E00 && r <= 0x9FFF)
}

func isASCIIAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// squashCJKSpacing drops a whitespace run when it separates two CJK
// characters, or a CJK character and an ASCII alphanumeric. Latin-to-Latin
// spacing is kept.
func squashCJKSpacing(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(runes) {
		if !unicode.IsSpace(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if i > 0 && j < len(runes) {
			prev, next := runes[i-1], runes[j]
			if (isCJK(prev) && (isCJK(next) || isASCIIAlnum(next))) ||
				(isASCIIAlnum(prev) && isCJK(next)) {
				i = j
				continue
			}
		}
		for ; i < j; i++ {
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}
