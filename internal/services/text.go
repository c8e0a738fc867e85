package services

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	zeroWidthRe  = regexp.MustCompile("[\u200b\u200e]+")
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeText applies NFKC normalization and strips the typographic
// artifacts PDF extraction tends to leave behind.
func NormalizeText(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "’", "'")
	text = strings.ReplaceAll(text, "–", "-")
	text = zeroWidthRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// CollapseWhitespace lowercases and folds runs of whitespace into single
// spaces.
func CollapseWhitespace(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// ContainsKeyword reports whether text contains keyword bounded by
// non-word characters on both sides. Unlike a plain \b regex this also
// behaves correctly for keywords holding punctuation ("c++", "ci/cd",
// "next.js"), where \b would anchor inside the phrase.
func ContainsKeyword(text, keyword string) bool {
	text = strings.ToLower(text)
	keyword = strings.ToLower(keyword)
	if keyword == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(text[start:], keyword)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(keyword)
		beforeOK := idx == 0 || !isWordChar(text[idx-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

// splitBullets breaks text on bullet glyphs (and dash bullets at line
// starts), trimming the glyphs off each resulting item.
func splitBullets(text string) []string {
	var items []string
	var current strings.Builder
	atLineStart := true

	flush := func() {
		item := strings.TrimSpace(current.String())
		item = strings.TrimLeft(item, "•●-– \t")
		if item != "" {
			items = append(items, item)
		}
		current.Reset()
	}

	for _, r := range text {
		switch {
		case r == '•' || r == '●':
			flush()
		case (r == '-' || r == '–') && atLineStart:
			flush()
		default:
			current.WriteRune(r)
		}
		atLineStart = r == '\n' || (atLineStart && (r == ' ' || r == '\t'))
	}
	flush()
	return items
}
