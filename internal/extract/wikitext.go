package extract

import (
	"regexp"
	"strings"
)

var (
	reComment   = regexp.MustCompile(`(?s)<!--.*?-->`)
	reTemplate  = regexp.MustCompile(`\{\{[^{}]*\}\}`)
	reTable     = regexp.MustCompile(`(?s)\{\|.*?\|\}`)
	reRef       = regexp.MustCompile(`(?s)<ref[^>/]*/>|<ref.*?</ref>`)
	reTag       = regexp.MustCompile(`</?[A-Za-z][^>]*>`)
	reFileLink  = regexp.MustCompile(`\[\[(?:File|Image|Category|文件|檔案|分类|分類):[^\[\]]*\]\]`)
	reLink      = regexp.MustCompile(`\[\[(?:[^|\[\]]*\|)?([^\[\]]*)\]\]`)
	reExtLink   = regexp.MustCompile(`\[https?://[^\]]*\]`)
	reHeading   = regexp.MustCompile(`(?m)^=+.*?=+\s*$`)
	reEmphasis  = regexp.MustCompile(`'{2,}`)
	reWhitespce = regexp.MustCompile(`\s+`)
)

// StripWikitext reduces MediaWiki markup to plain running text. Templates
// and tables are dropped, internal links are replaced by their display
// text, and the result is collapsed to a single line.
func StripWikitext(s string) string {
	s = reComment.ReplaceAllString(s, " ")
	// templates nest; strip innermost-first until none remain
	for {
		out := reTemplate.ReplaceAllString(s, " ")
		if out == s {
			break
		}
		s = out
	}
	s = reTable.ReplaceAllString(s, " ")
	s = reRef.ReplaceAllString(s, " ")
	s = reFileLink.ReplaceAllString(s, " ")
	s = reLink.ReplaceAllString(s, "$1")
	s = reExtLink.ReplaceAllString(s, " ")
	s = reHeading.ReplaceAllString(s, " ")
	s = reTag.ReplaceAllString(s, " ")
	s = reEmphasis.ReplaceAllString(s, "")
	s = reWhitespce.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
