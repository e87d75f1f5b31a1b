package extract

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var multiSpaceRe = regexp.MustCompile(`\s+`)

var accentFolder = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldAccents decomposes the text and strips combining marks, so that
// "procuração" and "procuracao" compare equal. Case is preserved.
func FoldAccents(text string) string {
	out, _, err := transform.String(accentFolder, text)
	if err != nil {
		return text
	}
	return out
}

// CollapseSpaces replaces every whitespace run with a single space and trims.
func CollapseSpaces(text string) string {
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))
}
