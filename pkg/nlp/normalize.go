package nlp

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var reSpaces = regexp.MustCompile(`\s+`)

// NormalizeText приводит извлечённый текст к единому виду:
// - NFKC (лигатуры, полноширинные символы, неразрывные пробелы)
// - схлопывает любые пробельные символы в один пробел
func NormalizeText(s string) string {
	return CollapseWhitespace(norm.NFKC.String(s))
}

// CollapseWhitespace заменяет любую серию пробельных символов одним пробелом и обрезает края.
func CollapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
