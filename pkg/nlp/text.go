package nlp

import "unicode/utf8"

// RuneLen возвращает число символов в s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate возвращает первые max символов s. Считаются руны,
// многобайтовый символ не разрезается.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
