package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseQuantityInput interprets raw quantity input from the presentation
// layer. Leading whitespace is skipped and the longest base-10 integer prefix
// is read, so "3abc" gives 3 and "2.5" gives 2. Input without a leading
// integer (or one that overflows int) reports ok=false and must be ignored by
// the caller. Zero and negatives are returned as is; they mean removal.
func ParseQuantityInput(raw string) (quantity int, ok bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
