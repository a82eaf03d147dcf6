// SPDX-License-Identifier: MIT

package config

import "math"

// Atoi parses the longest integer prefix of s the way C's atoi does: leading
// white space is skipped, one optional sign is accepted, then decimal digits
// are consumed until the first non-digit. No digits yields 0. Values beyond
// the int range saturate at math.MaxInt / math.MinInt.
//
//	Atoi("  42abc") == 42
//	Atoi("-5")      == -5
//	Atoi("abc")     == 0
func Atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	var n int
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 { // saturate instead of wrapping
			if neg {
				return math.MinInt
			}
			return math.MaxInt
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}

	return n
}

// isSpace matches C isspace in the "C" locale.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}
