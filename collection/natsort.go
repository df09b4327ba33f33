/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package collection

import "strings"

// Less reports whether a sorts before b under natural ordering: runs of
// digits compare by numeric value, everything else compares bytewise. Keys
// whose digit runs are numerically equal but written differently ("07" vs
// "7") fall back to plain string comparison so the order stays total.
func Less(a, b string) bool {
	ia, ib := 0, 0
	for ia < len(a) && ib < len(b) {
		ca, cb := a[ia], b[ib]
		da, db := isDigit(ca), isDigit(cb)
		if da && db {
			ra, ea := digitRun(a, ia)
			rb, eb := digitRun(b, ib)
			if c := compareNumeric(ra, rb); c != 0 {
				return c < 0
			}
			ia, ib = ea, eb
			continue
		}
		if da != db {
			// A digit run orders before text at the same position.
			return da
		}
		if ca != cb {
			return ca < cb
		}
		ia++
		ib++
	}
	if len(a)-ia != len(b)-ib {
		return len(a)-ia < len(b)-ib
	}
	return a < b
}

// compareNumeric compares two digit runs by numeric value without parsing
// them into integers, so arbitrarily long runs cannot overflow.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func digitRun(s string, i int) (run string, end int) {
	end = i
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return s[i:end], end
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
