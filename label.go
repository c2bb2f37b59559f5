// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import "strings"

var romanDigits = []struct {
	value  int
	symbol string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

// Label returns the ordinal tag of the i-th (zero-based) matching of a
// listing: "(i)", "(ii)", "(iii)", ...
func Label(i int) string {
	n := i + 1
	if n <= 0 {
		return "()"
	}

	var sb strings.Builder
	sb.WriteByte('(')
	for _, d := range romanDigits {
		for n >= d.value {
			sb.WriteString(d.symbol)
			n -= d.value
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
