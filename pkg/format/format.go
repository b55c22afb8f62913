// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

// Package format holds small presentation helpers for the CLI output.
package format

import "strconv"

// Currency renders n as a dollar amount with comma-grouped thousands,
// e.g. 1234567 -> "$1,234,567". Zero renders as "$0".
func Currency(n int64) string {
	negative := n < 0
	if negative {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	grouped := make([]byte, 0, len(digits)+len(digits)/3)
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return "-$" + string(grouped)
	}
	return "$" + string(grouped)
}
