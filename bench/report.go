// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"strconv"
)

const reportRule = "==========================================================="

// yesNo renders the transpose flag.
func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// FormatSeconds renders seconds with six significant digits, e.g. "0.0123457"
// or "1.5e-05".
func FormatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'g', 6, 64)
}

// WriteReport prints the result block:
//
//	===========================================================
//	Matrix size:  1000x1000
//	Transposed:   yes
//	Threads:      2
//	Elapsed time: 1.23456 s
//	===========================================================
func WriteReport(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w,
		"%s\nMatrix size:  %dx%d\nTransposed:   %s\nThreads:      %d\nElapsed time: %s s\n%s\n\n",
		reportRule,
		r.Config.Size, r.Config.Size,
		yesNo(r.Config.Transposed),
		r.Config.Threads,
		FormatSeconds(r.Elapsed.Seconds()),
		reportRule,
	)

	return err
}
