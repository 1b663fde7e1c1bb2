package render

import (
	"fmt"
	"math"

	"github.com/kk-code-lab/page/internal/textutil"
)

const (
	statusMore = "--(MORE)--"
	statusEnd  = "--(END)--"
)

// EraseLine returns to column 0 and clears the rest of the row.
const EraseLine = "\r\x1b[K"

// Percent returns how far progress is through size, in whole percent. The
// division is rearranged for progress values where 100*progress would
// overflow. The result is clamped to 100 because a file may grow while it is
// paged.
func Percent(progress, size uint64) uint64 {
	if size == 0 {
		return 0
	}
	var pct uint64
	if progress >= math.MaxUint64/100 {
		if size < 100 {
			return 100
		}
		pct = progress / (size / 100)
	} else {
		pct = (100 * progress) / size
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

// StatusText returns the status line for the current position: a
// percentage when the total size is known, otherwise MORE or END.
func StatusText(progress uint64, size int64, sig Signal) string {
	if size > 0 {
		return fmt.Sprintf("--(%d%%)--", Percent(progress, uint64(size)))
	}
	if sig == SignalEOF {
		return statusEnd
	}
	return statusMore
}

func fitStatus(text string, columns uint64) string {
	if columns > math.MaxInt32 {
		return text
	}
	return textutil.TruncateToWidth(text, int(columns))
}
