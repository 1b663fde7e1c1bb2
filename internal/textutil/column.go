package textutil

// TabStop is the column interval tabs advance to when paging raw bytes.
const TabStop = 8

// Advance returns the rendered column after writing ch at column.
// Every byte that starts a character counts as one column, wide glyphs
// included; UTF-8 continuation bytes never move the cursor.
func Advance(ch byte, column uint64) uint64 {
	switch {
	case ch == '\r':
		return 0
	case ch == '\t':
		return column + (TabStop - column%TabStop)
	case ch == '\b':
		if column > 0 {
			return column - 1
		}
		return 0
	case ch < 0x80 && !isPrintASCII(ch):
		return column
	case ch >= 0x80 && ch <= 0xBF:
		return column
	default:
		return column + 1
	}
}

// Printable reports whether ch consumes column budget.
func Printable(ch byte) bool {
	return Advance(ch, 0) > 0
}

func isPrintASCII(ch byte) bool {
	return ch >= 0x20 && ch < 0x7F
}
