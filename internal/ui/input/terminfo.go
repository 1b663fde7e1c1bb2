package input

import (
	"github.com/gdamore/tcell/v2/terminfo"
	// stock terminal descriptions: ansi, tmux, vt100-vt220, xterm
	_ "github.com/gdamore/tcell/v2/terminfo/base"
)

// TerminalSequences returns the cursor and paging key sequences terminfo
// lists for the terminal named by $TERM. Unknown terminals yield nil.
func TerminalSequences(name string) Sequences {
	ti, err := lookupTerminfo(name)
	if err != nil {
		return nil
	}
	return SequencesFor(ti)
}

// lookupTerminfo tries the built-in database first, then infocmp.
func lookupTerminfo(name string) (*terminfo.Terminfo, error) {
	ti, err := terminfo.LookupTerminfo(name)
	if err == nil {
		return ti, nil
	}
	ti, err = loadDynamicTerminfo(name)
	if err != nil {
		return nil, err
	}
	terminfo.AddTerminfo(ti)
	return ti, nil
}

// SequencesFor extracts the keys the pager binds from ti. Entries that do
// not start with ESC cannot reach the escape decoder and are skipped.
func SequencesFor(ti *terminfo.Terminfo) Sequences {
	seqs := Sequences{}
	add := func(seq string, kind KeyKind) {
		if len(seq) > 1 && seq[0] == escByte {
			seqs[seq] = kind
		}
	}
	add(ti.KeyUp, KeyUp)
	add(ti.KeyDown, KeyDown)
	add(ti.KeyPgUp, KeyPageUp)
	add(ti.KeyPgDn, KeyPageDown)
	return seqs
}
