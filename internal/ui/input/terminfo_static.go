//go:build windows || plan9 || js || wasip1 || android

package input

import "github.com/gdamore/tcell/v2/terminfo"

func loadDynamicTerminfo(string) (*terminfo.Terminfo, error) {
	return nil, terminfo.ErrTermNotFound
}
