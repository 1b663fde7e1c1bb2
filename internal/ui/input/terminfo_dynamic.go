//go:build !windows && !plan9 && !js && !wasip1 && !android

package input

import (
	"github.com/gdamore/tcell/v2/terminfo"
	"github.com/gdamore/tcell/v2/terminfo/dynamic"
)

func loadDynamicTerminfo(name string) (*terminfo.Terminfo, error) {
	if name == "" {
		return nil, terminfo.ErrTermNotFound
	}
	ti, _, err := dynamic.LoadTerminfo(name)
	if err != nil {
		return nil, err
	}
	return ti, nil
}
