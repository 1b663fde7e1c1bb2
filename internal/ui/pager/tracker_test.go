package pager

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/kk-code-lab/page/internal/fs"
	"github.com/kk-code-lab/page/internal/ui/render"
)

func numbered(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line-%d\n", i)
	}
	return b.String()
}

func linesFrom(from, to int) string {
	var b strings.Builder
	for i := from; i <= to; i++ {
		fmt.Fprintf(&b, "line-%d\n", i)
	}
	return b.String()
}

type fixture struct {
	out     *bytes.Buffer
	tracker *Tracker
	src     *fs.Source
}

func newFixture(content string, seekable bool, rows uint64) *fixture {
	var src *fs.Source
	if seekable {
		src = fs.NewSeekableSource("mem", strings.NewReader(content), int64(len(content)))
	} else {
		src = fs.NewStreamSource("pipe", strings.NewReader(content))
	}
	out := &bytes.Buffer{}
	var pos render.Position
	screen := render.NewScreen(out, &pos, 0, false)
	return &fixture{
		out:     out,
		tracker: NewTracker(screen, src, rows, 80, nil),
		src:     src,
	}
}

func TestTrackerStartDrawsFirstPage(t *testing.T) {
	f := newFixture(numbered(10), true, 5)
	if err := f.tracker.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got, want := f.out.String(), linesFrom(1, 4); got != want {
		t.Fatalf("output=%q want %q", got, want)
	}
	if pos := f.tracker.Position(); pos.Line != 4 {
		t.Fatalf("line=%d want 4", pos.Line)
	}
}

func TestSkipLinesCostModel(t *testing.T) {
	f := newFixture("ab\ncd\n", true, 5)

	sig, err := f.tracker.SkipLines(1)
	if err != nil || sig != render.SignalEOL {
		t.Fatalf("SkipLines=(%v,%v)", sig, err)
	}
	if pos := f.tracker.Position(); pos.Progress != 3 || pos.Line != 1 {
		t.Fatalf("position=%+v want progress 3 line 1", pos)
	}

	sig, _ = f.tracker.SkipLines(5)
	if sig != render.SignalEOF {
		t.Fatalf("signal=%v want eof", sig)
	}
	if pos := f.tracker.Position(); pos.Progress != 6 || pos.Line != 2 {
		t.Fatalf("position=%+v want progress 6 line 2", pos)
	}
	if f.out.Len() != 0 {
		t.Fatalf("skipping must not render, got %q", f.out.String())
	}
}

func TestGotoLineTwiceIsIdentical(t *testing.T) {
	f := newFixture(numbered(30), true, 5)
	_ = f.tracker.Start()

	f.out.Reset()
	if err := f.tracker.GotoLine(10); err != nil {
		t.Fatalf("GotoLine: %v", err)
	}
	first := f.out.String()
	firstPos := f.tracker.Position()

	f.out.Reset()
	if err := f.tracker.GotoLine(10); err != nil {
		t.Fatalf("GotoLine: %v", err)
	}
	second := f.out.String()

	if first != second {
		t.Fatalf("outputs differ:\n%q\n%q", first, second)
	}
	if first != linesFrom(10, 13) {
		t.Fatalf("output=%q want lines 10-13", first)
	}
	if f.tracker.Position() != firstPos {
		t.Fatalf("positions differ: %+v vs %+v", firstPos, f.tracker.Position())
	}
}

func TestGotoLineForwardSkipsWithoutRewind(t *testing.T) {
	f := newFixture(numbered(30), false, 5)
	_ = f.tracker.Start()

	f.out.Reset()
	if err := f.tracker.GotoLine(20); err != nil {
		t.Fatalf("GotoLine: %v", err)
	}
	if got := f.out.String(); got != linesFrom(20, 23) {
		t.Fatalf("output=%q want lines 20-23", got)
	}
}

func TestGotoLineZeroMeansFirstLine(t *testing.T) {
	f := newFixture(numbered(10), true, 3)
	_ = f.tracker.RenderLines(5)

	f.out.Reset()
	_ = f.tracker.GotoLine(0)
	if got := f.out.String(); got != linesFrom(1, 2) {
		t.Fatalf("output=%q want lines 1-2", got)
	}
}

func TestBackwardMovesOnStreamAreNoops(t *testing.T) {
	f := newFixture(numbered(30), false, 5)
	_ = f.tracker.Start()
	_ = f.tracker.RenderLines(6)
	before := f.tracker.Position()

	f.out.Reset()
	if err := f.tracker.GotoLine(2); err != nil {
		t.Fatalf("GotoLine: %v", err)
	}
	if err := f.tracker.ScrollBack(3); err != nil {
		t.Fatalf("ScrollBack: %v", err)
	}
	if f.out.Len() != 0 {
		t.Fatalf("no-op moves must not render, got %q", f.out.String())
	}
	if after := f.tracker.Position(); after != before {
		t.Fatalf("position changed: %+v -> %+v", before, after)
	}

	// The stream continues where it was.
	_ = f.tracker.RenderLines(1)
	if got := f.out.String(); got != "line-11\n" {
		t.Fatalf("next line=%q want line-11", got)
	}
}

func TestScrollBackRedrawsEarlierScreen(t *testing.T) {
	f := newFixture(numbered(30), true, 5)
	_ = f.tracker.Start()
	_ = f.tracker.RenderLines(4)

	f.out.Reset()
	if err := f.tracker.ScrollBack(2); err != nil {
		t.Fatalf("ScrollBack: %v", err)
	}
	if got := f.out.String(); got != linesFrom(3, 6) {
		t.Fatalf("output=%q want lines 3-6", got)
	}
	if pos := f.tracker.Position(); pos.Line != 6 {
		t.Fatalf("line=%d want 6", pos.Line)
	}
}

func TestScrollBackClampsToFirstLine(t *testing.T) {
	f := newFixture(numbered(30), true, 5)
	_ = f.tracker.Start()
	_ = f.tracker.RenderLines(2)

	f.out.Reset()
	_ = f.tracker.ScrollBack(100)
	if got := f.out.String(); got != linesFrom(1, 4) {
		t.Fatalf("output=%q want lines 1-4", got)
	}
}

func TestScrollBackWithNothingScrolledOff(t *testing.T) {
	f := newFixture(strings.Repeat("x", 500), true, 5)
	_ = f.tracker.Start()
	before := f.tracker.Position()

	f.out.Reset()
	_ = f.tracker.ScrollBack(1)
	if f.out.Len() != 0 || f.tracker.Position() != before {
		t.Fatalf("expected no-op, got output %q", f.out.String())
	}
}

func TestRenderToEnd(t *testing.T) {
	f := newFixture(numbered(50), false, 5)
	_ = f.tracker.Start()
	if err := f.tracker.RenderToEnd(); err != nil {
		t.Fatalf("RenderToEnd: %v", err)
	}
	if pos := f.tracker.Position(); pos.Line != 50 {
		t.Fatalf("line=%d want 50", pos.Line)
	}
	if !strings.HasSuffix(f.out.String(), "line-50\n") {
		t.Fatalf("output should end with the last line")
	}
}
