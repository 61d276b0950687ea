package ui

import (
	"testing"

	"github.com/pthm-cable/galaxy/pointfield"
)

func TestDraft_CommitsOncePerInteraction(t *testing.T) {
	base := pointfield.DefaultParams().Settings()
	d := NewDraft(base)

	// a drag edits many times before release
	for _, r := range []float64{1, 1.5, 2, 2.5} {
		d.Edit()
		d.Working().Radius = r
	}
	if !d.Editing() {
		t.Error("expected editing during drag")
	}
	if d.Committed() != base {
		t.Error("edits must not reach the committed record before release")
	}

	got, ok := d.Finish()
	if !ok {
		t.Fatal("expected a commit")
	}
	if got.Radius != 2.5 || got.Count != base.Count {
		t.Errorf("expected the full record with the final radius, got %+v", got)
	}
	if d.Editing() {
		t.Error("expected editing to stop")
	}

	if _, ok := d.Finish(); ok {
		t.Error("expected no commit without changes")
	}
}

func TestDraft_NoCommitWhenDragReturnsToStart(t *testing.T) {
	base := pointfield.DefaultParams().Settings()
	d := NewDraft(base)

	d.Edit()
	d.Working().Spin = 3
	d.Edit()
	d.Working().Spin = base.Spin

	if _, ok := d.Finish(); ok {
		t.Error("expected no commit for an unchanged record")
	}
}

func TestDraft_Revert(t *testing.T) {
	base := pointfield.DefaultParams().Settings()
	d := NewDraft(base)

	d.Edit()
	d.Working().InsideColor = "#zzz"
	if _, ok := d.Finish(); !ok {
		t.Fatal("expected a commit")
	}

	d.Revert(base)
	if *d.Working() != base || d.Committed() != base {
		t.Error("expected working and committed settings to be restored")
	}
}

func TestPanel_NextPaletteCycles(t *testing.T) {
	base := pointfield.DefaultParams().Settings()
	palettes := []Palette{
		{Inside: "#ff6030", Outside: "#1b3984"},
		{Inside: "#ffffff", Outside: "#000000"},
	}
	p := NewPanel(base, base, palettes)

	p.NextPalette()
	if w := p.Draft().Working(); w.InsideColor != "#ffffff" || w.OutsideColor != "#000000" {
		t.Errorf("unexpected colors %s %s", w.InsideColor, w.OutsideColor)
	}
	p.NextPalette()
	if w := p.Draft().Working(); w.InsideColor != "#ff6030" {
		t.Errorf("expected palette to wrap, got %s", w.InsideColor)
	}

	p.height = 200
	if !p.Contains(15, 15) {
		t.Error("expected point near panel origin to be inside")
	}
	if p.Contains(float32(p.X+p.Width+1), 15) {
		t.Error("expected point right of panel to be outside")
	}
}
