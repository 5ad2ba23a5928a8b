package buffer

import "testing"

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SetText_TagsOriginAndResetsCursor(t *testing.T) {
	b := New("<a/>", Options{})
	b.SetCursor(Pos{Row: 0, Col: 3})

	if changed := b.SetText("<a>\n<b/>\n</a>", OriginSetValue); !changed {
		t.Fatalf("expected SetText to report a change")
	}
	if got := b.Text(); got != "<a>\n<b/>\n</a>" {
		t.Fatalf("text=%q", got)
	}
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}
	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if ch.Origin != OriginSetValue {
		t.Fatalf("origin=%q, want %q", ch.Origin, OriginSetValue)
	}
	if ch.Edit.DeletedText != "<a/>" || ch.Edit.InsertText != "<a>\n<b/>\n</a>" {
		t.Fatalf("edit=%+v", ch.Edit)
	}
	if want := (Range{End: Pos{Row: 2, Col: 4}}); ch.Edit.RangeAfter != want {
		t.Fatalf("range after=%v, want %v", ch.Edit.RangeAfter, want)
	}
}

func TestBuffer_SetText_SameTextIsNoOp(t *testing.T) {
	b := New("x", Options{})
	if b.SetText("x", OriginSetValue) {
		t.Fatalf("expected no change for identical text")
	}
	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no recorded change")
	}
	if b.Version() != 0 || b.TextVersion() != 0 {
		t.Fatalf("versions moved: %d/%d", b.Version(), b.TextVersion())
	}
}

func TestBuffer_SetValueDropsHistory(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	if !b.CanUndo() {
		t.Fatalf("expected undo after insert")
	}
	b.SetText("fresh", OriginSetValue)
	if b.CanUndo() || b.CanRedo() {
		t.Fatalf("programmatic set must start a fresh history")
	}

	b.SetText("other", OriginPaste)
	if !b.CanUndo() {
		t.Fatalf("non-programmatic SetText must be undoable")
	}
}

func TestBuffer_LineHelpers(t *testing.T) {
	b := New("<a>\n    <b/>\n\t</a>", Options{})
	if got := b.LineCount(); got != 3 {
		t.Fatalf("line count=%d, want 3", got)
	}
	if got := b.Line(1); got != "    <b/>" {
		t.Fatalf("line 1=%q", got)
	}
	if got := b.Line(5); got != "" {
		t.Fatalf("out of range line=%q, want empty", got)
	}
	if got := b.LeadingWhitespace(1); got != "    " {
		t.Fatalf("indent row 1=%q", got)
	}
	if got := b.LeadingWhitespace(2); got != "\t" {
		t.Fatalf("indent row 2=%q", got)
	}
	if got := b.LeadingWhitespace(0); got != "" {
		t.Fatalf("indent row 0=%q", got)
	}
}

func TestOrigin_IsUser(t *testing.T) {
	if OriginSetValue.IsUser() {
		t.Fatalf("setValue must not count as a user edit")
	}
	for _, o := range []Origin{OriginInput, OriginDelete, OriginPaste, OriginUndo, OriginRedo} {
		if !o.IsUser() {
			t.Fatalf("%q must count as a user edit", o)
		}
	}
}
