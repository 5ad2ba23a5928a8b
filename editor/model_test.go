package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestNew_DefaultsAndInitialState(t *testing.T) {
	m := New(Config{Text: "<a/>"})
	if m.Focused() {
		t.Fatalf("new editor must start unfocused")
	}
	if got := m.ReadOnly(); got != ReadOnlyOff {
		t.Fatalf("read-only=%v, want %v", got, ReadOnlyOff)
	}
	if got := m.Value(); got != "<a/>" {
		t.Fatalf("value=%q, want %q", got, "<a/>")
	}
	cfg := m.Config()
	if cfg.IndentUnit != 2 || cfg.TabWidth != 2 {
		t.Fatalf("indent unit/tab width: got %d/%d, want 2/2", cfg.IndentUnit, cfg.TabWidth)
	}
	if len(cfg.KeyMap.Enter.Keys()) == 0 {
		t.Fatalf("expected default key map")
	}
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})

	m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
	if m.Width() != 20 || m.Height() != 4 {
		t.Fatalf("size=%dx%d, want 20x4", m.Width(), m.Height())
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:        "one\ntwo\nthree\nfour\nfive",
		LineNumbers: true,
	})
	m.SetSize(8, 3)

	got := strings.Split(m.View(), "\n")
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got))
	}
	for i := range got {
		got[i] = strings.TrimRight(ansi.Strip(got[i]), " ")
	}

	want := []string{
		"1 one",
		"2 two",
		"3 three",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestView_FollowsCursor(t *testing.T) {
	m := New(Config{Text: "1\n2\n3\n4\n5"})
	m.SetSize(10, 2)
	m.Focus()
	for range 4 {
		m.Update(keyDown())
	}
	lines := strings.Split(m.View(), "\n")
	if got := strings.TrimRight(ansi.Strip(lines[1]), " "); got != "5" {
		t.Fatalf("last visible line=%q, want %q", got, "5")
	}
}

func TestGutterWidth(t *testing.T) {
	m := New(Config{Text: strings.Repeat("x\n", 11), LineNumbers: true})
	if got := m.GutterWidth(); got != 3 {
		t.Fatalf("gutter width=%d, want 3", got)
	}
	m = New(Config{Text: "x"})
	if got := m.GutterWidth(); got != 0 {
		t.Fatalf("gutter width without line numbers=%d, want 0", got)
	}
}
