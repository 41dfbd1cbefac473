package buffer

import (
	"reflect"
	"testing"
)

func TestSplitLines_KeepsTerminators(t *testing.T) {
	cases := []struct {
		content string
		want    []string
	}{
		{content: "", want: []string{""}},
		{content: "a", want: []string{"a"}},
		{content: "a\n", want: []string{"a\n"}},
		{content: "a\nb", want: []string{"a\n", "b"}},
		{content: "a\r\nb\r\n", want: []string{"a\r\n", "b\r\n"}},
		{content: "\n\n", want: []string{"\n", "\n"}},
	}

	for _, tc := range cases {
		got := SplitLines(tc.content)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitLines(%q): got %q, want %q", tc.content, got, tc.want)
		}
	}
}

func TestFromLines_EmptyBecomesSingleLine(t *testing.T) {
	b := FromLines(nil)
	if got, want := b.Lines(), []string{""}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	if b.LineCount() != 1 {
		t.Fatalf("line count=%d, want 1", b.LineCount())
	}
}

func TestBuffer_LineTextStripsTerminator(t *testing.T) {
	b := New("ab\r\ncd\nef")

	for row, want := range []string{"ab", "cd", "ef"} {
		if got := b.LineText(row); got != want {
			t.Fatalf("LineText(%d)=%q, want %q", row, got, want)
		}
	}
	if got := b.LineLen(0); got != 2 {
		t.Fatalf("LineLen(0)=%d, want 2", got)
	}
	if got := b.Line(0); got != "ab\r\n" {
		t.Fatalf("Line(0)=%q, want %q", got, "ab\r\n")
	}
	if got := b.Line(99); got != "" {
		t.Fatalf("Line(99)=%q, want empty", got)
	}
}

func TestBuffer_LineLenCountsRunes(t *testing.T) {
	b := New("πテ%x\n")
	if got := b.LineLen(0); got != 4 {
		t.Fatalf("LineLen=%d, want 4", got)
	}
}

func TestBuffer_SetCursor_ClampsRowOnlyAndVersions(t *testing.T) {
	b := New("a\nbc")
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 999}) {
		t.Fatalf("cursor=%v, want (1,999)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 1, Col: 999})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: -3, Col: -3})
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}
}

func TestBuffer_LinesReturnsCopy(t *testing.T) {
	b := New("a\nb")
	lines := b.Lines()
	lines[0] = "mutated"
	if got := b.Line(0); got != "a\n" {
		t.Fatalf("buffer changed through Lines(): %q", got)
	}
}
