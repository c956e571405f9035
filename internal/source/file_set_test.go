package source

import (
	"testing"
)

func TestAddAndGet(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.huff", []byte("add\nmul\n"))
	f := fs.Get(id)
	if f.Name != "a.huff" {
		t.Errorf("Name = %q, want %q", f.Name, "a.huff")
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
	if got, ok := fs.GetByName("a.huff"); !ok || got.ID != id {
		t.Errorf("GetByName = %v, %v", got, ok)
	}
}

func TestAddNormalizesCRLFAndBOM(t *testing.T) {
	fs := NewFileSet()
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("add\r\nmul\r\n")...)
	id := fs.AddVirtual("b.huff", raw)
	f := fs.Get(id)
	if string(f.Content) != "add\nmul\n" {
		t.Errorf("Content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("Flags = %b", f.Flags)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("c.huff", []byte("one\ntwo\nthree"))
	// "two" начинается со смещения 4
	start, end := fs.Resolve(Span{File: id, Start: 4, End: 7})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %+v", start)
	}
	if end.Line != 2 || end.Col != 4 {
		t.Errorf("end = %+v", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("d.huff", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	cases := []struct {
		num  uint32
		want string
	}{
		{0, ""},
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{4, ""},
	}
	for _, tc := range cases {
		if got := f.GetLine(tc.num); got != tc.want {
			t.Errorf("GetLine(%d) = %q, want %q", tc.num, got, tc.want)
		}
	}
}

func TestLineStart(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("e.huff", []byte("ab\ncd\n"))
	f := fs.Get(id)

	if off, ok := f.LineStart(1); !ok || off != 0 {
		t.Errorf("LineStart(1) = %d, %v", off, ok)
	}
	if off, ok := f.LineStart(2); !ok || off != 3 {
		t.Errorf("LineStart(2) = %d, %v", off, ok)
	}
	if _, ok := f.LineStart(4); ok {
		t.Error("LineStart(4) should not exist")
	}
}

func TestSpanOverlaps(t *testing.T) {
	a := Span{File: 0, Start: 2, End: 6}
	cases := []struct {
		b    Span
		want bool
	}{
		{Span{File: 0, Start: 0, End: 2}, false},
		{Span{File: 0, Start: 6, End: 8}, false},
		{Span{File: 0, Start: 5, End: 9}, true},
		{Span{File: 0, Start: 3, End: 3}, true},  // empty inside
		{Span{File: 0, Start: 2, End: 2}, true},  // empty at start
		{Span{File: 0, Start: 6, End: 6}, false}, // empty at end
		{Span{File: 1, Start: 3, End: 5}, false}, // other file
	}
	for _, tc := range cases {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("Overlaps(%v, %v) = %v, want %v", a, tc.b, got, tc.want)
		}
	}
}
