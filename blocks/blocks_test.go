package blocks

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/unicode/rangetable"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []Range
	}{
		{
			name:  "basic latin",
			names: []string{"Basic Latin"},
			want:  []Range{{0x0000, 0x007F}},
		},
		{
			name:  "general punctuation",
			names: []string{"General Punctuation"},
			want:  []Range{{0x2010, 0x2010}, {0x2012, 0x2027}, {0x2030, 0x205E}},
		},
		{
			name:  "latin-1 supplement pw",
			names: []string{"Latin-1 Supplement PW"},
			want: []Range{
				{0x0080, 0x00A9},
				{0x00AB, 0x00AB},
				{0x00AD, 0x00AE},
				{0x00B4, 0x00B8},
				{0x00BB, 0x00BB},
				{0x00BF, 0x00BF},
				{0x00C0, 0x00FF},
			},
		},
		{
			name:  "unknown",
			names: []string{"Foo"},
			want:  nil,
		},
		{
			name:  "empty",
			names: nil,
			want:  nil,
		},
		{
			name:  "mixed known and unknown keeps order",
			names: []string{"Cyrillic", "Foo", "Basic Latin", "", "Runic"},
			want:  []Range{{0x0400, 0x04FF}, {0x0000, 0x007F}, {0x16A0, 0x16FF}},
		},
		{
			name:  "repeats are kept",
			names: []string{"Katakana", "Katakana"},
			want:  []Range{{0x30A0, 0x30FF}, {0x30A0, 0x30FF}},
		},
		{
			name:  "misspelled latin extended",
			names: []string{"Latin Extented-A", "Latin Extended-A"},
			want:  []Range{{0x0100, 0x017F}},
		},
		{
			name:  "case sensitive",
			names: []string{"basic latin"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.names)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Select(%q) mismatch (-want +got):\n%s", tt.names, diff)
			}
		})
	}
}

func TestSelect_Deterministic(t *testing.T) {
	names := []string{"General Punctuation", "Hiragana", "Specials"}
	first := Select(names)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, Select(names)); diff != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, diff)
		}
	}
}

func TestSelect_DoesNotAliasTable(t *testing.T) {
	got := Select([]string{"Basic Latin"})
	got[0].High = 0x10

	again := Select([]string{"Basic Latin"})
	if again[0].High != 0x007F {
		t.Errorf("table modified through returned slice: %v", again)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 21 {
		t.Fatalf("expected 21 blocks, got %d", len(names))
	}
	if names[0] != "Basic Latin" || names[len(names)-1] != "Runic" {
		t.Errorf("unexpected table order: first=%q last=%q", names[0], names[len(names)-1])
	}
	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) failed for listed name", name)
		}
	}
}

func TestRange(t *testing.T) {
	r := Range{0x2012, 0x2027}
	if r.Len() != 22 {
		t.Errorf("Len() = %d, want 22", r.Len())
	}
	if got := r.String(); got != "U+2012-U+2027" {
		t.Errorf("String() = %q", got)
	}
	if (Range{5, 4}).Len() != 0 {
		t.Error("inverted range should be empty")
	}
}

func TestTable_Deduplicates(t *testing.T) {
	ranges := []Range{
		{0x0041, 0x0043},
		{0x0042, 0x0045},
		{0x0041, 0x0043},
		{0x0030, 0x0030},
		{0xFFFE, 0x10001},
		{9, 8},
	}

	var got []rune
	rangetable.Visit(Table(ranges), func(r rune) {
		got = append(got, r)
	})

	want := []rune{0x30, 0x41, 0x42, 0x43, 0x44, 0x45, 0xFFFE, 0xFFFF, 0x10000, 0x10001}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visited runes mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_Empty(t *testing.T) {
	count := 0
	rangetable.Visit(Table(nil), func(rune) { count++ })
	if count != 0 {
		t.Errorf("expected no runes, got %d", count)
	}
}
