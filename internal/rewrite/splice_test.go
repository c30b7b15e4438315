package rewrite

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"utgen/internal/domain"
)

var (
	startMarker = regexp.MustCompile(`^.+BEGIN.+$`)
	endMarker   = regexp.MustCompile(`^.+END.+$`)
)

func testSection(indent string) Section {
	return Section{
		Name:        "test",
		Start:       startMarker,
		End:         endMarker,
		Indent:      indent,
		FormatEntry: func(e domain.Entry) string { return e.Registration("RUN_TEST(%s);") },
	}
}

func testMapping() *domain.Mapping {
	m := domain.NewMapping()
	m.Add("UT_MATH", domain.Entry{Name: "UT_MATH_Add", Declaration: "void UT_MATH_Add(void);"})
	m.Add("UT_MATH", domain.Entry{Name: "UT_MATH_Sub", Declaration: "void UT_MATH_Sub(void);"})
	m.Add("UT_IO", domain.Entry{Name: "UT_IO_Read", Declaration: "void UT_IO_Read(void);"})
	return m
}

func TestLocateMarkers(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		wantStart int
		wantEnd   int
		wantErr   error
	}{
		{
			name:      "single pair",
			lines:     []string{"top\n", "  BEGIN();\n", "old\n", "  END();\n", "bottom\n"},
			wantStart: 1,
			wantEnd:   3,
		},
		{
			name:      "adjacent markers",
			lines:     []string{"  BEGIN();\n", "  END();"},
			wantStart: 0,
			wantEnd:   1,
		},
		{
			name:    "missing start",
			lines:   []string{"top\n", "  END();\n"},
			wantErr: ErrMarkerNotFound,
		},
		{
			name:    "missing end",
			lines:   []string{"  BEGIN();\n", "bottom\n"},
			wantErr: ErrMarkerNotFound,
		},
		{
			name:    "duplicate start",
			lines:   []string{"  BEGIN();\n", "  BEGIN();\n", "  END();\n"},
			wantErr: ErrMarkerDuplicate,
		},
		{
			name:    "duplicate end",
			lines:   []string{"  BEGIN();\n", "  END();\n", "  END();\n"},
			wantErr: ErrMarkerDuplicate,
		},
		{
			name:    "end before start",
			lines:   []string{"  END();\n", "  BEGIN();\n"},
			wantErr: ErrMarkerOrder,
		},
		{
			name:      "line matching both counts as start",
			lines:     []string{" BEGIN END \n", "  END();\n"},
			wantStart: 0,
			wantEnd:   1,
		},
		{
			name:    "empty file",
			lines:   nil,
			wantErr: ErrMarkerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e, err := LocateMarkers(tt.lines, startMarker, endMarker)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s != tt.wantStart || e != tt.wantEnd {
				t.Errorf("expected (%d, %d), got (%d, %d)", tt.wantStart, tt.wantEnd, s, e)
			}
		})
	}
}

func TestBlock(t *testing.T) {
	got := Block(testMapping(), "\t", "\n", func(e domain.Entry) string { return e.Declaration })
	want := []string{
		"\n",
		"\t/* UT_IO */\n",
		"\tvoid UT_IO_Read(void);\n",
		"\n",
		"\t/* UT_MATH */\n",
		"\tvoid UT_MATH_Add(void);\n",
		"\tvoid UT_MATH_Sub(void);\n",
		"\n",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Block() mismatch (-want +got):\n%s", diff)
	}

	empty := Block(domain.NewMapping(), "", "\n", nil)
	if diff := cmp.Diff([]string{"\n"}, empty); diff != "" {
		t.Errorf("empty Block() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplice(t *testing.T) {
	const before = "header line\n  BEGIN();\nstale 1\nstale 2\n  END();\nfooter line"

	got, err := Splice(before, testSection("\t"), testMapping())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "header line\n  BEGIN();\n" +
		"\n\t/* UT_IO */\n\tRUN_TEST(UT_IO_Read);\n" +
		"\n\t/* UT_MATH */\n\tRUN_TEST(UT_MATH_Add);\n\tRUN_TEST(UT_MATH_Sub);\n" +
		"\n  END();\nfooter line"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Splice() mismatch (-want +got):\n%s", diff)
	}

	t.Run("idempotent", func(t *testing.T) {
		again, err := Splice(got, testSection("\t"), testMapping())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != got {
			t.Errorf("second splice changed output:\n%s", cmp.Diff(got, again))
		}
	})

	t.Run("content outside markers untouched", func(t *testing.T) {
		if !strings.HasPrefix(got, "header line\n  BEGIN();\n") {
			t.Error("content before the start marker changed")
		}
		if !strings.HasSuffix(got, "  END();\nfooter line") {
			t.Error("content after the end marker changed")
		}
	})
}

func TestSplice_CRLF(t *testing.T) {
	const before = "top\r\n  BEGIN();\r\nold\r\n  END();\r\n"

	got, err := Splice(before, testSection(""), testMapping())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "top\r\n  BEGIN();\r\n" +
		"\r\n/* UT_IO */\r\nRUN_TEST(UT_IO_Read);\r\n" +
		"\r\n/* UT_MATH */\r\nRUN_TEST(UT_MATH_Add);\r\nRUN_TEST(UT_MATH_Sub);\r\n" +
		"\r\n  END();\r\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Splice() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitLines(t *testing.T) {
	tests := map[string][]string{
		"":           nil,
		"a":          {"a"},
		"a\n":        {"a\n"},
		"a\nb":       {"a\n", "b"},
		"a\r\n\nb\n": {"a\r\n", "\n", "b\n"},
	}

	for input, want := range tests {
		got := splitLines(input)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("splitLines(%q) mismatch (-want +got):\n%s", input, diff)
		}
		if strings.Join(got, "") != input {
			t.Errorf("splitLines(%q) does not round trip", input)
		}
	}
}
