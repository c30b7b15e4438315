package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapping_Groups(t *testing.T) {
	m := NewMapping()
	m.Add("UT_MATH", Entry{Name: "UT_MATH_Add"})
	m.Add("UT_IO", Entry{Name: "UT_IO_Read"})
	m.Add("UT_MATH", Entry{Name: "UT_MATH_Sub"})

	want := []Group{
		{Key: "UT_IO", Entries: []Entry{{Name: "UT_IO_Read"}}},
		{Key: "UT_MATH", Entries: []Entry{{Name: "UT_MATH_Add"}, {Name: "UT_MATH_Sub"}}},
	}
	if diff := cmp.Diff(want, m.Groups()); diff != "" {
		t.Errorf("Groups() mismatch (-want +got):\n%s", diff)
	}

	if m.Len() != 2 {
		t.Errorf("expected 2 groups, got %d", m.Len())
	}
	if m.Count() != 3 {
		t.Errorf("expected 3 entries, got %d", m.Count())
	}
}

func TestMapping_Empty(t *testing.T) {
	m := NewMapping()

	if len(m.Groups()) != 0 {
		t.Errorf("expected no groups, got %d", len(m.Groups()))
	}
	if m.Entries("UT_MISSING") != nil {
		t.Error("absent key should return nil entries")
	}
}

func TestEntry_Registration(t *testing.T) {
	e := Entry{Name: "UT_Example", Declaration: "void UT_Example(void);"}

	if got, want := e.Registration("RUN_TEST(%s);"), "RUN_TEST(UT_Example);"; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
