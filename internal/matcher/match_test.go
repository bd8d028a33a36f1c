// SPDX-License-Identifier: MPL-2.0

package matcher

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type wantRow struct {
	Key     string
	Members []bool
}

func rowsOf(t *testing.T, in Input) ([]string, []wantRow) {
	t.Helper()

	m, err := Match(in)
	if err != nil {
		t.Fatalf("Match() unexpected error: %v", err)
	}
	var rows []wantRow
	for _, r := range m.Rows() {
		rows = append(rows, wantRow{Key: r.Key, Members: r.Members})
	}
	return m.Header(), rows
}

func exampleSets() AnonymousSets {
	return AnonymousSets{
		NewSet("some", "thing", "here"),
		NewSet("this", "is", "sparta", "some", "thing", "here"),
		NewSet("now", "some", "this", "thing", "here"),
	}
}

func TestMatch_AnonymousSets(t *testing.T) {
	t.Parallel()

	header, rows := rowsOf(t, exampleSets())

	if diff := cmp.Diff([]string{"key", "1", "2", "3"}, header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	want := []wantRow{
		{"here", []bool{true, true, true}},
		{"is", []bool{false, true, false}},
		{"now", []bool{false, false, true}},
		{"some", []bool{true, true, true}},
		{"sparta", []bool{false, true, false}},
		{"thing", []bool{true, true, true}},
		{"this", []bool{false, true, true}},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_NamedSets(t *testing.T) {
	t.Parallel()

	header, rows := rowsOf(t, NamedSets{
		{Name: "ascii-set1", Members: NewSet("few", "letters", "some", "with", "words")},
		{Name: "ascii-set2", Members: NewSet("few", "letters", "other", "with", "words")},
		{Name: "ascii-set3", Members: NewSet("completely", "is", "something", "this")},
	})

	if diff := cmp.Diff([]string{"key", "ascii-set1", "ascii-set2", "ascii-set3"}, header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	want := []wantRow{
		{"completely", []bool{false, false, true}},
		{"few", []bool{true, true, false}},
		{"is", []bool{false, false, true}},
		{"letters", []bool{true, true, false}},
		{"other", []bool{false, true, false}},
		{"some", []bool{true, false, false}},
		{"something", []bool{false, false, true}},
		{"this", []bool{false, false, true}},
		{"with", []bool{true, true, false}},
		{"words", []bool{true, true, false}},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_CaseSensitiveOrder(t *testing.T) {
	t.Parallel()

	_, rows := rowsOf(t, AnonymousSets{NewSet("b", "B", "a", "Ä", "")})

	var keys []string
	for _, r := range rows {
		keys = append(keys, r.Key)
	}
	if diff := cmp.Diff([]string{"", "B", "a", "b", "Ä"}, keys); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_EmptySetsAllowed(t *testing.T) {
	t.Parallel()

	header, rows := rowsOf(t, NamedSets{
		{Name: "empty", Members: NewSet()},
		{Name: "one", Members: NewSet("x")},
	})
	if diff := cmp.Diff([]string{"key", "empty", "one"}, header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]wantRow{{"x", []bool{false, true}}}, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      Input
		wantErr error
	}{
		{"nil input", nil, ErrInvalidInput},
		{"no anonymous sets", AnonymousSets{}, ErrEmptyInput},
		{"nil anonymous slice", AnonymousSets(nil), ErrEmptyInput},
		{"no named sets", NamedSets{}, ErrEmptyInput},
		{"nil anonymous set", AnonymousSets{NewSet("a"), nil}, ErrInvalidInput},
		{"blank name", NamedSets{{Name: " ", Members: NewSet("a")}}, ErrInvalidInput},
		{"nil members", NamedSets{{Name: "a", Members: nil}}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := Match(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Match() error = %v, want %v", err, tt.wantErr)
			}
			if m != nil {
				t.Error("Match() returned a matrix alongside an error")
			}
		})
	}
}

func TestMatch_ErrorsAreDistinct(t *testing.T) {
	t.Parallel()

	if errors.Is(ErrEmptyInput, ErrInvalidInput) || errors.Is(ErrInvalidInput, ErrEmptyInput) {
		t.Error("empty and invalid input errors must be distinguishable")
	}

	_, err := Match(NamedSets{{Name: "", Members: NewSet()}})
	var setErr *InvalidSetError
	if !errors.As(err, &setErr) {
		t.Fatalf("error should be *InvalidSetError, got %T", err)
	}
	if setErr.Position != 0 {
		t.Errorf("Position = %d, want 0", setErr.Position)
	}
}

func TestMatch_Deterministic(t *testing.T) {
	t.Parallel()

	h1, r1 := rowsOf(t, exampleSets())
	h2, r2 := rowsOf(t, exampleSets())
	if diff := cmp.Diff(h1, h2); diff != "" {
		t.Errorf("header differs between runs:\n%s", diff)
	}
	if diff := cmp.Diff(r1, r2); diff != "" {
		t.Errorf("rows differ between runs:\n%s", diff)
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := NewSet("b", "a", "b")
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	s.Add("c")
	if !s.Has("c") || s.Has("d") {
		t.Errorf("Has() wrong after Add: %v", s)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, s.Sorted()); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
}

func TestUniverse(t *testing.T) {
	t.Parallel()

	got := Universe(NewSet("z", "a"), NewSet("m", "a"), NewSet())
	if diff := cmp.Diff([]string{"a", "m", "z"}, got); diff != "" {
		t.Errorf("Universe() mismatch (-want +got):\n%s", diff)
	}
	if got := Universe(); len(got) != 0 {
		t.Errorf("Universe() of nothing = %v, want empty", got)
	}
}
