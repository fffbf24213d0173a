package pagination

import "testing"

func TestParseDefaults(t *testing.T) {
	cases := []struct {
		name     string
		page     string
		size     string
		wantPage int
		wantSize int
	}{
		{"empty", "", "", 1, 10},
		{"valid", "3", "25", 3, 25},
		{"zero page", "0", "10", 1, 10},
		{"negative", "-2", "-5", 1, 10},
		{"garbage", "abc", "xyz", 1, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Parse(tc.page, tc.size)
			if p.Page != tc.wantPage || p.PageSize != tc.wantSize {
				t.Fatalf("Parse(%q,%q) = %+v, want page=%d size=%d", tc.page, tc.size, p, tc.wantPage, tc.wantSize)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := Params{Page: 3, PageSize: 10}
	if got := p.Offset(); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
}

func TestNewEnvelope(t *testing.T) {
	env := NewEnvelope(25, Params{Page: 1, PageSize: 10})
	if env.TotalItems != 25 || env.TotalPages != 3 || env.CurrentPage != 1 || env.ItemsPerPage != 10 {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	past := NewEnvelope(25, Params{Page: 99, PageSize: 10})
	if past.TotalPages != 3 || past.CurrentPage != 99 {
		t.Fatalf("unexpected out-of-range envelope: %+v", past)
	}

	empty := NewEnvelope(0, Params{Page: 1, PageSize: 10})
	if empty.TotalPages != 0 {
		t.Fatalf("expected zero pages for empty set, got %+v", empty)
	}
}
