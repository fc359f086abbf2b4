package token

import "testing"

func TestLocationString(t *testing.T) {
	l := Location{File: "main.veldt", Line: 3, Column: 14}
	if got := l.String(); got != "main.veldt:3:14" {
		t.Errorf("String() = %q", got)
	}
	anon := Location{Line: 1, Column: 2}
	if got := anon.String(); got != "1:2" {
		t.Errorf("String() without file = %q", got)
	}
}

func TestLocationBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b Location
		want bool
	}{
		{"earlier line", Location{Line: 1, Column: 9}, Location{Line: 2, Column: 1}, true},
		{"same line earlier column", Location{Line: 2, Column: 1}, Location{Line: 2, Column: 5}, true},
		{"identical", Location{Line: 2, Column: 5}, Location{Line: 2, Column: 5}, false},
		{"later", Location{Line: 3, Column: 1}, Location{Line: 2, Column: 9}, false},
		{"file order", Location{File: "a.veldt", Line: 9}, Location{File: "b.veldt", Line: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Before(tt.b); got != tt.want {
				t.Errorf("Before(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSortLocations(t *testing.T) {
	locs := []Location{
		{Line: 5, Column: 1},
		{Line: 1, Column: 8},
		{Line: 1, Column: 2},
	}
	SortLocations(locs)
	if locs[0] != (Location{Line: 1, Column: 2}) || locs[2] != (Location{Line: 5, Column: 1}) {
		t.Errorf("not in source order: %v", locs)
	}
}
