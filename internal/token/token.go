package token

import (
	"fmt"
	"sort"
)

// Location identifies a point in a Veldt source file.
// Line and column numbering starts at 1; the zero Location means "unknown".
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Before reports whether l precedes other in source order.
// Locations in different files order by file name.
func (l Location) Before(other Location) bool {
	if l.File != other.File {
		return l.File < other.File
	}
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Column < other.Column
}

// SortLocations sorts locs in source order, in place.
func SortLocations(locs []Location) {
	sort.Slice(locs, func(i, j int) bool {
		return locs[i].Before(locs[j])
	})
}
