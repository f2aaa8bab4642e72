// ===== pkg/models/models.go =====
package models

// Segment is a run of addresses being accumulated during gap filling,
// tracked by its inclusive (start, end) pair.
type Segment struct {
	Start uint32
	End   uint32
}

// Single reports whether the segment covers exactly one address
func (s Segment) Single() bool {
	return s.Start == s.End
}

// Stats summarizes what the reader saw in the input file
type Stats struct {
	Lines   int
	Valid   int
	Skipped int
}
