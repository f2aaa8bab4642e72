// ===== internal/gapfill/gapfill.go =====
package gapfill

import (
	"sort"

	"ipfill/pkg/models"
	"ipfill/pkg/netutil"
)

// DefaultMaxGap is the largest difference between neighbouring addresses
// that still gets filled.
const DefaultMaxGap = 6

// Sort orders addresses ascending by 32-bit value. Duplicates are
// retained.
func Sort(addrs []uint32) {
	sort.Slice(addrs, func(i, j int) bool {
		return addrs[i] < addrs[j]
	})
}

// Fill scans sorted addresses pairwise and expands small gaps between
// neighbours in the same /24 network into contiguous runs. A gap is
// fillable when the difference is in (0, maxGap] and both addresses
// share the /24 prefix; anything else, including a duplicate (difference
// of zero) or a gap crossing a /24 boundary, closes the current segment.
func Fill(sorted []uint32, maxGap uint32) []uint32 {
	if len(sorted) == 0 {
		return nil
	}

	result := make([]uint32, 0, len(sorted))
	seg := models.Segment{Start: sorted[0], End: sorted[0]}
	prev := sorted[0]

	for _, cur := range sorted[1:] {
		// cur > prev also guards against unsorted input, where the
		// unsigned difference would wrap
		if netutil.Prefix(cur) == netutil.Prefix(prev) && cur > prev && cur-prev <= maxGap {
			seg.End = cur
		} else {
			result = expand(result, seg)
			seg = models.Segment{Start: cur, End: cur}
		}
		prev = cur
	}

	return expand(result, seg)
}

// expand appends every address the segment covers
func expand(dst []uint32, seg models.Segment) []uint32 {
	if seg.Single() {
		return append(dst, seg.Start)
	}
	for n := seg.Start; ; n++ {
		dst = append(dst, n)
		if n == seg.End {
			return dst
		}
	}
}
