package gapfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipfill/pkg/netutil"
)

func parseAll(t *testing.T, addrs []string) []uint32 {
	t.Helper()
	out := make([]uint32, 0, len(addrs))
	for _, s := range addrs {
		n, err := netutil.ParseAddr(s)
		require.NoError(t, err)
		out = append(out, n)
	}
	return out
}

func formatAll(addrs []uint32) []string {
	out := make([]string, 0, len(addrs))
	for _, n := range addrs {
		out = append(out, netutil.FormatAddr(n))
	}
	return out
}

func TestSort(t *testing.T) {
	addrs := parseAll(t, []string{"10.0.2.1", "9.255.255.255", "10.0.0.5", "10.0.0.5", "10.0.1.1"})
	Sort(addrs)
	assert.Equal(t, []string{"9.255.255.255", "10.0.0.5", "10.0.0.5", "10.0.1.1", "10.0.2.1"}, formatAll(addrs))

	// sorting a sorted list is a no-op
	sorted := append([]uint32(nil), addrs...)
	Sort(sorted)
	assert.Equal(t, addrs, sorted)
}

func TestSortNumericNotLexical(t *testing.T) {
	addrs := parseAll(t, []string{"10.0.0.10", "10.0.0.9", "10.0.0.100"})
	Sort(addrs)
	assert.Equal(t, []string{"10.0.0.9", "10.0.0.10", "10.0.0.100"}, formatAll(addrs))
}

func TestFill(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		maxGap uint32
		want   []string
	}{
		{
			name:   "empty input",
			input:  nil,
			maxGap: DefaultMaxGap,
			want:   nil,
		},
		{
			name:   "single address",
			input:  []string{"192.168.1.1"},
			maxGap: DefaultMaxGap,
			want:   []string{"192.168.1.1"},
		},
		{
			name:   "gap of six filled",
			input:  []string{"192.168.1.1", "192.168.1.7"},
			maxGap: DefaultMaxGap,
			want: []string{
				"192.168.1.1", "192.168.1.2", "192.168.1.3", "192.168.1.4",
				"192.168.1.5", "192.168.1.6", "192.168.1.7",
			},
		},
		{
			name:   "gap of eight too large",
			input:  []string{"192.168.1.1", "192.168.1.9"},
			maxGap: DefaultMaxGap,
			want:   []string{"192.168.1.1", "192.168.1.9"},
		},
		{
			name:   "gap crossing /24 boundary never filled",
			input:  []string{"192.168.1.254", "192.168.2.2"},
			maxGap: DefaultMaxGap,
			want:   []string{"192.168.1.254", "192.168.2.2"},
		},
		{
			name:   "duplicates emitted separately",
			input:  []string{"10.0.0.5", "10.0.0.5"},
			maxGap: DefaultMaxGap,
			want:   []string{"10.0.0.5", "10.0.0.5"},
		},
		{
			name:   "segment keeps extending across small gaps",
			input:  []string{"10.0.0.1", "10.0.0.3", "10.0.0.7"},
			maxGap: DefaultMaxGap,
			want: []string{
				"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4",
				"10.0.0.5", "10.0.0.6", "10.0.0.7",
			},
		},
		{
			name:   "independent segments",
			input:  []string{"10.0.0.1", "10.0.0.2", "10.0.1.1", "10.0.1.2"},
			maxGap: DefaultMaxGap,
			want:   []string{"10.0.0.1", "10.0.0.2", "10.0.1.1", "10.0.1.2"},
		},
		{
			name:   "duplicate splits a fillable run",
			input:  []string{"10.0.0.1", "10.0.0.1", "10.0.0.3"},
			maxGap: DefaultMaxGap,
			want:   []string{"10.0.0.1", "10.0.0.1", "10.0.0.2", "10.0.0.3"},
		},
		{
			name:   "maxGap zero disables filling",
			input:  []string{"192.168.1.1", "192.168.1.2"},
			maxGap: 0,
			want:   []string{"192.168.1.1", "192.168.1.2"},
		},
		{
			name:   "smaller threshold",
			input:  []string{"192.168.1.1", "192.168.1.4"},
			maxGap: 2,
			want:   []string{"192.168.1.1", "192.168.1.4"},
		},
		{
			name:   "larger threshold",
			input:  []string{"192.168.1.1", "192.168.1.9"},
			maxGap: 8,
			want: []string{
				"192.168.1.1", "192.168.1.2", "192.168.1.3", "192.168.1.4",
				"192.168.1.5", "192.168.1.6", "192.168.1.7", "192.168.1.8",
				"192.168.1.9",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fill(parseAll(t, tt.input), tt.maxGap)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, formatAll(got))
		})
	}
}

func TestFillOutputNonDecreasing(t *testing.T) {
	addrs := parseAll(t, []string{
		"10.0.0.9", "10.0.0.1", "10.0.0.3", "10.0.1.200", "10.0.1.201", "172.16.0.1",
	})
	Sort(addrs)
	got := Fill(addrs, DefaultMaxGap)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i], got[i-1])
	}
}
