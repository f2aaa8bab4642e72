// ===== internal/reader/reader.go =====
package reader

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode"

	"ipfill/pkg/models"
	"ipfill/pkg/netutil"
)

// LoadFile reads candidate addresses from path, one per line, in input
// order. Blank lines are skipped silently; malformed lines are logged
// and discarded. Trailing # or ; comments are stripped before
// validation.
func LoadFile(path string) ([]uint32, models.Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, models.Stats{}, fmt.Errorf("failed to open list file: %w", err)
	}
	defer file.Close()

	var addrs []uint32
	var stats models.Stats

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := stripComment(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}

		stats.Lines++
		n, err := netutil.ParseAddr(line)
		if err != nil {
			stats.Skipped++
			log.Printf("Warning: skipping invalid address %q: %v", line, err)
			continue
		}

		stats.Valid++
		addrs = append(addrs, n)
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read list file: %w", err)
	}

	return addrs, stats, nil
}

// stripComment removes comments from a line
func stripComment(line string) string {
	if idx := strings.IndexAny(line, "#;"); idx >= 0 {
		return strings.TrimRightFunc(line[:idx], unicode.IsSpace)
	}
	return line
}
