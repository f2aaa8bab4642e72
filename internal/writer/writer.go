// ===== internal/writer/writer.go =====
package writer

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"ipfill/pkg/netutil"
)

// Write emits one dotted-quad address per line to the file at path,
// overwriting it, or to stdout when path is empty. A count of the
// addresses produced is logged either way.
func Write(addrs []uint32, path string) error {
	if path == "" {
		if err := WriteTo(os.Stdout, addrs); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	} else {
		if err := writeFile(addrs, path); err != nil {
			return err
		}
		log.Printf("Results saved to %s", path)
	}

	log.Printf("Generated %d addresses", len(addrs))
	return nil
}

// WriteTo writes the address list to w, one per line
func WriteTo(w io.Writer, addrs []uint32) error {
	bw := bufio.NewWriter(w)
	for _, n := range addrs {
		if _, err := fmt.Fprintln(bw, netutil.FormatAddr(n)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeFile(addrs []uint32, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := WriteTo(file, addrs); err != nil {
		file.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	return nil
}
