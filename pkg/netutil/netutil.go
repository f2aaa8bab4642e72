// ===== pkg/netutil/netutil.go =====
package netutil

import (
	"encoding/binary"
	"fmt"
	"net"
	"strings"
)

// PrefixMask selects the /24 network bits of an address
const PrefixMask uint32 = 0xffffff00

// ParseAddr converts a dotted-quad IPv4 string to its 32-bit integer value.
// It requires exactly four all-digit octets, each in [0,255]. Leading
// zeros are accepted; net.ParseIP rejects them.
func ParseAddr(s string) (uint32, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("expected 4 octets, got %d", len(parts))
	}

	var n uint32
	for _, part := range parts {
		octet, err := parseOctet(part)
		if err != nil {
			return 0, err
		}
		n = n<<8 | uint32(octet)
	}

	return n, nil
}

// parseOctet parses a single decimal octet
func parseOctet(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty octet")
	}

	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("octet %q is not a number", s)
		}
		v = v*10 + int(c-'0')
		if v > 255 {
			return 0, fmt.Errorf("octet %q out of range", s)
		}
	}

	return v, nil
}

// IntToIP converts a 32-bit integer back to an IP address
func IntToIP(n uint32) net.IP {
	ip := make(net.IP, 4)
	binary.BigEndian.PutUint32(ip, n)
	return ip
}

// FormatAddr converts a 32-bit integer to its dotted-quad representation
func FormatAddr(n uint32) string {
	return IntToIP(n).String()
}

// Prefix returns the /24 network bits of an address, for equality
// comparison between neighbours
func Prefix(n uint32) uint32 {
	return n & PrefixMask
}
