// Package hexscan converts loosely formatted hex dumps into bytes.
package hexscan

import (
	"encoding/hex"
	"regexp"
)

var hexPair = regexp.MustCompile(`[0-9a-fA-F]{2}`)

// Bytes scans s for contiguous two-digit hex groups and decodes them.
// Everything between groups acts as a separator, so whitespace, colons
// and 0x prefixes in pasted dumps are skipped rather than rejected.
// A lone trailing hex digit is dropped.
func Bytes(s string) []byte {
	pairs := hexPair.FindAllString(s, -1)
	out := make([]byte, 0, len(pairs))
	for _, p := range pairs {
		b, _ := hex.DecodeString(p)
		out = append(out, b[0])
	}
	return out
}
