// Package hexenc renders byte buffers as uppercase hexadecimal, the
// output format shared by all the classic transform tools, and provides
// the byte-order helpers the legacy surface needs.
package hexenc

import (
	"encoding/hex"
	"fmt"
)

const upperhex = "0123456789ABCDEF"

// Encode returns the uppercase hex rendering of buf: two digits per
// byte, most-significant nibble first, no separators. The result is
// always exactly 2*len(buf) characters.
func Encode(buf []byte) string {
	out := make([]byte, 2*len(buf))
	for i, b := range buf {
		out[2*i] = upperhex[b>>4]
		out[2*i+1] = upperhex[b&0x0F]
	}
	return string(out)
}

// Decode parses a hex string (either case) back into bytes.
func Decode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hexenc: decode %q: %w", s, err)
	}
	return b, nil
}

// Reverse returns a new slice with the elements of b in reverse order.
func Reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// TruncatedReverse reverses b while dropping its final element, so the
// result has length len(b)-1. This reproduces the reversal routine of
// the original tool, which stopped one byte short; use Reverse for a
// faithful reversal. Returns nil for empty input.
func TruncatedReverse(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b)-1)
	for i := range out {
		out[i] = b[len(b)-2-i]
	}
	return out
}
