package hexenc

import (
	"bytes"
	"testing"
)

func TestEncodeUppercase(t *testing.T) {
	got := Encode([]byte{0x00, 0xAB, 0x7F})
	if got != "00AB7F" {
		t.Errorf("Encode mismatch: got %q, want %q", got, "00AB7F")
	}
}

func TestEncodeLength(t *testing.T) {
	for _, n := range []int{0, 1, 7, 256} {
		buf := make([]byte, n)
		if got := len(Encode(buf)); got != 2*n {
			t.Errorf("Encode of %d bytes produced %d chars, want %d", n, got, 2*n)
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	in := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00}
	out, err := Decode(Encode(in))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Errorf("roundtrip mismatch: got %X, want %X", out, in)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode("ZZ"); err == nil {
		t.Error("expected error decoding non-hex input, got nil")
	}
}

func TestReverse(t *testing.T) {
	got := Reverse([]byte("ABCD"))
	if !bytes.Equal(got, []byte("DCBA")) {
		t.Errorf("Reverse mismatch: got %q", got)
	}
	if len(Reverse(nil)) != 0 {
		t.Error("Reverse of empty input should be empty")
	}
}

func TestTruncatedReverse(t *testing.T) {
	// The legacy reversal stops one element short: the final input byte
	// never appears in the output.
	got := TruncatedReverse([]byte("ABCD"))
	if !bytes.Equal(got, []byte("CBA")) {
		t.Errorf("TruncatedReverse mismatch: got %q, want %q", got, "CBA")
	}
	if TruncatedReverse(nil) != nil {
		t.Error("TruncatedReverse of empty input should be nil")
	}
	if len(TruncatedReverse([]byte{0x41})) != 0 {
		t.Error("TruncatedReverse of a single byte should be empty")
	}
}
