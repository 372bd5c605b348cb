package transform

import "cipherkit/pkg/hexenc"

// Single-shot surfaces matching the classic tools: transform a buffer
// and hex-encode the result in one call. These are what the CLI and the
// benchmark harness drive.

// BitmaskHex runs the bitmask XOR transform over plaintext and returns
// the uppercase hex rendering.
func BitmaskHex(key, plaintext []byte) (string, error) {
	t, err := NewBitmaskXOR(key)
	if err != nil {
		return "", err
	}
	out, err := t.Apply(plaintext)
	if err != nil {
		return "", err
	}
	return hexenc.Encode(out), nil
}

// StrideHex runs the stride-step transform over plaintext and returns
// the uppercase hex rendering.
func StrideHex(p, q int, plaintext []byte) (string, error) {
	t, err := NewStrideStep(p, q)
	if err != nil {
		return "", err
	}
	out, err := t.Apply(plaintext)
	if err != nil {
		return "", err
	}
	return hexenc.Encode(out), nil
}

// FlipSkipHex runs the flip-skip transform over plaintext, hex-encodes
// the result, then reverses the hex string with its last character
// dropped, which is the exact output contract of the original tool
// (the reversal ran one byte short). Pass the result of
// hexenc.Encode + flipSkip.Apply directly if the faithful, untruncated
// form is wanted instead.
func FlipSkipHex(key []byte, skipN int, plaintext []byte) (string, error) {
	t, err := NewFlipSkip(key, skipN)
	if err != nil {
		return "", err
	}
	out, err := t.Apply(plaintext)
	if err != nil {
		return "", err
	}
	hexed := hexenc.Encode(out)
	if hexed == "" {
		return "", nil
	}
	return string(hexenc.TruncatedReverse([]byte(hexed))), nil
}
