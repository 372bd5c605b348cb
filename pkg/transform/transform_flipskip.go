package transform

import "fmt"

// FlipMask is XORed into every byte of a flip run.
const FlipMask = 0x7F

// flipSkip alternates two phases over the plaintext. In the flip phase
// each byte is XORed with FlipMask; the run length is the current key
// byte read as an ASCII decimal digit. When a run completes, the key
// index advances (wrapping at the key length) and the transform skips
// skipN bytes unchanged before flipping again. A '0' digit contributes
// an empty run and moves straight to the skip phase, which is also what
// keeps an all-zero key from stalling: skipN must be at least 1, so
// every position consumes input.
//
// The original tool let its key index run one slot past the end of the
// key for a single step, reading the C string's NUL terminator; that
// cannot be expressed over a bounds-checked slice, so the index wraps
// exactly at the key length here.
type flipSkip struct {
	key   []byte
	skipN int
}

func NewFlipSkip(key []byte, skipN int) (Transform, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if skipN < 1 {
		return nil, fmt.Errorf("%w: skip length %d", ErrBadPeriod, skipN)
	}
	for i, b := range key {
		if b < '0' || b > '9' {
			return nil, fmt.Errorf("%w: key[%d]=0x%02X", ErrKeyNotDigits, i, b)
		}
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &flipSkip{key: k, skipN: skipN}, nil
}

func (t *flipSkip) Apply(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	kIdx := 0
	skipping := false
	left := int(t.key[0] - '0')
	for i, c := range data {
		if !skipping && left == 0 {
			// Empty flip run: advance the key and go straight to skipping.
			kIdx++
			if kIdx == len(t.key) {
				kIdx = 0
			}
			skipping = true
			left = t.skipN
		}
		if skipping {
			out[i] = c
			left--
			if left == 0 {
				skipping = false
				left = int(t.key[kIdx] - '0')
			}
		} else {
			out[i] = c ^ FlipMask
			left--
			if left == 0 {
				kIdx++
				if kIdx == len(t.key) {
					kIdx = 0
				}
				skipping = true
				left = t.skipN
			}
		}
	}
	return out, nil
}

// Reverse re-applies the forward pass: flipped positions XOR back to
// the input and skipped positions were never changed, on the same
// position-only schedule.
func (t *flipSkip) Reverse(data []byte) ([]byte, error) {
	return t.Apply(data)
}
