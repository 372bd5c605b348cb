package transform

// bitPeriod is how many plaintext positions each key byte covers before
// the schedule moves to the next one. The classic tool advanced its bit
// cursor over only seven of the eight bits; compatible output requires
// keeping the schedule one bit short.
const bitPeriod = 7

// bitmaskXOR is the repeating-key, bit-gated XOR transform. At each
// plaintext position it tests one bit of the current key byte: when the
// bit is set the output is the input XORed with the whole key byte,
// otherwise the byte passes through unchanged.
type bitmaskXOR struct {
	key []byte
}

func NewBitmaskXOR(key []byte) (Transform, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &bitmaskXOR{key: k}, nil
}

func (t *bitmaskXOR) Apply(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	kIdx, kBit := 0, 0
	for i, c := range data {
		if t.key[kIdx]&(1<<kBit) != 0 {
			out[i] = c ^ t.key[kIdx]
		} else {
			out[i] = c
		}
		kBit++
		if kBit == bitPeriod {
			kBit = 0
			kIdx++
			if kIdx == len(t.key) {
				kIdx = 0
			}
		}
	}
	return out, nil
}

// Reverse re-applies the forward pass: the bit gate depends only on the
// position, so XORed positions coincide and the transform is its own
// inverse.
func (t *bitmaskXOR) Reverse(data []byte) ([]byte, error) {
	return t.Apply(data)
}
