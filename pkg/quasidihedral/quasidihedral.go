// Package quasidihedral implements a byte-stream cipher over the
// quasidihedral group of order 256, presented as
//
//	G = < r, s | r^128 = s^2 = 1, sr = r^63 s >
//
// Every element of G is uniquely r^k s^j with k in 0..127 and j in
// {0, 1}. A byte encodes an element with j in the most significant bit
// and k in the low seven bits. Encryption replaces each byte with the
// running left-to-right product of the stream so far; decryption
// multiplies each byte on the left by the inverse of its predecessor.
package quasidihedral

// Distinguished elements of G in byte encoding.
const (
	Identity byte = 0x00 // the empty product
	R        byte = 0x01 // the rotation generator
	S        byte = 0x80 // the reflection generator
)

// Times returns the group product ab.
func Times(a, b byte) byte {
	k1, k2 := int(a&0x7F), int(b&0x7F)
	j1, j2 := (a>>7)&1, (b>>7)&1

	j := j1 ^ j2
	var k int
	if j1 != 0 {
		// Pushing b's rotation past a's reflection conjugates it:
		// s r^k2 = r^(63*k2) s.
		k = (k1 + 63*k2) % 128
	} else {
		k = (k1 + k2) % 128
	}
	return j<<7 | byte(k)
}

// Inverse returns the group inverse of a.
func Inverse(a byte) byte {
	k := int(a & 0x7F)
	if a&0x80 != 0 {
		return 0x80 | byte(63*(128-k)%128)
	}
	return byte((128 - k) % 128)
}

// Cipher is the running-product stream cipher over G. It satisfies the
// transform.Transform interface: Apply encrypts, Reverse decrypts, and
// both preserve length. The cipher carries no key material; its only
// state is local to a single pass.
type Cipher struct{}

func NewCipher() *Cipher { return &Cipher{} }

// Apply encrypts: output[i] is the product input[0] * ... * input[i].
func (c *Cipher) Apply(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	running := Identity
	for i, b := range data {
		running = Times(running, b)
		out[i] = running
	}
	return out, nil
}

// Reverse decrypts: input[i] = Inverse(output[i-1]) * output[i].
func (c *Cipher) Reverse(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	last := Identity
	for i, b := range data {
		out[i] = Times(Inverse(last), b)
		last = b
	}
	return out, nil
}
