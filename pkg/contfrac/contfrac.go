// Package contfrac encodes a byte sequence as a rational number. Bytes
// c_0 .. c_{n-1} map to the rational whose canonical continued fraction
// is [c_0+2; c_1+2, ..., c_{n-1}+2]. The +2 offset keeps every
// coefficient at least 2, which makes the canonical representation
// unambiguous: a trailing coefficient of 1 could otherwise fold into
// its predecessor and two different byte sequences would collide.
package contfrac

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrEmptyPlaintext is returned by Encode for zero-length input:
	// no continued fraction has zero coefficients.
	ErrEmptyPlaintext = errors.New("contfrac: cannot encode an empty byte sequence")

	// ErrNotPositive is returned by Decode when the rational is not
	// strictly positive.
	ErrNotPositive = errors.New("contfrac: continued fractions are only defined for positive numbers")

	// ErrNoPlaintext is returned by Decode when some coefficient of
	// the canonical continued fraction falls outside 2..257, so the
	// rational does not correspond to any byte sequence.
	ErrNoPlaintext = errors.New("contfrac: rational does not correspond to any plaintext")
)

// offset applied to every byte before it becomes a coefficient.
const coefOffset = 2

// Encode returns the rational whose canonical continued fraction
// coefficients are the bytes of plaintext, each offset by 2.
func Encode(plaintext []byte) (*big.Rat, error) {
	if len(plaintext) == 0 {
		return nil, ErrEmptyPlaintext
	}

	// Build from the innermost coefficient outward:
	// x_i = (c_i + 2) + 1/x_{i+1}.
	last := len(plaintext) - 1
	x := new(big.Rat).SetInt64(int64(plaintext[last]) + coefOffset)
	for i := last - 1; i >= 0; i-- {
		x.Inv(x)
		x.Add(x, new(big.Rat).SetInt64(int64(plaintext[i])+coefOffset))
	}
	return x, nil
}

// Decode expands the canonical continued fraction of x and maps each
// coefficient back to a byte. All coefficients must lie in 2..257.
func Decode(x *big.Rat) ([]byte, error) {
	if x.Sign() <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrNotPositive, x.RatString())
	}

	var plaintext []byte
	rest := new(big.Rat).Set(x)
	for {
		coef := new(big.Int).Quo(rest.Num(), rest.Denom())
		if !coef.IsInt64() || coef.Int64() < coefOffset || coef.Int64() > coefOffset+255 {
			return nil, fmt.Errorf("%w: coefficient %s out of range", ErrNoPlaintext, coef)
		}
		plaintext = append(plaintext, byte(coef.Int64()-coefOffset))

		rest.Sub(rest, new(big.Rat).SetInt(coef))
		if rest.Sign() == 0 {
			return plaintext, nil
		}
		rest.Inv(rest)
	}
}
