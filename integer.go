package asn1codec

/*
integer.go implements INTEGER/ENUMERATED two's-complement content
encoding and decoding (X.690 §8.3), using an arbitrary-precision
integer internally so values outside the 32-bit range this package is
required to support are not silently truncated.

NewInteger is generic over any native Go integer kind, grounded on the
teacher's own generic Integer constructor; constraints.Integer comes
from the one third-party dependency the teacher package declares.
*/

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// NewInteger builds a *big.Int from any native signed or unsigned Go
// integer type, for use with [NewIntegerValue] or [NewEnumeratedValue].
func NewInteger[T constraints.Integer](x T) *big.Int {
	switch v := any(x).(type) {
	case int:
		return big.NewInt(int64(v))
	case int8:
		return big.NewInt(int64(v))
	case int16:
		return big.NewInt(int64(v))
	case int32:
		return big.NewInt(int64(v))
	case int64:
		return big.NewInt(v)
	case uint:
		return new(big.Int).SetUint64(uint64(v))
	case uint8:
		return new(big.Int).SetUint64(uint64(v))
	case uint16:
		return new(big.Int).SetUint64(uint64(v))
	case uint32:
		return new(big.Int).SetUint64(uint64(v))
	case uint64:
		return new(big.Int).SetUint64(v)
	default:
		return big.NewInt(int64(x))
	}
}

// encodeIntegerContent returns the minimal two's-complement big-endian
// encoding of i: the shortest byte sequence whose leading byte is not a
// redundant 0x00/0xFF copy of the sign bit of the following byte.
func encodeIntegerContent(i *big.Int) []byte {
	if i.Sign() == 0 {
		return []byte{0x00}
	}
	if i.Sign() > 0 {
		b := i.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	// Negative: find the minimal byte count n such that i fits in
	// [-(2^(8n-1)), 2^(8n-1)-1], then take i mod 2^(8n).
	abs := new(big.Int).Abs(i)
	n := (abs.BitLen() + 7) / 8
	if n == 0 {
		n = 1
	}
	min := new(big.Int).Lsh(big.NewInt(1), uint(8*n-1))
	min.Neg(min)
	if i.Cmp(min) < 0 {
		n++
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	twosComp := new(big.Int).Add(mod, i)
	b := twosComp.Bytes()
	for len(b) < n {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// decodeIntegerContent reverses encodeIntegerContent, sign-extending
// from the top bit of the first byte.
func decodeIntegerContent(data []byte) *big.Int {
	val := new(big.Int).SetBytes(data)
	if len(data) > 0 && data[0]&0x80 != 0 {
		bitLen := uint(len(data) * 8)
		twoPow := new(big.Int).Lsh(big.NewInt(1), bitLen)
		val.Sub(val, twoPow)
	}
	return val
}
