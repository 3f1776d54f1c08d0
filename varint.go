package asn1codec

/*
varint.go implements the base-128 variable-length-quantity encoding
shared by high-tag-number identifiers (X.690 §8.1.2.4) and OBJECT
IDENTIFIER / RELATIVE OID arcs (§8.19).
*/

import "math/big"

// encodeBase128 returns the base-128 big-endian encoding of n with the
// continuation bit (0x80) set on every byte but the last.
func encodeBase128(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0x00}
	}

	var out []byte
	base := big.NewInt(128)
	rem := new(big.Int)
	v := new(big.Int).Set(n)
	zero := big.NewInt(0)

	for v.Cmp(zero) > 0 {
		v.DivMod(v, base, rem)
		out = append([]byte{byte(rem.Uint64())}, out...)
	}
	for i := 0; i < len(out)-1; i++ {
		out[i] |= 0x80
	}
	return out
}

func encodeBase128Int(n int) []byte {
	return encodeBase128(big.NewInt(int64(n)))
}

// decodeBase128 reads a base-128 VLQ starting at data[0], returning the
// decoded value, the number of bytes consumed, and whether a
// terminating byte (continuation bit clear) was found before data ran
// out.
func decodeBase128(data []byte) (value *big.Int, consumed int, terminated bool) {
	value = big.NewInt(0)
	base := big.NewInt(128)
	for i := 0; i < len(data); i++ {
		b := data[i]
		value.Mul(value, base)
		value.Add(value, big.NewInt(int64(b&0x7F)))
		consumed++
		if b&0x80 == 0 {
			terminated = true
			return
		}
	}
	return value, consumed, false
}
