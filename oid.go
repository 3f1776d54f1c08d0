package asn1codec

/*
oid.go implements the OBJECT IDENTIFIER and RELATIVE OID payload rules
of X.690 §8.19.
*/

import (
	"math/big"
	"strings"
)

// OID holds an OBJECT IDENTIFIER or RELATIVE OID as its dotted arcs.
type OID []*big.Int

// ParseOID parses a dotted-decimal string (e.g. "1.3.6.1.4.1.311.21.20")
// into an [OID]. It does not enforce the absolute-OID first/second arc
// rule; callers constructing an absolute OID should use [NewOID].
func ParseOID(s string) (OID, error) {
	if s == "" {
		return nil, invalidArgument("empty OID string")
	}
	parts := strings.Split(s, ".")
	out := make(OID, 0, len(parts))
	for _, p := range parts {
		n, ok := new(big.Int).SetString(p, 10)
		if !ok {
			return nil, invalidArgument("OID: invalid arc ", p)
		}
		out = append(out, n)
	}
	return out, nil
}

// Equal reports whether o and other have the same arcs in the same order.
func (o OID) Equal(other OID) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i].Cmp(other[i]) != 0 {
			return false
		}
	}
	return true
}

func (o OID) String() string {
	parts := make([]string, len(o))
	for i, a := range o {
		parts[i] = a.String()
	}
	return strings.Join(parts, ".")
}

// NewOID builds an absolute OBJECT IDENTIFIER from the supplied arcs,
// enforcing the invariant from spec §3: at least two arcs, the first
// arc in {0,1,2}, and — when the first arc is 0 or 1 — a second arc no
// greater than 39.
func NewOID(arcs ...int) (OID, error) {
	if len(arcs) < 2 {
		return nil, encoderError("OBJECT IDENTIFIER must have at least two arcs")
	}
	if arcs[0] < 0 || arcs[0] > 2 {
		return nil, encoderError("OBJECT IDENTIFIER: first arc must be 0, 1 or 2")
	}
	if arcs[0] < 2 && arcs[1] > 39 {
		return nil, encoderError("OBJECT IDENTIFIER: second arc must be <= 39 when first arc is 0 or 1")
	}
	o := make(OID, len(arcs))
	for i, a := range arcs {
		o[i] = big.NewInt(int64(a))
	}
	return o, nil
}

// NewRelativeOID builds a RELATIVE OID from the supplied arcs. A
// RELATIVE OID may have any number of arcs, including zero.
func NewRelativeOID(arcs ...int) OID {
	o := make(OID, len(arcs))
	for i, a := range arcs {
		o[i] = big.NewInt(int64(a))
	}
	return o
}

func encodeOIDContent(o OID) ([]byte, error) {
	if len(o) < 2 {
		return nil, encoderError("OBJECT IDENTIFIER must have at least two arcs")
	}
	first, second := o[0], o[1]
	if first.Sign() < 0 || first.Cmp(big.NewInt(2)) > 0 {
		return nil, encoderError("OBJECT IDENTIFIER: first arc must be 0, 1 or 2")
	}
	if first.Cmp(big.NewInt(2)) < 0 && second.Cmp(big.NewInt(39)) > 0 {
		return nil, encoderError("OBJECT IDENTIFIER: second arc must be <= 39 when first arc is 0 or 1")
	}

	lead := new(big.Int).Mul(first, big.NewInt(40))
	lead.Add(lead, second)

	var out []byte
	out = append(out, encodeBase128(lead)...)
	for _, arc := range o[2:] {
		if arc.Sign() < 0 {
			return nil, encoderError("OBJECT IDENTIFIER: arcs must be non-negative")
		}
		out = append(out, encodeBase128(arc)...)
	}
	return out, nil
}

func encodeRelativeOIDContent(o OID) ([]byte, error) {
	var out []byte
	for _, arc := range o {
		if arc.Sign() < 0 {
			return nil, encoderError("RELATIVE OID: arcs must be non-negative")
		}
		out = append(out, encodeBase128(arc)...)
	}
	return out, nil
}

func decodeOIDContent(data []byte, root bool) (OID, error) {
	if len(data) == 0 {
		return nil, encoderError("OBJECT IDENTIFIER: zero-length content")
	}

	arcs, err := decodeVLQSeries(data, root)
	if err != nil {
		return nil, err
	}
	if len(arcs) == 0 {
		return nil, encoderError("OBJECT IDENTIFIER: no arcs decoded")
	}

	lead := arcs[0]
	var first, second *big.Int
	eighty := big.NewInt(80)
	forty := big.NewInt(40)
	if lead.Cmp(forty) < 0 {
		first, second = big.NewInt(0), new(big.Int).Set(lead)
	} else if lead.Cmp(eighty) < 0 {
		first = big.NewInt(1)
		second = new(big.Int).Sub(lead, forty)
	} else {
		first = big.NewInt(2)
		second = new(big.Int).Sub(lead, eighty)
	}

	out := make(OID, 0, len(arcs)+1)
	out = append(out, first, second)
	out = append(out, arcs[1:]...)
	return out, nil
}

func decodeRelativeOIDContent(data []byte, root bool) (OID, error) {
	if len(data) == 0 {
		return nil, encoderError("RELATIVE OID: zero-length content")
	}
	return decodeVLQSeries(data, root)
}

// decodeVLQSeries decodes data as a back-to-back sequence of base-128
// VLQ values, erroring if the final value's continuation bit never
// clears before the buffer ends.
func decodeVLQSeries(data []byte, root bool) (OID, error) {
	var out OID
	for len(data) > 0 {
		v, consumed, terminated := decodeBase128(data)
		if !terminated {
			return nil, shortInputErr(root, "OBJECT IDENTIFIER: truncated arc")
		}
		out = append(out, v)
		data = data[consumed:]
	}
	return out, nil
}
