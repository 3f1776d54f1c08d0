package asn1codec

/*
der.go derives the DER codec from BER (component 4.3): canonical SET
ordering on encode, and the extra encode/decode validations DER layers
on top of ber.go's permissive behavior. A DER Codec is the same Codec
type as BER with der set true and a stricter default [Options]; every
other encode/decode path in ber.go already consults c.der and
c.opts.PrimitiveOnly where a rule diverges.
*/

import "bytes"

// NewDER returns a Codec implementing the Distinguished Encoding Rules
// with default options (BitstringPadding '0', PrimitiveOnly covering
// every character-restricted string plus BIT STRING and OCTET STRING).
func NewDER() *Codec { return &Codec{der: true, opts: DefaultDEROptions(), tags: NewTagMap()} }

// NewDERWithOptions returns a DER Codec using the supplied options.
// BitstringPadding is forced to '0' regardless of the value supplied,
// since DER permits no other padding bit.
func NewDERWithOptions(o Options) *Codec {
	o.BitstringPadding = '0'
	return &Codec{der: true, opts: o, tags: NewTagMap()}
}

// encodeSet encodes SET children. Under DER the encoded elements are
// sorted into canonical order before concatenation: grouped by class
// (UNIVERSAL < APPLICATION < CONTEXT-SPECIFIC < PRIVATE), ordered by
// ascending tag number within a class, and elements sharing a class and
// tag number ordered by their own encoded octet sequence,
// lexicographically. The constructed bit plays no part in the tag order.
// Under BER, children are encoded in the order supplied.
func (c *Codec) encodeSet(children []Value) ([]byte, bool, error) {
	encoded := make([][]byte, len(children))
	for i := range children {
		enc, err := c.Encode(children[i])
		if err != nil {
			return nil, false, err
		}
		encoded[i] = enc
	}

	if c.der {
		sortCanonical(encoded)
	}

	var out []byte
	for _, e := range encoded {
		out = append(out, e...)
	}
	return out, true, nil
}

// sortCanonical performs a stable sort of fully-encoded TLV byte slices
// by tag class, then tag number, breaking ties with a lexicographic
// comparison in which shorter slices are treated as zero-padded per
// X.690 §11.6.
func sortCanonical(encoded [][]byte) {
	less := func(i, j int) bool {
		ci, _, ti, _, _ := parseIdentifier(encoded[i], false)
		cj, _, tj, _, _ := parseIdentifier(encoded[j], false)
		if ci != cj {
			return ci < cj
		}
		if ti != tj {
			return ti < tj
		}
		return compareZeroPadded(encoded[i], encoded[j]) < 0
	}
	insertionSortStable(encoded, less)
}

func compareZeroPadded(a, b []byte) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var av, bv byte
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return bytes.Compare(a, b)
}

// insertionSortStable is a small stable sort; SET children counts are
// tiny in practice so a simple O(n^2) sort avoids pulling in "sort"
// for a one-call-site use.
func insertionSortStable(s [][]byte, less func(i, j int) bool) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0; j-- {
			if less(j, j-1) {
				s[j-1], s[j] = s[j], s[j-1]
			} else {
				break
			}
		}
	}
}
