package asn1codec

/*
options.go implements the codec options bag from spec §6: a plain
struct with documented defaults and fluent With* builders, following the
teacher's opts.go pattern rather than a file/env-backed config loader —
there is nothing outside the call itself for this library to configure.
*/

// Options controls per-codec encoding behavior.
type Options struct {
	// BitstringPadding is the bit value ('0' or '1') used to pad a BIT
	// STRING to a byte boundary on encode. DER forces '0'.
	BitstringPadding byte

	// PrimitiveOnly lists the UNIVERSAL tag numbers whose constructed
	// encoding is forbidden, in addition to the core primitive-only
	// types (BOOLEAN, INTEGER, ENUMERATED, NULL, OID, RELATIVE OID)
	// which are always forbidden regardless of this set.
	PrimitiveOnly map[int]bool
}

// DefaultBEROptions returns the permissive BER defaults: no padding
// preference beyond '0', and an empty PrimitiveOnly set (BER permits
// constructed strings and bit strings).
func DefaultBEROptions() Options {
	return Options{BitstringPadding: '0', PrimitiveOnly: map[int]bool{}}
}

// DefaultDEROptions returns the DER defaults: '0' padding (the only
// legal value) and PrimitiveOnly populated with every character-
// restricted string plus BIT STRING and OCTET STRING.
func DefaultDEROptions() Options {
	po := map[int]bool{
		TagBitString:   true,
		TagOctetString: true,
	}
	for _, d := range stringDescriptors {
		if d.restricted {
			po[d.tag] = true
		}
	}
	return Options{BitstringPadding: '0', PrimitiveOnly: po}
}

// WithBitstringPadding returns a copy of o with BitstringPadding set.
func (o Options) WithBitstringPadding(pad byte) Options {
	o.BitstringPadding = pad
	return o
}

// WithPrimitiveOnly returns a copy of o with PrimitiveOnly replaced.
func (o Options) WithPrimitiveOnly(set map[int]bool) Options {
	o.PrimitiveOnly = set
	return o
}

// corePrimitiveOnly lists the UNIVERSAL tags that may never be
// constructed under either BER or DER (spec §4.2.4).
var corePrimitiveOnly = map[int]bool{
	TagBoolean:     true,
	TagInteger:     true,
	TagEnumerated:  true,
	TagNull:        true,
	TagOID:         true,
	TagRelativeOID: true,
}
