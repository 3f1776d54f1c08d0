package asn1codec

import "math/big"

/*
value.go implements the Value type: a closed tagged union over every
UNIVERSAL ASN.1 type this codec supports, plus Incomplete for bytes
whose tag the decoder could not resolve to a universal type. Per the
Design Notes this favours a single struct with a Kind discriminant over
a class hierarchy, so the codec dispatches on Kind rather than dynamic
type identity.
*/

// Kind discriminates the variant a [Value] holds.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindInteger
	KindEnumerated
	KindBitString
	KindOctetString
	KindNull
	KindOID
	KindRelativeOID
	KindSequence
	KindSet
	KindString
	KindTime
	KindIncomplete
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "BOOLEAN"
	case KindInteger:
		return "INTEGER"
	case KindEnumerated:
		return "ENUMERATED"
	case KindBitString:
		return "BIT STRING"
	case KindOctetString:
		return "OCTET STRING"
	case KindNull:
		return "NULL"
	case KindOID:
		return "OBJECT IDENTIFIER"
	case KindRelativeOID:
		return "RELATIVE OID"
	case KindSequence:
		return "SEQUENCE"
	case KindSet:
		return "SET"
	case KindString:
		return "STRING"
	case KindTime:
		return "TIME"
	case KindIncomplete:
		return "INCOMPLETE"
	}
	return "UNKNOWN"
}

// Value is a single decoded or to-be-encoded ASN.1 element. Every
// instance carries the common envelope — tag class, tag number, the
// constructed flag, and (root values only) trailing bytes — plus
// exactly one populated payload field selected by Kind.
//
// For KindSequence and KindSet, Children is the authoritative payload.
// For every other Kind, the matching field below is.
type Value struct {
	Kind        Kind
	TagClass    TagClass
	TagNumber   int
	Constructed bool

	// Trailing holds bytes left over in the input past the first
	// complete TLV. Only ever set on the value returned by the
	// top-level Decode call.
	Trailing []byte

	Bool       bool
	Int        *big.Int
	Bits       BitString
	Octets     []byte
	OIDValue   OID
	Children   []Value
	StringKind StringKind
	Text       string
	TimeValue  Time
	IsUTCTime  bool

	// Raw holds the captured payload bytes of an Incomplete value.
	Raw []byte
}

// Tag returns the value's current (tag class, tag number, constructed)
// triple, reflecting any override applied via WithTag.
func (v Value) Tag() (TagClass, int, bool) { return v.TagClass, v.TagNumber, v.Constructed }

// WithTag returns a copy of v with its tag class and tag number
// overridden, as used to produce implicitly-tagged or application-class
// values. The constructed flag is left unchanged; see WithConstructed.
func (v Value) WithTag(class TagClass, tag int) Value {
	v.TagClass = class
	v.TagNumber = tag
	return v
}

// WithConstructed returns a copy of v with its constructed flag set to
// constructed.
func (v Value) WithConstructed(constructed bool) Value {
	v.Constructed = constructed
	return v
}

// IsCharacterRestricted reports whether v is a character string
// ([KindString]), the string variants DER forbids from being
// constructed. OCTET STRING and BIT STRING are not character-restricted;
// DER's ban on constructing them comes from [DefaultDEROptions].
func (v Value) IsCharacterRestricted() bool {
	return v.Kind == KindString
}
