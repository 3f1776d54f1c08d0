package asn1codec

/*
constructors.go provides the caller-facing constructors used to build
[Value] instances for encoding. Each sets the UNIVERSAL tag class/number
and constructed flag appropriate for the type; callers needing implicit
or application tagging apply [Value.WithTag] afterward.
*/

import "math/big"

func NewBoolean(b bool) Value {
	return Value{Kind: KindBoolean, TagClass: ClassUniversal, TagNumber: TagBoolean, Bool: b}
}

// NewIntegerValue builds an INTEGER value from any big.Int; see
// [NewInteger] for converting a native Go integer into one.
func NewIntegerValue(i *big.Int) Value {
	return Value{Kind: KindInteger, TagClass: ClassUniversal, TagNumber: TagInteger, Int: i}
}

func NewEnumeratedValue(i *big.Int) Value {
	return Value{Kind: KindEnumerated, TagClass: ClassUniversal, TagNumber: TagEnumerated, Int: i}
}

func NewNull() Value {
	return Value{Kind: KindNull, TagClass: ClassUniversal, TagNumber: TagNull}
}

func NewOctetString(b []byte) Value {
	return Value{Kind: KindOctetString, TagClass: ClassUniversal, TagNumber: TagOctetString, Octets: b}
}

func NewBitStringValue(bs BitString) Value {
	return Value{Kind: KindBitString, TagClass: ClassUniversal, TagNumber: TagBitString, Bits: bs}
}

func NewOIDValue(o OID) Value {
	return Value{Kind: KindOID, TagClass: ClassUniversal, TagNumber: TagOID, OIDValue: o}
}

func NewRelativeOIDValue(o OID) Value {
	return Value{Kind: KindRelativeOID, TagClass: ClassUniversal, TagNumber: TagRelativeOID, OIDValue: o}
}

func NewSequence(children ...Value) Value {
	return Value{Kind: KindSequence, TagClass: ClassUniversal, TagNumber: TagSequence, Constructed: true, Children: children}
}

func NewSet(children ...Value) Value {
	return Value{Kind: KindSet, TagClass: ClassUniversal, TagNumber: TagSet, Constructed: true, Children: children}
}

func NewStringValue(kind StringKind, text string) Value {
	d := stringDescriptors[kind]
	return Value{Kind: KindString, TagClass: ClassUniversal, TagNumber: d.tag, StringKind: kind, Text: text}
}

func NewGeneralizedTimeValue(t Time) Value {
	t.FourDigitYear = true
	return Value{Kind: KindTime, TagClass: ClassUniversal, TagNumber: TagGeneralizedTime, TimeValue: t}
}

func NewUTCTimeValue(t Time) Value {
	t.FourDigitYear = false
	return Value{Kind: KindTime, TagClass: ClassUniversal, TagNumber: TagUTCTime, TimeValue: t, IsUTCTime: true}
}

// NewIncomplete builds a placeholder Value for a non-UNIVERSAL tag the
// tag map could not resolve. raw holds the TLV's captured content
// octets, pending a later [Codec.Complete] call.
func NewIncomplete(class TagClass, tag int, constructed bool, raw []byte) Value {
	return Value{Kind: KindIncomplete, TagClass: class, TagNumber: tag, Constructed: constructed, Raw: raw}
}
