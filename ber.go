package asn1codec

/*
ber.go implements the BER codec (component 4.2): identifier and length
octet assembly/parsing, and the top-level Codec type shared by DER
(see der.go, which tightens this codec's behavior rather than
reimplementing it).
*/

import "math/big"

// Codec encodes [Value] instances to BER or DER bytes and decodes bytes
// back to [Value] instances. A Codec is safe for concurrent use by
// multiple goroutines provided [Codec.SetTypeMap] is not invoked
// concurrently with an in-flight Encode/Decode (spec §5).
type Codec struct {
	der  bool
	opts Options
	tags *TagMap
}

// NewBER returns a Codec implementing the Basic Encoding Rules with
// default options.
func NewBER() *Codec { return &Codec{opts: DefaultBEROptions(), tags: NewTagMap()} }

// NewBERWithOptions returns a BER Codec using the supplied options.
func NewBERWithOptions(o Options) *Codec { return &Codec{opts: o, tags: NewTagMap()} }

// SetTypeMap replaces the tag map for a non-UNIVERSAL class and returns
// the receiver, per spec §4.1. Errors (e.g. attempting to override
// UNIVERSAL) are swallowed, leaving the existing map in place; use
// [Codec.TagMap] and [TagMap.SetTypeMap] directly to observe them.
func (c *Codec) SetTypeMap(class TagClass, mapping map[int]int) *Codec {
	_ = c.tags.SetTypeMap(class, mapping)
	return c
}

// TagMap returns the codec's tag map registry for direct inspection or
// mutation.
func (c *Codec) TagMap() *TagMap { return c.tags }

// identifier octet assembly/parsing.

func encodeIdentifier(class TagClass, tag int, constructed bool) []byte {
	b0 := byte(class)
	if constructed {
		b0 |= constructedBit
	}
	if tag < 31 {
		return []byte{b0 | byte(tag)}
	}
	out := []byte{b0 | 0x1F}
	return append(out, encodeBase128Int(tag)...)
}

// parseIdentifier reads the identifier octet(s) at the front of data,
// returning the class, constructed flag, tag number and octet count
// consumed. root controls whether a truncated high-tag-number form is
// reported as PartialPdu or EncoderError.
func parseIdentifier(data []byte, root bool) (class TagClass, constructed bool, tag int, n int, err error) {
	if len(data) == 0 {
		err = shortInputErr(root, "no data available to decode an identifier")
		return
	}
	b0 := data[0]
	class = TagClass(b0 & classMask)
	constructed = b0&constructedBit != 0
	low := int(b0 & 0x1F)
	if low < 31 {
		tag = low
		n = 1
		return
	}

	v, consumed, terminated := decodeBase128(data[1:])
	if !terminated {
		err = shortInputErr(root, "truncated high-tag-number form")
		return
	}
	if !v.IsInt64() || v.Int64() < 0 {
		err = encoderError("tag number out of range")
		return
	}
	tag = int(v.Int64())
	n = 1 + consumed
	return
}

// encodeLength appends the definite-length encoding of n to dst:
// one byte if n < 128, otherwise 0x80|k followed by k base-256 bytes.
func encodeLength(dst []byte, n int) []byte {
	if n < 0 {
		panic("asn1codec: negative length")
	}
	if n < 128 {
		return append(dst, byte(n))
	}
	var tmp [8]byte
	i := len(tmp)
	v := uint64(n)
	for v > 0 {
		i--
		tmp[i] = byte(v & 0xFF)
		v >>= 8
	}
	k := len(tmp) - i
	dst = append(dst, 0x80|byte(k))
	return append(dst, tmp[i:]...)
}

// parseLength reads a definite-length prefix at the front of data,
// returning the decoded length, the number of octets consumed, and an
// error. Indefinite length (0x80) and the reserved 0xFF form always
// produce an EncoderError regardless of root, per spec §4.2.2; a
// length prefix truncated by the end of the buffer produces the
// root-sensitive PartialPdu/EncoderError split.
func parseLength(data []byte, root bool) (length int, n int, err error) {
	if len(data) == 0 {
		err = shortInputErr(root, "length byte not found")
		return
	}
	b0 := data[0]
	if b0 == 0x80 {
		err = encoderError("Indefinite length encoding is not supported")
		return
	}
	if b0 < 0x80 {
		return int(b0), 1, nil
	}
	k := int(b0 & 0x7F)
	if k == 0x7F {
		err = encoderError("reserved length form (0xFF)")
		return
	}
	if len(data) < 1+k {
		err = shortInputErr(root, "Not enough data to decode the length")
		return
	}
	var v big.Int
	v.SetBytes(data[1 : 1+k])
	if !v.IsInt64() || v.Int64() < 0 || v.Int64() > 1<<31 {
		err = encoderError("length bytes too large")
		return
	}
	return int(v.Int64()), 1 + k, nil
}

// assembleTLV concatenates the identifier, length and content octets
// for a single element.
func assembleTLV(class TagClass, tag int, constructed bool, content []byte) []byte {
	out := encodeIdentifier(class, tag, constructed)
	out = encodeLength(out, len(content))
	out = append(out, content...)
	return out
}

// Encode renders v to its BER (or, for a DER codec, DER) byte
// encoding.
func (c *Codec) Encode(v Value) ([]byte, error) {
	content, constructed, err := c.encodeContent(v)
	if err != nil {
		return nil, err
	}
	return assembleTLV(v.TagClass, v.TagNumber, constructed, content), nil
}

func (c *Codec) isPrimitiveOnly(universalTag int) bool {
	if corePrimitiveOnly[universalTag] {
		return true
	}
	return c.opts.PrimitiveOnly[universalTag]
}

func (c *Codec) encodeContent(v Value) (content []byte, constructed bool, err error) {
	switch v.Kind {
	case KindBoolean:
		if v.Constructed {
			return nil, false, encoderError("BOOLEAN must not be constructed")
		}
		b := byte(0x00)
		if v.Bool {
			b = 0xFF
		}
		return []byte{b}, false, nil

	case KindNull:
		if v.Constructed {
			return nil, false, encoderError("NULL must not be constructed")
		}
		return nil, false, nil

	case KindInteger, KindEnumerated:
		if v.Constructed {
			return nil, false, encoderError(v.Kind.String() + " must not be constructed")
		}
		if v.Int == nil {
			return nil, false, encoderError(v.Kind.String() + ": nil value")
		}
		return encodeIntegerContent(v.Int), false, nil

	case KindOID:
		if v.Constructed {
			return nil, false, encoderError("OBJECT IDENTIFIER must not be constructed")
		}
		b, err := encodeOIDContent(v.OIDValue)
		return b, false, err

	case KindRelativeOID:
		if v.Constructed {
			return nil, false, encoderError("RELATIVE OID must not be constructed")
		}
		b, err := encodeRelativeOIDContent(v.OIDValue)
		return b, false, err

	case KindOctetString:
		return c.encodeStringLike(TagOctetString, v.Constructed, v.Octets)

	case KindBitString:
		if v.Constructed {
			if c.isPrimitiveOnly(TagBitString) {
				return nil, false, encoderError("BIT STRING must not be constructed")
			}
			inner := encodeBitStringContent(v.Bits, c.opts.BitstringPadding)
			chunk := assembleTLV(ClassUniversal, TagBitString, false, inner)
			return chunk, true, nil
		}
		return encodeBitStringContent(v.Bits, c.opts.BitstringPadding), false, nil

	case KindSequence:
		return c.encodeChildren(v.Children)

	case KindSet:
		return c.encodeSet(v.Children)

	case KindString:
		d := stringDescriptors[v.StringKind]
		return c.encodeStringLike(d.tag, v.Constructed, []byte(v.Text))

	case KindTime:
		if v.Constructed {
			return nil, false, encoderError(v.Kind.String() + " must not be constructed")
		}
		if c.der {
			if v.TimeValue.TZFormat != TimezoneUTC {
				return nil, false, encoderError("DER times must use UTC (Z) timezone format")
			}
			if v.TimeValue.DTFormat != FormatSeconds && v.TimeValue.DTFormat != FormatFractions {
				return nil, false, encoderError("DER times must specify at least SECONDS precision")
			}
		}
		var s string
		if v.IsUTCTime {
			s = formatUTCTime(v.TimeValue)
		} else {
			s = formatGeneralizedTime(v.TimeValue)
		}
		return []byte(s), false, nil

	case KindIncomplete:
		return v.Raw, v.Constructed, nil
	}
	return nil, false, encoderError("encode: unsupported value kind")
}

func (c *Codec) encodeStringLike(universalTag int, reqConstructed bool, flat []byte) ([]byte, bool, error) {
	if reqConstructed {
		if c.isPrimitiveOnly(universalTag) {
			return nil, false, encoderError(TagNames[universalTag] + " must not be constructed")
		}
		chunk := assembleTLV(ClassUniversal, universalTag, false, flat)
		return chunk, true, nil
	}
	return flat, false, nil
}

func (c *Codec) encodeChildren(children []Value) ([]byte, bool, error) {
	var out []byte
	for i := range children {
		enc, err := c.Encode(children[i])
		if err != nil {
			return nil, false, err
		}
		out = append(out, enc...)
	}
	return out, true, nil
}
