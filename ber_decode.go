package asn1codec

/*
ber_decode.go implements the decode half of the BER codec (component
4.2.2) plus the DER decode-time validations layered on top of it
(component 4.3), since both share one recursive-descent TLV reader.
*/

// Decode reads exactly one TLV from the front of data and returns it as
// a Value, with any bytes left over in data attached as Trailing.
func (c *Codec) Decode(data []byte) (Value, error) {
	return c.DecodeWithMap(data, c.tags)
}

// DecodeWithMap is [Codec.Decode] but resolves non-UNIVERSAL tags
// against overlay instead of the codec's own tag map.
func (c *Codec) DecodeWithMap(data []byte, overlay *TagMap) (Value, error) {
	if len(data) == 0 {
		return Value{}, invalidArgument("decode: empty input")
	}
	if len(data) == 1 {
		return Value{}, partialPdu("need more data: a single byte cannot hold a complete TLV")
	}

	v, consumed, err := c.decodeTLV(data, overlay, true)
	if err != nil {
		return Value{}, err
	}
	v.Trailing = data[consumed:]
	return v, nil
}

// decodeTLV reads one TLV from the front of data. root is true only for
// the outermost call of a Decode, and governs whether a truncated input
// is reported as PartialPdu (root) or EncoderError (nested, spec
// §4.2.2).
func (c *Codec) decodeTLV(data []byte, tagMap *TagMap, root bool) (Value, int, error) {
	class, constructed, tag, idLen, err := parseIdentifier(data, root)
	if err != nil {
		return Value{}, 0, err
	}
	if idLen >= len(data) {
		return Value{}, 0, shortInputErr(root, "length byte not found")
	}

	length, lenLen, err := parseLength(data[idLen:], root)
	if err != nil {
		return Value{}, 0, err
	}
	if c.der && lenLen > 1 && length < 128 {
		return Value{}, 0, encoderError("DER must be encoded using the shortest possible length form")
	}

	valueStart := idLen + lenLen
	valueEnd := valueStart + length
	if valueEnd > len(data) {
		return Value{}, 0, shortInputErr(root, "declared length exceeds available data")
	}
	payload := data[valueStart:valueEnd]

	universalTag, known := tagMap.resolve(class, tag)
	if !known {
		return NewIncomplete(class, tag, constructed, append([]byte(nil), payload...)), valueEnd, nil
	}

	v, err := c.decodePayload(universalTag, constructed, payload, tagMap, root)
	if err != nil {
		return Value{}, 0, err
	}
	v.TagClass = class
	v.TagNumber = tag
	return v, valueEnd, nil
}

var zeroLenForbidden = map[int]bool{
	TagBoolean:         true,
	TagInteger:         true,
	TagEnumerated:      true,
	TagOID:             true,
	TagRelativeOID:     true,
	TagGeneralizedTime: true,
	TagUTCTime:         true,
}

func (c *Codec) decodePayload(universalTag int, constructed bool, payload []byte, tagMap *TagMap, root bool) (Value, error) {
	if len(payload) == 0 && zeroLenForbidden[universalTag] {
		return Value{}, encoderError(TagNames[universalTag] + ": zero-length value not permitted")
	}

	if corePrimitiveOnly[universalTag] && constructed {
		return Value{}, encoderError(TagNames[universalTag] + " must not be constructed")
	}

	switch universalTag {
	case TagBoolean:
		if len(payload) != 1 {
			return Value{}, encoderError("BOOLEAN: length must be 1")
		}
		return Value{Kind: KindBoolean, TagNumber: TagBoolean, Constructed: false, Bool: payload[0] != 0}, nil

	case TagNull:
		if len(payload) != 0 {
			return Value{}, encoderError("NULL: length must be 0")
		}
		return Value{Kind: KindNull, TagNumber: TagNull}, nil

	case TagInteger, TagEnumerated:
		kind := KindInteger
		if universalTag == TagEnumerated {
			kind = KindEnumerated
		}
		return Value{Kind: kind, TagNumber: universalTag, Int: decodeIntegerContent(payload)}, nil

	case TagOID:
		oid, err := decodeOIDContent(payload, root)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindOID, TagNumber: TagOID, OIDValue: oid}, nil

	case TagRelativeOID:
		oid, err := decodeRelativeOIDContent(payload, root)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindRelativeOID, TagNumber: TagRelativeOID, OIDValue: oid}, nil

	case TagOctetString:
		return c.decodeStringLike(KindOctetString, 0, TagOctetString, constructed, payload, root)

	case TagBitString:
		return c.decodeBitString(constructed, payload, root)

	case TagSequence, TagSet:
		kind := KindSequence
		if universalTag == TagSet {
			kind = KindSet
		}
		if !constructed {
			return Value{}, encoderError(TagNames[universalTag] + " must be constructed")
		}
		children, err := c.decodeChildren(payload, tagMap, root)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: kind, TagNumber: universalTag, Constructed: true, Children: children}, nil

	case TagUTCTime, TagGeneralizedTime:
		return c.decodeTime(universalTag, constructed, payload)
	}

	if sk, ok := tagToStringKind[universalTag]; ok {
		return c.decodeStringLike(KindString, sk, universalTag, constructed, payload, root)
	}

	return Value{}, encoderError("decode: unsupported universal tag ", itoa(universalTag))
}

func (c *Codec) decodeBitString(constructed bool, payload []byte, root bool) (Value, error) {
	if constructed {
		if c.isPrimitiveOnly(TagBitString) {
			return Value{}, encoderError("BIT STRING must not be constructed")
		}
		chunks, err := c.decodeChunks(payload, root)
		if err != nil {
			return Value{}, err
		}
		var combined BitString
		for i, chunk := range chunks {
			bs, err := decodeBitStringContent(chunk, c.der && i == len(chunks)-1)
			if err != nil {
				return Value{}, err
			}
			combined += bs
		}
		return Value{Kind: KindBitString, TagNumber: TagBitString, Constructed: true, Bits: combined}, nil
	}
	bs, err := decodeBitStringContent(payload, c.der)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindBitString, TagNumber: TagBitString, Bits: bs}, nil
}

func (c *Codec) decodeStringLike(kind Kind, sk StringKind, universalTag int, constructed bool, payload []byte, root bool) (Value, error) {
	if constructed {
		if c.isPrimitiveOnly(universalTag) {
			return Value{}, encoderError(TagNames[universalTag] + " must not be constructed")
		}
		chunks, err := c.decodeChunks(payload, root)
		if err != nil {
			return Value{}, err
		}
		var combined []byte
		for _, chunk := range chunks {
			combined = append(combined, chunk...)
		}
		if kind == KindOctetString {
			return Value{Kind: kind, TagNumber: universalTag, Constructed: true, Octets: combined}, nil
		}
		return Value{Kind: kind, TagNumber: universalTag, Constructed: true, StringKind: sk, Text: string(combined)}, nil
	}
	if kind == KindOctetString {
		return Value{Kind: kind, TagNumber: universalTag, Octets: append([]byte(nil), payload...)}, nil
	}
	return Value{Kind: kind, TagNumber: universalTag, StringKind: sk, Text: string(payload)}, nil
}

// decodeChunks parses payload as a flat sequence of primitive TLVs (one
// level of BER constructed-string decomposition) and returns each
// chunk's raw content octets.
func (c *Codec) decodeChunks(payload []byte, root bool) ([][]byte, error) {
	var chunks [][]byte
	offset := 0
	for offset < len(payload) {
		_, constructed, _, idLen, err := parseIdentifier(payload[offset:], false)
		if err != nil {
			return nil, err
		}
		if constructed {
			return nil, encoderError("nested constructed chunks are not supported")
		}
		length, lenLen, err := parseLength(payload[offset+idLen:], false)
		if err != nil {
			return nil, err
		}
		start := offset + idLen + lenLen
		end := start + length
		if end > len(payload) {
			return nil, encoderError("constructed string: chunk exceeds enclosing length")
		}
		chunks = append(chunks, payload[start:end])
		offset = end
	}
	return chunks, nil
}

func (c *Codec) decodeChildren(payload []byte, tagMap *TagMap, root bool) ([]Value, error) {
	var children []Value
	offset := 0
	for offset < len(payload) {
		child, consumed, err := c.decodeTLV(payload[offset:], tagMap, false)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		offset += consumed
	}
	return children, nil
}

func (c *Codec) decodeTime(universalTag int, constructed bool, payload []byte) (Value, error) {
	if constructed {
		return Value{}, encoderError(TagNames[universalTag] + " must not be constructed")
	}
	s := string(payload)
	var t Time
	var err error
	isUTC := universalTag == TagUTCTime
	if isUTC {
		t, err = parseUTCTime(s)
	} else {
		t, err = parseGeneralizedTime(s)
	}
	if err != nil {
		return Value{}, err
	}
	if c.der {
		if t.TZFormat != TimezoneUTC {
			return Value{}, encoderError(TagNames[universalTag] + ": DER requires UTC (Z) timezone")
		}
		if t.DTFormat != FormatSeconds && t.DTFormat != FormatFractions {
			return Value{}, encoderError(TagNames[universalTag] + ": DER requires SECONDS precision")
		}
	}
	return Value{Kind: KindTime, TagNumber: universalTag, TimeValue: t, IsUTCTime: isUTC}, nil
}
