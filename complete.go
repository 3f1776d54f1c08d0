package asn1codec

/*
complete.go implements type completion (component 4.4): resolving an
Incomplete value — raw payload bytes captured for a tag the decoder
could not map to a universal type — once a caller has learned, through
higher-level protocol logic, what that tag actually means.
*/

// Complete parses an Incomplete value's captured payload as though its
// tag had been universalTag all along, returning a Value that
// preserves the incomplete value's original tag class and tag number.
func (c *Codec) Complete(incomplete Value, universalTag int) (Value, error) {
	return c.CompleteWithMap(incomplete, universalTag, c.tags)
}

// CompleteWithMap is [Codec.Complete] but resolves any further
// non-UNIVERSAL tags nested within (e.g. SEQUENCE children) against
// overlay instead of the codec's own tag map.
func (c *Codec) CompleteWithMap(incomplete Value, universalTag int, overlay *TagMap) (Value, error) {
	if incomplete.Kind != KindIncomplete {
		return Value{}, invalidArgument("Complete: value is not Incomplete")
	}

	v, err := c.decodePayload(universalTag, incomplete.Constructed, incomplete.Raw, overlay, false)
	if err != nil {
		return Value{}, err
	}
	v.TagClass = incomplete.TagClass
	v.TagNumber = incomplete.TagNumber
	return v, nil
}
