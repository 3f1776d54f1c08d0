package asn1codec

import "testing"

func TestStringDescriptorTagsRoundTripThroughMap(t *testing.T) {
	for kind, d := range stringDescriptors {
		got, ok := tagToStringKind[d.tag]
		if !ok || got != kind {
			t.Errorf("%s: tag %d did not map back to its StringKind", t.Name(), d.tag)
		}
	}
}

func TestEncodeDecodeIA5String(t *testing.T) {
	c := NewBER()
	v := NewStringValue(StringIA5, "hello")
	enc, err := c.Encode(v)
	if err != nil {
		t.Fatalf("%s failed [encode]: %v", t.Name(), err)
	}
	want := append([]byte{byte(TagIA5String), 0x05}, []byte("hello")...)
	if !bytesEqual(enc, want) {
		t.Errorf("%s: want % X, got % X", t.Name(), want, enc)
	}
	dec, err := c.Decode(enc)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if dec.Text != "hello" || dec.StringKind != StringIA5 {
		t.Errorf("%s: unexpected decode result: %+v", t.Name(), dec)
	}
}

func TestConstructedStringUnderBER(t *testing.T) {
	c := NewBER()
	v := NewStringValue(StringIA5, "hello").WithConstructed(true)
	enc, err := c.Encode(v)
	if err != nil {
		t.Fatalf("%s failed [encode]: %v", t.Name(), err)
	}
	dec, err := c.Decode(enc)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if dec.Text != "hello" {
		t.Errorf("%s: want \"hello\", got %q", t.Name(), dec.Text)
	}
}

func TestConstructedStringRejectedUnderDER(t *testing.T) {
	c := NewDER()
	v := NewStringValue(StringIA5, "hello").WithConstructed(true)
	if _, err := c.Encode(v); !IsEncoderError(err) {
		t.Errorf("%s: want EncoderError, got %v", t.Name(), err)
	}
}
