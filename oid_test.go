package asn1codec

import "testing"

func TestParseOIDAndString(t *testing.T) {
	o, err := ParseOID("1.3.6.1.4.1.311.21.20")
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}
	if got := o.String(); got != "1.3.6.1.4.1.311.21.20" {
		t.Errorf("%s: want %q, got %q", t.Name(), "1.3.6.1.4.1.311.21.20", got)
	}
}

func TestNewOIDValidation(t *testing.T) {
	if _, err := NewOID(1); err == nil {
		t.Errorf("%s: expected error for single-arc OID", t.Name())
	}
	if _, err := NewOID(3, 1); err == nil {
		t.Errorf("%s: expected error for first arc > 2", t.Name())
	}
	if _, err := NewOID(1, 40); err == nil {
		t.Errorf("%s: expected error for second arc > 39 when first arc is 1", t.Name())
	}
	if _, err := NewOID(2, 999); err != nil {
		t.Errorf("%s: second arc should be unrestricted when first arc is 2: %v", t.Name(), err)
	}
}

func TestOIDEncodeDecodeRoundTrip(t *testing.T) {
	// spec §8: 06 09 2B 06 01 04 01 82 37 15 14 <-> 1.3.6.1.4.1.311.21.20
	want := []byte{0x2B, 0x06, 0x01, 0x04, 0x01, 0x82, 0x37, 0x15, 0x14}

	o, err := NewOID(1, 3, 6, 1, 4, 1, 311, 21, 20)
	if err != nil {
		t.Fatalf("%s failed [construct]: %v", t.Name(), err)
	}
	got, err := encodeOIDContent(o)
	if err != nil {
		t.Fatalf("%s failed [encode]: %v", t.Name(), err)
	}
	if !bytesEqual(got, want) {
		t.Errorf("%s: want % X, got % X", t.Name(), want, got)
	}

	dec, err := decodeOIDContent(want, true)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if !dec.Equal(o) {
		t.Errorf("%s: want %s, got %s", t.Name(), o, dec)
	}
}

func TestRelativeOIDRoundTrip(t *testing.T) {
	o := NewRelativeOID(8571, 3, 2)
	enc, err := encodeRelativeOIDContent(o)
	if err != nil {
		t.Fatalf("%s failed [encode]: %v", t.Name(), err)
	}
	dec, err := decodeRelativeOIDContent(enc, true)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if !dec.Equal(o) {
		t.Errorf("%s: want %s, got %s", t.Name(), o, dec)
	}
}

func TestOIDTruncatedArcIsRootSensitive(t *testing.T) {
	// a lone continuation byte with no terminator
	truncated := []byte{0x2B, 0x81}
	if _, err := decodeOIDContent(truncated, true); !IsPartialPdu(err) {
		t.Errorf("%s: root decode of truncated OID should be PartialPdu, got %v", t.Name(), err)
	}
	if _, err := decodeOIDContent(truncated, false); !IsEncoderError(err) {
		t.Errorf("%s: nested decode of truncated OID should be EncoderError, got %v", t.Name(), err)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
