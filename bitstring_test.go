package asn1codec

import "testing"

func TestBitStringBytesPacking(t *testing.T) {
	bs := BitString("011011100101110111")
	packed, unused := bs.Bytes('0')
	if unused != 6 {
		t.Fatalf("%s: want 6 unused bits, got %d", t.Name(), unused)
	}
	want := []byte{0x6E, 0x5D, 0xC0}
	if !bytesEqual(packed, want) {
		t.Errorf("%s: want % X, got % X", t.Name(), want, packed)
	}
}

func TestBitStringContentRoundTrip(t *testing.T) {
	// spec §8: 03 04 06 6E 5D C0 <-> 18-bit string
	payload := []byte{0x06, 0x6E, 0x5D, 0xC0}
	bs, err := decodeBitStringContent(payload, false)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	want := BitString("011011100101110111")
	if bs != want {
		t.Errorf("%s: want %s, got %s", t.Name(), want, bs)
	}

	enc := encodeBitStringContent(bs, '0')
	if !bytesEqual(enc, payload) {
		t.Errorf("%s: want % X, got % X", t.Name(), payload, enc)
	}
}

func TestBitStringDERRejectsNonZeroPadding(t *testing.T) {
	// unused=3, last byte's low 3 bits are non-zero -> DER must reject
	payload := []byte{0x03, 0xFF}
	if _, err := decodeBitStringContent(payload, true); !IsEncoderError(err) {
		t.Errorf("%s: want EncoderError, got %v", t.Name(), err)
	}
	// BER permits the same bytes
	if _, err := decodeBitStringContent(payload, false); err != nil {
		t.Errorf("%s: BER should accept nonzero padding bits: %v", t.Name(), err)
	}
}

func TestBitStringDERAcceptsZeroPadding(t *testing.T) {
	payload := []byte{0x03, 0xF8}
	if _, err := decodeBitStringContent(payload, true); err != nil {
		t.Errorf("%s: want no error, got %v", t.Name(), err)
	}
}

func TestBitStringEmptyContent(t *testing.T) {
	if _, err := decodeBitStringContent([]byte{}, false); err == nil {
		t.Errorf("%s: expected error for zero-length content", t.Name())
	}
	bs, err := decodeBitStringContent([]byte{0x00}, false)
	if err != nil || bs != "" {
		t.Errorf("%s: want empty bit string, got %q, err %v", t.Name(), bs, err)
	}
}

func TestBitStringUnusedOutOfRange(t *testing.T) {
	if _, err := decodeBitStringContent([]byte{0x08, 0xFF}, false); err == nil {
		t.Errorf("%s: expected error for unused bit count > 7", t.Name())
	}
}
