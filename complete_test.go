package asn1codec

import "testing"

func TestCompleteResolvesIncompleteValue(t *testing.T) {
	c := NewBER()
	data := []byte{0x87, 0x02, 0xAB, 0xCD} // CONTEXT [7], primitive, unmapped
	v, err := c.Decode(data)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if v.Kind != KindIncomplete {
		t.Fatalf("%s: want KindIncomplete, got %v", t.Name(), v.Kind)
	}

	completed, err := c.Complete(v, TagOctetString)
	if err != nil {
		t.Fatalf("%s failed [complete]: %v", t.Name(), err)
	}
	if completed.Kind != KindOctetString {
		t.Errorf("%s: want KindOctetString, got %v", t.Name(), completed.Kind)
	}
	if !bytesEqual(completed.Octets, []byte{0xAB, 0xCD}) {
		t.Errorf("%s: want octets % X, got % X", t.Name(), []byte{0xAB, 0xCD}, completed.Octets)
	}
	// original tag identity must be preserved, not replaced by UNIVERSAL.
	if completed.TagClass != ClassContext || completed.TagNumber != 7 {
		t.Errorf("%s: want (CONTEXT,7), got (%v,%d)", t.Name(), completed.TagClass, completed.TagNumber)
	}
}

func TestCompleteRejectsNonIncompleteValue(t *testing.T) {
	c := NewBER()
	if _, err := c.Complete(NewBoolean(true), TagOctetString); !IsInvalidArgument(err) {
		t.Errorf("%s: want InvalidArgument, got %v", t.Name(), err)
	}
}
