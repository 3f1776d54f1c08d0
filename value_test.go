package asn1codec

import "testing"

func TestValueWithTagAndConstructed(t *testing.T) {
	v := NewBoolean(true).WithTag(ClassContext, 3).WithConstructed(false)
	class, tag, constructed := v.Tag()
	if class != ClassContext || tag != 3 || constructed {
		t.Errorf("%s: unexpected tag triple: %v %d %v", t.Name(), class, tag, constructed)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		KindBoolean:    "BOOLEAN",
		KindInteger:    "INTEGER",
		KindSequence:   "SEQUENCE",
		KindSet:        "SET",
		KindIncomplete: "INCOMPLETE",
		Kind(99):       "UNKNOWN",
	} {
		if got := k.String(); got != want {
			t.Errorf("%s: want %q, got %q", t.Name(), want, got)
		}
	}
}

func TestIsCharacterRestricted(t *testing.T) {
	str := NewStringValue(StringIA5, "hello")
	if !str.IsCharacterRestricted() {
		t.Errorf("%s: IA5String should be character-restricted", t.Name())
	}
	if NewOctetString(nil).IsCharacterRestricted() {
		t.Errorf("%s: OCTET STRING should not be character-restricted", t.Name())
	}
}
