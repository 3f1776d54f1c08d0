package asn1codec

import "testing"

func TestDefaultDEROptionsCoversCharacterStrings(t *testing.T) {
	o := DefaultDEROptions()
	for _, tag := range []int{TagIA5String, TagPrintableString, TagBMPString, TagBitString, TagOctetString} {
		if !o.PrimitiveOnly[tag] {
			t.Errorf("%s: expected tag %d to be primitive-only under DER defaults", t.Name(), tag)
		}
	}
}

func TestDefaultBEROptionsPermitsConstruction(t *testing.T) {
	o := DefaultBEROptions()
	if o.PrimitiveOnly[TagIA5String] {
		t.Errorf("%s: BER defaults should not forbid constructed IA5String", t.Name())
	}
}

func TestCorePrimitiveOnlyAlwaysEnforced(t *testing.T) {
	c := NewBERWithOptions(DefaultBEROptions())
	if !c.isPrimitiveOnly(TagBoolean) {
		t.Errorf("%s: BOOLEAN must always be primitive-only, even under permissive BER options", t.Name())
	}
}

func TestWithBitstringPaddingAndPrimitiveOnly(t *testing.T) {
	o := DefaultBEROptions().WithBitstringPadding('1').WithPrimitiveOnly(map[int]bool{TagBitString: true})
	if o.BitstringPadding != '1' {
		t.Errorf("%s: want padding '1', got %q", t.Name(), o.BitstringPadding)
	}
	if !o.PrimitiveOnly[TagBitString] {
		t.Errorf("%s: expected BIT STRING to be primitive-only", t.Name())
	}
}
