package asn1codec

/*
tags.go contains the UNIVERSAL class tag-number assignments this codec
understands, per the authoritative table in the package contract (ITU-T
X.690 clause 8, LDAP/X.509-relevant subset).
*/

const (
	TagBoolean         = 0x01
	TagInteger         = 0x02
	TagBitString       = 0x03
	TagOctetString     = 0x04
	TagNull            = 0x05
	TagOID             = 0x06
	TagEnumerated      = 0x0A
	TagUTF8String      = 0x0C
	TagRelativeOID     = 0x0D
	TagSequence        = 0x10
	TagSet             = 0x11
	TagNumericString   = 0x12
	TagPrintableString = 0x13
	TagTeletexString   = 0x14
	TagVideotexString  = 0x15
	TagIA5String       = 0x16
	TagUTCTime         = 0x17
	TagGeneralizedTime = 0x18
	TagGraphicString   = 0x19
	TagVisibleString   = 0x1A
	TagGeneralString   = 0x1B
	TagUniversalString = 0x1C
	TagCharacterString = 0x1D
	TagBMPString       = 0x1E
)

// TagNames facilitates access to a human-readable UNIVERSAL tag name.
var TagNames = map[int]string{
	TagBoolean:         "BOOLEAN",
	TagInteger:         "INTEGER",
	TagBitString:       "BIT STRING",
	TagOctetString:     "OCTET STRING",
	TagNull:            "NULL",
	TagOID:             "OBJECT IDENTIFIER",
	TagEnumerated:      "ENUMERATED",
	TagUTF8String:      "UTF8 STRING",
	TagRelativeOID:     "RELATIVE OID",
	TagSequence:        "SEQUENCE",
	TagSet:             "SET",
	TagNumericString:   "NUMERIC STRING",
	TagPrintableString: "PRINTABLE STRING",
	TagTeletexString:   "TELETEX STRING",
	TagVideotexString:  "VIDEOTEX STRING",
	TagIA5String:       "IA5 STRING",
	TagUTCTime:         "UTC TIME",
	TagGeneralizedTime: "GENERALIZED TIME",
	TagGraphicString:   "GRAPHIC STRING",
	TagVisibleString:   "VISIBLE STRING",
	TagGeneralString:   "GENERAL STRING",
	TagUniversalString: "UNIVERSAL STRING",
	TagCharacterString: "CHARACTER STRING",
	TagBMPString:       "BMP STRING",
}
