/*
Package asn1codec implements an ASN.1 value model and a pair of binary
codecs — BER (Basic Encoding Rules) and DER (Distinguished Encoding
Rules) as defined by ITU-T X.690.

The package is intended as a building block for higher-level protocol
stacks (LDAP, X.509, Kerberos and the like) that need to produce and
consume tag-length-value byte streams interoperably with other
implementations. It does not itself know about any such protocol; it
only knows how to turn [Value] instances into bytes and back.

CER, indefinite-length encodings, REAL, EXTERNAL/EMBEDDED PDV and ASN.1
module compilation are not implemented. BER constructed strings are
accepted only as one level of primitive chunks.
*/
package asn1codec
