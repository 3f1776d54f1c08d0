package asn1codec

import "testing"

func TestErrorKindString(t *testing.T) {
	for k, want := range map[ErrorKind]string{
		InvalidArgument: "InvalidArgument",
		PartialPdu:      "PartialPdu",
		EncoderError:    "EncoderError",
		ErrorKind(99):   "UnknownError",
	} {
		if got := k.String(); got != want {
			t.Errorf("%s: want %q, got %q", t.Name(), want, got)
		}
	}
}

func TestErrorPredicates(t *testing.T) {
	ia := invalidArgument("bad input")
	pp := partialPdu("need more bytes")
	ee := encoderError("malformed")

	if !IsInvalidArgument(ia) || IsPartialPdu(ia) || IsEncoderError(ia) {
		t.Errorf("%s: invalidArgument misclassified", t.Name())
	}
	if !IsPartialPdu(pp) || IsInvalidArgument(pp) || IsEncoderError(pp) {
		t.Errorf("%s: partialPdu misclassified", t.Name())
	}
	if !IsEncoderError(ee) || IsInvalidArgument(ee) || IsPartialPdu(ee) {
		t.Errorf("%s: encoderError misclassified", t.Name())
	}
}

func TestErrorCacheReusesIdenticalMessages(t *testing.T) {
	a := encoderError("same message")
	b := encoderError("same message")
	if a != b {
		t.Errorf("%s: expected cached error to be reused, got distinct instances", t.Name())
	}
}

func TestShortInputErrRootVsNested(t *testing.T) {
	if !IsPartialPdu(shortInputErr(true, "truncated")) {
		t.Errorf("%s: root truncation should be PartialPdu", t.Name())
	}
	if !IsEncoderError(shortInputErr(false, "truncated")) {
		t.Errorf("%s: nested truncation should be EncoderError", t.Name())
	}
}
