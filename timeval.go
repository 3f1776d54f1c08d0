package asn1codec

/*
timeval.go implements GeneralizedTime and UTCTime lexing/formatting per
X.690 §8.25/§8.26, including the timezone and fractional-second
semantics the package data model tracks explicitly (DatetimeFormat,
TimezoneFormat) rather than collapsing them into a single time.Time,
since BER permits forms DER forbids and round-tripping needs to know
which form was actually seen.
*/

import (
	"time"
)

// DatetimeFormat indicates the finest calendar field present in a Time
// value.
type DatetimeFormat uint8

const (
	FormatHours DatetimeFormat = iota
	FormatMinutes
	FormatSeconds
	FormatFractions
)

// TimezoneFormat indicates how a Time value's zone was expressed on
// the wire.
type TimezoneFormat uint8

const (
	TimezoneUTC TimezoneFormat = iota
	TimezoneLocal
	TimezoneDiff
)

// Time carries the calendar fields, zone representation and format
// selectors of a GeneralizedTime or UTCTime value.
type Time struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Nanosecond           int
	// OffsetMinutes is the ±HHMM differential from UTC, in minutes,
	// meaningful only when TZFormat == TimezoneDiff.
	OffsetMinutes int
	DTFormat      DatetimeFormat
	TZFormat      TimezoneFormat
	// FourDigitYear is true for GeneralizedTime (YYYY) and false for
	// UTCTime (YY, interpreted per the 1950-2049 pivot below).
	FourDigitYear bool
}

// utcPivotYear converts a UTCTime two-digit year into a four-digit one
// using the conventional 1950-2049 window.
func utcPivotYear(yy int) int {
	if yy >= 50 {
		return 1900 + yy
	}
	return 2000 + yy
}

// Go converts t to a standard library [time.Time], for callers that need
// ordinary calendar arithmetic or comparison rather than the wire-format
// details Time otherwise preserves.
func (t Time) Go() time.Time {
	loc := time.UTC
	if t.TZFormat == TimezoneDiff {
		loc = time.FixedZone("", t.OffsetMinutes*60)
	} else if t.TZFormat == TimezoneLocal {
		loc = time.Local
	}
	return time.Date(t.Year, time.Month(t.Month), t.Day, t.Hour, t.Minute, t.Second, t.Nanosecond, loc)
}

func put2(b []byte, i int, v int) {
	b[i] = byte('0' + v/10)
	b[i+1] = byte('0' + v%10)
}

func appendTZ(buf []byte, t Time) []byte {
	switch t.TZFormat {
	case TimezoneUTC:
		return append(buf, 'Z')
	case TimezoneLocal:
		return buf
	case TimezoneDiff:
		sign := byte('+')
		off := t.OffsetMinutes
		if off < 0 {
			sign = '-'
			off = -off
		}
		hh, mm := off/60, off%60
		out := make([]byte, 5)
		out[0] = sign
		put2(out, 1, hh)
		put2(out, 3, mm)
		return append(buf, out...)
	}
	return buf
}

func formatGeneralizedTime(t Time) string {
	buf := make([]byte, 0, 24)
	year := make([]byte, 4)
	y := t.Year
	for i := 3; i >= 0; i-- {
		year[i] = byte('0' + y%10)
		y /= 10
	}
	buf = append(buf, year...)
	mo := make([]byte, 2)
	put2(mo, 0, t.Month)
	buf = append(buf, mo...)
	dd := make([]byte, 2)
	put2(dd, 0, t.Day)
	buf = append(buf, dd...)
	hh := make([]byte, 2)
	put2(hh, 0, t.Hour)
	buf = append(buf, hh...)

	if t.DTFormat >= FormatMinutes {
		mm := make([]byte, 2)
		put2(mm, 0, t.Minute)
		buf = append(buf, mm...)
	}
	if t.DTFormat >= FormatSeconds {
		ss := make([]byte, 2)
		put2(ss, 0, t.Second)
		buf = append(buf, ss...)
	}
	if t.DTFormat == FormatFractions && t.Nanosecond > 0 {
		frac := t.Nanosecond
		digits := make([]byte, 0, 9)
		for p := 100_000_000; p >= 1; p /= 10 {
			digits = append(digits, byte('0'+(frac/p)%10))
		}
		for len(digits) > 0 && digits[len(digits)-1] == '0' {
			digits = digits[:len(digits)-1]
		}
		if len(digits) > 0 {
			buf = append(buf, '.')
			buf = append(buf, digits...)
		}
	}

	buf = appendTZ(buf, t)
	return string(buf)
}

func formatUTCTime(t Time) string {
	buf := make([]byte, 0, 17)
	yy := t.Year % 100
	b2 := make([]byte, 2)
	put2(b2, 0, yy)
	buf = append(buf, b2...)
	put2(b2, 0, t.Month)
	buf = append(buf, b2...)
	put2(b2, 0, t.Day)
	buf = append(buf, b2...)
	put2(b2, 0, t.Hour)
	buf = append(buf, b2...)
	put2(b2, 0, t.Minute)
	buf = append(buf, b2...)
	if t.DTFormat >= FormatSeconds {
		put2(b2, 0, t.Second)
		buf = append(buf, b2...)
	}
	buf = appendTZ(buf, t)
	return string(buf)
}

func digits(s string, n int) (int, string, error) {
	if len(s) < n {
		return 0, "", encoderError("time value: truncated")
	}
	v := 0
	for i := 0; i < n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, "", encoderError("time value: non-digit where digit expected")
		}
		v = v*10 + int(c-'0')
	}
	return v, s[n:], nil
}

func parseTZ(s string) (TimezoneFormat, int, string, error) {
	if s == "" {
		return TimezoneLocal, 0, "", nil
	}
	switch s[0] {
	case 'Z':
		return TimezoneUTC, 0, s[1:], nil
	case '+', '-':
		if len(s) < 5 {
			return 0, 0, "", encoderError("time value: truncated zone differential")
		}
		hh, _, err := digits(s[1:3], 2)
		if err != nil {
			return 0, 0, "", err
		}
		mm, _, err := digits(s[3:5], 2)
		if err != nil {
			return 0, 0, "", err
		}
		off := hh*60 + mm
		if s[0] == '-' {
			off = -off
		}
		return TimezoneDiff, off, s[5:], nil
	default:
		return TimezoneLocal, 0, s, nil
	}
}

func parseGeneralizedTime(s string) (Time, error) {
	var t Time
	t.FourDigitYear = true

	var err error
	if t.Year, s, err = digits(s, 4); err != nil {
		return t, err
	}
	if t.Month, s, err = digits(s, 2); err != nil {
		return t, err
	}
	if t.Day, s, err = digits(s, 2); err != nil {
		return t, err
	}
	if t.Hour, s, err = digits(s, 2); err != nil {
		return t, err
	}
	t.DTFormat = FormatHours

	if err := checkMidnight(t.Hour, s); err != nil {
		return t, err
	}

	if len(s) >= 2 && isDigit(s[0]) && isDigit(s[1]) {
		if t.Minute, s, err = digits(s, 2); err != nil {
			return t, err
		}
		t.DTFormat = FormatMinutes
		if len(s) >= 2 && isDigit(s[0]) && isDigit(s[1]) {
			if t.Second, s, err = digits(s, 2); err != nil {
				return t, err
			}
			t.DTFormat = FormatSeconds
		}
	}

	if len(s) > 0 && (s[0] == '.' || s[0] == ',') {
		s = s[1:]
		start := s
		n := 0
		for n < len(s) && isDigit(s[n]) {
			n++
		}
		if n == 0 {
			return t, encoderError("GeneralizedTime: empty fractional-seconds component")
		}
		fracDigits := start[:n]
		s = s[n:]
		unit := t.DTFormat
		t.DTFormat = FormatFractions
		// Convert the fractional digits (of whatever unit the finest
		// field above represents) to nanoseconds, scaling to 9 digits.
		frac := 0
		for i := 0; i < 9; i++ {
			frac *= 10
			if i < len(fracDigits) {
				frac += int(fracDigits[i] - '0')
			}
		}
		ns := int64(frac)
		switch unit {
		case FormatHours:
			ns *= 3600
			t.Minute = int(ns / 60_000_000_000)
			ns %= 60_000_000_000
		case FormatMinutes:
			ns *= 60
		}
		if unit != FormatSeconds {
			t.Second = int(ns / 1_000_000_000)
			ns %= 1_000_000_000
		}
		t.Nanosecond = int(ns)
	}

	tz, off, rest, err := parseTZ(s)
	if err != nil {
		return t, err
	}
	if rest != "" {
		return t, encoderError("GeneralizedTime: trailing data after timezone")
	}
	t.TZFormat = tz
	t.OffsetMinutes = off
	return t, nil
}

func parseUTCTime(s string) (Time, error) {
	var t Time
	var err error
	var yy int
	if yy, s, err = digits(s, 2); err != nil {
		return t, err
	}
	t.Year = utcPivotYear(yy)
	if t.Month, s, err = digits(s, 2); err != nil {
		return t, err
	}
	if t.Day, s, err = digits(s, 2); err != nil {
		return t, err
	}
	if t.Hour, s, err = digits(s, 2); err != nil {
		return t, err
	}
	if err := checkMidnight(t.Hour, s); err != nil {
		return t, err
	}
	if t.Minute, s, err = digits(s, 2); err != nil {
		return t, err
	}
	t.DTFormat = FormatMinutes

	if len(s) >= 2 && isDigit(s[0]) && isDigit(s[1]) {
		if t.Second, s, err = digits(s, 2); err != nil {
			return t, err
		}
		t.DTFormat = FormatSeconds
	}

	if s == "" {
		return t, encoderError("UTCTime: missing timezone modifier")
	}
	tz, off, rest, err := parseTZ(s)
	if err != nil {
		return t, err
	}
	if tz == TimezoneLocal {
		return t, encoderError("UTCTime: missing timezone modifier")
	}
	if rest != "" {
		return t, encoderError("UTCTime: trailing data after timezone")
	}
	t.TZFormat = tz
	t.OffsetMinutes = off
	return t, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// checkMidnight enforces that hour 24 is only ever used to mean
// midnight, spelled "00", never as a literal hour value.
func checkMidnight(hour int, rest string) error {
	if hour == 24 {
		return encoderError("Midnight must only be specified by 00, but got 24.")
	}
	return nil
}
