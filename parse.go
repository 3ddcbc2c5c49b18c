package isodur

/*
parse.go implements the hand-written scanner which recognizes the
ISO 8601 duration grammar, together with the Designator enumeration
upon which its ordering rules rest.
*/

import "github.com/govalues/decimal"

/*
Designator enumerates the unit designators of the ISO 8601 duration
grammar in ascending unit significance. The scanner compares ordinals
to enforce the decreasing-significance order a source string must
observe; the 'M' byte resolves to [Month] or [Minute] according to
the segment in which it appears.
*/
type Designator int8

const (
	_ Designator = iota // zero is not a valid designator
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

/*
Byte returns the grammar byte for the receiver instance, e.g. 'Y' for
[Year]. [Month] and [Minute] share 'M'.
*/
func (r Designator) Byte() byte {
	switch r {
	case Year:
		return 'Y'
	case Month, Minute:
		return 'M'
	case Week:
		return 'W'
	case Day:
		return 'D'
	case Hour:
		return 'H'
	case Second:
		return 'S'
	}

	return '?'
}

/*
String returns the string representation of the receiver instance.
*/
func (r Designator) String() string { return string(r.Byte()) }

/*
asDesignator resolves one input byte to a [Designator]. hms indicates
whether the scanner has crossed the 'T' segment marker, which decides
the fate of 'M'.
*/
func asDesignator(c byte, hms bool) (Designator, bool) {
	switch c {
	case 'Y':
		return Year, true
	case 'M':
		if hms {
			return Minute, true
		}
		return Month, true
	case 'W':
		return Week, true
	case 'D':
		return Day, true
	case 'H':
		return Hour, true
	case 'S':
		return Second, true
	}

	return 0, false
}

/*
Parse returns an instance of [Duration] alongside an error following
an attempt to parse in as an ISO 8601 duration, e.g.:

	d, err := isodur.Parse(`P3Y6M4DT12H30M5S`)

Failure is always conveyed as a [ParseError] bearing the violation
[ParseErrorKind] and the byte offset at which scanning stopped. The
first violation aborts the parse; no partial value is returned.
*/
func Parse[S ISOString | string](in S) (Duration, error) {
	return parseDuration(string(in))
}

/*
MustParse wraps [Parse], panicking upon error. Its use is intended for
cases such as the initialization of well-formed constant durations,
and is unfit for the handling of untrusted input.
*/
func MustParse[S ISOString | string](in S) Duration {
	d, err := parseDuration(string(in))
	if err != nil {
		panic(err)
	}

	return d
}

/*
parseDuration scans in and returns the [Duration] it denotes. The
scanner is character driven: tracking the relative order of previously
seen designators, and whether a fraction has already occurred, places
the grammar beyond regular expressions, so none are used.
*/
func parseDuration(in string) (d Duration, err error) {
	debugEnter(EventParse, in)
	defer func() { debugExit(EventParse, err) }()

	if len(in) == 0 {
		err = parseErrorf(ParseErrEmpty, 0)
		return
	}

	var i int
	var neg bool

	if isSign(in[i]) {
		neg = in[i] == '-'
		i++
	}

	if i >= len(in) || in[i] != 'P' {
		err = parseErrorf(ParseErrMissingPrefix, i)
		return
	}
	i++

	var (
		hms     bool       // crossed 'T'
		prev    Designator // most recent designator
		sawYMD  bool
		sawWeek bool
		sawFrac bool
		n       int // components in total
		nT      int // components since 'T'
	)

	// component scans one [sign] digit-run designator sequence
	// beginning at i, stores its value, and advances i past the
	// designator.
	component := func() error {
		start := i
		if sawFrac {
			return parseErrorf(ParseErrFractionNotLast, start)
		}

		var cneg bool
		if isSign(in[i]) {
			cneg = in[i] == '-'
			i++
		}

		numStart := i
		for i < len(in) && isDigit(in[i]) {
			i++
		}
		intLen := i - numStart

		sep := -1
		fracLen := 0
		if i < len(in) && isSeparator(in[i]) {
			sep = i
			i++
			fs := i
			for i < len(in) && isDigit(in[i]) {
				i++
			}
			fracLen = i - fs
		}

		if intLen == 0 {
			if sep >= 0 {
				return parseErrorf(ParseErrMalformedNumber, sep,
					"separator with no leading digits")
			}
			return parseErrorf(ParseErrMalformedNumber, i,
				"digits expected")
		} else if sep >= 0 && fracLen == 0 {
			return parseErrorf(ParseErrMalformedNumber, sep,
				"separator with no trailing digits")
		}

		if i >= len(in) {
			return parseErrorf(ParseErrMalformedNumber, i,
				"digit-run with no designator")
		}

		desig, ok := asDesignator(in[i], hms)
		if !ok {
			if isSeparator(in[i]) {
				return parseErrorf(ParseErrMalformedNumber, i,
					"second separator in digit-run")
			}
			return parseErrorf(ParseErrTrailing, i,
				"unexpected character ", in[i])
		}

		switch {
		case hms && desig >= Day:
			return parseErrorf(ParseErrDesignatorOrder, i,
				"date designator ", desig, " within the time segment")
		case !hms && (desig == Hour || desig == Second):
			return parseErrorf(ParseErrDesignatorOrder, i,
				"time designator ", desig, " without a time segment")
		case desig == Week && sawYMD, desig != Week && desig >= Day && sawWeek:
			return parseErrorf(ParseErrWeekMix, i)
		case desig == prev:
			return parseErrorf(ParseErrDesignatorDup, i,
				"duplicate designator ", desig)
		case prev != 0 && desig > prev:
			return parseErrorf(ParseErrDesignatorOrder, i,
				"out-of-order designator ", desig)
		}

		// decimal.Parse rounds away digits beyond its capacity
		// rather than failing, so the run is screened here first.
		// Leading zeros carry no significance.
		sig := intLen + fracLen
		for k := numStart; k < i && (in[k] == '0' || isSeparator(in[k])); k++ {
			if in[k] == '0' {
				sig--
			}
		}
		if sig > decimal.MaxPrec || fracLen > decimal.MaxScale {
			return parseErrorf(ParseErrMalformedNumber, numStart,
				"digit-run exceeds the decimal capacity")
		}

		run := in[numStart:i]
		if sep >= 0 {
			run = replace(run, `,`, `.`, 1)
		}

		value, derr := decimal.Parse(run)
		if derr != nil {
			return parseErrorf(ParseErrMalformedNumber, numStart, derr)
		}
		if cneg {
			value = value.Neg()
		}

		switch desig {
		case Year:
			d.Date.Years = value
			sawYMD = true
		case Month:
			d.Date.Months = value
			sawYMD = true
		case Day:
			d.Date.Days = value
			sawYMD = true
		case Week:
			d.Date.Weeks = value
			sawWeek = true
		case Hour:
			d.Time.Hours = value
		case Minute:
			d.Time.Minutes = value
		case Second:
			d.Time.Seconds = value
		}

		if fracLen > 0 {
			sawFrac = true
		}
		prev = desig
		n++
		if hms {
			nT++
		}
		i++ // past the designator

		return nil
	}

	for i < len(in) && err == nil {
		switch c := in[i]; {
		case c == 'T':
			if hms {
				err = parseErrorf(ParseErrDesignatorOrder, i,
					"second 'T' segment marker")
			} else {
				hms = true
				nT = 0
				i++
			}
		case isSign(c) || isDigit(c) || isSeparator(c):
			err = component()
		default:
			if _, ok := asDesignator(c, hms); ok {
				err = parseErrorf(ParseErrMalformedNumber, i,
					"designator ", c, " with no value")
			} else {
				err = parseErrorf(ParseErrTrailing, i,
					"unexpected character ", c)
			}
		}
	}

	if err == nil {
		if n == 0 || (hms && nT == 0) {
			err = parseErrorf(ParseErrEmpty, i)
		} else if neg {
			d = d.Negate()
		}
	}

	if err != nil {
		d = Duration{}
	}

	return
}
