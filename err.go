package isodur

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"
	"reflect"
	"sync"

	"github.com/govalues/decimal"
)

var mkerr func(string) error = errors.New

var refTypeOf func(any) reflect.Type = reflect.TypeOf

/*
format errors.
*/
var (
	errorWeekFormMix = formatErr{mkerr("week form cannot be combined with years, months or days")}
)

/*
arithmetic errors.
*/
var (
	errorFractionalCalendar = arithmeticErr{mkerr("years and months must be whole numbers to shift a calendar date")}
	errorCalendarRange      = arithmeticErr{mkerr("component magnitude exceeds the calendar range")}
)

/*
ParseErrorKind enumerates the grammar violations which a [ParseError]
may convey. See the [ParseErrorKind] constants for a full list.
*/
type ParseErrorKind int

const (
	ParseErrMissingPrefix   ParseErrorKind = iota // input does not open with an optional sign and 'P'
	ParseErrEmpty                                 // no components follow 'P' (or 'T'), or the input is blank
	ParseErrMalformedNumber                       // digit-run absent, unterminated or not representable
	ParseErrDesignatorOrder                       // designator out of its mandated relative order
	ParseErrDesignatorDup                         // designator appears more than once in its segment
	ParseErrFractionNotLast                       // a component follows one bearing a decimal fraction
	ParseErrTrailing                              // unrecognized content encountered
	ParseErrWeekMix                               // 'W' combined with 'Y', 'M' or 'D'
)

/*
String returns the string representation of the receiver instance.
*/
func (r ParseErrorKind) String() (s string) {
	switch r {
	case ParseErrMissingPrefix:
		s = `missing 'P' prefix`
	case ParseErrEmpty:
		s = `empty duration`
	case ParseErrMalformedNumber:
		s = `malformed number`
	case ParseErrDesignatorOrder:
		s = `out-of-order designator`
	case ParseErrDesignatorDup:
		s = `duplicate designator`
	case ParseErrFractionNotLast:
		s = `misplaced fraction`
	case ParseErrTrailing:
		s = `trailing content`
	case ParseErrWeekMix:
		s = `mixed week form`
	default:
		s = `unknown violation`
	}

	return
}

/*
ParseError conveys the first grammar violation encountered while
scanning an ISO 8601 duration. The parser never recovers: no partial
[Duration] accompanies an instance of this type.

Kind describes the violation in machine-checkable terms and Offset
locates the offending byte within the original input.
*/
type ParseError struct {
	Kind   ParseErrorKind
	Offset int

	e error
}

/*
Error returns the error string representation of the receiver instance.
*/
func (r ParseError) Error() string {
	return `PARSE ERROR: ` + r.e.Error() + ` (offset ` + itoa(r.Offset) + `)`
}

func parseErrorf(kind ParseErrorKind, offset int, m ...any) error {
	if len(m) == 0 {
		return ParseError{Kind: kind, Offset: offset, e: mkerr(kind.String())}
	}
	return ParseError{Kind: kind, Offset: offset, e: mkerrf(m...)}
}

/*
types which implement the error interface.
*/
type (
	arithmeticErr struct{ e error }
	constraintErr struct{ e error }
	formatErr     struct{ e error }
)

func arithmeticErrorf(m ...any) error     { return arithmeticErr{mkerrf(m...)} }
func constraintViolationf(m ...any) error { return constraintErr{mkerrf(m...)} }
func formatErrorf(m ...any) error         { return formatErr{mkerrf(m...)} }

func (r arithmeticErr) Error() string { return `ARITHMETIC ERROR: ` + r.e.Error() }
func (r constraintErr) Error() string { return `CONSTRAINT VIOLATION: ` + r.e.Error() }
func (r formatErr) Error() string     { return `FORMAT ERROR: ` + r.e.Error() }

func errorBadTypeForConstructor(what string, inputType any) (err error) {
	var inName string = "<nil>" // sensible default
	if inputType != nil {
		inName = refTypeOf(inputType).String()
	}
	return mkerrf("Invalid input type for ", what, " constructor: ", inName)
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case Duration:
			b.WriteString(v.String())
		case DateDuration:
			b.WriteString(v.String())
		case TimeDuration:
			b.WriteString(v.String())
		case decimal.Decimal:
			b.WriteString(v.String())
		case Designator:
			b.WriteByte(v.Byte())
		case ParseErrorKind:
			b.WriteString(v.String())
		case byte:
			b.WriteByte(v)
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case reflect.Type:
			b.WriteString(v.String())
		case int:
			b.WriteString(itoa(v))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
