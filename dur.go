package isodur

/*
dur.go implements the ISO 8601 duration data model: the DateDuration,
TimeDuration and Duration value types together with their constructors,
predicates, negation, equality and hashing.
*/

import (
	"hash/fnv"
	"time"

	"github.com/govalues/decimal"
)

/*
DateDuration is the calendar half of a [Duration]: years, months, days
and weeks, each an exact decimal defaulting to zero and unconstrained
in sign.

Weeks are never folded into days, nor months into years: the standard's
units are not fixed-length, so any such folding would silently change
meaning.
*/
type DateDuration struct {
	Years  decimal.Decimal
	Months decimal.Decimal
	Days   decimal.Decimal
	Weeks  decimal.Decimal
}

/*
TimeDuration is the clock half of a [Duration]: hours, minutes and
seconds, each an exact decimal defaulting to zero and unconstrained
in sign.
*/
type TimeDuration struct {
	Hours   decimal.Decimal
	Minutes decimal.Decimal
	Seconds decimal.Decimal
}

/*
Duration implements an ISO 8601 duration (e.g.: "P3Y6M4DT12H30M5S") as
a pair of [DateDuration] and [TimeDuration] values.

Instances behave as values: every operation returns a new instance and
no method mutates its receiver, making instances safe for concurrent
use without synchronization.

Note that the Go comparison operator observes field scale ("PT1S" ==
"PT1.0S" is false); use [Duration.Eq] for numeric equality.
*/
type Duration struct {
	Date DateDuration
	Time TimeDuration
}

/*
New returns an instance of [Duration] assembled from seven whole
component values. No normalization is applied: 120 seconds do not
become 2 minutes.
*/
func New(years, months, days, weeks, hours, minutes, seconds int) Duration {
	return Duration{
		Date: DateDuration{
			Years:  decimal.MustNew(int64(years), 0),
			Months: decimal.MustNew(int64(months), 0),
			Days:   decimal.MustNew(int64(days), 0),
			Weeks:  decimal.MustNew(int64(weeks), 0),
		},
		Time: TimeDuration{
			Hours:   decimal.MustNew(int64(hours), 0),
			Minutes: decimal.MustNew(int64(minutes), 0),
			Seconds: decimal.MustNew(int64(seconds), 0),
		},
	}
}

/*
NewDecimal returns an instance of [Duration] assembled from seven exact
decimal component values, stored verbatim.

Unlike the parser, direct construction places no restriction upon which
fields may carry fractions, nor upon combining weeks with other date
fields; [Duration.ISOString] enforces the latter when a strict ISO 8601
serialization is requested.
*/
func NewDecimal(years, months, days, weeks, hours, minutes, seconds decimal.Decimal) Duration {
	return Duration{
		Date: DateDuration{
			Years:  years,
			Months: months,
			Days:   days,
			Weeks:  weeks,
		},
		Time: TimeDuration{
			Hours:   hours,
			Minutes: minutes,
			Seconds: seconds,
		},
	}
}

/*
NewDuration returns an instance of [Duration] alongside an error
following an attempt to marshal x as an ISO 8601 duration.

String input must begin with a "P" (Period), optionally preceded by a
sign. The date portion (Y, M, D or the week form W) and, if present,
the time portion (following a "T") are scanned separately.

For instance:

	P7Y2M10DT05H28M6S

... to describe a duration period of seven (7) years, two (2) months,
ten (10) days, five (5) hours, twenty eight (28) minutes and six (6)
seconds.

In addition to string, []byte and [ISOString], this function accepts a
[time.Duration] instance (absorbed as an exact count of seconds), a
[DateDuration], a [TimeDuration] or a [Duration].
*/
func NewDuration(x any, constraints ...Constraint[Duration]) (Duration, error) {
	var _r Duration
	var err error

	switch tv := x.(type) {
	case string:
		_r, err = parseDuration(tv)
	case []byte:
		_r, err = parseDuration(string(tv))
	case ISOString:
		_r, err = parseDuration(string(tv))
	case time.Duration:
		_r = durationOf(tv)
	case DateDuration:
		_r = Duration{Date: tv}
	case TimeDuration:
		_r = Duration{Time: tv}
	case Duration:
		_r = tv
	default:
		err = errorBadTypeForConstructor("DURATION", x)
	}

	var r Duration
	if err == nil {
		if len(constraints) > 0 {
			var group ConstraintGroup[Duration] = constraints
			err = group.Constrain(_r)
		}
		if err == nil {
			r = _r
		}
	}

	return r, err
}

/*
durationOf absorbs a time.Duration as an exact count of seconds.
*/
func durationOf(td time.Duration) Duration {
	return Duration{Time: TimeDuration{Seconds: decimal.MustNew(int64(td), 9).Trim(0)}}
}

/*
Between returns the span between two instants as a seconds-only
[Duration], exact to the nanosecond. The result is negative when t2
precedes t1.

The span retains no knowledge of the calendar: "P1M" can never result
from this function, only seconds.
*/
func Between(t1, t2 time.Time) Duration {
	return durationOf(t2.Sub(t1))
}

/*
IsZero returns a Boolean value indicative of the receiver being zero
in all four fields, regardless of scale.
*/
func (r DateDuration) IsZero() bool {
	return r.Years.Coef() == 0 &&
		r.Months.Coef() == 0 &&
		r.Days.Coef() == 0 &&
		r.Weeks.Coef() == 0
}

/*
Negate returns a new instance of [DateDuration] with every field
arithmetically negated. Negation is applied per field: mixed-sign
values remain mixed-sign.
*/
func (r DateDuration) Negate() DateDuration {
	return DateDuration{
		Years:  r.Years.Neg(),
		Months: r.Months.Neg(),
		Days:   r.Days.Neg(),
		Weeks:  r.Weeks.Neg(),
	}
}

/*
Eq returns a Boolean value indicative of the receiver being numerically
equal to other in all four fields. Scale is insignificant: 1 and 1.0
are equal.
*/
func (r DateDuration) Eq(other DateDuration) bool {
	return r.Years.Cmp(other.Years) == 0 &&
		r.Months.Cmp(other.Months) == 0 &&
		r.Days.Cmp(other.Days) == 0 &&
		r.Weeks.Cmp(other.Weeks) == 0
}

/*
Ne returns the Boolean negation of [DateDuration.Eq].
*/
func (r DateDuration) Ne(other DateDuration) bool { return !r.Eq(other) }

/*
Hash returns a 64-bit FNV-1a digest of the receiver computed over the
canonical (trailing-zero-trimmed) form of all four fields. Instances
which satisfy [DateDuration.Eq] produce identical digests.
*/
func (r DateDuration) Hash() uint64 {
	return hashFields(r.Years, r.Months, r.Days, r.Weeks)
}

/*
IsZero returns a Boolean value indicative of the receiver being zero
in all three fields, regardless of scale.
*/
func (r TimeDuration) IsZero() bool {
	return r.Hours.Coef() == 0 &&
		r.Minutes.Coef() == 0 &&
		r.Seconds.Coef() == 0
}

/*
Negate returns a new instance of [TimeDuration] with every field
arithmetically negated.
*/
func (r TimeDuration) Negate() TimeDuration {
	return TimeDuration{
		Hours:   r.Hours.Neg(),
		Minutes: r.Minutes.Neg(),
		Seconds: r.Seconds.Neg(),
	}
}

/*
Eq returns a Boolean value indicative of the receiver being numerically
equal to other in all three fields. Scale is insignificant: 1 and 1.0
are equal.
*/
func (r TimeDuration) Eq(other TimeDuration) bool {
	return r.Hours.Cmp(other.Hours) == 0 &&
		r.Minutes.Cmp(other.Minutes) == 0 &&
		r.Seconds.Cmp(other.Seconds) == 0
}

/*
Ne returns the Boolean negation of [TimeDuration.Eq].
*/
func (r TimeDuration) Ne(other TimeDuration) bool { return !r.Eq(other) }

/*
Hash returns a 64-bit FNV-1a digest of the receiver computed over the
canonical (trailing-zero-trimmed) form of all three fields. Instances
which satisfy [TimeDuration.Eq] produce identical digests.
*/
func (r TimeDuration) Hash() uint64 {
	return hashFields(r.Hours, r.Minutes, r.Seconds)
}

/*
IsZero returns a Boolean value indicative of the receiver being zero
in all seven fields, regardless of scale. The zero duration serializes
as "P0D".
*/
func (r Duration) IsZero() bool {
	return r.Date.IsZero() && r.Time.IsZero()
}

/*
Negate returns a new instance of [Duration] with every one of the seven
fields arithmetically negated. Negation is involutive: negating twice
restores the original value.
*/
func (r Duration) Negate() Duration {
	return Duration{
		Date: r.Date.Negate(),
		Time: r.Time.Negate(),
	}
}

/*
Eq returns a Boolean value indicative of the receiver being numerically
equal to other in all seven fields.

No unit is ever folded into another for the comparison: "P1Y" is not
equal to "P12M", and "P1D" is not equal to "PT24H", even though the
latter pair displace any fixed timestamp identically. Use
[Duration.CompareAt] for anchored comparison.
*/
func (r Duration) Eq(other Duration) bool {
	return r.Date.Eq(other.Date) && r.Time.Eq(other.Time)
}

/*
Ne returns the Boolean negation of [Duration.Eq].
*/
func (r Duration) Ne(other Duration) bool { return !r.Eq(other) }

/*
Hash returns a 64-bit FNV-1a digest of the receiver computed over the
canonical (trailing-zero-trimmed) form of all seven fields. Durations
which satisfy [Duration.Eq] produce identical digests.
*/
func (r Duration) Hash() uint64 {
	return hashFields(
		r.Date.Years,
		r.Date.Months,
		r.Date.Days,
		r.Date.Weeks,
		r.Time.Hours,
		r.Time.Minutes,
		r.Time.Seconds,
	)
}

func hashFields(fields ...decimal.Decimal) uint64 {
	h := fnv.New64a()

	for _, field := range fields {
		h.Write([]byte(field.Trim(0).String()))
		h.Write([]byte{'|'})
	}

	return h.Sum64()
}
