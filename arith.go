package isodur

/*
arith.go implements the arithmetic and comparison engine: application
of a Duration to a calendar instant, anchored comparison, and exact
field-wise combination and scaling of Duration instances.
*/

import (
	"time"

	"github.com/govalues/decimal"
)

const (
	nanosPerSecond = int64(1000000000)
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute
	nanosPerDay    = 24 * nanosPerHour
	nanosPerWeek   = 7 * nanosPerDay
)

/*
maxCalendarShift bounds the month and day displacements [Duration.AddTo]
accepts; anything |larger| exceeds any meaningful calendar range and is
refused rather than applied.
*/
const maxCalendarShift = int64(1) << 31

/*
AddTo returns the instant at ref displaced by the receiver instance
alongside an error.

Years and months are applied jointly as a single total-months calendar
shift: the target month is computed first and the day-of-month is then
clamped to that month's length, so 2000-02-29 plus "P1Y" lands upon
2001-02-28, and 2000-02-29 plus "P1Y1M" upon 2001-03-29. The
normalization performed by [time.Time.AddDate], which would roll the
former into early March, is deliberately not used for this step.

Whole weeks and days then shift the calendar day. Fractional week or
day residue and the entire time segment are applied last, as one exact
nanosecond offset; sub-nanosecond residue truncates toward zero, ref's
resolution being the bound upon the result.

Because months vary in length, application is not commutative across
separate calls: 2000-03-30 plus "P1D" plus "P1M" is 2000-04-30, while
"P1M" then "P1D" is 2000-05-01.

Fractional years or months carry no calendar meaning and produce an
error, as do component magnitudes beyond the representable calendar
range.
*/
func (r Duration) AddTo(ref time.Time) (t time.Time, err error) {
	debugEnter(EventArith, r, ref)
	defer func() { debugExit(EventArith, err) }()

	if !isWhole(r.Date.Years) || !isWhole(r.Date.Months) {
		err = errorFractionalCalendar
		return
	}

	years, oky := wholeInt64(r.Date.Years)
	months, okm := wholeInt64(r.Date.Months)
	if !oky || !okm {
		err = errorCalendarRange
		return
	}

	t = ref

	if years != 0 || months != 0 {
		if outsideCalendar(years) || outsideCalendar(months) {
			err = errorCalendarRange
			return
		}
		t = shiftMonths(t, years*12+months)
	}

	weeks, weekNanos, okw := splitWholeFrac(r.Date.Weeks, nanosPerWeek)
	days, dayNanos, okd := splitWholeFrac(r.Date.Days, nanosPerDay)
	if !okw || !okd || outsideCalendar(weeks) || outsideCalendar(days) {
		err = errorCalendarRange
		return
	}

	if shift := weeks*7 + days; shift != 0 {
		if outsideCalendar(shift) {
			err = errorCalendarRange
			return
		}
		t = t.AddDate(0, 0, int(shift))
	}

	hourNanos, okh := fieldNanos(r.Time.Hours, nanosPerHour)
	minuteNanos, okmin := fieldNanos(r.Time.Minutes, nanosPerMinute)
	secondNanos, oks := fieldNanos(r.Time.Seconds, nanosPerSecond)
	if !okh || !okmin || !oks {
		err = errorCalendarRange
		return
	}

	for _, n := range [5]int64{weekNanos, dayNanos, hourNanos, minuteNanos, secondNanos} {
		if n != 0 {
			t = t.Add(time.Duration(n))
		}
	}

	return
}

/*
SubFrom returns the instant at ref displaced by the negation of the
receiver instance alongside an error: subtraction is defined as
addition of the negation, and inherits the clamping behavior of
[Duration.AddTo]. The reverse operation, subtracting an instant from a
duration, carries no meaning and is not expressible through this
package.
*/
func (r Duration) SubFrom(ref time.Time) (time.Time, error) {
	return r.Negate().AddTo(ref)
}

/*
CompareAt returns an integer comparing the receiver against other,
both anchored at ref: -1 when the receiver displaces ref to an
earlier instant than other does, 0 when the instants coincide, +1
otherwise.

Bare durations admit no total order ("P30D" versus "P1M" depends upon
which month the anchor falls in), which is why no anchorless
comparison is offered by this package.
*/
func (r Duration) CompareAt(ref time.Time, other Duration) (int, error) {
	a, err := r.AddTo(ref)
	if err != nil {
		return 0, err
	}

	b, err := other.AddTo(ref)
	if err != nil {
		return 0, err
	}

	return a.Compare(b), nil
}

/*
Add returns the field-wise sum of the receiver and other alongside an
error. Summation is exact per field within the 19 digit decimal
coefficient and no unit is ever folded into another; failure indicates
coefficient overflow.
*/
func (r Duration) Add(other Duration) (Duration, error) {
	return combineFields(r, other, decimal.Decimal.Add)
}

/*
Subtract returns the field-wise difference of the receiver and other
alongside an error, equivalent to adding the negation of other.
*/
func (r Duration) Subtract(other Duration) (Duration, error) {
	return combineFields(r, other, decimal.Decimal.Sub)
}

/*
Mul returns the receiver with every field scaled by factor alongside
an error, e.g. scaling "P1Y6M" by 2 yields "P2Y12M" (never "P3Y": no
unit folding occurs).
*/
func (r Duration) Mul(factor decimal.Decimal) (Duration, error) {
	return mapFields(r, func(f decimal.Decimal) (decimal.Decimal, error) {
		return f.Mul(factor)
	})
}

func combineFields(a, b Duration, op func(decimal.Decimal, decimal.Decimal) (decimal.Decimal, error)) (Duration, error) {
	var d Duration

	fields := [7]struct {
		out  *decimal.Decimal
		x, y decimal.Decimal
	}{
		{&d.Date.Years, a.Date.Years, b.Date.Years},
		{&d.Date.Months, a.Date.Months, b.Date.Months},
		{&d.Date.Days, a.Date.Days, b.Date.Days},
		{&d.Date.Weeks, a.Date.Weeks, b.Date.Weeks},
		{&d.Time.Hours, a.Time.Hours, b.Time.Hours},
		{&d.Time.Minutes, a.Time.Minutes, b.Time.Minutes},
		{&d.Time.Seconds, a.Time.Seconds, b.Time.Seconds},
	}

	for idx := range fields {
		v, err := op(fields[idx].x, fields[idx].y)
		if err != nil {
			return Duration{}, arithmeticErrorf(err)
		}
		*fields[idx].out = v
	}

	return d, nil
}

func mapFields(a Duration, op func(decimal.Decimal) (decimal.Decimal, error)) (Duration, error) {
	return combineFields(a, Duration{}, func(x, _ decimal.Decimal) (decimal.Decimal, error) {
		return op(x)
	})
}

func outsideCalendar(n int64) bool {
	return n > maxCalendarShift || n < -maxCalendarShift
}

/*
shiftMonths displaces ref by a whole number of months, clamping the
day-of-month to the length of the target month. Clock fields and the
location ride along untouched.
*/
func shiftMonths(ref time.Time, months int64) time.Time {
	tot := int64(ref.Year())*12 + int64(ref.Month()) - 1 + months

	y := tot / 12
	m := tot % 12
	if m < 0 {
		m += 12
		y--
	}

	month := time.Month(m + 1)
	day := ref.Day()
	if dim := daysIn(int(y), month); day > dim {
		day = dim
	}

	return time.Date(int(y), month, day,
		ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(),
		ref.Location())
}

/*
daysIn returns the number of days in the given month.
*/
func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
