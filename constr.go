package isodur

/*
constr.go contains constraint and constraint group components which
serve to implement optional value restrictions upon Duration instances
at construction time.
*/

import (
	"time"

	"github.com/govalues/decimal"
	"golang.org/x/exp/constraints"
)

/*
Constraint implements a generic closure function signature meant to
enforce the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice
instances are added (and, thus, evaluated) in the order in which they
are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint]
instances against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	debugEnter(EventConstraint, newLItem(len(r), "constraints"))
	defer func() { debugExit(EventConstraint, err) }()

	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to
type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a
value of any ordered type is between the specified minimum and maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = constraintViolationf("value is out of range")
		}
		return
	}
}

/*
PropertyConstraint returns a [Constraint] that applies a user-defined
check function. That function should return nil if the property is
satisfied or an error otherwise.
*/
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}

/*
Union returns an instance of [Constraint] which checks if at least one
(1) of the provided constraints is satisfied. Essentially, this is an
"OR"ed operation.
*/
func Union[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		var passed bool
		for i := 0; i < len(constraints) && !passed; i++ {
			passed = constraints[i](x) == nil
		}

		if !passed {
			err = constraintViolationf("union failed all ",
				len(constraints), " constraints")
		}
		return
	}
}

/*
Intersection returns an instance of [Constraint] which checks if all
of the specified constraints are satisfied. Essentially, this is an
"AND"ed operation.
*/
func Intersection[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for i := 0; i < len(constraints) && err == nil; i++ {
			err = constraints[i](x)
		}
		return
	}
}

/*
DurationRangeConstraint returns an instance of [Constraint] which
checks that a [Duration], anchored at ref, displaces ref no earlier
than min does and no later than max does.

The anchor is mandatory: bare durations admit no total order, so a
range is only meaningful against a stated instant.
*/
func DurationRangeConstraint(ref time.Time, min, max Duration) Constraint[Duration] {
	return func(val Duration) (err error) {
		var lo, hi int
		if lo, err = val.CompareAt(ref, min); err != nil {
			return
		}
		if hi, err = val.CompareAt(ref, max); err != nil {
			return
		}
		if lo < 0 || hi > 0 {
			err = constraintViolationf("duration ", val,
				" is not in the allowed range [", min, ", ", max,
				"] at ", ref.Format(time.RFC3339))
		}
		return
	}
}

/*
DurationComponentConstraint returns an instance of [Constraint] which
applies check to the single component of a [Duration] selected by
desig, e.g. requiring that the seconds component always be whole.
*/
func DurationComponentConstraint(desig Designator, check Constraint[decimal.Decimal]) Constraint[Duration] {
	return func(val Duration) error {
		return check(componentOf(val, desig))
	}
}

/*
WholeCalendarConstraint returns an instance of [Constraint] which
rejects fractional years or months, the two components which
[Duration.AddTo] cannot apply to a calendar. A [Duration] constructed
under this constraint is always fit for timestamp application.
*/
func WholeCalendarConstraint() Constraint[Duration] {
	return func(val Duration) (err error) {
		if !isWhole(val.Date.Years) || !isWhole(val.Date.Months) {
			err = constraintViolationf("fractional years or months in ",
				val, " cannot shift a calendar date")
		}
		return
	}
}

/*
componentOf returns the field of d selected by desig, or a zero
decimal for an unknown designator.
*/
func componentOf(d Duration, desig Designator) decimal.Decimal {
	switch desig {
	case Year:
		return d.Date.Years
	case Month:
		return d.Date.Months
	case Week:
		return d.Date.Weeks
	case Day:
		return d.Date.Days
	case Hour:
		return d.Time.Hours
	case Minute:
		return d.Time.Minutes
	case Second:
		return d.Time.Seconds
	}

	return decimal.Zero
}
