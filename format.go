package isodur

/*
format.go implements serialization of Duration instances: the strict
ISO 8601 form, the total fmt.Stringer form, text marshaling and the
flag.Value surface.
*/

import "github.com/govalues/decimal"

/*
ISOString is a [Duration] rendered in strict ISO 8601 form. A
successful [Duration.ISOString] call is the canonical producer of
values of this type, which exists so that signatures may distinguish
validated serializations from arbitrary strings.
*/
type ISOString string

/*
String returns the string representation of the receiver instance.
*/
func (r ISOString) String() string { return string(r) }

/*
CanonicalZero is the serialization of the zero duration, mandated by
the grammar's requirement that at least one component be present.
*/
const CanonicalZero ISOString = `P0D`

/*
ISOString returns the strict ISO 8601 serialization of the receiver
instance alongside an error.

Each non-zero field is emitted as <value><designator> with trailing
zeros trimmed; zero fields are omitted entirely, so serialization
preserves value rather than source bytes ("P1Y0M" parses and then
formats as "P1Y"). The all-zero receiver yields [CanonicalZero]. When
every non-zero field is negative, a single sign is hoisted before the
'P' ("-P1Y2M" rather than "P-1Y-2M"); mixed signs remain upon their
components.

The sole failure case is a receiver combining non-zero Weeks with
non-zero Years, Months or Days: the base standard defines no such
form, and a structured error is preferable to a silently unparsable
string. [Duration.String] renders such values regardless.
*/
func (r Duration) ISOString() (ISOString, error) {
	s, err := formatDuration(r, false)
	return ISOString(s), err
}

/*
String returns the string representation of the receiver instance.

Unlike [Duration.ISOString] this method is total: a week component
combined with years, months or days is rendered in the extended field
order Y, M, W, D so that diagnostics always produce something
readable. The parser will not accept that extended form back.
*/
func (r Duration) String() string {
	s, _ := formatDuration(r, true)
	return s
}

/*
String returns the string representation of the receiver as the date
half of a [Duration].
*/
func (r DateDuration) String() string { return Duration{Date: r}.String() }

/*
String returns the string representation of the receiver as the time
half of a [Duration].
*/
func (r TimeDuration) String() string { return Duration{Time: r}.String() }

/*
formatDuration serializes r. extended admits the week-mix superset in
the Y, M, W, D field order; otherwise that mix is refused. Emission
order is identical either way, as strict form never holds both W and
Y/M/D.
*/
func formatDuration(r Duration, extended bool) (s string, err error) {
	debugEnter(EventFormat, r)
	defer func() { debugExit(EventFormat, err) }()

	if r.IsZero() {
		s = string(CanonicalZero)
		return
	}

	v := r
	hoist := hoistedSign(r)
	if hoist {
		v = r.Negate()
	}

	wk := v.Date.Weeks.Coef() != 0
	ymd := v.Date.Years.Coef() != 0 ||
		v.Date.Months.Coef() != 0 ||
		v.Date.Days.Coef() != 0

	if wk && ymd && !extended {
		err = errorWeekFormMix
		return
	}

	b := newStrBuilder()
	if hoist {
		b.WriteByte('-')
	}
	b.WriteByte('P')

	field := func(f decimal.Decimal, desig byte) {
		if f.Coef() != 0 {
			b.WriteString(f.Trim(0).String())
			b.WriteByte(desig)
		}
	}

	field(v.Date.Years, 'Y')
	field(v.Date.Months, 'M')
	field(v.Date.Weeks, 'W')
	field(v.Date.Days, 'D')

	if !v.Time.IsZero() {
		b.WriteByte('T')
		field(v.Time.Hours, 'H')
		field(v.Time.Minutes, 'M')
		field(v.Time.Seconds, 'S')
	}

	s = b.String()
	return
}

/*
hoistedSign returns a Boolean value indicative of every non-zero field
of d being negative, the condition under which serialization hoists a
single leading sign.
*/
func hoistedSign(d Duration) bool {
	var nz, neg int

	for _, f := range [7]decimal.Decimal{
		d.Date.Years,
		d.Date.Months,
		d.Date.Days,
		d.Date.Weeks,
		d.Time.Hours,
		d.Time.Minutes,
		d.Time.Seconds,
	} {
		if f.Coef() != 0 {
			nz++
			if f.Sign() < 0 {
				neg++
			}
		}
	}

	return nz > 0 && nz == neg
}

/*
MarshalText returns the strict ISO 8601 serialization of the receiver
instance alongside an error, implementing [encoding.TextMarshaler] and
thereby JSON and similar codecs.
*/
func (r Duration) MarshalText() ([]byte, error) {
	s, err := r.ISOString()
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}

/*
UnmarshalText parses data into the receiver instance, implementing
[encoding.TextUnmarshaler]. The receiver is unchanged upon error.
*/
func (r *Duration) UnmarshalText(data []byte) error {
	d, err := parseDuration(string(data))
	if err != nil {
		return err
	}

	*r = d
	return nil
}

/*
Set assigns the parsed value to the receiver instance, implementing
the standard library [flag.Value] interface, e.g.:

	var d isodur.Duration
	flag.Var(&d, `retention`, `ISO 8601 duration`)
*/
func (r *Duration) Set(value string) error {
	return r.UnmarshalText([]byte(value))
}

/*
Get returns the receiver value, implementing [flag.Getter].
*/
func (r Duration) Get() any { return r }

/*
Type returns the literal string "duration", satisfying the Type method
expected by pflag-style flag sets without importing one.
*/
func (r Duration) Type() string { return `duration` }
