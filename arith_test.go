package isodur

import (
	"fmt"
	"testing"
	"time"

	"github.com/govalues/decimal"
)

func ExampleDuration_AddTo() {
	ref := time.Date(1987, time.February, 11, 0, 0, 0, 0, time.UTC)

	then, err := MustParse(`P33Y6M11D`).AddTo(ref)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(then.Format(`2006-01-02`))
	// Output: 2020-08-22
}

func ExampleDuration_SubFrom() {
	ref := time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC)

	then, err := MustParse(`P33Y1M4D`).SubFrom(ref)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(then.Format(`2006-01-02`))
	// Output: 1987-02-11
}

func TestDuration_AddTo(t *testing.T) {
	day := func(y int, mo time.Month, d int) time.Time {
		return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	}

	for idx, obj := range []struct {
		dur  string
		ref  time.Time
		want string
	}{
		{`PT33H`, day(2000, time.January, 12), `2000-01-13T09:00:00Z`},
		{`P4W`, day(2000, time.February, 1), `2000-02-29T00:00:00Z`},
		{`P1Y`, day(2000, time.February, 29), `2001-02-28T00:00:00Z`},
		{`P1Y1M`, day(2000, time.February, 29), `2001-03-29T00:00:00Z`},
		{`P4Y`, day(2096, time.February, 29), `2100-02-28T00:00:00Z`},
		{`P1M`, day(2000, time.January, 31), `2000-02-29T00:00:00Z`},
		{`P1M`, day(2001, time.January, 31), `2001-02-28T00:00:00Z`},
		{`-P1D`, day(2000, time.March, 1), `2000-02-29T00:00:00Z`},
		{`P0.5D`, day(2000, time.January, 1), `2000-01-01T12:00:00Z`},
		{`P2WT-3H-3S`, day(2000, time.January, 1), `2000-01-14T20:59:57Z`},
		{`P1Y3M5DT7H10M3.3S`, day(2001, time.January, 1), `2002-04-06T07:10:03.3Z`},
		{`P0D`, day(2024, time.June, 15), `2024-06-15T00:00:00Z`},
	} {
		got, err := MustParse(obj.dur).AddTo(obj.ref)
		if err != nil {
			t.Fatalf("%s[%d]: failed: %v", t.Name(), idx, err)
		}
		if s := got.Format(time.RFC3339Nano); s != obj.want {
			t.Errorf("%s[%d]: %s + %s = %s, want %s",
				t.Name(), idx, obj.ref.Format(`2006-01-02`), obj.dur, s, obj.want)
		}
	}
}

/*
Shifting by months and days does not commute: the month shift clamps to
the end of the target month, so the order of application matters.
*/
func TestDuration_AddTo_orderSensitive(t *testing.T) {
	ref := time.Date(2000, time.March, 30, 0, 0, 0, 0, time.UTC)

	viaDay, err := MustParse(`P1D`).AddTo(ref)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if viaDay, err = MustParse(`P1M`).AddTo(viaDay); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	viaMonth, err := MustParse(`P1M`).AddTo(ref)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if viaMonth, err = MustParse(`P1D`).AddTo(viaMonth); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if got := viaDay.Format(`2006-01-02`); got != `2000-04-30` {
		t.Errorf("%s: day-then-month = %s, want 2000-04-30", t.Name(), got)
	}
	if got := viaMonth.Format(`2006-01-02`); got != `2000-05-01` {
		t.Errorf("%s: month-then-day = %s, want 2000-05-01", t.Name(), got)
	}
}

func TestDuration_SubFrom(t *testing.T) {
	ref := time.Date(2024, time.May, 31, 10, 30, 0, 0, time.UTC)
	d := MustParse(`P1M2DT3H`)

	got, err := d.SubFrom(ref)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	want, err := d.Negate().AddTo(ref)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if !got.Equal(want) {
		t.Errorf("%s: SubFrom disagrees with negated AddTo: %s vs %s",
			t.Name(), got, want)
	}
	if s := got.Format(time.RFC3339); s != `2024-04-28T07:30:00Z` {
		t.Errorf("%s: got %s, want 2024-04-28T07:30:00Z", t.Name(), s)
	}
}

func TestDuration_AddTo_violations(t *testing.T) {
	ref := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

	for _, obj := range []struct {
		name string
		dur  string
	}{
		{`fractionalYears`, `P0.5Y`},
		{`fractionalMonths`, `P1Y2.5M`},
		{`monthRange`, `P3000000000Y`},
		{`dayRange`, `P99999999999999999D`},
		{`weekRange`, `P9999999999999999W`},
		{`hourRange`, `PT9999999999999999H`},
		{`secondRange`, `PT9999999999999999999S`},
	} {
		t.Run(obj.name, func(t *testing.T) {
			if _, err := MustParse(obj.dur).AddTo(ref); err == nil {
				t.Errorf("%s: %s shifted without error", t.Name(), obj.dur)
			} else if !hasPfx(err.Error(), `ARITHMETIC ERROR: `) {
				t.Errorf("%s: unexpected error class: %v", t.Name(), err)
			}
		})
	}
}

func TestDuration_CompareAt(t *testing.T) {
	day := func(y int, mo time.Month, d int) time.Time {
		return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	}

	for idx, obj := range []struct {
		a, b string
		ref  time.Time
		want int
	}{
		// a month is shorter than thirty days in February...
		{`P1M`, `P30D`, day(2000, time.February, 1), -1},
		// ...and longer in January
		{`P1M`, `P30D`, day(2000, time.January, 1), 1},
		{`P1D`, `PT24H`, day(2000, time.June, 1), 0},
		{`P1W`, `P7D`, day(2000, time.June, 1), 0},
		{`PT1H`, `PT30M`, day(2000, time.June, 1), 1},
		{`-P1D`, `P1D`, day(2000, time.June, 1), -1},
	} {
		got, err := MustParse(obj.a).CompareAt(obj.ref, MustParse(obj.b))
		if err != nil {
			t.Fatalf("%s[%d]: failed: %v", t.Name(), idx, err)
		}
		if got != obj.want {
			t.Errorf("%s[%d]: %s vs %s at %s = %d, want %d", t.Name(), idx,
				obj.a, obj.b, obj.ref.Format(`2006-01-02`), got, obj.want)
		}
	}

	ref := day(2000, time.June, 1)
	if _, err := MustParse(`P0.5Y`).CompareAt(ref, MustParse(`P1D`)); err == nil {
		t.Errorf("%s: fractional receiver compared without error", t.Name())
	}
	if _, err := MustParse(`P1D`).CompareAt(ref, MustParse(`P0.5Y`)); err == nil {
		t.Errorf("%s: fractional operand compared without error", t.Name())
	}
}

func TestDuration_fieldArithmetic(t *testing.T) {
	sum, err := MustParse(`P1Y6M`).Add(MustParse(`P2Y7M`))
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	// thirteen months stay thirteen months
	if got := sum.String(); got != `P3Y13M` {
		t.Errorf("%s: got %s, want P3Y13M", t.Name(), got)
	}

	diff, err := sum.Subtract(MustParse(`P2Y7M`))
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if diff.Ne(MustParse(`P1Y6M`)) {
		t.Errorf("%s: got %s, want P1Y6M", t.Name(), diff)
	}

	doubled, err := MustParse(`P1Y6M`).Mul(decimal.MustNew(2, 0))
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if got := doubled.String(); got != `P2Y12M` {
		t.Errorf("%s: got %s, want P2Y12M", t.Name(), got)
	}

	halved, err := MustParse(`P1Y`).Mul(decimal.MustNew(5, 1))
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if got := halved.String(); got != `P0.5Y` {
		t.Errorf("%s: got %s, want P0.5Y", t.Name(), got)
	}
}

func TestDuration_fieldArithmetic_overflow(t *testing.T) {
	big := MustParse(`PT9999999999999999999S`)

	if _, err := big.Mul(decimal.MustNew(1000000, 0)); err == nil {
		t.Errorf("%s: product overflowed without error", t.Name())
	} else if !hasPfx(err.Error(), `ARITHMETIC ERROR: `) {
		t.Errorf("%s: unexpected error class: %v", t.Name(), err)
	}

	if _, err := big.Add(big); err == nil {
		t.Errorf("%s: sum overflowed without error", t.Name())
	}
}
