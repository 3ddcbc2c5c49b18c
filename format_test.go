package isodur

import (
	"fmt"
	"testing"
)

func ExampleDuration_ISOString() {
	var d Duration
	s, err := d.ISOString()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)
	// Output: P0D
}

func ExampleDuration_String_weekMix() {
	// directly constructed values may mix weeks with other date
	// fields; String renders what ISOString refuses
	fmt.Println(New(1, 0, 2, 3, 0, 0, 0))
	// Output: P1Y3W2D
}

func TestFormat_strict(t *testing.T) {
	for idx, pair := range []struct {
		d    Duration
		want ISOString
	}{
		{New(3, 6, 4, 0, 12, 30, 5), `P3Y6M4DT12H30M5S`},
		{New(0, 0, 0, 4, 0, 0, 0), `P4W`},
		{New(0, 0, 0, 3, 2, 0, 59), `P3WT2H59S`},
		{New(0, 0, 0, 0, 0, 0, 0), `P0D`},
		{New(0, 0, 1, 0, 0, 0, 0), `P1D`},
		{New(0, 0, 0, 0, 0, 0, 7), `PT7S`},
		{New(-1, -2, 0, 0, 0, 0, -3), `-P1Y2MT3S`},
		{New(-1, 2, 0, 0, 0, 0, 0), `P-1Y2M`},
	} {
		s, err := pair.d.ISOString()
		if err != nil {
			t.Fatalf("%s[%d]: failed: %v", t.Name(), idx, err)
		}
		if s != pair.want {
			t.Errorf("%s[%d]: got %s, want %s", t.Name(), idx, s, pair.want)
		}
	}
}

func TestFormat_weekMixRefused(t *testing.T) {
	d := New(1, 0, 2, 3, 0, 0, 0)

	if _, err := d.ISOString(); err == nil {
		t.Fatalf("%s: week mix serialized without error", t.Name())
	} else if want := `FORMAT ERROR: week form cannot be combined with years, months or days`; err.Error() != want {
		t.Errorf("%s: got %q, want %q", t.Name(), err.Error(), want)
	}

	// the total form always renders
	if got := d.String(); got != `P1Y3W2D` {
		t.Errorf("%s: String() = %s, want P1Y3W2D", t.Name(), got)
	}

	// ...but its extended order is not parseable
	if _, err := Parse(d.String()); err == nil {
		t.Errorf("%s: extended order accepted by the parser", t.Name())
	}
}

func TestFormat_valueNotBytes(t *testing.T) {
	for idx, pair := range [][2]string{
		{`P1Y0M`, `P1Y`},
		{`P01D`, `P1D`},
		{`PT1.500S`, `PT1.5S`},
		{`PT1.0S`, `PT1S`},
		{`P0Y`, `P0D`},
		{`P-1Y`, `-P1Y`},
	} {
		if got := MustParse(pair[0]).String(); got != pair[1] {
			t.Errorf("%s[%d]: %s formats as %s, want %s",
				t.Name(), idx, pair[0], got, pair[1])
		}
	}
}

func TestFormat_halves(t *testing.T) {
	if got := MustParse(`P1Y2M`).Date.String(); got != `P1Y2M` {
		t.Errorf("%s: date half = %s, want P1Y2M", t.Name(), got)
	}
	if got := MustParse(`PT1H30M`).Time.String(); got != `PT1H30M` {
		t.Errorf("%s: time half = %s, want PT1H30M", t.Name(), got)
	}
	if got := (DateDuration{}).String(); got != `P0D` {
		t.Errorf("%s: zero date half = %s, want P0D", t.Name(), got)
	}
	if got := (TimeDuration{}).String(); got != `P0D` {
		t.Errorf("%s: zero time half = %s, want P0D", t.Name(), got)
	}
}

func TestMarshalText(t *testing.T) {
	b, err := MustParse(`P1DT12H`).MarshalText()
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if string(b) != `P1DT12H` {
		t.Errorf("%s: got %s, want P1DT12H", t.Name(), b)
	}

	if _, err = New(1, 0, 0, 1, 0, 0, 0).MarshalText(); err == nil {
		t.Errorf("%s: week mix marshaled without error", t.Name())
	}
}

func TestUnmarshalText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte(`P2WT-3H-3S`)); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if got := d.String(); got != `P2WT-3H-3S` {
		t.Errorf("%s: got %s, want P2WT-3H-3S", t.Name(), got)
	}

	// a failed unmarshal leaves the receiver untouched
	before := d
	if err := d.UnmarshalText([]byte(`P1y`)); err == nil {
		t.Fatalf("%s: junk unmarshaled without error", t.Name())
	}
	if d.Ne(before) {
		t.Errorf("%s: receiver mutated by failed unmarshal", t.Name())
	}
}

func TestFlagValue(t *testing.T) {
	var d Duration
	if err := d.Set(`P90D`); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	got, ok := d.Get().(Duration)
	if !ok {
		t.Fatalf("%s: Get returned %T", t.Name(), d.Get())
	}
	if got.Ne(MustParse(`P90D`)) {
		t.Errorf("%s: Get returned %s, want P90D", t.Name(), got)
	}

	if d.Type() != `duration` {
		t.Errorf("%s: Type() = %s, want duration", t.Name(), d.Type())
	}

	if err := d.Set(`ninety days`); err == nil {
		t.Errorf("%s: junk accepted by Set", t.Name())
	}
}

func TestISOString_codecov(t *testing.T) {
	if CanonicalZero.String() != `P0D` {
		t.Errorf("%s: CanonicalZero = %s", t.Name(), CanonicalZero)
	}

	s, _ := MustParse(`P1D`).ISOString()
	if s.String() != string(s) {
		t.Errorf("%s: ISOString.String() disagrees with conversion", t.Name())
	}
}
