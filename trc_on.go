//go:build isodur_debug

package isodur

/*
trc_on.go implements the debug tracer compiled in under the
"isodur_debug" build tag, together with the loglevel bitfield
which filters its output.
*/

import (
	"io"
	"os"
	"reflect"
	"runtime"
	"sync"
	"time"

	"github.com/govalues/decimal"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke or disable use of the [DefaultTracer]
[Tracer] qualifier.

Use sparingly in high-volume/performance-sensitive scenarios.
*/
const EnvDebugVar = "ISODUR_DEBUG"

const coreTracerMask = EventEnter | EventInfo | EventExit

/*
loglevels is a sixteen bit field of enabled [EventType] values,
addressable by constant or by name.
*/
type loglevels struct {
	v *uint16
	m map[int]string
}

func newLoglevels(names map[int]string) loglevels {
	return loglevels{v: new(uint16), m: names}
}

func (r loglevels) enabled() (names []string) {
	switch *r.v {
	case 0:
		names = []string{"none"}
	case ^uint16(0):
		names = []string{"all"}
	default:
		for i := 0; i < 16; i++ {
			if d := 1 << i; (*r.v)&uint16(d) != 0 {
				names = append(names, r.m[d])
			}
		}
	}

	return
}

func (r loglevels) Shift(x ...any) {
	for _, xi := range x {
		if n, ok := r.verifyShiftValue(xi); ok {
			if n == r.Max() {
				*r.v = ^uint16(0)
			} else if n != 0 {
				*r.v |= uint16(n)
			}
		}
	}
}

func (r loglevels) Unshift(x ...any) {
	for _, xi := range x {
		if n, ok := r.verifyShiftValue(xi); ok {
			if n == r.Max() {
				*r.v = 0
			} else if n != 0 {
				*r.v &^= uint16(n)
			}
		}
	}
}

func (r loglevels) Positive(x any) (posi bool) {
	if n, ok := r.verifyShiftValue(x); ok {
		posi = (*r.v)&uint16(n) != 0
	}

	return
}

func (r loglevels) Max() int { return int(^uint16(0)) }

func (r loglevels) verifyShiftValue(x any) (int, bool) {
	if str, isStr := x.(string); isStr {
		x = r.strIndex(str)
	}

	var n int
	switch tv := x.(type) {
	case int:
		n = tv
	case EventType:
		n = int(tv)
	case uint16:
		n = int(tv)
	default:
		return 0, false
	}

	if 0 <= n && n <= r.Max() {
		return n, true
	}

	return 0, false
}

func (r loglevels) strIndex(name string) int {
	for k, v := range r.m {
		if streqf(v, name) {
			return k
		}
	}

	return -1
}

var eventNames = map[int]string{
	int(EventNone):       "none",
	int(EventAll):        "all",
	int(EventEnter):      "enter",
	int(EventInfo):       "info",
	int(EventExit):       "exit",
	int(EventIO):         "io",
	int(EventParse):      "parse",
	int(EventFormat):     "format",
	int(EventArith):      "arith",
	int(EventConstraint): "constraint",
	int(EventTrace):      "trace",
}

/*
DefaultTracer is the package-level [Tracer] implementation.
*/
type DefaultTracer struct {
	mu sync.Mutex
	w  io.Writer
	ll loglevels
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The
input [io.Writer] value represents the writer interface type
to which debug data shall be written.
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{
		w:  writer,
		ll: newLoglevels(eventNames),
	}
}

/*
EnableLevel adds [EventType] ev to the collection of loglevels
to be used during debugging.

Note that this method can be used to override any such loglevels
activated via the [EnvDebugVar] environment variable at runtime.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.ll.Shift(int(ev)) }

/*
DisableLevel removes [EventType] ev from the collection of loglevels
to be used during debugging.

Note that this method can be used to override any such loglevels
activated via the [EnvDebugVar] environment variable at runtime.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.ll.Unshift(int(ev)) }

/*
Trace writes [TraceRecord] rec to the [io.Writer] handled by the
receiver instance. This method need not be executed by the end
user directly.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	// drop if no bit in rec.Type is enabled
	if !r.ll.Positive(int(rec.Type)) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.Time.Format("15:04:05.000")
	fn := trimFuncName(rec.Func)

	switch rec.Type & coreTracerMask {
	case EventEnter:
		r.writeEnter(ts, fn, rec.Args)
	case EventExit:
		r.writeExit(ts, fn, rec.Ret)
	default:
		r.writeInfo(ts, fn, rec.Args)
	}
}

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(e EventType) bool {
	return r.ll.Positive(int(e))
}

func trimFuncName(full string) string {
	if i := lidx(full, "/"); i >= 0 {
		return full[i+1:]
	}
	return full
}

func (r *DefaultTracer) writeEnter(ts, fn string, args []any) {
	r.w.Write([]byte(ts + " → " + fn + "("))
	for i, a := range args {
		if i > 0 {
			r.w.Write([]byte(", "))
		}
		if s := fmtArg(a); s != "" {
			r.w.Write([]byte(s))
		}
	}
	r.w.Write([]byte(")\n"))
}

func (r *DefaultTracer) writeInfo(ts, fn string, args []any) {
	r.w.Write([]byte(ts + "     • " + fn + ": "))
	for i, a := range args {
		if i > 0 {
			r.w.Write([]byte(", "))
		}
		if s := fmtArg(a); s != "" {
			r.w.Write([]byte(s))
		}
	}
	r.w.Write([]byte("\n"))
}

func (r *DefaultTracer) writeExit(ts, fn string, rets []any) {
	r.w.Write([]byte(ts + " ← " + fn + " => "))
	for i, a := range rets {
		if i > 0 {
			r.w.Write([]byte(", "))
		}
		if s := fmtArg(a); s != "" {
			r.w.Write([]byte(s))
		}
	}
	r.w.Write([]byte("\n"))
}

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer]. This includes a [time.Time] timestamp, an
[EventType] as well as in/out arguments.
*/
type TraceRecord struct {
	Time time.Time // timestamp, i.e.: time.Now()
	Type EventType // Enter, Info or Exit, OR'd with the subsystem bit
	Func string    // FuncName -or- TypeName.MethodName
	Args []any     // On Enter: parameters
	Ret  []any     // On Exit: return values (last entry may be error)
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] for debugging.

This function need not be called if an environment variable of
[EnvDebugVar] was read and successfully parsed at runtime.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{} // default
)

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord)      {}
func (*discardTracer) Enabled(_ EventType) bool { return false }

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	lt, ok := t.(levelTracer)
	if ok {
		if !(lt.Enabled(level) || lt.Enabled(EventAll)) {
			return
		}
	}

	// now fire the record
	pc, _, _, found := runtime.Caller(2)
	fn := callerName()

	if found {
		fn = runtime.FuncForPC(pc).Name()
	}
	fn = replace(fn, "go-isodur.", "", 1)
	if cntns(fn, ".func") {
		fn = fn[:lidx(fn, ".")]
	}

	rec := TraceRecord{
		Time: time.Now(),
		Type: level,
		Func: fn,
	}

	if ok && lt.Enabled(EventIO) {
		if len(args) == 0 {
			args = []any{"no values"}
		}
		if level&EventExit != 0 {
			rec.Ret = args
		} else {
			rec.Args = args
		}
	}

	t.Trace(rec)
}

func callerName() string {
	// skip: runtime.Callers(0), callerName(1), debugEvent(2)
	pcs := make([]uintptr, 10)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		fr, more := frames.Next()
		name := fr.Function
		if !hasPfx(name, "debug") {
			return name
		}
		if !more {
			break
		}
	}

	return "unknown"
}

func debugEnter(ev EventType, args ...any) { debugEvent(EventEnter|ev, args...) }
func debugExit(ev EventType, args ...any)  { debugEvent(EventExit|ev, args...) }
func debugInfo(ev EventType, args ...any)  { debugEvent(EventInfo|ev, args...) }

// strictly for debugging.
type labeledItem struct {
	L string
	V any
}

func newLItem(value any, labels ...any) (li labeledItem) {
	li = labeledItem{V: value}
	var l []string
	for i := 0; i < len(labels); i++ {
		switch tv := labels[i].(type) {
		case Designator:
			l = append(l, tv.String())
		case string:
			l = append(l, tv)
		}
	}

	li.L = join(l, ` `)

	return
}

func (r labeledItem) String() string {
	l := "<No label>:"
	if r.L != "" {
		l = r.L + ":"
	}

	v := "<Nil value>"
	if err, is := r.V.(error); is {
		if r.L == "" {
			l = "Error:"
		}
		if err != nil {
			v = err.Error()
		} else {
			v = "<Nil error>"
		}
	} else if s := fmtArg(r.V); s != "" {
		v = s
	}

	return l + v
}

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case nil:
		s = `<nil>`
	case int, []int:
		s = fmtIntArg(v)
	case string:
		s = v
	case bool:
		s = bool2str(v)
	case byte, []byte:
		s = fmtByteSliceArg(v)
	case reflect.Type, reflect.Value:
		s = fmtReflectionArg(v)
	case labeledItem:
		s = v.String()
	case Duration:
		s = v.String()
	case DateDuration:
		s = v.String()
	case TimeDuration:
		s = v.String()
	case ISOString:
		s = string(v)
	case Designator:
		s = v.String()
	case decimal.Decimal:
		s = v.String()
	case time.Time:
		s = v.Format(time.RFC3339Nano)
	case time.Duration:
		s = v.String()
	case error:
		s = v.Error()
	default:
		s = fmtDefaultArg(v)
	}

	return
}

func fmtIntArg(x any) string {
	var v []int
	switch tv := x.(type) {
	case int:
		v = append(v, tv)
	case []int:
		v = tv
	}

	var strs []string
	for i := 0; i < len(v); i++ {
		strs = append(strs, itoa(v[i]))
	}
	return join(strs, ` `)
}

func fmtReflectionArg(x any) (s string) {
	switch v := x.(type) {
	case reflect.Type:
		s = `reflect.Type:` + v.String()
	case reflect.Value:
		s = `reflect.Value:` + v.Type().String()
	}

	return
}

func fmtByteSliceArg(x any) (s string) {
	var v []byte
	switch tv := x.(type) {
	case byte:
		v = append(v, tv)
	case []byte:
		v = tv
	}

	var strs []string
	for i := 0; i < len(v); i++ {
		strs = append(strs, fmtUint(uint64(v[i]), 8))
	}
	s = join(strs, ` `)
	return
}

func fmtDefaultArg(v any) (s string) {
	s = "<Unidentified>"
	if v != nil {
		s = refTypeOf(v).String()
	}

	return
}

func init() {
	if evar := os.Getenv(EnvDebugVar); evar != "" {
		sp := split(evar, ",")
		var vars []any
		for i := 0; i < len(sp); i++ {
			if n, err := atoi(sp[i]); err != nil {
				vars = append(vars, lc(sp[i]))
			} else if n <= 65535 {
				if n < 0 {
					vars = []any{int(EventAll)}
					break
				}
				vars = append(vars, n)
			}
		}

		dt := NewDefaultTracer(os.Stderr)
		dt.ll.Shift(vars...)
		EnableDebug(dt)
		debugInfo(EventTrace, newLItem(join(dt.ll.enabled(), `,`), "loglevels"))
	}
}
