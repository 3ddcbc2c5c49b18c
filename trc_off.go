//go:build !isodur_debug

package isodur

/*
trc_off.go supplies no-op debug stubs when this package is built
without the "isodur_debug" tag, keeping the tracing surface at
zero cost.
*/

type DefaultTracer struct{}
type labeledItem struct{}

func debugEvent(_ EventType, _ ...any)     {}
func debugEnter(_ EventType, _ ...any)     {}
func debugExit(_ EventType, _ ...any)      {}
func debugInfo(_ EventType, _ ...any)      {}
func newLItem(_ any, _ ...any) labeledItem { return labeledItem{} }
func (_ labeledItem) String() string       { return `` }
