package isodur

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	itoa    func(int) string                         = strconv.Itoa
	atoi    func(string) (int, error)                = strconv.Atoi
	fmtUint func(uint64, int) string                 = strconv.FormatUint
	lc      func(string) string                      = strings.ToLower
	split   func(string, string) []string            = strings.Split
	join    func([]string, string) string            = strings.Join
	replace func(string, string, string, int) string = strings.Replace
	hasPfx  func(string, string) bool                = strings.HasPrefix
	cntns   func(string, string) bool                = strings.Contains
	streqf  func(string, string) bool                = strings.EqualFold
	lidx    func(string, string) int                 = strings.LastIndex
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isSign(c byte) bool { return c == '+' || c == '-' }

/*
isSeparator reports whether c begins a decimal fraction. Both the
dot and comma forms are admitted on input; only the dot is ever
emitted.
*/
func isSeparator(c byte) bool { return c == '.' || c == ',' }
