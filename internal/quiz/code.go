package quiz

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// ErrInvalidCode is returned by ParseCode for input that is not a type code.
var ErrInvalidCode = errors.New("invalid type code")

// Code is a 4-letter type code, one letter per axis in Axes order.
type Code string

// Valid reports whether c matches [LF][SQ][VA][TC].
func (c Code) Valid() bool {
	if len(c) != AxisCount {
		return false
	}
	for i, a := range axisOrder {
		if c[i] != a.Positive() && c[i] != a.Negative() {
			return false
		}
	}
	return true
}

// Letter returns the letter of c on axis a, or 0 if c is too short.
func (c Code) Letter(a Axis) byte {
	i := a.Index()
	if i < 0 || i >= len(c) {
		return 0
	}
	return c[i]
}

func (c Code) String() string { return string(c) }

// ParseCode normalizes s (surrounding space, full-width letters, case) and
// validates it as a type code.
func ParseCode(s string) (Code, error) {
	norm := strings.ToUpper(width.Fold.String(strings.TrimSpace(s)))
	c := Code(norm)
	if !c.Valid() {
		return "", fmt.Errorf("quiz.ParseCode: %q: %w", s, ErrInvalidCode)
	}
	return c, nil
}

// AllCodes enumerates every derivable code, positive letters first on each
// axis (LSVT ... FQAC).
func AllCodes() []Code {
	out := make([]Code, 0, 1<<AxisCount)
	for mask := 0; mask < 1<<AxisCount; mask++ {
		var b [AxisCount]byte
		for i, a := range axisOrder {
			if mask&(1<<(AxisCount-1-i)) == 0 {
				b[i] = a.Positive()
			} else {
				b[i] = a.Negative()
			}
		}
		out = append(out, Code(b[:]))
	}
	return out
}
