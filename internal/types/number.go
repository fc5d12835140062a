// etherion/internal/types/number.go
package types

import (
	"strconv"
	"strings"
)

// Float marshals with the shortest round-trip representation and always
// carries a fractional part, so 45 is written as 45.0.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return []byte(s), nil
}
