package xmlcodec

import (
	"fmt"
	"strconv"
)

// ParseLeaf converts leaf text to a float32 using standard decimal
// float syntax (optional sign, fraction and exponent). The returned
// error wraps ErrInvalidNumber and carries the offending text.
func ParseLeaf(text string) (float32, error) {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	return float32(f), nil
}

// FormatLeaf renders a float32 as the shortest text that parses back to
// the same value.
func FormatLeaf(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
