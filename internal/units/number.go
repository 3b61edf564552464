package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// formatNumber renders v with the locale's grouping and decimal separator.
// Whole values print without a fraction; others keep every significant digit.
func formatNumber(tag language.Tag, v float64) string {
	p := message.NewPrinter(tag)
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return p.Sprintf("%d", int64(v))
	}
	return p.Sprintf(fmt.Sprintf("%%.%df", fractionDigits(v)), v)
}

func fractionDigits(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
