package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Currency parses a monetary cell into a float. It accepts plain numbers as
// well as pt-BR formatted strings ("R$ 1.234,56") and plain decimal strings
// ("1234.56"). When both separators occur, the dot is the thousands
// separator; a lone comma is the decimal separator. Unparseable input yields
// 0.
func Currency(value string) float64 {
	v := strings.ReplaceAll(value, "R$", "")
	v = whitespaceRe.ReplaceAllString(v, "")
	if v == "" {
		return 0
	}

	hasComma := strings.Contains(v, ",")
	hasDot := strings.Contains(v, ".")
	switch {
	case hasComma && hasDot:
		v = strings.ReplaceAll(v, ".", "")
		v = strings.Replace(v, ",", ".", 1)
	case hasComma:
		v = strings.Replace(v, ",", ".", 1)
	}

	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return parsed
}
