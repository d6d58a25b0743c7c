package parsing

import (
	"regexp"
	"strings"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// InstallationID strips every non-digit character from an installation
// identifier. "10/530195-7" becomes "105301957".
func InstallationID(value string) string {
	return nonDigitRe.ReplaceAllString(value, "")
}

// DistributorName uppercases a distributor label and replaces underscores
// with spaces. "energisa_mt" becomes "ENERGISA MT".
func DistributorName(value string) string {
	s := strings.ToUpper(value)
	s = strings.ReplaceAll(s, "_", " ")
	return strings.TrimSpace(s)
}
