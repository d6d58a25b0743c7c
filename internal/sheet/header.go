package sheet

import "strings"

// DefaultMaxHeaderScan bounds how deep into a sheet the detector looks for a
// header row, so malformed or huge sheets stay cheap to reject.
const DefaultMaxHeaderScan = 50

// identityKeywords must appear in a row for it to qualify as a header
// candidate at all.
var identityKeywords = []string{"instalação", "instalacao"}

// financialKeywords score candidates so registration sheets, which also
// carry an installation column, lose to the billing sheet.
var financialKeywords = []string{"valor", "custo", "tarifa", "total", "referência", "vencimento"}

// DetectHeader scans the first maxScan rows and returns the index of the
// best header candidate. A candidate must contain an identity column; among
// candidates the highest financial-keyword count wins, with ties broken by
// first occurrence. ok is false when the sheet has no candidate and should
// be skipped entirely.
func DetectHeader(rows [][]string, maxScan int) (index int, ok bool) {
	if maxScan <= 0 {
		maxScan = DefaultMaxHeaderScan
	}
	limit := len(rows)
	if limit > maxScan {
		limit = maxScan
	}

	bestIndex := -1
	bestScore := -1

	for i := 0; i < limit; i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}

		hasIdentity := false
		score := 0
		for _, cell := range row {
			lower := strings.ToLower(cell)
			if lower == "" {
				continue
			}
			if !hasIdentity && containsAny(lower, identityKeywords) {
				hasIdentity = true
			}
			if containsAny(lower, financialKeywords) {
				score++
			}
		}

		if hasIdentity && score > bestScore {
			bestIndex = i
			bestScore = score
		}
	}

	if bestIndex == -1 {
		return 0, false
	}
	return bestIndex, true
}

// Materialize turns the rows beneath a header into label-keyed Rows. Fully
// blank rows carry no information and are dropped here, so they never show
// up in the processing statistics.
func Materialize(header []string, rows [][]string) []Row {
	out := make([]Row, 0, len(rows))
	for _, cells := range rows {
		row := NewRow(header, cells)
		if row.Empty() {
			continue
		}
		out = append(out, row)
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
