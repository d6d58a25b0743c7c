package classifier

import (
	"strings"

	"gdreport/pkg/contracts/domain"
)

// mapStatus folds the free-text status vocabularies of the standard sources
// into the canonical set. Unknown or empty text defaults to open so rows are
// not lost over cosmetic status variations.
func mapStatus(raw string) domain.BillingStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return domain.StatusOpen
	case strings.Contains(s, "quitado parc"),
		strings.Contains(s, "negociado"),
		strings.Contains(s, "acordo"):
		return domain.StatusNegotiated
	case strings.Contains(s, "pago"),
		strings.Contains(s, "quitado"),
		strings.Contains(s, "liquidado"),
		strings.Contains(s, "baixado"):
		return domain.StatusPaid
	case strings.Contains(s, "atrasado"),
		strings.Contains(s, "atraso"),
		strings.Contains(s, "expirado"),
		strings.Contains(s, "pendente"):
		return domain.StatusLate
	default:
		return domain.StatusOpen
	}
}

// mapStatusStrict is the closed vocabulary of the EGS back-office. Anything
// outside it makes the row inadmissible rather than defaulting.
func mapStatusStrict(raw string) (domain.BillingStatus, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "quitado parc"),
		strings.Contains(s, "negociado"),
		strings.Contains(s, "acordo"):
		return domain.StatusNegotiated, true
	case strings.Contains(s, "pago"),
		strings.Contains(s, "quitado"):
		return domain.StatusPaid, true
	case strings.Contains(s, "atrasado"),
		strings.Contains(s, "atraso"):
		return domain.StatusLate, true
	default:
		return "", false
	}
}
