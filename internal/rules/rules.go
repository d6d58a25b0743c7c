package rules

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gdreport/internal/parsing"
	"gdreport/pkg/contracts/domain"
)

// DaysLate returns how many whole days the due date lies behind now,
// comparing midnights and rounding partial days up. A nil due date or a due
// date in the future yields 0.
func DaysLate(due *time.Time, now time.Time) int {
	if due == nil {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)

	diff := today.Sub(dueDay).Hours() / 24
	days := int(math.Ceil(diff))
	if days < 0 {
		return 0
	}
	return days
}

// Risk classifies collection risk purely from days late. The status field
// does not influence the tier.
func Risk(daysLate int) domain.RiskLevel {
	switch {
	case daysLate == 0:
		return domain.RiskNone
	case daysLate <= 30:
		return domain.RiskLow
	case daysLate <= 90:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}

// ShouldSkip decides whether a row is excluded before any transformation.
// A status containing a cancellation marker wins over everything else; after
// that, a reference month/year strictly before the cutoff month/year skips
// the row. The day of month is ignored on both sides.
func ShouldSkip(refDate *time.Time, cutoffDate string, status string) (bool, domain.RejectReason) {
	if strings.Contains(strings.ToLower(status), "cancelad") {
		return true, domain.RejectCancelled
	}

	if refDate != nil && cutoffDate != "" {
		cutoff := parsing.Date(cutoffDate)
		if cutoff != nil {
			refMonths := refDate.Year()*12 + int(refDate.Month())
			cutoffMonths := cutoff.Year()*12 + int(cutoff.Month())
			if refMonths < cutoffMonths {
				return true, domain.RejectOldDate
			}
		}
	}

	return false, ""
}

// Economy computes the saving between the cost with and without the benefit,
// in integer cents to avoid float drift, rendered as a 2-decimal string.
// A negative saving is suppressed to the empty string.
func Economy(costWithGD, costWithoutGD float64) string {
	withCents := decimal.NewFromFloat(costWithGD).Mul(decimal.NewFromInt(100)).Round(0)
	withoutCents := decimal.NewFromFloat(costWithoutGD).Mul(decimal.NewFromInt(100)).Round(0)

	saving := withoutCents.Sub(withCents)
	if saving.IsNegative() {
		return ""
	}
	return saving.Div(decimal.NewFromInt(100)).StringFixed(2)
}
