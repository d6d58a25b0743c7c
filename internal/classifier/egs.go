package classifier

import (
	"strings"

	"gdreport/internal/sheet"
	"gdreport/pkg/contracts/domain"
)

// egsContractDiscount is the fixed contractual discount of the EGS
// back-office.
const egsContractDiscount = 0.25

// egsExclusiveColumns appear only in EGS exports and make the format
// recognizable without a project column.
var egsExclusiveColumns = []string{"CUSTO_S_GD", "Obs Planilha Rubia"}

// EGS handles the specialized EGS vendor exports.
type EGS struct{}

// NewEGS creates the EGS classifier.
func NewEGS() *EGS {
	return &EGS{}
}

// Name implements Classifier.
func (e *EGS) Name() string { return "EGS" }

// Matches implements Classifier. The manual code routes here directly;
// otherwise the exclusive columns give the format away.
func (e *EGS) Matches(row sheet.Row, ctx domain.Context) bool {
	if code, _ := domain.ResolveProjectCode(ctx.ManualCode); code == domain.ProjectEGS {
		return true
	}
	for _, col := range egsExclusiveColumns {
		if row.Has(col) {
			return true
		}
	}
	return false
}

// Process implements Classifier. EGS rows carry a closed status vocabulary
// and must present a parseable issue date; anything else is inadmissible.
func (e *EGS) Process(row sheet.Row, ctx domain.Context) (*domain.BillingRow, *domain.Rejection) {
	rawStatus := row.Get("Status Pagamento")
	if strings.Contains(strings.ToLower(rawStatus), "cancelado") {
		return nil, domain.Reject(domain.RejectCancelled)
	}

	status, ok := mapStatusStrict(rawStatus)
	if !ok {
		return nil, domain.Reject(domain.RejectInvalidStatus)
	}

	nr := applyRenames(row)

	discount := egsContractDiscount
	return build(nr, ctx, buildParams{
		project:          domain.ProjectEGS,
		status:           status,
		rawStatus:        rawStatus,
		forcedDiscount:   &discount,
		requireIssueDate: true,
		clearDashFees:    true,
		defaultCancelled: "Não",
	})
}
