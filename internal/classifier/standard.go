package classifier

import (
	"gdreport/internal/sheet"
	"gdreport/pkg/contracts/domain"
)

// standardCodes are the named non-specialized projects this classifier owns.
var standardCodes = []domain.ProjectCode{
	domain.ProjectLNV,
	domain.ProjectALA,
	domain.ProjectMTX,
}

// monetaryHintColumns qualify a row for the analysis pass when no project
// column exists: an identity column plus any of these suggests a billing
// sheet worth counting.
var monetaryHintColumns = []string{"valor final", "valor consolidado", "valor", "total"}

// Standard is the catch-all classifier for named projects without
// family-specific rules.
type Standard struct{}

// NewStandard creates the standard classifier.
func NewStandard() *Standard {
	return &Standard{}
}

// Name implements Classifier.
func (s *Standard) Name() string { return "STANDARD" }

// Matches implements Classifier. In analysis mode the mere presence of an
// identity column plus a monetary column is enough, so row counts can be
// estimated before the operator assigns a manual code.
func (s *Standard) Matches(row sheet.Row, ctx domain.Context) bool {
	if code, ok := resolveRowProject(row, ctx); ok {
		for _, c := range standardCodes {
			if code == c {
				return true
			}
		}
	}

	if ctx.AnalysisMode && hasIdentityColumn(row) {
		for _, hint := range monetaryHintColumns {
			if row.HasLabelContaining(hint) {
				return true
			}
		}
	}
	return false
}

// Process implements Classifier. Unresolvable project codes reject the row
// in strict mode; the analysis pass tags them TBD instead so the caller
// knows manual disambiguation is required.
func (s *Standard) Process(row sheet.Row, ctx domain.Context) (*domain.BillingRow, *domain.Rejection) {
	project, resolved := resolveRowProject(row, ctx)
	if !resolved || !project.IsValid() {
		if !ctx.AnalysisMode {
			return nil, domain.Reject(domain.RejectUnresolvedProject)
		}
		project = domain.ProjectTBD
	}

	nr := applyRenames(row)

	// Newer LNV/ALA exports renamed the final amount column.
	if nr.Get("Valor Final R$") == "" {
		if v := row.First("Valor Consolidado", "Valor Consolidado R$"); v != "" {
			nr.Set("Valor Final R$", v)
		}
	}

	rawStatus := nr.First("Status", "Status Faturamento", "Status Pagamento")
	status := mapStatus(rawStatus)

	discount := 0.0
	return build(nr, ctx, buildParams{
		project:          project,
		status:           status,
		rawStatus:        rawStatus,
		forcedDiscount:   &discount,
		requireIssueDate: true,
	})
}

// resolveRowProject resolves the row's project code from its project column
// or the manual fallback. ok is false when neither yields a known alias.
func resolveRowProject(row sheet.Row, ctx domain.Context) (domain.ProjectCode, bool) {
	raw := row.First("Projeto", "PROJETO")
	if raw == "" {
		raw = ctx.ManualCode
	}
	if raw == "" {
		return "", false
	}
	return domain.ResolveProjectCode(raw)
}

func hasIdentityColumn(row sheet.Row) bool {
	return row.HasLabelContaining("instalação") || row.HasLabelContaining("instalacao")
}
