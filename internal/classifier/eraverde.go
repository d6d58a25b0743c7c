package classifier

import (
	"strings"

	"gdreport/internal/sheet"
	"gdreport/pkg/contracts/domain"
)

// EraVerde handles the green-energy family whose generic EVD code must be
// resolved to one of two sibling projects per row.
type EraVerde struct{}

// NewEraVerde creates the Era Verde classifier.
func NewEraVerde() *EraVerde {
	return &EraVerde{}
}

// Name implements Classifier.
func (e *EraVerde) Name() string { return "ERA_VERDE" }

// Matches implements Classifier.
func (e *EraVerde) Matches(row sheet.Row, ctx domain.Context) bool {
	raw := row.First("Projeto", "PROJETO")
	if raw == "" {
		raw = ctx.ManualCode
	}
	p := strings.ToUpper(strings.TrimSpace(raw))
	code, _ := domain.ResolveProjectCode(p)
	switch code {
	case domain.ProjectEVD, domain.ProjectEMG, domain.ProjectESP:
		return true
	}
	if strings.HasPrefix(p, "ERA VERDE") {
		return true
	}
	return strings.Contains(strings.ToLower(row.Get("Tipo Contrato")), "eraverde")
}

// Process implements Classifier. The sibling code is resolved from the
// distributor name first, then the state, then a fixed default.
func (e *EraVerde) Process(row sheet.Row, ctx domain.Context) (*domain.BillingRow, *domain.Rejection) {
	project := resolveSibling(row)

	nr := applyRenames(row)

	rawStatus := nr.First("Status", "Status Faturamento", "Status Pagamento")
	status := mapStatus(rawStatus)

	return build(nr, ctx, buildParams{
		project:   project,
		status:    status,
		rawStatus: rawStatus,
	})
}

// resolveSibling picks EMG or ESP for a generic Era Verde row.
func resolveSibling(row sheet.Row) domain.ProjectCode {
	dist := strings.ToLower(strings.TrimSpace(row.Get("Distribuidora")))
	switch {
	case strings.Contains(dist, "cemig"):
		return domain.ProjectEMG
	case strings.Contains(dist, "cpfl"), strings.Contains(dist, "paulista"):
		return domain.ProjectESP
	}

	uf := strings.ToUpper(strings.TrimSpace(row.First("UF", "Estado")))
	if uf == "MG" {
		return domain.ProjectEMG
	}
	return domain.ProjectESP
}
