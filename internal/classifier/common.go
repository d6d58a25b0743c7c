package classifier

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gdreport/internal/parsing"
	"gdreport/internal/rules"
	"gdreport/internal/sheet"
	"gdreport/pkg/contracts/domain"
)

// buildParams tunes the shared derivation sequence per project family.
type buildParams struct {
	project   domain.ProjectCode
	status    domain.BillingStatus
	rawStatus string

	// forcedDiscount overrides the contract discount; nil keeps the value
	// parsed from the row (or zero when absent).
	forcedDiscount *float64

	// requireIssueDate rejects rows whose issue date cannot be parsed.
	requireIssueDate bool

	// clearDashFees blanks a lone "-" placeholder in the fees column.
	clearDashFees bool

	// defaultCancelled fills the Cancelada column when the source left it
	// empty.
	defaultCancelled string
}

// optionalMoneyColumns are parsed into floats only when present.
var optionalMoneyColumns = []string{
	"Valor Bruto R$",
	"Tarifa aplicada R$",
	"Ajuste retroativo R$",
	"Desconto extra",
	"Valor da cobrança R$",
	"Valor Pago",
	"Valor creditado R$",
}

// build runs the validation and derivation sequence every classifier shares
// once project code and status are established: cutoff evaluation, identity
// floor, normalization, currency parsing, economy, days late and risk.
func build(nr sheet.Row, ctx domain.Context, p buildParams) (*domain.BillingRow, *domain.Rejection) {
	refDate := parsing.Date(nr.First("Mês de Referência", "Referência"))

	cutoff := ctx.CutoffDate
	if ctx.AnalysisMode {
		cutoff = ""
	}
	if skip, reason := rules.ShouldSkip(refDate, cutoff, p.rawStatus); skip {
		return nil, domain.Reject(reason)
	}

	// The floor is checked on normalized values: an installation cell
	// without digits ("S/N") identifies nothing.
	installation := parsing.InstallationID(nr.Get("Instalação"))
	if installation == "" && nr.Get("CNPJ/CPF") == "" && nr.Get("Nome") == "" {
		return nil, domain.Reject(domain.RejectMissingIdentity)
	}

	issueDate := parsing.Date(nr.First("Data de Emissão", "Data emissão"))
	if p.requireIssueDate && issueDate == nil {
		return nil, domain.Reject(domain.RejectMissingIssueDate)
	}

	row := &domain.BillingRow{
		Project: p.project,
		Status:  p.status,

		Installation: installation,
		CustomerName: nr.Get("Nome"),
		TaxID:        nr.Get("CNPJ/CPF"),
		Distributor:  parsing.DistributorName(nr.Get("Distribuidora")),

		PostalCode: nr.Get("Cep"),
		Address:    nr.Get("Endereço"),
		City:       nr.Get("Cidade"),
		State:      strings.ToUpper(nr.First("UF", "Estado")),

		PaymentType:     nr.Get("Tipo de Pagamento"),
		ContractType:    nr.Get("Tipo Contrato"),
		CommercialTerms: nr.Get("Condição Comercial"),

		PaymentDueDate:  nr.Get("Data de Vencimento"),
		ReferenceMonth:  nr.Get("Mês de Referência"),
		CalculationBase: nr.Get("Base para cálculo"),
		BillingType:     nr.Get("Tipo Cobrança"),
		CalculationFrom: nr.Get("Origem do cálculo"),
		Approval:        nr.Get("Aprovação"),

		AccountNumber:  nr.Get("Número da conta"),
		InvoiceNumber:  nr.Get("Nº da cobrança"),
		PaymentDate:    nr.Get("Data de Pagamento"),
		PaymentMethod:  nr.Get("Pagamento via"),
		DaysLateLegacy: nr.Get("Dias de Atraso"),
		LateFees:       nr.Get("Juros e Multa"),
		BoletoID:       strings.TrimSpace(nr.Get("ID Boleto/Pix")),
		BankName:       nr.Get("Instituição bancária"),
		LinkedAccount:  nr.Get("Conta vinculada"),

		Cancelled:          nr.Get("Cancelada"),
		CancellationDate:   nr.Get("Data de Cancelamento"),
		CancellationReason: nr.Get("Motivo do Cancelamento"),
		Cancellation:       nr.Get("Cancelamento"),

		SourceFile: ctx.FileName,
	}

	if row.Cancelled == "" && p.defaultCancelled != "" {
		row.Cancelled = p.defaultCancelled
	}
	if p.clearDashFees && strings.TrimSpace(row.LateFees) == "-" {
		row.LateFees = ""
	}

	if p.forcedDiscount != nil {
		row.ContractDiscount = *p.forcedDiscount
	} else if v := nr.Get("Desconto contrato (%)"); v != "" {
		row.ContractDiscount = parsing.Currency(v)
	}

	if v := nr.Get("Crédito kWh"); v != "" {
		row.EnergyCreditKWh = parsing.Currency(v)
	}

	if refDate != nil {
		row.ReferenceMonth = parsing.FormatDate(refDate)
	}
	row.IssueDate = parsing.FormatDate(issueDate)

	dueDate := parsing.Date(nr.Get("Vencimento"))
	row.DueDate = parsing.FormatDate(dueDate)
	if row.DueDate == "" {
		row.DueDate = nr.Get("Vencimento")
	}

	row.CostWithGD = parsing.Currency(nr.Get("Custo com GD R$"))
	row.CostWithoutGD = parsing.Currency(nr.Get("Custo sem GD R$"))
	row.FinalAmount = parsing.Currency(nr.Get("Valor Final R$"))

	row.Economy = deriveEconomy(nr.Get("Economia R$"), row.CostWithGD, row.CostWithoutGD)

	for _, col := range optionalMoneyColumns {
		if v := nr.Get(col); v != "" {
			setMoney(row, col, parsing.Currency(v))
		}
	}

	row.DaysLate = deriveDaysLate(nr.Get("Dias Atrasados"), p.status, dueDate, ctx)
	if v := nr.Get("Risco"); v != "" {
		row.Risk = domain.RiskLevel(v)
	} else {
		row.Risk = rules.Risk(row.DaysLate)
	}

	return row, nil
}

// deriveEconomy prefers a non-negative value already present in the row and
// falls back to the cents-safe computation otherwise.
func deriveEconomy(sourced string, costWith, costWithout float64) string {
	if strings.TrimSpace(sourced) != "" {
		if v := parsing.Currency(sourced); v >= 0 {
			return fmt.Sprintf("%.2f", v)
		}
	}
	return rules.Economy(costWith, costWithout)
}

// deriveDaysLate prefers a numeric days-late column over computing from the
// due date. Paid rows are never late.
func deriveDaysLate(sourced string, status domain.BillingStatus, due *time.Time, ctx domain.Context) int {
	if status == domain.StatusPaid {
		return 0
	}
	if s := strings.TrimSpace(sourced); s != "" {
		if days, err := strconv.Atoi(s); err == nil {
			if days < 0 {
				return 0
			}
			return days
		}
	}
	return rules.DaysLate(due, ctx.Now)
}

// setMoney routes an optional monetary value to its struct field.
func setMoney(row *domain.BillingRow, column string, v float64) {
	switch column {
	case "Valor Bruto R$":
		row.GrossAmount = v
	case "Tarifa aplicada R$":
		row.AppliedTariff = v
	case "Ajuste retroativo R$":
		row.RetroAdjustment = v
	case "Desconto extra":
		row.ExtraDiscount = v
	case "Valor da cobrança R$":
		row.ChargeAmount = v
	case "Valor Pago":
		row.AmountPaid = v
	case "Valor creditado R$":
		row.AmountCredited = v
	}
}
