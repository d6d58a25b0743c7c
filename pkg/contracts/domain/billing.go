package domain

import (
	"fmt"
	"strings"
)

// ProjectCode identifies the back-office a billing row originates from.
type ProjectCode string

const (
	ProjectLNV ProjectCode = "LNV"
	ProjectALA ProjectCode = "ALA"
	ProjectEGS ProjectCode = "EGS"
	ProjectMTX ProjectCode = "MTX"
	ProjectEMG ProjectCode = "EMG"
	ProjectESP ProjectCode = "ESP"

	// ProjectEVD is the generic "Era Verde" family code. It is resolved to
	// EMG or ESP during classification and never appears in output.
	ProjectEVD ProjectCode = "EVD"

	// ProjectTBD marks rows whose project could not be resolved during the
	// analysis pass. It signals that a manual code is required.
	ProjectTBD ProjectCode = "TBD"
)

// ValidProjectCodes lists the codes that may appear in canonical output.
var ValidProjectCodes = []ProjectCode{
	ProjectLNV, ProjectALA, ProjectEGS, ProjectMTX, ProjectEMG, ProjectESP,
}

// projectAliases maps free-text project labels found in source spreadsheets
// to canonical codes.
var projectAliases = map[string]ProjectCode{
	"LN":                     ProjectLNV,
	"LNV":                    ProjectLNV,
	"LUA NOVA":               ProjectLNV,
	"LUA NOVA ENERGIA":       ProjectLNV,
	"ALA":                    ProjectALA,
	"ALAGOAS":                ProjectALA,
	"ALAGOAS ENERGIA":        ProjectALA,
	"EGS":                    ProjectEGS,
	"E3":                     ProjectEGS,
	"E3 ENERGIA":             ProjectEGS,
	"MX":                     ProjectMTX,
	"MTX":                    ProjectMTX,
	"MATRIX":                 ProjectMTX,
	"EMG":                    ProjectEMG,
	"ERA VERDE ENERGIA - MG": ProjectEMG,
	"ESP":                    ProjectESP,
	"ERA VERDE ENERGIA - SP": ProjectESP,
	"EVD":                    ProjectEVD,
	"ERA VERDE":              ProjectEVD,
}

// ResolveProjectCode maps a free-text project label to a known code.
// The second return value reports whether the alias was recognized.
func ResolveProjectCode(alias string) (ProjectCode, bool) {
	key := strings.ToUpper(strings.TrimSpace(alias))
	if key == "" {
		return "", false
	}
	if code, ok := projectAliases[key]; ok {
		return code, true
	}
	return ProjectCode(key), false
}

// IsValid reports whether the code is one of the six canonical codes.
func (c ProjectCode) IsValid() bool {
	for _, v := range ValidProjectCodes {
		if c == v {
			return true
		}
	}
	return false
}

// BillingStatus is the canonical payment status vocabulary.
type BillingStatus string

const (
	StatusOpen       BillingStatus = "Aberto"
	StatusPaid       BillingStatus = "Pago"
	StatusLate       BillingStatus = "Atrasado"
	StatusNegotiated BillingStatus = "Negociado"
)

// RiskLevel classifies collection risk from days late.
type RiskLevel string

const (
	RiskNone   RiskLevel = "Nenhum"
	RiskLow    RiskLevel = "Baixo"
	RiskMedium RiskLevel = "Médio"
	RiskHigh   RiskLevel = "Alto"
)

// BillingRow is the canonical record consumed by downstream reporting.
// The column set and order exposed by Columns/Record is the export contract.
type BillingRow struct {
	Project ProjectCode

	Installation string
	CustomerName string
	TaxID        string
	Distributor  string

	PostalCode string
	Address    string
	City       string
	State      string

	PaymentType      string
	ContractType     string
	ContractDiscount float64
	CommercialTerms  string

	PaymentDueDate  string
	ReferenceMonth  string
	CalculationBase string
	BillingType     string
	CalculationFrom string
	Approval        string
	IssueDate       string
	DueDate         string

	EnergyCreditKWh float64
	AppliedTariff   float64
	GrossAmount     float64
	ExtraDiscount   float64
	RetroAdjustment float64
	FinalAmount     float64
	CostWithGD      float64
	CostWithoutGD   float64
	Economy         string

	AccountNumber  string
	InvoiceNumber  string
	PaymentDate    string
	PaymentMethod  string
	DaysLateLegacy string
	LateFees       string
	ChargeAmount   float64
	AmountPaid     float64
	AmountCredited float64
	BoletoID       string
	BankName       string
	LinkedAccount  string

	Status             BillingStatus
	Cancelled          string
	CancellationDate   string
	CancellationReason string
	Cancellation       string

	DaysLate int
	Risk     RiskLevel

	SourceFile string
}

// billingColumns is the fixed export column order.
var billingColumns = []string{
	"PROJETO",
	"Instalação", "Nome", "CNPJ/CPF", "Distribuidora",
	"Cep", "Endereço", "Cidade", "UF",
	"Tipo de Pagamento", "Tipo Contrato", "Desconto contrato (%)", "Condição Comercial",
	"Data de Vencimento", "Mês de Referência", "Base para cálculo", "Tipo Cobrança",
	"Origem do cálculo", "Aprovação", "Data de Emissão", "Vencimento", "Crédito kWh",
	"Tarifa aplicada R$", "Valor Bruto R$", "Desconto extra", "Ajuste retroativo R$",
	"Valor Final R$", "Custo com GD R$", "Custo sem GD R$", "Economia R$",
	"Número da conta", "Nº da cobrança", "Data de Pagamento", "Pagamento via",
	"Dias de Atraso", "Juros e Multa", "Valor da cobrança R$", "Valor Pago",
	"Valor creditado R$", "ID Boleto/Pix", "Instituição bancária", "Conta vinculada",
	"Status", "Cancelada", "Data de Cancelamento", "Motivo do Cancelamento",
	"Cancelamento", "Dias Atrasados", "Risco", "Arquivo Origem",
}

// BillingColumns returns the canonical export column order.
func BillingColumns() []string {
	cols := make([]string, len(billingColumns))
	copy(cols, billingColumns)
	return cols
}

// Record renders the row as CSV cells matching BillingColumns order.
func (r *BillingRow) Record() []string {
	return []string{
		string(r.Project),
		r.Installation, r.CustomerName, r.TaxID, r.Distributor,
		r.PostalCode, r.Address, r.City, r.State,
		r.PaymentType, r.ContractType, money(r.ContractDiscount), r.CommercialTerms,
		r.PaymentDueDate, r.ReferenceMonth, r.CalculationBase, r.BillingType,
		r.CalculationFrom, r.Approval, r.IssueDate, r.DueDate, money(r.EnergyCreditKWh),
		money(r.AppliedTariff), money(r.GrossAmount), money(r.ExtraDiscount), money(r.RetroAdjustment),
		fmt.Sprintf("%.2f", r.FinalAmount), fmt.Sprintf("%.2f", r.CostWithGD), fmt.Sprintf("%.2f", r.CostWithoutGD), r.Economy,
		r.AccountNumber, r.InvoiceNumber, r.PaymentDate, r.PaymentMethod,
		r.DaysLateLegacy, r.LateFees, money(r.ChargeAmount), money(r.AmountPaid),
		money(r.AmountCredited), r.BoletoID, r.BankName, r.LinkedAccount,
		string(r.Status), r.Cancelled, r.CancellationDate, r.CancellationReason,
		r.Cancellation, fmt.Sprintf("%d", r.DaysLate), string(r.Risk), r.SourceFile,
	}
}

// money renders an optional monetary value, leaving absent values blank.
func money(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", v)
}
