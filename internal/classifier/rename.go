package classifier

import "gdreport/internal/sheet"

// sourceRenames translates vendor column labels to their canonical
// counterparts. Keys are matched case-insensitively through sheet.Row.
var sourceRenames = map[string]string{
	"Região":            "Região",
	"Instalação":        "Instalação",
	"CNPJ":              "CNPJ/CPF",
	"Distribuidora":     "Distribuidora",
	"Razão Social":      "Nome",
	"Referência":        "Mês de Referência",
	"CUSTO_S_GD":        "Custo sem GD R$",
	"CUSTO_C_GD":        "Custo com GD R$",
	"Data emissão":      "Data de Emissão",
	"Data Vencimento":   "Vencimento",
	"Valor emitido":     "Valor Final R$",
	"Status Pagamento":  "Status",
	"Valor Pago":        "Valor Pago",
	"Multa/Juros":       "Juros e Multa",
	"Data Pagamento":    "Data de Pagamento",
	"Créd. Consumido":   "Crédito kWh",
	"Credito kWh":       "Crédito kWh",
	"Telefone":          "Telefone",
	"E-MAIL DO PAGADOR": "E-mail",
	"COD":               "ID Boleto/Pix",
	"COD BOLETO":        "ID Boleto/Pix",
}

// applyRenames copies values from vendor-named columns onto their canonical
// labels, leaving the original cells in place. Canonical cells already
// present are only overwritten when the vendor column has a value, matching
// the precedence of the source exports.
func applyRenames(row sheet.Row) sheet.Row {
	nr := row.Clone()
	for source, canonical := range sourceRenames {
		if !row.Has(source) {
			continue
		}
		if v := row.Get(source); v != "" || !nr.Has(canonical) {
			nr.Set(canonical, v)
		}
	}
	return nr
}
