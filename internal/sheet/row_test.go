package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowLookup(t *testing.T) {
	row := NewRow(
		[]string{" Instalação ", "Nome", "Valor Final R$", ""},
		[]string{"10/530195-7", "  ACME LTDA  ", "1.234,56"},
	)

	assert.Equal(t, "10/530195-7", row.Get("Instalação"))
	assert.Equal(t, "10/530195-7", row.Get("INSTALAÇÃO"))
	assert.Equal(t, "ACME LTDA", row.Get("nome"))
	assert.Equal(t, "", row.Get("Coluna Inexistente"))

	assert.True(t, row.Has("Valor Final R$"))
	assert.False(t, row.Has("Projeto"))
}

func TestRowDuplicateLabelFirstWins(t *testing.T) {
	row := NewRow(
		[]string{"Status", "status"},
		[]string{"Pago", "Cancelado"},
	)
	assert.Equal(t, "Pago", row.Get("Status"))
}

func TestRowFirst(t *testing.T) {
	row := NewRow(
		[]string{"Referência", "Mês de Referência"},
		[]string{"", "01/2024"},
	)
	assert.Equal(t, "01/2024", row.First("Referência", "Mês de Referência"))
	assert.Equal(t, "", row.First("Vencimento", "Data Vencimento"))
}

func TestRowHasLabelContaining(t *testing.T) {
	row := NewRow([]string{"Nº da Instalação", "Valor Consolidado"}, nil)
	assert.True(t, row.HasLabelContaining("instalação"))
	assert.True(t, row.HasLabelContaining("valor consolidado"))
	assert.False(t, row.HasLabelContaining("custo"))
}

func TestRowSetAndClone(t *testing.T) {
	row := NewRow([]string{"Nome"}, []string{"ACME"})
	clone := row.Clone()
	clone.Set("Nome", "OUTRA")
	clone.Set("Valor Final R$", "100")

	assert.Equal(t, "ACME", row.Get("Nome"))
	assert.False(t, row.Has("Valor Final R$"))
	assert.Equal(t, "OUTRA", clone.Get("Nome"))
	assert.Equal(t, "100", clone.Get("Valor Final R$"))
	assert.True(t, clone.HasLabelContaining("valor final"))
}

func TestRowEmpty(t *testing.T) {
	assert.True(t, NewRow([]string{"A", "B"}, []string{"", "  "}).Empty())
	assert.False(t, NewRow([]string{"A", "B"}, []string{"", "x"}).Empty())
}
