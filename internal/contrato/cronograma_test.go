package contrato

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarParcelas_SomaIgualAoTotal(t *testing.T) {
	inicio := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		total float64
		qtd   int
	}{
		{1000.00, 2},
		{1000.00, 3},
		{4999.99, 7},
		{350.50, 1},
		{12000.00, 12},
	}

	for _, c := range casos {
		parcelas := GerarParcelas(1, c.total, c.qtd, inicio)
		require.Len(t, parcelas, c.qtd)

		var soma float64
		for _, p := range parcelas {
			soma += p.Valor
			assert.Equal(t, "pending", p.Status)
		}
		assert.InDelta(t, c.total, soma, 0.005, "total=%v qtd=%d", c.total, c.qtd)
	}
}

func TestGerarParcelas_PrimeiraAbsorveSobra(t *testing.T) {
	inicio := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	parcelas := GerarParcelas(1, 1000.00, 3, inicio)

	require.Len(t, parcelas, 3)
	assert.InDelta(t, 333.34, parcelas[0].Valor, 0.005)
	assert.InDelta(t, 333.33, parcelas[1].Valor, 0.005)
	assert.InDelta(t, 333.33, parcelas[2].Valor, 0.005)
}

func TestGerarParcelas_VencimentosMensais(t *testing.T) {
	inicio := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	parcelas := GerarParcelas(1, 900, 3, inicio)

	require.Len(t, parcelas, 3)
	assert.Equal(t, inicio, parcelas[0].DataVencimento)
	assert.Equal(t, inicio.AddDate(0, 1, 0), parcelas[1].DataVencimento)
	assert.Equal(t, inicio.AddDate(0, 2, 0), parcelas[2].DataVencimento)
}

func TestGerarParcelas_QuantidadeMinimaEhUma(t *testing.T) {
	parcelas := GerarParcelas(1, 500, 0, time.Now())
	require.Len(t, parcelas, 1)
	assert.InDelta(t, 500.0, parcelas[0].Valor, 0.005)
}
