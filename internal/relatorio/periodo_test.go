package relatorio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJanelaDoMes(t *testing.T) {
	inicio, fim := JanelaDoMes(2026, time.March)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), inicio)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), fim)

	// Virada de ano.
	inicio, fim = JanelaDoMes(2025, time.December)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), inicio)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), fim)
}

func TestChaveDoMes(t *testing.T) {
	assert.Equal(t, "2026-03", ChaveDoMes(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-12", ChaveDoMes(time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)))
}

func TestTotaisPorMes(t *testing.T) {
	lancamentos := []Lancamento{
		{Data: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Valor: 100},
		{Data: time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC), Valor: 250},
		{Data: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), Valor: 80},
	}
	totais := TotaisPorMes(lancamentos)
	assert.Len(t, totais, 2)
	assert.InDelta(t, 350.0, totais["2026-03"], 1e-9)
	assert.InDelta(t, 80.0, totais["2026-04"], 1e-9)
}
