package comissao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcularValor_Percentual(t *testing.T) {
	assert.InDelta(t, 800.00, CalcularValor(TipoPercentual, 8, 10000), 1e-9)
	assert.InDelta(t, 0.0, CalcularValor(TipoPercentual, 0, 10000), 1e-9)
	assert.InDelta(t, 10000.0, CalcularValor(TipoPercentual, 100, 10000), 1e-9)
}

func TestCalcularValor_FixoIgnoraTotalDoContrato(t *testing.T) {
	assert.InDelta(t, 450.0, CalcularValor(TipoFixo, 450, 10000), 1e-9)
	assert.InDelta(t, 450.0, CalcularValor(TipoFixo, 450, 0), 1e-9)
}

func TestValidarConfiguracao(t *testing.T) {
	assert.NoError(t, ValidarConfiguracao(TipoPercentual, 0))
	assert.NoError(t, ValidarConfiguracao(TipoPercentual, 100))
	assert.ErrorIs(t, ValidarConfiguracao(TipoPercentual, 100.01), ErrPercentualInvalido)
	assert.ErrorIs(t, ValidarConfiguracao(TipoPercentual, -1), ErrPercentualInvalido)

	assert.NoError(t, ValidarConfiguracao(TipoFixo, 0.01))
	assert.ErrorIs(t, ValidarConfiguracao(TipoFixo, 0), ErrValorFixoInvalido)
	assert.ErrorIs(t, ValidarConfiguracao(TipoFixo, -5), ErrValorFixoInvalido)

	assert.ErrorIs(t, ValidarConfiguracao("percentual", 10), ErrTipoInvalido)
}
