package pagamento

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestValidarValorPago_ParcelaUnicaAceitaParcial(t *testing.T) {
	// Contrato com uma parcela de 1000: pagamento parcial de 400 é aceito.
	assert.NoError(t, ValidarValorPago(1000.00, 400.00, 1))
	// Sem limite superior além de ser positivo.
	assert.NoError(t, ValidarValorPago(1000.00, 1500.00, 1))
	assert.NoError(t, ValidarValorPago(1000.00, 1000.00, 1))
}

func TestValidarValorPago_QuantidadeDesconhecidaEhPermissiva(t *testing.T) {
	assert.NoError(t, ValidarValorPago(1000.00, 123.45, 0))
	assert.NoError(t, ValidarValorPago(1000.00, 123.45, -1))
}

func TestValidarValorPago_ValorNaoPositivo(t *testing.T) {
	assert.ErrorIs(t, ValidarValorPago(1000.00, 0, 1), ErrValorNaoPositivo)
	assert.ErrorIs(t, ValidarValorPago(1000.00, -10, 3), ErrValorNaoPositivo)
}

func TestValidarValorPago_DuasOuMaisParcelasExigeValorIntegral(t *testing.T) {
	// Dentro da tolerância de meio centavo.
	assert.NoError(t, ValidarValorPago(1000.00, 999.995, 2))
	assert.NoError(t, ValidarValorPago(1000.00, 1000.005, 2))

	// Fora da tolerância, para mais ou para menos.
	err := ValidarValorPago(1000.00, 999.99, 2)
	require.ErrorIs(t, err, ErrValorDiferenteDaParcela)
	assert.Equal(t, "Com mais de uma parcela, o valor pago deve ser igual ao valor total da parcela.", err.Error())

	assert.ErrorIs(t, ValidarValorPago(1000.00, 1000.01, 2), ErrValorDiferenteDaParcela)
	assert.ErrorIs(t, ValidarValorPago(500.00, 250.00, 12), ErrValorDiferenteDaParcela)
}

func TestNormalizarStatus(t *testing.T) {
	assert.Equal(t, StatusPago, NormalizarStatus("Pago"))
	assert.Equal(t, StatusPago, NormalizarStatus("paid"))
	assert.Equal(t, StatusPago, NormalizarStatus("PAID"))
	assert.Equal(t, StatusPago, NormalizarStatus("  pago "))
	assert.Equal(t, StatusAtrasado, NormalizarStatus("Atrasado"))
	assert.Equal(t, StatusAtrasado, NormalizarStatus("overdue"))
	assert.Equal(t, StatusPendente, NormalizarStatus("Pendente"))
	assert.Equal(t, StatusPendente, NormalizarStatus("pending"))
	// Desconhecido cai em pendente, nunca em erro.
	assert.Equal(t, StatusPendente, NormalizarStatus("xyz"))
	assert.Equal(t, StatusPendente, NormalizarStatus(""))
	// Idempotência sobre o código canônico.
	assert.Equal(t, StatusPago, NormalizarStatus(string(NormalizarStatus("Pago"))))
}

func TestCalcularSaldo(t *testing.T) {
	parcelas := []ItemParcela{
		{Status: "Pago", ValorPago: f(500)},
		{Status: "Pendente"},
	}
	totalPago, saldo := CalcularSaldo(1000, parcelas, []float64{200})
	assert.InDelta(t, 700.0, totalPago, 1e-9)
	assert.InDelta(t, 300.0, saldo, 1e-9)
}

func TestCalcularSaldo_SaldoNegativoNaoEhErro(t *testing.T) {
	parcelas := []ItemParcela{{Status: "paid", ValorPago: f(1000)}}
	totalPago, saldo := CalcularSaldo(1000, parcelas, []float64{250, 250})
	assert.InDelta(t, 1500.0, totalPago, 1e-9)
	assert.InDelta(t, -500.0, saldo, 1e-9)
}

func TestCalcularSaldo_IgnoraParcelaNaoPagaComValor(t *testing.T) {
	// ValorPago preenchido mas status pendente não conta.
	parcelas := []ItemParcela{{Status: "Pendente", ValorPago: f(500)}}
	totalPago, saldo := CalcularSaldo(1000, parcelas, nil)
	assert.Zero(t, totalPago)
	assert.InDelta(t, 1000.0, saldo, 1e-9)
}

func TestValorFlexivel(t *testing.T) {
	var doc struct {
		TotalPago      ValorFlexivel `json:"totalPago"`
		SaldoRestante  ValorFlexivel `json:"saldoRestante"`
		NaoInterpretou ValorFlexivel `json:"ruim"`
		Nulo           ValorFlexivel `json:"nulo"`
	}
	payload := []byte(`{"totalPago":"1234.56","saldoRestante":300,"ruim":"abc","nulo":null}`)
	require.NoError(t, json.Unmarshal(payload, &doc))
	assert.InDelta(t, 1234.56, doc.TotalPago.Float(), 1e-9)
	assert.InDelta(t, 300.0, doc.SaldoRestante.Float(), 1e-9)
	assert.Zero(t, doc.NaoInterpretou.Float())
	assert.Zero(t, doc.Nulo.Float())
}
