package parcela

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitorhaoliveira/easy-buffet-api/internal/pagamento"
)

func parcelaPaga(valor float64) *Parcela {
	pago := valor
	quando := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &Parcela{
		ContratoID:     1,
		Valor:          valor,
		DataVencimento: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Status:         string(pagamento.StatusPago),
		DataPagamento:  &quando,
		ValorPago:      &pago,
		FormaPagamento: "pix",
		Observacoes:    "pago no balcão",
	}
}

func TestAplicarEdicaoReverterParaPendenteLimpaCamposDePagamento(t *testing.T) {
	p := parcelaPaga(500)

	dto := ParcelaUpdateDTO{Status: "pendente", Observacoes: "estorno solicitado"}
	err := AplicarEdicao(p, dto, 3, false, time.Now())
	require.NoError(t, err)

	assert.Equal(t, string(pagamento.StatusPendente), p.Status)
	assert.Nil(t, p.DataPagamento)
	assert.Nil(t, p.ValorPago)
	assert.Empty(t, p.FormaPagamento)
	assert.Equal(t, "estorno solicitado", p.Observacoes)
}

func TestAplicarEdicaoStatusAtrasadoTambemLimpa(t *testing.T) {
	p := parcelaPaga(500)

	err := AplicarEdicao(p, ParcelaUpdateDTO{Status: "overdue"}, 3, false, time.Now())
	require.NoError(t, err)

	assert.Equal(t, string(pagamento.StatusAtrasado), p.Status)
	assert.Nil(t, p.DataPagamento)
	assert.Nil(t, p.ValorPago)
}

func TestAplicarEdicaoNaoPagaEmContratoEncerrado(t *testing.T) {
	p := &Parcela{ContratoID: 1, Valor: 500, Status: string(pagamento.StatusPendente)}

	valor := 500.0
	dto := ParcelaUpdateDTO{Status: "pago", ValorPago: &valor}
	err := AplicarEdicao(p, dto, 3, true, time.Now())

	require.ErrorIs(t, err, ErrContratoEncerrado)
	assert.Equal(t, string(pagamento.StatusPendente), p.Status)
	assert.Nil(t, p.ValorPago)
	assert.Nil(t, p.DataPagamento)
}

func TestAplicarEdicaoValorDivergenteComVariasParcelas(t *testing.T) {
	p := &Parcela{ContratoID: 1, Valor: 500, Status: string(pagamento.StatusPendente)}

	valor := 480.0
	dto := ParcelaUpdateDTO{Status: "pago", ValorPago: &valor}
	err := AplicarEdicao(p, dto, 3, false, time.Now())

	require.ErrorIs(t, err, pagamento.ErrValorDiferenteDaParcela)
	assert.Equal(t, string(pagamento.StatusPendente), p.Status)
}

func TestAplicarEdicaoPagamentoValidoPreencheCampos(t *testing.T) {
	p := &Parcela{ContratoID: 1, Valor: 500, Status: string(pagamento.StatusPendente)}
	agora := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	valor := 500.0
	dto := ParcelaUpdateDTO{Status: "pago", ValorPago: &valor, FormaPagamento: "cartao"}
	err := AplicarEdicao(p, dto, 3, false, agora)
	require.NoError(t, err)

	assert.Equal(t, string(pagamento.StatusPago), p.Status)
	require.NotNil(t, p.ValorPago)
	assert.Equal(t, 500.0, *p.ValorPago)
	assert.Equal(t, "cartao", p.FormaPagamento)
	require.NotNil(t, p.DataPagamento)
	assert.Equal(t, agora, *p.DataPagamento)
}
