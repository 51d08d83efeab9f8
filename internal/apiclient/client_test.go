package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitorhaoliveira/easy-buffet-api/internal/pagamento"
)

func TestPagarParcela_422ViraMensagemFixa(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/parcelas/7/pagamento", r.URL.Path)
		http.Error(w, "valor divergente", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.PagarParcela(context.Background(), 7, PagamentoParcelaRequest{ValorPago: 100})
	require.ErrorIs(t, err, pagamento.ErrValorDiferenteDaParcela)
	assert.Equal(t, "Com mais de uma parcela, o valor pago deve ser igual ao valor total da parcela.", err.Error())
}

func TestBuscarComissao_404NaoEhErro(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Comissão não encontrada", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	comissao, err := c.BuscarComissao(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, comissao)
}

func TestBuscarContrato_SaldosDoServidorTemPrecedencia(t *testing.T) {
	// Servidor manda os totais como string; eles valem mesmo divergindo das
	// parcelas do payload.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 1,
			"valorTotal": "1000.00",
			"qtdParcelas": 2,
			"totalPago": "700.00",
			"saldoRestante": "300.00",
			"parcelas": [
				{"id": 1, "valor": 500, "status": "Pago", "valorPago": 500},
				{"id": 2, "valor": 500, "status": "Pendente"}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	contrato, err := c.BuscarContrato(context.Background(), 1)
	require.NoError(t, err)

	totalPago, saldo := contrato.Saldos()
	assert.InDelta(t, 700.0, totalPago, 1e-9)
	assert.InDelta(t, 300.0, saldo, 1e-9)
}

func TestBuscarContrato_FallbackCalculaSaldoLocalmente(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 1,
			"valorTotal": 1000,
			"qtdParcelas": 2,
			"parcelas": [
				{"id": 1, "valor": 500, "status": "Pago", "valorPago": 500},
				{"id": 2, "valor": 500, "status": "Pendente"}
			],
			"pagamentosAvulsos": [
				{"id": 9, "contratoId": 1, "valor": 200, "dataPagamento": "2026-02-01T00:00:00Z"}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	contrato, err := c.BuscarContrato(context.Background(), 1)
	require.NoError(t, err)

	totalPago, saldo := contrato.Saldos()
	assert.InDelta(t, 700.0, totalPago, 1e-9)
	assert.InDelta(t, 300.0, saldo, 1e-9)
}

func TestErroGenerico_ExtraiMensagemAninhada(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"banco indisponível"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.BuscarContrato(context.Background(), 1)
	require.Error(t, err)

	var apiErr *ErroAPI
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "banco indisponível", apiErr.Mensagem)
}

func TestErroGenerico_MensagemSimplesEFallback(t *testing.T) {
	casos := []struct {
		nome     string
		corpo    string
		esperado string
	}{
		{"message no topo", `{"message":"sem permissão"}`, "sem permissão"},
		{"texto puro", "Erro ao listar contratos\n", "Erro ao listar contratos"},
		{"corpo vazio", "", mensagemPadrao},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(caso.corpo))
			}))
			defer srv.Close()

			c := New(srv.URL, "")
			_, err := c.ListarParcelas(context.Background(), 1)
			var apiErr *ErroAPI
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, caso.esperado, apiErr.Mensagem)
		})
	}
}

func TestAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer meu-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "meu-token")
	_, err := c.ListarParcelas(context.Background(), 1)
	require.NoError(t, err)
}
