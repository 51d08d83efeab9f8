// internal/apiclient/client.go
// Cliente tipado do backend, usado pelos aplicativos e por integrações.
// Regras de erro: 422 em pagamento de parcela vira a mesma mensagem fixa da
// validação local; 404 ao buscar comissão é estado "sem comissão", não erro.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vitorhaoliveira/easy-buffet-api/internal/pagamento"
)

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New cria um cliente com timeout padrão de 15s.
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

/* ============================== Payloads ============================== */

type Parcela struct {
	ID             uint       `json:"id"`
	ContratoID     uint       `json:"contratoId"`
	Valor          float64    `json:"valor"`
	DataVencimento time.Time  `json:"dataVencimento"`
	Status         string     `json:"status"`
	DataPagamento  *time.Time `json:"dataPagamento,omitempty"`
	ValorPago      *float64   `json:"valorPago,omitempty"`
	FormaPagamento string     `json:"formaPagamento,omitempty"`
	Observacoes    string     `json:"observacoes,omitempty"`
}

type PagamentoAvulso struct {
	ID             uint      `json:"id"`
	ContratoID     uint      `json:"contratoId"`
	Valor          float64   `json:"valor"`
	DataPagamento  time.Time `json:"dataPagamento"`
	FormaPagamento string    `json:"formaPagamento,omitempty"`
}

type Contrato struct {
	ID          uint                     `json:"id"`
	ClienteID   uint                     `json:"clienteId"`
	ValorTotal  pagamento.ValorFlexivel  `json:"valorTotal"`
	QtdParcelas int                      `json:"qtdParcelas"`
	// Saldos pré-calculados pelo servidor; podem vir como string ou faltar.
	TotalPago      *pagamento.ValorFlexivel `json:"totalPago"`
	SaldoRestante  *pagamento.ValorFlexivel `json:"saldoRestante"`
	DataFechamento *time.Time               `json:"dataFechamento,omitempty"`

	Parcelas          []Parcela         `json:"parcelas,omitempty"`
	PagamentosAvulsos []PagamentoAvulso `json:"pagamentosAvulsos,omitempty"`
}

// Saldos devolve total pago e saldo restante do contrato. Os campos enviados
// pelo servidor têm precedência; a fórmula local é só o fallback quando o
// payload não os traz.
func (c *Contrato) Saldos() (totalPago, saldo float64) {
	if c.TotalPago != nil && c.SaldoRestante != nil {
		return c.TotalPago.Float(), c.SaldoRestante.Float()
	}
	itens := make([]pagamento.ItemParcela, 0, len(c.Parcelas))
	for _, p := range c.Parcelas {
		itens = append(itens, pagamento.ItemParcela{Status: p.Status, ValorPago: p.ValorPago})
	}
	avulsos := make([]float64, 0, len(c.PagamentosAvulsos))
	for _, a := range c.PagamentosAvulsos {
		avulsos = append(avulsos, a.Valor)
	}
	return pagamento.CalcularSaldo(c.ValorTotal.Float(), itens, avulsos)
}

type Comissao struct {
	ID             uint       `json:"id"`
	ContratoID     uint       `json:"contratoId"`
	Tipo           string     `json:"tipo"`
	Valor          float64    `json:"valor"`
	VendedorID     *uint      `json:"vendedorId,omitempty"`
	Observacoes    string     `json:"observacoes,omitempty"`
	Pago           bool       `json:"pago"`
	PagoEm         *time.Time `json:"pagoEm,omitempty"`
	ValorPago      *float64   `json:"valorPago,omitempty"`
	ValorCalculado float64    `json:"valorCalculado"`
}

type PagamentoParcelaRequest struct {
	DataPagamento  *time.Time `json:"dataPagamento,omitempty"`
	ValorPago      float64    `json:"valorPago"`
	FormaPagamento string     `json:"formaPagamento,omitempty"`
	Observacoes    string     `json:"observacoes,omitempty"`
}

type AtualizarParcelaRequest struct {
	Status         string     `json:"status"`
	DataVencimento time.Time  `json:"dataVencimento"`
	DataPagamento  *time.Time `json:"dataPagamento,omitempty"`
	ValorPago      *float64   `json:"valorPago,omitempty"`
	FormaPagamento string     `json:"formaPagamento,omitempty"`
	Observacoes    string     `json:"observacoes,omitempty"`
}

type DefinirComissaoRequest struct {
	Tipo        string  `json:"tipo"`
	Valor       float64 `json:"valor"`
	VendedorID  *uint   `json:"vendedorId,omitempty"`
	Observacoes string  `json:"observacoes,omitempty"`
}

type PagarComissaoRequest struct {
	ValorPago *float64 `json:"valorPago,omitempty"`
}

/* ============================== Transporte ============================== */

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) (int, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	if resp.StatusCode >= 400 {
		return resp.StatusCode, &ErroAPI{StatusCode: resp.StatusCode, Mensagem: extrairMensagem(raw)}
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

/* ============================== Contratos ============================== */

// BuscarContrato carrega o contrato com parcelas, avulsos e saldos.
func (c *Client) BuscarContrato(ctx context.Context, id uint) (*Contrato, error) {
	var out Contrato
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/contratos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListarParcelas lista as parcelas de um contrato.
func (c *Client) ListarParcelas(ctx context.Context, contratoID uint) ([]Parcela, error) {
	var out []Parcela
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/contratos/%d/parcelas", contratoID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

/* ============================== Parcelas ============================== */

// PagarParcela aplica um pagamento. Rejeição 422 do servidor é convertida na
// mesma mensagem fixa da validação local, para o usuário ver uma única regra
// independente da camada que barrou.
func (c *Client) PagarParcela(ctx context.Context, parcelaID uint, req PagamentoParcelaRequest) (*Parcela, error) {
	var out Parcela
	status, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/parcelas/%d/pagamento", parcelaID), req, &out)
	if err != nil {
		if status == http.StatusUnprocessableEntity {
			return nil, pagamento.ErrValorDiferenteDaParcela
		}
		return nil, err
	}
	return &out, nil
}

// AtualizarParcela edita a parcela; mesma conversão do 422.
func (c *Client) AtualizarParcela(ctx context.Context, parcelaID uint, req AtualizarParcelaRequest) (*Parcela, error) {
	var out Parcela
	status, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/parcelas/%d", parcelaID), req, &out)
	if err != nil {
		if status == http.StatusUnprocessableEntity {
			return nil, pagamento.ErrValorDiferenteDaParcela
		}
		return nil, err
	}
	return &out, nil
}

/* ============================== Comissão ============================== */

// BuscarComissao devolve a comissão do contrato. 404 significa "contrato sem
// comissão configurada" e retorna (nil, nil).
func (c *Client) BuscarComissao(ctx context.Context, contratoID uint) (*Comissao, error) {
	var out Comissao
	status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/contratos/%d/comissao", contratoID), nil, &out)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) DefinirComissao(ctx context.Context, contratoID uint, req DefinirComissaoRequest) (*Comissao, error) {
	var out Comissao
	if _, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/contratos/%d/comissao", contratoID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PagarComissao(ctx context.Context, contratoID uint, req PagarComissaoRequest) (*Comissao, error) {
	var out Comissao
	if _, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/contratos/%d/comissao/pagar", contratoID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EstornarComissao(ctx context.Context, contratoID uint) (*Comissao, error) {
	var out Comissao
	if _, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/contratos/%d/comissao/estornar", contratoID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoverComissao(ctx context.Context, contratoID uint) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/contratos/%d/comissao", contratoID), nil, nil)
	return err
}
