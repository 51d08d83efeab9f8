package parcela

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vitorhaoliveira/easy-buffet-api/internal/pagamento"
)

/* ============================== Handler & DTOs ============================== */

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST /parcelas/{pid}/pagamento
type PagamentoDTO struct {
	DataPagamento  *time.Time `json:"dataPagamento"`
	ValorPago      float64    `json:"valorPago"`
	FormaPagamento string     `json:"formaPagamento"`
	Observacoes    string     `json:"observacoes"`
}

// DTO usado no PUT /parcelas/{pid}
type ParcelaUpdateDTO struct {
	Status         string     `json:"status"`
	DataVencimento time.Time  `json:"dataVencimento"`
	DataPagamento  *time.Time `json:"dataPagamento"`
	ValorPago      *float64   `json:"valorPago"`
	FormaPagamento string     `json:"formaPagamento"`
	Observacoes    string     `json:"observacoes"`
}

/* ============================== Utilidades ============================== */

// qtdParcelasDoContrato resolve a quantidade de parcelas usada na política de
// pagamento: metadado do contrato quando preenchido, senão contagem das
// parcelas carregadas. Indeterminado fica 0, que cai no ramo permissivo.
func (h *Handler) qtdParcelasDoContrato(meta *DadosContrato, contratoID uint) int {
	if meta != nil && meta.QtdParcelas > 0 {
		return meta.QtdParcelas
	}
	n, err := h.Repo.CountByContratoID(contratoID)
	if err != nil {
		return 0
	}
	return int(n)
}

/* ============================== Endpoints ============================== */

// GET /contratos/{id}/parcelas
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	parcelas, err := h.Repo.ListByContratoID(uint(cid))
	if err != nil {
		http.Error(w, "Erro ao buscar parcelas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcelas)
}

// POST /parcelas/{pid}/pagamento
// Aplica um pagamento à parcela. A política de valor é a mesma em todos os
// pontos de entrada: com duas ou mais parcelas o valor pago deve bater com o
// valor nominal da parcela.
func (h *Handler) Pagar(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	var dto PagamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	meta, err := h.Repo.DadosDoContrato(p.ContratoID)
	if err != nil {
		http.Error(w, "Erro ao buscar contrato da parcela", http.StatusInternalServerError)
		return
	}
	if meta != nil && meta.DataFechamento != nil {
		http.Error(w, ErrContratoEncerrado.Error(), http.StatusConflict)
		return
	}

	qtd := h.qtdParcelasDoContrato(meta, p.ContratoID)
	if err := pagamento.ValidarValorPago(p.Valor, dto.ValorPago, qtd); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	agora := time.Now()
	dataPagamento := dto.DataPagamento
	if dataPagamento == nil {
		dataPagamento = &agora
	}

	p.Status = string(pagamento.StatusPago)
	p.DataPagamento = dataPagamento
	p.ValorPago = &dto.ValorPago
	p.FormaPagamento = dto.FormaPagamento
	p.Observacoes = dto.Observacoes

	if err := h.Repo.Update(p); err != nil {
		http.Error(w, "Erro ao registrar pagamento da parcela", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// PUT /parcelas/{pid}
// Edição completa da parcela. Status diferente de pago limpa os campos de
// pagamento; status pago exige valor pago válido pela mesma política do
// endpoint de pagamento.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	var dto ParcelaUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	encerrado := false
	qtd := 0
	if pagamento.NormalizarStatus(dto.Status) == pagamento.StatusPago {
		meta, err := h.Repo.DadosDoContrato(p.ContratoID)
		if err != nil {
			http.Error(w, "Erro ao buscar contrato da parcela", http.StatusInternalServerError)
			return
		}
		encerrado = meta != nil && meta.DataFechamento != nil
		qtd = h.qtdParcelasDoContrato(meta, p.ContratoID)
	}

	if err := AplicarEdicao(p, dto, qtd, encerrado, time.Now()); err != nil {
		if errors.Is(err, ErrContratoEncerrado) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err := h.Repo.Update(p); err != nil {
		http.Error(w, "Erro ao atualizar a parcela", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}
