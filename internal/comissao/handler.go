package comissao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de comissão de um contrato
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) contratoID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) responder(w http.ResponseWriter, c *Comissao) {
	total, err := h.Repo.ValorTotalDoContrato(c.ContratoID)
	if err != nil {
		http.Error(w, "Erro ao buscar contrato da comissão", http.StatusInternalServerError)
		return
	}
	c.ValorCalculado = CalcularValor(c.Tipo, c.Valor, total)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// GET /contratos/{id}/comissao
// 404 significa "contrato sem comissão configurada"; os clientes tratam como
// estado vazio, não como falha.
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	cid, ok := h.contratoID(w, r)
	if !ok {
		return
	}
	c, err := h.Repo.FindByContratoID(cid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Comissão não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar comissão", http.StatusInternalServerError)
		return
	}
	h.responder(w, c)
}

// PUT /contratos/{id}/comissao
// Cria ou substitui a configuração da comissão do contrato.
func (h *Handler) Definir(w http.ResponseWriter, r *http.Request) {
	cid, ok := h.contratoID(w, r)
	if !ok {
		return
	}

	var dto DefinirComissaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := ValidarConfiguracao(dto.Tipo, dto.Valor); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	existe, err := h.Repo.ContratoExiste(cid)
	if err != nil {
		http.Error(w, "Erro ao buscar contrato", http.StatusInternalServerError)
		return
	}
	if !existe {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	c, err := h.Repo.FindByContratoID(cid)
	switch {
	case err == nil:
		// substitui a configuração; o estado de pagamento é preservado
	case errors.Is(err, gorm.ErrRecordNotFound):
		c = &Comissao{ContratoID: cid}
	default:
		http.Error(w, "Erro ao buscar comissão", http.StatusInternalServerError)
		return
	}

	c.Tipo = dto.Tipo
	c.Valor = dto.Valor
	c.VendedorID = dto.VendedorID
	c.Observacoes = dto.Observacoes

	if err := h.Repo.Save(c); err != nil {
		http.Error(w, "Erro ao salvar comissão", http.StatusInternalServerError)
		return
	}
	h.responder(w, c)
}

// POST /contratos/{id}/comissao/pagar
// Marca a comissão como paga. ValorPago ausente assume o valor calculado.
func (h *Handler) Pagar(w http.ResponseWriter, r *http.Request) {
	cid, ok := h.contratoID(w, r)
	if !ok {
		return
	}

	var dto PagarComissaoDTO
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&dto)
	}

	c, err := h.Repo.FindByContratoID(cid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Comissão não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar comissão", http.StatusInternalServerError)
		return
	}

	valorPago := dto.ValorPago
	if valorPago == nil {
		total, err := h.Repo.ValorTotalDoContrato(cid)
		if err != nil {
			http.Error(w, "Erro ao buscar contrato da comissão", http.StatusInternalServerError)
			return
		}
		v := CalcularValor(c.Tipo, c.Valor, total)
		valorPago = &v
	}

	agora := time.Now()
	c.Pago = true
	c.PagoEm = &agora
	c.ValorPago = valorPago

	if err := h.Repo.Save(c); err != nil {
		http.Error(w, "Erro ao registrar pagamento da comissão", http.StatusInternalServerError)
		return
	}
	h.responder(w, c)
}

// POST /contratos/{id}/comissao/estornar
// Reverte a comissão para não paga, limpando data e valor.
func (h *Handler) Estornar(w http.ResponseWriter, r *http.Request) {
	cid, ok := h.contratoID(w, r)
	if !ok {
		return
	}

	c, err := h.Repo.FindByContratoID(cid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Comissão não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar comissão", http.StatusInternalServerError)
		return
	}

	c.Pago = false
	c.PagoEm = nil
	c.ValorPago = nil

	if err := h.Repo.Save(c); err != nil {
		http.Error(w, "Erro ao estornar comissão", http.StatusInternalServerError)
		return
	}
	h.responder(w, c)
}

// DELETE /contratos/{id}/comissao
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	cid, ok := h.contratoID(w, r)
	if !ok {
		return
	}

	c, err := h.Repo.FindByContratoID(cid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Comissão não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar comissão", http.StatusInternalServerError)
		return
	}

	if err := h.Repo.Delete(c); err != nil {
		http.Error(w, "Erro ao remover comissão", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
