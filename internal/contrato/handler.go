package contrato

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vitorhaoliveira/easy-buffet-api/internal/comissao"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/pagamento"
)

// Handler gerencia as rotas de contrato
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /contratos
// Cria o contrato e gera o cronograma de parcelas na mesma transação.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarContratoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.ClienteID == 0 {
		http.Error(w, "Cliente do contrato é obrigatório", http.StatusUnprocessableEntity)
		return
	}
	if dto.ValorTotal <= 0 {
		http.Error(w, "O valor total do contrato deve ser maior que zero.", http.StatusUnprocessableEntity)
		return
	}
	if dto.QtdParcelas < 1 {
		http.Error(w, "A quantidade de parcelas deve ser no mínimo 1.", http.StatusUnprocessableEntity)
		return
	}

	primeiroVencimento := dto.PrimeiroVencimento
	if primeiroVencimento.IsZero() {
		primeiroVencimento = time.Now().AddDate(0, 1, 0)
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Não foi possível iniciar transação", http.StatusInternalServerError)
		return
	}

	c := Contrato{
		ClienteID:   dto.ClienteID,
		EventoID:    dto.EventoID,
		ValorTotal:  dto.ValorTotal,
		QtdParcelas: dto.QtdParcelas,
		Observacoes: dto.Observacoes,
	}
	if err := tx.Create(&c).Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao criar contrato", http.StatusInternalServerError)
		return
	}

	parcelas := GerarParcelas(c.ID, c.ValorTotal, c.QtdParcelas, primeiroVencimento)
	if err := tx.Create(&parcelas).Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao gerar parcelas do contrato", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	c.Parcelas = parcelas
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /contratos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /clientes/{id}/contratos
func (h *Handler) ListarPorCliente(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de cliente inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListByClienteID(uint(cid))
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /contratos/{id}
// Detalhe com parcelas, avulsos, comissão e saldos derivados.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	itens := make([]pagamento.ItemParcela, 0, len(c.Parcelas))
	for _, p := range c.Parcelas {
		itens = append(itens, pagamento.ItemParcela{Status: p.Status, ValorPago: p.ValorPago})
	}
	avulsos := make([]float64, 0, len(c.PagamentosAvulsos))
	for _, a := range c.PagamentosAvulsos {
		avulsos = append(avulsos, a.Valor)
	}
	c.TotalPago, c.SaldoRestante = pagamento.CalcularSaldo(c.ValorTotal, itens, avulsos)

	if c.Comissao != nil {
		c.Comissao.ValorCalculado = comissao.CalcularValor(c.Comissao.Tipo, c.Comissao.Valor, c.ValorTotal)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// PUT /contratos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	var dto AtualizarContratoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.ValorTotal <= 0 {
		http.Error(w, "O valor total do contrato deve ser maior que zero.", http.StatusUnprocessableEntity)
		return
	}

	c.EventoID = dto.EventoID
	c.ValorTotal = dto.ValorTotal
	c.Observacoes = dto.Observacoes

	if err := h.Repo.Update(c); err != nil {
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// POST /contratos/{id}/encerrar
// Marca a data de fechamento; a partir daqui o contrato não aceita novos
// pagamentos nem novos itens.
func (h *Handler) Encerrar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	if c.DataFechamento != nil {
		http.Error(w, "Contrato já está encerrado", http.StatusConflict)
		return
	}

	agora := time.Now()
	c.DataFechamento = &agora
	if err := h.Repo.Update(c); err != nil {
		http.Error(w, "Erro ao encerrar contrato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// DELETE /contratos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(c); err != nil {
		http.Error(w, "Erro ao excluir contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
