package pagamentoavulso

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST /contratos/{id}/pagamentos-avulsos
type PagamentoAvulsoCreateDTO struct {
	Valor          float64    `json:"valor"`
	DataPagamento  *time.Time `json:"dataPagamento"`
	FormaPagamento string     `json:"formaPagamento"`
	Observacoes    string     `json:"observacoes"`
}

// POST /contratos/{id}/pagamentos-avulsos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	var dto PagamentoAvulsoCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Valor <= 0 {
		http.Error(w, "O valor pago deve ser maior que zero.", http.StatusUnprocessableEntity)
		return
	}

	fechamento, err := h.Repo.DataFechamentoDoContrato(uint(cid))
	if err != nil {
		http.Error(w, "Erro ao buscar contrato", http.StatusInternalServerError)
		return
	}
	if fechamento != nil {
		http.Error(w, "Contrato encerrado não aceita novos pagamentos", http.StatusConflict)
		return
	}

	dataPagamento := time.Now()
	if dto.DataPagamento != nil {
		dataPagamento = *dto.DataPagamento
	}

	p := &PagamentoAvulso{
		ContratoID:     uint(cid),
		Valor:          dto.Valor,
		DataPagamento:  dataPagamento,
		FormaPagamento: dto.FormaPagamento,
		Observacoes:    dto.Observacoes,
	}

	if err := h.Repo.Create(p); err != nil {
		http.Error(w, "Erro ao registrar pagamento avulso", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /contratos/{id}/pagamentos-avulsos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.ListByContratoID(uint(cid))
	if err != nil {
		http.Error(w, "Erro ao buscar pagamentos avulsos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// DELETE /pagamentos-avulsos/{id}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do pagamento avulso inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repo.FindByID(uint(id)); err != nil {
		http.Error(w, "Pagamento avulso não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "Erro ao remover pagamento avulso", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
