package evento

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /eventos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var e Evento
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if e.ClienteID == 0 {
		http.Error(w, "Cliente do evento é obrigatório", http.StatusUnprocessableEntity)
		return
	}
	if e.Nome == "" {
		http.Error(w, "Nome do evento é obrigatório", http.StatusUnprocessableEntity)
		return
	}
	if e.Data.IsZero() {
		http.Error(w, "Data do evento é obrigatória", http.StatusUnprocessableEntity)
		return
	}
	if e.Status == "" {
		e.Status = "agendado"
	}

	if err := h.Repo.Create(&e); err != nil {
		http.Error(w, "Erro ao salvar evento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(e)
}

// GET /eventos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "Erro ao listar eventos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /clientes/{id}/eventos
func (h *Handler) ListarPorCliente(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de cliente inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListByClienteID(uint(cid))
	if err != nil {
		http.Error(w, "Erro ao listar eventos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /eventos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de evento inválido", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Evento não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// PUT /eventos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de evento inválido", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Evento não encontrado", http.StatusNotFound)
		return
	}

	var dto Evento
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	e.PacoteID = dto.PacoteID
	e.Nome = dto.Nome
	e.Data = dto.Data
	e.Local = dto.Local
	e.QtdConvidados = dto.QtdConvidados
	e.Status = dto.Status
	e.Observacoes = dto.Observacoes

	if err := h.Repo.Update(e); err != nil {
		http.Error(w, "Erro ao atualizar evento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// DELETE /eventos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de evento inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "Erro ao excluir evento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
