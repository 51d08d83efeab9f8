package assinatura

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/vitorhaoliveira/easy-buffet-api/internal/auth"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no PUT /assinatura
type AtualizarAssinaturaDTO struct {
	Plano    string     `json:"plano"`
	Status   string     `json:"status"`
	ExpiraEm *time.Time `json:"expiraEm"`
}

// GET /assinatura
// Retorna a assinatura do usuário autenticado.
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Token ausente", http.StatusUnauthorized)
		return
	}

	a, err := h.Repo.FindByUsuarioID(usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Assinatura não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar assinatura", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// PUT /assinatura
// Cria ou atualiza a assinatura do usuário autenticado.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Token ausente", http.StatusUnauthorized)
		return
	}

	var dto AtualizarAssinaturaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	switch dto.Status {
	case StatusAtiva, StatusInadimplente, StatusCancelada:
	default:
		http.Error(w, "Status de assinatura inválido", http.StatusUnprocessableEntity)
		return
	}

	a, err := h.Repo.FindByUsuarioID(usuarioID)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		a = &Assinatura{UsuarioID: usuarioID}
	default:
		http.Error(w, "Erro ao buscar assinatura", http.StatusInternalServerError)
		return
	}

	if dto.Plano != "" {
		a.Plano = dto.Plano
	}
	a.Status = dto.Status
	a.ExpiraEm = dto.ExpiraEm

	if err := h.Repo.Save(a); err != nil {
		http.Error(w, "Erro ao salvar assinatura", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}
