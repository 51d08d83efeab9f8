package assinatura

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/vitorhaoliveira/easy-buffet-api/internal/auth"
)

// RequireAssinaturaAtiva bloqueia rotas de operação para usuários sem
// assinatura ativa. Roda depois do middleware de autenticação. Usuário sem
// registro de assinatura é tratado como inadimplente.
func RequireAssinaturaAtiva(repo *Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			usuarioID, ok := auth.UsuarioDoContexto(r.Context())
			if !ok {
				http.Error(w, "Token ausente", http.StatusUnauthorized)
				return
			}

			a, err := repo.FindByUsuarioID(usuarioID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					http.Error(w, "Assinatura inativa ou vencida", http.StatusPaymentRequired)
					return
				}
				http.Error(w, "Erro ao verificar assinatura", http.StatusInternalServerError)
				return
			}
			if !a.Ativa(time.Now()) {
				http.Error(w, "Assinatura inativa ou vencida", http.StatusPaymentRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
