package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func chamarRequireAdmin(t *testing.T, ctx context.Context) *httptest.ResponseRecorder {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	RequireAdmin(next).ServeHTTP(rec, req)
	return rec
}

func TestRequireAdminBloqueiaUsuarioComum(t *testing.T) {
	ctx := context.WithValue(context.Background(), CtxIsAdmin, false)
	rec := chamarRequireAdmin(t, ctx)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminBloqueiaContextoSemClaim(t *testing.T) {
	rec := chamarRequireAdmin(t, context.Background())
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminDeixaAdministradorPassar(t *testing.T) {
	ctx := context.WithValue(context.Background(), CtxIsAdmin, true)
	rec := chamarRequireAdmin(t, ctx)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
