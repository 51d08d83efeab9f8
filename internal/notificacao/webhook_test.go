package notificacao

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnviarAlertaDocumentoDuplicado(t *testing.T) {
	recebido := make(chan []byte, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		recebido <- body
	}))
	defer srv.Close()

	t.Setenv("WEBHOOK_ALERTA_URL", srv.URL)
	EnviarAlertaDocumentoDuplicado("12345678000190")

	var payload map[string]string
	require.NoError(t, json.Unmarshal(<-recebido, &payload))
	assert.Equal(t, "12345678000190", payload["documento"])
	assert.NotEmpty(t, payload["mensagem"])
}

func TestEnviarAlertaDocumentoDuplicado_SemURLNaoFazNada(t *testing.T) {
	t.Setenv("WEBHOOK_ALERTA_URL", "")
	// Não deve entrar em pânico nem tentar rede.
	EnviarAlertaDocumentoDuplicado("123")
}
