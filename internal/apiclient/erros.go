// internal/apiclient/erros.go
package apiclient

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErroAPI é uma resposta de erro do backend que não tem tratamento
// específico. A mensagem é extraída por melhor esforço do corpo.
type ErroAPI struct {
	StatusCode int
	Mensagem   string
}

func (e *ErroAPI) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Mensagem, e.StatusCode)
}

const mensagemPadrao = "Erro ao comunicar com o servidor. Tente novamente."

// extrairMensagem tenta, nesta ordem: error.error.message, error.message,
// o corpo como texto simples e por fim a mensagem padrão.
func extrairMensagem(body []byte) string {
	var doc struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &doc); err == nil {
		if doc.Error.Message != "" {
			return doc.Error.Message
		}
		if doc.Message != "" {
			return doc.Message
		}
	}
	if texto := strings.TrimSpace(string(body)); texto != "" {
		return texto
	}
	return mensagemPadrao
}
