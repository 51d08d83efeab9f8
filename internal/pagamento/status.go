// internal/pagamento/status.go
package pagamento

import "strings"

// Status canônico de uma parcela. O banco e os front-ends históricos gravam
// tanto os rótulos em português ("Pago", "Pendente", "Atrasado") quanto os
// códigos da API em inglês, em qualquer caixa.
type Status string

const (
	StatusPago     Status = "paid"
	StatusPendente Status = "pending"
	StatusAtrasado Status = "overdue"
)

// NormalizarStatus converte qualquer representação de status para o código
// canônico. Valores desconhecidos viram "pending" — nunca erro.
func NormalizarStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pago", "paid":
		return StatusPago
	case "atrasado", "overdue":
		return StatusAtrasado
	default:
		return StatusPendente
	}
}

// EstaPago informa se o status bruto representa uma parcela quitada.
func EstaPago(s string) bool {
	return NormalizarStatus(s) == StatusPago
}
