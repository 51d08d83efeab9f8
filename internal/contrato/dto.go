// internal/contrato/dto.go
package contrato

import "time"

// CriarContratoDTO é o corpo do POST /contratos.
type CriarContratoDTO struct {
	ClienteID          uint      `json:"clienteId"`
	EventoID           *uint     `json:"eventoId"`
	ValorTotal         float64   `json:"valorTotal"`
	QtdParcelas        int       `json:"qtdParcelas"`
	PrimeiroVencimento time.Time `json:"primeiroVencimento"`
	Observacoes        string    `json:"observacoes"`
}

// AtualizarContratoDTO é o corpo do PUT /contratos/{id}.
// Não mexe no cronograma já gerado.
type AtualizarContratoDTO struct {
	EventoID    *uint   `json:"eventoId"`
	ValorTotal  float64 `json:"valorTotal"`
	Observacoes string  `json:"observacoes"`
}
