// internal/comissao/dto.go
package comissao

// DefinirComissaoDTO é o corpo do PUT /contratos/{id}/comissao.
type DefinirComissaoDTO struct {
	Tipo        string  `json:"tipo"`
	Valor       float64 `json:"valor"`
	VendedorID  *uint   `json:"vendedorId"`
	Observacoes string  `json:"observacoes"`
}

// PagarComissaoDTO é o corpo do POST /contratos/{id}/comissao/pagar.
// ValorPago ausente assume o valor calculado da comissão.
type PagarComissaoDTO struct {
	ValorPago *float64 `json:"valorPago"`
}
