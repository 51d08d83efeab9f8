// internal/pagamento/saldo.go
package pagamento

// ItemParcela é a projeção mínima de uma parcela usada no cálculo de saldo.
type ItemParcela struct {
	Status    string
	ValorPago *float64
}

// CalcularSaldo soma o que já foi recebido de um contrato: pagamentos das
// parcelas quitadas mais os pagamentos avulsos. O saldo pode ficar negativo
// quando há pagamento a maior via avulsos — não é estado de erro.
func CalcularSaldo(valorTotal float64, parcelas []ItemParcela, avulsos []float64) (totalPago, saldo float64) {
	for _, p := range parcelas {
		if EstaPago(p.Status) && p.ValorPago != nil {
			totalPago += *p.ValorPago
		}
	}
	for _, v := range avulsos {
		totalPago += v
	}
	return totalPago, valorTotal - totalPago
}
