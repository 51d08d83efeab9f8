// internal/pagamento/validacao.go
package pagamento

import (
	"errors"
	"math"
)

// Tolerância absoluta para comparar valores monetários em float64.
// Absorve arredondamento de centavos; nunca pode passar de meio centavo.
const Tolerancia = 0.005

// Mensagens fixas exibidas ao usuário. A de valor divergente precisa ser
// idêntica em todos os pontos de entrada (pagamento, edição, cliente HTTP).
var (
	ErrValorDiferenteDaParcela = errors.New("Com mais de uma parcela, o valor pago deve ser igual ao valor total da parcela.")
	ErrValorNaoPositivo        = errors.New("O valor pago deve ser maior que zero.")
)

// ValidarValorPago decide se um pagamento pode ser aplicado a uma parcela.
//
// Regra: com duas ou mais parcelas no contrato, o valor pago deve ser igual ao
// valor nominal da parcela (dentro da tolerância). Com uma única parcela —
// ou quando a quantidade não pode ser determinada — qualquer valor positivo é
// aceito, inclusive pagamento parcial. A assimetria entre os dois ramos é
// comportamento do produto; ver DESIGN.md.
func ValidarValorPago(valorParcela, valorPago float64, qtdParcelas int) error {
	if valorPago <= 0 {
		return ErrValorNaoPositivo
	}
	if qtdParcelas < 2 {
		return nil
	}
	if math.Abs(valorPago-valorParcela) > Tolerancia {
		return ErrValorDiferenteDaParcela
	}
	return nil
}
