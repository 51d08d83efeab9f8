// internal/comissao/calculo.go
package comissao

import "errors"

const (
	TipoFixo       = "fixed"
	TipoPercentual = "percentage"
)

var (
	ErrTipoInvalido       = errors.New("Tipo de comissão inválido. Use 'fixed' ou 'percentage'.")
	ErrPercentualInvalido = errors.New("O percentual da comissão deve estar entre 0 e 100.")
	ErrValorFixoInvalido  = errors.New("O valor fixo da comissão deve ser maior que zero.")
)

// CalcularValor deriva o valor devido da comissão. Para tipo fixo o valor é o
// próprio configurado; para percentual é aplicado sobre o total do contrato.
func CalcularValor(tipo string, valor, totalContrato float64) float64 {
	if tipo == TipoPercentual {
		return totalContrato * valor / 100
	}
	return valor
}

// ValidarConfiguracao valida tipo e valor antes de gravar.
func ValidarConfiguracao(tipo string, valor float64) error {
	switch tipo {
	case TipoPercentual:
		if valor < 0 || valor > 100 {
			return ErrPercentualInvalido
		}
	case TipoFixo:
		if valor <= 0 {
			return ErrValorFixoInvalido
		}
	default:
		return ErrTipoInvalido
	}
	return nil
}
