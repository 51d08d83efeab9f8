// internal/contrato/cronograma.go
package contrato

import (
	"math"
	"time"

	"github.com/vitorhaoliveira/easy-buffet-api/internal/pagamento"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/parcela"
)

// GerarParcelas monta o cronograma de um contrato novo: divisão igual do
// valor total com vencimentos mensais. As parcelas são arredondadas para
// baixo no centavo e a primeira absorve a sobra, de modo que a soma das
// parcelas seja exatamente o valor total do contrato.
func GerarParcelas(contratoID uint, valorTotal float64, qtd int, primeiroVencimento time.Time) []parcela.Parcela {
	if qtd < 1 {
		qtd = 1
	}

	base := math.Floor(valorTotal/float64(qtd)*100) / 100
	primeira := valorTotal - base*float64(qtd-1)

	parcelas := make([]parcela.Parcela, 0, qtd)
	for i := 0; i < qtd; i++ {
		valor := base
		if i == 0 {
			valor = primeira
		}
		parcelas = append(parcelas, parcela.Parcela{
			ContratoID:     contratoID,
			Valor:          valor,
			DataVencimento: primeiroVencimento.AddDate(0, i, 0),
			Status:         string(pagamento.StatusPendente),
		})
	}
	return parcelas
}
