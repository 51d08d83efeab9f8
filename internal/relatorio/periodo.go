// internal/relatorio/periodo.go
package relatorio

import (
	"fmt"
	"time"
)

// JanelaDoMes devolve o intervalo [início do mês, início do mês seguinte)
// usado nas agregações do relatório mensal.
func JanelaDoMes(ano int, mes time.Month) (inicio, fim time.Time) {
	inicio = time.Date(ano, mes, 1, 0, 0, 0, 0, time.UTC)
	fim = inicio.AddDate(0, 1, 0)
	return inicio, fim
}

// ChaveDoMes formata a chave de agrupamento "AAAA-MM" de uma data.
func ChaveDoMes(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// Lancamento é um valor recebido ou pago em uma data, para agrupamento.
type Lancamento struct {
	Data  time.Time
	Valor float64
}

// TotaisPorMes soma lançamentos agrupados pela chave "AAAA-MM".
func TotaisPorMes(lancamentos []Lancamento) map[string]float64 {
	totais := make(map[string]float64)
	for _, l := range lancamentos {
		totais[ChaveDoMes(l.Data)] += l.Valor
	}
	return totais
}
