package parcela

import (
	"errors"
	"time"

	"github.com/vitorhaoliveira/easy-buffet-api/internal/pagamento"
)

// ErrContratoEncerrado sinaliza tentativa de registrar pagamento em contrato
// já encerrado.
var ErrContratoEncerrado = errors.New("Contrato encerrado não aceita novos pagamentos")

// AplicarEdicao aplica em memória a edição completa de uma parcela. Status
// diferente de pago limpa os campos de pagamento; status pago registra um
// pagamento, o que exige contrato aberto e valor dentro da política de
// pagamento.
func AplicarEdicao(p *Parcela, dto ParcelaUpdateDTO, qtdParcelas int, contratoEncerrado bool, agora time.Time) error {
	status := pagamento.NormalizarStatus(dto.Status)

	if !dto.DataVencimento.IsZero() {
		p.DataVencimento = dto.DataVencimento
	}

	if status != pagamento.StatusPago {
		p.Status = string(status)
		p.DataPagamento = nil
		p.ValorPago = nil
		p.FormaPagamento = ""
		p.Observacoes = dto.Observacoes
		return nil
	}

	if contratoEncerrado {
		return ErrContratoEncerrado
	}

	var valorPago float64
	if dto.ValorPago != nil {
		valorPago = *dto.ValorPago
	}
	if err := pagamento.ValidarValorPago(p.Valor, valorPago, qtdParcelas); err != nil {
		return err
	}

	p.Status = string(pagamento.StatusPago)
	p.ValorPago = &valorPago
	p.FormaPagamento = dto.FormaPagamento
	p.Observacoes = dto.Observacoes
	if dto.DataPagamento != nil {
		p.DataPagamento = dto.DataPagamento
	} else if p.DataPagamento == nil {
		p.DataPagamento = &agora
	}
	return nil
}
