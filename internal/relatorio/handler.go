package relatorio

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// RelatorioMensal é a resposta do GET /relatorios/mensal.
type RelatorioMensal struct {
	Ano  int `json:"ano"`
	Mes  int `json:"mes"`
	Qtd  struct {
		Eventos int64 `json:"eventos"`
	} `json:"quantidades"`
	TotalParcelas     float64            `json:"totalParcelas"`
	TotalAvulsos      float64            `json:"totalAvulsos"`
	TotalRecebido     float64            `json:"totalRecebido"`
	TotalComissoes    float64            `json:"totalComissoes"`
	PorFormaPagamento map[string]float64 `json:"porFormaPagamento"`
}

// GET /relatorios/mensal?ano=2026&mes=3
func (h *Handler) Mensal(w http.ResponseWriter, r *http.Request) {
	agora := time.Now()
	ano, err := strconv.Atoi(r.URL.Query().Get("ano"))
	if err != nil {
		ano = agora.Year()
	}
	mes, err := strconv.Atoi(r.URL.Query().Get("mes"))
	if err != nil || mes < 1 || mes > 12 {
		mes = int(agora.Month())
	}

	inicio, fim := JanelaDoMes(ano, time.Month(mes))

	parcelas, err := h.Repo.ParcelasPagasNoPeriodo(inicio, fim)
	if err != nil {
		http.Error(w, "Erro ao consultar parcelas do período", http.StatusInternalServerError)
		return
	}
	avulsos, err := h.Repo.AvulsosNoPeriodo(inicio, fim)
	if err != nil {
		http.Error(w, "Erro ao consultar pagamentos avulsos do período", http.StatusInternalServerError)
		return
	}
	comissoes, err := h.Repo.ComissoesPagasNoPeriodo(inicio, fim)
	if err != nil {
		http.Error(w, "Erro ao consultar comissões do período", http.StatusInternalServerError)
		return
	}
	eventos, err := h.Repo.EventosNoPeriodo(inicio, fim)
	if err != nil {
		http.Error(w, "Erro ao consultar eventos do período", http.StatusInternalServerError)
		return
	}

	rel := RelatorioMensal{
		Ano:               ano,
		Mes:               mes,
		TotalComissoes:    comissoes,
		PorFormaPagamento: make(map[string]float64),
	}
	rel.Qtd.Eventos = eventos

	for _, p := range parcelas {
		rel.TotalParcelas += p.Valor
		rel.PorFormaPagamento[formaOuOutros(p.FormaPagamento)] += p.Valor
	}
	for _, a := range avulsos {
		rel.TotalAvulsos += a.Valor
		rel.PorFormaPagamento[formaOuOutros(a.FormaPagamento)] += a.Valor
	}
	rel.TotalRecebido = rel.TotalParcelas + rel.TotalAvulsos

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rel)
}

// GET /relatorios/anual?ano=2026
// Recebimentos agrupados por mês, para o gráfico do painel.
func (h *Handler) Anual(w http.ResponseWriter, r *http.Request) {
	ano, err := strconv.Atoi(r.URL.Query().Get("ano"))
	if err != nil {
		ano = time.Now().Year()
	}

	inicio, _ := JanelaDoMes(ano, time.January)
	fim := inicio.AddDate(1, 0, 0)

	parcelas, err := h.Repo.ParcelasPagasNoPeriodo(inicio, fim)
	if err != nil {
		http.Error(w, "Erro ao consultar parcelas do período", http.StatusInternalServerError)
		return
	}
	avulsos, err := h.Repo.AvulsosNoPeriodo(inicio, fim)
	if err != nil {
		http.Error(w, "Erro ao consultar pagamentos avulsos do período", http.StatusInternalServerError)
		return
	}

	lancamentos := make([]Lancamento, 0, len(parcelas)+len(avulsos))
	for _, p := range parcelas {
		lancamentos = append(lancamentos, Lancamento{Data: p.Data, Valor: p.Valor})
	}
	for _, a := range avulsos {
		lancamentos = append(lancamentos, Lancamento{Data: a.Data, Valor: a.Valor})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"ano":           ano,
		"totaisPorMes":  TotaisPorMes(lancamentos),
		"totalRecebido": somar(lancamentos),
	})
}

func formaOuOutros(forma string) string {
	if forma == "" {
		return "outros"
	}
	return forma
}

func somar(ls []Lancamento) float64 {
	var total float64
	for _, l := range ls {
		total += l.Valor
	}
	return total
}
