package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/pterm/pterm"
	"github.com/robfig/cron/v3"
)

// DefaultPollInterval é o intervalo de atualização do dashboard.
const DefaultPollInterval = 60 * time.Second

// Chart é um gráfico de vida longa: criado uma vez, só os dados mudam.
type Chart struct {
	title  string
	labels []string
	values []float64
}

// NewChart cria um gráfico vazio.
func NewChart(title string) *Chart {
	return &Chart{title: title}
}

// SetData substitui o conjunto de dados.
func (c *Chart) SetData(labels []string, values []float64) {
	c.labels = append([]string(nil), labels...)
	c.values = append([]float64(nil), values...)
}

// Data devolve uma cópia pronta para renderização.
func (c *Chart) Data() types.ChartData {
	return types.ChartData{
		Title:  c.title,
		Labels: append([]string(nil), c.labels...),
		Values: append([]float64(nil), c.values...),
	}
}

// DashboardView é onde o dashboard se desenha.
type DashboardView interface {
	RenderSummary(summary entity.Summary)
	RenderAlerts(alerts []string, allClear bool)
	RenderCharts(category, monthly *Chart)
	ShowError(message string)
}

type tickResult struct {
	seq  uint64
	data entity.DashboardData
	err  error
}

// DashboardPoller atualiza o dashboard em intervalo fixo.
type DashboardPoller struct {
	repo     repository.DashboardRepository
	view     DashboardView
	userID   int64
	interval time.Duration
	logger   *pterm.Logger

	categoryChart *Chart
	monthlyChart  *Chart

	// newTicker é substituído nos testes.
	newTicker func(d time.Duration) (<-chan time.Time, func())

	seq      uint64
	rendered uint64
	last     entity.DashboardData
	dropped  atomic.Int64
}

// NewDashboardPoller cria o poller. interval <= 0 usa DefaultPollInterval.
func NewDashboardPoller(
	repo repository.DashboardRepository,
	view DashboardView,
	userID int64,
	interval time.Duration,
	logger *pterm.Logger,
) *DashboardPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &DashboardPoller{
		repo:          repo,
		view:          view,
		userID:        userID,
		interval:      interval,
		logger:        logger,
		categoryChart: NewChart("Expenses by Category"),
		monthlyChart:  NewChart("Monthly Expenses"),
		newTicker:     cronTicker,
	}
}

// cronTicker agenda "@every <d>" num cron e entrega cada disparo no canal.
// Como o time.Ticker, disparos que chegam com o canal cheio são descartados.
// O cron arredonda d para segundos, com mínimo de 1s.
func cronTicker(d time.Duration) (<-chan time.Time, func()) {
	ticks := make(chan time.Time, 1)
	c := cron.New()
	if _, err := c.AddFunc("@every "+d.String(), func() {
		select {
		case ticks <- time.Now():
		default:
		}
	}); err != nil {
		t := time.NewTicker(d)
		return t.C, t.Stop
	}
	c.Start()
	return ticks, func() { <-c.Stop().Done() }
}

// Run busca imediatamente e depois a cada intervalo, até ctx ser cancelado.
// Cada tick busca em sua própria goroutine; requisições em andamento não são
// canceladas e respostas que chegam depois do fim são descartadas. Toda a
// renderização acontece nesta goroutine.
func (p *DashboardPoller) Run(ctx context.Context) error {
	ticks, stop := p.newTicker(p.interval)
	defer stop()

	results := make(chan tickResult)
	done := make(chan struct{})
	defer close(done)

	fetchCtx := context.WithoutCancel(ctx)
	fire := func() {
		p.seq++
		seq := p.seq
		go func() {
			data, err := p.repo.GetDashboard(fetchCtx, p.userID)
			select {
			case results <- tickResult{seq: seq, data: data, err: err}:
			case <-done:
			}
		}()
	}

	fire()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticks:
			fire()
		case r := <-results:
			p.apply(r)
		}
	}
}

// Once executa um único tick de forma síncrona.
func (p *DashboardPoller) Once(ctx context.Context) (entity.DashboardData, error) {
	p.seq++
	data, err := p.repo.GetDashboard(ctx, p.userID)
	p.apply(tickResult{seq: p.seq, data: data, err: err})
	if err != nil {
		return entity.DashboardData{}, err
	}
	return data, nil
}

// apply renderiza o resultado, a menos que um tick mais novo já tenha sido renderizado.
func (p *DashboardPoller) apply(r tickResult) {
	if r.seq <= p.rendered {
		p.dropped.Add(1)
		p.logger.Debug("stale dashboard response dropped", p.logger.Args("tick", r.seq, "rendered", p.rendered))
		return
	}
	if r.err != nil {
		p.logger.Warn("dashboard fetch failed", p.logger.Args("tick", r.seq, "error", r.err))
		p.view.ShowError(userMessage(r.err, "Network error. Please try again."))
		return
	}

	p.rendered = r.seq
	p.last = r.data
	p.render(r.data)
}

func (p *DashboardPoller) render(data entity.DashboardData) {
	p.view.RenderSummary(data.Summary)

	alerts := AlertLines(data)
	p.view.RenderAlerts(alerts, len(data.Alerts) == 0)

	labels := make([]string, 0, len(data.CategoryWiseExpenses))
	values := make([]float64, 0, len(data.CategoryWiseExpenses))
	for _, c := range data.CategoryWiseExpenses {
		labels = append(labels, c.Category)
		values = append(values, c.Amount.Float64())
	}
	p.categoryChart.SetData(labels, values)

	labels = make([]string, 0, len(data.MonthlyExpenses))
	values = make([]float64, 0, len(data.MonthlyExpenses))
	for _, m := range data.MonthlyExpenses {
		labels = append(labels, m.Month)
		values = append(values, m.Amount.Float64())
	}
	p.monthlyChart.SetData(labels, values)

	p.view.RenderCharts(p.categoryChart, p.monthlyChart)
}

// Last devolve os dados da última resposta renderizada.
func (p *DashboardPoller) Last() entity.DashboardData {
	return p.last
}

// Dropped conta as respostas descartadas por serem mais antigas que a renderizada.
func (p *DashboardPoller) Dropped() int64 {
	return p.dropped.Load()
}

// AlertLines monta as linhas da lista de alertas.
func AlertLines(data entity.DashboardData) []string {
	var lines []string
	if len(data.Alerts) == 0 {
		lines = append(lines, "All budgets on track!")
	}
	for _, a := range data.Alerts {
		lines = append(lines, fmt.Sprintf("⚠ %s: Over budget! (%s%% of budget used)", a.Category, a.Percent.Decimal().Round(1).String()))
	}
	if data.Summary.Balance.Float64() < 0 {
		lines = append(lines, "Expenses are more than Income")
	}
	return lines
}
