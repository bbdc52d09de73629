package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardData(income, expense float64) entity.DashboardData {
	return entity.DashboardData{
		Summary: entity.Summary{
			TotalIncome:  entity.Amount(income),
			TotalExpense: entity.Amount(expense),
			Balance:      entity.Amount(income - expense),
		},
		CategoryWiseExpenses: []entity.CategoryAmount{{Category: "Food", Amount: entity.Amount(expense)}},
		MonthlyExpenses:      []entity.MonthlyAmount{{Month: "2024-03", Amount: entity.Amount(expense)}},
	}
}

// manualTicker substitui o time.Ticker do poller.
func manualTicker(p *DashboardPoller) chan time.Time {
	ticks := make(chan time.Time)
	p.newTicker = func(time.Duration) (<-chan time.Time, func()) {
		return ticks, func() {}
	}
	return ticks
}

func awaitCall(t *testing.T, repo *gatedDashboardRepo) chan dashboardReply {
	t.Helper()
	select {
	case reply := <-repo.calls:
		return reply
	case <-time.After(2 * time.Second):
		t.Fatal("dashboard was not fetched")
		return nil
	}
}

func TestDashboardPoller_LaterTickWinsOverSlowEarlierTick(t *testing.T) {
	repo := newGatedDashboardRepo()
	view := &fakeDashboardView{}
	p := NewDashboardPoller(repo, view, 1, time.Minute, nil)
	ticks := manualTicker(p)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	first := awaitCall(t, repo)
	ticks <- time.Now()
	second := awaitCall(t, repo)

	second <- dashboardReply{data: dashboardData(2000, 500)}
	assert.Eventually(t, func() bool { return view.renders() == 1 }, 2*time.Second, 5*time.Millisecond)

	first <- dashboardReply{data: dashboardData(1000, 100)}
	assert.Eventually(t, func() bool { return p.Dropped() == 1 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, 1, view.renders())
	assert.Equal(t, entity.Amount(2000), view.lastSummary().TotalIncome)
	assert.Equal(t, entity.Amount(2000), p.Last().Summary.TotalIncome)
}

func TestDashboardPoller_EachTickFetchesIndependently(t *testing.T) {
	repo := newGatedDashboardRepo()
	view := &fakeDashboardView{}
	p := NewDashboardPoller(repo, view, 1, time.Minute, nil)
	ticks := manualTicker(p)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	first := awaitCall(t, repo)
	first <- dashboardReply{data: dashboardData(100, 50)}
	assert.Eventually(t, func() bool { return view.renders() == 1 }, 2*time.Second, 5*time.Millisecond)

	ticks <- time.Now()
	second := awaitCall(t, repo)
	second <- dashboardReply{data: dashboardData(100, 80)}
	assert.Eventually(t, func() bool { return view.renders() == 2 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	view.mu.Lock()
	defer view.mu.Unlock()
	assert.Same(t, view.chartPtrs[0], view.chartPtrs[2], "category chart is reused across renders")
	assert.Same(t, view.chartPtrs[1], view.chartPtrs[3], "monthly chart is reused across renders")
	assert.Equal(t, []float64{80}, view.charts[2].Values)
	assert.Equal(t, []string{"2024-03"}, view.charts[3].Labels)
}

func TestDashboardPoller_StopDiscardsInFlightResponse(t *testing.T) {
	repo := newGatedDashboardRepo()
	view := &fakeDashboardView{}
	p := NewDashboardPoller(repo, view, 1, time.Minute, nil)
	manualTicker(p)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	pending := awaitCall(t, repo)
	cancel()
	require.NoError(t, <-done)

	pending <- dashboardReply{data: dashboardData(1, 1)}
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, view.renders())
}

func TestDashboardPoller_OnceAndErrors(t *testing.T) {
	view := &fakeDashboardView{}
	repo := newGatedDashboardRepo()
	p := NewDashboardPoller(repo, view, 1, 0, nil)
	assert.Equal(t, DefaultPollInterval, p.interval)

	go func() {
		reply := <-repo.calls
		reply <- dashboardReply{err: &types.TransportError{Op: "GET /dashboard", Err: errors.New("refused")}}
	}()
	_, err := p.Once(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"Network error. Please try again."}, view.errors)

	go func() {
		reply := <-repo.calls
		reply <- dashboardReply{data: dashboardData(10, 20)}
	}()
	data, err := p.Once(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Amount(-10), data.Summary.Balance)
	assert.Equal(t, 1, view.renders())
}

func TestAlertLines(t *testing.T) {
	assert.Equal(t, []string{"All budgets on track!"}, AlertLines(dashboardData(100, 50)))

	data := dashboardData(100, 150)
	data.Alerts = []entity.BudgetAlert{
		{Category: "Food", Percent: 120},
		{Category: "Bills", Percent: 104.56},
	}
	assert.Equal(t, []string{
		"⚠ Food: Over budget! (120% of budget used)",
		"⚠ Bills: Over budget! (104.6% of budget used)",
		"Expenses are more than Income",
	}, AlertLines(data))
}

func TestCronTicker_FiresAndStops(t *testing.T) {
	ticks, stop := cronTicker(time.Second)

	select {
	case <-ticks:
	case <-time.After(3 * time.Second):
		t.Fatal("cron did not fire")
	}

	stop()
	select {
	case <-ticks:
	default:
	}
	select {
	case <-ticks:
		t.Fatal("tick after stop")
	case <-time.After(1500 * time.Millisecond):
	}
}

func TestNewDashboardPoller_UsesCronTicker(t *testing.T) {
	p := NewDashboardPoller(newGatedDashboardRepo(), &fakeDashboardView{}, 1, 0, nil)
	assert.Equal(t, DefaultPollInterval, p.interval)
	require.NotNil(t, p.newTicker)
}
