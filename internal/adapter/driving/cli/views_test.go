package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/diillson/finance-tracker-cli/internal/application/usecase"
	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *fakeTable) AddColumn(name string, _ ...interface{}) {
	t.columns = append(t.columns, name)
}

func (t *fakeTable) AddRow(cells ...interface{}) {
	t.rows = append(t.rows, cells)
}

func (t *fakeTable) Render() string {
	return fmt.Sprintf("%d rows", len(t.rows))
}

type fakeUI struct {
	out      strings.Builder
	tables   []*fakeTable
	success  []string
	failures []string
	statuses []*fakeStatus
}

func (u *fakeUI) Print(a ...interface{}) {
	fmt.Fprint(&u.out, a...)
}

func (u *fakeUI) Printf(format string, a ...interface{}) {
	fmt.Fprintf(&u.out, format, a...)
}

func (u *fakeUI) Println(a ...interface{}) {
	fmt.Fprintln(&u.out, a...)
}

func (u *fakeUI) LogInfo(string, ...interface{}) {}

func (u *fakeUI) LogWarning(format string, a ...interface{}) {
	u.failures = append(u.failures, fmt.Sprintf(format, a...))
}

func (u *fakeUI) LogError(format string, a ...interface{}) {
	u.failures = append(u.failures, fmt.Sprintf(format, a...))
}

func (u *fakeUI) LogSuccess(format string, a ...interface{}) {
	u.success = append(u.success, fmt.Sprintf(format, a...))
}

func (u *fakeUI) Status(message string) types.StatusHandle {
	s := &fakeStatus{message: message}
	u.statuses = append(u.statuses, s)
	return s
}

func (u *fakeUI) Area() types.AreaHandle {
	return nopArea{}
}

func (u *fakeUI) CreateTable() types.TableInterface {
	t := &fakeTable{}
	u.tables = append(u.tables, t)
	return t
}

func (u *fakeUI) RenderBarChart(chart types.ChartData) string {
	return "chart:" + chart.Title
}

func (u *fakeUI) Box(title, content string) string {
	return title + "\n" + content
}

func (u *fakeUI) Confirm(string) (bool, error) {
	return true, nil
}

func (u *fakeUI) TextInput(_, def string) (string, error) {
	return def, nil
}

func (u *fakeUI) Password(string) (string, error) {
	return "", nil
}

func (u *fakeUI) Select(_ string, options []string) (string, error) {
	return options[0], nil
}

// fakeStatus registra se o spinner foi parado.
type fakeStatus struct {
	message string
	stopped bool
}

func (s *fakeStatus) Update(message string) {
	s.message = message
}

func (s *fakeStatus) Stop() {
	s.stopped = true
}

type nopArea struct{}

func (nopArea) Update(string) {}

func (nopArea) Stop() {}

type captureArea struct {
	last string
}

func (a *captureArea) Update(content string) {
	a.last = content
}

func (a *captureArea) Stop() {}

func TestRecordView_EmptyTableShowsMessage(t *testing.T) {
	ui := &fakeUI{}
	v := newRecordView(ui, "Expenses", "Add Expense")

	v.RenderTable([]string{"ID", "Date"}, nil, "No expenses found")

	require.Len(t, ui.tables, 1)
	require.Len(t, ui.tables[0].rows, 1)
	assert.Contains(t, ui.tables[0].rows[0][0], "No expenses found")
	assert.Equal(t, []string{"ID", "Date"}, ui.tables[0].columns)
}

func TestRecordView_PaginationAndMessages(t *testing.T) {
	ui := &fakeUI{}
	v := newRecordView(ui, "Transactions", "")

	v.RenderPagination(usecase.PaginationInfo{Page: 2, TotalPages: 5, Shown: 20, Total: 93, HasPrev: true, HasNext: true})
	assert.Contains(t, ui.out.String(), "Page 2 of 5")
	assert.Contains(t, ui.out.String(), "Showing 20 of 93")

	v.ShowMessage("Expense added!", true)
	v.ShowMessage("Network error", false)
	assert.Equal(t, []string{"Expense added!"}, ui.success)
	assert.Equal(t, []string{"Network error"}, ui.failures)

	v.SetSubmitLabel("Update Expense")
	assert.Equal(t, "Update Expense", v.submitLabel)
}

func TestColorAmount_KeepsText(t *testing.T) {
	assert.Contains(t, colorAmount("+₹10.00"), "+₹10.00")
	assert.Contains(t, colorAmount("-₹5.00"), "-₹5.00")
	assert.Equal(t, "Food", colorAmount("Food"))
}

func TestDashboardView_ComposesSections(t *testing.T) {
	ui := &fakeUI{}
	area := &captureArea{}
	v := &dashboardView{ui: ui, area: area, greeting: "Welcome, Ana"}

	v.RenderSummary(entity.Summary{TotalIncome: 100, TotalExpense: 40, Balance: 60})
	v.RenderAlerts([]string{"All budgets on track!"}, true)
	category := usecase.NewChart("Expenses by Category")
	monthly := usecase.NewChart("Monthly Expenses")
	v.RenderCharts(category, monthly)

	assert.Contains(t, area.last, "Welcome, Ana")
	assert.Contains(t, area.last, "₹60.00")
	assert.Contains(t, area.last, "All budgets on track!")
	assert.Contains(t, area.last, "chart:Expenses by Category")
	assert.Contains(t, area.last, "chart:Monthly Expenses")

	v.ShowError("Failed to load dashboard")
	assert.Contains(t, area.last, "Failed to load dashboard")

	v.RenderSummary(entity.Summary{})
	assert.NotContains(t, area.last, "Failed to load dashboard")
}

func TestFormView_ShowProfileUsesDashForBlank(t *testing.T) {
	ui := &fakeUI{}
	(&formView{ui: ui}).ShowProfile(entity.User{ID: 7, Name: "Ana"})

	require.Len(t, ui.tables, 1)
	assert.Equal(t, []interface{}{"Phone", "-"}, ui.tables[0].rows[3])
}

func TestRecordID(t *testing.T) {
	id, err := recordID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := recordID(bad)
		assert.Error(t, err, bad)
	}
}

func TestSilentAndCancelled(t *testing.T) {
	base := &types.ServerError{Status: 500, Message: "boom"}
	err := silent(base)
	assert.True(t, IsSilent(err))
	assert.True(t, types.IsServerError(err))
	assert.False(t, IsSilent(errors.New("plain")))
	assert.NoError(t, silent(nil))

	assert.NoError(t, cancelled(types.ErrCancelled))
	assert.Equal(t, base, cancelled(base))
}
