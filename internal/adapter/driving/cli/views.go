package cli

import (
	"fmt"
	"strings"

	"github.com/diillson/finance-tracker-cli/internal/application/usecase"
	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/pkg/console"
	"github.com/pterm/pterm"
)

// recordView desenha uma tela de registros no console.
type recordView struct {
	ui          UI
	title       string
	submitLabel string
}

func newRecordView(ui UI, title, submitLabel string) *recordView {
	return &recordView{ui: ui, title: title, submitLabel: submitLabel}
}

func (v *recordView) RenderTable(headers []string, rows [][]string, emptyMessage string) {
	table := v.ui.CreateTable()
	for _, h := range headers {
		table.AddColumn(h)
	}

	if len(rows) == 0 {
		cells := make([]interface{}, len(headers))
		for i := range cells {
			cells[i] = ""
		}
		if len(cells) > 0 {
			cells[0] = pterm.FgGray.Sprint(emptyMessage)
		}
		table.AddRow(cells...)
	}
	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = colorAmount(cell)
		}
		table.AddRow(cells...)
	}

	v.ui.Println()
	v.ui.Println(console.BrightCyan(v.title))
	v.ui.Println(table.Render())
}

// colorAmount pinta valores com sinal: verde para entradas, vermelho para saídas.
func colorAmount(cell string) string {
	switch {
	case strings.HasPrefix(cell, "+₹"):
		return console.BrightGreen(cell)
	case strings.HasPrefix(cell, "-₹"):
		return console.BoldRed(cell)
	default:
		return cell
	}
}

func (v *recordView) RenderPagination(info usecase.PaginationInfo) {
	prev, next := "‹ Prev", "Next ›"
	if !info.HasPrev {
		prev = pterm.FgGray.Sprint(prev)
	}
	if !info.HasNext {
		next = pterm.FgGray.Sprint(next)
	}
	v.ui.Printf("%s  Page %d of %d  %s   Showing %d of %d\n", prev, info.Page, info.TotalPages, next, info.Shown, info.Total)
}

func (v *recordView) ShowMessage(message string, success bool) {
	if success {
		v.ui.LogSuccess("%s", message)
		return
	}
	v.ui.LogError("%s", message)
}

func (v *recordView) SetSubmitLabel(label string) {
	v.submitLabel = label
}

// formView atende login, cadastro e perfil.
type formView struct {
	ui UI
}

func (v *formView) Inline(message string, success bool) {
	if success {
		v.ui.LogSuccess("%s", message)
		return
	}
	v.ui.LogWarning("%s", message)
}

func (v *formView) FieldError(field, message string) {
	v.ui.LogError("%s: %s", field, message)
}

func (v *formView) Alert(message string) {
	v.ui.Println(v.ui.Box("Error", pterm.FgRed.Sprint(message)))
}

func (v *formView) ShowProfile(user entity.User) {
	table := v.ui.CreateTable()
	table.AddColumn("Field")
	table.AddColumn("Value")
	table.AddRow("ID", user.ID)
	table.AddRow("Name", orDash(user.Name))
	table.AddRow("Email", orDash(user.Email))
	table.AddRow("Phone", orDash(user.Phone))
	v.ui.Println(table.Render())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// dashboardView compõe o dashboard numa área redesenhada a cada atualização.
type dashboardView struct {
	ui       UI
	area     areaUpdater
	greeting string

	summary string
	alerts  string
	charts  string
	status  string
}

type areaUpdater interface {
	Update(content string)
}

func (v *dashboardView) RenderSummary(s entity.Summary) {
	balance := fmt.Sprintf("₹%s", s.Balance)
	if s.Balance.Float64() < 0 {
		balance = console.BoldRed(balance)
	} else {
		balance = console.BrightGreen(balance)
	}
	v.summary = v.ui.Box("Summary", fmt.Sprintf(
		"Total Income:  %s\nTotal Expense: %s\nBalance:       %s",
		console.BrightGreen(fmt.Sprintf("₹%s", s.TotalIncome)),
		console.BoldRed(fmt.Sprintf("₹%s", s.TotalExpense)),
		balance,
	))
	v.status = ""
	v.flush()
}

func (v *dashboardView) RenderAlerts(alerts []string, allClear bool) {
	lines := make([]string, 0, len(alerts))
	for _, a := range alerts {
		switch {
		case allClear && a == alerts[0]:
			lines = append(lines, console.BrightGreen(a))
		case strings.HasPrefix(a, "⚠"):
			lines = append(lines, console.BrightYellow(a))
		default:
			lines = append(lines, console.BoldRed(a))
		}
	}
	v.alerts = v.ui.Box("Budget Alerts", strings.Join(lines, "\n"))
	v.flush()
}

func (v *dashboardView) RenderCharts(category, monthly *usecase.Chart) {
	v.charts = v.ui.RenderBarChart(category.Data()) + "\n" + v.ui.RenderBarChart(monthly.Data())
	v.flush()
}

func (v *dashboardView) ShowError(message string) {
	v.status = pterm.FgRed.Sprint(message)
	v.flush()
}

func (v *dashboardView) flush() {
	parts := []string{}
	for _, p := range []string{v.greeting, v.summary, v.alerts, v.charts, v.status} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	v.area.Update(strings.Join(parts, "\n"))
}
