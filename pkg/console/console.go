package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface e do PromptInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// NewLogger cria o logger estruturado de diagnóstico. Sem verbose só avisos e erros aparecem.
func NewLogger(verbose bool) *pterm.Logger {
	level := pterm.LogLevelWarn
	if verbose {
		level = pterm.LogLevelDebug
	}
	return pterm.DefaultLogger.WithLevel(level)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BoldRed       = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// areaHandle é uma implementação do AreaHandle.
type areaHandle struct {
	area *pterm.AreaPrinter
}

// Area inicia uma região redesenhável do terminal.
func (c *Console) Area() types.AreaHandle {
	area, _ := pterm.DefaultArea.Start()
	return &areaHandle{area: area}
}

// Update substitui o conteúdo da área.
func (h *areaHandle) Update(content string) {
	if h.area != nil {
		h.area.Update(content)
	}
}

// Stop libera a área, mantendo o último conteúdo na tela.
func (h *areaHandle) Stop() {
	if h.area != nil {
		h.area.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// RenderBarChart desenha um gráfico de barras horizontal, escalado pelo maior valor.
func (c *Console) RenderBarChart(chart types.ChartData) string {
	if len(chart.Labels) == 0 {
		return pterm.DefaultBox.WithTitle(chart.Title).Sprint(pterm.FgGray.Sprint("No data"))
	}

	maxValue := 0.0
	for _, v := range chart.Values {
		if v > maxValue {
			maxValue = v
		}
	}

	labelWidth := 0
	for _, l := range chart.Labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	var sb strings.Builder
	for i, label := range chart.Labels {
		value := 0.0
		if i < len(chart.Values) {
			value = chart.Values[i]
		}

		barLength := 0
		if maxValue > 0 {
			barLength = int(math.Round((value / maxValue) * 40))
		}
		bar := pterm.FgBlue.Sprint(strings.Repeat("█", barLength))

		sb.WriteString(fmt.Sprintf("%-*s %s %s\n", labelWidth, label, bar, pterm.FgLightWhite.Sprintf("%.2f", value)))
	}

	return pterm.DefaultBox.
		WithTitle(chart.Title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(strings.TrimRight(sb.String(), "\n"))
}

// Box envolve o conteúdo num painel com título.
func (c *Console) Box(title, content string) string {
	return pterm.DefaultBox.WithTitle(title).Sprint(content)
}

// Confirm pergunta sim/não.
func (c *Console) Confirm(question string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultText(question).Show()
}

// TextInput lê uma linha, com valor inicial opcional.
func (c *Console) TextInput(label, defaultValue string) (string, error) {
	input := pterm.DefaultInteractiveTextInput.WithDefaultText(label)
	if defaultValue != "" {
		input = input.WithDefaultValue(defaultValue)
	}
	return input.Show()
}

// Password lê uma linha sem ecoar os caracteres.
func (c *Console) Password(label string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(label).WithMask("*").Show()
}

// Select mostra uma lista de opções e devolve a escolhida.
func (c *Console) Select(label string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText(label).
		WithOptions(options).
		WithMaxHeight(len(options)).
		Show()
}
