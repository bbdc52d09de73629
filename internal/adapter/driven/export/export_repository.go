package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Listagens de registros ---

func (r *ExportRepositoryImpl) ExportTableToCSV(table repository.ReportTable, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range table.Rows {
		clean := make([]string, len(row))
		for i, cell := range row {
			clean[i] = cleanRichTags(cell)
		}
		if err := writer.Write(clean); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// tableDocument é o formato JSON de uma listagem: uma lista de objetos por coluna.
type tableDocument struct {
	Title       string              `json:"title"`
	GeneratedAt string              `json:"generated_at"`
	Footer      string              `json:"footer,omitempty"`
	Rows        []map[string]string `json:"rows"`
}

func (r *ExportRepositoryImpl) ExportTableToJSON(table repository.ReportTable, filename, outputDir string) (string, error) {
	doc := tableDocument{
		Title:       table.Title,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Footer:      table.Footer,
		Rows:        make([]map[string]string, 0, len(table.Rows)),
	}
	for _, row := range table.Rows {
		obj := make(map[string]string, len(table.Headers))
		for i, h := range table.Headers {
			if i < len(row) {
				obj[h] = cleanRichTags(row[i])
			}
		}
		doc.Rows = append(doc.Rows, obj)
	}
	return writeJSON(doc, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportTableToPDF(table repository.ReportTable, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfSafe(s)) }
	pdf.AddPage()
	drawHeader(pdf, text, table.Title)

	const pageWidth = 277.0
	colWidth := pageWidth
	if len(table.Headers) > 0 {
		colWidth = pageWidth / float64(len(table.Headers))
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetTextColor(50, 50, 50)
	for _, h := range table.Headers {
		pdf.CellFormat(colWidth, 8, text(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	if len(table.Rows) == 0 {
		pdf.CellFormat(pageWidth, 8, text("No records"), "1", 1, "C", false, 0, "")
	}
	for _, row := range table.Rows {
		for i := range table.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colWidth, 7, text(truncate(cell, 40)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if table.Footer != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		pdf.Cell(0, 6, text(table.Footer))
	}
	drawFooter(pdf, text)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

// --- Dashboard ---

func (r *ExportRepositoryImpl) ExportDashboardToCSV(data entity.DashboardData, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	records := [][]string{
		{"Section", "Label", "Value"},
		{"Summary", "Total Income", data.Summary.TotalIncome.String()},
		{"Summary", "Total Expense", data.Summary.TotalExpense.String()},
		{"Summary", "Balance", data.Summary.Balance.String()},
	}
	for _, a := range data.Alerts {
		records = append(records, []string{"Budget Alert", a.Category, a.Percent.String()})
	}
	for _, c := range data.CategoryWiseExpenses {
		records = append(records, []string{"Expenses by Category", c.Category, c.Amount.String()})
	}
	for _, m := range data.MonthlyExpenses {
		records = append(records, []string{"Monthly Expenses", m.Month, m.Amount.String()})
	}
	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportDashboardToJSON(data entity.DashboardData, filename, outputDir string) (string, error) {
	return writeJSON(data, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportDashboardToPDF(data entity.DashboardData, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfSafe(s)) }
	pdf.AddPage()
	drawHeader(pdf, text, "Finance Dashboard")

	drawSection := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.Cell(0, 8, text(title))
		pdf.Ln(7)

		pdf.SetDrawColor(200, 200, 200)
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(50, 50, 50)
		pdf.MultiCell(190, 5, text(strings.Join(lines, "\n")), "", "L", false)
		pdf.Ln(8)
	}

	drawSection("Summary", []string{
		fmt.Sprintf("Total Income: %s", data.Summary.TotalIncome),
		fmt.Sprintf("Total Expense: %s", data.Summary.TotalExpense),
		fmt.Sprintf("Balance: %s", data.Summary.Balance),
	})

	alerts := make([]string, 0, len(data.Alerts))
	for _, a := range data.Alerts {
		alerts = append(alerts, fmt.Sprintf("%s: Over budget (%s%% of budget used)", a.Category, a.Percent))
	}
	if len(alerts) == 0 {
		alerts = append(alerts, "All budgets on track!")
	}
	drawSection("Budget Alerts", alerts)

	categories := make([]string, 0, len(data.CategoryWiseExpenses))
	for _, c := range data.CategoryWiseExpenses {
		categories = append(categories, fmt.Sprintf("%s: %s", c.Category, c.Amount))
	}
	drawSection("Expenses by Category", categories)

	months := make([]string, 0, len(data.MonthlyExpenses))
	for _, m := range data.MonthlyExpenses {
		months = append(months, fmt.Sprintf("%s: %s", m.Month, m.Amount))
	}
	drawSection("Monthly Expenses", months)

	drawFooter(pdf, text)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

func drawHeader(pdf *gofpdf.Fpdf, text func(string) string, title string) {
	pdf.SetFillColor(40, 40, 40)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, text(fmt.Sprintf("  %s", title)), "", 1, "L", true, 0, "")
	pdf.Ln(6)
}

func drawFooter(pdf *gofpdf.Fpdf, text func(string) string) {
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Finance Tracker CLI | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, text(footerText), "", 0, "L", false, 0, "")
}

func writeJSON(v interface{}, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}

// pdfSafe troca símbolos fora do cp1252 usado pelas fontes padrão do gofpdf.
func pdfSafe(text string) string {
	text = cleanRichTags(text)
	return strings.NewReplacer("₹", "Rs ", "⚠", "!").Replace(text)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
