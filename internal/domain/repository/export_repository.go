package repository

import (
	"context"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
)

// ReportTable é uma listagem já formatada pronta para exportação.
type ReportTable struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  string
}

type ExportRepository interface {
	ExportTableToCSV(table ReportTable, filename, outputDir string) (string, error)
	ExportTableToJSON(table ReportTable, filename, outputDir string) (string, error)
	ExportTableToPDF(table ReportTable, filename, outputDir string) (string, error)

	ExportDashboardToCSV(data entity.DashboardData, filename, outputDir string) (string, error)
	ExportDashboardToJSON(data entity.DashboardData, filename, outputDir string) (string, error)
	ExportDashboardToPDF(data entity.DashboardData, filename, outputDir string) (string, error)
}

// ReportUploader envia um relatório exportado para armazenamento remoto.
type ReportUploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}
