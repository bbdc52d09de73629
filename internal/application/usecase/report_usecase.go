package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"golang.org/x/sync/errgroup"
)

// SupportedReportTypes são os formatos aceitos por --report-type.
var SupportedReportTypes = []string{"csv", "json", "pdf"}

// ReportRequest descreve uma exportação pedida na linha de comando.
type ReportRequest struct {
	Name  string
	Types []string
	Dir   string
}

// ReportUseCase exporta listagens e o dashboard, e envia os arquivos ao
// armazenamento remoto quando configurado.
type ReportUseCase struct {
	exportRepo repository.ExportRepository
	uploader   repository.ReportUploader
	console    types.ConsoleInterface
}

// NewReportUseCase cria o caso de uso. uploader pode ser nil.
func NewReportUseCase(exportRepo repository.ExportRepository, uploader repository.ReportUploader, console types.ConsoleInterface) *ReportUseCase {
	return &ReportUseCase{exportRepo: exportRepo, uploader: uploader, console: console}
}

// NormalizeReportTypes valida e remove duplicatas dos formatos pedidos.
func NormalizeReportTypes(reportTypes []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, rt := range reportTypes {
		for _, part := range strings.Split(rt, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" || seen[part] {
				continue
			}
			if !isSupportedReportType(part) {
				return nil, fmt.Errorf("unsupported report type %q (use %s)", part, strings.Join(SupportedReportTypes, ", "))
			}
			seen[part] = true
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no report type given (use %s)", strings.Join(SupportedReportTypes, ", "))
	}
	return out, nil
}

func isSupportedReportType(t string) bool {
	for _, s := range SupportedReportTypes {
		if s == t {
			return true
		}
	}
	return false
}

// ExportTable exporta uma listagem em todos os formatos pedidos.
func (uc *ReportUseCase) ExportTable(ctx context.Context, table repository.ReportTable, req ReportRequest) ([]string, error) {
	return uc.export(ctx, req, func(reportType string) (string, error) {
		switch reportType {
		case "csv":
			return uc.exportRepo.ExportTableToCSV(table, req.Name, req.Dir)
		case "json":
			return uc.exportRepo.ExportTableToJSON(table, req.Name, req.Dir)
		default:
			return uc.exportRepo.ExportTableToPDF(table, req.Name, req.Dir)
		}
	})
}

// ExportDashboard exporta o último resumo do dashboard.
func (uc *ReportUseCase) ExportDashboard(ctx context.Context, data entity.DashboardData, req ReportRequest) ([]string, error) {
	return uc.export(ctx, req, func(reportType string) (string, error) {
		switch reportType {
		case "csv":
			return uc.exportRepo.ExportDashboardToCSV(data, req.Name, req.Dir)
		case "json":
			return uc.exportRepo.ExportDashboardToJSON(data, req.Name, req.Dir)
		default:
			return uc.exportRepo.ExportDashboardToPDF(data, req.Name, req.Dir)
		}
	})
}

// export roda um writer por formato em paralelo. Os caminhos voltam ordenados,
// independente de qual formato terminou primeiro.
func (uc *ReportUseCase) export(ctx context.Context, req ReportRequest, write func(string) (string, error)) ([]string, error) {
	reportTypes, err := NormalizeReportTypes(req.Types)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(reportTypes))
	g, gctx := errgroup.WithContext(ctx)
	for i, reportType := range reportTypes {
		i, reportType := i, reportType
		g.Go(func() error {
			path, err := write(reportType)
			if err != nil {
				return fmt.Errorf("failed to export to %s: %w", strings.ToUpper(reportType), err)
			}
			paths[i] = path

			if uc.uploader == nil {
				return nil
			}
			uri, err := uc.uploader.Upload(gctx, path)
			if err != nil {
				return err
			}
			uc.console.LogSuccess("Uploaded %s report: %s", strings.ToUpper(reportType), uri)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.console.LogError("%s", err)
		return nil, err
	}

	sort.Strings(paths)
	for _, p := range paths {
		uc.console.LogSuccess("Successfully exported report: %s", p)
	}
	return paths, nil
}
