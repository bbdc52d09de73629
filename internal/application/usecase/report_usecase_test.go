package usecase

import (
	"context"
	"testing"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeReportTypes(t *testing.T) {
	tests := []struct {
		in      []string
		want    []string
		wantErr bool
	}{
		{in: []string{"csv"}, want: []string{"csv"}},
		{in: []string{"CSV, pdf", "json", "pdf"}, want: []string{"csv", "pdf", "json"}},
		{in: []string{"xlsx"}, wantErr: true},
		{in: nil, wantErr: true},
		{in: []string{" , "}, wantErr: true},
	}

	for _, tt := range tests {
		got, err := NormalizeReportTypes(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestReportUseCase_ExportTableAllFormats(t *testing.T) {
	exporter := &fakeExportRepo{}
	uploader := &fakeUploader{}
	console := &fakeConsole{}
	uc := NewReportUseCase(exporter, uploader, console)

	paths, err := uc.ExportTable(context.Background(), repository.ReportTable{Title: "Expenses"}, ReportRequest{
		Name:  "expenses",
		Types: []string{"pdf", "csv", "json"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/reports/expenses.csv", "/reports/expenses.json", "/reports/expenses.pdf"}, paths)
	assert.ElementsMatch(t, []string{"table:csv", "table:json", "table:pdf"}, exporter.calls)
	assert.ElementsMatch(t, paths, uploader.uploaded)
	assert.Len(t, console.successes, 6)
}

func TestReportUseCase_ExportDashboardWithoutUploader(t *testing.T) {
	exporter := &fakeExportRepo{}
	console := &fakeConsole{}
	uc := NewReportUseCase(exporter, nil, console)

	paths, err := uc.ExportDashboard(context.Background(), entity.DashboardData{}, ReportRequest{Name: "dash", Types: []string{"json"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"/reports/dash.json"}, paths)
	assert.Equal(t, []string{"dashboard:json"}, exporter.calls)
}

func TestReportUseCase_ExportFailure(t *testing.T) {
	exporter := &fakeExportRepo{failFor: "pdf"}
	console := &fakeConsole{}
	uc := NewReportUseCase(exporter, nil, console)

	_, err := uc.ExportTable(context.Background(), repository.ReportTable{}, ReportRequest{Name: "x", Types: []string{"csv", "pdf"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to export to PDF")
	assert.Len(t, console.errors, 1)
}
