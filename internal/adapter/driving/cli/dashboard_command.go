package cli

import (
	"context"
	"time"

	"github.com/diillson/finance-tracker-cli/internal/adapter/driven/api"
	"github.com/diillson/finance-tracker-cli/internal/application/usecase"
	"github.com/spf13/cobra"
)

func (app *CLIApp) newDashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show the summary, budget alerts and charts",
		Long: `Show the financial summary, budget alerts and expense charts.
The dashboard refreshes on a fixed interval until Ctrl-C. Use --once to
render a single snapshot, optionally exporting it with --report-name.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runDashboard(cmd.Context(), app.args.Once)
		},
	}

	cmd.Flags().Bool("once", false, "Render once and exit")
	cmd.Flags().Int("interval", 0, "Refresh interval in seconds (default 60)")
	addReportFlags(cmd)
	return cmd
}

// runDashboard mostra o dashboard. Com once, busca uma vez e exporta se
// um nome de relatório foi informado; senão atualiza até ctx ser cancelado.
func (app *CLIApp) runDashboard(ctx context.Context, once bool) error {
	area := app.ui.Area()
	defer area.Stop()

	view := &dashboardView{ui: app.ui, area: area, greeting: app.guard.Greeting()}
	poller := usecase.NewDashboardPoller(
		api.NewDashboardClient(app.client),
		view,
		app.session.User.ID,
		time.Duration(app.cfg.PollInterval)*time.Second,
		app.logger,
	)

	if !once {
		if err := poller.Run(ctx); err != nil {
			return err
		}
		app.logger.Debug("dashboard stopped", app.logger.Args("stale_responses", poller.Dropped()))
		return nil
	}

	data, err := poller.Once(ctx)
	if err != nil {
		return silent(err)
	}
	if app.cfg.ReportName == "" {
		return nil
	}
	area.Stop()
	_, err = withStatus(app.ui, "Exporting dashboard...", func() ([]string, error) {
		return app.reportUseCase().ExportDashboard(ctx, data, app.reportRequest("dashboard"))
	})
	return err
}
