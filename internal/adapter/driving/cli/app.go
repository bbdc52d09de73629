package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/diillson/finance-tracker-cli/internal/adapter/driven/api"
	"github.com/diillson/finance-tracker-cli/internal/adapter/driven/aws"
	"github.com/diillson/finance-tracker-cli/internal/adapter/driven/config"
	"github.com/diillson/finance-tracker-cli/internal/adapter/driven/storage"
	"github.com/diillson/finance-tracker-cli/internal/application/usecase"
	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/diillson/finance-tracker-cli/pkg/console"
	"github.com/diillson/finance-tracker-cli/pkg/version"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// UI é o console com saída e prompts.
type UI interface {
	types.ConsoleInterface
	types.PromptInterface
}

// publicCommands não passam pelo guard de sessão.
var publicCommands = map[string]bool{
	"login":      true,
	"register":   true,
	"logout":     true,
	"version":    true,
	"help":       true,
	"completion": true,
}

// CLIApp representa a aplicação de linha de comando.
type CLIApp struct {
	rootCmd    *cobra.Command
	ui         UI
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	version    string

	// preenchidos no PersistentPreRunE
	args    *types.CLIArgs
	cfg     *types.Config
	logger  *pterm.Logger
	store   *storage.SQLiteStorage
	guard   *usecase.SessionGuard
	client  *api.Client
	session entity.Session
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, ui UI, configRepo repository.ConfigRepository, exportRepo repository.ExportRepository) *CLIApp {
	app := &CLIApp{
		ui:         ui,
		configRepo: configRepo,
		exportRepo: exportRepo,
		version:    versionStr,
	}

	rootCmd := &cobra.Command{
		Use:               "finance",
		Short:             "Personal Finance Tracker CLI",
		Version:           version.FormatVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.prepare,
		RunE:              app.runLanding,
	}

	rootCmd.SetVersionTemplate(`{{printf "Finance Tracker CLI version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the finance tracker API (default "+config.DefaultAPIURL+")")
	rootCmd.PersistentFlags().String("session-db", "", "Path of the local session database")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print diagnostic logs")

	rootCmd.AddCommand(
		app.newLoginCommand(),
		app.newRegisterCommand(),
		app.newLogoutCommand(),
		app.newWhoamiCommand(),
		app.newDashboardCommand(),
		newRecordCommand(app, recordCommandDef[entity.Expense]{
			use: "expenses", aliases: []string{"expense"}, short: "Manage expenses", kind: usecase.ExpenseKind,
		}),
		newRecordCommand(app, recordCommandDef[entity.Income]{
			use: "income", aliases: []string{"incomes"}, short: "Manage income", kind: usecase.IncomeKind,
		}),
		newRecordCommand(app, recordCommandDef[entity.Budget]{
			use: "budgets", aliases: []string{"budget"}, short: "Manage monthly budgets", kind: usecase.BudgetKind,
		}),
		newRecordCommand(app, recordCommandDef[entity.Transaction]{
			use: "transactions", aliases: []string{"tx"}, short: "Browse all transactions", kind: usecase.TransactionKind,
		}),
		app.newProfileCommand(),
	)

	app.rootCmd = rootCmd
	return app
}

// Execute roda a CLI. Ctrl-C cancela o contexto do comando.
func (app *CLIApp) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// PersistentPostRun não roda quando o comando falha; o store fecha aqui.
	err := app.rootCmd.ExecuteContext(ctx)
	app.closeStore()
	return err
}

// parseArgs lê as flags conhecidas do comando em execução.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	args := &types.CLIArgs{
		ConfigFile:   flagString(cmd, "config-file"),
		APIURL:       flagString(cmd, "api-url"),
		SessionDB:    flagString(cmd, "session-db"),
		Verbose:      flagBool(cmd, "verbose"),
		PageSize:     flagInt(cmd, "limit"),
		PollInterval: flagInt(cmd, "interval"),
		ReportName:   flagString(cmd, "report-name"),
		ReportType:   flagStringSlice(cmd, "report-type"),
		Dir:          flagString(cmd, "dir"),
		S3Bucket:     flagString(cmd, "s3-bucket"),
		Once:         flagBool(cmd, "once"),
	}

	if args.Dir != "" {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	return args, nil
}

// loadConfig aplica a precedência: padrões < arquivo < ambiente < flags.
func (app *CLIApp) loadConfig(args *types.CLIArgs) (*types.Config, error) {
	cfg := config.Defaults()

	if args.ConfigFile != "" {
		fileCfg, err := app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		config.Merge(cfg, fileCfg)
	}

	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg)

	config.Merge(cfg, &types.Config{
		APIURL:       args.APIURL,
		SessionDB:    args.SessionDB,
		PageSize:     args.PageSize,
		PollInterval: args.PollInterval,
		ReportName:   args.ReportName,
		ReportType:   args.ReportType,
		Dir:          args.Dir,
		S3Bucket:     args.S3Bucket,
		Verbose:      args.Verbose,
	})

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// prepare carrega a configuração, abre o armazenamento local e aplica o guard.
func (app *CLIApp) prepare(cmd *cobra.Command, _ []string) error {
	args, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}
	cfg, err := app.loadConfig(args)
	if err != nil {
		return err
	}
	app.args = args
	app.cfg = cfg
	app.logger = console.NewLogger(cfg.Verbose)

	store, err := storage.NewSQLiteStorage(cfg.SessionDB)
	if err != nil {
		return err
	}
	app.store = store
	app.guard = usecase.NewSessionGuard(store, app.logger)
	app.client = api.NewClient(cfg.APIURL, time.Duration(cfg.HTTPTimeout)*time.Second, app.guard, app.logger)

	app.logger.Debug("configuration loaded", app.logger.Args(
		"api_url", cfg.APIURL,
		"session_db", cfg.SessionDB,
		"command", cmd.Name(),
	))

	if publicCommands[cmd.Name()] || cmd == app.rootCmd {
		return nil
	}

	_, session, err := app.guard.Check(false)
	if err != nil {
		if errors.Is(err, types.ErrNotAuthenticated) || errors.Is(err, types.ErrSessionExpired) {
			app.ui.LogWarning("%s", err)
		}
		return err
	}
	app.session = session
	return nil
}

func (app *CLIApp) closeStore() {
	if app.store == nil {
		return
	}
	if err := app.store.Close(); err != nil {
		app.logger.Warn("closing session store", app.logger.Args("error", err))
	}
	app.store = nil
}

// runLanding é a tela inicial: com sessão válida vai direto para o dashboard.
func (app *CLIApp) runLanding(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(color.Output)
	go version.CheckLatestVersion(cmd.Context(), app.logger, app.version)

	nav, session, err := app.guard.Check(true)
	if err != nil {
		app.ui.LogWarning("%s", err)
		app.ui.Println()
		return cmd.Help()
	}
	app.session = session
	app.ui.LogInfo("%s", app.guard.Greeting())

	if nav == usecase.ToDashboard {
		return app.runDashboard(cmd.Context(), false)
	}
	return nil
}

// uploader devolve o uploader S3 quando um bucket está configurado.
func (app *CLIApp) uploader() repository.ReportUploader {
	if app.cfg.S3Bucket == "" {
		return nil
	}
	return aws.NewS3Uploader(app.cfg.S3Bucket, app.cfg.S3Prefix, app.cfg.AWSProfile)
}

func (app *CLIApp) reportUseCase() *usecase.ReportUseCase {
	return usecase.NewReportUseCase(app.exportRepo, app.uploader(), app.ui)
}

// exportTable exporta a listagem com um spinner enquanto os arquivos são gerados.
func (app *CLIApp) exportTable(ctx context.Context, table repository.ReportTable, defaultName string) ([]string, error) {
	return withStatus(app.ui, "Exporting report...", func() ([]string, error) {
		return app.reportUseCase().ExportTable(ctx, table, app.reportRequest(defaultName))
	})
}

func (app *CLIApp) reportRequest(defaultName string) usecase.ReportRequest {
	name := app.cfg.ReportName
	if name == "" {
		name = defaultName
	}
	return usecase.ReportRequest{Name: name, Types: app.cfg.ReportType, Dir: app.cfg.Dir}
}

func flagString(cmd *cobra.Command, name string) string {
	if cmd.Flags().Lookup(name) == nil {
		return ""
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

func flagBool(cmd *cobra.Command, name string) bool {
	if cmd.Flags().Lookup(name) == nil {
		return false
	}
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func flagInt(cmd *cobra.Command, name string) int {
	if cmd.Flags().Lookup(name) == nil {
		return 0
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func flagStringSlice(cmd *cobra.Command, name string) []string {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}
	v, _ := cmd.Flags().GetStringSlice(name)
	return v
}
