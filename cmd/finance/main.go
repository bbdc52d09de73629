package main

import (
	"fmt"
	"os"

	"github.com/diillson/finance-tracker-cli/internal/adapter/driven/config"
	"github.com/diillson/finance-tracker-cli/internal/adapter/driven/export"
	"github.com/diillson/finance-tracker-cli/internal/adapter/driving/cli"
	"github.com/diillson/finance-tracker-cli/pkg/console"
	"github.com/diillson/finance-tracker-cli/pkg/version"
)

func main() {
	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	app := cli.NewCLIApp(version.Version, consoleImpl, configRepo, exportRepo)

	// Erros já exibidos pelas telas não são repetidos
	if err := app.Execute(); err != nil {
		if !cli.IsSilent(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
