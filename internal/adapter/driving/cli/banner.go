package cli

import (
	"fmt"
	"io"

	"github.com/diillson/finance-tracker-cli/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner escreve em w o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(w io.Writer) {
	banner := `
   ________                                  ______                __            
  / ____(_)___  ____ _____  ________        /_  __/________ ______/ /_____  _____
 / /_  / / __ \/ __ ` + "`" + `/ __ \/ ___/ _ \        / / / ___/ __ ` + "`" + `/ ___/ //_/ _ \/ ___/
/ __/ / / / / / /_/ / / / / /__/  __/       / / / /  / /_/ / /__/ ,< /  __/ /    
/_/   /_/_/ /_/\__,_/_/ /_/\___/\___/       /_/ /_/   \__,_/\___/_/|_|\___/_/     
`
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Fprintln(w, green(banner))
	fmt.Fprintln(w, blue(fmt.Sprintf("Finance Tracker CLI (v%s)", version.FormatVersion())))
}
