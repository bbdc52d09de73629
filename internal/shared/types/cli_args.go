package types

// CLIArgs representa os argumentos de linha de comando comuns a todos os comandos.
type CLIArgs struct {
	ConfigFile   string
	APIURL       string
	SessionDB    string
	Verbose      bool
	PageSize     int
	PollInterval int
	ReportName   string
	ReportType   []string
	Dir          string
	S3Bucket     string
	Once         bool
}
