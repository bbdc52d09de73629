package types

// Config representa a configuração da aplicação, que pode vir de um arquivo.
type Config struct {
	APIURL       string   `json:"api_url" yaml:"api_url" toml:"api_url"`
	SessionDB    string   `json:"session_db" yaml:"session_db" toml:"session_db"`
	PageSize     int      `json:"page_size" yaml:"page_size" toml:"page_size"`
	PollInterval int      `json:"poll_interval" yaml:"poll_interval" toml:"poll_interval"`
	HTTPTimeout  int      `json:"http_timeout" yaml:"http_timeout" toml:"http_timeout"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir"`
	S3Bucket     string   `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Prefix     string   `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix"`
	AWSProfile   string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	Verbose      bool     `json:"verbose" yaml:"verbose" toml:"verbose"`
}
