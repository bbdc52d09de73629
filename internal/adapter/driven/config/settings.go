package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL       = "http://localhost:8080/api/v1"
	DefaultPageSize     = 10
	DefaultPollInterval = 60
)

var validReportTypes = []string{"csv", "json", "pdf"}

// Defaults devolve a configuração padrão.
func Defaults() *types.Config {
	return &types.Config{
		APIURL:       DefaultAPIURL,
		SessionDB:    defaultSessionDB(),
		PageSize:     DefaultPageSize,
		PollInterval: DefaultPollInterval,
		ReportType:   []string{"csv"},
	}
}

func defaultSessionDB() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".finance-tracker", "session.db")
	}
	return filepath.Join(home, ".finance-tracker", "session.db")
}

// LoadDotEnv carrega o .env do diretório atual, se existir.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("error loading .env: %w", err)
	}
	return nil
}

// ApplyEnv sobrescreve cfg com as variáveis FINANCE_* presentes no ambiente.
func ApplyEnv(cfg *types.Config) {
	if v := os.Getenv("FINANCE_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("FINANCE_SESSION_DB"); v != "" {
		cfg.SessionDB = v
	}
	if v, ok := envInt("FINANCE_PAGE_SIZE"); ok {
		cfg.PageSize = v
	}
	if v, ok := envInt("FINANCE_POLL_INTERVAL"); ok {
		cfg.PollInterval = v
	}
	if v, ok := envInt("FINANCE_HTTP_TIMEOUT"); ok {
		cfg.HTTPTimeout = v
	}
	if v := os.Getenv("FINANCE_S3_BUCKET"); v != "" {
		cfg.S3Bucket = v
	}
	if v := os.Getenv("FINANCE_S3_PREFIX"); v != "" {
		cfg.S3Prefix = v
	}
	if v := os.Getenv("FINANCE_AWS_PROFILE"); v != "" {
		cfg.AWSProfile = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Merge copia para dst os campos não vazios de src.
func Merge(dst, src *types.Config) {
	if src == nil {
		return
	}
	if src.APIURL != "" {
		dst.APIURL = src.APIURL
	}
	if src.SessionDB != "" {
		dst.SessionDB = src.SessionDB
	}
	if src.PageSize != 0 {
		dst.PageSize = src.PageSize
	}
	if src.PollInterval != 0 {
		dst.PollInterval = src.PollInterval
	}
	if src.HTTPTimeout != 0 {
		dst.HTTPTimeout = src.HTTPTimeout
	}
	if src.ReportName != "" {
		dst.ReportName = src.ReportName
	}
	if len(src.ReportType) > 0 {
		dst.ReportType = src.ReportType
	}
	if src.Dir != "" {
		dst.Dir = src.Dir
	}
	if src.S3Bucket != "" {
		dst.S3Bucket = src.S3Bucket
	}
	if src.S3Prefix != "" {
		dst.S3Prefix = src.S3Prefix
	}
	if src.AWSProfile != "" {
		dst.AWSProfile = src.AWSProfile
	}
	if src.Verbose {
		dst.Verbose = true
	}
}

// Validate valida a configuração e devolve todos os problemas encontrados.
func Validate(cfg *types.Config) error {
	var errors []string

	if parsed, err := url.Parse(cfg.APIURL); err != nil || cfg.APIURL == "" {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s'", cfg.APIURL))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API URL scheme '%s': must be 'http' or 'https'", parsed.Scheme))
	}

	if cfg.SessionDB == "" {
		errors = append(errors, "session database path cannot be empty")
	}

	if cfg.PageSize < 1 || cfg.PageSize > 100 {
		errors = append(errors, fmt.Sprintf("invalid page size %d: must be between 1 and 100", cfg.PageSize))
	}

	if cfg.PollInterval < 1 {
		errors = append(errors, fmt.Sprintf("invalid poll interval %d: must be at least 1 second", cfg.PollInterval))
	}

	if cfg.HTTPTimeout < 0 {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %d: cannot be negative", cfg.HTTPTimeout))
	}

	for _, rt := range cfg.ReportType {
		if !contains(validReportTypes, rt) {
			errors = append(errors, fmt.Sprintf("invalid report type '%s': must be one of %v", rt, validReportTypes))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
