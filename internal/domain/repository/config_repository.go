package repository

import (
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
)

// ConfigRepository define a interface para carregar arquivos de configuração.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
}
