package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/diillson/finance-tracker-cli/internal/shared/types"
	"github.com/shopspring/decimal"
)

// Form guarda os valores crus dos campos de um formulário, por nome.
type Form map[string]string

// Get devolve o valor do campo sem espaços nas pontas.
func (f Form) Get(name string) string {
	return strings.TrimSpace(f[name])
}

// Clone copia o formulário.
func (f Form) Clone() Form {
	out := make(Form, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// FieldSpec descreve um campo de formulário de um tipo de registro.
type FieldSpec struct {
	Name     string
	Label    string
	Options  []string
	Required bool
}

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// parseAmount aceita apenas números finitos; "abc", "NaN", "" e valores
// fora do alcance de float64 (ex.: "1e400") falham.
func parseAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	if math.IsInf(d.InexactFloat64(), 0) {
		return decimal.Zero, false
	}
	return d, true
}

// requirePositiveAmount rejeita valor não numérico ou <= 0.
func requirePositiveAmount(raw, msg string) error {
	d, ok := parseAmount(raw)
	if !ok || !d.IsPositive() {
		return types.NewValidationError(msg)
	}
	return nil
}

// requireNonNegativeAmount rejeita valor não numérico ou < 0.
func requireNonNegativeAmount(raw, msg string) error {
	d, ok := parseAmount(raw)
	if !ok || d.IsNegative() {
		return types.NewValidationError(msg)
	}
	return nil
}

func requirePresent(raw, msg string) error {
	if strings.TrimSpace(raw) == "" {
		return types.NewValidationError(msg)
	}
	return nil
}

func requireLayout(raw, layout, missingMsg, invalidMsg string) error {
	if err := requirePresent(raw, missingMsg); err != nil {
		return err
	}
	if _, err := time.Parse(layout, strings.TrimSpace(raw)); err != nil {
		return types.NewValidationError(invalidMsg)
	}
	return nil
}

// amountOf converte o campo já validado para float64.
func amountOf(raw string) float64 {
	d, _ := parseAmount(raw)
	return d.InexactFloat64()
}

// formatMoney formata valores no estilo da interface: símbolo e duas casas.
func formatMoney(v float64) string {
	return fmt.Sprintf("₹%s", decimal.NewFromFloat(v).StringFixed(2))
}
