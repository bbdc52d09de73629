package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount é um valor numérico vindo da API. O backend às vezes serializa
// colunas NUMERIC como string ("1200.50"), então ambos os formatos são aceitos.
type Amount float64

// UnmarshalJSON aceita número, string numérica ou null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*a = 0
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", s, err)
		}
		*a = Amount(d.InexactFloat64())
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid amount %s: %w", string(data), err)
	}
	*a = Amount(f)
	return nil
}

// Float64 devolve o valor como float64.
func (a Amount) Float64() float64 {
	return float64(a)
}

// Decimal devolve o valor como decimal para somas e formatação sem ruído de ponto flutuante.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(a))
}

// String formata com duas casas decimais.
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}
