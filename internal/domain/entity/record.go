package entity

// Record é qualquer registro listável identificado pelo backend.
type Record interface {
	RecordID() int64
}

// Expense representa uma despesa.
type Expense struct {
	ID          int64  `json:"id,omitempty"`
	UserID      int64  `json:"user_id"`
	Amount      Amount `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (e Expense) RecordID() int64 { return e.ID }

// Income representa uma receita.
type Income struct {
	ID          int64  `json:"id,omitempty"`
	UserID      int64  `json:"user_id"`
	Source      string `json:"source"`
	Amount      Amount `json:"amount"`
	Frequency   string `json:"frequency"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (i Income) RecordID() int64 { return i.ID }

// Budget representa o orçamento mensal de uma categoria.
type Budget struct {
	ID          int64  `json:"id,omitempty"`
	UserID      int64  `json:"user_id"`
	Category    string `json:"category"`
	Amount      Amount `json:"amount"`
	BudgetMonth string `json:"budget_month"`
	CreatedDate string `json:"created_date,omitempty"`
}

func (b Budget) RecordID() int64 { return b.ID }

// Transaction é uma linha do extrato consolidado (somente leitura).
type Transaction struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Type        string `json:"type"`
	Amount      Amount `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (t Transaction) RecordID() int64 { return t.ID }

// IsIncome indica se a transação é uma entrada.
func (t Transaction) IsIncome() bool {
	return t.Type == "income"
}

// Pagination é o bloco de paginação reportado pelo servidor.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Page é uma página de registros buscada do servidor.
type Page[T Record] struct {
	Items      []T
	Pagination Pagination
}
