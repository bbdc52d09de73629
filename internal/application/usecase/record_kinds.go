package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/diillson/finance-tracker-cli/internal/shared/types"
)

var (
	ExpenseCategories = []string{"Food", "Transport", "Shopping", "Bills", "Entertainment", "Health", "Education", "Other"}
	IncomeSources     = []string{"Salary", "Freelance", "Business", "Investment", "Rental", "Gift", "Other"}
	IncomeFrequencies = []string{"one-time", "weekly", "monthly", "yearly"}
	TransactionTypes  = []string{"income", "expense"}
)

// now é substituível nos testes.
var now = time.Now

func today() string {
	return now().Format(dateLayout)
}

func currentMonth() string {
	return now().Format(monthLayout)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// matchesText busca substring sem diferenciar maiúsculas; busca vazia casa com tudo.
func matchesText(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// matchesDate compara datas ISO como strings, do jeito que o servidor as guarda.
func matchesDate(date string, f RecordFilter) bool {
	if f.StartDate != "" && date < f.StartDate {
		return false
	}
	if f.EndDate != "" && date > f.EndDate {
		return false
	}
	return true
}

// ExpenseKind descreve a tela de despesas.
func ExpenseKind(pageSize int) RecordKind[entity.Expense] {
	return RecordKind[entity.Expense]{
		Name:          "Expense",
		Plural:        "expenses",
		Endpoint:      "/expenses",
		CategoryField: "category",
		PageSize:      pageSize,
		Fields: []FieldSpec{
			{Name: "amount", Label: "Amount", Required: true},
			{Name: "category", Label: "Category", Options: ExpenseCategories, Required: true},
			{Name: "date", Label: "Date (YYYY-MM-DD)", Required: true},
			{Name: "description", Label: "Description"},
		},
		Validate: func(f Form) error {
			if err := requirePositiveAmount(f.Get("amount"), "Valid amount required"); err != nil {
				return err
			}
			if err := requirePresent(f.Get("category"), "Select category"); err != nil {
				return err
			}
			return requireLayout(f.Get("date"), dateLayout, "Select date", "Invalid date (use YYYY-MM-DD)")
		},
		Build: func(f Form, userID int64) entity.Expense {
			return entity.Expense{
				UserID:      userID,
				Amount:      entity.Amount(amountOf(f.Get("amount"))),
				Category:    f.Get("category"),
				Date:        f.Get("date"),
				Description: f.Get("description"),
			}
		},
		Fill: func(e entity.Expense) Form {
			return Form{
				"amount":      e.Amount.String(),
				"category":    e.Category,
				"date":        e.Date,
				"description": e.Description,
			}
		},
		DefaultForm: func() Form {
			return Form{"date": today()}
		},
		Columns: []string{"ID", "Date", "Category", "Amount", "Description"},
		Row: func(e entity.Expense) []string {
			return []string{
				fmt.Sprint(e.ID),
				orNA(e.Date),
				orNA(e.Category),
				formatMoney(e.Amount.Float64()),
				orNA(e.Description),
			}
		},
		Match: func(e entity.Expense, f RecordFilter) bool {
			return matchesText(e.Description, f.Search) &&
				(f.Category == "" || e.Category == f.Category) &&
				matchesDate(e.Date, f)
		},
	}
}

// IncomeKind descreve a tela de receitas.
func IncomeKind(pageSize int) RecordKind[entity.Income] {
	return RecordKind[entity.Income]{
		Name:          "Income",
		Plural:        "incomes",
		Endpoint:      "/income",
		CategoryField: "source",
		PageSize:      pageSize,
		Fields: []FieldSpec{
			{Name: "source", Label: "Source", Options: IncomeSources, Required: true},
			{Name: "amount", Label: "Amount", Required: true},
			{Name: "frequency", Label: "Frequency", Options: IncomeFrequencies, Required: true},
			{Name: "date", Label: "Date (YYYY-MM-DD)", Required: true},
			{Name: "description", Label: "Description"},
		},
		Validate: func(f Form) error {
			if err := requirePresent(f.Get("source"), "Please select income source"); err != nil {
				return err
			}
			if err := requirePositiveAmount(f.Get("amount"), "Enter valid positive amount"); err != nil {
				return err
			}
			if err := requirePresent(f.Get("frequency"), "Please select frequency"); err != nil {
				return err
			}
			return requireLayout(f.Get("date"), dateLayout, "Please select date", "Invalid date (use YYYY-MM-DD)")
		},
		Build: func(f Form, userID int64) entity.Income {
			return entity.Income{
				UserID:      userID,
				Source:      f.Get("source"),
				Amount:      entity.Amount(amountOf(f.Get("amount"))),
				Frequency:   f.Get("frequency"),
				Date:        f.Get("date"),
				Description: f.Get("description"),
			}
		},
		Fill: func(i entity.Income) Form {
			return Form{
				"source":      i.Source,
				"amount":      i.Amount.String(),
				"frequency":   i.Frequency,
				"date":        i.Date,
				"description": i.Description,
			}
		},
		DefaultForm: func() Form {
			return Form{"date": today()}
		},
		Columns: []string{"ID", "Date", "Source", "Amount", "Frequency", "Description"},
		Row: func(i entity.Income) []string {
			return []string{
				fmt.Sprint(i.ID),
				orNA(i.Date),
				orNA(i.Source),
				formatMoney(i.Amount.Float64()),
				orNA(i.Frequency),
				orNA(i.Description),
			}
		},
		Match: func(i entity.Income, f RecordFilter) bool {
			return (matchesText(i.Source, f.Search) || matchesText(i.Description, f.Search)) &&
				(f.Category == "" || i.Source == f.Category) &&
				matchesDate(i.Date, f)
		},
	}
}

// BudgetKind descreve a tela de orçamentos. Valor zero é permitido.
func BudgetKind(pageSize int) RecordKind[entity.Budget] {
	return RecordKind[entity.Budget]{
		Name:           "Budget",
		Plural:         "budgets",
		Endpoint:       "/budgets",
		CategoryField:  "category",
		PageSize:       pageSize,
		ServerMessages: true,
		Fields: []FieldSpec{
			{Name: "category", Label: "Category", Options: ExpenseCategories, Required: true},
			{Name: "amount", Label: "Amount", Required: true},
			{Name: "month", Label: "Month (YYYY-MM)", Required: true},
		},
		Validate: func(f Form) error {
			if err := requirePresent(f.Get("category"), "Please select a category"); err != nil {
				return err
			}
			if err := requireNonNegativeAmount(f.Get("amount"), "Please enter a valid amount (0 or positive)"); err != nil {
				return err
			}
			return requireLayout(f.Get("month"), monthLayout, "Select budget month", "Invalid month (use YYYY-MM)")
		},
		Build: func(f Form, userID int64) entity.Budget {
			return entity.Budget{
				UserID:      userID,
				Category:    f.Get("category"),
				Amount:      entity.Amount(amountOf(f.Get("amount"))),
				BudgetMonth: f.Get("month"),
			}
		},
		Fill: func(b entity.Budget) Form {
			month := b.BudgetMonth
			if month == "" {
				month = currentMonth()
			}
			return Form{
				"category": b.Category,
				"amount":   b.Amount.String(),
				"month":    month,
			}
		},
		DefaultForm: func() Form {
			return Form{"month": currentMonth()}
		},
		Columns: []string{"ID", "Category", "Month", "Amount", "Created"},
		Row: func(b entity.Budget) []string {
			created := b.CreatedDate
			if created == "" {
				created = "Just now"
			}
			return []string{
				fmt.Sprint(b.ID),
				orNA(b.Category),
				monthLabel(b.BudgetMonth),
				formatMoney(b.Amount.Float64()),
				created,
			}
		},
		Match: func(b entity.Budget, f RecordFilter) bool {
			return matchesText(b.Category, f.Search) &&
				(f.Category == "" || b.Category == f.Category)
		},
	}
}

// monthLabel transforma "2024-03" em "Mar 2024"; o que não for mês volta igual.
func monthLabel(month string) string {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return orNA(month)
	}
	return t.Format("Jan 2006")
}

// TransactionKind descreve o extrato, somente leitura.
func TransactionKind(pageSize int) RecordKind[entity.Transaction] {
	if pageSize <= 0 {
		pageSize = 20
	}
	return RecordKind[entity.Transaction]{
		Name:          "Transaction",
		Plural:        "transactions",
		Endpoint:      "/transactions",
		CategoryField: "category",
		ReadOnly:      true,
		PageSize:      pageSize,
		Validate: func(Form) error {
			return types.ErrReadOnly
		},
		Build: func(Form, int64) entity.Transaction {
			return entity.Transaction{}
		},
		Fill: func(entity.Transaction) Form {
			return Form{}
		},
		Columns: []string{"Date", "Type", "Category", "Amount", "Description"},
		Row: func(t entity.Transaction) []string {
			kind, sign := "Expense", "-"
			if t.IsIncome() {
				kind, sign = "Income", "+"
			}
			amount := t.Amount.Float64()
			if amount < 0 {
				amount = -amount
			}
			desc := t.Description
			if strings.TrimSpace(desc) == "" {
				desc = "-"
			}
			return []string{orNA(t.Date), kind, orNA(t.Category), sign + formatMoney(amount), desc}
		},
		Match: func(t entity.Transaction, f RecordFilter) bool {
			return matchesText(t.Description, f.Search) &&
				(f.Category == "" || t.Category == f.Category) &&
				(f.Type == "" || t.Type == f.Type) &&
				matchesDate(t.Date, f)
		},
	}
}
