package usecase

import (
	"testing"

	"github.com/diillson/finance-tracker-cli/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestExpenseKind_Match(t *testing.T) {
	kind := ExpenseKind(10)
	e := entity.Expense{Category: "Food", Date: "2024-03-10", Description: "Team Lunch"}

	assert.True(t, kind.Match(e, RecordFilter{}))
	assert.True(t, kind.Match(e, RecordFilter{Search: "lunch"}))
	assert.False(t, kind.Match(e, RecordFilter{Search: "dinner"}))
	assert.False(t, kind.Match(e, RecordFilter{Category: "Bills"}))
	assert.True(t, kind.Match(e, RecordFilter{StartDate: "2024-03-10", EndDate: "2024-03-10"}))
	assert.False(t, kind.Match(e, RecordFilter{StartDate: "2024-03-11"}))
	assert.False(t, kind.Match(e, RecordFilter{EndDate: "2024-03-09"}))
}

func TestIncomeKind_RowAndMatch(t *testing.T) {
	kind := IncomeKind(10)
	i := entity.Income{ID: 4, Source: "Salary", Amount: 3000, Frequency: "monthly", Date: "2024-03-01"}

	assert.Equal(t, []string{"4", "2024-03-01", "Salary", "₹3000.00", "monthly", "N/A"}, kind.Row(i))
	assert.True(t, kind.Match(i, RecordFilter{Search: "sal"}))
	assert.True(t, kind.Match(i, RecordFilter{Category: "Salary"}))
	assert.False(t, kind.Match(i, RecordFilter{Category: "Gift"}))
	assert.Equal(t, "source", kind.CategoryField)
}

func TestBudgetKind_Row(t *testing.T) {
	kind := BudgetKind(10)

	row := kind.Row(entity.Budget{ID: 2, Category: "Food", Amount: 0, BudgetMonth: "2024-03"})
	assert.Equal(t, []string{"2", "Food", "Mar 2024", "₹0.00", "Just now"}, row)

	assert.Equal(t, "bad", monthLabel("bad"))
}

func TestTransactionKind_IncomeRow(t *testing.T) {
	row := TransactionKind(20).Row(entity.Transaction{Type: "income", Amount: 150, Category: "Salary", Date: "2024-03-01"})
	assert.Equal(t, []string{"2024-03-01", "Income", "Salary", "+₹150.00", "-"}, row)
}
