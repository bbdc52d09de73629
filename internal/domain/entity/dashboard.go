package entity

// Summary são os totais agregados calculados pelo servidor.
type Summary struct {
	TotalIncome  Amount `json:"total_income"`
	TotalExpense Amount `json:"total_expense"`
	Balance      Amount `json:"balance"`
}

// BudgetAlert sinaliza uma categoria acima do orçamento.
type BudgetAlert struct {
	Category string `json:"category"`
	Percent  Amount `json:"percent"`
}

// CategoryAmount é o gasto de uma categoria.
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   Amount `json:"amount"`
}

// MonthlyAmount é o gasto de um mês.
type MonthlyAmount struct {
	Month  string `json:"month"`
	Amount Amount `json:"amount"`
}

// DashboardData é o resumo agregado do dashboard.
type DashboardData struct {
	Summary              Summary          `json:"summary"`
	Alerts               []BudgetAlert    `json:"alerts"`
	CategoryWiseExpenses []CategoryAmount `json:"categoryWiseExpenses"`
	MonthlyExpenses      []MonthlyAmount  `json:"monthlyExpenses"`
}
