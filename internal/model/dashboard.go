package model

// DashboardSummary bundles everything the balance page renders in one
// response: the settlement summary, which way it points, and the headline
// metrics shown above the balance card.
type DashboardSummary struct {
	Summary   Summary   `json:"summary"`
	Direction Direction `json:"direction"`

	// AmountOwed is the absolute settlement amount, zero when settled.
	AmountOwed float64 `json:"amountOwed"`

	TransactionCount    int     `json:"transactionCount"`
	TotalSharedSpending float64 `json:"totalSharedSpending"`

	// TotalPaidByYou is the calling party's total across all categories.
	TotalPaidByYou float64 `json:"totalPaidByYou"`
}

// PayerTotal is one bar/pie slice of the who-paid-what chart.
type PayerTotal struct {
	PaidBy Party   `json:"paidBy"`
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
}
