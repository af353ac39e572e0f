package models

// TransactionMetrics aggregates a user's transactions.
type TransactionMetrics struct {
	TotalSales float64 `json:"total_sales" db:"total_sales"` // Sum of amounts of PAID transactions
	Count      int64   `json:"count" db:"count"`             // Total number of transactions
	PaidCount  int64   `json:"paid_count" db:"paid_count"`   // Number of PAID transactions
}
