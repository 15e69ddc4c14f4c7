package models

// SalaryStatement is the derived owed/paid position of one worker for a
// month. It is recomputed from the ledgers on every query and never
// stored, so it can never go stale.
//
// Total is literally AmountOwed + AmountPaid, matching the historical
// behavior the clients were built against.
type SalaryStatement struct {
	UserID     uint    `json:"id"`
	AmountPaid float64 `json:"paid"`
	AmountOwed float64 `json:"owed"`
	Total      float64 `json:"total"`
}
