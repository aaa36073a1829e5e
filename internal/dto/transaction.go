package dto

// CreateTransactionRequest is the payload for recording a ledger entry.
// Amount is the gross amount; the payable/receivable split is derived from
// TransactionType.
type CreateTransactionRequest struct {
	ShopID          string  `json:"shopId" binding:"required"`
	CustomerID      string  `json:"customerId" binding:"required"`
	TransactionType string  `json:"transactionType" binding:"required,oneof=payable receivable"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Date            string  `json:"date" binding:"required"`
	DueDate         string  `json:"dueDate"`
	ImageURL        string  `json:"imageUrl"`
}

// UpdateTransactionRequest mutates an existing entry. Only non-nil fields
// are applied; a change to type or amount reverses the old balance delta and
// applies the new one.
type UpdateTransactionRequest struct {
	TransactionType *string  `json:"transactionType" binding:"omitempty,oneof=payable receivable"`
	Amount          *float64 `json:"amount" binding:"omitempty,gt=0"`
	Category        *string  `json:"category"`
	Description     *string  `json:"description"`
	Date            *string  `json:"date"`
	DueDate         *string  `json:"dueDate"`
	ImageURL        *string  `json:"imageUrl"`
}
