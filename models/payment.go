package models

// OrderRequest carries the amount in the currency's minor unit (paise for INR).
type OrderRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// Order is a payment order created at the gateway.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status,omitempty"`
}
