package models

type OrderRequest struct {
	Amount  float64 `json:"amount"`
	OrderID string  `json:"orderId"`
}
