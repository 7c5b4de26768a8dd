package api

import (
	"context"
)

// Order is a created payment order awaiting completion.
type Order struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CreateOrder opens a payment order for the given amount.
func (c *Client) CreateOrder(ctx context.Context, amount float64, currency string) (*Order, error) {
	body := map[string]any{"amount": amount, "currency": currency}

	var order Order
	if err := c.post(ctx, "/order/create", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
