package api

import (
	"context"

	"github.com/codeit-cli/codeit/course"
)

// Cart fetches the current account's cart contents.
func (c *Client) Cart(ctx context.Context) ([]*course.Course, error) {
	var items []*course.Course
	if err := c.get(ctx, "/cart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart puts a course into the server-side cart.
func (c *Client) AddToCart(ctx context.Context, courseID string) error {
	return c.post(ctx, "/cart/add", map[string]string{"courseId": courseID}, nil)
}

// RemoveFromCart removes a course from the server-side cart.
func (c *Client) RemoveFromCart(ctx context.Context, courseID string) error {
	return c.post(ctx, "/cart/remove", map[string]string{"courseId": courseID}, nil)
}
