// Package checkout drives the payment flow: an order is created for the cart
// total, the hosted payment page handles the actual transaction in the
// browser, and the purchase is confirmed against the backend afterwards.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/codeit-cli/codeit/api"
	"github.com/codeit-cli/codeit/course"
	"github.com/codeit-cli/codeit/key"
	"github.com/codeit-cli/codeit/log"
	"github.com/codeit-cli/codeit/open"
	"github.com/spf13/viper"
)

// Session is a checkout in progress.
type Session struct {
	client *api.Client
	items  []*course.Course
	proof  *api.PaymentProof

	// Order is nil for free checkouts, which skip the payment step.
	Order *api.Order
}

// Begin opens a checkout session for the given courses, creating a payment
// order when the total is non-zero.
func Begin(ctx context.Context, client *api.Client, items []*course.Course) (*Session, error) {
	if len(items) == 0 {
		return nil, errors.New("nothing to check out")
	}

	session := &Session{client: client, items: items}

	var total float64
	for _, item := range items {
		total += item.Price
	}

	if total > 0 {
		order, err := client.CreateOrder(ctx, total, viper.GetString(key.CheckoutCurrency))
		if err != nil {
			return nil, fmt.Errorf("create order: %w", err)
		}
		session.Order = order
	}

	return session, nil
}

// Total sums the prices of the session's items.
func (s *Session) Total() float64 {
	var total float64
	for _, item := range s.items {
		total += item.Price
	}
	return total
}

// IsFree reports whether the session needs no payment step.
func (s *Session) IsFree() bool {
	return s.Order == nil
}

// PaymentURL builds the hosted payment page address for the session's order.
func (s *Session) PaymentURL() string {
	if s.Order == nil {
		return ""
	}

	query := url.Values{
		"order":    {s.Order.ID},
		"amount":   {fmt.Sprintf("%.2f", s.Order.Amount)},
		"currency": {s.Order.Currency},
	}
	return viper.GetString(key.CheckoutPageURL) + "?" + query.Encode()
}

// OpenPaymentPage launches the hosted payment page in the system browser.
func (s *Session) OpenPaymentPage() error {
	if s.IsFree() {
		return nil
	}

	pageURL := s.PaymentURL()
	log.Infof("opening payment page %s", pageURL)
	return open.Start(pageURL)
}

// AttachProof records the payment confirmation handed back by the hosted
// checkout page.
func (s *Session) AttachProof(proof api.PaymentProof) {
	s.proof = &proof
}

// Confirm finalizes the purchase after the payment completed, granting
// access to the session's courses.
func (s *Session) Confirm(ctx context.Context) error {
	return s.client.Purchase(ctx, s.items, s.proof)
}
