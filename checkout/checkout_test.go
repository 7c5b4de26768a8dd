package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codeit-cli/codeit/api"
	"github.com/codeit-cli/codeit/course"
	"github.com/codeit-cli/codeit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	Convey("Given a checkout backend", t, func() {
		var purchased []map[string]any
		var proof *api.PaymentProof

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")

			switch r.URL.Path {
			case "/order/create":
				var body map[string]any
				_ = json.NewDecoder(r.Body).Decode(&body)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"success": true,
					"data": map[string]any{
						"id":       "order_1",
						"amount":   body["amount"],
						"currency": body["currency"],
					},
				})
			case "/course/purchase":
				var body struct {
					Items   []map[string]any  `json:"items"`
					Payment *api.PaymentProof `json:"payment"`
				}
				_ = json.NewDecoder(r.Body).Decode(&body)
				purchased = body.Items
				proof = body.Payment
				_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		})

		server := httptest.NewServer(handler)
		defer server.Close()

		viper.Set(key.APIBaseURL, server.URL)
		viper.Set(key.CheckoutCurrency, "INR")
		viper.Set(key.CheckoutPageURL, "https://checkout.example.com/pay")

		client := api.NewClient(nil)

		Convey("A paid cart creates an order and builds the payment URL", func() {
			items := []*course.Course{
				{ID: "c1", Title: "Go from scratch", Price: 499},
				{ID: "c2", Title: "Rust deep dive", Price: 799},
			}

			session, err := Begin(ctx, client, items)
			So(err, ShouldBeNil)
			So(session.IsFree(), ShouldBeFalse)
			So(session.Total(), ShouldEqual, 1298)
			So(session.Order.ID, ShouldEqual, "order_1")
			So(session.Order.Currency, ShouldEqual, "INR")

			pageURL := session.PaymentURL()
			So(pageURL, ShouldStartWith, "https://checkout.example.com/pay?")
			So(pageURL, ShouldContainSubstring, "order=order_1")
			So(pageURL, ShouldContainSubstring, "currency=INR")

			Convey("Confirm posts the purchased items with the payment proof", func() {
				session.AttachProof(api.PaymentProof{
					PaymentID: "pay_42",
					OrderID:   "order_1",
					Signature: "sig",
				})

				So(session.Confirm(ctx), ShouldBeNil)
				So(len(purchased), ShouldEqual, 2)
				So(proof, ShouldNotBeNil)
				So(proof.PaymentID, ShouldEqual, "pay_42")
			})
		})

		Convey("A free cart skips the order entirely", func() {
			items := []*course.Course{{ID: "c3", Title: "Intro", Price: 0}}

			session, err := Begin(ctx, client, items)
			So(err, ShouldBeNil)
			So(session.IsFree(), ShouldBeTrue)
			So(session.PaymentURL(), ShouldBeEmpty)
			So(session.OpenPaymentPage(), ShouldBeNil)
		})

		Convey("An empty cart is refused", func() {
			_, err := Begin(ctx, client, nil)
			So(err, ShouldNotBeNil)
		})
	})
}
