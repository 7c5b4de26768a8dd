package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/codeit-cli/codeit/api"
	"github.com/codeit-cli/codeit/course"
	"github.com/codeit-cli/codeit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

type backend struct {
	adds    atomic.Int32
	removes atomic.Int32
	failAdd bool
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/cart/add":
		b.adds.Add(1)
		if b.failAdd {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "course unavailable"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	case "/cart/remove":
		b.removes.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	case "/cart":
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"_id": "c1", "title": "Go from scratch", "price": 499},
			},
		})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestCart(b *backend) (*Cart, *httptest.Server) {
	server := httptest.NewServer(b)
	viper.Set(key.APIBaseURL, server.URL)
	viper.Set(key.CartUndoWindow, 0)
	return New(api.NewClient(nil)), server
}

func TestCart(t *testing.T) {
	ctx := context.Background()

	Convey("Given a cart mirror", t, func() {
		b := &backend{}
		c, server := newTestCart(b)
		defer server.Close()

		rust := &course.Course{ID: "c2", Title: "Rust deep dive", Price: 799}

		Convey("Refresh pulls the server contents", func() {
			So(c.Refresh(ctx), ShouldBeNil)
			So(len(c.Items()), ShouldEqual, 1)
			So(c.Total(), ShouldEqual, 499)
			So(c.Contains("c1"), ShouldBeTrue)
		})

		Convey("Add applies optimistically and hits the server", func() {
			So(c.Add(ctx, rust, nil), ShouldBeNil)
			So(c.Contains("c2"), ShouldBeTrue)
			So(b.adds.Load(), ShouldEqual, 1)
		})

		Convey("Duplicate additions are refused locally", func() {
			So(c.Add(ctx, rust, nil), ShouldBeNil)
			So(c.Add(ctx, rust, nil), ShouldNotBeNil)
			So(b.adds.Load(), ShouldEqual, 1)
		})

		Convey("Owned courses are refused locally", func() {
			owner := &api.User{PurchasedCourses: []string{"c2"}}
			So(c.Add(ctx, rust, owner), ShouldNotBeNil)
			So(c.Contains("c2"), ShouldBeFalse)
			So(b.adds.Load(), ShouldEqual, 0)
		})

		Convey("A refused addition rolls back the local mirror", func() {
			b.failAdd = true
			So(c.Add(ctx, rust, nil), ShouldNotBeNil)
			So(c.Contains("c2"), ShouldBeFalse)
		})

		Convey("Removal disappears locally and can be undone", func() {
			So(c.Refresh(ctx), ShouldBeNil)

			// A wide window keeps the commit timer from firing mid-test.
			c.undoWindow = time.Minute

			c.Remove("c1")
			So(c.Contains("c1"), ShouldBeFalse)
			So(b.removes.Load(), ShouldEqual, 0)

			So(c.Undo("c1"), ShouldBeTrue)
			So(c.Contains("c1"), ShouldBeTrue)
			So(b.removes.Load(), ShouldEqual, 0)

			So(c.Undo("c1"), ShouldBeFalse)
		})

		Convey("An expired window commits the removal to the server", func() {
			So(c.Refresh(ctx), ShouldBeNil)

			c.Remove("c1")

			// zero undo window, the commit fires immediately
			So(func() bool {
				for i := 0; i < 50; i++ {
					if b.removes.Load() == 1 {
						return true
					}
					time.Sleep(10 * time.Millisecond)
				}
				return false
			}(), ShouldBeTrue)

			So(c.Undo("c1"), ShouldBeFalse)
		})

		Convey("Flush commits pending removals at once", func() {
			So(c.Refresh(ctx), ShouldBeNil)
			c.undoWindow = time.Minute

			c.Remove("c1")
			c.Flush(ctx)

			So(b.removes.Load(), ShouldEqual, 1)
			So(c.Undo("c1"), ShouldBeFalse)
		})
	})
}
