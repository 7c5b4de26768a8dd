// Package cart mirrors the server-side shopping cart with optimistic local
// mutations. Additions apply locally first and roll back if the server
// refuses them; removals commit only after a short undo window.
package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/codeit-cli/codeit/api"
	"github.com/codeit-cli/codeit/course"
	"github.com/codeit-cli/codeit/key"
	"github.com/codeit-cli/codeit/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// pendingRemoval holds a locally removed item until its commit timer fires.
type pendingRemoval struct {
	course *course.Course
	timer  *time.Timer
}

// Cart is the local mirror of the account's server-side cart.
type Cart struct {
	client *api.Client

	mu      sync.Mutex
	items   []*course.Course
	pending map[string]*pendingRemoval

	undoWindow time.Duration
}

// New creates a cart mirror using the configured undo window.
func New(client *api.Client) *Cart {
	return &Cart{
		client:     client,
		pending:    make(map[string]*pendingRemoval),
		undoWindow: time.Duration(viper.GetInt(key.CartUndoWindow)) * time.Second,
	}
}

// Refresh replaces the local mirror with the server's cart contents.
func (c *Cart) Refresh(ctx context.Context) error {
	items, err := c.client.Cart(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	return nil
}

// Items returns a snapshot of the cart contents.
func (c *Cart) Items() []*course.Course {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*course.Course(nil), c.items...)
}

// Total sums the prices of the cart contents.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

// Contains reports whether a course is currently in the cart.
func (c *Cart) Contains(courseID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.containsLocked(courseID)
}

func (c *Cart) containsLocked(courseID string) bool {
	return lo.ContainsBy(c.items, func(item *course.Course) bool {
		return item.ID == courseID
	})
}

// Add puts a course into the cart. The item appears locally right away and
// is rolled back if the server refuses the addition. Owned and duplicate
// courses are refused before any network call.
func (c *Cart) Add(ctx context.Context, item *course.Course, owner *api.User) error {
	c.mu.Lock()

	if c.containsLocked(item.ID) {
		c.mu.Unlock()
		return fmt.Errorf("%s is already in the cart", item.Title)
	}
	if owner != nil && owner.HasPurchased(item.ID) {
		c.mu.Unlock()
		return fmt.Errorf("you already own %s", item.Title)
	}

	c.items = append(c.items, item)
	c.mu.Unlock()

	if err := c.client.AddToCart(ctx, item.ID); err != nil {
		// Roll the optimistic addition back.
		c.mu.Lock()
		c.items = lo.Filter(c.items, func(i *course.Course, _ int) bool {
			return i.ID != item.ID
		})
		c.mu.Unlock()
		return err
	}

	return nil
}

// Remove takes a course out of the local mirror immediately and schedules the
// server-side removal after the undo window. Within the window Undo restores
// the item without the server ever noticing.
func (c *Cart) Remove(courseID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, found := lo.Find(c.items, func(i *course.Course) bool {
		return i.ID == courseID
	})
	if !found {
		return
	}

	c.items = lo.Filter(c.items, func(i *course.Course, _ int) bool {
		return i.ID != courseID
	})

	// A repeated removal replaces the pending commit.
	if prev, ok := c.pending[courseID]; ok {
		prev.timer.Stop()
	}

	removal := &pendingRemoval{course: item}
	removal.timer = time.AfterFunc(c.undoWindow, func() {
		c.commit(courseID)
	})
	c.pending[courseID] = removal
}

// Undo restores a removal whose undo window has not elapsed yet.
// It reports whether anything was restored.
func (c *Cart) Undo(courseID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	removal, ok := c.pending[courseID]
	if !ok {
		return false
	}

	removal.timer.Stop()
	delete(c.pending, courseID)
	c.items = append(c.items, removal.course)
	return true
}

// commit performs the deferred server-side removal.
func (c *Cart) commit(courseID string) {
	c.mu.Lock()
	_, ok := c.pending[courseID]
	delete(c.pending, courseID)
	c.mu.Unlock()

	if !ok {
		return
	}

	if err := c.client.RemoveFromCart(context.Background(), courseID); err != nil {
		log.Errorf("commit cart removal %s: %v", courseID, err)
	}
}

// Flush commits every pending removal immediately. Called on teardown so no
// removal is lost to an unexpired timer.
func (c *Cart) Flush(ctx context.Context) {
	c.mu.Lock()
	ids := lo.Keys(c.pending)
	for _, removal := range c.pending {
		removal.timer.Stop()
	}
	c.pending = make(map[string]*pendingRemoval)
	c.mu.Unlock()

	for _, id := range ids {
		if err := c.client.RemoveFromCart(ctx, id); err != nil {
			log.Errorf("flush cart removal %s: %v", id, err)
		}
	}
}
