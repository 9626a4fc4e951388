package domain

import (
	"sync"

	catalogdomain "storefront/internal/features/catalog/domain"
)

// Item is one product line in a cart. Quantity is always at least 1.
type Item struct {
	Product  catalogdomain.Product `json:"product"`
	Quantity int                   `json:"quantity"`
}

// Subtotal returns price times quantity.
func (i Item) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// View is a consistent snapshot of a cart.
type View struct {
	ID    string  `json:"id"`
	Items []Item  `json:"items"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// Cart is an ordered collection of items keyed by product id. Items keep
// the order in which their product was first added. A Cart is safe for
// concurrent use; each operation is atomic.
type Cart struct {
	id string

	mu    sync.RWMutex
	items []Item
}

// NewCart creates an empty cart.
func NewCart(id string) *Cart {
	return &Cart{id: id, items: []Item{}}
}

// ID returns the cart identifier.
func (c *Cart) ID() string {
	return c.id
}

// Add puts one unit of product in the cart. A product already present has
// its quantity incremented and its details refreshed; it is never
// duplicated.
func (c *Cart) Add(product catalogdomain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(product.ID); i >= 0 {
		c.items[i].Product = product
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, Item{Product: product, Quantity: 1})
}

// Remove deletes the product's line. Removing an absent product is a no-op.
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(productID)
}

// SetQuantity overwrites the product's quantity. A quantity below 1
// removes the line. Absent products are left absent.
func (c *Cart) SetQuantity(productID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity < 1 {
		c.remove(productID)
		return
	}
	if i := c.indexOf(productID); i >= 0 {
		c.items[i].Quantity = quantity
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = []Item{}
}

// Contains reports whether the product has a line in the cart.
func (c *Cart) Contains(productID int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexOf(productID) >= 0
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyItems()
}

// Total returns the sum of price times quantity over all lines.
func (c *Cart) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.total()
}

// Count returns the number of units across all lines.
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.count()
}

// View returns the items, count and total read under one lock.
func (c *Cart) View() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return View{
		ID:    c.id,
		Items: c.copyItems(),
		Count: c.count(),
		Total: c.total(),
	}
}

func (c *Cart) indexOf(productID int) int {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) remove(productID int) {
	if i := c.indexOf(productID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

func (c *Cart) copyItems() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) total() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.Subtotal()
	}
	return sum
}

func (c *Cart) count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}
