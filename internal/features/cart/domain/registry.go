package domain

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned for an unknown or deleted cart id.
var ErrCartNotFound = errors.New("cart not found")

// Registry holds the live carts in memory. Carts last until deleted or
// until the process exits.
type Registry struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Cart)}
}

// Create registers a new empty cart under a random id.
func (r *Registry) Create() *Cart {
	cart := NewCart(uuid.NewString())

	r.mu.Lock()
	r.carts[cart.ID()] = cart
	r.mu.Unlock()

	return cart
}

// Get returns the cart with id.
func (r *Registry) Get(id string) (*Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// Delete discards the cart with id.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[id]; !ok {
		return ErrCartNotFound
	}
	delete(r.carts, id)
	return nil
}

// Len returns the number of live carts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}
