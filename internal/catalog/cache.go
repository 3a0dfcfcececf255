// Package catalog holds an in-memory snapshot of the store's clients and
// products. Refresh is caller-initiated (page entry and after a successful
// purchase); there is no background polling.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/store"
)

// ErrUnknownProduct is returned when a stock lookup targets a product id
// the cache has never seen. A refresh may resolve it.
var ErrUnknownProduct = errors.New("product not in catalog")

type Cache struct {
	store *store.Client

	mu       sync.RWMutex
	clients  []store.ClientRecord
	products []store.ProductRecord
}

func New(st *store.Client) *Cache {
	return &Cache{store: st}
}

// RefreshClients replaces the cached client list with the store's current
// one. On failure the previous snapshot is kept intact.
func (c *Cache) RefreshClients(ctx context.Context) ([]store.ClientRecord, error) {
	clients, err := c.store.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.clients = clients
	c.mu.Unlock()
	return c.Clients(), nil
}

// RefreshProducts replaces the cached product list, same contract as
// RefreshClients.
func (c *Cache) RefreshProducts(ctx context.Context) ([]store.ProductRecord, error) {
	products, err := c.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
	return c.Products(), nil
}

// AvailableStock returns the most recently fetched stock quantity for a
// product. The figure is a snapshot: authoritative stock lives on the store.
func (c *Cache) AvailableStock(productID uint) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == productID {
			return p.StockQuantity, nil
		}
	}
	return 0, fmt.Errorf("%w: id %d", ErrUnknownProduct, productID)
}

// Product returns the cached record for a product id.
func (c *Cache) Product(productID uint) (store.ProductRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == productID {
			return p, true
		}
	}
	return store.ProductRecord{}, false
}

// Client returns the cached record for a client id.
func (c *Cache) Client(clientID uint) (store.ClientRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cl := range c.clients {
		if cl.ID == clientID {
			return cl, true
		}
	}
	return store.ClientRecord{}, false
}

// Clients returns a copy of the cached client list.
func (c *Cache) Clients() []store.ClientRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]store.ClientRecord, len(c.clients))
	copy(out, c.clients)
	return out
}

// Products returns a copy of the cached product list.
func (c *Cache) Products() []store.ProductRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]store.ProductRecord, len(c.products))
	copy(out, c.products)
	return out
}
