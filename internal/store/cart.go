package store

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/romsper/testing-playground-client/internal/model"
	"github.com/romsper/testing-playground-client/internal/storage"
)

const cartNamespace = "cart"

// CartStore holds the ordered collection of products added to the cart.
// Duplicate product ids are permitted. Every mutation is total: persistence
// failures are logged and never surface to the caller.
type CartStore struct {
	storage storage.Storage
	logger  *zerolog.Logger

	mu    sync.Mutex
	items []model.Product
}

// NewCartStore creates a CartStore and restores any persisted collection.
func NewCartStore(st storage.Storage, logger *zerolog.Logger) *CartStore {
	c := &CartStore{
		storage: st,
		logger:  logger,
		items:   []model.Product{},
	}
	c.restore()

	return c
}

// Items returns a copy of the collection in insertion order.
func (c *CartStore) Items() []model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]model.Product, len(c.items))
	copy(items, c.items)

	return items
}

// Len returns the number of items in the cart.
func (c *CartStore) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Total returns the sum of all item prices.
func (c *CartStore) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Price
	}

	return total
}

// Add appends the product to the end of the collection.
func (c *CartStore) Add(product model.Product) {
	c.mu.Lock()
	c.items = append(c.items, product)
	c.mu.Unlock()

	c.persist()
}

// RemoveAllMatching removes every item whose id equals the given product's id.
func (c *CartStore) RemoveAllMatching(product model.Product) {
	c.mu.Lock()
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != product.ID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.mu.Unlock()

	c.persist()
}

// RemoveOne removes the first item whose id equals the given product's id,
// if any.
func (c *CartStore) RemoveOne(product model.Product) {
	c.mu.Lock()
	for i, item := range c.items {
		if item.ID == product.ID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	c.persist()
}

// Clear empties the collection.
func (c *CartStore) Clear() {
	c.mu.Lock()
	c.items = []model.Product{}
	c.mu.Unlock()

	c.persist()
}

func (c *CartStore) persist() {
	c.mu.Lock()
	data, err := json.Marshal(c.items)
	c.mu.Unlock()

	if err != nil {
		c.logger.Error().Err(err).Msg("failed to encode cart")
		return
	}

	if err := c.storage.Write(cartNamespace, data); err != nil {
		c.logger.Error().Err(err).Msg("failed to persist cart")
	}
}

func (c *CartStore) restore() {
	data, err := c.storage.Read(cartNamespace)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.Warn().Err(err).Msg("failed to read persisted cart")
		}
		return
	}

	var items []model.Product
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn().Err(err).Msg("discarding corrupt persisted cart")
		return
	}

	if items == nil {
		items = []model.Product{}
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}
