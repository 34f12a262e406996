// Package memory is an in-process catalog store that enforces the same
// relational rules as the PostgreSQL schema: generated IDs, the item to
// product foreign key and cascade delete. Service and handler tests run
// against it.
package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ghuser/productcatalog/services/catalog/domain/models"
)

// ErrForeignKey is returned when an item references a product that does not
// exist, mirroring the store's FK constraint.
var ErrForeignKey = errors.New("foreign key violation: items.product_id")

// ErrNoRows is returned when Update or Delete targets a row that is gone.
var ErrNoRows = errors.New("no rows affected")

// Store holds products and items. The zero value is not usable; call New.
type Store struct {
	mu          sync.RWMutex
	products    map[int64]models.Product
	items       map[int64]models.Item
	nextProduct int64
	nextItem    int64

	// Fail, when set, is returned by every operation. Tests use it to
	// simulate storage faults.
	Fail error
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		products: make(map[int64]models.Product),
		items:    make(map[int64]models.Item),
	}
}

// Products returns a ProductRepository view of the store.
func (s *Store) Products() *ProductRepository { return &ProductRepository{s: s} }

// Items returns an ItemRepository view of the store.
func (s *Store) Items() *ItemRepository { return &ItemRepository{s: s} }

func (s *Store) fault(ctx context.Context) error {
	if s.Fail != nil {
		return s.Fail
	}
	return ctx.Err()
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// productCopy detaches the stored row from the caller; Items is never stored.
func productCopy(p models.Product) *models.Product {
	p.Items = nil
	return &p
}

// withOwner returns a copy of the item joined to its product. Callers hold mu.
func (s *Store) withOwner(i models.Item) *models.Item {
	if p, ok := s.products[i.ProductID]; ok {
		i.Product = productCopy(p)
	}
	return &i
}

// ProductRepository implements repositories.ProductRepository over a Store.
type ProductRepository struct{ s *Store }

func (r *ProductRepository) GetAll(ctx context.Context) ([]*models.Product, error) {
	if err := r.s.fault(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.Product, 0, len(r.s.products))
	for _, id := range sortedKeys(r.s.products) {
		out = append(out, productCopy(r.s.products[id]))
	}
	return out, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	if err := r.s.fault(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return productCopy(p), nil
}

func (r *ProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := r.s.fault(ctx); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.products[id]
	return ok, nil
}

func (r *ProductRepository) Add(ctx context.Context, p *models.Product) (*models.Product, error) {
	if err := r.s.fault(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextProduct++
	row := *p
	row.ID = r.s.nextProduct
	row.Items = nil
	r.s.products[row.ID] = row
	return productCopy(row), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	if err := r.s.fault(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	old, ok := r.s.products[p.ID]
	if !ok {
		return fmt.Errorf("update product %d: %w", p.ID, ErrNoRows)
	}
	row := *p
	row.Items = nil
	// Creation audit columns are not part of the UPDATE statement.
	row.CreatedBy, row.CreatedOn = old.CreatedBy, old.CreatedOn
	r.s.products[p.ID] = row
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, p *models.Product) error {
	if err := r.s.fault(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[p.ID]; !ok {
		return fmt.Errorf("delete product %d: %w", p.ID, ErrNoRows)
	}
	delete(r.s.products, p.ID)
	for id, i := range r.s.items {
		if i.ProductID == p.ID {
			delete(r.s.items, id)
		}
	}
	return nil
}

func (r *ProductRepository) GetRelatedItems(ctx context.Context, productID int64) ([]*models.Item, error) {
	if err := r.s.fault(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.Item, 0)
	for _, id := range sortedKeys(r.s.items) {
		if i := r.s.items[id]; i.ProductID == productID {
			out = append(out, &i)
		}
	}
	return out, nil
}

// ItemRepository implements repositories.ItemRepository over a Store.
type ItemRepository struct{ s *Store }

func (r *ItemRepository) GetAll(ctx context.Context) ([]*models.Item, error) {
	if err := r.s.fault(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.Item, 0, len(r.s.items))
	for _, id := range sortedKeys(r.s.items) {
		out = append(out, r.s.withOwner(r.s.items[id]))
	}
	return out, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	if err := r.s.fault(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return r.s.withOwner(i), nil
}

func (r *ItemRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := r.s.fault(ctx); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.items[id]
	return ok, nil
}

func (r *ItemRepository) Add(ctx context.Context, i *models.Item) (*models.Item, error) {
	if err := r.s.fault(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[i.ProductID]; !ok {
		return nil, fmt.Errorf("insert item: %w", ErrForeignKey)
	}
	r.s.nextItem++
	row := *i
	row.ID = r.s.nextItem
	row.Product = nil
	r.s.items[row.ID] = row
	return &row, nil
}

func (r *ItemRepository) Update(ctx context.Context, i *models.Item) error {
	if err := r.s.fault(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[i.ID]; !ok {
		return fmt.Errorf("update item %d: %w", i.ID, ErrNoRows)
	}
	if _, ok := r.s.products[i.ProductID]; !ok {
		return fmt.Errorf("update item %d: %w", i.ID, ErrForeignKey)
	}
	row := *i
	row.Product = nil
	r.s.items[i.ID] = row
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, i *models.Item) error {
	if err := r.s.fault(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[i.ID]; !ok {
		return fmt.Errorf("delete item %d: %w", i.ID, ErrNoRows)
	}
	delete(r.s.items, i.ID)
	return nil
}
