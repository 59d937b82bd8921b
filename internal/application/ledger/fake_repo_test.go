package ledger_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahadnur/nur-perfumes-os/internal/domain"
	"github.com/ahadnur/nur-perfumes-os/internal/domain/entity"
	"github.com/ahadnur/nur-perfumes-os/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria para los tests
// ──────────────────────────────────────────────────────────────────────────────

var _ repository.CustomerRepository = (*memRepo)(nil)

// memRepo implementa CustomerRepository en memoria con la misma semántica que
// el adaptador de PostgreSQL: ApplyTransaction es atómica (bajo el mutex) con
// piso en cero, y el range scan por prefijo usa la misma cota superior.
type memRepo struct {
	mu        sync.Mutex
	customers map[string]*entity.Customer
}

func newMemRepo() *memRepo {
	return &memRepo{customers: make(map[string]*entity.Customer)}
}

func cloneCustomer(c *entity.Customer) *entity.Customer {
	out := *c
	if c.LastTransaction != nil {
		tx := *c.LastTransaction
		out.LastTransaction = &tx
	}
	return &out
}

func (r *memRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[customer.ID] = cloneCustomer(customer)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return cloneCustomer(c), nil
}

func (r *memRepo) UpdateInfo(_ context.Context, id, name, phone string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Name = name
	c.Phone = phone
	c.UpdatedAt = updatedAt
	return nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *memRepo) List(_ context.Context) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, cloneCustomer(c))
	}
	return out, nil
}

func (r *memRepo) SearchByPhonePrefix(_ context.Context, prefix string) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Customer
	for _, c := range r.customers {
		if strings.HasPrefix(c.Phone, prefix) {
			out = append(out, cloneCustomer(c))
		}
	}
	return out, nil
}

func (r *memRepo) ApplyTransaction(_ context.Context, id string, amount decimal.Decimal, kind entity.TransactionType, at time.Time) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if kind == entity.TransactionDeposit {
		c.CurrentDue = c.CurrentDue.Add(amount)
	} else {
		c.CurrentDue = c.CurrentDue.Sub(amount)
		if c.CurrentDue.IsNegative() {
			c.CurrentDue = decimal.Zero
		}
	}
	c.LastTransaction = &entity.LastTransaction{Type: kind, Amount: amount, Date: at}
	c.UpdatedAt = at
	return cloneCustomer(c), nil
}
