package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahadnur/nur-perfumes-os/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
//
// ApplyTransaction es la única operación que muta CurrentDue/LastTransaction:
// el adaptador debe aplicarla de forma atómica (incremento con piso en cero y
// sobreescritura de la última transacción en una sola escritura), de modo que
// transacciones concurrentes sobre el mismo cliente nunca se pierdan.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// UpdateInfo sobreescribe solo name y phone; CurrentDue y LastTransaction quedan intactos.
	UpdateInfo(ctx context.Context, id, name, phone string, updatedAt time.Time) error
	// Delete elimina el cliente de forma permanente. Devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Customer, error)
	// SearchByPhonePrefix devuelve los clientes cuyo phone comienza con prefix
	// (range scan lexicográfico semiabierto sobre la columna phone).
	SearchByPhonePrefix(ctx context.Context, prefix string) ([]*entity.Customer, error)
	// ApplyTransaction aplica el movimiento y devuelve el cliente actualizado.
	ApplyTransaction(ctx context.Context, id string, amount decimal.Decimal, kind entity.TransactionType, at time.Time) (*entity.Customer, error)
}
