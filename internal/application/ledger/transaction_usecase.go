package ledger

import (
	"context"
	"time"

	"github.com/ahadnur/nur-perfumes-os/internal/application/dto"
	"github.com/ahadnur/nur-perfumes-os/internal/domain"
	"github.com/ahadnur/nur-perfumes-os/internal/domain/entity"
	"github.com/ahadnur/nur-perfumes-os/internal/domain/repository"
)

// TransactionUseCase aplica movimientos sobre la deuda de un cliente.
// Es el único camino por el que CurrentDue y LastTransaction cambian.
type TransactionUseCase struct {
	repo repository.CustomerRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.CustomerRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Apply valida y aplica la transacción, devolviendo el cliente actualizado.
//
// Reglas:
//   - deposit suma amount a la deuda; payment la resta con piso en cero.
//   - amount debe ser >= 0. Un monto cero no cambia la deuda pero sí queda
//     registrado como última transacción.
//   - La mutación es atómica en el almacén: deuda y última transacción se
//     actualizan juntas o ninguna.
func (uc *TransactionUseCase) Apply(ctx context.Context, customerID string, in dto.TransactionRequest) (*dto.CustomerResponse, error) {
	kind := entity.TransactionType(in.Type)
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.ApplyTransaction(ctx, customerID, in.Amount, kind, time.Now())
	if err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(customer), nil
}
