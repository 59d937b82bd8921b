// Package ledger contiene los casos de uso del libro de deudas: clientes,
// transacciones sobre la deuda y las funciones puras de filtrado y totales.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ahadnur/nur-perfumes-os/internal/application/dto"
	"github.com/ahadnur/nur-perfumes-os/internal/domain"
	"github.com/ahadnur/nur-perfumes-os/internal/domain/entity"
	"github.com/ahadnur/nur-perfumes-os/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD y de búsqueda de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente. La deuda inicial siempre es cero, sin transacción previa.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Phone:      in.Phone,
		CurrentDue: decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToCustomerResponse(customer), nil
}

// UpdateInfo sobreescribe name y phone del cliente. La deuda y la última
// transacción quedan intactas.
func (uc *CustomerUseCase) UpdateInfo(ctx context.Context, id string, in dto.UpdateCustomerRequest) error {
	if in.Name == "" || in.Phone == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateInfo(ctx, id, in.Name, in.Phone, time.Now())
}

// Delete elimina el cliente de forma permanente. No hay soft-delete.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List devuelve todos los clientes. Si term no está vacío, aplica además el
// filtro en memoria por substring de teléfono (el mismo que usa el listado de
// la UI sobre el conjunto ya cargado).
func (uc *CustomerUseCase) List(ctx context.Context, term string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if term != "" {
		list = FilterByPhone(list, term)
	}
	return dto.ToCustomerResponses(list), nil
}

// SearchByPhone devuelve los clientes cuyo teléfono comienza con prefix,
// vía range scan en el almacén.
func (uc *CustomerUseCase) SearchByPhone(ctx context.Context, prefix string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.SearchByPhonePrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	return dto.ToCustomerResponses(list), nil
}
