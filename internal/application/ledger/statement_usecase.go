package ledger

import (
	"context"

	"github.com/ahadnur/nur-perfumes-os/internal/domain"
	"github.com/ahadnur/nur-perfumes-os/internal/domain/entity"
	"github.com/ahadnur/nur-perfumes-os/internal/domain/repository"
)

// ShopInfo datos de la tienda que encabezan el estado de cuenta.
type ShopInfo struct {
	Name    string
	Phone   string
	Address string
}

// StatementPDFGenerator puerto de generación del estado de cuenta en PDF.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, shop ShopInfo, customer *entity.Customer) ([]byte, error)
}

// StatementUseCase genera el estado de cuenta de un cliente en PDF.
type StatementUseCase struct {
	repo      repository.CustomerRepository
	generator StatementPDFGenerator
	shop      ShopInfo
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(repo repository.CustomerRepository, generator StatementPDFGenerator, shop ShopInfo) *StatementUseCase {
	return &StatementUseCase{repo: repo, generator: generator, shop: shop}
}

// Generate devuelve los bytes del PDF del estado de cuenta del cliente.
func (uc *StatementUseCase) Generate(ctx context.Context, customerID string) ([]byte, error) {
	customer, err := uc.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateStatementPDF(ctx, uc.shop, customer)
}
