package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahadnur/nur-perfumes-os/internal/domain/entity"
)

// CreateCustomerRequest alta de cliente. name y phone son obligatorios.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateCustomerRequest edición de datos de contacto. No toca la deuda.
type UpdateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// TransactionRequest movimiento sobre la deuda: deposit o payment.
type TransactionRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"` // "deposit" | "payment"
}

// LastTransactionResponse último movimiento aplicado.
type LastTransactionResponse struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// CustomerResponse representación HTTP de un cliente.
type CustomerResponse struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Phone           string                   `json:"phone"`
	CurrentDue      decimal.Decimal          `json:"current_due"`
	LastTransaction *LastTransactionResponse `json:"last_transaction,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// ToCustomerResponse convierte la entidad a su DTO de respuesta.
func ToCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	out := &CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		CurrentDue: c.CurrentDue,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.LastTransaction != nil {
		out.LastTransaction = &LastTransactionResponse{
			Type:   string(c.LastTransaction.Type),
			Amount: c.LastTransaction.Amount,
			Date:   c.LastTransaction.Date,
		}
	}
	return out
}

// ToCustomerResponses convierte una lista de entidades.
func ToCustomerResponses(list []*entity.Customer) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToCustomerResponse(c))
	}
	return out
}

// DuesSummaryResponse totales del libro de deudas para el dashboard.
type DuesSummaryResponse struct {
	CustomerCount   int64           `json:"customer_count"`
	TotalDue        decimal.Decimal `json:"total_due"`
	CustomersInDebt int64           `json:"customers_in_debt"`
	LastActivity    *time.Time      `json:"last_activity,omitempty"`
}
