package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tipo de movimiento sobre la deuda de un cliente.
type TransactionType string

// Tipos válidos de transacción.
const (
	TransactionDeposit TransactionType = "deposit" // aumenta la deuda
	TransactionPayment TransactionType = "payment" // disminuye la deuda (piso en cero)
)

// Valid indica si el tipo es uno de los soportados.
func (t TransactionType) Valid() bool {
	return t == TransactionDeposit || t == TransactionPayment
}

// LastTransaction último movimiento aplicado sobre la deuda del cliente.
// Solo se conserva el más reciente: cada transacción aplicada lo sobreescribe.
type LastTransaction struct {
	Type   TransactionType
	Amount decimal.Decimal
	Date   time.Time
}

// Customer representa un cliente de la tienda con su deuda pendiente.
// CurrentDue nunca es negativa: los pagos que exceden la deuda la dejan en cero.
type Customer struct {
	ID              string
	Name            string
	Phone           string // clave principal de búsqueda; no es única
	CurrentDue      decimal.Decimal
	LastTransaction *LastTransaction // nil hasta la primera transacción
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
