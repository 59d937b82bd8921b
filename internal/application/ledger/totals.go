package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ahadnur/nur-perfumes-os/internal/domain/entity"
)

// TotalDue suma la deuda pendiente de una secuencia de clientes.
// Función pura: no muta la entrada, es determinista e invariante al orden.
// Entradas nil (lista o elementos) cuentan como cero.
func TotalDue(customers []*entity.Customer) decimal.Decimal {
	total := decimal.Zero
	for _, c := range customers {
		if c == nil {
			continue
		}
		total = total.Add(c.CurrentDue)
	}
	return total
}

// FilterByPhone devuelve los clientes cuyo teléfono contiene term como
// substring. Filtro puro sobre una secuencia ya cargada: no muta la entrada.
func FilterByPhone(customers []*entity.Customer, term string) []*entity.Customer {
	out := make([]*entity.Customer, 0, len(customers))
	for _, c := range customers {
		if c == nil {
			continue
		}
		if strings.Contains(c.Phone, term) {
			out = append(out, c)
		}
	}
	return out
}
