package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ahadnur/nur-perfumes-os/internal/application/ledger"
	"github.com/ahadnur/nur-perfumes-os/internal/domain/entity"
)

func customersWithDues(dues ...string) []*entity.Customer {
	out := make([]*entity.Customer, 0, len(dues))
	for i, due := range dues {
		out = append(out, &entity.Customer{
			ID:         string(rune('a' + i)),
			Phone:      "0170000000",
			CurrentDue: decimal.RequireFromString(due),
		})
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TotalDue
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalDue_SecuenciaVaciaEsCero(t *testing.T) {
	assert.True(t, ledger.TotalDue(nil).IsZero())
	assert.True(t, ledger.TotalDue([]*entity.Customer{}).IsZero())
}

func TestTotalDue_SumaExacta(t *testing.T) {
	total := ledger.TotalDue(customersWithDues("100.25", "0", "399.75"))
	assert.True(t, total.Equal(decimal.RequireFromString("500")),
		"el total debe ser 500, fue %s", total)
}

// El total es invariante al orden de la secuencia.
func TestTotalDue_InvarianteAlOrden(t *testing.T) {
	a := customersWithDues("10", "20", "30")
	b := []*entity.Customer{a[2], a[0], a[1]}

	assert.True(t, ledger.TotalDue(a).Equal(ledger.TotalDue(b)))
}

// Elementos nil cuentan como cero en vez de romper la suma.
func TestTotalDue_ElementosNil(t *testing.T) {
	list := customersWithDues("50")
	list = append(list, nil)
	assert.True(t, ledger.TotalDue(list).Equal(decimal.RequireFromString("50")))
}

// TotalDue no muta su entrada.
func TestTotalDue_NoMutaLaEntrada(t *testing.T) {
	list := customersWithDues("10", "20")
	_ = ledger.TotalDue(list)
	assert.True(t, list[0].CurrentDue.Equal(decimal.RequireFromString("10")))
	assert.True(t, list[1].CurrentDue.Equal(decimal.RequireFromString("20")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FilterByPhone
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterByPhone_SubstringYNoMutacion(t *testing.T) {
	list := customersWithDues("10", "20", "30")
	list[0].Phone = "0171111111"
	list[1].Phone = "0182222222"
	list[2].Phone = "0191117133"

	out := ledger.FilterByPhone(list, "111")
	assert.Len(t, out, 2)
	assert.Len(t, list, 3, "la entrada no debe mutarse")

	// Término vacío devuelve todo (strings.Contains con "" siempre es true).
	assert.Len(t, ledger.FilterByPhone(list, ""), 3)
}
