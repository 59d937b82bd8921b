package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahadnur/nur-perfumes-os/internal/application/dto"
	"github.com/ahadnur/nur-perfumes-os/internal/application/ledger"
	"github.com/ahadnur/nur-perfumes-os/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests CustomerUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Un cliente nuevo nace con deuda cero, sin última transacción y con ID asignado.
func TestCreate_ClienteNuevoConDeudaCero(t *testing.T) {
	repo := newMemRepo()
	uc := ledger.NewCustomerUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "A", Phone: "0170000000"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID, "el almacén debe asignar un ID")
	assert.True(t, out.CurrentDue.IsZero(), "la deuda inicial siempre es cero")
	assert.Nil(t, out.LastTransaction, "sin transacciones al crear")
	assert.False(t, out.CreatedAt.IsZero())
}

// name y phone son obligatorios.
func TestCreate_CamposObligatorios(t *testing.T) {
	repo := newMemRepo()
	uc := ledger.NewCustomerUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "", Phone: "0170000000"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateCustomerRequest{Name: "A", Phone: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// UpdateInfo solo toca name y phone: la deuda y la última transacción quedan intactas.
func TestUpdateInfo_NoTocaLaDeuda(t *testing.T) {
	repo := newMemRepo()
	uc := ledger.NewCustomerUseCase(repo)
	txUC := ledger.NewTransactionUseCase(repo)
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "A", Phone: "0170000000"})
	require.NoError(t, err)
	_, err = txUC.Apply(ctx, c.ID, dto.TransactionRequest{Amount: d("250"), Type: "deposit"})
	require.NoError(t, err)

	err = uc.UpdateInfo(ctx, c.ID, dto.UpdateCustomerRequest{Name: "B", Phone: "0189999999"})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)
	assert.Equal(t, "0189999999", got.Phone)
	assert.True(t, got.CurrentDue.Equal(d("250")), "la deuda no debe cambiar al editar contacto")
	require.NotNil(t, got.LastTransaction, "la última transacción no debe cambiar al editar contacto")
	assert.Equal(t, "deposit", got.LastTransaction.Type)
}

// UpdateInfo sobre un cliente inexistente falla con ErrNotFound.
func TestUpdateInfo_ClienteInexistente(t *testing.T) {
	repo := newMemRepo()
	uc := ledger.NewCustomerUseCase(repo)

	err := uc.UpdateInfo(context.Background(), "no-existe", dto.UpdateCustomerRequest{Name: "B", Phone: "018"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Borrar es terminal: el get posterior falla, y borrar dos veces también.
func TestDelete_TerminalYNoIdempotente(t *testing.T) {
	repo := newMemRepo()
	uc := ledger.NewCustomerUseCase(repo)
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "A", Phone: "0170000000"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, c.ID))

	_, err = uc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "get tras borrar debe fallar")

	err = uc.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "el segundo delete debe fallar")
}

// List sin término devuelve todos; con término filtra por substring del teléfono.
func TestList_FiltroPorSubstring(t *testing.T) {
	repo := newMemRepo()
	uc := ledger.NewCustomerUseCase(repo)
	ctx := context.Background()

	for _, p := range []string{"0171111111", "0182222222", "0193331710"} {
		_, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "C" + p, Phone: p})
		require.NoError(t, err)
	}

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// "171" aparece en medio de "0171111111" y de "0193331710": el filtro del
	// listado es por substring, no por prefijo.
	filtered, err := uc.List(ctx, "171")
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, c := range filtered {
		assert.Contains(t, c.Phone, "171")
	}
}

// SearchByPhone es por prefijo: "017" incluye a los 017... y excluye a los 018...
func TestSearchByPhone_PorPrefijo(t *testing.T) {
	repo := newMemRepo()
	uc := ledger.NewCustomerUseCase(repo)
	ctx := context.Background()

	for _, p := range []string{"0171111111", "0172222222", "0183333333"} {
		_, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "C" + p, Phone: p})
		require.NoError(t, err)
	}

	out, err := uc.SearchByPhone(ctx, "017")
	require.NoError(t, err)
	require.Len(t, out, 2, "solo los teléfonos que comienzan con 017")
	for _, c := range out {
		assert.Regexp(t, "^017", c.Phone)
	}
}
