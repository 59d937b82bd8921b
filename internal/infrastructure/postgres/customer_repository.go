package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ahadnur/nur-perfumes-os/internal/domain"
	"github.com/ahadnur/nur-perfumes-os/internal/domain/entity"
	"github.com/ahadnur/nur-perfumes-os/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// phoneRangeSentinel cota superior del range scan por prefijo de teléfono:
// U+F8FF es mayor que cualquier carácter del alfabeto de números telefónicos
// (dígitos, '+', '-'), así que [prefix, prefix+sentinel] cubre exactamente
// los teléfonos que comienzan con prefix.
const phoneRangeSentinel = ""

const customerColumns = `id, name, phone, current_due, last_tx_type, last_tx_amount, last_tx_date, created_at, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. La deuda inicial siempre es cero y sin transacción previa.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, current_due, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Phone, customer.CurrentDue,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// UpdateInfo sobreescribe solo name y phone. CurrentDue y LastTransaction no se tocan.
func (r *CustomerRepo) UpdateInfo(ctx context.Context, id, name, phone string, updatedAt time.Time) error {
	query := `UPDATE customers SET name = $2, phone = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, name, phone, updatedAt)
	if err != nil {
		return fmt.Errorf("update customer info: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID. Borrar dos veces falla: la segunda devuelve ErrNotFound.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los clientes. Sin paginación: el libro de deudas de una
// tienda pequeña son cientos de registros, no millones.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// SearchByPhonePrefix devuelve los clientes cuyo phone comienza con prefix,
// como range scan [prefix, prefix+sentinel] sobre la columna phone.
func (r *CustomerRepo) SearchByPhonePrefix(ctx context.Context, prefix string) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE phone >= $1 AND phone <= $2`
	rows, err := r.q.Query(ctx, query, prefix, prefix+phoneRangeSentinel)
	if err != nil {
		return nil, fmt.Errorf("search customers by phone: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// ApplyTransaction aplica el movimiento sobre la deuda en un solo UPDATE:
// el incremento (o decremento con piso en cero vía GREATEST) y la
// sobreescritura de la última transacción ocurren atómicamente en el motor,
// así que transacciones concurrentes sobre el mismo cliente nunca se pierden
// y deuda y última transacción no pueden divergir.
func (r *CustomerRepo) ApplyTransaction(ctx context.Context, id string, amount decimal.Decimal, kind entity.TransactionType, at time.Time) (*entity.Customer, error) {
	query := `
		UPDATE customers SET
			current_due = CASE WHEN $2 = 'deposit'
				THEN current_due + $3
				ELSE GREATEST(current_due - $3, 0) END,
			last_tx_type = $2,
			last_tx_amount = $3,
			last_tx_date = $4,
			updated_at = $4
		WHERE id = $1
		RETURNING ` + customerColumns
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id, string(kind), amount, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("apply transaction: %w", err)
	}
	return c, nil
}

// scanCustomer materializa una fila de customers; las columnas last_tx_* son
// NULL hasta la primera transacción.
func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var (
		c        entity.Customer
		txType   *string
		txAmount *decimal.Decimal
		txDate   *time.Time
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.CurrentDue,
		&txType, &txAmount, &txDate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if txType != nil && txAmount != nil && txDate != nil {
		c.LastTransaction = &entity.LastTransaction{
			Type:   entity.TransactionType(*txType),
			Amount: *txAmount,
			Date:   *txDate,
		}
	}
	return &c, nil
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
