package postgres

import (
	"context"
	"fmt"

	"github.com/ahadnur/nur-perfumes-os/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard de deudas.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetDuesSummary devuelve los totales del libro de deudas en una sola consulta.
// Usa COALESCE para devolver cero si no hay clientes.
func (r *AnalyticsRepo) GetDuesSummary(ctx context.Context) (*repository.DuesSummaryResult, error) {
	const query = `
	SELECT
	    COUNT(*)                                          AS customer_count,
	    COALESCE(SUM(current_due), 0)                     AS total_due,
	    COUNT(*) FILTER (WHERE current_due > 0)           AS customers_in_debt,
	    MAX(last_tx_date)                                 AS last_activity
	FROM customers`

	var res repository.DuesSummaryResult
	err := r.q.QueryRow(ctx, query).Scan(
		&res.CustomerCount,
		&res.TotalDue,
		&res.CustomersInDebt,
		&res.LastActivity,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDuesSummary: %w", err)
	}
	return &res, nil
}
