package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DuesSummaryResult totales del libro de deudas, calculados en la base.
type DuesSummaryResult struct {
	CustomerCount   int64
	TotalDue        decimal.Decimal
	CustomersInDebt int64      // clientes con CurrentDue > 0
	LastActivity    *time.Time // fecha de la última transacción registrada (nil si nunca hubo)
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	GetDuesSummary(ctx context.Context) (*DuesSummaryResult, error)
}
