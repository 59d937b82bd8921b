// Package analytics contiene los casos de uso de reportes del libro de deudas.
package analytics

import (
	"context"

	"github.com/ahadnur/nur-perfumes-os/internal/application/dto"
	"github.com/ahadnur/nur-perfumes-os/internal/domain/repository"
)

// DashboardUseCase genera el resumen del libro de deudas para el dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Los totales se
// calculan en la base, no recorriendo la lista en la aplicación.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary devuelve el total de deudas, cuántos clientes hay, cuántos deben
// y la fecha de la última transacción registrada.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DuesSummaryResponse, error) {
	res, err := uc.analyticsRepo.GetDuesSummary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DuesSummaryResponse{
		CustomerCount:   res.CustomerCount,
		TotalDue:        res.TotalDue,
		CustomersInDebt: res.CustomersInDebt,
		LastActivity:    res.LastActivity,
	}, nil
}
