package alerts

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// LowStockUseCase genera el reporte de alertas de stock bajo de una empresa:
// una alerta por (producto, bodega) con cantidad estrictamente menor al umbral
// del producto. La ausencia de datos nunca es un error: empresa desconocida o
// sin filas calificadas produce una lista vacía con total cero.
type LowStockUseCase struct {
	alertRepo repository.AlertRepository
	velocity  SalesVelocity
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(alertRepo repository.AlertRepository, velocity SalesVelocity) *LowStockUseCase {
	return &LowStockUseCase{alertRepo: alertRepo, velocity: velocity}
}

// Execute arma el reporte para la empresa dada.
func (uc *LowStockUseCase) Execute(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error) {
	items, err := uc.alertRepo.ListLowStock(ctx, companyID)
	if err != nil {
		return nil, err
	}

	alertList := make([]dto.LowStockAlertDTO, 0, len(items))
	for _, item := range items {
		alert := dto.LowStockAlertDTO{
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			SKU:           item.SKU,
			WarehouseID:   item.WarehouseID,
			WarehouseName: item.WarehouseName,
			CurrentStock:  item.CurrentStock,
			Threshold:     item.Threshold,
		}

		avg, err := uc.velocity.AverageDailySales(ctx, item.ProductID, item.WarehouseID)
		if err != nil {
			return nil, err
		}
		// Divisor cero o negativo => estimado null; nunca dividir por cero.
		if avg.GreaterThan(decimal.Zero) {
			days, _ := decimal.NewFromInt(int64(item.CurrentStock)).Div(avg).Round(1).Float64()
			alert.DaysUntilStockout = &days
		}

		if item.Supplier != nil {
			alert.Supplier = &dto.SupplierInfoDTO{
				ID:           item.Supplier.ID,
				Name:         item.Supplier.Name,
				ContactEmail: item.Supplier.ContactEmail,
			}
		}
		alertList = append(alertList, alert)
	}

	return &dto.LowStockAlertsResponse{
		Alerts:      alertList,
		TotalAlerts: len(alertList),
	}, nil
}
