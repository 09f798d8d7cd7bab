package reports

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
)

type RepositoryPort interface {
	DashboardStats(ctx context.Context) (DashboardStats, error)
	ExpiringOffices(ctx context.Context, from, to time.Time) ([]officeContract, error)
	NotifiableDocuments(ctx context.Context) ([]documentContract, error)
	SalesExportRows(ctx context.Context) ([]salesExportRow, error)
	CommissionExportRows(ctx context.Context) ([]commissionExportRow, error)
}

type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) DashboardStats(ctx context.Context) (DashboardStats, error) {
	stats, err := s.repo.DashboardStats(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	if stats.TotalOffices > 0 {
		rate := float64(stats.OccupiedOffices) / float64(stats.TotalOffices) * 100
		stats.OccupancyRate = math.Round(rate*10) / 10
	}
	stats.MarginUF = stats.TotalBilledUF - stats.TotalCostUF
	return stats, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysUntil(today, target time.Time) int {
	return int(dateOnly(target).Sub(today).Hours() / 24)
}

func expiryStatus(days int) string {
	switch {
	case days < 0:
		return ExpiryExpired
	case days <= 7:
		return ExpiryCritical
	default:
		return ExpirySoon
	}
}

// ExpiringContracts merges office leases ending within 30 days (or expired up
// to 90 days ago) with client documents inside their per-document
// notification window, sorted most urgent first.
func (s *Service) ExpiringContracts(ctx context.Context) ([]ExpiringContract, error) {
	today := dateOnly(s.now())

	offices, err := s.repo.ExpiringOffices(ctx, today.AddDate(0, 0, -90), today.AddDate(0, 0, 30))
	if err != nil {
		return nil, err
	}

	expiring := []ExpiringContract{}
	for _, office := range offices {
		days := daysUntil(today, office.ContractEnd.Time)
		clientName := office.ClientName
		if clientName == "" {
			clientName = "Sin cliente"
		}
		expiring = append(expiring, ExpiringContract{
			Type:          "office",
			ID:            office.ID,
			Name:          "Oficina " + office.OfficeNumber,
			ClientName:    clientName,
			ClientID:      office.ClientID,
			ExpiryDate:    office.ContractEnd.String(),
			DaysRemaining: days,
			Status:        expiryStatus(days),
		})
	}

	docs, err := s.repo.NotifiableDocuments(ctx)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		days := daysUntil(today, doc.CheckDate.Time)
		window := doc.NotificationDays
		if window <= 0 {
			window = 30
		}
		if days > window || days < -90 {
			continue
		}
		clientName := doc.ClientName
		if clientName == "" {
			clientName = "Sin cliente"
		}
		expiring = append(expiring, ExpiringContract{
			Type:          "document",
			ID:            doc.ID,
			Name:          doc.Name,
			ClientName:    clientName,
			ClientID:      doc.ClientID,
			ExpiryDate:    doc.CheckDate.String(),
			DaysRemaining: days,
			Status:        expiryStatus(days),
		})
	}

	sort.Slice(expiring, func(i, j int) bool {
		return expiring[i].DaysRemaining < expiring[j].DaysRemaining
	})
	return expiring, nil
}

// BuildSalesReport renders one spreadsheet row per ticket line.
func (s *Service) BuildSalesReport(ctx context.Context) (*excelize.File, string, error) {
	rows, err := s.repo.SalesExportRows(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	const sheet = "Ventas"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{
		"Numero Ticket", "Fecha", "Cliente", "Email", "Producto", "Categoria",
		"Cantidad", "Precio Unitario", "Subtotal", "Comisionista", "Comision",
		"Estado Pago", "Metodo Pago", "Estado Comision",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.TicketNumber, row.TicketDate, row.ClientName, row.ClientEmail,
			row.ProductName, row.Category, row.Quantity, row.UnitPrice, row.Subtotal,
			row.ComisionistaName, row.CommissionAmount, row.PaymentStatus,
			row.PaymentMethod, row.CommissionStatus,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, "", fmt.Errorf("write row: %w", err)
		}
	}

	filename := "ventas_tna_office_" + s.now().Format("20060102") + ".xlsx"
	return f, filename, nil
}

// BuildCommissionsReport renders per-agent commission totals.
func (s *Service) BuildCommissionsReport(ctx context.Context) (*excelize.File, string, error) {
	rows, err := s.repo.CommissionExportRows(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	const sheet = "Comisiones"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{
		"Comisionista", "Email", "Porcentaje Comision", "Total Ventas",
		"Total Comisiones", "Comisiones Pendientes", "Comisiones Pagadas",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.Name, row.Email, row.CommissionPercentage, row.TotalSales,
			row.TotalCommissions, row.PendingCommissions, row.PaidCommissions,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, "", fmt.Errorf("write row: %w", err)
		}
	}

	filename := "comisiones_tna_office_" + s.now().Format("20060102") + ".xlsx"
	return f, filename, nil
}
