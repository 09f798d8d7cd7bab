package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tna-office/backoffice/internal/shared"
)

type fakeRepo struct {
	stats   DashboardStats
	offices []officeContract
	docs    []documentContract
	sales   []salesExportRow
	comms   []commissionExportRow
}

func (f *fakeRepo) DashboardStats(ctx context.Context) (DashboardStats, error) {
	return f.stats, nil
}

func (f *fakeRepo) ExpiringOffices(ctx context.Context, from, to time.Time) ([]officeContract, error) {
	var out []officeContract
	for _, o := range f.offices {
		end := o.ContractEnd.Time
		if !end.Before(from) && !end.After(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRepo) NotifiableDocuments(ctx context.Context) ([]documentContract, error) {
	return f.docs, nil
}

func (f *fakeRepo) SalesExportRows(ctx context.Context) ([]salesExportRow, error) {
	return f.sales, nil
}

func (f *fakeRepo) CommissionExportRows(ctx context.Context) ([]commissionExportRow, error) {
	return f.comms, nil
}

func fixedService(repo *fakeRepo, now time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func date(t *testing.T, s string) shared.Date {
	t.Helper()
	d, err := shared.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestDashboardStatsDerivedValues(t *testing.T) {
	repo := &fakeRepo{stats: DashboardStats{
		TotalOffices:    12,
		OccupiedOffices: 7,
		TotalBilledUF:   420.5,
		TotalCostUF:     310.25,
	}}
	svc := NewService(repo)

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 58.3, stats.OccupancyRate)
	require.InDelta(t, 110.25, stats.MarginUF, 0.001)
}

func TestDashboardStatsNoOffices(t *testing.T) {
	svc := NewService(&fakeRepo{})

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	require.Zero(t, stats.OccupancyRate)
}

func TestExpiringContractsStatuses(t *testing.T) {
	now := time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC)
	clientID := "client-1"
	repo := &fakeRepo{
		offices: []officeContract{
			{ID: "o1", OfficeNumber: "101", ClientID: &clientID, ClientName: "Rojas SpA", ContractEnd: date(t, "2026-03-20")},
			{ID: "o2", OfficeNumber: "102", ContractEnd: date(t, "2026-03-10")},
			{ID: "o3", OfficeNumber: "103", ContractEnd: date(t, "2026-04-10")},
		},
	}
	svc := fixedService(repo, now)

	out, err := svc.ExpiringContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)

	// Sorted by days remaining, most urgent first.
	require.Equal(t, "Oficina 102", out[0].Name)
	require.Equal(t, ExpiryExpired, out[0].Status)
	require.Equal(t, "Sin cliente", out[0].ClientName)

	require.Equal(t, "Oficina 101", out[1].Name)
	require.Equal(t, ExpiryCritical, out[1].Status)
	require.Equal(t, 5, out[1].DaysRemaining)
	require.Equal(t, "Rojas SpA", out[1].ClientName)

	require.Equal(t, ExpirySoon, out[2].Status)
}

func TestExpiringContractsDocumentWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		docs: []documentContract{
			// Inside its 60 day window.
			{ID: "d1", Name: "Contrato arriendo", CheckDate: date(t, "2026-05-01"), NotificationDays: 60},
			// Outside the default 30 day window.
			{ID: "d2", Name: "Poliza", CheckDate: date(t, "2026-05-01")},
			// Expired long ago, dropped.
			{ID: "d3", Name: "Patente", CheckDate: date(t, "2025-11-01"), NotificationDays: 30},
			// Just expired, kept.
			{ID: "d4", Name: "Certificado", CheckDate: date(t, "2026-03-10"), NotificationDays: 15},
		},
	}
	svc := fixedService(repo, now)

	out, err := svc.ExpiringContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "Certificado", out[0].Name)
	require.Equal(t, ExpiryExpired, out[0].Status)
	require.Equal(t, "Contrato arriendo", out[1].Name)
}

func TestBuildSalesReport(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		sales: []salesExportRow{{
			TicketNumber: 7,
			TicketDate:   "2026-03-10",
			ClientName:   "Maria Soto",
			ProductName:  "Café Premium",
			Quantity:     2,
			UnitPrice:    3500,
			Subtotal:     7000,
		}},
	}
	svc := fixedService(repo, now)

	f, filename, err := svc.BuildSalesReport(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ventas_tna_office_20260315.xlsx", filename)

	got, err := f.GetCellValue("Ventas", "A1")
	require.NoError(t, err)
	require.Equal(t, "Numero Ticket", got)

	got, err = f.GetCellValue("Ventas", "C2")
	require.NoError(t, err)
	require.Equal(t, "Maria Soto", got)
}

func TestBuildCommissionsReport(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		comms: []commissionExportRow{{
			Name:                 "Carlos Diaz",
			Email:                "carlos@tnaoffice.cl",
			CommissionPercentage: 10,
			TotalSales:           90000,
			TotalCommissions:     9000,
			PendingCommissions:   4000,
			PaidCommissions:      5000,
		}},
	}
	svc := fixedService(repo, now)

	f, filename, err := svc.BuildCommissionsReport(context.Background())
	require.NoError(t, err)
	require.Equal(t, "comisiones_tna_office_20260315.xlsx", filename)

	got, err := f.GetCellValue("Comisiones", "A2")
	require.NoError(t, err)
	require.Equal(t, "Carlos Diaz", got)
}
