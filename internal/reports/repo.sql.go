package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// DashboardStats gathers every summary figure in one round trip.
func (r *Repository) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var s DashboardStats
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM clients WHERE is_active),
			(SELECT COUNT(*) FROM offices),
			(SELECT COUNT(*) FROM offices WHERE status = 'occupied'),
			(SELECT COUNT(*) FROM offices WHERE status = 'available'),
			(SELECT COALESCE(SUM(billed_value_uf), 0) FROM offices),
			(SELECT COALESCE(SUM(cost_uf), 0) FROM offices),
			(SELECT COUNT(*) FROM parking_storage WHERE type = 'parking'),
			(SELECT COUNT(*) FROM parking_storage WHERE type = 'parking' AND status = 'occupied'),
			(SELECT COUNT(*) FROM parking_storage WHERE type = 'storage'),
			(SELECT COUNT(*) FROM parking_storage WHERE type = 'storage' AND status = 'occupied'),
			(SELECT COUNT(*) FROM requests WHERE status = 'new'),
			(SELECT COUNT(*) FROM quotes WHERE status IN ('draft', 'pre-cotizacion'))`).
		Scan(&s.TotalClients, &s.TotalOffices, &s.OccupiedOffices, &s.AvailableOffices,
			&s.TotalBilledUF, &s.TotalCostUF, &s.TotalParking, &s.OccupiedParking,
			&s.TotalStorage, &s.OccupiedStorage, &s.NewRequests, &s.PendingQuotes)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return s, nil
}

// ExpiringOffices returns offices whose lease ends inside [from, to].
func (r *Repository) ExpiringOffices(ctx context.Context, from, to time.Time) ([]officeContract, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.id, o.office_number, o.client_id, COALESCE(c.company_name, ''), o.contract_end
		FROM offices o
		LEFT JOIN clients c ON c.id = o.client_id
		WHERE o.contract_end IS NOT NULL AND o.contract_end >= $1 AND o.contract_end <= $2`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("expiring offices: %w", err)
	}
	defer rows.Close()

	var offices []officeContract
	for rows.Next() {
		var o officeContract
		if err := rows.Scan(&o.ID, &o.OfficeNumber, &o.ClientID, &o.ClientName, &o.ContractEnd); err != nil {
			return nil, fmt.Errorf("scan expiring office: %w", err)
		}
		offices = append(offices, o)
	}
	return offices, rows.Err()
}

// NotifiableDocuments returns client documents with expiry alerts enabled.
// The contract end date wins over the plain expiry date when both are set.
func (r *Repository) NotifiableDocuments(ctx context.Context) ([]documentContract, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.id, d.name, d.client_id, COALESCE(c.company_name, ''),
			COALESCE(d.contract_end_date, d.expiry_date), d.notification_days
		FROM client_documents d
		LEFT JOIN clients c ON c.id = d.client_id
		WHERE d.notifications_enabled
			AND (d.expiry_date IS NOT NULL OR d.contract_end_date IS NOT NULL)`)
	if err != nil {
		return nil, fmt.Errorf("notifiable documents: %w", err)
	}
	defer rows.Close()

	var docs []documentContract
	for rows.Next() {
		var d documentContract
		if err := rows.Scan(&d.ID, &d.Name, &d.ClientID, &d.ClientName, &d.CheckDate, &d.NotificationDays); err != nil {
			return nil, fmt.Errorf("scan notifiable document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// SalesExportRows flattens every ticket line for the sales spreadsheet.
func (r *Repository) SalesExportRows(ctx context.Context) ([]salesExportRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.ticket_number, to_char(t.ticket_date, 'YYYY-MM-DD'), t.client_name,
			t.client_email, i.product_name, i.category, i.quantity, i.unit_price, i.subtotal,
			COALESCE(t.comisionista_name, ''), i.commission_amount, t.payment_status,
			COALESCE(t.payment_method, ''), t.commission_status
		FROM tickets t
		JOIN ticket_items i ON i.ticket_id = t.id
		ORDER BY t.ticket_date DESC, i.created_at`)
	if err != nil {
		return nil, fmt.Errorf("sales export rows: %w", err)
	}
	defer rows.Close()

	var out []salesExportRow
	for rows.Next() {
		var row salesExportRow
		if err := rows.Scan(&row.TicketNumber, &row.TicketDate, &row.ClientName,
			&row.ClientEmail, &row.ProductName, &row.Category, &row.Quantity,
			&row.UnitPrice, &row.Subtotal, &row.ComisionistaName, &row.CommissionAmount,
			&row.PaymentStatus, &row.PaymentMethod, &row.CommissionStatus); err != nil {
			return nil, fmt.Errorf("scan sales export row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CommissionExportRows aggregates ticket totals per active agent.
func (r *Repository) CommissionExportRows(ctx context.Context) ([]commissionExportRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.name, u.email, u.commission_percentage,
			COALESCE(SUM(t.total_amount), 0),
			COALESCE(SUM(t.total_commission), 0),
			COALESCE(SUM(t.total_commission) FILTER (WHERE t.commission_status = 'pending'), 0),
			COALESCE(SUM(t.total_commission) FILTER (WHERE t.commission_status = 'paid'), 0)
		FROM users u
		LEFT JOIN tickets t ON t.comisionista_id = u.id
		WHERE u.role = 'comisionista'
		GROUP BY u.id, u.name, u.email, u.commission_percentage
		ORDER BY u.name`)
	if err != nil {
		return nil, fmt.Errorf("commission export rows: %w", err)
	}
	defer rows.Close()

	var out []commissionExportRow
	for rows.Next() {
		var row commissionExportRow
		if err := rows.Scan(&row.Name, &row.Email, &row.CommissionPercentage,
			&row.TotalSales, &row.TotalCommissions, &row.PendingCommissions,
			&row.PaidCommissions); err != nil {
			return nil, fmt.Errorf("scan commission export row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
