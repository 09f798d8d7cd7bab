package reports

import "github.com/tna-office/backoffice/internal/shared"

// DashboardStats is the landing-page summary block.
type DashboardStats struct {
	TotalClients     int     `json:"total_clients"`
	TotalOffices     int     `json:"total_offices"`
	OccupiedOffices  int     `json:"occupied_offices"`
	AvailableOffices int     `json:"available_offices"`
	OccupancyRate    float64 `json:"occupancy_rate"`
	TotalBilledUF    float64 `json:"total_billed_uf"`
	TotalCostUF      float64 `json:"total_cost_uf"`
	MarginUF         float64 `json:"margin_uf"`
	TotalParking     int     `json:"total_parking"`
	OccupiedParking  int     `json:"occupied_parking"`
	TotalStorage     int     `json:"total_storage"`
	OccupiedStorage  int     `json:"occupied_storage"`
	NewRequests      int     `json:"new_requests"`
	PendingQuotes    int     `json:"pending_quotes"`
}

// Expiry statuses.
const (
	ExpiryExpired  = "expired"
	ExpiryCritical = "critical"
	ExpirySoon     = "expiring"
)

// ExpiringContract is one office lease or client document nearing its end.
type ExpiringContract struct {
	Type          string  `json:"type"`
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ClientName    string  `json:"client_name"`
	ClientID      *string `json:"client_id"`
	ExpiryDate    string  `json:"expiry_date"`
	DaysRemaining int     `json:"days_remaining"`
	Status        string  `json:"status"`
}

// officeContract is an office row feeding the expiry report.
type officeContract struct {
	ID           string
	OfficeNumber string
	ClientID     *string
	ClientName   string
	ContractEnd  shared.Date
}

// documentContract is a client document with notifications enabled.
type documentContract struct {
	ID               string
	Name             string
	ClientID         *string
	ClientName       string
	CheckDate        shared.Date
	NotificationDays int
}

// salesExportRow is one ticket line flattened for the spreadsheet export.
type salesExportRow struct {
	TicketNumber     int64
	TicketDate       string
	ClientName       string
	ClientEmail      string
	ProductName      string
	Category         string
	Quantity         int
	UnitPrice        float64
	Subtotal         float64
	ComisionistaName string
	CommissionAmount float64
	PaymentStatus    string
	PaymentMethod    string
	CommissionStatus string
}

// commissionExportRow aggregates one agent's ticket totals.
type commissionExportRow struct {
	Name                 string
	Email                string
	CommissionPercentage float64
	TotalSales           float64
	TotalCommissions     float64
	PendingCommissions   float64
	PaidCommissions      float64
}
