package dto

import (
	"github.com/shopspring/decimal"
)

// Calendar dates cross the API boundary as ISO-8601 strings (YYYY-MM-DD);
// currency values carry whole units of the reporting currency.

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// GetReportRequest identifies the person whose credit history is consulted.
type GetReportRequest struct {
	NationalIdentifier string `json:"national_identifier"`
}

// ScoreReportRequest identifies the person to score.
type ScoreReportRequest struct {
	NationalIdentifier string `json:"national_identifier"`
}

// UpdateClientRequest carries an analyst edit to a client record.
type UpdateClientRequest struct {
	ClientID int64    `json:"client_id"`
	FullName string   `json:"full_name"`
	Address  string   `json:"address"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Flags    []string `json:"flags"`
}

// UpdateLoanRequest carries an analyst edit to a loan. Nil fields are left
// unchanged.
type UpdateLoanRequest struct {
	LoanID         int64            `json:"loan_id"`
	Status         *string          `json:"status,omitempty"`
	CurrentBalance *decimal.Decimal `json:"current_balance,omitempty"`
}

// IngestionRecord is one pre-parsed line of an uploaded flat file. Parsing
// and structural validation happen upstream; the core only applies the
// record.
type IngestionRecord struct {
	ClientNationalIdentifier string          `json:"client_national_identifier"`
	ClientFullName           string          `json:"client_full_name"`
	ClientBirthDate          string          `json:"client_birth_date"`
	ClientAddress            string          `json:"client_address"`
	ClientPhone              string          `json:"client_phone"`
	ClientEmail              string          `json:"client_email"`
	CompanyID                int64           `json:"company_id"`
	LoanID                   int64           `json:"loan_id"`
	OriginationDate          string          `json:"origination_date"`
	OriginalAmount           decimal.Decimal `json:"original_amount"`
	Modality                 string          `json:"modality"`
	InterestRate             decimal.Decimal `json:"interest_rate"`
	Installments             int             `json:"installments"`
	CurrentBalance           decimal.Decimal `json:"current_balance"`
	Status                   string          `json:"status"`
}

// IngestFileRequest carries a parsed flat-file batch.
type IngestFileRequest struct {
	FileName string            `json:"file_name"`
	Records  []IngestionRecord `json:"records"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// HistoricEntryResponse is one entry of a contact history, newest first.
type HistoricEntryResponse struct {
	Value        string `json:"value"`
	DateModified string `json:"date_modified"`
}

// ClientResponse is the external representation of a client.
type ClientResponse struct {
	ID                 int64                   `json:"id"`
	CompanyID          int64                   `json:"company_id"`
	NationalIdentifier string                  `json:"national_identifier"`
	FullName           string                  `json:"full_name"`
	BirthDate          string                  `json:"birth_date"`
	Addresses          []HistoricEntryResponse `json:"addresses"`
	Phones             []HistoricEntryResponse `json:"phones"`
	Emails             []HistoricEntryResponse `json:"emails"`
	Flags              []string                `json:"flags"`
}

// PaymentResponse is the external representation of one installment.
type PaymentResponse struct {
	ID                  int64            `json:"id"`
	InstallmentNumber   int              `json:"installment_number"`
	ExpectedPaymentDate string           `json:"expected_payment_date"`
	ActualPaymentDate   *string          `json:"actual_payment_date,omitempty"`
	AmountPaid          *decimal.Decimal `json:"amount_paid,omitempty"`
	Status              string           `json:"status"`
	DaysLate            int              `json:"days_late"`
}

// LoanResponse is the external representation of a loan decorated with the
// derived display state and calculator outputs.
type LoanResponse struct {
	ID                  int64             `json:"id"`
	ClientID            int64             `json:"client_id"`
	CompanyID           int64             `json:"company_id"`
	OriginationDate     string            `json:"origination_date"`
	OriginalAmount      decimal.Decimal   `json:"original_amount"`
	Modality            string            `json:"modality"`
	InterestRate        decimal.Decimal   `json:"interest_rate"`
	Installments        int               `json:"installments"`
	CurrentBalance      decimal.Decimal   `json:"current_balance"`
	Status              string            `json:"status"`
	DisplayStatus       string            `json:"display_status"`
	ReportActive        bool              `json:"report_active"`
	LastPaymentDate     *string           `json:"last_payment_date,omitempty"`
	ReportExpiryDate    *string           `json:"report_expiry_date,omitempty"`
	InstallmentAmount   decimal.Decimal   `json:"installment_amount"`
	TotalOverdue        decimal.Decimal   `json:"total_overdue"`
	PaidInstallments    int               `json:"paid_installments"`
	OverdueInstallments int               `json:"overdue_installments"`
	LastReportDate      string            `json:"last_report_date"`
	Payments            []PaymentResponse `json:"payments"`
}

// DebtSummaryResponse aggregates a client's obligations.
type DebtSummaryResponse struct {
	TotalCredits        int             `json:"total_credits"`
	ActiveCredits       int             `json:"active_credits"`
	PaidCredits         int             `json:"paid_credits"`
	TotalOriginalAmount decimal.Decimal `json:"total_original_amount"`
	TotalCurrentBalance decimal.Decimal `json:"total_current_balance"`
}

// CreditReportResponse is the assembled consultation payload.
type CreditReportResponse struct {
	Client      ClientResponse      `json:"client"`
	Loans       []LoanResponse      `json:"loans"`
	DebtSummary DebtSummaryResponse `json:"debt_summary"`
}

// RiskScoreResponse is the scoring outcome shown with a report.
type RiskScoreResponse struct {
	Score      int    `json:"score"`
	Assessment string `json:"assessment"`
	Reasoning  string `json:"reasoning"`
}

// CompanyResponse is the external representation of a reporting entity.
type CompanyResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	NIT            string `json:"nit"`
	TransUnionCode string `json:"transunion_code"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Active         bool   `json:"active"`
}

// PortfolioStatsResponse is one aggregation block of the dashboard.
type PortfolioStatsResponse struct {
	TotalClients          int            `json:"total_clients"`
	ActiveClientsUpToDate int            `json:"active_clients_up_to_date"`
	ClientsWithArrears    int            `json:"clients_with_arrears"`
	ClientsInLegal        int            `json:"clients_in_legal"`
	MoraDistribution      map[string]int `json:"mora_distribution"`
}

// CompanyAnalyticsResponse is the per-company dashboard breakdown.
type CompanyAnalyticsResponse struct {
	Company CompanyResponse        `json:"company"`
	Stats   PortfolioStatsResponse `json:"stats"`
}

// DashboardResponse is the full dashboard payload.
type DashboardResponse struct {
	General PortfolioStatsResponse     `json:"general"`
	Company []CompanyAnalyticsResponse `json:"company"`
}

// ProcessResultResponse reports the outcome of a flat-file ingestion batch.
type ProcessResultResponse struct {
	Status           string   `json:"status"`
	Message          string   `json:"message"`
	FileName         string   `json:"file_name"`
	TotalRecords     int      `json:"total_records"`
	ProcessedRecords int      `json:"processed_records"`
	NewClients       int      `json:"new_clients"`
	NewLoans         int      `json:"new_loans"`
	UpdatedLoans     int      `json:"updated_loans"`
	Errors           []string `json:"errors"`
}
