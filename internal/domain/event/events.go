package event

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/agarciagaray/mi-riesgo/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Client events
// ---------------------------------------------------------------------------

// ClientUpdated is raised when an analyst edits a client record.
type ClientUpdated struct {
	events.BaseEvent
	NationalIdentifier string   `json:"national_identifier"`
	FullName           string   `json:"full_name"`
	Flags              []string `json:"flags"`
}

func NewClientUpdated(clientID int64, nationalIdentifier, fullName string, flags []string) ClientUpdated {
	return ClientUpdated{
		BaseEvent:          events.NewBaseEvent("bureau.client.updated", fmt.Sprintf("%d", clientID), "Client"),
		NationalIdentifier: nationalIdentifier,
		FullName:           fullName,
		Flags:              flags,
	}
}

// ---------------------------------------------------------------------------
// Loan events
// ---------------------------------------------------------------------------

// LoanUpdated is raised when an analyst edits a loan's status or balance.
type LoanUpdated struct {
	events.BaseEvent
	ClientID       int64           `json:"client_id"`
	Status         string          `json:"status"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

func NewLoanUpdated(loanID, clientID int64, status string, balance decimal.Decimal) LoanUpdated {
	return LoanUpdated{
		BaseEvent:      events.NewBaseEvent("bureau.loan.updated", fmt.Sprintf("%d", loanID), "Loan"),
		ClientID:       clientID,
		Status:         status,
		CurrentBalance: balance,
	}
}

// ---------------------------------------------------------------------------
// Ingestion events
// ---------------------------------------------------------------------------

// FileIngested is raised after a flat-file batch has been processed.
type FileIngested struct {
	events.BaseEvent
	FileName      string `json:"file_name"`
	TotalRecords  int    `json:"total_records"`
	NewClients    int    `json:"new_clients"`
	NewLoans      int    `json:"new_loans"`
	UpdatedLoans  int    `json:"updated_loans"`
	FailedRecords int    `json:"failed_records"`
}

func NewFileIngested(batchID, fileName string, total, newClients, newLoans, updatedLoans, failed int) FileIngested {
	return FileIngested{
		BaseEvent:     events.NewBaseEvent("bureau.file.ingested", batchID, "IngestionBatch"),
		FileName:      fileName,
		TotalRecords:  total,
		NewClients:    newClients,
		NewLoans:      newLoans,
		UpdatedLoans:  updatedLoans,
		FailedRecords: failed,
	}
}
