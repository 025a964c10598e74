package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agarciagaray/mi-riesgo/internal/application/dto"
	"github.com/agarciagaray/mi-riesgo/internal/domain/event"
	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

// IngestFileUseCase applies a pre-parsed flat-file batch. Each record upserts
// one client and one loan; a bad record is counted and skipped without
// aborting the batch.
type IngestFileUseCase struct {
	clientRepo port.ClientRepository
	loanRepo   port.LoanRepository
	publisher  port.EventPublisher
	logger     *slog.Logger
}

// NewIngestFileUseCase wires dependencies.
func NewIngestFileUseCase(
	clientRepo port.ClientRepository,
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *IngestFileUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestFileUseCase{
		clientRepo: clientRepo,
		loanRepo:   loanRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// Execute processes the batch record by record and reports per-record
// failures in the result instead of failing the whole file.
func (uc *IngestFileUseCase) Execute(ctx context.Context, req dto.IngestFileRequest) (dto.ProcessResultResponse, error) {
	result := dto.ProcessResultResponse{
		FileName:     req.FileName,
		TotalRecords: len(req.Records),
		Errors:       []string{},
	}

	now := time.Now().UTC()
	for i, record := range req.Records {
		newClient, newLoan, err := uc.applyRecord(ctx, record, now)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("registro %d: %v", i+1, err))
			continue
		}
		result.ProcessedRecords++
		if newClient {
			result.NewClients++
		}
		if newLoan {
			result.NewLoans++
		} else {
			result.UpdatedLoans++
		}
	}

	if len(result.Errors) == 0 {
		result.Status = "success"
		result.Message = "Archivo procesado correctamente."
	} else if result.ProcessedRecords > 0 {
		result.Status = "partial"
		result.Message = "Archivo procesado con errores."
	} else {
		result.Status = "error"
		result.Message = "No se pudo procesar ningún registro."
	}

	uc.logger.InfoContext(ctx, "file batch processed",
		"file_name", req.FileName,
		"total", result.TotalRecords,
		"processed", result.ProcessedRecords,
		"failed", len(result.Errors),
	)

	if uc.publisher != nil {
		ev := event.NewFileIngested(
			uuid.NewString(), req.FileName,
			result.TotalRecords, result.NewClients, result.NewLoans, result.UpdatedLoans, len(result.Errors),
		)
		if err := uc.publisher.Publish(ctx, ev); err != nil {
			uc.logger.WarnContext(ctx, "publish ingestion event failed", "error", err)
		}
	}

	return result, nil
}

// applyRecord upserts the record's client and loan. It reports whether a new
// client and a new loan were created.
func (uc *IngestFileUseCase) applyRecord(ctx context.Context, record dto.IngestionRecord, now time.Time) (newClient, newLoan bool, err error) {
	client, err := uc.clientRepo.FindByNationalIdentifier(ctx, record.ClientNationalIdentifier)
	switch {
	case errors.Is(err, port.ErrNotFound):
		client, err = uc.createClient(ctx, record, now)
		if err != nil {
			return false, false, err
		}
		newClient = true
	case err != nil:
		return false, false, fmt.Errorf("find client %s: %w", record.ClientNationalIdentifier, err)
	}

	existing, err := uc.loanRepo.FindByID(ctx, record.LoanID)
	switch {
	case errors.Is(err, port.ErrNotFound):
		if err := uc.createLoan(ctx, record, client.ID(), now); err != nil {
			return newClient, false, err
		}
		return newClient, true, nil
	case err != nil:
		return newClient, false, fmt.Errorf("find loan %d: %w", record.LoanID, err)
	}

	if err := uc.refreshLoan(ctx, existing, record, now); err != nil {
		return newClient, false, err
	}
	return newClient, false, nil
}

func (uc *IngestFileUseCase) createClient(ctx context.Context, record dto.IngestionRecord, now time.Time) (model.Client, error) {
	birthDate, err := parseDate(record.ClientBirthDate)
	if err != nil {
		return model.Client{}, fmt.Errorf("parse birth date: %w", err)
	}

	client, err := model.NewClient(
		0, record.CompanyID,
		record.ClientNationalIdentifier, record.ClientFullName,
		birthDate,
		record.ClientAddress, record.ClientPhone, record.ClientEmail,
		now,
	)
	if err != nil {
		return model.Client{}, fmt.Errorf("new client %s: %w", record.ClientNationalIdentifier, err)
	}
	if err := uc.clientRepo.Save(ctx, client); err != nil {
		return model.Client{}, fmt.Errorf("save client %s: %w", record.ClientNationalIdentifier, err)
	}

	// Re-read to pick up the store-assigned identifier.
	saved, err := uc.clientRepo.FindByNationalIdentifier(ctx, record.ClientNationalIdentifier)
	if err != nil {
		return model.Client{}, fmt.Errorf("reload client %s: %w", record.ClientNationalIdentifier, err)
	}
	return saved, nil
}

func (uc *IngestFileUseCase) createLoan(ctx context.Context, record dto.IngestionRecord, clientID int64, now time.Time) error {
	originationDate, err := parseDate(record.OriginationDate)
	if err != nil {
		return fmt.Errorf("parse origination date: %w", err)
	}
	modality, err := valueobject.NewPaymentModality(record.Modality)
	if err != nil {
		return fmt.Errorf("loan %d: %w", record.LoanID, err)
	}
	status, err := valueobject.NewCreditStatus(record.Status)
	if err != nil {
		return fmt.Errorf("loan %d: %w", record.LoanID, err)
	}

	loan, err := model.NewLoan(
		record.LoanID, clientID, record.CompanyID,
		originationDate,
		record.OriginalAmount,
		modality,
		record.InterestRate,
		record.Installments,
		record.CurrentBalance,
		status,
		now,
		nil,
	)
	if err != nil {
		return fmt.Errorf("new loan %d: %w", record.LoanID, err)
	}
	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return fmt.Errorf("save loan %d: %w", record.LoanID, err)
	}
	return nil
}

func (uc *IngestFileUseCase) refreshLoan(ctx context.Context, loan model.Loan, record dto.IngestionRecord, now time.Time) error {
	status, err := valueobject.NewCreditStatus(record.Status)
	if err != nil {
		return fmt.Errorf("loan %d: %w", record.LoanID, err)
	}

	loan, err = loan.UpdateStatus(status, now)
	if err != nil {
		return fmt.Errorf("loan %d: %w", record.LoanID, err)
	}
	loan, err = loan.UpdateBalance(record.CurrentBalance, now)
	if err != nil {
		return fmt.Errorf("loan %d: %w", record.LoanID, err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return fmt.Errorf("save loan %d: %w", record.LoanID, err)
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
