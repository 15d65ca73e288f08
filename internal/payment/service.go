package payment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"finflow/internal/payment/metrics"
	dErrors "finflow/pkg/domain-errors"
	"finflow/pkg/platform/sentinel"
)

// Service processes payments against stubbed gateway integrations and records
// accepted transactions.
type Service struct {
	store   TransactionStore
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs a payment service.
func NewService(store TransactionStore, logger *slog.Logger, m *metrics.Metrics) (*Service, error) {
	if store == nil {
		return nil, errors.New("transaction store is required")
	}
	return &Service{store: store, logger: logger, metrics: m}, nil
}

// Process validates the request, dispatches to the method-specific processor,
// and records the transaction. Validation failures are returned as domain
// errors before any transaction record is created; failures after acceptance
// come back as an explicit error-variant Result.
func (s *Service) Process(ctx context.Context, req Request) (Result, error) {
	if err := validate(req); err != nil {
		s.metrics.IncrementOutcome("rejected")
		return Result{}, err
	}

	receipt, err := s.dispatch(ctx, req)
	if err != nil {
		s.metrics.IncrementOutcome("error")
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "payment processing failed",
				"payment_method", req.Method,
				"error", err,
			)
		}
		return Result{
			Status:    StatusError,
			Timestamp: time.Now().UTC(),
			Message:   err.Error(),
		}, nil
	}

	tx := Transaction{
		ID:        receipt.transactionID,
		Timestamp: time.Now().UTC(),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    receipt.status,
		Processor: receipt.processor,
	}
	if err := s.store.Record(ctx, tx); err != nil {
		s.metrics.IncrementOutcome("error")
		return Result{}, dErrors.Wrap(dErrors.CodeInternal, "failed to record transaction", err)
	}

	s.metrics.IncrementOutcome("success")
	if s.logger != nil {
		s.logger.InfoContext(ctx, "payment processed",
			"transaction_id", tx.ID,
			"payment_method", tx.Method,
			"currency", tx.Currency,
		)
	}

	return Result{
		Status:        StatusSuccess,
		TransactionID: tx.ID,
		Timestamp:     tx.Timestamp,
		Method:        tx.Method,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
	}, nil
}

// TransactionStatus looks up a previously recorded transaction.
func (s *Service) TransactionStatus(ctx context.Context, transactionID string) (Transaction, error) {
	tx, err := s.store.FindByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return Transaction{}, dErrors.New(dErrors.CodeNotFound, "transaction not found")
		}
		return Transaction{}, dErrors.Wrap(dErrors.CodeInternal, "transaction lookup failed", err)
	}
	return tx, nil
}

func validate(req Request) error {
	if req.Currency == "" {
		return dErrors.New(dErrors.CodeValidation, "currency is required")
	}
	if req.Method == "" {
		return dErrors.New(dErrors.CodeValidation, "payment_method is required")
	}
	if !req.Amount.IsPositive() {
		return dErrors.New(dErrors.CodeValidation, "payment amount must be greater than 0")
	}
	for _, m := range SupportedMethods() {
		if req.Method == m {
			return nil
		}
	}
	return dErrors.New(dErrors.CodeUnsupported, "unsupported payment method: "+string(req.Method))
}

// gatewayReceipt is what a method-specific processor returns on acceptance.
type gatewayReceipt struct {
	transactionID string
	status        string
	processor     string
}

// dispatch routes to the gateway stub for the requested method. Real
// settlement integrations replace these one at a time.
func (s *Service) dispatch(ctx context.Context, req Request) (gatewayReceipt, error) {
	switch req.Method {
	case MethodCard:
		return s.processCard(ctx, req)
	case MethodBankTransfer:
		return s.processBankTransfer(ctx, req)
	case MethodACH:
		return s.processACH(ctx, req)
	default:
		// validate rejects unknown methods before dispatch.
		return gatewayReceipt{}, dErrors.New(dErrors.CodeUnsupported, "unsupported payment method: "+string(req.Method))
	}
}

func (s *Service) processCard(_ context.Context, _ Request) (gatewayReceipt, error) {
	return gatewayReceipt{
		transactionID: "card_" + uuid.NewString(),
		status:        "success",
		processor:     "stripe",
	}, nil
}

func (s *Service) processBankTransfer(_ context.Context, _ Request) (gatewayReceipt, error) {
	return gatewayReceipt{
		transactionID: "bank_" + uuid.NewString(),
		status:        "pending",
		processor:     "bank_api",
	}, nil
}

func (s *Service) processACH(_ context.Context, _ Request) (gatewayReceipt, error) {
	return gatewayReceipt{
		transactionID: "ach_" + uuid.NewString(),
		status:        "pending",
		processor:     "plaid",
	}, nil
}
